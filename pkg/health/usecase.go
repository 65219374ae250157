package health

import (
	"context"
	"fmt"
)

// Checker — проверка здоровья одной зависимости.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// ReadinessUseCase описывает проверку готовности.
type ReadinessUseCase interface {
	Ready(ctx context.Context) error
}

type service struct {
	checkers []Checker
}

// NewService объединяет проверки зависимостей.
func NewService(checkers ...Checker) ReadinessUseCase {
	return &service{checkers: checkers}
}

func (s *service) Ready(ctx context.Context) error {
	for _, ch := range s.checkers {
		if err := ch.Check(ctx); err != nil {
			return fmt.Errorf("%s: %w", ch.Name(), err)
		}
	}
	return nil
}
