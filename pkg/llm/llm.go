package llm

import (
	"context"
	"errors"
)

// ErrNotConfigured возвращают провайдеры без ключа.
var ErrNotConfigured = errors.New("llm credentials are not configured")

// Request — одношаговый запрос к модели.
type Request struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// Client — минимальная абстракция над LLM-провайдерами.
// Реализации возвращают текст ответа модели как есть.
type Client interface {
	Invoke(ctx context.Context, req Request) (string, error)
}
