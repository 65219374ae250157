package optimization

import (
	"context"
	"errors"
	"time"
)

// AnonymousUser записывается владельцем каждой записи, пока нет аккаунтов.
const AnonymousUser = "anonymous@example.com"

var (
	ErrNotFound  = errors.New("optimization not found")
	ErrInvalidID = errors.New("invalid optimization id")
)

// Result — переписанное резюме с советами. MatchScore всегда в [0,1].
type Result struct {
	OptimizedResume string   `json:"optimized_resume"`
	Suggestions     []string `json:"suggestions"`
	MatchScore      float64  `json:"match_score"`
}

// Outcome отличает настоящий ответ LLM от детерминированного запасного.
type Outcome struct {
	Result   Result
	Degraded bool
	Cause    error
}

// Record — сохранённая оптимизация.
type Record struct {
	ID                string    `json:"id"`
	UserEmail         string    `json:"user_email"`
	JobURL            string    `json:"job_url"`
	JobTitle          *string   `json:"job_title"`
	CompanyName       *string   `json:"company_name"`
	JobPostingContent string    `json:"job_posting_content"`
	JobPostingRaw     string    `json:"job_posting_raw"`
	OriginalResume    string    `json:"original_resume"`
	OptimizedResume   string    `json:"optimized_resume"`
	Suggestions       []string  `json:"suggestions"`
	MatchScore        float64   `json:"match_score"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Repository — порт хранения. Реализации назначают Record.ID при вставке,
// возвращают ErrInvalidID для неразбираемых id и ErrNotFound для отсутствующих записей.
type Repository interface {
	Insert(ctx context.Context, rec Record) (Record, error)
	List(ctx context.Context, skip, limit int) ([]Record, error)
	Get(ctx context.Context, id string) (Record, error)
	Delete(ctx context.Context, id string) error
}
