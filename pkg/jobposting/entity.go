package jobposting

import "context"

const (
	// MsgUnableToExtract отдаётся как содержимое, если ни один способ не дал достаточно текста.
	MsgUnableToExtract = "Unable to extract job posting content. The page might be protected or require manual access."
	msgScrapeErrorFmt  = "Unable to scrape job posting. Error: %v"
)

// JobPosting — результат извлечения одного URL.
// RawText может содержать строку с описанием ошибки; CleansedText никогда не пуст.
type JobPosting struct {
	URL          string
	Title        string
	RawText      string
	CleansedText string
	Extracted    bool
}

// Fetcher возвращает HTML страницы.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Cleanser оставляет в тексте только содержательные поля вакансии.
// Ошибок не возвращает: при сбое отдаёт обрезанную копию входа.
type Cleanser interface {
	Cleanse(ctx context.Context, raw string) string
}
