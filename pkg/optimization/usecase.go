package optimization

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/artem13815/resume-optimizer/pkg/jobposting"
	"github.com/artem13815/resume-optimizer/pkg/resume"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// JobExtractor получает текст вакансии по URL и не возвращает ошибок.
type JobExtractor interface {
	Extract(ctx context.Context, url string) jobposting.JobPosting
}

// ResumeOptimizer подгоняет резюме под вакансию и не возвращает ошибок.
type ResumeOptimizer interface {
	Optimize(ctx context.Context, jobText, resumeText string) Outcome
}

// Input — один запрос на оптимизацию.
type Input struct {
	JobURL string
	Resume resume.Source
}

// UseCase — сценарии оптимизации резюме под вакансию.
type UseCase interface {
	Optimize(ctx context.Context, in Input) (Record, error)
	List(ctx context.Context, skip, limit int) ([]Record, error)
	Get(ctx context.Context, id string) (Record, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo      Repository
	extractor JobExtractor
	optimizer ResumeOptimizer
	logger    logrus.FieldLogger
	now       func() time.Time
}

func NewService(repo Repository, extractor JobExtractor, optimizer ResumeOptimizer, logger logrus.FieldLogger) UseCase {
	return &service{
		repo:      repo,
		extractor: extractor,
		optimizer: optimizer,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Optimize параллельно извлекает вакансию и разбирает резюме, затем вызывает
// оптимизатор и сохраняет запись. Возвращаются только ошибки разбора резюме и
// хранилища; сбои скрапинга и LLM ухудшают содержимое, но не запрос.
func (s *service) Optimize(ctx context.Context, in Input) (Record, error) {
	var (
		job        jobposting.JobPosting
		resumeText string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		job = s.extractor.Extract(gctx, in.JobURL)
		return nil
	})
	g.Go(func() error {
		text, err := resume.Parse(in.Resume)
		if err != nil {
			return err
		}
		resumeText = text
		return nil
	})
	if err := g.Wait(); err != nil {
		return Record{}, err
	}

	out := s.optimizer.Optimize(ctx, job.CleansedText, resumeText)
	log := s.logger.WithFields(logrus.Fields{
		"url":         in.JobURL,
		"extracted":   job.Extracted,
		"degraded":    out.Degraded,
		"match_score": out.Result.MatchScore,
	})
	if out.Degraded {
		log = log.WithError(out.Cause)
	}

	now := s.now()
	rec := Record{
		UserEmail:         AnonymousUser,
		JobURL:            in.JobURL,
		JobPostingContent: job.CleansedText,
		JobPostingRaw:     job.RawText,
		OriginalResume:    resumeText,
		OptimizedResume:   out.Result.OptimizedResume,
		Suggestions:       out.Result.Suggestions,
		MatchScore:        out.Result.MatchScore,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if job.Title != "" {
		title := job.Title
		rec.JobTitle = &title
	}
	saved, err := s.repo.Insert(ctx, rec)
	if err != nil {
		return Record{}, fmt.Errorf("save optimization: %w", err)
	}
	log.WithField("id", saved.ID).Info("optimization stored")
	return saved, nil
}

func (s *service) List(ctx context.Context, skip, limit int) ([]Record, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	items, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list optimizations: %w", err)
	}
	if items == nil {
		items = []Record{}
	}
	return items, nil
}

func (s *service) Get(ctx context.Context, id string) (Record, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
