package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/artem13815/resume-optimizer/api/http/presenter"
	"github.com/artem13815/resume-optimizer/pkg/optimization"
	"github.com/artem13815/resume-optimizer/pkg/resume"
)

// OptimizeResponse — ответ обоих эндпоинтов оптимизации.
type OptimizeResponse struct {
	ID                string    `json:"id"`
	OptimizedResume   string    `json:"optimized_resume"`
	Suggestions       []string  `json:"suggestions"`
	MatchScore        float64   `json:"match_score"`
	CreatedAt         time.Time `json:"created_at"`
	JobPostingContent string    `json:"job_posting_content"`
}

// OptimizeJSONRequest — тело POST /optimize-json.
type OptimizeJSONRequest struct {
	URL        string `json:"url"`
	ResumeText string `json:"resume_text"`
}

type OptimizeHandler struct {
	uc       optimization.UseCase
	logger   logrus.FieldLogger
	maxBytes int64
}

func NewOptimizeHandler(uc optimization.UseCase, logger logrus.FieldLogger) *OptimizeHandler {
	return &OptimizeHandler{uc: uc, logger: logger, maxBytes: resume.MaxUploadBytes}
}

// Optimize подгоняет загруженное или вставленное резюме под вакансию.
// @Summary     Оптимизировать резюме под вакансию
// @Description Скачивает job_url, разбирает резюме (PDF, DOCX или текст) и просит LLM переписать его. При сбоях LLM или скрапинга ответ всё равно 200 с запасным содержимым.
// @Tags        Оптимизация
// @Accept      multipart/form-data
// @Produce     json
// @Param       job_url     formData string true  "URL вакансии"
// @Param       resume_file formData file   false "Файл резюме"
// @Param       resume_text formData string false "Текст резюме"
// @Success     200 {object} handlers.OptimizeResponse
// @Failure     400 {object} presenter.ErrorResponse
// @Failure     500 {object} presenter.ErrorResponse
// @Router      /optimize [post]
func (h *OptimizeHandler) Optimize(c *fiber.Ctx) error {
	jobURL := strings.TrimSpace(c.FormValue("job_url"))
	if jobURL == "" {
		return presenter.Error(c, http.StatusBadRequest, "job_url must be provided")
	}

	var src resume.Source
	if fh, err := c.FormFile("resume_file"); err == nil && fh != nil {
		file, err := fh.Open()
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
		}
		defer file.Close()
		data, err := readAtMost(file, h.maxBytes)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		}
		src = resume.Source{Filename: fh.Filename, Data: data}
	} else if text := c.FormValue("resume_text"); strings.TrimSpace(text) != "" {
		src = resume.Source{Text: text}
	} else {
		return presenter.Error(c, http.StatusBadRequest, "Either resume_file or resume_text must be provided")
	}

	return h.run(c, optimization.Input{JobURL: jobURL, Resume: src})
}

// OptimizeJSON — JSON-вариант Optimize для вставленного текста резюме.
// @Summary Оптимизировать текст резюме под вакансию
// @Tags    Оптимизация
// @Accept  json
// @Produce json
// @Param   request body handlers.OptimizeJSONRequest true "URL вакансии и текст резюме"
// @Success 200 {object} handlers.OptimizeResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /optimize-json [post]
func (h *OptimizeHandler) OptimizeJSON(c *fiber.Ctx) error {
	var req OptimizeJSONRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON body")
	}
	req.URL = strings.TrimSpace(req.URL)
	if req.URL == "" {
		return presenter.Error(c, http.StatusBadRequest, "url must be provided in JSON request")
	}
	if strings.TrimSpace(req.ResumeText) == "" {
		return presenter.Error(c, http.StatusBadRequest, "resume_text must be provided in JSON request")
	}
	return h.run(c, optimization.Input{JobURL: req.URL, Resume: resume.Source{Text: req.ResumeText}})
}

func (h *OptimizeHandler) run(c *fiber.Ctx, in optimization.Input) error {
	rec, err := h.uc.Optimize(c.UserContext(), in)
	switch {
	case errors.Is(err, resume.ErrMalformedDocument), errors.Is(err, resume.ErrEmptyResume):
		return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("Failed to parse resume: %v", err))
	case err != nil:
		h.logger.WithError(err).WithField("url", in.JobURL).Error("optimize failed")
		return presenter.Error(c, http.StatusInternalServerError, "failed to process optimization")
	}
	return presenter.JSON(c, http.StatusOK, OptimizeResponse{
		ID:                rec.ID,
		OptimizedResume:   rec.OptimizedResume,
		Suggestions:       rec.Suggestions,
		MatchScore:        rec.MatchScore,
		CreatedAt:         rec.CreatedAt,
		JobPostingContent: rec.JobPostingContent,
	})
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
