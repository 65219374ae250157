package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/artem13815/resume-optimizer/api/http/presenter"
	"github.com/artem13815/resume-optimizer/pkg/optimization"
)

type OptimizationsHandler struct {
	uc     optimization.UseCase
	logger logrus.FieldLogger
}

func NewOptimizationsHandler(uc optimization.UseCase, logger logrus.FieldLogger) *OptimizationsHandler {
	return &OptimizationsHandler{uc: uc, logger: logger}
}

// List возвращает сохранённые оптимизации, новые первыми.
// @Summary Список оптимизаций
// @Tags    Оптимизации
// @Produce json
// @Param   skip  query int false "Сколько записей пропустить" default(0)
// @Param   limit query int false "Размер страницы (не больше 100)" default(10)
// @Success 200 {array} optimization.Record
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /api/optimizations [get]
func (h *OptimizationsHandler) List(c *fiber.Ctx) error {
	skip, limit := parseSkipLimit(c, 10)
	items, err := h.uc.List(c.UserContext(), skip, limit)
	if err != nil {
		h.logger.WithError(err).Error("list optimizations")
		return presenter.Error(c, http.StatusInternalServerError, "failed to list optimizations")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Get возвращает оптимизацию по id.
// @Summary Получить оптимизацию
// @Tags    Оптимизации
// @Produce json
// @Param   id path string true "ID оптимизации"
// @Success 200 {object} optimization.Record
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /api/optimizations/{id} [get]
func (h *OptimizationsHandler) Get(c *fiber.Ctx) error {
	rec, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.lookupError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, rec)
}

// Delete удаляет оптимизацию.
// @Summary Удалить оптимизацию
// @Tags    Оптимизации
// @Produce json
// @Param   id path string true "ID оптимизации"
// @Success 200 {object} presenter.MessageResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /api/optimizations/{id} [delete]
func (h *OptimizationsHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.lookupError(c, err)
	}
	return presenter.Message(c, http.StatusOK, "Optimization deleted successfully")
}

func (h *OptimizationsHandler) lookupError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, optimization.ErrInvalidID):
		return presenter.Error(c, http.StatusBadRequest, "Invalid optimization ID")
	case errors.Is(err, optimization.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "Optimization not found")
	default:
		h.logger.WithError(err).WithField("id", c.Params("id")).Error("optimization lookup")
		return presenter.Error(c, http.StatusInternalServerError, "failed to access optimization")
	}
}
