package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"studyhub/internal/service"
)

// CategoryHandler serves the global category list.
type CategoryHandler struct {
	svc service.CategoryService
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(svc service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// List godoc
// @Summary List categories
// @Description Categories are global and read-only.
// @Tags categories
// @Produce json
// @Security TokenAuth
// @Success 200 {array} model.Category
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, categories)
}
