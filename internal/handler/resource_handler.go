package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"studyhub/internal/model"
	"studyhub/internal/service"
)

// ResourceRequest is the body for saving a learning resource.
type ResourceRequest struct {
	Title string `json:"title" validate:"required,max=255"`
	Type  string `json:"type" validate:"required,max=50" example:"video"`
	URL   string `json:"url" validate:"required,max=2048"`
	Notes string `json:"notes"`
}

// ResourceResponse is a saved learning resource.
type ResourceResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	URL       string    `json:"url"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *ResourceRequest) toModel() (*model.Resource, error) {
	return &model.Resource{Title: r.Title, Type: r.Type, URL: r.URL, Notes: r.Notes}, nil
}

func newResourceResponse(r *model.Resource) interface{} {
	return ResourceResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		Title:     r.Title,
		Type:      r.Type,
		URL:       r.URL,
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
	}
}

// ResourceHandler serves /resources.
type ResourceHandler struct {
	routes crudRoutes[model.Resource]
}

// NewResourceHandler creates a new resource handler.
func NewResourceHandler(svc service.ResourceService[model.Resource]) *ResourceHandler {
	return &ResourceHandler{routes: crudRoutes[model.Resource]{
		noun:   "Resource",
		svc:    svc,
		decode: decodeWith((*ResourceRequest).toModel),
		encode: newResourceResponse,
	}}
}

// List godoc
// @Summary List resources
// @Tags resources
// @Produce json
// @Security TokenAuth
// @Success 200 {array} ResourceResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /resources [get]
func (h *ResourceHandler) List(c echo.Context) error { return h.routes.list(c) }

// Create godoc
// @Summary Save a resource
// @Tags resources
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body ResourceRequest true "Resource"
// @Success 201 {object} ResourceResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /resources [post]
func (h *ResourceHandler) Create(c echo.Context) error { return h.routes.create(c) }

// Delete godoc
// @Summary Delete a resource
// @Tags resources
// @Produce json
// @Security TokenAuth
// @Param id path int true "Resource ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /resources/{id} [delete]
func (h *ResourceHandler) Delete(c echo.Context) error { return h.routes.delete(c) }
