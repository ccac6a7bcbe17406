package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"studyhub/internal/model"
	"studyhub/internal/service"
)

// NoteRequest is the body for creating or replacing a note.
type NoteRequest struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
}

// NoteResponse is a stored note.
type NoteResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *NoteRequest) toModel() (*model.Note, error) {
	return &model.Note{Title: r.Title, Content: r.Content}, nil
}

func newNoteResponse(n *model.Note) interface{} {
	return NoteResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// NoteHandler serves /notes.
type NoteHandler struct {
	routes crudRoutes[model.Note]
}

// NewNoteHandler creates a new note handler.
func NewNoteHandler(svc service.ResourceService[model.Note]) *NoteHandler {
	return &NoteHandler{routes: crudRoutes[model.Note]{
		noun:   "Note",
		svc:    svc,
		decode: decodeWith((*NoteRequest).toModel),
		encode: newNoteResponse,
	}}
}

// List godoc
// @Summary List notes
// @Tags notes
// @Produce json
// @Security TokenAuth
// @Success 200 {array} NoteResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /notes [get]
func (h *NoteHandler) List(c echo.Context) error { return h.routes.list(c) }

// Get godoc
// @Summary Get a note
// @Tags notes
// @Produce json
// @Security TokenAuth
// @Param id path int true "Note ID"
// @Success 200 {object} NoteResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /notes/{id} [get]
func (h *NoteHandler) Get(c echo.Context) error { return h.routes.get(c) }

// Create godoc
// @Summary Create a note
// @Tags notes
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body NoteRequest true "Note"
// @Success 201 {object} NoteResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /notes [post]
func (h *NoteHandler) Create(c echo.Context) error { return h.routes.create(c) }

// Update godoc
// @Summary Replace a note
// @Tags notes
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Note ID"
// @Param request body NoteRequest true "Note"
// @Success 200 {object} NoteResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /notes/{id} [put]
func (h *NoteHandler) Update(c echo.Context) error { return h.routes.update(c) }

// Delete godoc
// @Summary Delete a note
// @Tags notes
// @Produce json
// @Security TokenAuth
// @Param id path int true "Note ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /notes/{id} [delete]
func (h *NoteHandler) Delete(c echo.Context) error { return h.routes.delete(c) }
