package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"studyhub/internal/model"
	"studyhub/internal/service"
)

// LogRequest is the body for a daily log entry.
type LogRequest struct {
	LogDate string `json:"log_date" validate:"required" example:"2025-03-14"`
	Summary string `json:"summary"`
	Mood    string `json:"mood" validate:"required,max=50"`
}

// LogResponse is a stored daily log entry.
type LogResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	LogDate   string    `json:"log_date"`
	Summary   string    `json:"summary"`
	Mood      string    `json:"mood"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *LogRequest) toModel() (*model.Log, error) {
	day, err := parseDateField("log_date", r.LogDate)
	if err != nil {
		return nil, err
	}
	return &model.Log{LogDate: day, Summary: r.Summary, Mood: r.Mood}, nil
}

func newLogResponse(l *model.Log) interface{} {
	return LogResponse{
		ID:        l.ID,
		UserID:    l.UserID,
		LogDate:   model.FormatDate(l.LogDate),
		Summary:   l.Summary,
		Mood:      l.Mood,
		CreatedAt: l.CreatedAt,
	}
}

// LogHandler serves /logs.
type LogHandler struct {
	routes crudRoutes[model.Log]
}

// NewLogHandler creates a new daily log handler.
func NewLogHandler(svc service.ResourceService[model.Log]) *LogHandler {
	return &LogHandler{routes: crudRoutes[model.Log]{
		noun:   "Log",
		svc:    svc,
		decode: decodeWith((*LogRequest).toModel),
		encode: newLogResponse,
	}}
}

// List godoc
// @Summary List daily logs
// @Tags logs
// @Produce json
// @Security TokenAuth
// @Success 200 {array} LogResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /logs [get]
func (h *LogHandler) List(c echo.Context) error { return h.routes.list(c) }

// Create godoc
// @Summary Write a daily log
// @Tags logs
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body LogRequest true "Log"
// @Success 201 {object} LogResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /logs [post]
func (h *LogHandler) Create(c echo.Context) error { return h.routes.create(c) }

// Delete godoc
// @Summary Delete a daily log
// @Tags logs
// @Produce json
// @Security TokenAuth
// @Param id path int true "Log ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /logs/{id} [delete]
func (h *LogHandler) Delete(c echo.Context) error { return h.routes.delete(c) }
