package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"studyhub/internal/model"
	"studyhub/internal/service"
)

// SessionRequest is the body for logging a study or work session.
type SessionRequest struct {
	TaskID          *uint  `json:"task_id"`
	SessionDate     string `json:"session_date" validate:"required" example:"2025-03-14"`
	StartTime       string `json:"start_time" validate:"required" example:"09:00"`
	EndTime         string `json:"end_time" validate:"required" example:"10:30"`
	DurationMinutes *int   `json:"duration_minutes" validate:"omitempty,min=0"`
	Notes           string `json:"notes"`
}

// SessionResponse renders dates as YYYY-MM-DD, times as HH:MM:SS and an
// unknown duration as 0.
type SessionResponse struct {
	ID              uint      `json:"id"`
	UserID          uint      `json:"user_id"`
	TaskID          *uint     `json:"task_id"`
	TaskTitle       string    `json:"task_title"`
	SessionDate     string    `json:"session_date"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}

func (r *SessionRequest) toModel() (*model.Session, error) {
	date, err := parseDateField("session_date", r.SessionDate)
	if err != nil {
		return nil, err
	}
	start, err := parseClockField("start_time", r.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := parseClockField("end_time", r.EndTime)
	if err != nil {
		return nil, err
	}
	return &model.Session{
		TaskID:          r.TaskID,
		SessionDate:     date,
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: r.DurationMinutes,
		Notes:           r.Notes,
	}, nil
}

func newSessionResponse(s *model.Session) interface{} {
	return SessionResponse{
		ID:              s.ID,
		UserID:          s.UserID,
		TaskID:          s.TaskID,
		TaskTitle:       s.TaskTitle(),
		SessionDate:     model.FormatDate(s.SessionDate),
		StartTime:       model.FormatClock(s.StartTime),
		EndTime:         model.FormatClock(s.EndTime),
		DurationMinutes: s.Minutes(),
		Notes:           s.Notes,
		CreatedAt:       s.CreatedAt,
	}
}

// SessionHandler serves /sessions.
type SessionHandler struct {
	routes crudRoutes[model.Session]
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(svc service.ResourceService[model.Session]) *SessionHandler {
	return &SessionHandler{routes: crudRoutes[model.Session]{
		noun:   "Session",
		svc:    svc,
		decode: decodeWith((*SessionRequest).toModel),
		encode: newSessionResponse,
	}}
}

// List godoc
// @Summary List sessions
// @Tags sessions
// @Produce json
// @Security TokenAuth
// @Success 200 {array} SessionResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /sessions [get]
func (h *SessionHandler) List(c echo.Context) error { return h.routes.list(c) }

// Create godoc
// @Summary Log a session
// @Description duration_minutes is derived from start and end when omitted.
// @Tags sessions
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body SessionRequest true "Session"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /sessions [post]
func (h *SessionHandler) Create(c echo.Context) error { return h.routes.create(c) }

// Delete godoc
// @Summary Delete a session
// @Tags sessions
// @Produce json
// @Security TokenAuth
// @Param id path int true "Session ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /sessions/{id} [delete]
func (h *SessionHandler) Delete(c echo.Context) error { return h.routes.delete(c) }
