package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"studyhub/internal/model"
	"studyhub/internal/service"
)

// AchievementRequest is the body for recording an achievement.
type AchievementRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
	AchievedOn  string `json:"achieved_on" validate:"required" example:"2025-03-14"`
}

// AchievementResponse is a recorded achievement.
type AchievementResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AchievedOn  string    `json:"achieved_on"`
	CreatedAt   time.Time `json:"created_at"`
}

func (r *AchievementRequest) toModel() (*model.Achievement, error) {
	achievedOn, err := parseDateField("achieved_on", r.AchievedOn)
	if err != nil {
		return nil, err
	}
	return &model.Achievement{Title: r.Title, Description: r.Description, AchievedOn: achievedOn}, nil
}

func newAchievementResponse(a *model.Achievement) interface{} {
	return AchievementResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		Title:       a.Title,
		Description: a.Description,
		AchievedOn:  model.FormatDate(a.AchievedOn),
		CreatedAt:   a.CreatedAt,
	}
}

// AchievementHandler serves /achievements.
type AchievementHandler struct {
	routes crudRoutes[model.Achievement]
}

// NewAchievementHandler creates a new achievement handler.
func NewAchievementHandler(svc service.ResourceService[model.Achievement]) *AchievementHandler {
	return &AchievementHandler{routes: crudRoutes[model.Achievement]{
		noun:   "Achievement",
		svc:    svc,
		decode: decodeWith((*AchievementRequest).toModel),
		encode: newAchievementResponse,
	}}
}

// List godoc
// @Summary List achievements
// @Tags achievements
// @Produce json
// @Security TokenAuth
// @Success 200 {array} AchievementResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /achievements [get]
func (h *AchievementHandler) List(c echo.Context) error { return h.routes.list(c) }

// Create godoc
// @Summary Record an achievement
// @Tags achievements
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body AchievementRequest true "Achievement"
// @Success 201 {object} AchievementResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /achievements [post]
func (h *AchievementHandler) Create(c echo.Context) error { return h.routes.create(c) }

// Delete godoc
// @Summary Delete an achievement
// @Tags achievements
// @Produce json
// @Security TokenAuth
// @Param id path int true "Achievement ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /achievements/{id} [delete]
func (h *AchievementHandler) Delete(c echo.Context) error { return h.routes.delete(c) }
