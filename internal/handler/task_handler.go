package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"studyhub/internal/model"
	"studyhub/internal/service"
)

// TaskRequest is the body for creating or replacing a task.
type TaskRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description string  `json:"description"`
	CategoryID  *uint   `json:"category_id"`
	Deadline    *string `json:"deadline" example:"2025-06-30"`
	Status      string  `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
}

// TaskResponse is a task with its category name joined in.
type TaskResponse struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"user_id"`
	CategoryID   *uint     `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Deadline     *string   `json:"deadline"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (r *TaskRequest) toModel() (*model.Task, error) {
	deadline, err := parseOptionalDateField("deadline", r.Deadline)
	if err != nil {
		return nil, err
	}
	return &model.Task{
		Title:       r.Title,
		Description: r.Description,
		CategoryID:  r.CategoryID,
		Deadline:    deadline,
		Status:      model.TaskStatus(r.Status),
	}, nil
}

func newTaskResponse(t *model.Task) interface{} {
	return TaskResponse{
		ID:           t.ID,
		UserID:       t.UserID,
		CategoryID:   t.CategoryID,
		CategoryName: t.CategoryName(),
		Title:        t.Title,
		Description:  t.Description,
		Deadline:     model.FormatDatePtr(t.Deadline),
		Status:       string(t.Status),
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// TaskHandler serves /tasks.
type TaskHandler struct {
	routes crudRoutes[model.Task]
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(svc service.ResourceService[model.Task]) *TaskHandler {
	return &TaskHandler{routes: crudRoutes[model.Task]{
		noun:   "Task",
		svc:    svc,
		decode: decodeWith((*TaskRequest).toModel),
		encode: newTaskResponse,
	}}
}

// List godoc
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Security TokenAuth
// @Success 200 {array} TaskResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /tasks [get]
func (h *TaskHandler) List(c echo.Context) error { return h.routes.list(c) }

// Get godoc
// @Summary Get a task
// @Tags tasks
// @Produce json
// @Security TokenAuth
// @Param id path int true "Task ID"
// @Success 200 {object} TaskResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tasks/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error { return h.routes.get(c) }

// Create godoc
// @Summary Create a task
// @Description Status defaults to pending.
// @Tags tasks
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body TaskRequest true "Task"
// @Success 201 {object} TaskResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /tasks [post]
func (h *TaskHandler) Create(c echo.Context) error { return h.routes.create(c) }

// Update godoc
// @Summary Replace a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Task ID"
// @Param request body TaskRequest true "Task"
// @Success 200 {object} TaskResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error { return h.routes.update(c) }

// Delete godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Security TokenAuth
// @Param id path int true "Task ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error { return h.routes.delete(c) }
