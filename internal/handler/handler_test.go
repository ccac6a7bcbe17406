package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"studyhub/internal/errors"
	"studyhub/internal/model"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

// fakeTaskService keeps tasks in memory for one owner.
type fakeTaskService struct {
	tasks map[uint]*model.Task
	next  uint
}

func (f *fakeTaskService) List(_ context.Context, _ *model.User) ([]model.Task, error) {
	out := make([]model.Task, 0, len(f.tasks))
	for id := uint(1); id <= f.next; id++ {
		if t, ok := f.tasks[id]; ok {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTaskService) Get(_ context.Context, _ *model.User, id uint) (*model.Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return nil, errors.ErrNotFound
	}
	return t, nil
}

func (f *fakeTaskService) Create(_ context.Context, owner *model.User, t *model.Task) (*model.Task, error) {
	t.ApplyDefaults()
	f.next++
	t.ID = f.next
	t.UserID = owner.ID
	f.tasks[t.ID] = t
	return t, nil
}

func (f *fakeTaskService) Update(_ context.Context, owner *model.User, id uint, t *model.Task) (*model.Task, error) {
	if _, ok := f.tasks[id]; !ok {
		return nil, errors.ErrNotFound
	}
	t.ApplyDefaults()
	t.ID = id
	t.UserID = owner.ID
	f.tasks[id] = t
	return t, nil
}

func (f *fakeTaskService) Delete(_ context.Context, _ *model.User, id uint) error {
	if _, ok := f.tasks[id]; !ok {
		return errors.ErrNotFound
	}
	delete(f.tasks, id)
	return nil
}

func newTaskServer() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	h := NewTaskHandler(&fakeTaskService{tasks: map[uint]*model.Task{}})
	withUser := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("user", &model.User{ID: 5, Username: "alice"})
			return next(c)
		}
	}
	g := e.Group("/tasks", withUser)
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	return e
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestTaskHandler_CRUD(t *testing.T) {
	e := newTaskServer()

	rec := do(e, http.MethodPost, "/tasks", `{"title":"Write spec","deadline":"2025-06-30"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created TaskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, uint(1), created.ID)
	assert.Equal(t, uint(5), created.UserID)
	assert.Equal(t, "pending", created.Status)
	require.NotNil(t, created.Deadline)
	assert.Equal(t, "2025-06-30", *created.Deadline)

	rec = do(e, http.MethodPut, "/tasks/1", `{"title":"Write spec","status":"completed"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"completed"`)
	assert.Contains(t, rec.Body.String(), `"deadline":null`)

	rec = do(e, http.MethodDelete, "/tasks/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Task deleted successfully"}`, rec.Body.String())

	rec = do(e, http.MethodGet, "/tasks/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"record not found","code":"NOT_FOUND"}`, rec.Body.String())
}

func TestTaskHandler_BadInput(t *testing.T) {
	e := newTaskServer()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{name: "missing title", method: http.MethodPost, path: "/tasks", body: `{"description":"no title"}`},
		{name: "unknown status", method: http.MethodPost, path: "/tasks", body: `{"title":"x","status":"done"}`},
		{name: "bad deadline", method: http.MethodPost, path: "/tasks", body: `{"title":"x","deadline":"next week"}`},
		{name: "malformed json", method: http.MethodPost, path: "/tasks", body: `{"title":`},
		{name: "non-numeric id", method: http.MethodGet, path: "/tasks/abc"},
		{name: "zero id", method: http.MethodDelete, path: "/tasks/0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"VALIDATION_ERROR"`)
		})
	}
}

func TestNewSessionResponse(t *testing.T) {
	day, err := model.ParseDate("2025-03-14")
	require.NoError(t, err)
	taskID := uint(2)

	resp := newSessionResponse(&model.Session{
		ID:          9,
		UserID:      5,
		TaskID:      &taskID,
		SessionDate: day,
		StartTime:   datatypes.NewTime(23, 0, 0, 0),
		EndTime:     datatypes.NewTime(0, 30, 0, 0),
		Task:        &model.Task{ID: 2, Title: "Thesis"},
	}).(SessionResponse)

	assert.Equal(t, "2025-03-14", resp.SessionDate)
	assert.Equal(t, "23:00:00", resp.StartTime)
	assert.Equal(t, "00:30:00", resp.EndTime)
	assert.Equal(t, 0, resp.DurationMinutes, "unknown duration renders as 0")
	assert.Equal(t, "Thesis", resp.TaskTitle)
}

func TestSessionRequest_ToModel(t *testing.T) {
	req := SessionRequest{SessionDate: "2025-03-14", StartTime: "09:00", EndTime: "25:00"}
	_, err := req.toModel()
	assert.ErrorIs(t, err, errors.ErrValidation)

	req.EndTime = "10:15:00"
	s, err := req.toModel()
	require.NoError(t, err)
	assert.Nil(t, s.DurationMinutes)
	assert.Equal(t, "10:15:00", model.FormatClock(s.EndTime))
}
