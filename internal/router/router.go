package router

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"studyhub/internal/auth"
	"studyhub/internal/handler"
	"studyhub/internal/logging"
	"studyhub/internal/metrics"
	authmw "studyhub/internal/middleware"
	"studyhub/internal/repository"
	"studyhub/internal/telemetry"
)

// Deps bundles everything Register wires into the echo instance.
type Deps struct {
	Logger         zerolog.Logger
	Metrics        *metrics.Metrics
	Tokens         *auth.JWTService
	Users          repository.UserRepository
	AllowedOrigins []string
	ServiceName    string

	Auth         *handler.AuthHandler
	Tasks        *handler.TaskHandler
	Categories   *handler.CategoryHandler
	Resources    *handler.ResourceHandler
	Sessions     *handler.SessionHandler
	Notes        *handler.NoteHandler
	Achievements *handler.AchievementHandler
	Logs         *handler.LogHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, d Deps) {
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Recover())
	e.Use(logging.RequestLogger(d.Logger))
	e.Use(d.Metrics.Middleware())
	if d.ServiceName != "" {
		e.Use(telemetry.Middleware(d.ServiceName))
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: d.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, authmw.TokenHeader},
	}))

	// Add validator
	e.Validator = NewValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(d.Metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/register", d.Auth.Register)
	e.POST("/login", d.Auth.Login)

	// Secured routes (require x-access-token)
	secured := e.Group("", authmw.Authorize(d.Tokens, d.Users, d.Metrics)...)

	secured.GET("/me", d.Auth.Me)

	secured.GET("/tasks", d.Tasks.List)
	secured.POST("/tasks", d.Tasks.Create)
	secured.GET("/tasks/:id", d.Tasks.Get)
	secured.PUT("/tasks/:id", d.Tasks.Update)
	secured.DELETE("/tasks/:id", d.Tasks.Delete)

	secured.GET("/categories", d.Categories.List)

	secured.GET("/resources", d.Resources.List)
	secured.POST("/resources", d.Resources.Create)
	secured.DELETE("/resources/:id", d.Resources.Delete)

	secured.GET("/sessions", d.Sessions.List)
	secured.POST("/sessions", d.Sessions.Create)
	secured.DELETE("/sessions/:id", d.Sessions.Delete)

	secured.GET("/notes", d.Notes.List)
	secured.POST("/notes", d.Notes.Create)
	secured.GET("/notes/:id", d.Notes.Get)
	secured.PUT("/notes/:id", d.Notes.Update)
	secured.DELETE("/notes/:id", d.Notes.Delete)

	secured.GET("/achievements", d.Achievements.List)
	secured.POST("/achievements", d.Achievements.Create)
	secured.DELETE("/achievements/:id", d.Achievements.Delete)

	secured.GET("/logs", d.Logs.List)
	secured.POST("/logs", d.Logs.Create)
	secured.DELETE("/logs/:id", d.Logs.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator reports fields by their JSON names.
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
