package handler

import (
	stderrors "errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"

	"studyhub/internal/errors"
	"studyhub/internal/middleware"
	"studyhub/internal/model"
	"studyhub/internal/service"
)

// MessageResponse is returned by delete endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// respondError converts a domain error into the JSON error body. The original
// error is kept as the internal cause so the request logger can report it.
func respondError(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
}

// bindAndValidate decodes the JSON body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, req); err != nil {
		return errors.Validation("invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return errors.Validation("%s", describeValidation(err))
	}
	return nil
}

func describeValidation(err error) string {
	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			parts = append(parts, fe.Field()+" must satisfy "+fe.Tag()+"="+fe.Param())
			continue
		}
		parts = append(parts, fe.Field()+" is "+fe.Tag())
	}
	return strings.Join(parts, "; ")
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.Validation("invalid id %q", c.Param("id"))
	}
	return uint(id), nil
}

// crudRoutes implements the ownership-scoped CRUD endpoints shared by every
// owned record type. decode turns a request body into a record and encode
// renders a record as its response DTO.
type crudRoutes[T any] struct {
	noun   string
	svc    service.ResourceService[T]
	decode func(c echo.Context) (*T, error)
	encode func(*T) interface{}
}

func (r crudRoutes[T]) list(c echo.Context) error {
	records, err := r.svc.List(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return respondError(err)
	}
	out := make([]interface{}, 0, len(records))
	for i := range records {
		out = append(out, r.encode(&records[i]))
	}
	return c.JSON(http.StatusOK, out)
}

func (r crudRoutes[T]) get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(err)
	}
	record, err := r.svc.Get(c.Request().Context(), middleware.CurrentUser(c), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, r.encode(record))
}

func (r crudRoutes[T]) create(c echo.Context) error {
	record, err := r.decode(c)
	if err != nil {
		return respondError(err)
	}
	created, err := r.svc.Create(c.Request().Context(), middleware.CurrentUser(c), record)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, r.encode(created))
}

func (r crudRoutes[T]) update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(err)
	}
	record, err := r.decode(c)
	if err != nil {
		return respondError(err)
	}
	updated, err := r.svc.Update(c.Request().Context(), middleware.CurrentUser(c), id, record)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, r.encode(updated))
}

func (r crudRoutes[T]) delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(err)
	}
	if err := r.svc.Delete(c.Request().Context(), middleware.CurrentUser(c), id); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: r.noun + " deleted successfully"})
}

// decodeWith binds and validates a request DTO, then converts it to a record.
func decodeWith[Req any, T any](toModel func(*Req) (*T, error)) func(c echo.Context) (*T, error) {
	return func(c echo.Context) (*T, error) {
		var req Req
		if err := bindAndValidate(c, &req); err != nil {
			return nil, err
		}
		return toModel(&req)
	}
}

func parseDateField(field, value string) (datatypes.Date, error) {
	d, err := model.ParseDate(value)
	if err != nil {
		return datatypes.Date{}, errors.Validation("%s: %v", field, err)
	}
	return d, nil
}

// parseOptionalDateField treats a missing or empty value as no date.
func parseOptionalDateField(field string, value *string) (*datatypes.Date, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	d, err := parseDateField(field, *value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func parseClockField(field, value string) (datatypes.Time, error) {
	t, err := model.ParseClock(value)
	if err != nil {
		return 0, errors.Validation("%s: %v", field, err)
	}
	return t, nil
}
