package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{name: "json info", level: "info", format: "json"},
		{name: "console debug", level: "DEBUG", format: "console"},
		{name: "empty level", level: "", format: "json"},
		{name: "bad level", level: "loud", format: "json", wantErr: true},
		{name: "bad format", level: "info", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.level, tt.format, &bytes.Buffer{})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("info", "json", &buf)
	require.NoError(t, err)

	e := echo.New()
	e.Use(RequestLogger(logger))
	e.GET("/tasks/:id", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusInternalServerError, "boom").SetInternal(errors.New("db down"))
	})

	req := httptest.NewRequest(http.MethodGet, "/tasks/7", nil)
	req.Header.Set("x-access-token", "secret-token")
	e.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "error", line["level"])
	assert.Equal(t, "/tasks/:id", line["route"])
	assert.Equal(t, "/tasks/7", line["path"])
	assert.EqualValues(t, http.StatusInternalServerError, line["status"])
	assert.Contains(t, line["error"], "db down")
	assert.NotContains(t, buf.String(), "secret-token")
}
