package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "calendar date", in: "2025-03-14", want: "2025-03-14"},
		{name: "rfc3339 keeps the day", in: "2025-03-14T22:10:00+02:00", want: "2025-03-14"},
		{name: "garbage", in: "14/03/2025", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, FormatDate(d))
		})
	}
}

func TestFormatDatePtr(t *testing.T) {
	assert.Nil(t, FormatDatePtr(nil))

	d := datatypes.Date(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC))
	got := FormatDatePtr(&d)
	require.NotNil(t, got)
	assert.Equal(t, "2024-12-01", *got)
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "09:30", want: "09:30:00"},
		{in: "23:59:58", want: "23:59:58"},
		{in: "24:00", wantErr: true},
		{in: "9.30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseClock(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, FormatClock(c))
		})
	}
}

func TestSessionApplyDefaults(t *testing.T) {
	t.Run("derives duration", func(t *testing.T) {
		s := Session{StartTime: datatypes.NewTime(9, 0, 0, 0), EndTime: datatypes.NewTime(10, 45, 30, 0)}
		s.ApplyDefaults()
		require.NotNil(t, s.DurationMinutes)
		assert.Equal(t, 105, s.Minutes())
	})

	t.Run("keeps explicit duration", func(t *testing.T) {
		d := 50
		s := Session{StartTime: datatypes.NewTime(9, 0, 0, 0), EndTime: datatypes.NewTime(10, 0, 0, 0), DurationMinutes: &d}
		s.ApplyDefaults()
		assert.Equal(t, 50, s.Minutes())
	})

	t.Run("past midnight stays unknown", func(t *testing.T) {
		s := Session{StartTime: datatypes.NewTime(23, 0, 0, 0), EndTime: datatypes.NewTime(1, 0, 0, 0)}
		s.ApplyDefaults()
		assert.Nil(t, s.DurationMinutes)
		assert.Equal(t, 0, s.Minutes())
	})
}

func TestTaskApplyDefaults(t *testing.T) {
	task := Task{Title: "Write spec"}
	task.ApplyDefaults()
	assert.Equal(t, TaskStatusPending, task.Status)

	task = Task{Title: "Ship", Status: TaskStatusCompleted}
	task.ApplyDefaults()
	assert.Equal(t, TaskStatusCompleted, task.Status)
	assert.Equal(t, "", task.CategoryName())
}
