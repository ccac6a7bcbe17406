package repository

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"studyhub/internal/db"
	"studyhub/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard, TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.Migrate(context.Background(), gdb, false))
	return gdb
}

func createUser(t *testing.T, gdb *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{Username: username, Email: username + "@x.com", PasswordHash: "hash"}
	require.NoError(t, NewUserRepository(gdb).Create(context.Background(), user))
	return user
}

func TestUserRepository(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewUserRepository(gdb)
	ctx := context.Background()

	alice := createUser(t, gdb, "alice")
	assert.NotZero(t, alice.ID)

	byName, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, byName.ID)

	byEmail, err := repo.FindByEmail(ctx, "alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, byEmail.ID)

	byID, err := repo.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	_, err = repo.FindByUsername(ctx, "bob")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	dup := &model.User{Username: "alice", Email: "other@x.com", PasswordHash: "hash"}
	assert.Error(t, repo.Create(ctx, dup), "username is unique")
}

func TestOwnedRepository_Ownership(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewNoteRepository(gdb)
	ctx := context.Background()

	alice := createUser(t, gdb, "alice")
	bob := createUser(t, gdb, "bob")

	note, err := repo.Create(ctx, alice.ID, &model.Note{Title: "ideas", Content: "one"})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, note.UserID)

	_, err = repo.Get(ctx, bob.ID, note.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.Update(ctx, bob.ID, note.ID, &model.Note{Title: "stolen"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, bob.ID, note.ID), gorm.ErrRecordNotFound)

	list, err := repo.List(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	got, err := repo.Get(ctx, alice.ID, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "ideas", got.Title)
	assert.Equal(t, "one", got.Content)
}

func TestOwnedRepository_ListOrder(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewLogRepository(gdb)
	ctx := context.Background()
	alice := createUser(t, gdb, "alice")

	for _, mood := range []string{"calm", "tired", "great"} {
		_, err := repo.Create(ctx, alice.ID, &model.Log{Summary: "day", Mood: mood})
		require.NoError(t, err)
	}

	logs, err := repo.List(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, "calm", logs[0].Mood)
	assert.Equal(t, "great", logs[2].Mood)
	assert.Less(t, logs[0].ID, logs[1].ID)
}

func TestOwnedRepository_UpdateReplacesFields(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewTaskRepository(gdb)
	ctx := context.Background()
	alice := createUser(t, gdb, "alice")

	category := model.Category{Name: "Study"}
	require.NoError(t, gdb.Create(&category).Error)

	task, err := repo.Create(ctx, alice.ID, &model.Task{
		Title:       "Read chapter",
		Description: "ch. 4",
		CategoryID:  &category.ID,
		Status:      model.TaskStatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, "Study", task.CategoryName())

	updated, err := repo.Update(ctx, alice.ID, task.ID, &model.Task{Title: "Read chapter", Status: model.TaskStatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusCompleted, updated.Status)
	assert.Empty(t, updated.Description, "zero values overwrite")
	assert.Nil(t, updated.CategoryID)
	assert.Equal(t, alice.ID, updated.UserID)

	_, err = repo.Update(ctx, alice.ID, task.ID, &model.Task{Title: "Read chapter", Status: model.TaskStatusCompleted})
	assert.NoError(t, err, "unchanged rows still match")
}

func TestOwnedRepository_DeleteTwice(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewAchievementRepository(gdb)
	ctx := context.Background()
	alice := createUser(t, gdb, "alice")

	achievement, err := repo.Create(ctx, alice.ID, &model.Achievement{Title: "First 10k"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, alice.ID, achievement.ID))
	assert.ErrorIs(t, repo.Delete(ctx, alice.ID, achievement.ID), gorm.ErrRecordNotFound)
}

func TestSessionRepository_PreloadsTask(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	alice := createUser(t, gdb, "alice")

	task, err := NewTaskRepository(gdb).Create(ctx, alice.ID, &model.Task{Title: "Thesis", Status: model.TaskStatusPending})
	require.NoError(t, err)

	day, err := model.ParseDate("2025-03-14")
	require.NoError(t, err)
	minutes := 90
	session, err := NewSessionRepository(gdb).Create(ctx, alice.ID, &model.Session{
		TaskID:          &task.ID,
		SessionDate:     day,
		StartTime:       datatypes.NewTime(9, 0, 0, 0),
		EndTime:         datatypes.NewTime(10, 30, 0, 0),
		DurationMinutes: &minutes,
	})
	require.NoError(t, err)
	assert.Equal(t, "Thesis", session.TaskTitle())
	assert.Equal(t, "2025-03-14", model.FormatDate(session.SessionDate))
	assert.Equal(t, "10:30:00", model.FormatClock(session.EndTime))
	assert.Equal(t, 90, session.Minutes())
}

func TestCategoryRepository(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewCategoryRepository(gdb)
	ctx := context.Background()

	_, err := db.SeedCategories(ctx, gdb, []string{"Study", "Work"})
	require.NoError(t, err)

	categories, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Study", categories[0].Name)

	ok, err := repo.Exists(ctx, categories[1].ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(ctx, 999)
	require.NoError(t, err)
	assert.False(t, ok)
}
