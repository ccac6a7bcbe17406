package repository

import (
	"context"

	"gorm.io/gorm"

	"studyhub/internal/model"
)

// OwnedRepository performs ownership-scoped persistence for one record type.
// Every query filters on the owner id, so a row belonging to another user
// behaves exactly like a missing row and surfaces as gorm.ErrRecordNotFound.
type OwnedRepository[T any] interface {
	List(ctx context.Context, ownerID uint) ([]T, error)
	Get(ctx context.Context, ownerID, id uint) (*T, error)
	Create(ctx context.Context, ownerID uint, record *T) (*T, error)
	Update(ctx context.Context, ownerID, id uint, record *T) (*T, error)
	Delete(ctx context.Context, ownerID, id uint) error
}

type ownedRepository[T any, PT model.Owned[T]] struct {
	db       *gorm.DB
	columns  []string
	preloads []string
}

func newOwnedRepository[T any, PT model.Owned[T]](db *gorm.DB, columns []string, preloads ...string) OwnedRepository[T] {
	return &ownedRepository[T, PT]{db: db, columns: columns, preloads: preloads}
}

// NewTaskRepository builds the task repository; tasks carry their category.
func NewTaskRepository(db *gorm.DB) OwnedRepository[model.Task] {
	return newOwnedRepository[model.Task](db, model.TaskColumns, "Category")
}

// NewResourceRepository builds the learning resource repository.
func NewResourceRepository(db *gorm.DB) OwnedRepository[model.Resource] {
	return newOwnedRepository[model.Resource](db, model.ResourceColumns)
}

// NewSessionRepository builds the session repository; sessions carry their task.
func NewSessionRepository(db *gorm.DB) OwnedRepository[model.Session] {
	return newOwnedRepository[model.Session](db, model.SessionColumns, "Task")
}

// NewNoteRepository builds the note repository.
func NewNoteRepository(db *gorm.DB) OwnedRepository[model.Note] {
	return newOwnedRepository[model.Note](db, model.NoteColumns)
}

// NewAchievementRepository builds the achievement repository.
func NewAchievementRepository(db *gorm.DB) OwnedRepository[model.Achievement] {
	return newOwnedRepository[model.Achievement](db, model.AchievementColumns)
}

// NewLogRepository builds the daily log repository.
func NewLogRepository(db *gorm.DB) OwnedRepository[model.Log] {
	return newOwnedRepository[model.Log](db, model.LogColumns)
}

func (r *ownedRepository[T, PT]) query(ctx context.Context) *gorm.DB {
	q := r.db.WithContext(ctx)
	for _, rel := range r.preloads {
		q = q.Preload(rel)
	}
	return q
}

func (r *ownedRepository[T, PT]) List(ctx context.Context, ownerID uint) ([]T, error) {
	records := make([]T, 0)
	if err := r.query(ctx).Where("user_id = ?", ownerID).Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *ownedRepository[T, PT]) Get(ctx context.Context, ownerID, id uint) (*T, error) {
	var record T
	if err := r.query(ctx).Where("id = ? AND user_id = ?", id, ownerID).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// Create stamps the owner and inserts the record. Records with relations are
// read back so the caller sees the joined fields.
func (r *ownedRepository[T, PT]) Create(ctx context.Context, ownerID uint, record *T) (*T, error) {
	PT(record).SetOwner(ownerID)
	if err := r.db.WithContext(ctx).Omit(r.preloads...).Create(record).Error; err != nil {
		return nil, err
	}
	if len(r.preloads) == 0 {
		return record, nil
	}
	return r.Get(ctx, ownerID, PT(record).Key())
}

// Update replaces the mutable columns of one owned row in a single statement.
// Zero values are written too.
func (r *ownedRepository[T, PT]) Update(ctx context.Context, ownerID, id uint, record *T) (*T, error) {
	res := r.db.WithContext(ctx).
		Model(PT(new(T))).
		Where("id = ? AND user_id = ?", id, ownerID).
		Select(r.columns).
		Updates(record)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.Get(ctx, ownerID, id)
}

func (r *ownedRepository[T, PT]) Delete(ctx context.Context, ownerID, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).Delete(PT(new(T)))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
