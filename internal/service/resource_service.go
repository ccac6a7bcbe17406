package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "studyhub/internal/errors"
	"studyhub/internal/model"
	"studyhub/internal/repository"
)

// ResourceService exposes ownership-scoped CRUD for one record type.
type ResourceService[T any] interface {
	List(ctx context.Context, owner *model.User) ([]T, error)
	Get(ctx context.Context, owner *model.User, id uint) (*T, error)
	Create(ctx context.Context, owner *model.User, record *T) (*T, error)
	Update(ctx context.Context, owner *model.User, id uint, record *T) (*T, error)
	Delete(ctx context.Context, owner *model.User, id uint) error
}

// referenceCheck validates the foreign keys a record points at before it is written.
type referenceCheck[T any] func(ctx context.Context, ownerID uint, record *T) error

type resourceService[T any, PT model.Owned[T]] struct {
	name  string
	repo  repository.OwnedRepository[T]
	check referenceCheck[T]
}

func newResourceService[T any, PT model.Owned[T]](name string, repo repository.OwnedRepository[T], check referenceCheck[T]) ResourceService[T] {
	return &resourceService[T, PT]{name: name, repo: repo, check: check}
}

// NewTaskService builds the task service. A task's category must exist.
func NewTaskService(repo repository.OwnedRepository[model.Task], categories repository.CategoryRepository) ResourceService[model.Task] {
	return newResourceService[model.Task]("task", repo, func(ctx context.Context, _ uint, task *model.Task) error {
		if task.CategoryID == nil {
			return nil
		}
		ok, err := categories.Exists(ctx, *task.CategoryID)
		if err != nil {
			return apperrors.Store("check category", err)
		}
		if !ok {
			return apperrors.Validation("category_id %d does not exist", *task.CategoryID)
		}
		return nil
	})
}

// NewSessionService builds the session service. A session may only point at
// one of its owner's tasks.
func NewSessionService(repo repository.OwnedRepository[model.Session], tasks repository.OwnedRepository[model.Task]) ResourceService[model.Session] {
	return newResourceService[model.Session]("session", repo, func(ctx context.Context, ownerID uint, session *model.Session) error {
		if session.TaskID == nil {
			return nil
		}
		if _, err := tasks.Get(ctx, ownerID, *session.TaskID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.Validation("task_id %d does not exist", *session.TaskID)
			}
			return apperrors.Store("check task", err)
		}
		return nil
	})
}

// NewResourceService builds the learning resource service.
func NewResourceService(repo repository.OwnedRepository[model.Resource]) ResourceService[model.Resource] {
	return newResourceService[model.Resource]("resource", repo, nil)
}

// NewNoteService builds the note service.
func NewNoteService(repo repository.OwnedRepository[model.Note]) ResourceService[model.Note] {
	return newResourceService[model.Note]("note", repo, nil)
}

// NewAchievementService builds the achievement service.
func NewAchievementService(repo repository.OwnedRepository[model.Achievement]) ResourceService[model.Achievement] {
	return newResourceService[model.Achievement]("achievement", repo, nil)
}

// NewLogService builds the daily log service.
func NewLogService(repo repository.OwnedRepository[model.Log]) ResourceService[model.Log] {
	return newResourceService[model.Log]("log", repo, nil)
}

func (s *resourceService[T, PT]) List(ctx context.Context, owner *model.User) ([]T, error) {
	records, err := s.repo.List(ctx, owner.ID)
	if err != nil {
		return nil, s.mapErr("list", err)
	}
	return records, nil
}

func (s *resourceService[T, PT]) Get(ctx context.Context, owner *model.User, id uint) (*T, error) {
	record, err := s.repo.Get(ctx, owner.ID, id)
	if err != nil {
		return nil, s.mapErr("get", err)
	}
	return record, nil
}

func (s *resourceService[T, PT]) Create(ctx context.Context, owner *model.User, record *T) (*T, error) {
	if err := s.prepare(ctx, owner.ID, record); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, owner.ID, record)
	if err != nil {
		return nil, s.mapErr("create", err)
	}
	return created, nil
}

// Update replaces an owned record. A row the owner cannot see is reported as
// not found before any reference in the body is checked.
func (s *resourceService[T, PT]) Update(ctx context.Context, owner *model.User, id uint, record *T) (*T, error) {
	if s.check != nil {
		if _, err := s.repo.Get(ctx, owner.ID, id); err != nil {
			return nil, s.mapErr("update", err)
		}
	}
	if err := s.prepare(ctx, owner.ID, record); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, owner.ID, id, record)
	if err != nil {
		return nil, s.mapErr("update", err)
	}
	return updated, nil
}

func (s *resourceService[T, PT]) Delete(ctx context.Context, owner *model.User, id uint) error {
	if err := s.repo.Delete(ctx, owner.ID, id); err != nil {
		return s.mapErr("delete", err)
	}
	return nil
}

func (s *resourceService[T, PT]) prepare(ctx context.Context, ownerID uint, record *T) error {
	PT(record).ApplyDefaults()
	if s.check == nil {
		return nil
	}
	return s.check(ctx, ownerID, record)
}

func (s *resourceService[T, PT]) mapErr(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}
	return apperrors.Store(op+" "+s.name, err)
}
