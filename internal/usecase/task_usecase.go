package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"
)

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrInvalidTaskID = errors.New("invalid task id")
)

// TaskDraft is the client-side payload for creating a task. Status always
// starts at pendente; priority defaults to media when unspecified.
type TaskDraft struct {
	Title           string
	Description     string
	Priority        entities.TaskPriority
	DueAt           *time.Time
	RelatedOrderID  *int64
	RelatedClientID *int64
}

// TaskPatch is the generic update: it replaces every mutable field and
// carries the explicit target status, so one call drives any valid
// transition instead of a method per edge.
type TaskPatch struct {
	Title           string
	Description     string
	Priority        entities.TaskPriority
	Status          entities.TaskStatus
	DueAt           *time.Time
	RelatedOrderID  *int64
	RelatedClientID *int64
}

// ITaskUseCase exposes the task lifecycle.

type ITaskUseCase interface {
	Create(ctx context.Context, draft TaskDraft) (entities.Task, error)
	GetByID(ctx context.Context, id int64) (entities.Task, error)
	List(ctx context.Context, query entities.ListQuery) ([]entities.Task, error)
	Update(ctx context.Context, id int64, patch TaskPatch) (entities.Task, error)
	Start(ctx context.Context, id int64) (entities.Task, error)
	Complete(ctx context.Context, id int64) (entities.Task, error)
	Delete(ctx context.Context, id int64) error
}

type TaskUseCase struct {
	repo interfaces.ITaskRepository
}

var _ ITaskUseCase = (*TaskUseCase)(nil)

func NewTaskUseCase(repo interfaces.ITaskRepository) *TaskUseCase {
	return &TaskUseCase{repo: repo}
}

func (u *TaskUseCase) Create(ctx context.Context, draft TaskDraft) (entities.Task, error) {
	t := entities.Task{
		Title:           strings.TrimSpace(draft.Title),
		Description:     strings.TrimSpace(draft.Description),
		Priority:        draft.Priority,
		Status:          entities.TaskStatusPendente,
		DueAt:           draft.DueAt,
		RelatedOrderID:  draft.RelatedOrderID,
		RelatedClientID: draft.RelatedClientID,
	}
	if t.Priority == "" {
		t.Priority = entities.TaskPriorityMedia
	}
	if err := t.ValidateDraft(); err != nil {
		return entities.Task{}, err
	}

	created, err := u.repo.Create(ctx, t)
	if err != nil {
		return entities.Task{}, remoteErr("create", "task", "", err)
	}
	return created, nil
}

func (u *TaskUseCase) GetByID(ctx context.Context, id int64) (entities.Task, error) {
	if id <= 0 {
		return entities.Task{}, ErrInvalidTaskID
	}
	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Task{}, remoteErr("get", "task", formatID(id), err)
	}
	if t.ID == 0 {
		return entities.Task{}, ErrTaskNotFound
	}
	return t, nil
}

func (u *TaskUseCase) List(ctx context.Context, query entities.ListQuery) ([]entities.Task, error) {
	tasks, err := u.repo.List(ctx)
	if err != nil {
		return nil, remoteErr("list", "task", "", err)
	}
	if query.Now.IsZero() {
		query.Now = nowUTC()
	}
	return entities.FilterTasks(tasks, query), nil
}

func (u *TaskUseCase) Update(ctx context.Context, id int64, patch TaskPatch) (entities.Task, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Task{}, err
	}
	if current.Status.Terminal() {
		return entities.Task{}, &entities.InvalidTransitionError{
			Entity: "task",
			From:   string(current.Status),
			To:     string(patch.Status),
		}
	}
	if err := current.Transition(patch.Status); err != nil {
		return entities.Task{}, err
	}

	next := current
	next.Title = strings.TrimSpace(patch.Title)
	next.Description = strings.TrimSpace(patch.Description)
	next.Priority = patch.Priority
	next.Status = patch.Status
	next.DueAt = patch.DueAt
	next.RelatedOrderID = patch.RelatedOrderID
	next.RelatedClientID = patch.RelatedClientID
	if next.Priority == "" {
		next.Priority = entities.TaskPriorityMedia
	}
	if err := next.ValidateDraft(); err != nil {
		return entities.Task{}, err
	}

	updated, err := u.repo.Update(ctx, next)
	if err != nil {
		return entities.Task{}, remoteErr("update", "task", formatID(id), err)
	}
	if updated.ID == 0 {
		return entities.Task{}, ErrTaskNotFound
	}
	return updated, nil
}

func (u *TaskUseCase) Start(ctx context.Context, id int64) (entities.Task, error) {
	return u.transition(ctx, id, entities.TaskStatusEmAndamento)
}

func (u *TaskUseCase) Complete(ctx context.Context, id int64) (entities.Task, error) {
	return u.transition(ctx, id, entities.TaskStatusConcluida)
}

func (u *TaskUseCase) transition(ctx context.Context, id int64, next entities.TaskStatus) (entities.Task, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Task{}, err
	}
	if err := current.Transition(next); err != nil {
		return entities.Task{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, id, next)
	if err != nil {
		return entities.Task{}, remoteErr(string(next), "task", formatID(id), err)
	}
	if updated.ID == 0 {
		return entities.Task{}, ErrTaskNotFound
	}
	return updated, nil
}

// Delete is allowed from any state; a removed task leaves no money trail.
func (u *TaskUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return remoteErr("delete", "task", formatID(id), err)
	}
	return nil
}
