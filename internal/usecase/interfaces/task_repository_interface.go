package interfaces

import (
	"context"
	"oficina_os/internal/domain/entities"
)

// ITaskRepository abstracts DynamoDB persistence for Task.

type ITaskRepository interface {
	Create(ctx context.Context, t entities.Task) (entities.Task, error)
	GetByID(ctx context.Context, id int64) (entities.Task, error)
	List(ctx context.Context) ([]entities.Task, error)
	Update(ctx context.Context, t entities.Task) (entities.Task, error)
	UpdateStatus(ctx context.Context, id int64, status entities.TaskStatus) (entities.Task, error)
	Delete(ctx context.Context, id int64) error
}
