package interfaces

import (
	"context"
	"oficina_os/internal/domain/entities"
)

// IServiceOrderRepository abstracts DynamoDB persistence for ServiceOrder.
//
// The repository, never the caller, assigns ids (atomic counter) and the
// opened/updated timestamps. Not-found is signalled by a zero-value order
// with a nil error; the use case maps it to a sentinel.

type IServiceOrderRepository interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id int64) (entities.ServiceOrder, error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	UpdateStatus(ctx context.Context, id int64, status entities.OrderStatus) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id int64) error
}
