package interfaces

import (
	"context"
	"oficina_os/internal/domain/entities"
)

// IReceivableRepository abstracts DynamoDB persistence for Receivable.

type IReceivableRepository interface {
	Create(ctx context.Context, r entities.Receivable) (entities.Receivable, error)
	GetByID(ctx context.Context, id string) (entities.Receivable, error)
	ListByOrderID(ctx context.Context, orderID int64) ([]entities.Receivable, error)
}
