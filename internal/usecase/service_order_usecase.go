package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound  = errors.New("service order not found")
	ErrInvalidOrderID = errors.New("invalid service order id")
)

// OrderDraft is the client-side payload for creating a service order. The
// repository assigns id and timestamps; the draft never carries them.
type OrderDraft struct {
	Type           entities.OrderType
	ClientID       int64
	VehicleID      int64
	Description    string
	Items          []entities.OrderItem
	DiscountAmount float64
}

// OrderPatch is the free-form update for an order that is still aberta.
type OrderPatch struct {
	Description    string
	Items          []entities.OrderItem
	DiscountAmount float64
}

// IServiceOrderUseCase exposes the service order lifecycle.
//
// Validation and transition legality are decided here (and in the domain
// tables) before any repository call; the repository only ever sees
// payloads that already passed the preconditions.

type IServiceOrderUseCase interface {
	Create(ctx context.Context, draft OrderDraft) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id int64) (entities.ServiceOrder, error)
	List(ctx context.Context, query entities.ListQuery) ([]entities.ServiceOrder, error)
	Update(ctx context.Context, id int64, patch OrderPatch) (entities.ServiceOrder, error)
	Finalize(ctx context.Context, id int64) (entities.ServiceOrder, error)
	Cancel(ctx context.Context, id int64) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id int64) error
}

type ServiceOrderUseCase struct {
	repo interfaces.IServiceOrderRepository
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(repo interfaces.IServiceOrderRepository) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{repo: repo}
}

func (u *ServiceOrderUseCase) Create(ctx context.Context, draft OrderDraft) (entities.ServiceOrder, error) {
	o := entities.ServiceOrder{
		Type:           draft.Type,
		ClientID:       draft.ClientID,
		VehicleID:      draft.VehicleID,
		Description:    strings.TrimSpace(draft.Description),
		Items:          draft.Items,
		DiscountAmount: draft.DiscountAmount,
		Status:         entities.OrderStatusAberta,
	}
	if err := o.ValidateDraft(); err != nil {
		return entities.ServiceOrder{}, err
	}
	// Price once up front so an uncomputable order is rejected before the
	// network call, not after.
	if _, err := entities.ComputeTotals(o.Items, o.DiscountAmount); err != nil {
		return entities.ServiceOrder{}, err
	}

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.ServiceOrder{}, remoteErr("create", "service_order", "", err)
	}
	return created, nil
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, id int64) (entities.ServiceOrder, error) {
	if id <= 0 {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, remoteErr("get", "service_order", formatID(id), err)
	}
	if o.ID == 0 {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *ServiceOrderUseCase) List(ctx context.Context, query entities.ListQuery) ([]entities.ServiceOrder, error) {
	orders, err := u.repo.List(ctx)
	if err != nil {
		return nil, remoteErr("list", "service_order", "", err)
	}
	return entities.FilterOrders(orders, query), nil
}

func (u *ServiceOrderUseCase) Update(ctx context.Context, id int64, patch OrderPatch) (entities.ServiceOrder, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if !current.CanEdit() {
		return entities.ServiceOrder{}, &entities.InvalidTransitionError{
			Entity: "service_order",
			From:   string(current.Status),
			To:     string(current.Status),
		}
	}

	next := current
	next.Description = strings.TrimSpace(patch.Description)
	next.Items = patch.Items
	next.DiscountAmount = patch.DiscountAmount
	if err := next.ValidateDraft(); err != nil {
		return entities.ServiceOrder{}, err
	}
	if _, err := entities.ComputeTotals(next.Items, next.DiscountAmount); err != nil {
		return entities.ServiceOrder{}, err
	}

	updated, err := u.repo.Update(ctx, next)
	if err != nil {
		return entities.ServiceOrder{}, remoteErr("update", "service_order", formatID(id), err)
	}
	if updated.ID == 0 {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return updated, nil
}

func (u *ServiceOrderUseCase) Finalize(ctx context.Context, id int64) (entities.ServiceOrder, error) {
	return u.transition(ctx, id, entities.OrderStatusFinalizada)
}

func (u *ServiceOrderUseCase) Cancel(ctx context.Context, id int64) (entities.ServiceOrder, error) {
	return u.transition(ctx, id, entities.OrderStatusCancelada)
}

func (u *ServiceOrderUseCase) transition(ctx context.Context, id int64, next entities.OrderStatus) (entities.ServiceOrder, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if err := current.Transition(next); err != nil {
		return entities.ServiceOrder{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, id, next)
	if err != nil {
		return entities.ServiceOrder{}, remoteErr(string(next), "service_order", formatID(id), err)
	}
	if updated.ID == 0 {
		// Gone between read and write; the server answer is authoritative.
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return updated, nil
}

func (u *ServiceOrderUseCase) Delete(ctx context.Context, id int64) error {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.Status.Terminal() {
		return &entities.InvalidTransitionError{
			Entity: "service_order",
			From:   string(current.Status),
			To:     "excluida",
		}
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return remoteErr("delete", "service_order", formatID(id), err)
	}
	return nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// nowUTC is the single place the use cases pick a clock. Domain functions
// always receive it as an argument.
func nowUTC() time.Time {
	return time.Now().UTC()
}
