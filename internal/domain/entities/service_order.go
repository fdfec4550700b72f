package entities

import (
	"strings"
	"time"
)

// OrderStatus represents the lifecycle of a service order (ordem de serviço).
//
// Domain notes:
//   - `aberta` is the only state in which items, discount and description
//     may still change.
//   - `finalizada` and `cancelada` are terminal; no transition leaves them.

type OrderStatus string

const (
	OrderStatusAberta     OrderStatus = "aberta"
	OrderStatusFinalizada OrderStatus = "finalizada"
	OrderStatusCancelada  OrderStatus = "cancelada"
)

// orderTransitions is the explicit adjacency table for the order lifecycle.
// Transition legality lives here, not in whoever renders the buttons.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusAberta:     {OrderStatusFinalizada, OrderStatusCancelada},
	OrderStatusFinalizada: {},
	OrderStatusCancelada:  {},
}

func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

func (s OrderStatus) Terminal() bool {
	next, ok := orderTransitions[s]
	return ok && len(next) == 0
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderType is fixed at creation and immutable thereafter.

type OrderType string

const (
	OrderTypeServico    OrderType = "servico"
	OrderTypeManutencao OrderType = "manutencao"
)

func (t OrderType) Valid() bool {
	return t == OrderTypeServico || t == OrderTypeManutencao
}

// OrderItem is a single priced entry within a service order: either a
// reference to a priced catalog entry or a free-text description, never
// both and never neither.
type OrderItem struct {
	CatalogItemID *int64  `json:"catalog_item_id,omitempty"`
	Description   string  `json:"description,omitempty"`
	Quantity      float64 `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
}

// LineTotal is derived and never persisted on its own.
func (i OrderItem) LineTotal() float64 {
	return i.Quantity * i.UnitPrice
}

// ServiceOrder is the billable unit of work tied to a client and vehicle.
//
// Storage model (DynamoDB):
//   - PK: id (number, assigned from the counters table)
//
// Subtotal/Total are derived from Items+DiscountAmount by ComputeTotals on
// the way out; they are never stored.
type ServiceOrder struct {
	ID             int64       `json:"id"`
	Type           OrderType   `json:"type"`
	ClientID       int64       `json:"client_id"`
	VehicleID      int64       `json:"vehicle_id"`
	Description    string      `json:"description,omitempty"`
	Items          []OrderItem `json:"items"`
	DiscountAmount float64     `json:"discount_amount"`
	Status         OrderStatus `json:"status"`
	OpenedAt       time.Time   `json:"opened_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// ValidateDraft checks the creation preconditions for a service order and
// returns a ValidationError for the first failing condition. A draft that
// fails here is never submitted to the persistence layer.
func (o ServiceOrder) ValidateDraft() error {
	if !o.Type.Valid() {
		return newValidationError("type", "must be servico or manutencao")
	}
	if o.ClientID <= 0 {
		return newValidationError("client_id", "is required")
	}
	if o.VehicleID <= 0 {
		return newValidationError("vehicle_id", "is required")
	}
	if len(o.Items) == 0 {
		return newValidationError("items", "at least one item is required")
	}
	for _, it := range o.Items {
		hasCatalogRef := it.CatalogItemID != nil && *it.CatalogItemID > 0
		hasDescription := strings.TrimSpace(it.Description) != ""
		if hasCatalogRef == hasDescription {
			return newValidationError("items", "each item needs a catalog reference or a description, not both")
		}
		if it.Quantity <= 0 {
			return newValidationError("items", "quantity must be positive")
		}
		if it.UnitPrice < 0 {
			return newValidationError("items", "unit price must not be negative")
		}
	}
	if o.DiscountAmount < 0 {
		return newValidationError("discount_amount", "must not be negative")
	}
	return nil
}

// CanEdit reports whether items/discount/description may still change.
// Finalized and cancelled orders are immutable.
func (o ServiceOrder) CanEdit() bool {
	return o.Status == OrderStatusAberta
}

// Transition validates a status change against the adjacency table.
func (o ServiceOrder) Transition(next OrderStatus) error {
	if !o.Status.CanTransitionTo(next) {
		return &InvalidTransitionError{Entity: "service_order", From: string(o.Status), To: string(next)}
	}
	return nil
}
