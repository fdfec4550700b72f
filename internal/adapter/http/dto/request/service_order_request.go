package request

import (
	"strings"

	"oficina_os/internal/domain/entities"
)

type OrderItemRequest struct {
	CatalogItemID *int64  `json:"catalog_item_id"`
	Description   string  `json:"description"`
	Quantity      float64 `json:"quantity" binding:"required"`
	UnitPrice     float64 `json:"unit_price"`
}

// ServiceOrderRequest is the creation payload for a service order. The
// deeper preconditions (item exclusivity, positive quantity) are checked
// by the domain validator, not by binding tags.
type ServiceOrderRequest struct {
	Type           string             `json:"type" binding:"required"`
	ClientID       int64              `json:"client_id" binding:"required"`
	VehicleID      int64              `json:"vehicle_id" binding:"required"`
	Description    string             `json:"description"`
	Items          []OrderItemRequest `json:"items" binding:"required"`
	DiscountAmount float64            `json:"discount_amount"`
}

// ServiceOrderUpdateRequest carries the mutable fields of an order that is
// still aberta.
type ServiceOrderUpdateRequest struct {
	Description    string             `json:"description"`
	Items          []OrderItemRequest `json:"items" binding:"required"`
	DiscountAmount float64            `json:"discount_amount"`
}

func (r ServiceOrderRequest) ResolveType() entities.OrderType {
	return entities.OrderType(strings.TrimSpace(strings.ToLower(r.Type)))
}

func (r ServiceOrderRequest) ResolveItems() []entities.OrderItem {
	return toOrderItems(r.Items)
}

func (r ServiceOrderUpdateRequest) ResolveItems() []entities.OrderItem {
	return toOrderItems(r.Items)
}

func toOrderItems(items []OrderItemRequest) []entities.OrderItem {
	out := make([]entities.OrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.OrderItem{
			CatalogItemID: it.CatalogItemID,
			Description:   strings.TrimSpace(it.Description),
			Quantity:      it.Quantity,
			UnitPrice:     it.UnitPrice,
		})
	}
	return out
}
