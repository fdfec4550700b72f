package response

import (
	"time"

	"oficina_os/internal/domain/entities"
)

type OrderItemResponse struct {
	CatalogItemID *int64  `json:"catalog_item_id,omitempty"`
	Description   string  `json:"description,omitempty"`
	Quantity      float64 `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	LineTotal     float64 `json:"line_total"`
}

type ServiceOrderResponse struct {
	ID             int64               `json:"id"`
	Type           string              `json:"type"`
	ClientID       int64               `json:"client_id"`
	VehicleID      int64               `json:"vehicle_id"`
	Description    string              `json:"description,omitempty"`
	Items          []OrderItemResponse `json:"items"`
	DiscountAmount float64             `json:"discount_amount"`
	Subtotal       float64             `json:"subtotal"`
	Total          float64             `json:"total"`
	Status         string              `json:"status"`
	OpenedAt       time.Time           `json:"opened_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// FromServiceOrder renders an order with its derived totals. Every view
// prices through the same calculator, so no two views can disagree; a
// backend anomaly that fails to price renders zero totals instead of
// breaking the response.
func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			CatalogItemID: it.CatalogItemID,
			Description:   it.Description,
			Quantity:      it.Quantity,
			UnitPrice:     it.UnitPrice,
			LineTotal:     it.LineTotal(),
		})
	}

	totals, err := entities.ComputeTotals(o.Items, o.DiscountAmount)
	if err != nil {
		totals = entities.Totals{}
	}

	return ServiceOrderResponse{
		ID:             o.ID,
		Type:           string(o.Type),
		ClientID:       o.ClientID,
		VehicleID:      o.VehicleID,
		Description:    o.Description,
		Items:          items,
		DiscountAmount: o.DiscountAmount,
		Subtotal:       totals.Subtotal,
		Total:          totals.Total,
		Status:         string(o.Status),
		OpenedAt:       o.OpenedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func FromServiceOrders(orders []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o))
	}
	return out
}
