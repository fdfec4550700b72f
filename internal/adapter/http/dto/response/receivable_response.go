package response

import (
	"time"

	"oficina_os/internal/domain/entities"
)

type ReceivableResponse struct {
	ReceivableID string    `json:"receivable_id"`
	ID           string    `json:"id"`
	OrderID      int64     `json:"order_id"`
	Amount       float64   `json:"amount"`
	Date         time.Time `json:"date"`
	Status       string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromReceivable(r entities.Receivable) ReceivableResponse {
	return ReceivableResponse{
		ReceivableID: r.ID,
		ID:           r.ID,
		OrderID:      r.OrderID,
		Amount:       r.Amount,
		Date:         r.Date,
		Status:       string(r.Status),
		MPPayloadRaw: string(r.MPPayloadRaw),
		MPPayload:    r.MPPayload,
	}
}
