package entities

import (
	"encoding/json"
	"time"
)

// ReceivableStatus represents the charging outcome for a finalized order.
//
// In the current scope we only need to charge a finalized order and persist
// the approved receivable. The type supports a denied status for
// completeness.

type ReceivableStatus string

const (
	ReceivableStatusPendente ReceivableStatus = "pendente"
	ReceivableStatusAprovado ReceivableStatus = "aprovado"
	ReceivableStatusNegado   ReceivableStatus = "negado"
)

// Receivable is the charge raised against a finalized service order.
//
// Storage model (DynamoDB):
//   - PK: id (string, the Mercado Pago payment id)
//   - GSI1 (order_id-index): order_id
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the original body (JSON) for traceability/audit.
//   - MPPayload is an optional parsed representation, useful for
//     querying/debugging.
type Receivable struct {
	ID      string           `json:"id"`
	OrderID int64            `json:"order_id"`
	Amount  float64          `json:"amount"`
	Date    time.Time        `json:"date"`
	Status  ReceivableStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
