package request

import "encoding/json"

// ReceivableCreateRequest is the payload for the "charge order" route.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago schemas.

type ReceivableCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
