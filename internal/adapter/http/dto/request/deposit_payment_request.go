package request

import "encoding/json"

// DepositPaymentCreateRequest is the payload for the deposit route.
//
// `mp_payload` is forwarded to Mercado Pago after the amount and reference
// are filled in from the estimate.

type DepositPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
