package entities

import (
	"encoding/json"
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// DepositPayment is the deposit charged once a customer approves an estimate.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (estimate_id-index): estimate_id
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the provider response for audit.
//   - MPPayload is the parsed form of the same document.
type DepositPayment struct {
	ID         string        `json:"id"`
	EstimateID string        `json:"estimate_id"`
	Amount     float64       `json:"amount"`
	Date       time.Time     `json:"date"`
	Status     PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

// PaymentStatusFromProvider maps a Mercado Pago status to ours.
func PaymentStatusFromProvider(s string) PaymentStatus {
	switch s {
	case "approved", "authorized":
		return PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return PaymentStatusDenied
	default:
		return PaymentStatusPending
	}
}
