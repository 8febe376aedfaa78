package response

import (
	"granite_estimator/internal/domain/entities"
	"time"
)

type DepositPaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	ID          string    `json:"id"`
	EstimateID  string    `json:"estimate_id"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromDepositPayment(p entities.DepositPayment) DepositPaymentResponse {
	return DepositPaymentResponse{
		PaymentID:    p.ID,
		ID:           p.ID,
		EstimateID:   p.EstimateID,
		Amount:       p.Amount,
		PaymentDate:  p.Date,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}

func FromDepositPayments(ps []entities.DepositPayment) []DepositPaymentResponse {
	out := make([]DepositPaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromDepositPayment(p))
	}
	return out
}
