package entities

import (
	"time"

	"granite_estimator/internal/domain/estimator"
)

// EstimateStatus is the customer decision on a quote.
//
// Lifecycle:
//   - pending -> approved | rejected | cancelled
//   - approved -> cancelled
type EstimateStatus string

const (
	EstimateStatusPending   EstimateStatus = "pending"
	EstimateStatusApproved  EstimateStatus = "approved"
	EstimateStatusRejected  EstimateStatus = "rejected"
	EstimateStatusCancelled EstimateStatus = "cancelled"
)

type NarrativeStatus string

const (
	NarrativeStatusGenerated   NarrativeStatus = "generated"
	NarrativeStatusUnavailable NarrativeStatus = "unavailable"
)

// Estimate is a priced project persisted by the service.
//
// Breakdown is stored already rounded to cents. MaterialDefaulted is true when
// the material key had no match in the price list and the default price was used.
type Estimate struct {
	ID                string                   `json:"id"`
	Request           estimator.ProjectRequest `json:"request"`
	Breakdown         estimator.Breakdown      `json:"breakdown"`
	PriceEntry        estimator.PriceEntry     `json:"price_entry"`
	MaterialKey       string                   `json:"material_key"`
	MaterialDefaulted bool                     `json:"material_defaulted"`
	EffectiveAreaSqFt float64                  `json:"effective_area_sq_ft"`
	CalculationMode   estimator.Mode           `json:"calculation_mode"`
	Narrative         string                   `json:"narrative"`
	NarrativeStatus   NarrativeStatus          `json:"narrative_status"`
	Status            EstimateStatus           `json:"status"`
	CreatedAt         time.Time                `json:"created_at"`
	UpdatedAt         time.Time                `json:"updated_at"`
}

// FromResult builds an unsaved estimate from an engine result.
func FromResult(req estimator.ProjectRequest, res estimator.Result) Estimate {
	return Estimate{
		Request:           req,
		Breakdown:         res.Breakdown.Rounded(),
		PriceEntry:        res.PriceEntry,
		MaterialKey:       res.MaterialKey,
		MaterialDefaulted: res.MaterialDefaulted,
		EffectiveAreaSqFt: res.EffectiveAreaSqFt,
		CalculationMode:   res.Mode,
	}
}

func (e Estimate) CanTransitionTo(next EstimateStatus) bool {
	switch e.Status {
	case EstimateStatusPending:
		return next == EstimateStatusApproved || next == EstimateStatusRejected || next == EstimateStatusCancelled
	case EstimateStatusApproved:
		return next == EstimateStatusCancelled
	default:
		return false
	}
}

// DepositAmount is percent of the total project cost, rounded to cents.
func (e Estimate) DepositAmount(percent float64) float64 {
	return estimator.RoundMoney(e.Breakdown.TotalProjectCost * percent / 100)
}
