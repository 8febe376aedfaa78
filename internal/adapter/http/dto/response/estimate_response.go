package response

import (
	"granite_estimator/internal/domain/entities"
	"granite_estimator/internal/domain/estimator"
	"time"
)

type PriceEntryResponse struct {
	UnitCostPerSqFt  float64 `json:"unit_cost_per_sq_ft"`
	SlabCoverageSqFt float64 `json:"slab_coverage_sq_ft"`
}

// EstimateResponse carries the rounded breakdown. Previews have no id,
// status or timestamps.
type EstimateResponse struct {
	EstimateID        string                   `json:"estimate_id,omitempty"`
	ID                string                   `json:"id,omitempty"`
	Status            string                   `json:"status,omitempty"`
	MaterialKey       string                   `json:"material_key"`
	MaterialDefaulted bool                     `json:"material_defaulted"`
	PriceEntry        PriceEntryResponse       `json:"price_entry"`
	EffectiveAreaSqFt float64                  `json:"effective_area_sq_ft"`
	CalculationMode   string                   `json:"calculation_mode"`
	Breakdown         estimator.Breakdown      `json:"breakdown"`
	Narrative         string                   `json:"narrative,omitempty"`
	NarrativeStatus   string                   `json:"narrative_status,omitempty"`
	Request           estimator.ProjectRequest `json:"request"`
	CreatedAt         *time.Time               `json:"created_at,omitempty"`
	UpdatedAt         *time.Time               `json:"updated_at,omitempty"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	res := EstimateResponse{
		EstimateID:        e.ID,
		ID:                e.ID,
		Status:            string(e.Status),
		MaterialKey:       e.MaterialKey,
		MaterialDefaulted: e.MaterialDefaulted,
		PriceEntry: PriceEntryResponse{
			UnitCostPerSqFt:  e.PriceEntry.UnitCostPerSqFt,
			SlabCoverageSqFt: e.PriceEntry.SlabCoverageSqFt,
		},
		EffectiveAreaSqFt: estimator.RoundMoney(e.EffectiveAreaSqFt),
		CalculationMode:   string(e.CalculationMode),
		Breakdown:         e.Breakdown.Rounded(),
		Narrative:         e.Narrative,
		NarrativeStatus:   string(e.NarrativeStatus),
		Request:           e.Request,
	}
	if !e.CreatedAt.IsZero() {
		t := e.CreatedAt
		res.CreatedAt = &t
	}
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		res.UpdatedAt = &t
	}
	return res
}

// PreliminaryResponse mirrors the figures the legacy widget renders.
type PreliminaryResponse struct {
	MaterialCost     float64 `json:"material_cost"`
	SinkCost         float64 `json:"sink_cost"`
	CooktopCost      float64 `json:"cooktop_cost"`
	BacksplashCost   float64 `json:"backsplash_cost"`
	PreliminaryTotal float64 `json:"preliminary_total"`
	SlabCount        int     `json:"slab_count"`
	LaborCost        float64 `json:"labor_cost"`
	TotalProjectCost float64 `json:"total_project_cost"`
	FinalCostPerSqFt float64 `json:"final_cost_per_sq_ft"`
}

// LegacyEstimateResponse is the {preliminary, estimate} shape of POST /api/estimate.
type LegacyEstimateResponse struct {
	Preliminary PreliminaryResponse `json:"preliminary"`
	Estimate    string              `json:"estimate"`
	EstimateID  string              `json:"estimate_id,omitempty"`
}

func FromEstimateLegacy(e entities.Estimate) LegacyEstimateResponse {
	b := e.Breakdown.Rounded()
	return LegacyEstimateResponse{
		Preliminary: PreliminaryResponse{
			MaterialCost:     b.MaterialCost,
			SinkCost:         b.SinkCost,
			CooktopCost:      b.CooktopCost,
			BacksplashCost:   b.BacksplashCost,
			PreliminaryTotal: b.PreliminaryTotal,
			SlabCount:        b.SlabCount,
			LaborCost:        b.LaborCost,
			TotalProjectCost: b.TotalProjectCost,
			FinalCostPerSqFt: b.FinalCostPerSqFt,
		},
		Estimate:   e.Narrative,
		EstimateID: e.ID,
	}
}
