// Package estimator is the countertop pricing model. It turns a validated
// ProjectRequest and a PriceTable into a cost Breakdown.
//
// Everything here is deterministic and free of I/O, so Compute may be called
// concurrently without coordination.
package estimator

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	demoMultiplier        = 1.10
	premiumEdgeMultiplier = 1.05
	customEdgeMultiplier  = 1.10

	standardSinkCost    = 100.0
	premiumSinkCost     = 150.0
	standardCooktopCost = 120.0
	premiumCooktopCost  = 160.0

	defaultBacksplashCostPerSqFt = 20.0

	wasteFactor = 1.20

	baseLaborRatePerSqFt = 45.0
	installLaborMarkup   = 1.30
	slabOnlyLaborMarkup  = 1.35
)

// Mode selects the calculation version.
type Mode string

const (
	// ModeLaborIncluded is the current model: materials, fixtures and labor.
	ModeLaborIncluded Mode = "labor_included"
	// ModeMaterialsOnly reproduces the first published calculator, which
	// priced materials and fixtures only. LaborCost is always zero.
	ModeMaterialsOnly Mode = "materials_only"
)

type Options struct {
	Mode Mode
}

// Breakdown is the cost contract handed to narrative and export layers.
type Breakdown struct {
	MaterialCost     float64 `json:"material_cost"`
	SinkCost         float64 `json:"sink_cost"`
	CooktopCost      float64 `json:"cooktop_cost"`
	BacksplashCost   float64 `json:"backsplash_cost"`
	LaborCost        float64 `json:"labor_cost"`
	PreliminaryTotal float64 `json:"preliminary_total"`
	TotalProjectCost float64 `json:"total_project_cost"`
	SlabCount        int     `json:"slab_count"`
	FinalCostPerSqFt float64 `json:"final_cost_per_sq_ft"`
}

// Result wraps the breakdown with the lookup facts behind it.
type Result struct {
	Breakdown         Breakdown  `json:"breakdown"`
	PriceEntry        PriceEntry `json:"price_entry"`
	MaterialKey       string     `json:"material_key"`
	MaterialDefaulted bool       `json:"material_defaulted"`
	EffectiveAreaSqFt float64    `json:"effective_area_sq_ft"`
	Mode              Mode       `json:"mode"`
}

// Compute prices a project. req must have passed Validate.
//
// The demo multiplier is applied before the edge multiplier; totals are
// compared against reference values to the cent, so the order is fixed.
func Compute(req ProjectRequest, prices PriceTable, opts Options) Result {
	mode := opts.Mode
	if mode == "" {
		mode = ModeLaborIncluded
	}

	entry, defaulted := resolvePrice(prices, req.MaterialKey)
	area := req.TotalAreaSqFt

	materialCost := area * entry.UnitCostPerSqFt
	if req.DemoRequired {
		materialCost *= demoMultiplier
	}
	materialCost *= edgeMultiplier(req.EdgeDetail)

	sinkCost := req.SinkCount * standardSinkCost
	if req.SinkTier == TierPremium {
		sinkCost = req.SinkCount * premiumSinkCost
	}

	cooktopCost := req.CooktopCount * standardCooktopCost
	if req.CooktopTier == TierPremium {
		cooktopCost = req.CooktopCount * premiumCooktopCost
	}

	backsplashCost := 0.0
	if req.BacksplashRequired {
		rate := defaultBacksplashCostPerSqFt
		if req.BacksplashCostPerSqFt > 0 {
			rate = req.BacksplashCostPerSqFt
		}
		backsplashCost = area * rate
	}

	preliminaryTotal := materialCost + sinkCost + cooktopCost + backsplashCost

	effectiveArea := area * wasteFactor
	// area <= MaxTotalAreaSqFt and coverage >= MinSlabCoverageSqFt, so this fits an int and is >= 1.
	slabCount := int(math.Ceil(effectiveArea / entry.SlabCoverageSqFt))

	laborCost := 0.0
	if mode == ModeLaborIncluded {
		markup := installLaborMarkup
		if req.JobType == JobSlabOnly {
			markup = slabOnlyLaborMarkup
		}
		laborCost = area * baseLaborRatePerSqFt * markup
	}

	totalProjectCost := preliminaryTotal + laborCost

	return Result{
		Breakdown: Breakdown{
			MaterialCost:     materialCost,
			SinkCost:         sinkCost,
			CooktopCost:      cooktopCost,
			BacksplashCost:   backsplashCost,
			LaborCost:        laborCost,
			PreliminaryTotal: preliminaryTotal,
			TotalProjectCost: totalProjectCost,
			SlabCount:        slabCount,
			FinalCostPerSqFt: totalProjectCost / area,
		},
		PriceEntry:        entry,
		MaterialKey:       NormalizeKey(req.MaterialKey),
		MaterialDefaulted: defaulted,
		EffectiveAreaSqFt: effectiveArea,
		Mode:              mode,
	}
}

func edgeMultiplier(edge EdgeDetail) float64 {
	switch edge {
	case EdgePremium:
		return premiumEdgeMultiplier
	case EdgeCustom:
		return customEdgeMultiplier
	default:
		return 1.0
	}
}

// Rounded returns a copy with every money field rounded half away from zero
// to cents.
func (b Breakdown) Rounded() Breakdown {
	return Breakdown{
		MaterialCost:     RoundMoney(b.MaterialCost),
		SinkCost:         RoundMoney(b.SinkCost),
		CooktopCost:      RoundMoney(b.CooktopCost),
		BacksplashCost:   RoundMoney(b.BacksplashCost),
		LaborCost:        RoundMoney(b.LaborCost),
		PreliminaryTotal: RoundMoney(b.PreliminaryTotal),
		TotalProjectCost: RoundMoney(b.TotalProjectCost),
		SlabCount:        b.SlabCount,
		FinalCostPerSqFt: RoundMoney(b.FinalCostPerSqFt),
	}
}

func RoundMoney(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
