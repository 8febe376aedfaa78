// Package export renders a saved estimate as a customer-facing document.
package export

import (
	"fmt"
	"strings"

	"granite_estimator/internal/domain/entities"
	"granite_estimator/internal/domain/estimator"
)

// line is one row of the cost table shared by the PDF and XLSX renderers.
type line struct {
	Label  string
	Detail string
	Amount float64
}

func costLines(e entities.Estimate) []line {
	b := e.Breakdown.Rounded()
	req := e.Request

	lines := []line{
		{
			Label:  "Material",
			Detail: fmt.Sprintf("%s, %.2f sq ft at $%.2f/sq ft", orDash(e.MaterialKey), req.TotalAreaSqFt, e.PriceEntry.UnitCostPerSqFt),
			Amount: b.MaterialCost,
		},
		{
			Label:  "Sink cutouts",
			Detail: fmt.Sprintf("%g x %s", req.SinkCount, req.SinkTier),
			Amount: b.SinkCost,
		},
		{
			Label:  "Cooktop cutouts",
			Detail: fmt.Sprintf("%g x %s", req.CooktopCount, req.CooktopTier),
			Amount: b.CooktopCost,
		},
	}
	if req.BacksplashRequired {
		lines = append(lines, line{Label: "Backsplash", Detail: fmt.Sprintf("%.2f sq ft", req.TotalAreaSqFt), Amount: b.BacksplashCost})
	}
	if e.CalculationMode != estimator.ModeMaterialsOnly {
		lines = append(lines, line{
			Label:  "Fabrication and labor",
			Detail: fmt.Sprintf("%s, %d slab(s)", jobTypeLabel(req.JobType), b.SlabCount),
			Amount: b.LaborCost,
		})
	}
	return lines
}

func jobTypeLabel(j estimator.JobType) string {
	if j == estimator.JobSlabOnly {
		return "Slab only"
	}
	return "Fabricate and install"
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
