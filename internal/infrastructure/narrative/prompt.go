package narrative

import (
	"fmt"
	"strings"

	"granite_estimator/internal/domain/entities"
)

const (
	narrativeSystemPrompt = "You are an expert estimator in remodeling and construction."
	narrativeInstructions = "Generate a detailed, professional estimate that includes a breakdown of costs, " +
		"installation notes, and a personalized message for the customer."
)

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// BuildPrompt renders the estimate facts the model is allowed to talk about.
// All figures come from the stored breakdown; the model never computes prices.
func BuildPrompt(e entities.Estimate) string {
	r := e.Request
	b := e.Breakdown

	var sb strings.Builder
	fmt.Fprintf(&sb, "Customer: %s\n", orNA(r.CustomerName))
	fmt.Fprintf(&sb, "Job: %s\n", orNA(r.JobName))
	fmt.Fprintf(&sb, "Project Area: %g sq ft\n", r.TotalAreaSqFt)
	fmt.Fprintf(&sb, "Vendor: %s\n", orNA(r.Vendor))
	fmt.Fprintf(&sb, "Color: %s\n", orNA(r.Color))
	fmt.Fprintf(&sb, "Material: %s\n", orNA(e.MaterialKey))
	fmt.Fprintf(&sb, "Job Type: %s\n", r.JobType)
	fmt.Fprintf(&sb, "Demo Required: %s\n", yesNo(r.DemoRequired))
	fmt.Fprintf(&sb, "Sink Cuts (Qty): %g (%s)\n", r.SinkCount, r.SinkTier)
	fmt.Fprintf(&sb, "Cooktop Cuts (Qty): %g (%s)\n", r.CooktopCount, r.CooktopTier)
	fmt.Fprintf(&sb, "Backsplash: %s\n", yesNo(r.BacksplashRequired))
	fmt.Fprintf(&sb, "Edge Detail: %s\n", r.EdgeDetail)
	fmt.Fprintf(&sb, "Price per Sq Ft for %s: $%.2f\n", orNA(e.MaterialKey), e.PriceEntry.UnitCostPerSqFt)
	if e.MaterialDefaulted {
		sb.WriteString("Note: the requested material was not found in the current price list; a standard default price was used.\n")
	}
	fmt.Fprintf(&sb, "Material Cost: $%.2f\n", b.MaterialCost)
	fmt.Fprintf(&sb, "Sink Cost: $%.2f\n", b.SinkCost)
	fmt.Fprintf(&sb, "Cooktop Cost: $%.2f\n", b.CooktopCost)
	fmt.Fprintf(&sb, "Backsplash Cost: $%.2f\n", b.BacksplashCost)
	fmt.Fprintf(&sb, "Preliminary Total: $%.2f\n", b.PreliminaryTotal)
	fmt.Fprintf(&sb, "Labor Cost: $%.2f\n", b.LaborCost)
	fmt.Fprintf(&sb, "Total Project Cost: $%.2f\n", b.TotalProjectCost)
	fmt.Fprintf(&sb, "Cost per Sq Ft: $%.2f\n", b.FinalCostPerSqFt)
	fmt.Fprintf(&sb, "Slab Count: %d\n\n", b.SlabCount)
	sb.WriteString(narrativeInstructions)
	return sb.String()
}

// mockNarrative is returned in mock mode so the service runs without an API key.
func mockNarrative(e entities.Estimate) string {
	return fmt.Sprintf(
		"Estimate for %s: %g sq ft of %s requiring %d slab(s). Materials and fixtures come to $%.2f, labor to $%.2f, for a total of $%.2f ($%.2f per sq ft).",
		orNA(e.Request.CustomerName), e.Request.TotalAreaSqFt, orNA(e.MaterialKey), e.Breakdown.SlabCount,
		e.Breakdown.PreliminaryTotal, e.Breakdown.LaborCost, e.Breakdown.TotalProjectCost, e.Breakdown.FinalCostPerSqFt,
	)
}
