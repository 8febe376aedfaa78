package estimator

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrInvalidRequest = errors.New("invalid project request")

// Tier is the cut complexity of a sink or cooktop.
type Tier string

const (
	TierStandard Tier = "standard"
	TierPremium  Tier = "premium"
)

// EdgeDetail is the finishing style of exposed countertop edges.
type EdgeDetail string

const (
	EdgeStandard EdgeDetail = "standard"
	EdgePremium  EdgeDetail = "premium"
	EdgeCustom   EdgeDetail = "custom"
)

type JobType string

const (
	JobFabricateAndInstall JobType = "fabricate_and_install"
	JobSlabOnly            JobType = "slab_only"
)

// ProjectRequest is the validated input of Compute. It is a value type and
// is never mutated by the engine.
//
// CustomerName, JobName, Vendor and Color are carried through untouched.
type ProjectRequest struct {
	TotalAreaSqFt         float64    `json:"total_area_sq_ft"`
	MaterialKey           string     `json:"material_key"`
	DemoRequired          bool       `json:"demo_required"`
	SinkCount             float64    `json:"sink_count"`
	SinkTier              Tier       `json:"sink_tier"`
	CooktopCount          float64    `json:"cooktop_count"`
	CooktopTier           Tier       `json:"cooktop_tier"`
	BacksplashRequired    bool       `json:"backsplash_required"`
	BacksplashCostPerSqFt float64    `json:"backsplash_cost_per_sq_ft"`
	EdgeDetail            EdgeDetail `json:"edge_detail"`
	JobType               JobType    `json:"job_type"`

	CustomerName string `json:"customer_name"`
	JobName      string `json:"job_name"`
	Vendor       string `json:"vendor"`
	Color        string `json:"color"`
}

// Upper bounds keep every Breakdown field finite and the slab count within int.
const (
	MaxTotalAreaSqFt         = 1_000_000.0
	MaxFixtureCount          = 1_000.0
	MaxBacksplashCostPerSqFt = 10_000.0
)

// Validate rejects requests Compute must never see.
func Validate(req ProjectRequest) error {
	if !isFinite(req.TotalAreaSqFt) || req.TotalAreaSqFt <= 0 {
		return fmt.Errorf("%w: total area must be a positive number", ErrInvalidRequest)
	}
	if req.TotalAreaSqFt > MaxTotalAreaSqFt {
		return fmt.Errorf("%w: total area must not exceed %.0f sq ft", ErrInvalidRequest, MaxTotalAreaSqFt)
	}
	checks := []struct {
		name  string
		value float64
		max   float64
	}{
		{"sink count", req.SinkCount, MaxFixtureCount},
		{"cooktop count", req.CooktopCount, MaxFixtureCount},
		{"backsplash cost per sq ft", req.BacksplashCostPerSqFt, MaxBacksplashCostPerSqFt},
	}
	for _, c := range checks {
		if !isFinite(c.value) || c.value < 0 {
			return fmt.Errorf("%w: %s must be zero or positive", ErrInvalidRequest, c.name)
		}
		if c.value > c.max {
			return fmt.Errorf("%w: %s must not exceed %.0f", ErrInvalidRequest, c.name, c.max)
		}
	}
	return nil
}

// ParseTier maps free text to a Tier. Anything other than "premium" is standard.
func ParseTier(s string) Tier {
	if strings.EqualFold(strings.TrimSpace(s), string(TierPremium)) {
		return TierPremium
	}
	return TierStandard
}

func ParseEdgeDetail(s string) EdgeDetail {
	switch EdgeDetail(strings.ToLower(strings.TrimSpace(s))) {
	case EdgePremium:
		return EdgePremium
	case EdgeCustom:
		return EdgeCustom
	default:
		return EdgeStandard
	}
}

// ParseJobType accepts the canonical names plus the spaced/hyphenated spellings
// the web widget sends.
func ParseJobType(s string) JobType {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.NewReplacer(" ", "_", "-", "_").Replace(v)
	if v == string(JobSlabOnly) {
		return JobSlabOnly
	}
	return JobFabricateAndInstall
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
