package estimator

import "strings"

// PriceEntry is the price of one material or color.
type PriceEntry struct {
	UnitCostPerSqFt  float64 `json:"unit_cost_per_sq_ft"`
	SlabCoverageSqFt float64 `json:"slab_coverage_sq_ft"`
}

const (
	DefaultUnitCostPerSqFt  = 50.0
	DefaultSlabCoverageSqFt = 100.0

	// MinSlabCoverageSqFt is the smallest coverage taken from a table as is.
	// Anything below it falls back to DefaultSlabCoverageSqFt.
	MinSlabCoverageSqFt = 1.0
)

// DefaultPriceEntry is used when a key has no match in a successfully loaded table.
var DefaultPriceEntry = PriceEntry{
	UnitCostPerSqFt:  DefaultUnitCostPerSqFt,
	SlabCoverageSqFt: DefaultSlabCoverageSqFt,
}

// PriceTable is a fully loaded price list. Implementations receive keys
// already passed through NormalizeKey.
type PriceTable interface {
	Lookup(key string) (PriceEntry, bool)
}

// NormalizeKey trims and lower-cases a material or color key.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// resolvePrice returns the entry for key and whether the default was used.
func resolvePrice(prices PriceTable, key string) (PriceEntry, bool) {
	k := NormalizeKey(key)
	if prices == nil || k == "" {
		return DefaultPriceEntry, true
	}
	entry, ok := prices.Lookup(k)
	if !ok {
		return DefaultPriceEntry, true
	}
	if !isFinite(entry.SlabCoverageSqFt) || entry.SlabCoverageSqFt < MinSlabCoverageSqFt {
		entry.SlabCoverageSqFt = DefaultSlabCoverageSqFt
	}
	return entry, false
}
