package entities

import (
	"time"

	"granite_estimator/internal/domain/estimator"
)

// PriceSchema identifies which published sheet layout a price list came from.
type PriceSchema string

const (
	// PriceSchemaMaterialPrice is the flat "Material,Price" sheet.
	PriceSchemaMaterialPrice PriceSchema = "material_price"
	// PriceSchemaColorCostCoverage is the "Color,Cost,Coverage" sheet.
	PriceSchemaColorCostCoverage PriceSchema = "color_cost_coverage"
)

type PriceListItem struct {
	Key              string  `json:"key"`
	UnitCostPerSqFt  float64 `json:"unit_cost_per_sq_ft"`
	SlabCoverageSqFt float64 `json:"slab_coverage_sq_ft"`
}

// PriceList is a successfully loaded price sheet. It is read-only after
// NewPriceList and satisfies estimator.PriceTable.
type PriceList struct {
	Schema   PriceSchema     `json:"schema"`
	Items    []PriceListItem `json:"items"`
	Warnings []string        `json:"warnings,omitempty"`
	LoadedAt time.Time       `json:"loaded_at"`

	index map[string]estimator.PriceEntry
}

var _ estimator.PriceTable = (*PriceList)(nil)

// NewPriceList normalizes keys and indexes items. When a key repeats, the
// first occurrence wins and a warning is recorded.
func NewPriceList(schema PriceSchema, items []PriceListItem, loadedAt time.Time) *PriceList {
	p := &PriceList{
		Schema:   schema,
		Items:    make([]PriceListItem, 0, len(items)),
		LoadedAt: loadedAt,
		index:    make(map[string]estimator.PriceEntry, len(items)),
	}
	for _, it := range items {
		key := estimator.NormalizeKey(it.Key)
		if key == "" {
			continue
		}
		if _, dup := p.index[key]; dup {
			p.Warnings = append(p.Warnings, "duplicate price key ignored: "+key)
			continue
		}
		if it.SlabCoverageSqFt <= 0 {
			it.SlabCoverageSqFt = estimator.DefaultSlabCoverageSqFt
		}
		it.Key = key
		p.Items = append(p.Items, it)
		p.index[key] = estimator.PriceEntry{
			UnitCostPerSqFt:  it.UnitCostPerSqFt,
			SlabCoverageSqFt: it.SlabCoverageSqFt,
		}
	}
	return p
}

func (p *PriceList) Lookup(key string) (estimator.PriceEntry, bool) {
	if p == nil {
		return estimator.PriceEntry{}, false
	}
	e, ok := p.index[estimator.NormalizeKey(key)]
	return e, ok
}

func (p *PriceList) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Items)
}
