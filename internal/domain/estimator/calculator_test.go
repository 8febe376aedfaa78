package estimator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapTable map[string]PriceEntry

func (m mapTable) Lookup(key string) (PriceEntry, bool) {
	e, ok := m[key]
	return e, ok
}

var testPrices = mapTable{
	"granite":              {UnitCostPerSqFt: 45, SlabCoverageSqFt: 100},
	"quartzite":            {UnitCostPerSqFt: 65, SlabCoverageSqFt: 55},
	"dekton and porcelain": {UnitCostPerSqFt: 85, SlabCoverageSqFt: 0},
}

func baseRequest() ProjectRequest {
	return ProjectRequest{
		TotalAreaSqFt: 100,
		MaterialKey:   "granite",
		SinkCount:     1,
		SinkTier:      TierStandard,
		CooktopTier:   TierStandard,
		EdgeDetail:    EdgeStandard,
		JobType:       JobFabricateAndInstall,
	}
}

func TestCompute_ReferenceExample(t *testing.T) {
	res := Compute(baseRequest(), testPrices, Options{})
	b := res.Breakdown.Rounded()

	assert.Equal(t, 4500.00, b.MaterialCost)
	assert.Equal(t, 100.00, b.SinkCost)
	assert.Equal(t, 0.00, b.CooktopCost)
	assert.Equal(t, 0.00, b.BacksplashCost)
	assert.Equal(t, 4600.00, b.PreliminaryTotal)
	assert.Equal(t, 2, b.SlabCount)
	assert.Equal(t, 5850.00, b.LaborCost)
	assert.Equal(t, 10450.00, b.TotalProjectCost)
	assert.Equal(t, 104.50, b.FinalCostPerSqFt)
	assert.InDelta(t, 120.0, res.EffectiveAreaSqFt, 1e-9)
	assert.False(t, res.MaterialDefaulted)
	assert.Equal(t, ModeLaborIncluded, res.Mode)
}

func TestCompute_SlabOnlyLaborMarkup(t *testing.T) {
	req := baseRequest()
	req.JobType = JobSlabOnly

	b := Compute(req, testPrices, Options{}).Breakdown.Rounded()

	assert.Equal(t, 6075.00, b.LaborCost)
	assert.Equal(t, 10675.00, b.TotalProjectCost)
}

func TestCompute_DemoThenCustomEdge(t *testing.T) {
	req := baseRequest()
	req.DemoRequired = true
	req.EdgeDetail = EdgeCustom

	b := Compute(req, testPrices, Options{}).Breakdown

	assert.Equal(t, 4500.0*1.10*1.10, b.MaterialCost)
	assert.Equal(t, 5445.00, b.Rounded().MaterialCost)
}

func TestCompute_EdgeMultipliers(t *testing.T) {
	cases := []struct {
		edge EdgeDetail
		want float64
	}{
		{EdgeStandard, 4500},
		{EdgePremium, 4725},
		{EdgeCustom, 4950},
	}
	for _, tc := range cases {
		t.Run(string(tc.edge), func(t *testing.T) {
			req := baseRequest()
			req.EdgeDetail = tc.edge
			assert.Equal(t, tc.want, Compute(req, testPrices, Options{}).Breakdown.Rounded().MaterialCost)
		})
	}
}

func TestCompute_Fixtures(t *testing.T) {
	req := baseRequest()
	req.SinkCount = 2
	req.SinkTier = TierPremium
	req.CooktopCount = 3

	b := Compute(req, testPrices, Options{}).Breakdown
	assert.Equal(t, 300.0, b.SinkCost)
	assert.Equal(t, 360.0, b.CooktopCost)

	req.CooktopTier = TierPremium
	assert.Equal(t, 480.0, Compute(req, testPrices, Options{}).Breakdown.CooktopCost)
}

func TestCompute_Backsplash(t *testing.T) {
	req := baseRequest()
	req.BacksplashRequired = true
	assert.Equal(t, 2000.0, Compute(req, testPrices, Options{}).Breakdown.BacksplashCost)

	req.BacksplashCostPerSqFt = 32.5
	assert.Equal(t, 3250.0, Compute(req, testPrices, Options{}).Breakdown.BacksplashCost)

	req.BacksplashRequired = false
	assert.Equal(t, 0.0, Compute(req, testPrices, Options{}).Breakdown.BacksplashCost)
}

func TestCompute_UnmatchedKeyFallsBackToDefault(t *testing.T) {
	for _, key := range []string{"unobtainium", "", "   "} {
		req := baseRequest()
		req.MaterialKey = key

		res := Compute(req, testPrices, Options{})

		assert.True(t, res.MaterialDefaulted, "key %q", key)
		assert.Equal(t, DefaultPriceEntry, res.PriceEntry)
		assert.Equal(t, 5000.0, res.Breakdown.MaterialCost)
	}

	res := Compute(baseRequest(), nil, Options{})
	assert.True(t, res.MaterialDefaulted)
}

func TestCompute_KeyIsNormalized(t *testing.T) {
	req := baseRequest()
	req.MaterialKey = "  GRANITE "

	res := Compute(req, testPrices, Options{})

	assert.False(t, res.MaterialDefaulted)
	assert.Equal(t, "granite", res.MaterialKey)
	assert.Equal(t, 45.0, res.PriceEntry.UnitCostPerSqFt)
}

func TestCompute_MissingCoverageUsesDefault(t *testing.T) {
	req := baseRequest()
	req.MaterialKey = "dekton and porcelain"

	res := Compute(req, testPrices, Options{})

	assert.False(t, res.MaterialDefaulted)
	assert.Equal(t, DefaultSlabCoverageSqFt, res.PriceEntry.SlabCoverageSqFt)
	assert.Equal(t, 2, res.Breakdown.SlabCount)
}

func TestCompute_MaterialsOnlyMode(t *testing.T) {
	b := Compute(baseRequest(), testPrices, Options{Mode: ModeMaterialsOnly}).Breakdown

	assert.Equal(t, 0.0, b.LaborCost)
	assert.Equal(t, b.PreliminaryTotal, b.TotalProjectCost)
	assert.Equal(t, 46.0, b.FinalCostPerSqFt)
}

func TestCompute_Invariants(t *testing.T) {
	areas := []float64{0.5, 1, 7.25, 33.3, 99.99, 100, 120.01, 250, 1234.56}
	keys := []string{"granite", "quartzite", "unknown"}
	for _, area := range areas {
		for _, key := range keys {
			req := ProjectRequest{
				TotalAreaSqFt:      area,
				MaterialKey:        key,
				DemoRequired:       true,
				SinkCount:          1,
				SinkTier:           TierPremium,
				CooktopCount:       1,
				BacksplashRequired: true,
				EdgeDetail:         EdgePremium,
				JobType:            JobSlabOnly,
			}
			res := Compute(req, testPrices, Options{})
			b := res.Breakdown

			require.Equal(t, b.MaterialCost+b.SinkCost+b.CooktopCost+b.BacksplashCost, b.PreliminaryTotal)
			require.Equal(t, b.PreliminaryTotal+b.LaborCost, b.TotalProjectCost)

			wantSlabs := int(math.Ceil(area * 1.20 / res.PriceEntry.SlabCoverageSqFt))
			require.Equal(t, wantSlabs, b.SlabCount)
			require.GreaterOrEqual(t, b.SlabCount, 1)
		}
	}
}

func TestCompute_MonotonicInArea(t *testing.T) {
	req := baseRequest()
	req.BacksplashRequired = true
	req.DemoRequired = true

	prev := Compute(req, testPrices, Options{}).Breakdown
	for area := 5.0; area <= 500; area += 7.5 {
		req.TotalAreaSqFt = area
		cur := Compute(req, testPrices, Options{}).Breakdown
		if area > 5.0 {
			assert.GreaterOrEqual(t, cur.MaterialCost, prev.MaterialCost)
			assert.GreaterOrEqual(t, cur.BacksplashCost, prev.BacksplashCost)
			assert.GreaterOrEqual(t, cur.LaborCost, prev.LaborCost)
			assert.GreaterOrEqual(t, cur.TotalProjectCost, prev.TotalProjectCost)
		}
		prev = cur
	}
}

func TestCompute_Idempotent(t *testing.T) {
	req := baseRequest()
	req.EdgeDetail = EdgeCustom
	req.DemoRequired = true

	first := Compute(req, testPrices, Options{})
	second := Compute(req, testPrices, Options{})

	assert.Equal(t, math.Float64bits(first.Breakdown.TotalProjectCost), math.Float64bits(second.Breakdown.TotalProjectCost))
	assert.Equal(t, first, second)
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, 4950.0, RoundMoney(4500*1.1))
	assert.Equal(t, 10.13, RoundMoney(10.125))
	assert.Equal(t, 0.0, RoundMoney(0))
}

func TestCompute_LargestValidRequestStaysFinite(t *testing.T) {
	prices := mapTable{
		"granite": {UnitCostPerSqFt: 45, SlabCoverageSqFt: 100},
		"sliver":  {UnitCostPerSqFt: 45, SlabCoverageSqFt: 1e-300},
	}
	for _, key := range []string{"granite", "sliver"} {
		req := ProjectRequest{
			TotalAreaSqFt:         MaxTotalAreaSqFt,
			MaterialKey:           key,
			DemoRequired:          true,
			SinkCount:             MaxFixtureCount,
			SinkTier:              TierPremium,
			CooktopCount:          MaxFixtureCount,
			CooktopTier:           TierPremium,
			BacksplashRequired:    true,
			BacksplashCostPerSqFt: MaxBacksplashCostPerSqFt,
			EdgeDetail:            EdgeCustom,
			JobType:               JobSlabOnly,
		}
		require.NoError(t, Validate(req))

		res := Compute(req, prices, Options{})
		b := res.Breakdown

		assert.False(t, math.IsInf(b.TotalProjectCost, 0) || math.IsNaN(b.TotalProjectCost), key)
		assert.False(t, math.IsInf(b.FinalCostPerSqFt, 0), key)
		assert.GreaterOrEqual(t, res.PriceEntry.SlabCoverageSqFt, MinSlabCoverageSqFt, key)
		assert.Equal(t, int(math.Ceil(MaxTotalAreaSqFt*1.20/res.PriceEntry.SlabCoverageSqFt)), b.SlabCount, key)
	}
}
