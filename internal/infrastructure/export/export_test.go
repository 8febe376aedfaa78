package export

import (
	"bytes"
	"testing"
	"time"

	"granite_estimator/internal/config"
	"granite_estimator/internal/domain/entities"
	"granite_estimator/internal/domain/estimator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var testBusiness = config.BusinessInfo{
	Name:    "Acme Stone",
	Address: "1 Main St",
	Phone:   "555-0100",
	Email:   "hi@acme.test",
}

func savedEstimate() entities.Estimate {
	return entities.Estimate{
		ID: "est-1",
		Request: estimator.ProjectRequest{
			TotalAreaSqFt:      100,
			MaterialKey:        "granite",
			SinkCount:          1,
			SinkTier:           estimator.TierStandard,
			CooktopTier:        estimator.TierStandard,
			BacksplashRequired: true,
			EdgeDetail:         estimator.EdgeStandard,
			JobType:            estimator.JobFabricateAndInstall,
			CustomerName:       "Renée",
		},
		Breakdown: estimator.Breakdown{
			MaterialCost:     4500,
			SinkCost:         100,
			BacksplashCost:   2000,
			PreliminaryTotal: 6600,
			LaborCost:        5850,
			TotalProjectCost: 12450,
			SlabCount:        2,
			FinalCostPerSqFt: 124.5,
		},
		PriceEntry:      estimator.PriceEntry{UnitCostPerSqFt: 45, SlabCoverageSqFt: 100},
		MaterialKey:     "granite",
		CalculationMode: estimator.ModeLaborIncluded,
		Narrative:       "Thanks for choosing us – we'll be in touch.",
		NarrativeStatus: entities.NarrativeStatusGenerated,
		Status:          entities.EstimateStatusPending,
		CreatedAt:       time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestCostLines(t *testing.T) {
	lines := costLines(savedEstimate())
	labels := make([]string, 0, len(lines))
	for _, l := range lines {
		labels = append(labels, l.Label)
	}
	assert.Equal(t, []string{"Material", "Sink cutouts", "Cooktop cutouts", "Backsplash", "Fabrication and labor"}, labels)

	e := savedEstimate()
	e.CalculationMode = estimator.ModeMaterialsOnly
	e.Request.BacksplashRequired = false
	assert.Len(t, costLines(e), 3)
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, savedEstimate(), testBusiness))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")), "expected a PDF header")

	assert.Error(t, WritePDF(&bytes.Buffer{}, entities.Estimate{}, testBusiness))
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, savedEstimate(), testBusiness))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue(estimateSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Acme Stone", name)

	id, err := f.GetCellValue(estimateSheet, "B5")
	require.NoError(t, err)
	assert.Equal(t, "est-1", id)

	rows, err := f.GetRows(estimateSheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)

	var total string
	for _, r := range rows {
		if len(r) >= 3 && r[0] == "Total project cost" {
			total = r[2]
		}
	}
	assert.Equal(t, "12450", total)

	assert.Error(t, WriteXLSX(&bytes.Buffer{}, entities.Estimate{}, testBusiness))
}
