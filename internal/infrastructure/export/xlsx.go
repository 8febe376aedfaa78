package export

import (
	"fmt"
	"io"
	"strconv"

	"granite_estimator/internal/config"
	"granite_estimator/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

const estimateSheet = "Estimate"

// WriteXLSX renders e as a single-sheet workbook. Amounts are written as
// numbers with a currency format so the sheet stays editable.
func WriteXLSX(w io.Writer, e entities.Estimate, biz config.BusinessInfo) error {
	if e.ID == "" {
		return fmt.Errorf("estimate has no id")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", estimateSheet); err != nil {
		return err
	}

	currencyFmt := "$#,##0.00"
	currency, err := f.NewStyle(&excelize.Style{CustomNumFmt: &currencyFmt})
	if err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	rows := [][]interface{}{
		{biz.Name},
		{biz.Address},
		{fmt.Sprintf("%s | %s", biz.Phone, biz.Email)},
		{},
		{"Estimate", e.ID},
		{"Date", e.CreatedAt.Format("2006-01-02")},
		{"Status", string(e.Status)},
		{"Customer", e.Request.CustomerName},
		{"Job", e.Request.JobName},
		{"Vendor", e.Request.Vendor},
		{"Color", e.Request.Color},
		{"Material", e.MaterialKey},
		{"Area (sq ft)", e.Request.TotalAreaSqFt},
		{},
		{"Item", "Detail", "Amount"},
	}
	for i, r := range rows {
		if err := setRow(f, i+1, r); err != nil {
			return err
		}
	}
	headerRow := len(rows)
	if err := f.SetCellStyle(estimateSheet, "A"+strconv.Itoa(headerRow), "C"+strconv.Itoa(headerRow), bold); err != nil {
		return err
	}

	row := headerRow + 1
	for _, l := range costLines(e) {
		if err := setRow(f, row, []interface{}{l.Label, l.Detail, l.Amount}); err != nil {
			return err
		}
		row++
	}

	b := e.Breakdown.Rounded()
	firstTotal := row
	totals := [][]interface{}{
		{"Preliminary total", "", b.PreliminaryTotal},
		{"Total project cost", "", b.TotalProjectCost},
		{"Cost per sq ft", "", b.FinalCostPerSqFt},
	}
	for _, t := range totals {
		if err := setRow(f, row, t); err != nil {
			return err
		}
		row++
	}
	if err := f.SetCellStyle(estimateSheet, "C"+strconv.Itoa(headerRow+1), "C"+strconv.Itoa(row-1), currency); err != nil {
		return err
	}
	if err := f.SetCellStyle(estimateSheet, "A"+strconv.Itoa(firstTotal+1), "A"+strconv.Itoa(firstTotal+1), bold); err != nil {
		return err
	}
	if err := setRow(f, row, []interface{}{"Slabs", "", b.SlabCount}); err != nil {
		return err
	}
	row++

	if e.Narrative != "" {
		row++
		if err := setRow(f, row, []interface{}{"Notes", e.Narrative}); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(estimateSheet, "A", "A", 22); err != nil {
		return err
	}
	if err := f.SetColWidth(estimateSheet, "B", "B", 48); err != nil {
		return err
	}
	if err := f.SetColWidth(estimateSheet, "C", "C", 16); err != nil {
		return err
	}

	return f.Write(w)
}

func setRow(f *excelize.File, row int, values []interface{}) error {
	if len(values) == 0 {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(estimateSheet, cell, &values)
}
