package export

import (
	"fmt"
	"io"

	"granite_estimator/internal/config"
	"granite_estimator/internal/domain/entities"

	"github.com/go-pdf/fpdf"
)

// Page layout constants (US Letter portrait in mm).
const (
	pageWidth   = 215.9
	marginLeft  = 15.0
	marginRight = 15.0
	marginTop   = 15.0
	contentW    = pageWidth - marginLeft - marginRight
	labelColW   = 50.0
	amountColW  = 35.0
	rowHeight   = 7.0
)

// WritePDF renders e as a one-document quote.
func WritePDF(w io.Writer, e entities.Estimate, biz config.BusinessInfo) error {
	if e.ID == "" {
		return fmt.Errorf("estimate has no id")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	renderHeader(pdf, tr, e, biz)
	renderCostTable(pdf, tr, e)
	renderNarrative(pdf, tr, e)

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

func renderHeader(pdf *fpdf.Fpdf, tr func(string) string, e entities.Estimate, biz config.BusinessInfo) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, tr(biz.Name), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(contentW, 5, tr(biz.Address), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, tr(fmt.Sprintf("%s | %s", biz.Phone, biz.Email)), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 8, "Countertop Estimate", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	meta := [][2]string{
		{"Estimate", e.ID},
		{"Date", e.CreatedAt.Format("January 2, 2006")},
		{"Status", string(e.Status)},
		{"Customer", orDash(e.Request.CustomerName)},
		{"Job", orDash(e.Request.JobName)},
		{"Vendor / Color", fmt.Sprintf("%s / %s", orDash(e.Request.Vendor), orDash(e.Request.Color))},
		{"Edge detail", string(e.Request.EdgeDetail)},
	}
	for _, m := range meta {
		pdf.CellFormat(35, 6, m[0]+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW-35, 6, tr(m[1]), "", 1, "L", false, 0, "")
	}
	if e.MaterialDefaulted {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(160, 60, 0)
		pdf.MultiCell(contentW, 5, tr("Material not found in the current price list; a standard rate was used. Final pricing will be confirmed."), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(4)
}

func renderCostTable(pdf *fpdf.Fpdf, tr func(string) string, e entities.Estimate) {
	detailW := contentW - labelColW - amountColW

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(labelColW, rowHeight, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(detailW, rowHeight, "Detail", "1", 0, "L", true, 0, "")
	pdf.CellFormat(amountColW, rowHeight, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, l := range costLines(e) {
		pdf.CellFormat(labelColW, rowHeight, tr(l.Label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(detailW, rowHeight, tr(l.Detail), "1", 0, "L", false, 0, "")
		pdf.CellFormat(amountColW, rowHeight, money(l.Amount), "1", 1, "R", false, 0, "")
	}

	b := e.Breakdown.Rounded()
	totals := [][2]string{
		{"Preliminary total", money(b.PreliminaryTotal)},
		{"Slabs", fmt.Sprintf("%d", b.SlabCount)},
		{"Total project cost", money(b.TotalProjectCost)},
		{"Cost per sq ft", money(b.FinalCostPerSqFt)},
	}
	for i, t := range totals {
		style := ""
		if i == 2 {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(labelColW+detailW, rowHeight, t[0], "1", 0, "R", false, 0, "")
		pdf.CellFormat(amountColW, rowHeight, t[1], "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)
}

func renderNarrative(pdf *fpdf.Fpdf, tr func(string) string, e entities.Estimate) {
	if e.Narrative == "" {
		return
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, "Notes", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(contentW, 5, tr(e.Narrative), "", "L", false)
}
