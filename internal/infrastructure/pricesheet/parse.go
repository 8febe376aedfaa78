// Package pricesheet loads published countertop price lists.
//
// Two sheet layouts are in circulation: a flat "Material,Price" list and a
// "Color,Cost,Coverage" list. Both are parsed into entities.PriceList; a sheet
// without coverage gets the default slab coverage.
package pricesheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"granite_estimator/internal/domain/entities"
)

var (
	// ErrPriceTableUnavailable is returned for any fetch or parse failure.
	// Callers must not fall back to default prices when they see it.
	ErrPriceTableUnavailable = errors.New("price table unavailable")
	ErrInvalidPriceSheet     = errors.New("invalid price sheet")
)

type columnMapping struct {
	Key      int
	Cost     int
	Coverage int
}

// headerAliases maps column roles to accepted header spellings (normalized).
var headerAliases = map[string][]string{
	"key":      {"material", "material type", "materialtype", "color", "colour", "name", "stone", "product"},
	"cost":     {"price", "cost", "unit cost", "base cost per sq ft", "basecostpersqft", "cost per sq ft", "costpersqft", "price per sq ft", "pricepersqft", "price/sqft", "cost/sqft"},
	"coverage": {"coverage", "coverage sq ft", "coveragesqft", "slab coverage", "sq ft per slab", "sqft per slab", "slab sq ft", "slab sqft", "slab size"},
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.NewReplacer("_", " ", "-", " ", "(", "", ")", "").Replace(h)
	return strings.Join(strings.Fields(h), " ")
}

// detectColumns maps the header row. ok is false when the row does not look
// like a header at all.
func detectColumns(header []string) (columnMapping, bool) {
	m := columnMapping{Key: -1, Cost: -1, Coverage: -1}
	found := false
	for i, cell := range header {
		h := normalizeHeader(cell)
		for role, aliases := range headerAliases {
			for _, a := range aliases {
				if h != a {
					continue
				}
				found = true
				switch role {
				case "key":
					if m.Key == -1 {
						m.Key = i
					}
				case "cost":
					if m.Cost == -1 {
						m.Cost = i
					}
				case "coverage":
					if m.Coverage == -1 {
						m.Coverage = i
					}
				}
			}
		}
	}
	return m, found
}

// DetectCSVDelimiter picks the delimiter producing the most consistent,
// multi-column records.
func DetectCSVDelimiter(data []byte) rune {
	best := ','
	bestScore := 0
	for _, delim := range []rune{',', ';', '\t', '|'} {
		r := csv.NewReader(bytes.NewReader(data))
		r.Comma = delim
		r.LazyQuotes = true
		r.FieldsPerRecord = -1

		records, err := r.ReadAll()
		if err != nil || len(records) == 0 {
			continue
		}
		cols := len(records[0])
		if cols < 2 {
			continue
		}
		score := 0
		for _, rec := range records {
			if len(rec) == cols {
				score++
			}
		}
		if weighted := score*10 + cols; weighted > bestScore {
			bestScore = weighted
			best = delim
		}
	}
	return best
}

// ParseCSV parses a CSV price sheet.
func ParseCSV(data []byte, loadedAt time.Time) (*entities.PriceList, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = DetectCSVDelimiter(data)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: read csv: %v", ErrInvalidPriceSheet, err)
	}
	return ParseRows(records, loadedAt)
}

// ParseRows parses spreadsheet rows. The first row is used as a header when
// it names the columns; otherwise columns are positional: key, cost, coverage.
func ParseRows(rows [][]string, loadedAt time.Time) (*entities.PriceList, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet is empty", ErrInvalidPriceSheet)
	}

	mapping, hasHeader := detectColumns(rows[0])
	start := 0
	if hasHeader {
		start = 1
		var missing []string
		if mapping.Key == -1 {
			missing = append(missing, "material/color")
		}
		if mapping.Cost == -1 {
			missing = append(missing, "price/cost")
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("%w: required columns not found in header: %s", ErrInvalidPriceSheet, strings.Join(missing, ", "))
		}
	} else {
		mapping = columnMapping{Key: 0, Cost: 1, Coverage: -1}
		if len(rows[0]) >= 3 {
			mapping.Coverage = 2
		}
	}

	schema := entities.PriceSchemaMaterialPrice
	if mapping.Coverage != -1 {
		schema = entities.PriceSchemaColorCostCoverage
	}

	var warnings []string
	items := make([]entities.PriceListItem, 0, len(rows)-start)
	for i := start; i < len(rows); i++ {
		row := rows[i]
		if isBlankRow(row) {
			continue
		}
		key := cell(row, mapping.Key)
		if key == "" {
			warnings = append(warnings, fmt.Sprintf("row %d: empty material key, skipped", i+1))
			continue
		}
		cost, err := parseAmount(cell(row, mapping.Cost))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d (%s): cost: %v", ErrInvalidPriceSheet, i+1, key, err)
		}
		coverage := 0.0
		if raw := cell(row, mapping.Coverage); raw != "" {
			coverage, err = parseAmount(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d (%s): coverage: %v", ErrInvalidPriceSheet, i+1, key, err)
			}
		}
		items = append(items, entities.PriceListItem{Key: key, UnitCostPerSqFt: cost, SlabCoverageSqFt: coverage})
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no price rows found", ErrInvalidPriceSheet)
	}

	list := entities.NewPriceList(schema, items, loadedAt)
	list.Warnings = append(warnings, list.Warnings...)
	return list, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseAmount accepts "45", "$1,250.50" and " 65.0 ".
func parseAmount(s string) (float64, error) {
	s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(strings.TrimSpace(s))
	if s == "" {
		return 0, errors.New("empty value")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("out of range: %q", s)
	}
	return v, nil
}
