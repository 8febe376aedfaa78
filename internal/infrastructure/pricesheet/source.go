package pricesheet

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"granite_estimator/internal/domain/entities"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFetchTimeout = 10 * time.Second
	maxSheetBytes       = 10 << 20
)

// Source loads a complete price list.
type Source interface {
	Load(ctx context.Context) (*entities.PriceList, error)
}

// HTTPSource downloads a published CSV sheet (e.g. Google Sheets "output=csv").
type HTTPSource struct {
	URL     string
	Timeout time.Duration
	Client  *http.Client
	now     func() time.Time
}

func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &HTTPSource{URL: url, Timeout: timeout, Client: &http.Client{}, now: time.Now}
}

func (s *HTTPSource) Load(ctx context.Context) (*entities.PriceList, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	log.Printf("[pricesheet][http] fetch start url=%s", s.URL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrPriceTableUnavailable, err)
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		log.Printf("[pricesheet][http] fetch failed err=%v", err)
		return nil, fmt.Errorf("%w: fetch: %w", ErrPriceTableUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[pricesheet][http] fetch failed status=%d", resp.StatusCode)
		return nil, fmt.Errorf("%w: unexpected status %d", ErrPriceTableUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxSheetBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrPriceTableUnavailable, err)
	}

	list, err := ParseCSV(body, clock(s.now)().UTC())
	if err != nil {
		log.Printf("[pricesheet][http] parse failed err=%v", err)
		return nil, fmt.Errorf("%w: %w", ErrPriceTableUnavailable, err)
	}
	log.Printf("[pricesheet][http] fetch success rows=%d schema=%s", list.Len(), list.Schema)
	return list, nil
}

// FileSource reads a local .csv, .xlsx or .yaml price list.
type FileSource struct {
	Path string
	now  func() time.Time
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path, now: time.Now}
}

func (s *FileSource) Load(_ context.Context) (*entities.PriceList, error) {
	var (
		list *entities.PriceList
		err  error
	)
	loadedAt := clock(s.now)().UTC()
	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".xlsx", ".xlsm":
		list, err = loadExcel(s.Path, loadedAt)
	case ".yaml", ".yml":
		list, err = loadYAML(s.Path, loadedAt)
	case ".csv", ".txt":
		var data []byte
		data, err = os.ReadFile(s.Path)
		if err == nil {
			list, err = ParseCSV(data, loadedAt)
		}
	default:
		err = fmt.Errorf("%w: unsupported file type %q", ErrInvalidPriceSheet, filepath.Ext(s.Path))
	}
	if err != nil {
		log.Printf("[pricesheet][file] load failed path=%s err=%v", s.Path, err)
		return nil, fmt.Errorf("%w: %w", ErrPriceTableUnavailable, err)
	}
	log.Printf("[pricesheet][file] load success path=%s rows=%d schema=%s", s.Path, list.Len(), list.Schema)
	return list, nil
}

func clock(now func() time.Time) func() time.Time {
	if now == nil {
		return time.Now
	}
	return now
}

// loadExcel reads the first worksheet.
func loadExcel(path string, loadedAt time.Time) (*entities.PriceList, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: excel file has no sheets", ErrInvalidPriceSheet)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read excel rows: %w", err)
	}
	return ParseRows(rows, loadedAt)
}

// yamlSheet is the on-disk YAML layout:
//
//	materials:
//	  - material: granite and quartz
//	    price: 45
//	  - color: Calacatta Laza
//	    cost: 80
//	    coverage: 55
type yamlSheet struct {
	Materials []struct {
		Material string   `yaml:"material"`
		Color    string   `yaml:"color"`
		Price    *float64 `yaml:"price"`
		Cost     *float64 `yaml:"cost"`
		Coverage *float64 `yaml:"coverage"`
	} `yaml:"materials"`
}

func loadYAML(path string, loadedAt time.Time) (*entities.PriceList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc yamlSheet
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPriceSheet, err)
	}

	schema := entities.PriceSchemaMaterialPrice
	items := make([]entities.PriceListItem, 0, len(doc.Materials))
	var warnings []string
	for i, m := range doc.Materials {
		key := strings.TrimSpace(m.Material)
		if key == "" {
			key = strings.TrimSpace(m.Color)
		}
		if key == "" {
			warnings = append(warnings, fmt.Sprintf("entry %d skipped: no material or color", i+1))
			continue
		}

		costPtr := m.Price
		if costPtr == nil {
			costPtr = m.Cost
		}
		if costPtr == nil {
			return nil, fmt.Errorf("%w: entry %d (%s): missing price", ErrInvalidPriceSheet, i+1, key)
		}
		cost := *costPtr

		coverage := 0.0
		if m.Coverage != nil {
			coverage = *m.Coverage
			schema = entities.PriceSchemaColorCostCoverage
		}
		if cost < 0 || coverage < 0 {
			return nil, fmt.Errorf("%w: entry %d (%s): negative value", ErrInvalidPriceSheet, i+1, key)
		}
		items = append(items, entities.PriceListItem{Key: key, UnitCostPerSqFt: cost, SlabCoverageSqFt: coverage})
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no price entries found", ErrInvalidPriceSheet)
	}

	list := entities.NewPriceList(schema, items, loadedAt)
	list.Warnings = append(warnings, list.Warnings...)
	return list, nil
}
