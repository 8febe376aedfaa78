package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"granite_estimator/internal/domain/entities"
	"granite_estimator/internal/domain/estimator"
	"granite_estimator/internal/usecase/interfaces"
)

const estimateColumns = `id, status, request_json, breakdown_json, unit_cost_per_sq_ft, slab_coverage_sq_ft,
	material_key, material_defaulted, effective_area_sq_ft, calculation_mode, total_project_cost,
	narrative, narrative_status, created_at, updated_at`

// EstimateSQLiteRepository persists Estimate entities in a local SQLite file.
// The request and breakdown are stored as JSON documents.
type EstimateSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.IEstimateRepository = (*EstimateSQLiteRepository)(nil)

func NewEstimateSQLiteRepository(db *sql.DB) *EstimateSQLiteRepository {
	return &EstimateSQLiteRepository{db: db}
}

func (r *EstimateSQLiteRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	reqJSON, err := json.Marshal(e.Request)
	if err != nil {
		return entities.Estimate{}, fmt.Errorf("marshal estimate request: %w", err)
	}
	breakdownJSON, err := json.Marshal(e.Breakdown)
	if err != nil {
		return entities.Estimate{}, fmt.Errorf("marshal estimate breakdown: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `INSERT INTO estimates (`+estimateColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, string(e.Status), string(reqJSON), string(breakdownJSON),
		e.PriceEntry.UnitCostPerSqFt, e.PriceEntry.SlabCoverageSqFt,
		e.MaterialKey, e.MaterialDefaulted, e.EffectiveAreaSqFt, string(e.CalculationMode),
		e.Breakdown.TotalProjectCost, e.Narrative, string(e.NarrativeStatus),
		formatTime(e.CreatedAt), formatTime(e.UpdatedAt),
	)
	if err != nil {
		return entities.Estimate{}, fmt.Errorf("insert estimate: %w", err)
	}
	return e, nil
}

func (r *EstimateSQLiteRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+estimateColumns+` FROM estimates WHERE id = ?`, id)
	e, err := scanEstimate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Estimate{}, nil
	}
	if err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateSQLiteRepository) UpdateStatus(ctx context.Context, id string, from, to entities.EstimateStatus) (entities.Estimate, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE estimates SET status = ?, updated_at = ? WHERE id = ? AND status = ?`,
		string(to), formatTime(time.Now()), id, string(from),
	)
	if err != nil {
		return entities.Estimate{}, fmt.Errorf("update estimate status: %w", err)
	}
	return r.afterUpdate(ctx, id, res)
}

func (r *EstimateSQLiteRepository) UpdateNarrative(ctx context.Context, id string, narrative string, status entities.NarrativeStatus) (entities.Estimate, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE estimates SET narrative = ?, narrative_status = ?, updated_at = ? WHERE id = ?`,
		narrative, string(status), formatTime(time.Now()), id,
	)
	if err != nil {
		return entities.Estimate{}, fmt.Errorf("update estimate narrative: %w", err)
	}
	return r.afterUpdate(ctx, id, res)
}

// afterUpdate returns the fresh row, or a zero Estimate when nothing matched.
func (r *EstimateSQLiteRepository) afterUpdate(ctx context.Context, id string, res sql.Result) (entities.Estimate, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return entities.Estimate{}, err
	}
	if n == 0 {
		return entities.Estimate{}, nil
	}
	return r.GetByID(ctx, id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEstimate(row rowScanner) (entities.Estimate, error) {
	var (
		e                        entities.Estimate
		status, mode, narrStatus string
		reqJSON, breakdownJSON   string
		createdAt, updatedAt     string
		totalProjectCost         float64
	)
	err := row.Scan(
		&e.ID, &status, &reqJSON, &breakdownJSON,
		&e.PriceEntry.UnitCostPerSqFt, &e.PriceEntry.SlabCoverageSqFt,
		&e.MaterialKey, &e.MaterialDefaulted, &e.EffectiveAreaSqFt, &mode,
		&totalProjectCost, &e.Narrative, &narrStatus, &createdAt, &updatedAt,
	)
	if err != nil {
		return entities.Estimate{}, err
	}
	if err := json.Unmarshal([]byte(reqJSON), &e.Request); err != nil {
		return entities.Estimate{}, fmt.Errorf("decode estimate request: %w", err)
	}
	if err := json.Unmarshal([]byte(breakdownJSON), &e.Breakdown); err != nil {
		return entities.Estimate{}, fmt.Errorf("decode estimate breakdown: %w", err)
	}
	e.Status = entities.EstimateStatus(status)
	e.CalculationMode = estimator.Mode(mode)
	e.NarrativeStatus = entities.NarrativeStatus(narrStatus)
	e.CreatedAt = parseTime(createdAt)
	e.UpdatedAt = parseTime(updatedAt)
	return e, nil
}
