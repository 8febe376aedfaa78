package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"granite_estimator/internal/domain/entities"
	"granite_estimator/internal/usecase/interfaces"
)

// DepositPaymentSQLiteRepository persists DepositPayment entities in SQLite.
// Only the raw provider response is stored; MPPayload is rebuilt on read.
type DepositPaymentSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.IDepositPaymentRepository = (*DepositPaymentSQLiteRepository)(nil)

func NewDepositPaymentSQLiteRepository(db *sql.DB) *DepositPaymentSQLiteRepository {
	return &DepositPaymentSQLiteRepository{db: db}
}

func (r *DepositPaymentSQLiteRepository) Create(ctx context.Context, p entities.DepositPayment) (entities.DepositPayment, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO deposit_payments (id, estimate_id, amount, date, status, mp_payload_raw) VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.EstimateID, p.Amount, formatTime(p.Date), string(p.Status), string(p.MPPayloadRaw),
	)
	if err != nil {
		return entities.DepositPayment{}, fmt.Errorf("insert deposit payment: %w", err)
	}
	return p, nil
}

func (r *DepositPaymentSQLiteRepository) GetByID(ctx context.Context, id string) (entities.DepositPayment, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, estimate_id, amount, date, status, mp_payload_raw FROM deposit_payments WHERE id = ?`, id)
	p, err := scanDepositPayment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.DepositPayment{}, nil
	}
	return p, err
}

func (r *DepositPaymentSQLiteRepository) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.DepositPayment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, estimate_id, amount, date, status, mp_payload_raw FROM deposit_payments WHERE estimate_id = ? ORDER BY date`,
		estimateID)
	if err != nil {
		return nil, fmt.Errorf("query deposit payments: %w", err)
	}
	defer rows.Close()

	items := make([]entities.DepositPayment, 0)
	for rows.Next() {
		p, err := scanDepositPayment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func scanDepositPayment(row rowScanner) (entities.DepositPayment, error) {
	var (
		p            entities.DepositPayment
		date, status string
		raw          string
	)
	if err := row.Scan(&p.ID, &p.EstimateID, &p.Amount, &date, &status, &raw); err != nil {
		return entities.DepositPayment{}, err
	}
	p.Date = parseTime(date)
	p.Status = entities.PaymentStatus(status)
	if raw != "" {
		p.MPPayloadRaw = []byte(raw)
		p.MPPayload = parsePayload(p.MPPayloadRaw)
	}
	return p, nil
}
