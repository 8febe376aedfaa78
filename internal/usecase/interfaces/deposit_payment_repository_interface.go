package interfaces

import (
	"context"
	"granite_estimator/internal/domain/entities"
)

// IDepositPaymentRepository abstracts persistence for DepositPayment.

type IDepositPaymentRepository interface {
	Create(ctx context.Context, p entities.DepositPayment) (entities.DepositPayment, error)
	GetByID(ctx context.Context, id string) (entities.DepositPayment, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.DepositPayment, error)
}
