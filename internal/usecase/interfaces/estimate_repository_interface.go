package interfaces

import (
	"context"
	"granite_estimator/internal/domain/entities"
)

// IEstimateRepository abstracts persistence for Estimate.
//
// Lookups and conditional updates return a zero Estimate (empty ID) when the
// row does not exist or the condition no longer holds.

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	// UpdateStatus moves id from one status to another only if it is still in from.
	UpdateStatus(ctx context.Context, id string, from, to entities.EstimateStatus) (entities.Estimate, error)
	UpdateNarrative(ctx context.Context, id string, narrative string, status entities.NarrativeStatus) (entities.Estimate, error)
}
