package usecase

import (
	"context"
	"errors"
	"fmt"
	"granite_estimator/internal/domain/entities"
	"granite_estimator/internal/domain/estimator"
	"granite_estimator/internal/usecase/interfaces"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound        = errors.New("estimate not found")
	ErrInvalidEstimateID       = errors.New("invalid estimate id")
	ErrInvalidStatusTransition = errors.New("invalid estimate status transition")
	ErrPriceTableUnavailable   = errors.New("price table unavailable")
	ErrNarrativeUnavailable    = errors.New("narrative unavailable")
)

// IEstimateUseCase exposes estimate operations.
//
//   - PreviewEstimate prices a project without saving it.
//   - CalculateEstimate prices, narrates and saves a project.
//   - Approve/Reject/Cancel drive the customer decision lifecycle.

type IEstimateUseCase interface {
	PreviewEstimate(ctx context.Context, req estimator.ProjectRequest) (entities.Estimate, error)
	CalculateEstimate(ctx context.Context, req estimator.ProjectRequest) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	Approve(ctx context.Context, id string) (entities.Estimate, error)
	Reject(ctx context.Context, id string) (entities.Estimate, error)
	Cancel(ctx context.Context, id string) (entities.Estimate, error)
	RegenerateNarrative(ctx context.Context, id string) (entities.Estimate, error)
	PriceList(ctx context.Context) (*entities.PriceList, error)
}

type EstimateUseCase struct {
	repo     interfaces.IEstimateRepository
	prices   interfaces.IPriceTableProvider
	narrator interfaces.INarrativeGenerator
	mode     estimator.Mode
	now      func() time.Time
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

// NewEstimateUseCase wires the estimate flow. narrator may be nil, in which
// case estimates are saved with an unavailable narrative.
func NewEstimateUseCase(repo interfaces.IEstimateRepository, prices interfaces.IPriceTableProvider, narrator interfaces.INarrativeGenerator, mode estimator.Mode) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, prices: prices, narrator: narrator, mode: mode, now: time.Now}
}

func (u *EstimateUseCase) PreviewEstimate(ctx context.Context, req estimator.ProjectRequest) (entities.Estimate, error) {
	return u.price(ctx, req)
}

func (u *EstimateUseCase) CalculateEstimate(ctx context.Context, req estimator.ProjectRequest) (entities.Estimate, error) {
	e, err := u.price(ctx, req)
	if err != nil {
		return entities.Estimate{}, err
	}

	now := u.now().UTC()
	e.ID = uuid.NewString()
	e.Status = entities.EstimateStatusPending
	e.CreatedAt = now
	e.UpdatedAt = now
	e.Narrative, e.NarrativeStatus = u.narrate(ctx, e)

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		log.Printf("[estimate][usecase] repository create failed estimate_id=%s err=%v", e.ID, err)
		return entities.Estimate{}, err
	}
	log.Printf("[estimate][usecase] calculate success estimate_id=%s total=%.2f slabs=%d narrative=%s",
		created.ID, created.Breakdown.TotalProjectCost, created.Breakdown.SlabCount, created.NarrativeStatus)
	return created, nil
}

// price validates, loads the price list and runs the engine. The engine is
// never run when the price list could not be loaded.
func (u *EstimateUseCase) price(ctx context.Context, req estimator.ProjectRequest) (entities.Estimate, error) {
	if err := estimator.Validate(req); err != nil {
		return entities.Estimate{}, err
	}
	if u.prices == nil {
		return entities.Estimate{}, fmt.Errorf("%w: no price provider configured", ErrPriceTableUnavailable)
	}

	list, err := u.prices.Load(ctx)
	if err != nil {
		log.Printf("[estimate][usecase] price list load failed err=%v", err)
		return entities.Estimate{}, fmt.Errorf("%w: %w", ErrPriceTableUnavailable, err)
	}
	if list == nil || list.Len() == 0 {
		return entities.Estimate{}, fmt.Errorf("%w: empty price list", ErrPriceTableUnavailable)
	}

	res := estimator.Compute(req, list, estimator.Options{Mode: u.mode})
	if res.MaterialDefaulted {
		log.Printf("[estimate][usecase] warning: material key not in price list, default price used material_key=%q", res.MaterialKey)
	}
	return entities.FromResult(req, res), nil
}

func (u *EstimateUseCase) narrate(ctx context.Context, e entities.Estimate) (string, entities.NarrativeStatus) {
	if u.narrator == nil {
		return "", entities.NarrativeStatusUnavailable
	}
	text, err := u.narrator.GenerateNarrative(ctx, e)
	if err != nil {
		log.Printf("[estimate][usecase] narrative failed estimate_id=%s err=%v", e.ID, err)
		return "", entities.NarrativeStatusUnavailable
	}
	return text, entities.NarrativeStatusGenerated
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) Approve(ctx context.Context, id string) (entities.Estimate, error) {
	return u.transition(ctx, id, entities.EstimateStatusApproved)
}

func (u *EstimateUseCase) Reject(ctx context.Context, id string) (entities.Estimate, error) {
	return u.transition(ctx, id, entities.EstimateStatusRejected)
}

func (u *EstimateUseCase) Cancel(ctx context.Context, id string) (entities.Estimate, error) {
	return u.transition(ctx, id, entities.EstimateStatusCancelled)
}

func (u *EstimateUseCase) transition(ctx context.Context, id string, to entities.EstimateStatus) (entities.Estimate, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if !current.CanTransitionTo(to) {
		return entities.Estimate{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, current.Status, to)
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, current.Status, to)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		// Status changed between read and write.
		return entities.Estimate{}, fmt.Errorf("%w: concurrent update", ErrInvalidStatusTransition)
	}
	log.Printf("[estimate][usecase] status updated estimate_id=%s from=%s to=%s", updated.ID, current.Status, updated.Status)
	return updated, nil
}

func (u *EstimateUseCase) RegenerateNarrative(ctx context.Context, id string) (entities.Estimate, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if u.narrator == nil {
		return entities.Estimate{}, ErrNarrativeUnavailable
	}

	text, err := u.narrator.GenerateNarrative(ctx, current)
	if err != nil {
		log.Printf("[estimate][usecase] narrative regeneration failed estimate_id=%s err=%v", current.ID, err)
		return entities.Estimate{}, fmt.Errorf("%w: %w", ErrNarrativeUnavailable, err)
	}

	updated, err := u.repo.UpdateNarrative(ctx, current.ID, text, entities.NarrativeStatusGenerated)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return updated, nil
}

func (u *EstimateUseCase) PriceList(ctx context.Context) (*entities.PriceList, error) {
	if u.prices == nil {
		return nil, fmt.Errorf("%w: no price provider configured", ErrPriceTableUnavailable)
	}
	list, err := u.prices.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPriceTableUnavailable, err)
	}
	return list, nil
}
