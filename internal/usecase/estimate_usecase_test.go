package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"granite_estimator/internal/domain/entities"
	"granite_estimator/internal/domain/estimator"
	mock_interfaces "granite_estimator/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func testPriceList() *entities.PriceList {
	return entities.NewPriceList(entities.PriceSchemaColorCostCoverage, []entities.PriceListItem{
		{Key: "Granite", UnitCostPerSqFt: 45, SlabCoverageSqFt: 100},
		{Key: "Quartzite", UnitCostPerSqFt: 65, SlabCoverageSqFt: 55},
	}, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
}

func testRequest() estimator.ProjectRequest {
	return estimator.ProjectRequest{
		TotalAreaSqFt: 100,
		MaterialKey:   "granite",
		SinkCount:     1,
		SinkTier:      estimator.TierStandard,
		CooktopTier:   estimator.TierStandard,
		EdgeDetail:    estimator.EdgeStandard,
		JobType:       estimator.JobFabricateAndInstall,
	}
}

func TestEstimateUseCase_PreviewEstimate(t *testing.T) {
	t.Run("invalid request", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, estimator.ModeLaborIncluded)
		req := testRequest()
		req.TotalAreaSqFt = 0
		_, err := uc.PreviewEstimate(context.Background(), req)
		if !errors.Is(err, estimator.ErrInvalidRequest) {
			t.Fatalf("expected ErrInvalidRequest, got %v", err)
		}
	})

	t.Run("price list unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		prices := mock_interfaces.NewMockIPriceTableProvider(ctrl)
		uc := NewEstimateUseCase(nil, prices, nil, estimator.ModeLaborIncluded)

		prices.EXPECT().Load(gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := uc.PreviewEstimate(context.Background(), testRequest())
		if !errors.Is(err, ErrPriceTableUnavailable) {
			t.Fatalf("expected ErrPriceTableUnavailable, got %v", err)
		}
	})

	t.Run("empty price list is unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		prices := mock_interfaces.NewMockIPriceTableProvider(ctrl)
		uc := NewEstimateUseCase(nil, prices, nil, estimator.ModeLaborIncluded)

		prices.EXPECT().Load(gomock.Any()).Return(entities.NewPriceList(entities.PriceSchemaMaterialPrice, nil, time.Now()), nil)

		_, err := uc.PreviewEstimate(context.Background(), testRequest())
		if !errors.Is(err, ErrPriceTableUnavailable) {
			t.Fatalf("expected ErrPriceTableUnavailable, got %v", err)
		}
	})

	t.Run("success does not persist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		prices := mock_interfaces.NewMockIPriceTableProvider(ctrl)
		uc := NewEstimateUseCase(repo, prices, nil, estimator.ModeLaborIncluded)

		prices.EXPECT().Load(gomock.Any()).Return(testPriceList(), nil)

		res, err := uc.PreviewEstimate(context.Background(), testRequest())
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.ID != "" {
			t.Fatalf("preview must not have an id, got %q", res.ID)
		}
		if res.Breakdown.TotalProjectCost != 10450 || res.Breakdown.SlabCount != 2 {
			t.Fatalf("unexpected breakdown: %+v", res.Breakdown)
		}
	})

	t.Run("unknown material uses default price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		prices := mock_interfaces.NewMockIPriceTableProvider(ctrl)
		uc := NewEstimateUseCase(nil, prices, nil, estimator.ModeLaborIncluded)

		prices.EXPECT().Load(gomock.Any()).Return(testPriceList(), nil)

		req := testRequest()
		req.MaterialKey = "Unobtainium"
		res, err := uc.PreviewEstimate(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !res.MaterialDefaulted || res.PriceEntry.UnitCostPerSqFt != estimator.DefaultUnitCostPerSqFt {
			t.Fatalf("expected default price, got %+v", res)
		}
	})

	t.Run("materials only mode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		prices := mock_interfaces.NewMockIPriceTableProvider(ctrl)
		uc := NewEstimateUseCase(nil, prices, nil, estimator.ModeMaterialsOnly)

		prices.EXPECT().Load(gomock.Any()).Return(testPriceList(), nil)

		res, err := uc.PreviewEstimate(context.Background(), testRequest())
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Breakdown.LaborCost != 0 || res.Breakdown.TotalProjectCost != res.Breakdown.PreliminaryTotal {
			t.Fatalf("unexpected breakdown: %+v", res.Breakdown)
		}
	})
}

func TestEstimateUseCase_CalculateEstimate(t *testing.T) {
	t.Run("create success with narrative", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		prices := mock_interfaces.NewMockIPriceTableProvider(ctrl)
		narrator := mock_interfaces.NewMockINarrativeGenerator(ctrl)
		uc := NewEstimateUseCase(repo, prices, narrator, estimator.ModeLaborIncluded)

		prices.EXPECT().Load(gomock.Any()).Return(testPriceList(), nil)
		narrator.EXPECT().GenerateNarrative(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).Return("Nice kitchen.", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.ID == "" || e.Status != entities.EstimateStatusPending {
					t.Fatalf("unexpected estimate: %+v", e)
				}
				if e.CreatedAt.IsZero() || e.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				if e.Narrative != "Nice kitchen." || e.NarrativeStatus != entities.NarrativeStatusGenerated {
					t.Fatalf("unexpected narrative: %q %s", e.Narrative, e.NarrativeStatus)
				}
				return e, nil
			},
		)

		res, err := uc.CalculateEstimate(context.Background(), testRequest())
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Breakdown.TotalProjectCost != 10450 {
			t.Fatalf("unexpected total: %v", res.Breakdown.TotalProjectCost)
		}
	})

	t.Run("narrative failure still saves figures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		prices := mock_interfaces.NewMockIPriceTableProvider(ctrl)
		narrator := mock_interfaces.NewMockINarrativeGenerator(ctrl)
		uc := NewEstimateUseCase(repo, prices, narrator, estimator.ModeLaborIncluded)

		prices.EXPECT().Load(gomock.Any()).Return(testPriceList(), nil)
		narrator.EXPECT().GenerateNarrative(gomock.Any(), gomock.Any()).Return("", errors.New("llm down"))
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) { return e, nil },
		)

		res, err := uc.CalculateEstimate(context.Background(), testRequest())
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.NarrativeStatus != entities.NarrativeStatusUnavailable || res.Narrative != "" {
			t.Fatalf("expected unavailable narrative, got %+v", res)
		}
		if res.Breakdown.TotalProjectCost != 10450 {
			t.Fatalf("figures must survive narrative failure")
		}
	})

	t.Run("repo create error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		prices := mock_interfaces.NewMockIPriceTableProvider(ctrl)
		uc := NewEstimateUseCase(repo, prices, nil, estimator.ModeLaborIncluded)

		prices.EXPECT().Load(gomock.Any()).Return(testPriceList(), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, errors.New("db"))

		_, err := uc.CalculateEstimate(context.Background(), testRequest())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("price failure never persists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		prices := mock_interfaces.NewMockIPriceTableProvider(ctrl)
		uc := NewEstimateUseCase(repo, prices, nil, estimator.ModeLaborIncluded)

		prices.EXPECT().Load(gomock.Any()).Return(nil, errors.New("404"))

		_, err := uc.CalculateEstimate(context.Background(), testRequest())
		if !errors.Is(err, ErrPriceTableUnavailable) {
			t.Fatalf("expected ErrPriceTableUnavailable, got %v", err)
		}
	})
}

func TestEstimateUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, estimator.ModeLaborIncluded)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, nil, estimator.ModeLaborIncluded)

		repo.EXPECT().GetByID(gomock.Any(), "e1").Return(entities.Estimate{}, nil)

		_, err := uc.GetByID(context.Background(), "e1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})
}

func TestEstimateUseCase_StatusTransitions(t *testing.T) {
	t.Run("approve pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, nil, estimator.ModeLaborIncluded)

		repo.EXPECT().GetByID(gomock.Any(), "e1").Return(entities.Estimate{ID: "e1", Status: entities.EstimateStatusPending}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "e1", entities.EstimateStatusPending, entities.EstimateStatusApproved).
			Return(entities.Estimate{ID: "e1", Status: entities.EstimateStatusApproved}, nil)

		res, err := uc.Approve(context.Background(), "e1")
		if err != nil || res.Status != entities.EstimateStatusApproved {
			t.Fatalf("unexpected result: %+v err=%v", res, err)
		}
	})

	t.Run("reject approved is invalid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, nil, estimator.ModeLaborIncluded)

		repo.EXPECT().GetByID(gomock.Any(), "e1").Return(entities.Estimate{ID: "e1", Status: entities.EstimateStatusApproved}, nil)

		_, err := uc.Reject(context.Background(), "e1")
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("cancel approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, nil, estimator.ModeLaborIncluded)

		repo.EXPECT().GetByID(gomock.Any(), "e1").Return(entities.Estimate{ID: "e1", Status: entities.EstimateStatusApproved}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "e1", entities.EstimateStatusApproved, entities.EstimateStatusCancelled).
			Return(entities.Estimate{ID: "e1", Status: entities.EstimateStatusCancelled}, nil)

		res, err := uc.Cancel(context.Background(), "e1")
		if err != nil || res.Status != entities.EstimateStatusCancelled {
			t.Fatalf("unexpected result: %+v err=%v", res, err)
		}
	})

	t.Run("concurrent change", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, nil, estimator.ModeLaborIncluded)

		repo.EXPECT().GetByID(gomock.Any(), "e1").Return(entities.Estimate{ID: "e1", Status: entities.EstimateStatusPending}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "e1", entities.EstimateStatusPending, entities.EstimateStatusRejected).
			Return(entities.Estimate{}, nil)

		_, err := uc.Reject(context.Background(), "e1")
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})
}

func TestEstimateUseCase_RegenerateNarrative(t *testing.T) {
	t.Run("no generator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, nil, estimator.ModeLaborIncluded)

		repo.EXPECT().GetByID(gomock.Any(), "e1").Return(entities.Estimate{ID: "e1"}, nil)

		_, err := uc.RegenerateNarrative(context.Background(), "e1")
		if !errors.Is(err, ErrNarrativeUnavailable) {
			t.Fatalf("expected ErrNarrativeUnavailable, got %v", err)
		}
	})

	t.Run("generator error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		narrator := mock_interfaces.NewMockINarrativeGenerator(ctrl)
		uc := NewEstimateUseCase(repo, nil, narrator, estimator.ModeLaborIncluded)

		repo.EXPECT().GetByID(gomock.Any(), "e1").Return(entities.Estimate{ID: "e1"}, nil)
		narrator.EXPECT().GenerateNarrative(gomock.Any(), gomock.Any()).Return("", errors.New("quota"))

		_, err := uc.RegenerateNarrative(context.Background(), "e1")
		if !errors.Is(err, ErrNarrativeUnavailable) {
			t.Fatalf("expected ErrNarrativeUnavailable, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		narrator := mock_interfaces.NewMockINarrativeGenerator(ctrl)
		uc := NewEstimateUseCase(repo, nil, narrator, estimator.ModeLaborIncluded)

		repo.EXPECT().GetByID(gomock.Any(), "e1").Return(entities.Estimate{ID: "e1", NarrativeStatus: entities.NarrativeStatusUnavailable}, nil)
		narrator.EXPECT().GenerateNarrative(gomock.Any(), gomock.Any()).Return("Fresh text.", nil)
		repo.EXPECT().UpdateNarrative(gomock.Any(), "e1", "Fresh text.", entities.NarrativeStatusGenerated).
			Return(entities.Estimate{ID: "e1", Narrative: "Fresh text.", NarrativeStatus: entities.NarrativeStatusGenerated}, nil)

		res, err := uc.RegenerateNarrative(context.Background(), "e1")
		if err != nil || res.Narrative != "Fresh text." {
			t.Fatalf("unexpected result: %+v err=%v", res, err)
		}
	})
}

func TestEstimateUseCase_PriceList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	prices := mock_interfaces.NewMockIPriceTableProvider(ctrl)
	uc := NewEstimateUseCase(nil, prices, nil, estimator.ModeLaborIncluded)

	prices.EXPECT().Load(gomock.Any()).Return(nil, errors.New("boom"))
	if _, err := uc.PriceList(context.Background()); !errors.Is(err, ErrPriceTableUnavailable) {
		t.Fatalf("expected ErrPriceTableUnavailable, got %v", err)
	}

	prices.EXPECT().Load(gomock.Any()).Return(testPriceList(), nil)
	list, err := uc.PriceList(context.Background())
	if err != nil || list.Len() != 2 {
		t.Fatalf("unexpected list: %+v err=%v", list, err)
	}
}
