package usecase

import (
	"context"
	"errors"
	"testing"

	"fieldops_billing/internal/domain/entities"
	"fieldops_billing/internal/domain/pricing"
	mock_interfaces "fieldops_billing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func testCostInputs() pricing.CostInputs {
	return pricing.CostInputs{
		LaborRoles: []entities.LaborRole{
			{Name: "climber", HourlyWage: 30, BurdenPercent: 0.25, HoursPerDay: 8, Headcount: 2},
		},
		Margins:      entities.MarginTargets{TargetPercent: 0.30, FloorPercent: 0.15},
		Utilization:  0.75,
		BillableDays: 20,
	}
}

func TestCostProfileUseCase_Save(t *testing.T) {
	t.Run("empty company id", func(t *testing.T) {
		uc := NewCostProfileUseCase(nil, fixedClock{testNow})
		_, err := uc.Save(context.Background(), "", "u-1", testCostInputs())
		if !errors.Is(err, ErrInvalidCompanyID) {
			t.Fatalf("expected ErrInvalidCompanyID, got %v", err)
		}
	})

	t.Run("no labor roles", func(t *testing.T) {
		uc := NewCostProfileUseCase(nil, fixedClock{testNow})
		_, err := uc.Save(context.Background(), "co-1", "u-1", pricing.CostInputs{})
		if !errors.Is(err, ErrNoLaborRoles) {
			t.Fatalf("expected ErrNoLaborRoles, got %v", err)
		}
	})

	t.Run("first save writes version 1", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICostProfileRepository(ctrl)
		repo.EXPECT().GetLatest(gomock.Any(), "co-1").Return(entities.CostProfileSnapshot{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s entities.CostProfileSnapshot) error {
				if s.Version != 1 {
					t.Fatalf("expected version 1, got %d", s.Version)
				}
				if s.Outputs.DailyLaborCost == 0 {
					t.Fatalf("outputs must be computed at save time")
				}
				return nil
			})

		uc := NewCostProfileUseCase(repo, fixedClock{testNow})
		got, err := uc.Save(context.Background(), "co-1", "u-1", testCostInputs())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.CreatedBy != "u-1" || !got.CreatedAt.Equal(testNow) {
			t.Fatalf("unexpected snapshot metadata %+v", got)
		}
	})

	t.Run("re-save appends, never mutates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICostProfileRepository(ctrl)
		repo.EXPECT().GetLatest(gomock.Any(), "co-1").Return(entities.CostProfileSnapshot{CompanyID: "co-1", Version: 7}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s entities.CostProfileSnapshot) error {
				if s.Version != 8 {
					t.Fatalf("expected version 8, got %d", s.Version)
				}
				return nil
			})

		uc := NewCostProfileUseCase(repo, fixedClock{testNow})
		if _, err := uc.Save(context.Background(), "co-1", "u-1", testCostInputs()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCostProfileUseCase_GetLatest(t *testing.T) {
	t.Run("zero version means not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICostProfileRepository(ctrl)
		repo.EXPECT().GetLatest(gomock.Any(), "co-1").Return(entities.CostProfileSnapshot{}, nil)

		uc := NewCostProfileUseCase(repo, fixedClock{testNow})
		_, err := uc.GetLatest(context.Background(), "co-1")
		if !errors.Is(err, ErrCostProfileNotFound) {
			t.Fatalf("expected ErrCostProfileNotFound, got %v", err)
		}
	})
}

func TestCostProfileUseCase_Preview(t *testing.T) {
	uc := NewCostProfileUseCase(nil, fixedClock{testNow})
	out := uc.Preview(context.Background(), testCostInputs())
	if out.DailyLaborCost == 0 || out.CrewHoursPerDay != 16 {
		t.Fatalf("unexpected preview outputs %+v", out)
	}
}
