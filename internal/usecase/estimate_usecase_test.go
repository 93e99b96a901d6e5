package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"fieldops_billing/internal/domain/entities"
	"fieldops_billing/internal/domain/pricing"
	"fieldops_billing/internal/usecase/interfaces"
	mock_interfaces "fieldops_billing/internal/usecase/interfaces/mocks"
	"fieldops_billing/pkg/apperror"

	"go.uber.org/mock/gomock"
)

type estimateFixture struct {
	repo      *mock_interfaces.MockIEstimateRepository
	snapshots *mock_interfaces.MockIEstimateSnapshotRepository
	audit     *mock_interfaces.MockIAuditLogRepository
	profiles  *mock_interfaces.MockICostProfileRepository
	rules     *mock_interfaces.MockIPricingRuleRepository
	notifier  *mock_interfaces.MockINotifier
	uc        *EstimateUseCase
}

// stubIssuer satisfies TokenIssuer without dragging the portal into estimate
// tests.
type stubIssuer struct {
	raw string
	err error
}

func (s stubIssuer) Issue(context.Context, string, entities.DocumentType, string, entities.TokenPurpose) (string, time.Time, error) {
	return s.raw, testNow.Add(30 * 24 * time.Hour), s.err
}

func newEstimateFixture(t *testing.T, issuer TokenIssuer) (*gomock.Controller, *estimateFixture) {
	ctrl := gomock.NewController(t)
	f := &estimateFixture{
		repo:      mock_interfaces.NewMockIEstimateRepository(ctrl),
		snapshots: mock_interfaces.NewMockIEstimateSnapshotRepository(ctrl),
		audit:     mock_interfaces.NewMockIAuditLogRepository(ctrl),
		profiles:  mock_interfaces.NewMockICostProfileRepository(ctrl),
		rules:     mock_interfaces.NewMockIPricingRuleRepository(ctrl),
		notifier:  mock_interfaces.NewMockINotifier(ctrl),
	}
	f.audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.uc = NewEstimateUseCase(f.repo, f.snapshots, f.audit, f.profiles, f.rules, issuer, f.notifier, fixedClock{testNow}, "https://pay.example.com")
	return ctrl, f
}

func testCostProfile() entities.CostProfileSnapshot {
	return entities.CostProfileSnapshot{
		CompanyID: "co-1",
		Version:   3,
		Margins:   entities.MarginTargets{TargetPercent: 0.30, FloorPercent: 0.15},
		Outputs: entities.CalculatedOutputs{
			DailyLaborCost:          790,
			DailyOverheadAllocation: 100,
			CrewHoursPerDay:         24,
		},
	}
}

func testWorkItems() []entities.WorkItem {
	return []entities.WorkItem{
		{Description: "tree removal", Quantity: 1, UnitPrice: 150, LaborHours: 12},
	}
}

func expectPricing(f *estimateFixture) {
	f.profiles.EXPECT().GetLatest(gomock.Any(), "co-1").Return(testCostProfile(), nil)
	f.rules.EXPECT().GetProfile(gomock.Any(), "co-1").Return(entities.PricingProfile{CompanyID: "co-1", TaxPercent: 0.07}, nil)
}

func TestEstimateUseCase_CreateDraft(t *testing.T) {
	t.Run("empty customer id", func(t *testing.T) {
		ctrl, f := newEstimateFixture(t, nil)
		defer ctrl.Finish()
		_, err := f.uc.CreateDraft(context.Background(), "co-1", "u-1", " ", "quote", testWorkItems(), nil)
		if !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("no work items", func(t *testing.T) {
		ctrl, f := newEstimateFixture(t, nil)
		defer ctrl.Finish()
		_, err := f.uc.CreateDraft(context.Background(), "co-1", "u-1", "cust-1", "quote", nil, nil)
		if !errors.Is(err, ErrNoWorkItems) {
			t.Fatalf("expected ErrNoWorkItems, got %v", err)
		}
	})

	t.Run("no cost profile yet", func(t *testing.T) {
		ctrl, f := newEstimateFixture(t, nil)
		defer ctrl.Finish()
		f.profiles.EXPECT().GetLatest(gomock.Any(), "co-1").Return(entities.CostProfileSnapshot{}, nil)
		_, err := f.uc.CreateDraft(context.Background(), "co-1", "u-1", "cust-1", "quote", testWorkItems(), nil)
		if !errors.Is(err, ErrCostProfileNotFound) {
			t.Fatalf("expected ErrCostProfileNotFound, got %v", err)
		}
	})

	t.Run("override without reason", func(t *testing.T) {
		ctrl, f := newEstimateFixture(t, nil)
		defer ctrl.Finish()
		expectPricing(f)
		_, err := f.uc.CreateDraft(context.Background(), "co-1", "u-1", "cust-1", "quote", testWorkItems(),
			&pricing.Override{Multiplier: 0.9})
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) || appErr.Code != "OVERRIDE_REASON_REQUIRED" {
			t.Fatalf("expected OVERRIDE_REASON_REQUIRED, got %v", err)
		}
	})

	t.Run("prices against latest profile and tax rate", func(t *testing.T) {
		ctrl, f := newEstimateFixture(t, nil)
		defer ctrl.Finish()
		expectPricing(f)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.Status != entities.EstimateStatusDraft || e.Version != 1 {
					t.Fatalf("unexpected new estimate %+v", e)
				}
				if e.CostProfileVersion != 3 {
					t.Fatalf("expected cost profile version 3, got %d", e.CostProfileVersion)
				}
				if e.Pricing.TaxRate != 0.07 {
					t.Fatalf("expected tax rate 0.07, got %v", e.Pricing.TaxRate)
				}
				if e.WorkItems[0].ID == "" {
					t.Fatalf("work items must get ids assigned")
				}
				return e, nil
			})

		got, err := f.uc.CreateDraft(context.Background(), "co-1", "u-1", "cust-1", "quote", testWorkItems(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Pricing.FinalPrice < got.Pricing.FloorPrice {
			t.Fatalf("un-overridden price below floor: %+v", got.Pricing)
		}
	})
}

func TestEstimateUseCase_PatchDraft(t *testing.T) {
	t.Run("non-draft is a structured conflict", func(t *testing.T) {
		ctrl, f := newEstimateFixture(t, nil)
		defer ctrl.Finish()
		f.repo.EXPECT().GetByID(gomock.Any(), "co-1", "est-1").
			Return(entities.Estimate{ID: "est-1", CompanyID: "co-1", Status: entities.EstimateStatusSent}, nil)

		title := "new title"
		_, err := f.uc.PatchDraft(context.Background(), "co-1", "est-1", EstimatePatch{Title: &title}, entities.Actor{Type: "user", ID: "u-1"})
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) || appErr.Kind != apperror.KindStateConflict {
			t.Fatalf("expected state conflict, got %v", err)
		}
		if appErr.Details["current_status"] != "sent" {
			t.Fatalf("conflict must carry the current status, got %v", appErr.Details)
		}
	})

	t.Run("title-only patch does not reprice", func(t *testing.T) {
		ctrl, f := newEstimateFixture(t, nil)
		defer ctrl.Finish()
		e := entities.Estimate{ID: "est-1", CompanyID: "co-1", Status: entities.EstimateStatusDraft,
			WorkItems: testWorkItems(), Pricing: entities.PricingBreakdown{FinalPrice: 1200}}
		f.repo.EXPECT().GetByID(gomock.Any(), "co-1", "est-1").Return(e, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, updated entities.Estimate) (entities.Estimate, error) {
				if updated.Title != "revised" {
					t.Fatalf("title not applied: %q", updated.Title)
				}
				if updated.Pricing.FinalPrice != 1200 {
					t.Fatalf("pricing must be untouched, got %v", updated.Pricing.FinalPrice)
				}
				return updated, nil
			})

		title := "revised"
		if _, err := f.uc.PatchDraft(context.Background(), "co-1", "est-1", EstimatePatch{Title: &title}, entities.Actor{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("work item change reprices", func(t *testing.T) {
		ctrl, f := newEstimateFixture(t, nil)
		defer ctrl.Finish()
		e := entities.Estimate{ID: "est-1", CompanyID: "co-1", Status: entities.EstimateStatusDraft, WorkItems: testWorkItems()}
		f.repo.EXPECT().GetByID(gomock.Any(), "co-1", "est-1").Return(e, nil)
		expectPricing(f)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, updated entities.Estimate) (entities.Estimate, error) {
				if updated.Pricing.FinalPrice == 0 {
					t.Fatalf("expected repriced estimate")
				}
				return updated, nil
			})

		items := []entities.WorkItem{{Description: "stump grinding", Quantity: 2, UnitPrice: 80, LaborHours: 6}}
		if _, err := f.uc.PatchDraft(context.Background(), "co-1", "est-1", EstimatePatch{WorkItems: &items}, entities.Actor{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimateUseCase_Send(t *testing.T) {
	t.Run("snapshot then status then link", func(t *testing.T) {
		ctrl, f := newEstimateFixture(t, stubIssuer{raw: "rawtoken"})
		defer ctrl.Finish()

		e := entities.Estimate{ID: "est-1", CompanyID: "co-1", CustomerID: "cust-1", Status: entities.EstimateStatusDraft, WorkItems: testWorkItems()}
		f.repo.EXPECT().GetByID(gomock.Any(), "co-1", "est-1").Return(e, nil)
		f.snapshots.EXPECT().LatestVersion(gomock.Any(), "est-1").Return(int64(0), nil)
		gomock.InOrder(
			f.snapshots.EXPECT().Append(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, s entities.EstimateSnapshot) error {
					if s.SnapshotVersion != 1 || s.TriggerAction != entities.TriggerSend {
						t.Fatalf("unexpected snapshot %+v", s)
					}
					if s.PreviousStatus != entities.EstimateStatusDraft || s.NewStatus != entities.EstimateStatusSent {
						t.Fatalf("snapshot must record the transition: %+v", s)
					}
					return nil
				}),
			f.repo.EXPECT().UpdateStatus(gomock.Any(), "co-1", "est-1", entities.EstimateStatusDraft, entities.EstimateStatusSent).
				DoAndReturn(func(_ context.Context, _, _ string, _, to entities.EstimateStatus) (entities.Estimate, error) {
					e.Status = to
					return e, nil
				}),
		)
		f.notifier.EXPECT().SendDocumentLink(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg interfaces.DocumentLinkMessage) error {
				if !strings.Contains(msg.LinkURL, "token=rawtoken") {
					t.Fatalf("link must carry the raw token: %s", msg.LinkURL)
				}
				if strings.Contains(msg.LinkURL, "//portal") {
					t.Fatalf("base url join broken: %s", msg.LinkURL)
				}
				return nil
			})

		got, err := f.uc.Send(context.Background(), "co-1", "est-1", entities.Actor{Type: "user", ID: "u-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.EstimateStatusSent {
			t.Fatalf("expected sent, got %s", got.Status)
		}
	})

	t.Run("notification failure does not roll back", func(t *testing.T) {
		ctrl, f := newEstimateFixture(t, stubIssuer{raw: "rawtoken"})
		defer ctrl.Finish()

		e := entities.Estimate{ID: "est-1", CompanyID: "co-1", Status: entities.EstimateStatusDraft}
		f.repo.EXPECT().GetByID(gomock.Any(), "co-1", "est-1").Return(e, nil)
		f.snapshots.EXPECT().LatestVersion(gomock.Any(), "est-1").Return(int64(0), nil)
		f.snapshots.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().UpdateStatus(gomock.Any(), "co-1", "est-1", entities.EstimateStatusDraft, entities.EstimateStatusSent).
			Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusSent}, nil)
		f.notifier.EXPECT().SendDocumentLink(gomock.Any(), gomock.Any()).Return(errors.New("sms provider down"))

		got, err := f.uc.Send(context.Background(), "co-1", "est-1", entities.Actor{})
		if err != nil {
			t.Fatalf("send must survive a delivery failure, got %v", err)
		}
		if got.Status != entities.EstimateStatusSent {
			t.Fatalf("expected sent, got %s", got.Status)
		}
	})

	t.Run("approved estimate cannot be re-sent", func(t *testing.T) {
		ctrl, f := newEstimateFixture(t, nil)
		defer ctrl.Finish()
		f.repo.EXPECT().GetByID(gomock.Any(), "co-1", "est-1").
			Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusApproved}, nil)

		_, err := f.uc.Send(context.Background(), "co-1", "est-1", entities.Actor{})
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) || appErr.Kind != apperror.KindStateConflict {
			t.Fatalf("expected state conflict, got %v", err)
		}
	})

	t.Run("concurrent status change surfaces as conflict", func(t *testing.T) {
		ctrl, f := newEstimateFixture(t, nil)
		defer ctrl.Finish()
		f.repo.EXPECT().GetByID(gomock.Any(), "co-1", "est-1").
			Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusSent}, nil)
		f.snapshots.EXPECT().LatestVersion(gomock.Any(), "est-1").Return(int64(1), nil)
		f.snapshots.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().UpdateStatus(gomock.Any(), "co-1", "est-1", entities.EstimateStatusSent, entities.EstimateStatusApproved).
			Return(entities.Estimate{}, interfaces.ErrStaleStatus)

		_, err := f.uc.Approve(context.Background(), "co-1", "est-1", entities.Actor{Type: "customer"})
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) || appErr.Kind != apperror.KindStateConflict {
			t.Fatalf("expected state conflict on stale status, got %v", err)
		}
	})
}

func TestEstimateUseCase_CreateChangeOrder(t *testing.T) {
	t.Run("draft parent cannot be superseded", func(t *testing.T) {
		ctrl, f := newEstimateFixture(t, nil)
		defer ctrl.Finish()
		f.repo.EXPECT().GetByID(gomock.Any(), "co-1", "est-1").
			Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusDraft}, nil)

		_, err := f.uc.CreateChangeOrder(context.Background(), "co-1", "est-1", testWorkItems(), nil, entities.Actor{})
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) || appErr.Kind != apperror.KindStateConflict {
			t.Fatalf("expected state conflict, got %v", err)
		}
	})

	t.Run("supersedes parent and links lineage", func(t *testing.T) {
		ctrl, f := newEstimateFixture(t, nil)
		defer ctrl.Finish()

		parent := entities.Estimate{
			ID: "est-1", CompanyID: "co-1", CustomerID: "cust-1", Title: "quote",
			Status: entities.EstimateStatusApproved, Version: 2,
			WorkItems: testWorkItems(),
			Pricing:   entities.PricingBreakdown{FinalPrice: 1500, Total: 1605},
		}
		f.repo.EXPECT().GetByID(gomock.Any(), "co-1", "est-1").Return(parent, nil)
		expectPricing(f)

		var childID string
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.Version != 3 || e.ParentEstimateID != "est-1" {
					t.Fatalf("lineage broken: %+v", e)
				}
				if e.Status != entities.EstimateStatusDraft {
					t.Fatalf("change order must start as draft, got %s", e.Status)
				}
				childID = e.ID
				return e, nil
			})

		f.snapshots.EXPECT().LatestVersion(gomock.Any(), gomock.Any()).Return(int64(0), nil).Times(2)
		var triggers []entities.TriggerAction
		f.snapshots.EXPECT().Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s entities.EstimateSnapshot) error {
				triggers = append(triggers, s.TriggerAction)
				if s.TriggerAction == entities.TriggerSupersede && s.Pricing.FinalPrice != 1500 {
					t.Fatalf("supersede snapshot must carry parent pricing forward: %+v", s.Pricing)
				}
				return nil
			}).Times(2)
		f.repo.EXPECT().UpdateStatus(gomock.Any(), "co-1", "est-1", entities.EstimateStatusApproved, entities.EstimateStatusSuperseded).
			Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusSuperseded}, nil)

		got, err := f.uc.CreateChangeOrder(context.Background(), "co-1", "est-1",
			[]entities.WorkItem{{Description: "extra stump", Quantity: 1, UnitPrice: 90, LaborHours: 4}}, nil, entities.Actor{Type: "user", ID: "u-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != childID {
			t.Fatalf("returned estimate is not the created child")
		}
		if len(triggers) != 2 || triggers[0] != entities.TriggerChangeOrder || triggers[1] != entities.TriggerSupersede {
			t.Fatalf("expected change_order then supersede snapshots, got %v", triggers)
		}
	})
}
