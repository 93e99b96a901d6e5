package usecase

import (
	"context"
	"errors"
	"testing"

	"fieldops_billing/internal/domain/entities"
	mock_interfaces "fieldops_billing/internal/usecase/interfaces/mocks"
	"fieldops_billing/pkg/apperror"

	"go.uber.org/mock/gomock"
)

type contractFixture struct {
	repo      *mock_interfaces.MockIContractRepository
	estimates *mock_interfaces.MockIEstimateRepository
	snapshots *mock_interfaces.MockIEstimateSnapshotRepository
	notifier  *mock_interfaces.MockINotifier
	uc        *ContractUseCase
}

func newContractFixture(t *testing.T, issuer TokenIssuer) (*gomock.Controller, *contractFixture) {
	ctrl := gomock.NewController(t)
	f := &contractFixture{
		repo:      mock_interfaces.NewMockIContractRepository(ctrl),
		estimates: mock_interfaces.NewMockIEstimateRepository(ctrl),
		snapshots: mock_interfaces.NewMockIEstimateSnapshotRepository(ctrl),
		notifier:  mock_interfaces.NewMockINotifier(ctrl),
	}
	audit := mock_interfaces.NewMockIAuditLogRepository(ctrl)
	audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.uc = NewContractUseCase(f.repo, f.estimates, f.snapshots, audit, issuer, f.notifier, fixedClock{testNow}, "https://pay.example.com")
	return ctrl, f
}

func TestContractUseCase_GenerateFromEstimate(t *testing.T) {
	t.Run("estimate must be approved", func(t *testing.T) {
		ctrl, f := newContractFixture(t, nil)
		defer ctrl.Finish()
		f.estimates.EXPECT().GetByID(gomock.Any(), "co-1", "est-1").
			Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusSent}, nil)

		_, err := f.uc.GenerateFromEstimate(context.Background(), "co-1", "est-1", "terms", "footer", entities.Actor{})
		if !errors.Is(err, ErrEstimateNotApproved) {
			t.Fatalf("expected ErrEstimateNotApproved, got %v", err)
		}
	})

	t.Run("pins the estimate snapshot version", func(t *testing.T) {
		ctrl, f := newContractFixture(t, nil)
		defer ctrl.Finish()
		f.estimates.EXPECT().GetByID(gomock.Any(), "co-1", "est-1").Return(entities.Estimate{
			ID: "est-1", CompanyID: "co-1", CustomerID: "cust-1", Title: "oak removal",
			Status:    entities.EstimateStatusApproved,
			WorkItems: testWorkItems(),
			Pricing:   entities.PricingBreakdown{Total: 1605},
		}, nil)
		f.snapshots.EXPECT().LatestVersion(gomock.Any(), "est-1").Return(int64(4), nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c entities.Contract) (entities.Contract, error) {
				if c.EstimateSnapshotVersion != 4 {
					t.Fatalf("expected snapshot version 4 pinned, got %d", c.EstimateSnapshotVersion)
				}
				if c.Status != entities.ContractStatusDraft || c.WorkItemsContent == "" {
					t.Fatalf("unexpected contract %+v", c)
				}
				return c, nil
			})

		if _, err := f.uc.GenerateFromEstimate(context.Background(), "co-1", "est-1", "net 30", "thanks", entities.Actor{Type: "user", ID: "u-1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestContractUseCase_UpdateDraft(t *testing.T) {
	t.Run("locked contract is immutable", func(t *testing.T) {
		ctrl, f := newContractFixture(t, nil)
		defer ctrl.Finish()
		locked := testNow
		f.repo.EXPECT().GetByID(gomock.Any(), "co-1", "ct-1").
			Return(entities.Contract{ID: "ct-1", Status: entities.ContractStatusSigned, LockedAt: &locked}, nil)

		terms := "changed"
		_, err := f.uc.UpdateDraft(context.Background(), "co-1", "ct-1", nil, nil, &terms, nil, entities.Actor{})
		if !errors.Is(err, ErrContractLocked) {
			t.Fatalf("expected ErrContractLocked, got %v", err)
		}
	})

	t.Run("sent contract is not editable", func(t *testing.T) {
		ctrl, f := newContractFixture(t, nil)
		defer ctrl.Finish()
		f.repo.EXPECT().GetByID(gomock.Any(), "co-1", "ct-1").
			Return(entities.Contract{ID: "ct-1", Status: entities.ContractStatusSent}, nil)

		terms := "changed"
		_, err := f.uc.UpdateDraft(context.Background(), "co-1", "ct-1", nil, nil, &terms, nil, entities.Actor{})
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) || appErr.Kind != apperror.KindStateConflict {
			t.Fatalf("expected state conflict, got %v", err)
		}
	})
}

func TestContractUseCase_Sign(t *testing.T) {
	sent := entities.Contract{
		ID: "ct-1", CompanyID: "co-1", CustomerID: "cust-1", EstimateID: "est-1",
		Status:           entities.ContractStatusSent,
		HeaderContent:    "Service agreement: oak removal",
		WorkItemsContent: "tree removal x1.00 @ 150.00",
		TermsContent:     "net 30",
	}

	t.Run("signer name required", func(t *testing.T) {
		ctrl, f := newContractFixture(t, nil)
		defer ctrl.Finish()
		_, err := f.uc.Sign(context.Background(), "co-1", "ct-1", "  ", entities.Actor{})
		if !errors.Is(err, ErrSignerNameRequired) {
			t.Fatalf("expected ErrSignerNameRequired, got %v", err)
		}
	})

	t.Run("draft contract cannot be signed", func(t *testing.T) {
		ctrl, f := newContractFixture(t, nil)
		defer ctrl.Finish()
		c := sent
		c.Status = entities.ContractStatusDraft
		f.repo.EXPECT().GetByID(gomock.Any(), "co-1", "ct-1").Return(c, nil)

		_, err := f.uc.Sign(context.Background(), "co-1", "ct-1", "Pat Doe", entities.Actor{Type: "customer"})
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) || appErr.Kind != apperror.KindStateConflict {
			t.Fatalf("expected state conflict, got %v", err)
		}
	})

	t.Run("snapshot is written before the contract row", func(t *testing.T) {
		ctrl, f := newContractFixture(t, nil)
		defer ctrl.Finish()
		f.repo.EXPECT().GetByID(gomock.Any(), "co-1", "ct-1").Return(sent, nil)
		gomock.InOrder(
			f.repo.EXPECT().CreateSignedSnapshot(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, s entities.SignedContractSnapshot) error {
					if s.SignedByName != "Pat Doe" || s.TermsContent != "net 30" {
						t.Fatalf("snapshot must freeze the signed content: %+v", s)
					}
					return nil
				}),
			f.repo.EXPECT().MarkSigned(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, c entities.Contract) (entities.Contract, error) {
					if c.Status != entities.ContractStatusSigned || c.LockedAt == nil || c.SignedAt == nil {
						t.Fatalf("contract row must be signed and locked: %+v", c)
					}
					return c, nil
				}),
		)

		got, err := f.uc.Sign(context.Background(), "co-1", "ct-1", "Pat Doe", entities.Actor{Type: "customer", IPAddress: "203.0.113.9"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.SignedByName != "Pat Doe" {
			t.Fatalf("expected signer recorded, got %q", got.SignedByName)
		}
	})

	t.Run("row update failure after snapshot surfaces the error", func(t *testing.T) {
		ctrl, f := newContractFixture(t, nil)
		defer ctrl.Finish()
		f.repo.EXPECT().GetByID(gomock.Any(), "co-1", "ct-1").Return(sent, nil)
		f.repo.EXPECT().CreateSignedSnapshot(gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().MarkSigned(gomock.Any(), gomock.Any()).Return(entities.Contract{}, errors.New("dynamo down"))

		_, err := f.uc.Sign(context.Background(), "co-1", "ct-1", "Pat Doe", entities.Actor{Type: "customer"})
		if err == nil || err.Error() != "dynamo down" {
			t.Fatalf("expected the update failure surfaced, got %v", err)
		}
	})
}

func TestContractUseCase_Send(t *testing.T) {
	t.Run("sends a signing link", func(t *testing.T) {
		ctrl, f := newContractFixture(t, stubIssuer{raw: "signtoken"})
		defer ctrl.Finish()
		f.repo.EXPECT().GetByID(gomock.Any(), "co-1", "ct-1").
			Return(entities.Contract{ID: "ct-1", CompanyID: "co-1", CustomerID: "cust-1", Status: entities.ContractStatusDraft}, nil)
		f.repo.EXPECT().UpdateStatus(gomock.Any(), "co-1", "ct-1", entities.ContractStatusDraft, entities.ContractStatusSent).
			Return(entities.Contract{ID: "ct-1", CompanyID: "co-1", CustomerID: "cust-1", Status: entities.ContractStatusSent}, nil)
		f.notifier.EXPECT().SendDocumentLink(gomock.Any(), gomock.Any()).Return(nil)

		got, err := f.uc.Send(context.Background(), "co-1", "ct-1", entities.Actor{Type: "user", ID: "u-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ContractStatusSent {
			t.Fatalf("expected sent, got %s", got.Status)
		}
	})

	t.Run("voided contract cannot be re-sent", func(t *testing.T) {
		ctrl, f := newContractFixture(t, nil)
		defer ctrl.Finish()
		f.repo.EXPECT().GetByID(gomock.Any(), "co-1", "ct-1").
			Return(entities.Contract{ID: "ct-1", Status: entities.ContractStatusVoided}, nil)

		_, err := f.uc.Send(context.Background(), "co-1", "ct-1", entities.Actor{})
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) || appErr.Kind != apperror.KindStateConflict {
			t.Fatalf("expected state conflict, got %v", err)
		}
	})
}
