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

func newInvoiceFixture(t *testing.T) (*gomock.Controller, *mock_interfaces.MockIInvoiceRepository, *mock_interfaces.MockIEstimateRepository, *InvoiceUseCase) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
	estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
	audit := mock_interfaces.NewMockIAuditLogRepository(ctrl)
	audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return ctrl, repo, estimates, NewInvoiceUseCase(repo, estimates, audit, fixedClock{testNow})
}

func TestInvoiceUseCase_CreateFromEstimate(t *testing.T) {
	approved := entities.Estimate{
		ID: "est-1", CompanyID: "co-1", CustomerID: "cust-1",
		Status:  entities.EstimateStatusApproved,
		Pricing: entities.PricingBreakdown{Total: 2000},
	}

	t.Run("estimate must be approved", func(t *testing.T) {
		ctrl, _, estimates, uc := newInvoiceFixture(t)
		defer ctrl.Finish()
		e := approved
		e.Status = entities.EstimateStatusSent
		estimates.EXPECT().GetByID(gomock.Any(), "co-1", "est-1").Return(e, nil)

		_, err := uc.CreateFromEstimate(context.Background(), "co-1", "est-1", "job-1", entities.InvoiceTypeFinal, 0, entities.Actor{})
		if !errors.Is(err, ErrEstimateNotApproved) {
			t.Fatalf("expected ErrEstimateNotApproved, got %v", err)
		}
	})

	t.Run("final invoice bills the full total", func(t *testing.T) {
		ctrl, repo, estimates, uc := newInvoiceFixture(t)
		defer ctrl.Finish()
		estimates.EXPECT().GetByID(gomock.Any(), "co-1", "est-1").Return(approved, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if inv.Total != 2000 || inv.AmountDue != 2000 || inv.AmountPaid != 0 {
					t.Fatalf("unexpected amounts: %+v", inv)
				}
				if inv.RowVersion != 1 || inv.Status != entities.InvoiceStatusDraft {
					t.Fatalf("new invoice must start draft at version 1: %+v", inv)
				}
				return inv, nil
			})

		if _, err := uc.CreateFromEstimate(context.Background(), "co-1", "est-1", "job-1", entities.InvoiceTypeFinal, 0, entities.Actor{Type: "user", ID: "u-1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("deposit invoice bills the deposit percent", func(t *testing.T) {
		ctrl, repo, estimates, uc := newInvoiceFixture(t)
		defer ctrl.Finish()
		estimates.EXPECT().GetByID(gomock.Any(), "co-1", "est-1").Return(approved, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if inv.Total != 600 {
					t.Fatalf("expected 30%% deposit of 2000 = 600, got %.2f", inv.Total)
				}
				return inv, nil
			})

		if _, err := uc.CreateFromEstimate(context.Background(), "co-1", "est-1", "job-1", entities.InvoiceTypeDeposit, 0.30, entities.Actor{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("out-of-range deposit percent falls back to default", func(t *testing.T) {
		ctrl, repo, estimates, uc := newInvoiceFixture(t)
		defer ctrl.Finish()
		estimates.EXPECT().GetByID(gomock.Any(), "co-1", "est-1").Return(approved, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if inv.Total != 500 {
					t.Fatalf("expected default 25%% deposit = 500, got %.2f", inv.Total)
				}
				return inv, nil
			})

		if _, err := uc.CreateFromEstimate(context.Background(), "co-1", "est-1", "", entities.InvoiceTypeDeposit, 1.5, entities.Actor{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestInvoiceUseCase_Transition(t *testing.T) {
	t.Run("paid is unreachable without the ledger", func(t *testing.T) {
		ctrl, repo, _, uc := newInvoiceFixture(t)
		defer ctrl.Finish()
		repo.EXPECT().GetByID(gomock.Any(), "co-1", "inv-1").
			Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusSent}, nil)

		_, err := uc.Transition(context.Background(), "co-1", "inv-1", entities.InvoiceStatusPaid, "", entities.Actor{Type: "user", ID: "u-1"})
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) || appErr.Kind != apperror.KindStateConflict {
			t.Fatalf("expected state conflict, got %v", err)
		}
		for _, allowed := range appErr.Details["allowed_transitions"].([]string) {
			if allowed == string(entities.InvoiceStatusPaid) {
				t.Fatalf("paid must not be advertised as a direct transition")
			}
		}
	})

	t.Run("write-off needs a substantive reason", func(t *testing.T) {
		ctrl, repo, _, uc := newInvoiceFixture(t)
		defer ctrl.Finish()
		repo.EXPECT().GetByID(gomock.Any(), "co-1", "inv-1").
			Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusOverdue}, nil)

		_, err := uc.Transition(context.Background(), "co-1", "inv-1", entities.InvoiceStatusWrittenOff, "bad debt", entities.Actor{Type: "user", ID: "u-1"})
		if !errors.Is(err, ErrWriteOffReasonTooShort) {
			t.Fatalf("expected ErrWriteOffReasonTooShort, got %v", err)
		}
	})

	t.Run("write-off needs a recorded actor", func(t *testing.T) {
		ctrl, repo, _, uc := newInvoiceFixture(t)
		defer ctrl.Finish()
		repo.EXPECT().GetByID(gomock.Any(), "co-1", "inv-1").
			Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusOverdue}, nil)

		_, err := uc.Transition(context.Background(), "co-1", "inv-1", entities.InvoiceStatusWrittenOff, "customer unreachable since March", entities.Actor{})
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) || appErr.Code != "ACTOR_REQUIRED" {
			t.Fatalf("expected ACTOR_REQUIRED, got %v", err)
		}
	})

	t.Run("write-off with reason and actor succeeds", func(t *testing.T) {
		ctrl, repo, _, uc := newInvoiceFixture(t)
		defer ctrl.Finish()
		repo.EXPECT().GetByID(gomock.Any(), "co-1", "inv-1").
			Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusOverdue}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "co-1", "inv-1", entities.InvoiceStatusOverdue, entities.InvoiceStatusWrittenOff, "customer unreachable since March").
			Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusWrittenOff, WriteOffReason: "customer unreachable since March"}, nil)

		got, err := uc.Transition(context.Background(), "co-1", "inv-1", entities.InvoiceStatusWrittenOff, "customer unreachable since March", entities.Actor{Type: "user", ID: "u-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.InvoiceStatusWrittenOff {
			t.Fatalf("expected written_off, got %s", got.Status)
		}
	})

	t.Run("terminal invoice admits nothing", func(t *testing.T) {
		ctrl, repo, _, uc := newInvoiceFixture(t)
		defer ctrl.Finish()
		repo.EXPECT().GetByID(gomock.Any(), "co-1", "inv-1").
			Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusVoided}, nil)

		_, err := uc.Transition(context.Background(), "co-1", "inv-1", entities.InvoiceStatusSent, "", entities.Actor{})
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) || appErr.Kind != apperror.KindStateConflict {
			t.Fatalf("expected state conflict, got %v", err)
		}
	})
}
