package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldops_billing/internal/domain/entities"
	mock_interfaces "fieldops_billing/internal/usecase/interfaces/mocks"
	"fieldops_billing/pkg/apperror"

	"go.uber.org/mock/gomock"
)

func newJobFixture(t *testing.T) (*gomock.Controller, *mock_interfaces.MockIJobRepository, *mock_interfaces.MockIInvoiceRepository, *mock_interfaces.MockIConflictChecker, *JobUseCase) {
	ctrl := gomock.NewController(t)
	jobs := mock_interfaces.NewMockIJobRepository(ctrl)
	invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
	conflicts := mock_interfaces.NewMockIConflictChecker(ctrl)
	audit := mock_interfaces.NewMockIAuditLogRepository(ctrl)
	audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	uc := NewJobUseCase(jobs, invoices, audit, conflicts, fixedClock{testNow})
	return ctrl, jobs, invoices, conflicts, uc
}

func pendingJob(depositRequired bool) entities.Job {
	return entities.Job{ID: "job-1", CompanyID: "co-1", Status: entities.JobStatusPending, DepositRequired: depositRequired}
}

func TestJobUseCase_CanSchedule(t *testing.T) {
	t.Run("no deposit policy schedules freely", func(t *testing.T) {
		ctrl, jobs, _, _, uc := newJobFixture(t)
		defer ctrl.Finish()
		jobs.EXPECT().GetByID(gomock.Any(), "co-1", "job-1").Return(pendingJob(false), nil)
		if err := uc.CanSchedule(context.Background(), "co-1", "job-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unpaid deposit blocks scheduling", func(t *testing.T) {
		ctrl, jobs, invoices, _, uc := newJobFixture(t)
		defer ctrl.Finish()
		jobs.EXPECT().GetByID(gomock.Any(), "co-1", "job-1").Return(pendingJob(true), nil)
		invoices.EXPECT().ListByJobID(gomock.Any(), "co-1", "job-1").Return([]entities.Invoice{
			{ID: "inv-1", Type: entities.InvoiceTypeDeposit, Status: entities.InvoiceStatusSent},
		}, nil)

		err := uc.CanSchedule(context.Background(), "co-1", "job-1")
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) || appErr.Code != "DEPOSIT_REQUIRED" {
			t.Fatalf("expected DEPOSIT_REQUIRED, got %v", err)
		}
	})

	t.Run("partially paid deposit still blocks", func(t *testing.T) {
		ctrl, jobs, invoices, _, uc := newJobFixture(t)
		defer ctrl.Finish()
		jobs.EXPECT().GetByID(gomock.Any(), "co-1", "job-1").Return(pendingJob(true), nil)
		invoices.EXPECT().ListByJobID(gomock.Any(), "co-1", "job-1").Return([]entities.Invoice{
			{ID: "inv-1", Type: entities.InvoiceTypeDeposit, Status: entities.InvoiceStatusPartiallyPaid},
		}, nil)

		err := uc.CanSchedule(context.Background(), "co-1", "job-1")
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) || appErr.Kind != apperror.KindPolicyDenied {
			t.Fatalf("expected policy denial, got %v", err)
		}
	})

	t.Run("paid deposit unlocks scheduling", func(t *testing.T) {
		ctrl, jobs, invoices, _, uc := newJobFixture(t)
		defer ctrl.Finish()
		jobs.EXPECT().GetByID(gomock.Any(), "co-1", "job-1").Return(pendingJob(true), nil)
		invoices.EXPECT().ListByJobID(gomock.Any(), "co-1", "job-1").Return([]entities.Invoice{
			{ID: "inv-1", Type: entities.InvoiceTypeFinal, Status: entities.InvoiceStatusSent},
			{ID: "inv-2", Type: entities.InvoiceTypeDeposit, Status: entities.InvoiceStatusPaid},
		}, nil)

		if err := uc.CanSchedule(context.Background(), "co-1", "job-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestJobUseCase_CanClose(t *testing.T) {
	t.Run("unpaid invoices block closure with detail", func(t *testing.T) {
		ctrl, jobs, invoices, _, uc := newJobFixture(t)
		defer ctrl.Finish()
		jobs.EXPECT().GetByID(gomock.Any(), "co-1", "job-1").Return(pendingJob(false), nil)
		invoices.EXPECT().ListByJobID(gomock.Any(), "co-1", "job-1").Return([]entities.Invoice{
			{ID: "inv-1", Status: entities.InvoiceStatusPartiallyPaid, AmountDue: 300},
			{ID: "inv-2", Status: entities.InvoiceStatusSent, AmountDue: 150.50},
			{ID: "inv-3", Status: entities.InvoiceStatusVoided, AmountDue: 999},
			{ID: "inv-4", Status: entities.InvoiceStatusPaid, AmountDue: 0},
		}, nil)

		err := uc.CanClose(context.Background(), "co-1", "job-1")
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) || appErr.Code != "UNPAID_INVOICES" {
			t.Fatalf("expected UNPAID_INVOICES, got %v", err)
		}
		blocking := appErr.Details["blocking_invoices"].([]string)
		if len(blocking) != 2 {
			t.Fatalf("voided and paid invoices must not block: %v", blocking)
		}
		if appErr.Details["outstanding_balance"] != 450.50 {
			t.Fatalf("expected outstanding 450.50, got %v", appErr.Details["outstanding_balance"])
		}
	})

	t.Run("written-off balance does not block", func(t *testing.T) {
		ctrl, jobs, invoices, _, uc := newJobFixture(t)
		defer ctrl.Finish()
		jobs.EXPECT().GetByID(gomock.Any(), "co-1", "job-1").Return(pendingJob(false), nil)
		invoices.EXPECT().ListByJobID(gomock.Any(), "co-1", "job-1").Return([]entities.Invoice{
			{ID: "inv-1", Status: entities.InvoiceStatusWrittenOff, AmountDue: 500},
		}, nil)

		if err := uc.CanClose(context.Background(), "co-1", "job-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestJobUseCase_AssignCrew(t *testing.T) {
	start := testNow.Add(24 * time.Hour)
	end := start.Add(8 * time.Hour)

	t.Run("runs the deposit gate itself", func(t *testing.T) {
		ctrl, jobs, invoices, _, uc := newJobFixture(t)
		defer ctrl.Finish()
		jobs.EXPECT().GetByID(gomock.Any(), "co-1", "job-1").Return(pendingJob(true), nil)
		invoices.EXPECT().ListByJobID(gomock.Any(), "co-1", "job-1").Return(nil, nil)

		_, err := uc.AssignCrew(context.Background(), "co-1", "job-1", "crew-1", start, end, entities.Actor{Type: "user", ID: "u-1"})
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) || appErr.Code != "DEPOSIT_REQUIRED" {
			t.Fatalf("expected DEPOSIT_REQUIRED, got %v", err)
		}
	})

	t.Run("calendar conflict rejects the assignment", func(t *testing.T) {
		ctrl, jobs, _, conflicts, uc := newJobFixture(t)
		defer ctrl.Finish()
		jobs.EXPECT().GetByID(gomock.Any(), "co-1", "job-1").Return(pendingJob(false), nil)
		conflicts.EXPECT().HasConflict(gomock.Any(), "co-1", "crew-1", start, end).Return(true, nil)

		_, err := uc.AssignCrew(context.Background(), "co-1", "job-1", "crew-1", start, end, entities.Actor{})
		if !errors.Is(err, ErrResourceConflict) {
			t.Fatalf("expected ErrResourceConflict, got %v", err)
		}
	})

	t.Run("inverted window rejected", func(t *testing.T) {
		ctrl, _, _, _, uc := newJobFixture(t)
		defer ctrl.Finish()
		_, err := uc.AssignCrew(context.Background(), "co-1", "job-1", "crew-1", end, start, entities.Actor{})
		if !errors.Is(err, ErrInvalidTimeWindow) {
			t.Fatalf("expected ErrInvalidTimeWindow, got %v", err)
		}
	})

	t.Run("clean window creates the assignment", func(t *testing.T) {
		ctrl, jobs, _, conflicts, uc := newJobFixture(t)
		defer ctrl.Finish()
		jobs.EXPECT().GetByID(gomock.Any(), "co-1", "job-1").Return(pendingJob(false), nil)
		conflicts.EXPECT().HasConflict(gomock.Any(), "co-1", "crew-1", start, end).Return(false, nil)
		jobs.EXPECT().CreateCrewAssignment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a entities.CrewAssignment) (entities.CrewAssignment, error) {
				if a.CrewID != "crew-1" || a.JobID != "job-1" || a.ID == "" {
					t.Fatalf("unexpected assignment %+v", a)
				}
				return a, nil
			})

		if _, err := uc.AssignCrew(context.Background(), "co-1", "job-1", "crew-1", start, end, entities.Actor{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestJobUseCase_ReserveEquipment(t *testing.T) {
	start := testNow.Add(24 * time.Hour)
	end := start.Add(8 * time.Hour)

	t.Run("reservation re-runs the gate independently", func(t *testing.T) {
		ctrl, jobs, invoices, _, uc := newJobFixture(t)
		defer ctrl.Finish()
		jobs.EXPECT().GetByID(gomock.Any(), "co-1", "job-1").Return(pendingJob(true), nil)
		invoices.EXPECT().ListByJobID(gomock.Any(), "co-1", "job-1").Return([]entities.Invoice{
			{ID: "inv-1", Type: entities.InvoiceTypeDeposit, Status: entities.InvoiceStatusViewed},
		}, nil)

		_, err := uc.ReserveEquipment(context.Background(), "co-1", "job-1", "eq-1", start, end, entities.Actor{})
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) || appErr.Code != "DEPOSIT_REQUIRED" {
			t.Fatalf("expected DEPOSIT_REQUIRED, got %v", err)
		}
	})

	t.Run("clean window creates the reservation", func(t *testing.T) {
		ctrl, jobs, _, conflicts, uc := newJobFixture(t)
		defer ctrl.Finish()
		jobs.EXPECT().GetByID(gomock.Any(), "co-1", "job-1").Return(pendingJob(false), nil)
		conflicts.EXPECT().HasConflict(gomock.Any(), "co-1", "eq-1", start, end).Return(false, nil)
		jobs.EXPECT().CreateEquipmentReservation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r entities.EquipmentReservation) (entities.EquipmentReservation, error) {
				return r, nil
			})

		if _, err := uc.ReserveEquipment(context.Background(), "co-1", "job-1", "eq-1", start, end, entities.Actor{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestJobUseCase_ScheduleAndClose(t *testing.T) {
	t.Run("schedule denial is audited and returned", func(t *testing.T) {
		ctrl, jobs, invoices, _, uc := newJobFixture(t)
		defer ctrl.Finish()
		jobs.EXPECT().GetByID(gomock.Any(), "co-1", "job-1").Return(pendingJob(true), nil).Times(2)
		invoices.EXPECT().ListByJobID(gomock.Any(), "co-1", "job-1").Return(nil, nil)

		_, err := uc.Schedule(context.Background(), "co-1", "job-1", entities.Actor{Type: "user", ID: "u-1"})
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) || appErr.Kind != apperror.KindPolicyDenied {
			t.Fatalf("expected policy denial, got %v", err)
		}
	})

	t.Run("close succeeds when nothing is outstanding", func(t *testing.T) {
		ctrl, jobs, invoices, _, uc := newJobFixture(t)
		defer ctrl.Finish()
		j := pendingJob(false)
		j.Status = entities.JobStatusCompleted
		jobs.EXPECT().GetByID(gomock.Any(), "co-1", "job-1").Return(j, nil).Times(2)
		invoices.EXPECT().ListByJobID(gomock.Any(), "co-1", "job-1").Return([]entities.Invoice{
			{ID: "inv-1", Status: entities.InvoiceStatusPaid, AmountDue: 0},
		}, nil)
		jobs.EXPECT().UpdateStatus(gomock.Any(), "co-1", "job-1", entities.JobStatusCompleted, entities.JobStatusClosed).
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusClosed}, nil)

		got, err := uc.Close(context.Background(), "co-1", "job-1", entities.Actor{Type: "user", ID: "u-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.JobStatusClosed {
			t.Fatalf("expected closed, got %s", got.Status)
		}
	})
}
