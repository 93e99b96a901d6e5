package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fieldops_billing/internal/domain/entities"
	"fieldops_billing/internal/domain/pricing"
	"fieldops_billing/internal/usecase/interfaces"
	"fieldops_billing/pkg/apperror"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound  = apperror.NotFound("JOB_NOT_FOUND", "Job not found")
	ErrInvalidJobID = apperror.Validation("JOB_ID_REQUIRED", "Job id is required")
	ErrResourceConflict = apperror.New(apperror.KindStateConflict, "RESOURCE_CONFLICT",
		"Resource already has a booking in that window", http.StatusConflict)
	ErrInvalidTimeWindow = apperror.Validation("INVALID_TIME_WINDOW", "End must be after start")
)

// IJobUseCase enforces the deposit-gating policy on every path that can cause
// scheduling: the status PATCH, crew-assignment creation and
// equipment-reservation creation each re-run the gate independently.
type IJobUseCase interface {
	CanSchedule(ctx context.Context, companyID, jobID string) error
	CanClose(ctx context.Context, companyID, jobID string) error
	Schedule(ctx context.Context, companyID, jobID string, actor entities.Actor) (entities.Job, error)
	Close(ctx context.Context, companyID, jobID string, actor entities.Actor) (entities.Job, error)
	AssignCrew(ctx context.Context, companyID, jobID, crewID string, start, end time.Time, actor entities.Actor) (entities.CrewAssignment, error)
	ReserveEquipment(ctx context.Context, companyID, jobID, equipmentID string, start, end time.Time, actor entities.Actor) (entities.EquipmentReservation, error)
}

type JobUseCase struct {
	jobs      interfaces.IJobRepository
	invoices  interfaces.IInvoiceRepository
	audit     interfaces.IAuditLogRepository
	conflicts interfaces.IConflictChecker
	clock     interfaces.Clock
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(jobs interfaces.IJobRepository, invoices interfaces.IInvoiceRepository, audit interfaces.IAuditLogRepository, conflicts interfaces.IConflictChecker, clock interfaces.Clock) *JobUseCase {
	return &JobUseCase{jobs: jobs, invoices: invoices, audit: audit, conflicts: conflicts, clock: clock}
}

func (u *JobUseCase) getJob(ctx context.Context, companyID, jobID string) (entities.Job, error) {
	companyID = strings.TrimSpace(companyID)
	jobID = strings.TrimSpace(jobID)
	if companyID == "" {
		return entities.Job{}, ErrInvalidCompanyID
	}
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	j, err := u.jobs.GetByID(ctx, companyID, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

// CanSchedule allows scheduling when the tenant requires no deposit, or a
// deposit-type invoice for the job is currently paid.
func (u *JobUseCase) CanSchedule(ctx context.Context, companyID, jobID string) error {
	j, err := u.getJob(ctx, companyID, jobID)
	if err != nil {
		return err
	}
	if !j.DepositRequired {
		return nil
	}
	invs, err := u.invoices.ListByJobID(ctx, j.CompanyID, j.ID)
	if err != nil {
		return err
	}
	for _, inv := range invs {
		if inv.Type == entities.InvoiceTypeDeposit && inv.Status == entities.InvoiceStatusPaid {
			return nil
		}
	}
	return apperror.PolicyDenied("DEPOSIT_REQUIRED",
		"job cannot be scheduled until its deposit invoice is paid")
}

// CanClose blocks closure while any invoice is in a non-terminal unpaid
// state; the denial enumerates the blockers and the outstanding total.
func (u *JobUseCase) CanClose(ctx context.Context, companyID, jobID string) error {
	j, err := u.getJob(ctx, companyID, jobID)
	if err != nil {
		return err
	}
	invs, err := u.invoices.ListByJobID(ctx, j.CompanyID, j.ID)
	if err != nil {
		return err
	}
	var blocking []string
	var outstanding float64
	for _, inv := range invs {
		if inv.Status.Terminal() || inv.Status == entities.InvoiceStatusPaid {
			continue
		}
		if inv.AmountDue > 0 {
			blocking = append(blocking, inv.ID)
			outstanding += inv.AmountDue
		}
	}
	if len(blocking) > 0 {
		e := apperror.PolicyDenied("UNPAID_INVOICES",
			fmt.Sprintf("job has %d unpaid invoice(s) outstanding", len(blocking)))
		e.WithDetail("blocking_invoices", blocking)
		e.WithDetail("outstanding_balance", pricing.Round2(outstanding))
		return e
	}
	return nil
}

func (u *JobUseCase) Schedule(ctx context.Context, companyID, jobID string, actor entities.Actor) (entities.Job, error) {
	j, err := u.getJob(ctx, companyID, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if err := u.CanSchedule(ctx, companyID, jobID); err != nil {
		auditBestEffort(ctx, u.audit, auditEntry(companyID, "job", jobID, "schedule",
			string(j.Status), string(entities.JobStatusScheduled), err.Error(), actor, true, u.clock.Now()))
		return entities.Job{}, err
	}
	updated, err := u.jobs.UpdateStatus(ctx, companyID, jobID, j.Status, entities.JobStatusScheduled)
	if err != nil {
		if errors.Is(err, interfaces.ErrStaleStatus) {
			return entities.Job{}, apperror.StateConflict("JOB_TRANSITION_DENIED",
				"job status changed concurrently", string(j.Status), nil)
		}
		return entities.Job{}, err
	}
	auditBestEffort(ctx, u.audit, auditEntry(companyID, "job", jobID, "schedule",
		string(j.Status), string(entities.JobStatusScheduled), "", actor, false, u.clock.Now()))
	return updated, nil
}

func (u *JobUseCase) Close(ctx context.Context, companyID, jobID string, actor entities.Actor) (entities.Job, error) {
	j, err := u.getJob(ctx, companyID, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if err := u.CanClose(ctx, companyID, jobID); err != nil {
		auditBestEffort(ctx, u.audit, auditEntry(companyID, "job", jobID, "close",
			string(j.Status), string(entities.JobStatusClosed), err.Error(), actor, true, u.clock.Now()))
		return entities.Job{}, err
	}
	updated, err := u.jobs.UpdateStatus(ctx, companyID, jobID, j.Status, entities.JobStatusClosed)
	if err != nil {
		if errors.Is(err, interfaces.ErrStaleStatus) {
			return entities.Job{}, apperror.StateConflict("JOB_TRANSITION_DENIED",
				"job status changed concurrently", string(j.Status), nil)
		}
		return entities.Job{}, err
	}
	auditBestEffort(ctx, u.audit, auditEntry(companyID, "job", jobID, "close",
		string(j.Status), string(entities.JobStatusClosed), "", actor, false, u.clock.Now()))
	return updated, nil
}

// AssignCrew re-runs the deposit gate itself: assignment creation is a
// scheduling path of its own, not a follower of the status PATCH.
func (u *JobUseCase) AssignCrew(ctx context.Context, companyID, jobID, crewID string, start, end time.Time, actor entities.Actor) (entities.CrewAssignment, error) {
	if crewID = strings.TrimSpace(crewID); crewID == "" {
		return entities.CrewAssignment{}, apperror.Validation("INVALID_CREW_ID", "crew id is required")
	}
	if !end.After(start) {
		return entities.CrewAssignment{}, ErrInvalidTimeWindow
	}
	if err := u.CanSchedule(ctx, companyID, jobID); err != nil {
		auditBestEffort(ctx, u.audit, auditEntry(companyID, "job", jobID, "assign_crew",
			"", "", err.Error(), actor, true, u.clock.Now()))
		return entities.CrewAssignment{}, err
	}
	if u.conflicts != nil {
		conflict, err := u.conflicts.HasConflict(ctx, companyID, crewID, start, end)
		if err != nil {
			return entities.CrewAssignment{}, err
		}
		if conflict {
			return entities.CrewAssignment{}, ErrResourceConflict
		}
	}
	a := entities.CrewAssignment{
		ID:        uuid.NewString(),
		CompanyID: strings.TrimSpace(companyID),
		JobID:     strings.TrimSpace(jobID),
		CrewID:    crewID,
		StartsAt:  start,
		EndsAt:    end,
		CreatedAt: u.clock.Now(),
	}
	return u.jobs.CreateCrewAssignment(ctx, a)
}

// ReserveEquipment mirrors AssignCrew for the equipment path.
func (u *JobUseCase) ReserveEquipment(ctx context.Context, companyID, jobID, equipmentID string, start, end time.Time, actor entities.Actor) (entities.EquipmentReservation, error) {
	if equipmentID = strings.TrimSpace(equipmentID); equipmentID == "" {
		return entities.EquipmentReservation{}, apperror.Validation("INVALID_EQUIPMENT_ID", "equipment id is required")
	}
	if !end.After(start) {
		return entities.EquipmentReservation{}, ErrInvalidTimeWindow
	}
	if err := u.CanSchedule(ctx, companyID, jobID); err != nil {
		auditBestEffort(ctx, u.audit, auditEntry(companyID, "job", jobID, "reserve_equipment",
			"", "", err.Error(), actor, true, u.clock.Now()))
		return entities.EquipmentReservation{}, err
	}
	if u.conflicts != nil {
		conflict, err := u.conflicts.HasConflict(ctx, companyID, equipmentID, start, end)
		if err != nil {
			return entities.EquipmentReservation{}, err
		}
		if conflict {
			return entities.EquipmentReservation{}, ErrResourceConflict
		}
	}
	r := entities.EquipmentReservation{
		ID:          uuid.NewString(),
		CompanyID:   strings.TrimSpace(companyID),
		JobID:       strings.TrimSpace(jobID),
		EquipmentID: equipmentID,
		StartsAt:    start,
		EndsAt:      end,
		CreatedAt:   u.clock.Now(),
	}
	return u.jobs.CreateEquipmentReservation(ctx, r)
}
