package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"fieldops_billing/internal/domain/entities"
	"fieldops_billing/internal/domain/lifecycle"
	"fieldops_billing/internal/domain/pricing"
	"fieldops_billing/internal/usecase/interfaces"
	"fieldops_billing/pkg/apperror"

	"github.com/google/uuid"
)

var (
	ErrInvoiceNotFound  = apperror.NotFound("INVOICE_NOT_FOUND", "Invoice not found")
	ErrInvalidInvoiceID = apperror.Validation("INVOICE_ID_REQUIRED", "Invoice id is required")
	ErrEstimateNotApproved = apperror.New(apperror.KindStateConflict, "ESTIMATE_NOT_APPROVED",
		"Invoices can only be issued from an approved estimate", http.StatusConflict)
	ErrWriteOffReasonTooShort = apperror.Validation("WRITE_OFF_REASON_TOO_SHORT",
		"Write-off requires a reason of at least 10 characters")
)

const minWriteOffReasonLen = 10

// IInvoiceUseCase exposes invoice issuance and the non-payment transitions.
// paid/partially_paid/refunded are unreachable here; they belong to the
// payment ledger.
type IInvoiceUseCase interface {
	CreateFromEstimate(ctx context.Context, companyID, estimateID, jobID string, typ entities.InvoiceType, depositPercent float64, actor entities.Actor) (entities.Invoice, error)
	GetByID(ctx context.Context, companyID, id string) (entities.Invoice, error)
	Transition(ctx context.Context, companyID, id string, to entities.InvoiceStatus, reason string, actor entities.Actor) (entities.Invoice, error)
}

type InvoiceUseCase struct {
	repo      interfaces.IInvoiceRepository
	estimates interfaces.IEstimateRepository
	audit     interfaces.IAuditLogRepository
	clock     interfaces.Clock
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository, estimates interfaces.IEstimateRepository, audit interfaces.IAuditLogRepository, clock interfaces.Clock) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, estimates: estimates, audit: audit, clock: clock}
}

// CreateFromEstimate issues an invoice off an approved estimate. Deposit
// invoices bill depositPercent of the estimate total; final invoices bill the
// whole total.
func (u *InvoiceUseCase) CreateFromEstimate(ctx context.Context, companyID, estimateID, jobID string, typ entities.InvoiceType, depositPercent float64, actor entities.Actor) (entities.Invoice, error) {
	companyID = strings.TrimSpace(companyID)
	estimateID = strings.TrimSpace(estimateID)
	if companyID == "" {
		return entities.Invoice{}, ErrInvalidCompanyID
	}
	if estimateID == "" {
		return entities.Invoice{}, ErrInvalidEstimateID
	}

	e, err := u.estimates.GetByID(ctx, companyID, estimateID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if e.ID == "" {
		return entities.Invoice{}, ErrEstimateNotFound
	}
	if e.Status != entities.EstimateStatusApproved {
		return entities.Invoice{}, ErrEstimateNotApproved
	}

	total := e.Pricing.Total
	if typ == entities.InvoiceTypeDeposit {
		if depositPercent <= 0 || depositPercent > 1 {
			depositPercent = 0.25
		}
		total = pricing.Round2(total * depositPercent)
	}

	now := u.clock.Now()
	inv := entities.Invoice{
		ID:         uuid.NewString(),
		CompanyID:  companyID,
		CustomerID: e.CustomerID,
		JobID:      strings.TrimSpace(jobID),
		EstimateID: e.ID,
		Type:       typ,
		Status:     entities.InvoiceStatusDraft,
		Total:      total,
		AmountPaid: 0,
		AmountDue:  total,
		RowVersion: 1,
		DueAt:      now.AddDate(0, 0, 30),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	created, err := u.repo.Create(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	auditBestEffort(ctx, u.audit, auditEntry(companyID, "invoice", created.ID, "create",
		"", string(entities.InvoiceStatusDraft), "", actor, false, now))
	return created, nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, companyID, id string) (entities.Invoice, error) {
	companyID = strings.TrimSpace(companyID)
	id = strings.TrimSpace(id)
	if companyID == "" {
		return entities.Invoice{}, ErrInvalidCompanyID
	}
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	inv, err := u.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

// Transition is the direct status-change API. The guard refuses payment-gated
// targets here regardless of the caller. written_off additionally requires a
// recorded actor and a reason of minimum length.
func (u *InvoiceUseCase) Transition(ctx context.Context, companyID, id string, to entities.InvoiceStatus, reason string, actor entities.Actor) (entities.Invoice, error) {
	inv, err := u.GetByID(ctx, companyID, id)
	if err != nil {
		return entities.Invoice{}, err
	}

	if to == entities.InvoiceStatusWrittenOff {
		if len(strings.TrimSpace(reason)) < minWriteOffReasonLen {
			return entities.Invoice{}, ErrWriteOffReasonTooShort
		}
		if actor.ID == "" {
			return entities.Invoice{}, apperror.Validation("ACTOR_REQUIRED", "write-off requires a recording actor")
		}
	}

	if d := lifecycle.InvoiceTransition(inv.Status, to, false); !d.OK {
		auditBestEffort(ctx, u.audit, auditEntry(companyID, "invoice", id, "transition",
			string(inv.Status), string(to), d.Reason, actor, true, u.clock.Now()))
		return entities.Invoice{}, apperror.StateConflict("INVOICE_TRANSITION_DENIED", d.Reason, string(inv.Status), d.Allowed)
	}

	updated, err := u.repo.UpdateStatus(ctx, companyID, id, inv.Status, to, strings.TrimSpace(reason))
	if err != nil {
		if errors.Is(err, interfaces.ErrStaleStatus) {
			return entities.Invoice{}, apperror.StateConflict("INVOICE_TRANSITION_DENIED",
				"invoice status changed concurrently", string(inv.Status), nil)
		}
		return entities.Invoice{}, err
	}
	auditBestEffort(ctx, u.audit, auditEntry(companyID, "invoice", id, "transition",
		string(inv.Status), string(to), strings.TrimSpace(reason), actor, false, u.clock.Now()))
	return updated, nil
}
