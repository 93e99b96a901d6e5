package interfaces

import (
	"context"
	"time"

	"fieldops_billing/internal/domain/entities"
)

//go:generate mockgen -source=repositories.go -destination=mocks/mocks.go -package=mock_interfaces

// Tenant scoping: every lookup takes the caller's company ID, and a row owned
// by a different tenant is returned as absent (zero value), indistinguishable
// from true absence.

// ICostProfileRepository stores immutable, versioned cost profile snapshots.
type ICostProfileRepository interface {
	// Create writes a new version; fails if the (company, version) row exists.
	Create(ctx context.Context, s entities.CostProfileSnapshot) error
	GetLatest(ctx context.Context, companyID string) (entities.CostProfileSnapshot, error)
	GetVersion(ctx context.Context, companyID string, version int64) (entities.CostProfileSnapshot, error)
}

// IEstimateRepository persists estimate headers.
type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, companyID, id string) (entities.Estimate, error)
	// Update replaces the mutable header fields. Callers must have passed the
	// lifecycle guard first.
	Update(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	// UpdateStatus writes the new status conditioned on the current one still
	// being from; returns ErrStaleStatus when the condition fails.
	UpdateStatus(ctx context.Context, companyID, id string, from, to entities.EstimateStatus) (entities.Estimate, error)
}

// IEstimateSnapshotRepository is append-only.
type IEstimateSnapshotRepository interface {
	// Append fails if (estimate_id, snapshot_version) already exists, so a
	// version can never be reused.
	Append(ctx context.Context, s entities.EstimateSnapshot) error
	LatestVersion(ctx context.Context, estimateID string) (int64, error)
	ListByEstimateID(ctx context.Context, companyID, estimateID string) ([]entities.EstimateSnapshot, error)
}

// IInvoiceRepository persists invoice headers. Financial-field writes go
// through IPaymentLedgerRepository instead.
type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, companyID, id string) (entities.Invoice, error)
	ListByJobID(ctx context.Context, companyID, jobID string) ([]entities.Invoice, error)
	// UpdateStatus is for non-payment transitions only (send, void, overdue,
	// disputed, written_off); conditioned on the current status.
	UpdateStatus(ctx context.Context, companyID, id string, from, to entities.InvoiceStatus, writeOffReason string) (entities.Invoice, error)
}

// IPaymentLedgerRepository owns the one transactional write in the system:
// append a payment row and update the invoice's financial fields together.
type IPaymentLedgerRepository interface {
	// RecordPayment writes the payment row and the updated invoice as one
	// all-or-nothing transaction, conditioned on the invoice's row_version
	// still equalling expectedVersion. Returns ErrVersionMismatch (and writes
	// nothing) when the condition fails. The stored invoice has
	// row_version = expectedVersion + 1.
	RecordPayment(ctx context.Context, updated entities.Invoice, expectedVersion int64, p entities.Payment) (entities.Invoice, error)
	ListByInvoiceID(ctx context.Context, companyID, invoiceID string) ([]entities.Payment, error)
}

// IContractRepository persists contracts and their signed snapshots.
type IContractRepository interface {
	Create(ctx context.Context, c entities.Contract) (entities.Contract, error)
	GetByID(ctx context.Context, companyID, id string) (entities.Contract, error)
	// Update replaces content fields; only legal while the contract is not
	// locked.
	Update(ctx context.Context, c entities.Contract) (entities.Contract, error)
	UpdateStatus(ctx context.Context, companyID, id string, from, to entities.ContractStatus) (entities.Contract, error)
	// CreateSignedSnapshot must be called before MarkSigned; it fails if a
	// snapshot already exists for the contract.
	CreateSignedSnapshot(ctx context.Context, s entities.SignedContractSnapshot) error
	GetSignedSnapshot(ctx context.Context, companyID, contractID string) (entities.SignedContractSnapshot, error)
	// MarkSigned sets status=signed, signer fields and locked_at, conditioned
	// on the contract still being sent.
	MarkSigned(ctx context.Context, c entities.Contract) (entities.Contract, error)
}

// IPricingRuleRepository stores tenant-editable pricing rules and the active
// pricing profile.
type IPricingRuleRepository interface {
	CreateRule(ctx context.Context, r entities.PricingRule) (entities.PricingRule, error)
	ListRules(ctx context.Context, companyID string) ([]entities.PricingRule, error)
	GetProfile(ctx context.Context, companyID string) (entities.PricingProfile, error)
	SaveProfile(ctx context.Context, p entities.PricingProfile) (entities.PricingProfile, error)
}

// IPortalTokenRepository stores only token hashes, never raw tokens.
type IPortalTokenRepository interface {
	Create(ctx context.Context, t entities.PortalToken) error
	GetByHash(ctx context.Context, hash string) (entities.PortalToken, error)
	// MarkUsed is a single conditional write: it succeeds only if used_at is
	// not already set, and returns ErrTokenUsed otherwise.
	MarkUsed(ctx context.Context, hash string, at time.Time) error
}

// IAuditLogRepository is append-only.
type IAuditLogRepository interface {
	Append(ctx context.Context, e entities.AuditLogEntry) error
}

// IJobRepository reads and gates jobs owned by the scheduling subsystem.
type IJobRepository interface {
	GetByID(ctx context.Context, companyID, id string) (entities.Job, error)
	UpdateStatus(ctx context.Context, companyID, id string, from, to entities.JobStatus) (entities.Job, error)
	CreateCrewAssignment(ctx context.Context, a entities.CrewAssignment) (entities.CrewAssignment, error)
	CreateEquipmentReservation(ctx context.Context, r entities.EquipmentReservation) (entities.EquipmentReservation, error)
}
