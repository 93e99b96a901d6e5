package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"fieldops_billing/internal/domain/entities"
	"fieldops_billing/internal/usecase/interfaces"
	"fieldops_billing/pkg/apperror"
)

// TokenTTLs is the per-document-type link lifetime policy. Lifetimes are
// policy, not protocol: they are configurable, the hashing and validation
// rules are not.
type TokenTTLs struct {
	Estimate    time.Duration
	Invoice     time.Duration
	Contract    time.Duration
	PaymentPlan time.Duration
}

// DefaultTokenTTLs: document links last a month, payment-plan links a year.
func DefaultTokenTTLs() TokenTTLs {
	return TokenTTLs{
		Estimate:    30 * 24 * time.Hour,
		Invoice:     30 * 24 * time.Hour,
		Contract:    30 * 24 * time.Hour,
		PaymentPlan: 365 * 24 * time.Hour,
	}
}

func (t TokenTTLs) For(d entities.DocumentType) time.Duration {
	switch d {
	case entities.DocumentTypeEstimate:
		return t.Estimate
	case entities.DocumentTypeInvoice:
		return t.Invoice
	case entities.DocumentTypeContract:
		return t.Contract
	case entities.DocumentTypePaymentPlan:
		return t.PaymentPlan
	}
	return t.Estimate
}

// IPortalUseCase implements the secure token protocol and the customer-facing
// actions it gates. Every failure of the validation chain renders the same
// information-poor response; the real cause goes to the audit ledger only.
type IPortalUseCase interface {
	TokenIssuer
	ViewEstimate(ctx context.Context, rawToken string, actor entities.Actor) (entities.Estimate, error)
	DecideEstimate(ctx context.Context, rawToken string, approve bool, actor entities.Actor) (entities.Estimate, error)
	ViewInvoice(ctx context.Context, rawToken string, actor entities.Actor) (entities.Invoice, error)
	ViewContract(ctx context.Context, rawToken string, actor entities.Actor) (entities.Contract, error)
	SignContract(ctx context.Context, rawToken, signerName string, actor entities.Actor) (entities.Contract, error)
	PayInvoice(ctx context.Context, rawToken string, payload json.RawMessage, actor entities.Actor) (entities.Invoice, error)
}

type PortalUseCase struct {
	tokens    interfaces.IPortalTokenRepository
	audit     interfaces.IAuditLogRepository
	estimates IEstimateUseCase
	invoices  IInvoiceUseCase
	contracts IContractUseCase
	payments  IPaymentUseCase
	clock     interfaces.Clock
	ttls      TokenTTLs
}

var _ IPortalUseCase = (*PortalUseCase)(nil)

func NewPortalUseCase(
	tokens interfaces.IPortalTokenRepository,
	audit interfaces.IAuditLogRepository,
	estimates IEstimateUseCase,
	invoices IInvoiceUseCase,
	contracts IContractUseCase,
	payments IPaymentUseCase,
	clock interfaces.Clock,
	ttls TokenTTLs,
) *PortalUseCase {
	return &PortalUseCase{
		tokens: tokens, audit: audit, estimates: estimates, invoices: invoices,
		contracts: contracts, payments: payments, clock: clock, ttls: ttls,
	}
}

// Issue mints a 256-bit token, stores only its SHA-256 hash and returns the
// raw value exactly once.
func (u *PortalUseCase) Issue(ctx context.Context, companyID string, docType entities.DocumentType, docID string, purpose entities.TokenPurpose) (string, time.Time, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", time.Time{}, err
	}
	raw := hex.EncodeToString(buf)

	now := u.clock.Now()
	t := entities.PortalToken{
		TokenHash:    hashToken(raw),
		CompanyID:    companyID,
		DocumentType: docType,
		DocumentID:   docID,
		Purpose:      purpose,
		OneShot:      purpose.OneShotPurpose(),
		ExpiresAt:    now.Add(u.ttls.For(docType)),
		CreatedAt:    now,
	}
	if err := u.tokens.Create(ctx, t); err != nil {
		return "", time.Time{}, err
	}
	return raw, t.ExpiresAt, nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// unattributedTenant marks audit rows for token failures that resolve to no
// tenant (unknown hash): the presented hash is still recorded.
const unattributedTenant = "unattributed"

// resolve runs validation steps 1-3: hash lookup, expiry, one-shot
// consumption check. Step 4 (business status) happens in the action methods.
// Every failure returns the identical generic error and a distinct audit row.
func (u *PortalUseCase) resolve(ctx context.Context, rawToken string, wantPurpose entities.TokenPurpose, actor entities.Actor) (entities.PortalToken, error) {
	hash := hashToken(rawToken)
	t, err := u.tokens.GetByHash(ctx, hash)
	if err != nil {
		return entities.PortalToken{}, err
	}
	now := u.clock.Now()
	fail := func(reason string) (entities.PortalToken, error) {
		companyID := t.CompanyID
		if companyID == "" {
			// Unknown hash resolves to no tenant; file the attempt under a
			// sentinel so operators can query these rows.
			companyID = unattributedTenant
		}
		auditBestEffort(ctx, u.audit, auditEntry(companyID, "token", hash, "resolve",
			"", "", reason, actor, true, now))
		return entities.PortalToken{}, apperror.InvalidAccessToken()
	}
	if t.TokenHash == "" {
		return fail("token hash not found")
	}
	if t.Purpose != wantPurpose {
		return fail("token purpose mismatch")
	}
	if now.After(t.ExpiresAt) {
		return fail("token expired")
	}
	if t.OneShot && t.UsedAt != nil {
		return fail("token already used")
	}
	return t, nil
}

// consume marks a one-shot token used. Racing requests see exactly one
// success; the loser is indistinguishable from "already used".
func (u *PortalUseCase) consume(ctx context.Context, t entities.PortalToken, actor entities.Actor) error {
	if !t.OneShot {
		return nil
	}
	if err := u.tokens.MarkUsed(ctx, t.TokenHash, u.clock.Now()); err != nil {
		auditBestEffort(ctx, u.audit, auditEntry(t.CompanyID, "token", t.TokenHash, "consume",
			"", "", "lost one-shot race: "+err.Error(), actor, true, u.clock.Now()))
		return apperror.InvalidAccessToken()
	}
	return nil
}

// genericize collapses business-status denials (validation step 4) into the
// same response as a bad token, while the underlying use case has already
// audited the real reason.
func genericize(err error) error {
	if err == nil {
		return nil
	}
	return apperror.InvalidAccessToken()
}

func (u *PortalUseCase) ViewEstimate(ctx context.Context, rawToken string, actor entities.Actor) (entities.Estimate, error) {
	t, err := u.resolve(ctx, rawToken, entities.TokenPurposeEstimateView, actor)
	if err != nil {
		return entities.Estimate{}, err
	}
	e, err := u.estimates.GetByID(ctx, t.CompanyID, t.DocumentID)
	if err != nil {
		return entities.Estimate{}, genericize(err)
	}
	return e, nil
}

// DecideEstimate is the customer's one-shot approve/reject.
func (u *PortalUseCase) DecideEstimate(ctx context.Context, rawToken string, approve bool, actor entities.Actor) (entities.Estimate, error) {
	t, err := u.resolve(ctx, rawToken, entities.TokenPurposeEstimateAct, actor)
	if err != nil {
		return entities.Estimate{}, err
	}
	// Step 4: the document must still be decidable before the token burns.
	e, err := u.estimates.GetByID(ctx, t.CompanyID, t.DocumentID)
	if err != nil {
		return entities.Estimate{}, genericize(err)
	}
	if e.Status != entities.EstimateStatusSent {
		auditBestEffort(ctx, u.audit, auditEntry(t.CompanyID, "token", t.TokenHash, "decide_estimate",
			string(e.Status), "", "document status does not permit decision", actor, true, u.clock.Now()))
		return entities.Estimate{}, apperror.InvalidAccessToken()
	}
	if err := u.consume(ctx, t, actor); err != nil {
		return entities.Estimate{}, err
	}
	if approve {
		e, err = u.estimates.Approve(ctx, t.CompanyID, t.DocumentID, actor)
	} else {
		e, err = u.estimates.Reject(ctx, t.CompanyID, t.DocumentID, actor)
	}
	if err != nil {
		return entities.Estimate{}, genericize(err)
	}
	return e, nil
}

func (u *PortalUseCase) ViewInvoice(ctx context.Context, rawToken string, actor entities.Actor) (entities.Invoice, error) {
	t, err := u.resolve(ctx, rawToken, entities.TokenPurposeInvoiceView, actor)
	if err != nil {
		return entities.Invoice{}, err
	}
	inv, err := u.invoices.GetByID(ctx, t.CompanyID, t.DocumentID)
	if err != nil {
		return entities.Invoice{}, genericize(err)
	}
	// First view moves sent -> viewed; later views are reads.
	if inv.Status == entities.InvoiceStatusSent {
		if updated, tErr := u.invoices.Transition(ctx, t.CompanyID, t.DocumentID, entities.InvoiceStatusViewed, "", actor); tErr == nil {
			inv = updated
		}
	}
	return inv, nil
}

func (u *PortalUseCase) ViewContract(ctx context.Context, rawToken string, actor entities.Actor) (entities.Contract, error) {
	t, err := u.resolve(ctx, rawToken, entities.TokenPurposeContractView, actor)
	if err != nil {
		return entities.Contract{}, err
	}
	c, err := u.contracts.GetByID(ctx, t.CompanyID, t.DocumentID)
	if err != nil {
		return entities.Contract{}, genericize(err)
	}
	return c, nil
}

func (u *PortalUseCase) SignContract(ctx context.Context, rawToken, signerName string, actor entities.Actor) (entities.Contract, error) {
	t, err := u.resolve(ctx, rawToken, entities.TokenPurposeContractSign, actor)
	if err != nil {
		return entities.Contract{}, err
	}
	c, err := u.contracts.GetByID(ctx, t.CompanyID, t.DocumentID)
	if err != nil {
		return entities.Contract{}, genericize(err)
	}
	if c.Status != entities.ContractStatusSent {
		auditBestEffort(ctx, u.audit, auditEntry(t.CompanyID, "token", t.TokenHash, "sign_contract",
			string(c.Status), "", "document status does not permit signing", actor, true, u.clock.Now()))
		return entities.Contract{}, apperror.InvalidAccessToken()
	}
	if err := u.consume(ctx, t, actor); err != nil {
		return entities.Contract{}, err
	}
	signed, err := u.contracts.Sign(ctx, t.CompanyID, t.DocumentID, signerName, actor)
	if err != nil {
		return entities.Contract{}, genericize(err)
	}
	return signed, nil
}

func (u *PortalUseCase) PayInvoice(ctx context.Context, rawToken string, payload json.RawMessage, actor entities.Actor) (entities.Invoice, error) {
	t, err := u.resolve(ctx, rawToken, entities.TokenPurposePlanPay, actor)
	if err != nil {
		return entities.Invoice{}, err
	}
	inv, _, err := u.payments.CreateGatewayCheckout(ctx, t.CompanyID, t.DocumentID, payload)
	if err != nil {
		return entities.Invoice{}, genericize(err)
	}
	return inv, nil
}
