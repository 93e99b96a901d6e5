package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"fieldops_billing/internal/domain/entities"
	"fieldops_billing/internal/domain/lifecycle"
	"fieldops_billing/internal/usecase/interfaces"
	"fieldops_billing/pkg/apperror"

	"github.com/google/uuid"
)

var (
	ErrContractNotFound   = apperror.NotFound("CONTRACT_NOT_FOUND", "Contract not found")
	ErrInvalidContractID  = apperror.Validation("CONTRACT_ID_REQUIRED", "Contract id is required")
	ErrSignerNameRequired = apperror.Validation("SIGNER_NAME_REQUIRED", "Signer name is required")
	ErrContractLocked = apperror.New(apperror.KindStateConflict, "CONTRACT_LOCKED",
		"Contract is signed and can no longer be modified", http.StatusConflict)
)

// IContractUseCase manages the legal document: generation off an approved
// estimate, sending, and the dedicated sign operation.
type IContractUseCase interface {
	GenerateFromEstimate(ctx context.Context, companyID, estimateID string, terms, footer string, actor entities.Actor) (entities.Contract, error)
	GetByID(ctx context.Context, companyID, id string) (entities.Contract, error)
	UpdateDraft(ctx context.Context, companyID, id string, header, workItems, terms, footer *string, actor entities.Actor) (entities.Contract, error)
	Send(ctx context.Context, companyID, id string, actor entities.Actor) (entities.Contract, error)
	Void(ctx context.Context, companyID, id string, actor entities.Actor) (entities.Contract, error)
	// Sign is the only path to status signed. The SignedContractSnapshot is
	// written before the contract row is updated: if the update fails after
	// the snapshot succeeded, the legal record still exists (a detectable
	// anomaly); the reverse order is never acceptable.
	Sign(ctx context.Context, companyID, id, signerName string, actor entities.Actor) (entities.Contract, error)
}

type ContractUseCase struct {
	repo      interfaces.IContractRepository
	estimates interfaces.IEstimateRepository
	snapshots interfaces.IEstimateSnapshotRepository
	audit     interfaces.IAuditLogRepository
	tokens    TokenIssuer
	notifier  interfaces.INotifier
	clock     interfaces.Clock

	portalBaseURL string
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(
	repo interfaces.IContractRepository,
	estimates interfaces.IEstimateRepository,
	snapshots interfaces.IEstimateSnapshotRepository,
	audit interfaces.IAuditLogRepository,
	tokens TokenIssuer,
	notifier interfaces.INotifier,
	clock interfaces.Clock,
	portalBaseURL string,
) *ContractUseCase {
	return &ContractUseCase{
		repo: repo, estimates: estimates, snapshots: snapshots, audit: audit,
		tokens: tokens, notifier: notifier, clock: clock, portalBaseURL: portalBaseURL,
	}
}

// GenerateFromEstimate renders the contract content off the estimate's
// latest snapshot, pinning the snapshot version the legal text was built
// from.
func (u *ContractUseCase) GenerateFromEstimate(ctx context.Context, companyID, estimateID, terms, footer string, actor entities.Actor) (entities.Contract, error) {
	companyID = strings.TrimSpace(companyID)
	estimateID = strings.TrimSpace(estimateID)
	if companyID == "" {
		return entities.Contract{}, ErrInvalidCompanyID
	}
	if estimateID == "" {
		return entities.Contract{}, ErrInvalidEstimateID
	}

	e, err := u.estimates.GetByID(ctx, companyID, estimateID)
	if err != nil {
		return entities.Contract{}, err
	}
	if e.ID == "" {
		return entities.Contract{}, ErrEstimateNotFound
	}
	if e.Status != entities.EstimateStatusApproved {
		return entities.Contract{}, ErrEstimateNotApproved
	}
	snapVersion, err := u.snapshots.LatestVersion(ctx, e.ID)
	if err != nil {
		return entities.Contract{}, err
	}

	now := u.clock.Now()
	c := entities.Contract{
		ID:                      uuid.NewString(),
		CompanyID:               companyID,
		CustomerID:              e.CustomerID,
		EstimateID:              e.ID,
		EstimateSnapshotVersion: snapVersion,
		Status:                  entities.ContractStatusDraft,
		HeaderContent:           fmt.Sprintf("Service agreement: %s", e.Title),
		WorkItemsContent:        renderWorkItems(e),
		TermsContent:            strings.TrimSpace(terms),
		FooterContent:           strings.TrimSpace(footer),
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Contract{}, err
	}
	auditBestEffort(ctx, u.audit, auditEntry(companyID, "contract", created.ID, "create",
		"", string(entities.ContractStatusDraft), fmt.Sprintf("generated from estimate %s", e.ID), actor, false, now))
	return created, nil
}

func (u *ContractUseCase) GetByID(ctx context.Context, companyID, id string) (entities.Contract, error) {
	companyID = strings.TrimSpace(companyID)
	id = strings.TrimSpace(id)
	if companyID == "" {
		return entities.Contract{}, ErrInvalidCompanyID
	}
	if id == "" {
		return entities.Contract{}, ErrInvalidContractID
	}
	c, err := u.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	return c, nil
}

// UpdateDraft edits content fields; locked contracts are immutable.
func (u *ContractUseCase) UpdateDraft(ctx context.Context, companyID, id string, header, workItems, terms, footer *string, actor entities.Actor) (entities.Contract, error) {
	c, err := u.GetByID(ctx, companyID, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.LockedAt != nil {
		return entities.Contract{}, ErrContractLocked
	}
	if c.Status != entities.ContractStatusDraft {
		return entities.Contract{}, apperror.StateConflict("CONTRACT_NOT_EDITABLE",
			"contract can only be edited while draft", string(c.Status), nil)
	}
	if header != nil {
		c.HeaderContent = *header
	}
	if workItems != nil {
		c.WorkItemsContent = *workItems
	}
	if terms != nil {
		c.TermsContent = *terms
	}
	if footer != nil {
		c.FooterContent = *footer
	}
	c.UpdatedAt = u.clock.Now()
	return u.repo.Update(ctx, c)
}

func (u *ContractUseCase) Send(ctx context.Context, companyID, id string, actor entities.Actor) (entities.Contract, error) {
	c, err := u.GetByID(ctx, companyID, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if d := lifecycle.ContractTransition(c.Status, entities.ContractStatusSent, false); !d.OK {
		auditBestEffort(ctx, u.audit, auditEntry(companyID, "contract", id, "send",
			string(c.Status), string(entities.ContractStatusSent), d.Reason, actor, true, u.clock.Now()))
		return entities.Contract{}, apperror.StateConflict("CONTRACT_TRANSITION_DENIED", d.Reason, string(c.Status), d.Allowed)
	}
	updated, err := u.repo.UpdateStatus(ctx, companyID, id, c.Status, entities.ContractStatusSent)
	if err != nil {
		if errors.Is(err, interfaces.ErrStaleStatus) {
			return entities.Contract{}, apperror.StateConflict("CONTRACT_TRANSITION_DENIED",
				"contract status changed concurrently", string(c.Status), nil)
		}
		return entities.Contract{}, err
	}
	auditBestEffort(ctx, u.audit, auditEntry(companyID, "contract", id, "send",
		string(c.Status), string(entities.ContractStatusSent), "", actor, false, u.clock.Now()))
	u.sendSignLink(ctx, updated)
	return updated, nil
}

func (u *ContractUseCase) Void(ctx context.Context, companyID, id string, actor entities.Actor) (entities.Contract, error) {
	c, err := u.GetByID(ctx, companyID, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if d := lifecycle.ContractTransition(c.Status, entities.ContractStatusVoided, false); !d.OK {
		return entities.Contract{}, apperror.StateConflict("CONTRACT_TRANSITION_DENIED", d.Reason, string(c.Status), d.Allowed)
	}
	updated, err := u.repo.UpdateStatus(ctx, companyID, id, c.Status, entities.ContractStatusVoided)
	if err != nil {
		if errors.Is(err, interfaces.ErrStaleStatus) {
			return entities.Contract{}, apperror.StateConflict("CONTRACT_TRANSITION_DENIED",
				"contract status changed concurrently", string(c.Status), nil)
		}
		return entities.Contract{}, err
	}
	auditBestEffort(ctx, u.audit, auditEntry(companyID, "contract", id, "void",
		string(c.Status), string(entities.ContractStatusVoided), "", actor, false, u.clock.Now()))
	return updated, nil
}

func (u *ContractUseCase) Sign(ctx context.Context, companyID, id, signerName string, actor entities.Actor) (entities.Contract, error) {
	signerName = strings.TrimSpace(signerName)
	if signerName == "" {
		return entities.Contract{}, ErrSignerNameRequired
	}
	c, err := u.GetByID(ctx, companyID, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if d := lifecycle.ContractTransition(c.Status, entities.ContractStatusSigned, true); !d.OK {
		auditBestEffort(ctx, u.audit, auditEntry(companyID, "contract", id, "sign",
			string(c.Status), string(entities.ContractStatusSigned), d.Reason, actor, true, u.clock.Now()))
		return entities.Contract{}, apperror.StateConflict("CONTRACT_TRANSITION_DENIED", d.Reason, string(c.Status), d.Allowed)
	}

	now := u.clock.Now()
	// Legal record first.
	snap := entities.SignedContractSnapshot{
		ContractID:       c.ID,
		CompanyID:        c.CompanyID,
		HeaderContent:    c.HeaderContent,
		WorkItemsContent: c.WorkItemsContent,
		TermsContent:     c.TermsContent,
		FooterContent:    c.FooterContent,
		SignedByName:     signerName,
		Signer:           actor,
		SignedAt:         now,
	}
	if err := u.repo.CreateSignedSnapshot(ctx, snap); err != nil {
		return entities.Contract{}, err
	}

	c.Status = entities.ContractStatusSigned
	c.SignedByName = signerName
	c.SignedAt = &now
	c.LockedAt = &now
	updated, err := u.repo.MarkSigned(ctx, c)
	if err != nil {
		// Snapshot exists but the row update failed: detectable anomaly,
		// surfaced loudly, never rolled back.
		log.Printf("[contract][usecase] contract update failed after signed snapshot contract_id=%s err=%v", c.ID, err)
		return entities.Contract{}, err
	}
	auditBestEffort(ctx, u.audit, auditEntry(companyID, "contract", id, "sign",
		string(entities.ContractStatusSent), string(entities.ContractStatusSigned),
		fmt.Sprintf("signed by %s", signerName), actor, false, now))
	return updated, nil
}

func (u *ContractUseCase) sendSignLink(ctx context.Context, c entities.Contract) {
	if u.tokens == nil || u.notifier == nil {
		return
	}
	raw, expiresAt, err := u.tokens.Issue(ctx, c.CompanyID, entities.DocumentTypeContract, c.ID, entities.TokenPurposeContractSign)
	if err != nil {
		log.Printf("[contract][usecase] token issue failed contract_id=%s err=%v", c.ID, err)
		return
	}
	msg := interfaces.DocumentLinkMessage{
		CompanyID:    c.CompanyID,
		CustomerID:   c.CustomerID,
		DocumentType: string(entities.DocumentTypeContract),
		DocumentID:   c.ID,
		LinkURL:      fmt.Sprintf("%s/portal/contracts?token=%s", strings.TrimRight(u.portalBaseURL, "/"), raw),
		ExpiresAt:    expiresAt,
	}
	if err := u.notifier.SendDocumentLink(ctx, msg); err != nil {
		log.Printf("[contract][usecase] link delivery failed contract_id=%s err=%v", c.ID, err)
	}
}

func renderWorkItems(e entities.Estimate) string {
	var b strings.Builder
	for _, it := range e.WorkItems {
		fmt.Fprintf(&b, "%s x%.2f @ %.2f\n", it.Description, it.Quantity, it.UnitPrice)
	}
	fmt.Fprintf(&b, "Total: %.2f", e.Pricing.Total)
	return b.String()
}
