package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"fieldops_billing/internal/domain/entities"
	"fieldops_billing/internal/domain/lifecycle"
	"fieldops_billing/internal/domain/pricing"
	"fieldops_billing/internal/usecase/interfaces"
	"fieldops_billing/pkg/apperror"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound  = apperror.NotFound("ESTIMATE_NOT_FOUND", "Estimate not found")
	ErrInvalidEstimateID = apperror.Validation("ESTIMATE_ID_REQUIRED", "Estimate id is required")
	ErrInvalidCustomerID = apperror.Validation("CUSTOMER_ID_REQUIRED", "Customer id is required")
	ErrNoWorkItems       = apperror.Validation("WORK_ITEMS_REQUIRED", "Estimate needs at least one work item")
)

// TokenIssuer is the slice of the portal protocol the estimate/invoice/
// contract flows need: mint a link token for a document. Satisfied by
// PortalUseCase.
type TokenIssuer interface {
	Issue(ctx context.Context, companyID string, docType entities.DocumentType, docID string, purpose entities.TokenPurpose) (rawToken string, expiresAt time.Time, err error)
}

// EstimatePatch is an explicit "field set to change" structure: a nil field
// is untouched, a non-nil field is written (possibly to its zero value), so
// "omitted" and "explicitly cleared" never blur.
type EstimatePatch struct {
	Title      *string
	CustomerID *string
	WorkItems  *[]entities.WorkItem
	Override   *pricing.Override // nil = keep; pointer to zero-multiplier = clear
}

// IEstimateUseCase exposes the quote lifecycle: draft, price, send, customer
// decision, change orders.
type IEstimateUseCase interface {
	CreateDraft(ctx context.Context, companyID, userID, customerID, title string, items []entities.WorkItem, ov *pricing.Override) (entities.Estimate, error)
	GetByID(ctx context.Context, companyID, id string) (entities.Estimate, error)
	PatchDraft(ctx context.Context, companyID, id string, patch EstimatePatch, actor entities.Actor) (entities.Estimate, error)
	Send(ctx context.Context, companyID, id string, actor entities.Actor) (entities.Estimate, error)
	Approve(ctx context.Context, companyID, id string, actor entities.Actor) (entities.Estimate, error)
	Reject(ctx context.Context, companyID, id string, actor entities.Actor) (entities.Estimate, error)
	CreateChangeOrder(ctx context.Context, companyID, parentID string, items []entities.WorkItem, ov *pricing.Override, actor entities.Actor) (entities.Estimate, error)
	ListSnapshots(ctx context.Context, companyID, id string) ([]entities.EstimateSnapshot, error)
}

type EstimateUseCase struct {
	repo      interfaces.IEstimateRepository
	snapshots interfaces.IEstimateSnapshotRepository
	audit     interfaces.IAuditLogRepository
	profiles  interfaces.ICostProfileRepository
	rules     interfaces.IPricingRuleRepository
	tokens    TokenIssuer
	notifier  interfaces.INotifier
	clock     interfaces.Clock

	portalBaseURL string
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(
	repo interfaces.IEstimateRepository,
	snapshots interfaces.IEstimateSnapshotRepository,
	audit interfaces.IAuditLogRepository,
	profiles interfaces.ICostProfileRepository,
	rules interfaces.IPricingRuleRepository,
	tokens TokenIssuer,
	notifier interfaces.INotifier,
	clock interfaces.Clock,
	portalBaseURL string,
) *EstimateUseCase {
	return &EstimateUseCase{
		repo: repo, snapshots: snapshots, audit: audit, profiles: profiles,
		rules: rules, tokens: tokens, notifier: notifier, clock: clock,
		portalBaseURL: portalBaseURL,
	}
}

func (u *EstimateUseCase) CreateDraft(ctx context.Context, companyID, userID, customerID, title string, items []entities.WorkItem, ov *pricing.Override) (entities.Estimate, error) {
	companyID = strings.TrimSpace(companyID)
	customerID = strings.TrimSpace(customerID)
	if companyID == "" {
		return entities.Estimate{}, ErrInvalidCompanyID
	}
	if customerID == "" {
		return entities.Estimate{}, ErrInvalidCustomerID
	}
	if len(items) == 0 {
		return entities.Estimate{}, ErrNoWorkItems
	}

	profile, breakdown, err := u.price(ctx, companyID, items, ov)
	if err != nil {
		return entities.Estimate{}, err
	}

	now := u.clock.Now()
	e := entities.Estimate{
		ID:                 uuid.NewString(),
		CompanyID:          companyID,
		CustomerID:         customerID,
		Title:              strings.TrimSpace(title),
		WorkItems:          withItemIDs(items),
		Status:             entities.EstimateStatusDraft,
		Version:            1,
		CostProfileVersion: profile.Version,
		Pricing:            breakdown,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return entities.Estimate{}, err
	}
	auditBestEffort(ctx, u.audit, auditEntry(companyID, "estimate", created.ID, "create",
		"", string(entities.EstimateStatusDraft), "", entities.Actor{Type: "user", ID: userID}, false, now))
	return created, nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, companyID, id string) (entities.Estimate, error) {
	companyID = strings.TrimSpace(companyID)
	id = strings.TrimSpace(id)
	if companyID == "" {
		return entities.Estimate{}, ErrInvalidCompanyID
	}
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	e, err := u.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

// PatchDraft applies field edits to a draft. Any other status is a structured
// conflict, never a silent success.
func (u *EstimateUseCase) PatchDraft(ctx context.Context, companyID, id string, patch EstimatePatch, actor entities.Actor) (entities.Estimate, error) {
	e, err := u.GetByID(ctx, companyID, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if d := lifecycle.EstimateEditable(e.Status); !d.OK {
		auditBestEffort(ctx, u.audit, auditEntry(companyID, "estimate", id, "patch",
			string(e.Status), string(e.Status), d.Reason, actor, true, u.clock.Now()))
		return entities.Estimate{}, apperror.StateConflict("ESTIMATE_NOT_EDITABLE", d.Reason, string(e.Status), d.Allowed)
	}

	if patch.Title != nil {
		e.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.CustomerID != nil {
		e.CustomerID = strings.TrimSpace(*patch.CustomerID)
	}
	repriceNeeded := false
	if patch.WorkItems != nil {
		if len(*patch.WorkItems) == 0 {
			return entities.Estimate{}, ErrNoWorkItems
		}
		e.WorkItems = withItemIDs(*patch.WorkItems)
		repriceNeeded = true
	}
	var ov *pricing.Override
	if e.Pricing.IsOverride {
		ov = &pricing.Override{Multiplier: e.Pricing.OverrideMultiplier, Reason: e.Pricing.OverrideReason}
	}
	if patch.Override != nil {
		repriceNeeded = true
		if patch.Override.Multiplier == 0 {
			ov = nil
		} else {
			ov = patch.Override
		}
	}
	if repriceNeeded {
		profile, breakdown, err := u.price(ctx, companyID, e.WorkItems, ov)
		if err != nil {
			return entities.Estimate{}, err
		}
		e.CostProfileVersion = profile.Version
		e.Pricing = breakdown
	}
	e.UpdatedAt = u.clock.Now()
	return u.repo.Update(ctx, e)
}

// Send transitions draft -> sent, writes the snapshot, issues the customer
// link and fires the notification. The notification failing never rolls the
// send back.
func (u *EstimateUseCase) Send(ctx context.Context, companyID, id string, actor entities.Actor) (entities.Estimate, error) {
	return u.transition(ctx, companyID, id, entities.EstimateStatusSent, entities.TriggerSend, actor, true)
}

func (u *EstimateUseCase) Approve(ctx context.Context, companyID, id string, actor entities.Actor) (entities.Estimate, error) {
	return u.transition(ctx, companyID, id, entities.EstimateStatusApproved, entities.TriggerApprove, actor, false)
}

func (u *EstimateUseCase) Reject(ctx context.Context, companyID, id string, actor entities.Actor) (entities.Estimate, error) {
	return u.transition(ctx, companyID, id, entities.EstimateStatusRejected, entities.TriggerReject, actor, false)
}

func (u *EstimateUseCase) transition(ctx context.Context, companyID, id string, to entities.EstimateStatus, trigger entities.TriggerAction, actor entities.Actor, notify bool) (entities.Estimate, error) {
	e, err := u.GetByID(ctx, companyID, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if d := lifecycle.EstimateTransition(e.Status, to); !d.OK {
		auditBestEffort(ctx, u.audit, auditEntry(companyID, "estimate", id, string(trigger),
			string(e.Status), string(to), d.Reason, actor, true, u.clock.Now()))
		return entities.Estimate{}, apperror.StateConflict("ESTIMATE_TRANSITION_DENIED", d.Reason, string(e.Status), d.Allowed)
	}

	now := u.clock.Now()
	if err := u.appendSnapshot(ctx, e, trigger, e.Status, to, actor, now); err != nil {
		return entities.Estimate{}, err
	}
	updated, err := u.repo.UpdateStatus(ctx, companyID, id, e.Status, to)
	if err != nil {
		if errors.Is(err, interfaces.ErrStaleStatus) {
			return entities.Estimate{}, apperror.StateConflict("ESTIMATE_TRANSITION_DENIED",
				"estimate status changed concurrently", string(e.Status), nil)
		}
		return entities.Estimate{}, err
	}
	auditBestEffort(ctx, u.audit, auditEntry(companyID, "estimate", id, string(trigger),
		string(e.Status), string(to), "", actor, false, now))

	if notify {
		u.sendCustomerLink(ctx, updated)
	}
	return updated, nil
}

// CreateChangeOrder prices the modified work items into a new estimate and
// supersedes the parent in one logical operation: child snapshot
// (change_order), parent snapshot (supersede, pricing carried forward
// unchanged) and two linked audit rows.
func (u *EstimateUseCase) CreateChangeOrder(ctx context.Context, companyID, parentID string, items []entities.WorkItem, ov *pricing.Override, actor entities.Actor) (entities.Estimate, error) {
	parent, err := u.GetByID(ctx, companyID, parentID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(items) == 0 {
		return entities.Estimate{}, ErrNoWorkItems
	}
	if d := lifecycle.EstimateTransition(parent.Status, entities.EstimateStatusSuperseded); !d.OK {
		auditBestEffort(ctx, u.audit, auditEntry(companyID, "estimate", parentID, "change_order",
			string(parent.Status), string(entities.EstimateStatusSuperseded), d.Reason, actor, true, u.clock.Now()))
		return entities.Estimate{}, apperror.StateConflict("ESTIMATE_TRANSITION_DENIED", d.Reason, string(parent.Status), d.Allowed)
	}

	profile, breakdown, err := u.price(ctx, companyID, items, ov)
	if err != nil {
		return entities.Estimate{}, err
	}

	now := u.clock.Now()
	child := entities.Estimate{
		ID:                 uuid.NewString(),
		CompanyID:          companyID,
		CustomerID:         parent.CustomerID,
		Title:              parent.Title,
		WorkItems:          withItemIDs(items),
		Status:             entities.EstimateStatusDraft,
		Version:            parent.Version + 1,
		ParentEstimateID:   parent.ID,
		CostProfileVersion: profile.Version,
		Pricing:            breakdown,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	created, err := u.repo.Create(ctx, child)
	if err != nil {
		return entities.Estimate{}, err
	}

	if err := u.appendSnapshot(ctx, created, entities.TriggerChangeOrder, entities.EstimateStatusDraft, entities.EstimateStatusDraft, actor, now); err != nil {
		return entities.Estimate{}, err
	}
	// The supersede snapshot carries the parent's last-known pricing forward
	// unchanged.
	if err := u.appendSnapshot(ctx, parent, entities.TriggerSupersede, parent.Status, entities.EstimateStatusSuperseded, actor, now); err != nil {
		return entities.Estimate{}, err
	}
	if _, err := u.repo.UpdateStatus(ctx, companyID, parent.ID, parent.Status, entities.EstimateStatusSuperseded); err != nil {
		return entities.Estimate{}, err
	}

	childAudit := auditEntry(companyID, "estimate", created.ID, "change_order",
		"", string(entities.EstimateStatusDraft), fmt.Sprintf("change order of %s", parent.ID), actor, false, now)
	parentAudit := auditEntry(companyID, "estimate", parent.ID, "supersede",
		string(parent.Status), string(entities.EstimateStatusSuperseded), fmt.Sprintf("superseded by %s", created.ID), actor, false, now)
	childAudit.LinkedEntryID = parentAudit.ID
	parentAudit.LinkedEntryID = childAudit.ID
	auditBestEffort(ctx, u.audit, childAudit)
	auditBestEffort(ctx, u.audit, parentAudit)

	return created, nil
}

func (u *EstimateUseCase) ListSnapshots(ctx context.Context, companyID, id string) ([]entities.EstimateSnapshot, error) {
	if _, err := u.GetByID(ctx, companyID, id); err != nil {
		return nil, err
	}
	return u.snapshots.ListByEstimateID(ctx, companyID, id)
}

// price runs the pricing engine against the tenant's latest cost profile and
// active tax rate.
func (u *EstimateUseCase) price(ctx context.Context, companyID string, items []entities.WorkItem, ov *pricing.Override) (entities.CostProfileSnapshot, entities.PricingBreakdown, error) {
	profile, err := u.profiles.GetLatest(ctx, companyID)
	if err != nil {
		return entities.CostProfileSnapshot{}, entities.PricingBreakdown{}, err
	}
	if profile.Version == 0 {
		return entities.CostProfileSnapshot{}, entities.PricingBreakdown{}, ErrCostProfileNotFound
	}
	pp, err := u.rules.GetProfile(ctx, companyID)
	if err != nil {
		return entities.CostProfileSnapshot{}, entities.PricingBreakdown{}, err
	}
	b, err := pricing.PriceEstimate(items, profile, pp.TaxPercent, ov)
	if err != nil {
		if errors.Is(err, pricing.ErrOverrideReasonRequired) {
			return entities.CostProfileSnapshot{}, entities.PricingBreakdown{}, apperror.Validation("OVERRIDE_REASON_REQUIRED", "price override requires a reason")
		}
		return entities.CostProfileSnapshot{}, entities.PricingBreakdown{}, err
	}
	return profile, b, nil
}

func (u *EstimateUseCase) appendSnapshot(ctx context.Context, e entities.Estimate, trigger entities.TriggerAction, prev, next entities.EstimateStatus, actor entities.Actor, at time.Time) error {
	latest, err := u.snapshots.LatestVersion(ctx, e.ID)
	if err != nil {
		return err
	}
	return u.snapshots.Append(ctx, entities.EstimateSnapshot{
		EstimateID:      e.ID,
		SnapshotVersion: latest + 1,
		CompanyID:       e.CompanyID,
		TriggerAction:   trigger,
		WorkItems:       e.WorkItems,
		Pricing:         e.Pricing,
		PreviousStatus:  prev,
		NewStatus:       next,
		Actor:           actor,
		CreatedAt:       at,
	})
}

// sendCustomerLink issues the one-shot decision token and hands it to the
// delivery provider. Fire-and-forget.
func (u *EstimateUseCase) sendCustomerLink(ctx context.Context, e entities.Estimate) {
	if u.tokens == nil || u.notifier == nil {
		return
	}
	raw, expiresAt, err := u.tokens.Issue(ctx, e.CompanyID, entities.DocumentTypeEstimate, e.ID, entities.TokenPurposeEstimateAct)
	if err != nil {
		log.Printf("[estimate][usecase] token issue failed estimate_id=%s err=%v", e.ID, err)
		return
	}
	msg := interfaces.DocumentLinkMessage{
		CompanyID:    e.CompanyID,
		CustomerID:   e.CustomerID,
		DocumentType: string(entities.DocumentTypeEstimate),
		DocumentID:   e.ID,
		LinkURL:      fmt.Sprintf("%s/portal/estimates?token=%s", strings.TrimRight(u.portalBaseURL, "/"), raw),
		ExpiresAt:    expiresAt,
	}
	if err := u.notifier.SendDocumentLink(ctx, msg); err != nil {
		log.Printf("[estimate][usecase] link delivery failed estimate_id=%s err=%v", e.ID, err)
	}
}

func withItemIDs(items []entities.WorkItem) []entities.WorkItem {
	out := make([]entities.WorkItem, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = uuid.NewString()
		}
	}
	return out
}
