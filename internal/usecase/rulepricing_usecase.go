package usecase

import (
	"context"
	"strings"

	"fieldops_billing/internal/domain/entities"
	"fieldops_billing/internal/domain/lifecycle"
	"fieldops_billing/internal/domain/pricing"
	"fieldops_billing/internal/usecase/interfaces"
	"fieldops_billing/pkg/apperror"

	"github.com/google/uuid"
)

var (
	ErrInvalidRuleName   = apperror.Validation("RULE_NAME_REQUIRED", "Rule name is required")
	ErrInvalidRuleEffect = apperror.Validation("INVALID_RULE_EFFECT", "Rule effect amount must be a finite number")
)

// IRulePricingUseCase is the tenant-editable pricing path: rule management,
// side-effect-free previews (internal and public marketing) and the finalize
// call that freezes a draft estimate's rule pricing into a snapshot.
type IRulePricingUseCase interface {
	CreateRule(ctx context.Context, companyID string, r entities.PricingRule) (entities.PricingRule, error)
	ListRules(ctx context.Context, companyID string) ([]entities.PricingRule, error)
	SaveProfile(ctx context.Context, p entities.PricingProfile) (entities.PricingProfile, error)
	Preview(ctx context.Context, companyID string, subtotal float64, inputs pricing.RuleInputs) (pricing.RuleResult, error)
	MarketingRange(ctx context.Context, companyID string, lowSubtotal, highSubtotal float64, inputs pricing.RuleInputs) (low, high pricing.RuleResult, err error)
	Finalize(ctx context.Context, companyID, estimateID string, inputs pricing.RuleInputs, actor entities.Actor) (pricing.RuleResult, error)
}

type RulePricingUseCase struct {
	rules     interfaces.IPricingRuleRepository
	estimates interfaces.IEstimateRepository
	snapshots interfaces.IEstimateSnapshotRepository
	audit     interfaces.IAuditLogRepository
	clock     interfaces.Clock
}

var _ IRulePricingUseCase = (*RulePricingUseCase)(nil)

func NewRulePricingUseCase(
	rules interfaces.IPricingRuleRepository,
	estimates interfaces.IEstimateRepository,
	snapshots interfaces.IEstimateSnapshotRepository,
	audit interfaces.IAuditLogRepository,
	clock interfaces.Clock,
) *RulePricingUseCase {
	return &RulePricingUseCase{rules: rules, estimates: estimates, snapshots: snapshots, audit: audit, clock: clock}
}

func (u *RulePricingUseCase) CreateRule(ctx context.Context, companyID string, r entities.PricingRule) (entities.PricingRule, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return entities.PricingRule{}, ErrInvalidCompanyID
	}
	if strings.TrimSpace(r.Name) == "" {
		return entities.PricingRule{}, ErrInvalidRuleName
	}
	switch r.Effect {
	case entities.EffectFlat, entities.EffectPercentage, entities.EffectMultiplier, entities.EffectPerUnit:
	default:
		return entities.PricingRule{}, ErrInvalidRuleEffect
	}
	if r.Condition != nil {
		switch r.Condition.Kind {
		case entities.CondEquals, entities.CondNotEquals, entities.CondGreaterThan,
			entities.CondLessThan, entities.CondContains, entities.CondIsTrue, entities.CondIsFalse:
		default:
			return entities.PricingRule{}, apperror.Validation("INVALID_CONDITION", "unknown condition operator")
		}
	}

	existing, err := u.rules.ListRules(ctx, companyID)
	if err != nil {
		return entities.PricingRule{}, err
	}
	r.CompanyID = companyID
	r.ID = uuid.NewString()
	r.SortOrder = int64(len(existing)) + 1
	r.CreatedAt = u.clock.Now()
	return u.rules.CreateRule(ctx, r)
}

func (u *RulePricingUseCase) ListRules(ctx context.Context, companyID string) ([]entities.PricingRule, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, ErrInvalidCompanyID
	}
	return u.rules.ListRules(ctx, companyID)
}

func (u *RulePricingUseCase) SaveProfile(ctx context.Context, p entities.PricingProfile) (entities.PricingProfile, error) {
	if strings.TrimSpace(p.CompanyID) == "" {
		return entities.PricingProfile{}, ErrInvalidCompanyID
	}
	p.UpdatedAt = u.clock.Now()
	return u.rules.SaveProfile(ctx, p)
}

// Preview is side-effect-free.
func (u *RulePricingUseCase) Preview(ctx context.Context, companyID string, subtotal float64, inputs pricing.RuleInputs) (pricing.RuleResult, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return pricing.RuleResult{}, ErrInvalidCompanyID
	}
	rules, err := u.rules.ListRules(ctx, companyID)
	if err != nil {
		return pricing.RuleResult{}, err
	}
	profile, err := u.rules.GetProfile(ctx, companyID)
	if err != nil {
		return pricing.RuleResult{}, err
	}
	return pricing.ApplyRules(subtotal, rules, inputs, profile), nil
}

// MarketingRange prices the low and high ends of a public lead-capture span
// with the same rule set.
func (u *RulePricingUseCase) MarketingRange(ctx context.Context, companyID string, lowSubtotal, highSubtotal float64, inputs pricing.RuleInputs) (pricing.RuleResult, pricing.RuleResult, error) {
	if highSubtotal < lowSubtotal {
		lowSubtotal, highSubtotal = highSubtotal, lowSubtotal
	}
	low, err := u.Preview(ctx, companyID, lowSubtotal, inputs)
	if err != nil {
		return pricing.RuleResult{}, pricing.RuleResult{}, err
	}
	high, err := u.Preview(ctx, companyID, highSubtotal, inputs)
	if err != nil {
		return pricing.RuleResult{}, pricing.RuleResult{}, err
	}
	return low, high, nil
}

// Finalize persists the rule-engine result as an estimate snapshot
// (trigger finalize). Only valid while the estimate is in draft.
func (u *RulePricingUseCase) Finalize(ctx context.Context, companyID, estimateID string, inputs pricing.RuleInputs, actor entities.Actor) (pricing.RuleResult, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return pricing.RuleResult{}, ErrInvalidEstimateID
	}
	e, err := u.estimates.GetByID(ctx, strings.TrimSpace(companyID), estimateID)
	if err != nil {
		return pricing.RuleResult{}, err
	}
	if e.ID == "" {
		return pricing.RuleResult{}, ErrEstimateNotFound
	}
	if d := lifecycle.EstimateEditable(e.Status); !d.OK {
		auditBestEffort(ctx, u.audit, auditEntry(e.CompanyID, "estimate", e.ID, "finalize",
			string(e.Status), string(e.Status), d.Reason, actor, true, u.clock.Now()))
		return pricing.RuleResult{}, apperror.StateConflict("ESTIMATE_NOT_EDITABLE",
			"finalize is only valid while the estimate is draft", string(e.Status), nil)
	}

	var subtotal float64
	for _, it := range e.WorkItems {
		subtotal += it.Quantity * it.UnitPrice
	}
	res, err := u.Preview(ctx, e.CompanyID, subtotal, inputs)
	if err != nil {
		return pricing.RuleResult{}, err
	}

	profile, err := u.rules.GetProfile(ctx, e.CompanyID)
	if err != nil {
		return pricing.RuleResult{}, err
	}
	ratio := profile.EstimatedCostRatio
	if ratio <= 0 || ratio >= 1 {
		ratio = 0.60
	}

	now := u.clock.Now()
	latest, err := u.snapshots.LatestVersion(ctx, e.ID)
	if err != nil {
		return pricing.RuleResult{}, err
	}
	// The rule path approximates direct costs with the profile's flat
	// ratio; the cost-model path computes them properly. Both freeze the
	// same snapshot shape.
	snap := entities.EstimateSnapshot{
		EstimateID:      e.ID,
		SnapshotVersion: latest + 1,
		CompanyID:       e.CompanyID,
		TriggerAction:   entities.TriggerFinalize,
		WorkItems:       e.WorkItems,
		Pricing: entities.PricingBreakdown{
			MaterialCost:    pricing.Round2(subtotal),
			DirectCosts:     pricing.Round2(res.AdjustedSubtotal * ratio),
			CalculatedPrice: res.AdjustedSubtotal,
			FloorPrice:      pricing.Round2(res.AdjustedSubtotal * ratio),
			FinalPrice:      res.AdjustedSubtotal,
			MarginPercent:   res.EstimatedMarginPercent,
			TaxRate:         pricing.Round4(profile.TaxPercent),
			TaxAmount:       res.TaxAmount,
			Total:           res.Total,
		},
		PreviousStatus: e.Status,
		NewStatus:      e.Status,
		Actor:          actor,
		CreatedAt:      now,
	}
	if err := u.snapshots.Append(ctx, snap); err != nil {
		return pricing.RuleResult{}, err
	}
	auditBestEffort(ctx, u.audit, auditEntry(e.CompanyID, "estimate", e.ID, "finalize",
		string(e.Status), string(e.Status), "rule pricing finalized", actor, false, now))
	return res, nil
}
