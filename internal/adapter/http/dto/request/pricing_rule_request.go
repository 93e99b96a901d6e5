package request

import (
	"fieldops_billing/internal/domain/entities"
	"fieldops_billing/internal/domain/pricing"
)

type RuleConditionRequest struct {
	Kind  string `json:"kind" binding:"required"`
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// PricingRuleRequest defines one conditional adjustment for the tenant.
type PricingRuleRequest struct {
	Name       string                `json:"name" binding:"required"`
	BoundField string                `json:"bound_field"`
	Condition  *RuleConditionRequest `json:"condition"`
	Effect     string                `json:"effect" binding:"required"`
	Amount     float64               `json:"amount"`
}

func (r PricingRuleRequest) ToRule() entities.PricingRule {
	rule := entities.PricingRule{
		Name:       r.Name,
		BoundField: r.BoundField,
		Effect:     entities.EffectKind(r.Effect),
		Amount:     r.Amount,
	}
	if r.Condition != nil {
		rule.Condition = &entities.RuleCondition{
			Kind:  entities.ConditionKind(r.Condition.Kind),
			Field: r.Condition.Field,
			Value: r.Condition.Value,
		}
	}
	return rule
}

// PricingProfileRequest replaces the tenant's tax/deposit/commission profile.
type PricingProfileRequest struct {
	TaxPercent         float64 `json:"tax_percent"`
	DepositPercent     float64 `json:"deposit_percent"`
	CommissionPercent  float64 `json:"commission_percent"`
	EstimatedCostRatio float64 `json:"estimated_cost_ratio"`
}

func (r PricingProfileRequest) ToProfile(companyID string) entities.PricingProfile {
	return entities.PricingProfile{
		CompanyID:          companyID,
		TaxPercent:         r.TaxPercent,
		DepositPercent:     r.DepositPercent,
		CommissionPercent:  r.CommissionPercent,
		EstimatedCostRatio: r.EstimatedCostRatio,
	}
}

// RulePreviewRequest runs the rule set over a subtotal without persisting.
type RulePreviewRequest struct {
	Subtotal float64           `json:"subtotal" binding:"required"`
	Inputs   pricing.RuleInputs `json:"inputs"`
}

// MarketingRangeRequest previews a low/high price band.
type MarketingRangeRequest struct {
	LowSubtotal  float64           `json:"low_subtotal" binding:"required"`
	HighSubtotal float64           `json:"high_subtotal" binding:"required"`
	Inputs       pricing.RuleInputs `json:"inputs"`
}

// RuleFinalizeRequest applies the rule set to a draft estimate and snapshots
// the result.
type RuleFinalizeRequest struct {
	Inputs pricing.RuleInputs `json:"inputs"`
}
