package response

import (
	"time"

	"fieldops_billing/internal/domain/entities"
	"fieldops_billing/internal/domain/pricing"
)

type PricingRuleResponse struct {
	ID         string                  `json:"id"`
	Name       string                  `json:"name"`
	BoundField string                  `json:"bound_field,omitempty"`
	Condition  *entities.RuleCondition `json:"condition,omitempty"`
	Effect     string                  `json:"effect"`
	Amount     float64                 `json:"amount"`
	SortOrder  int64                   `json:"sort_order"`
	CreatedAt  time.Time               `json:"created_at"`
}

func FromPricingRule(r entities.PricingRule) PricingRuleResponse {
	return PricingRuleResponse{
		ID:         r.ID,
		Name:       r.Name,
		BoundField: r.BoundField,
		Condition:  r.Condition,
		Effect:     string(r.Effect),
		Amount:     r.Amount,
		SortOrder:  r.SortOrder,
		CreatedAt:  r.CreatedAt,
	}
}

func FromPricingRules(in []entities.PricingRule) []PricingRuleResponse {
	out := make([]PricingRuleResponse, 0, len(in))
	for _, r := range in {
		out = append(out, FromPricingRule(r))
	}
	return out
}

type PricingProfileResponse struct {
	CompanyID          string    `json:"company_id"`
	TaxPercent         float64   `json:"tax_percent"`
	DepositPercent     float64   `json:"deposit_percent"`
	CommissionPercent  float64   `json:"commission_percent"`
	EstimatedCostRatio float64   `json:"estimated_cost_ratio"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromPricingProfile(p entities.PricingProfile) PricingProfileResponse {
	return PricingProfileResponse{
		CompanyID:          p.CompanyID,
		TaxPercent:         p.TaxPercent,
		DepositPercent:     p.DepositPercent,
		CommissionPercent:  p.CommissionPercent,
		EstimatedCostRatio: p.EstimatedCostRatio,
		UpdatedAt:          p.UpdatedAt,
	}
}

// RuleResultResponse reuses the engine's result shape; it already carries
// json tags and is a pure value.
type RuleResultResponse = pricing.RuleResult

// MarketingRangeResponse is the low/high band for a marketing page.
type MarketingRangeResponse struct {
	Low  pricing.RuleResult `json:"low"`
	High pricing.RuleResult `json:"high"`
}
