package entities

import "time"

// ConditionKind is a closed set of rule-condition operators. Evaluation does
// an exhaustive switch over these kinds; adding an operator is a compile-time
// change, not a silent runtime no-op.
type ConditionKind string

const (
	CondEquals      ConditionKind = "equals"
	CondNotEquals   ConditionKind = "notEquals"
	CondGreaterThan ConditionKind = "greaterThan"
	CondLessThan    ConditionKind = "lessThan"
	CondContains    ConditionKind = "contains"
	CondIsTrue      ConditionKind = "isTrue"
	CondIsFalse     ConditionKind = "isFalse"
)

// RuleCondition gates a rule on one field of the pricing input bag.
type RuleCondition struct {
	Kind  ConditionKind `json:"kind"`
	Field string        `json:"field"`
	Value string        `json:"value,omitempty"`
}

// EffectKind is how a matched rule adjusts the subtotal.
type EffectKind string

const (
	EffectFlat       EffectKind = "flat"
	EffectPercentage EffectKind = "percentage"
	EffectMultiplier EffectKind = "multiplier"
	EffectPerUnit    EffectKind = "per_unit"
)

// PricingRule is a tenant-defined conditional adjustment (surcharge or
// discount) layered on top of a raw work-item subtotal.
//
// Storage model (DynamoDB):
//   - PK: company_id
//   - SK: sort_order (creation order; evaluation order is fixed by it)
//
// A rule with no condition applies when its bound field's input is truthy,
// or unconditionally when it has no bound field either.
type PricingRule struct {
	CompanyID string         `json:"company_id"`
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	BoundField string        `json:"bound_field,omitempty"`
	Condition *RuleCondition `json:"condition,omitempty"`
	Effect    EffectKind     `json:"effect"`
	Amount    float64        `json:"amount"`
	SortOrder int64          `json:"sort_order"`
	CreatedAt time.Time      `json:"created_at"`
}

// PricingProfile carries the tenant's active tax/deposit/commission
// percentages, applied to the post-adjustment subtotal, plus the flat cost
// ratio the rule engine uses for its approximate margin estimate.
type PricingProfile struct {
	CompanyID         string  `json:"company_id"`
	TaxPercent        float64 `json:"tax_percent"`        // 0..1
	DepositPercent    float64 `json:"deposit_percent"`    // 0..1
	CommissionPercent float64 `json:"commission_percent"` // 0..1
	// EstimatedCostRatio approximates direct costs as a share of price for
	// the rule engine's margin readout. Intentionally decoupled from the
	// cost-model pricing path; marketing previews have no cost profile.
	EstimatedCostRatio float64   `json:"estimated_cost_ratio"`
	UpdatedAt          time.Time `json:"updated_at"`
}
