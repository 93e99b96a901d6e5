package pricing

import (
	"sort"
	"strconv"
	"strings"

	"fieldops_billing/internal/domain/entities"
)

// RuleInputs is the keyed input bag rule conditions evaluate against.
type RuleInputs map[string]any

// AdjustmentLine reports what one matched rule contributed.
type AdjustmentLine struct {
	RuleID   string  `json:"rule_id"`
	RuleName string  `json:"rule_name"`
	Amount   float64 `json:"amount"`
}

// RuleResult is the outcome of a rule-engine preview or finalize.
type RuleResult struct {
	Subtotal         float64          `json:"subtotal"`
	Adjustments      []AdjustmentLine `json:"adjustments"`
	AdjustmentsTotal float64          `json:"adjustments_total"`
	AdjustedSubtotal float64          `json:"adjusted_subtotal"`
	TaxAmount        float64          `json:"tax_amount"`
	DepositAmount    float64          `json:"deposit_amount"`
	CommissionAmount float64          `json:"commission_amount"`
	Total            float64          `json:"total"`
	// EstimatedMarginPercent uses the profile's flat cost ratio, not the
	// cost model. It is a marketing-grade approximation.
	EstimatedMarginPercent float64 `json:"estimated_margin_percent"`
}

// ApplyRules layers the tenant's rules over a raw subtotal. Rules run in
// creation order (SortOrder) and their effects accumulate additively into
// AdjustmentsTotal, so non-interacting rules are order-independent in total.
// Side-effect free; finalize persistence happens in the use case layer.
func ApplyRules(subtotal float64, rules []entities.PricingRule, inputs RuleInputs, profile entities.PricingProfile) RuleResult {
	ordered := make([]entities.PricingRule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].SortOrder < ordered[j].SortOrder })

	res := RuleResult{Subtotal: Round2(subtotal)}
	for _, r := range ordered {
		if !ruleApplies(r, inputs) {
			continue
		}
		amt := effectAmount(r, subtotal, inputs)
		if amt == 0 {
			continue
		}
		amt = Round2(amt)
		res.Adjustments = append(res.Adjustments, AdjustmentLine{RuleID: r.ID, RuleName: r.Name, Amount: amt})
		res.AdjustmentsTotal += amt
	}
	res.AdjustmentsTotal = Round2(res.AdjustmentsTotal)
	res.AdjustedSubtotal = Round2(res.Subtotal + res.AdjustmentsTotal)

	res.TaxAmount = Round2(res.AdjustedSubtotal * profile.TaxPercent)
	res.DepositAmount = Round2(res.AdjustedSubtotal * profile.DepositPercent)
	res.CommissionAmount = Round2(res.AdjustedSubtotal * profile.CommissionPercent)
	res.Total = Round2(res.AdjustedSubtotal + res.TaxAmount)

	ratio := profile.EstimatedCostRatio
	if ratio <= 0 || ratio >= 1 {
		ratio = 0.60
	}
	if res.AdjustedSubtotal > 0 {
		res.EstimatedMarginPercent = Round2((1 - ratio) * 100)
	}
	return res
}

func ruleApplies(r entities.PricingRule, inputs RuleInputs) bool {
	if r.Condition != nil {
		return evalCondition(*r.Condition, inputs)
	}
	if r.BoundField != "" {
		return truthy(inputs[r.BoundField])
	}
	return true
}

// evalCondition is an exhaustive match over the closed operator set. An
// operator value outside the set is unreachable by construction; returning
// false there would hide a programming error, so unknown kinds fall through
// to false only after the explicit cases.
func evalCondition(c entities.RuleCondition, inputs RuleInputs) bool {
	v, present := inputs[c.Field]
	switch c.Kind {
	case entities.CondEquals:
		return present && asString(v) == c.Value
	case entities.CondNotEquals:
		return !present || asString(v) != c.Value
	case entities.CondGreaterThan:
		want, ok := parseNumber(c.Value)
		got, okV := asNumber(v)
		return present && ok && okV && got > want
	case entities.CondLessThan:
		want, ok := parseNumber(c.Value)
		got, okV := asNumber(v)
		return present && ok && okV && got < want
	case entities.CondContains:
		return present && strings.Contains(asString(v), c.Value)
	case entities.CondIsTrue:
		return present && truthy(v)
	case entities.CondIsFalse:
		return !present || !truthy(v)
	}
	return false
}

func effectAmount(r entities.PricingRule, subtotal float64, inputs RuleInputs) float64 {
	switch r.Effect {
	case entities.EffectFlat:
		return r.Amount
	case entities.EffectPercentage:
		return subtotal * r.Amount / 100
	case entities.EffectMultiplier:
		return subtotal * (r.Amount - 1)
	case entities.EffectPerUnit:
		units, ok := asNumber(inputs[r.BoundField])
		if !ok {
			return 0
		}
		return r.Amount * units
	}
	return 0
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return strings.TrimSpace(t) != ""
	case float64:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	}
	return true
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case nil:
		return ""
	}
	return ""
}

func asNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		return parseNumber(t)
	}
	return 0, false
}

func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
