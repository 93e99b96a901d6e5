package pricing

import (
	"math"
	"math/rand"
	"testing"

	"fieldops_billing/internal/domain/entities"
)

func testRules() []entities.PricingRule {
	return []entities.PricingRule{
		{
			ID: "r-weekend", Name: "Weekend surcharge", SortOrder: 1,
			Condition: &entities.RuleCondition{Kind: entities.CondIsTrue, Field: "weekend"},
			Effect:    entities.EffectPercentage, Amount: 15,
		},
		{
			ID: "r-stairs", Name: "Stair carry", SortOrder: 2, BoundField: "flights",
			Effect: entities.EffectPerUnit, Amount: 40,
		},
		{
			ID: "r-senior", Name: "Senior discount", SortOrder: 3,
			Condition: &entities.RuleCondition{Kind: entities.CondEquals, Field: "customer_type", Value: "senior"},
			Effect:    entities.EffectFlat, Amount: -50,
		},
		{
			ID: "r-rush", Name: "Rush multiplier", SortOrder: 4,
			Condition: &entities.RuleCondition{Kind: entities.CondLessThan, Field: "lead_days", Value: "3"},
			Effect:    entities.EffectMultiplier, Amount: 1.25,
		},
	}
}

func testPricingProfile() entities.PricingProfile {
	return entities.PricingProfile{
		CompanyID:          "co-1",
		TaxPercent:         0.08,
		DepositPercent:     0.25,
		CommissionPercent:  0.10,
		EstimatedCostRatio: 0.60,
	}
}

func TestApplyRules(t *testing.T) {
	inputs := RuleInputs{
		"weekend":       true,
		"flights":       3.0,
		"customer_type": "senior",
		"lead_days":     2.0,
	}
	res := ApplyRules(1000, testRules(), inputs, testPricingProfile())

	// 15% of 1000 + 3*40 + (-50) + 0.25*1000 = 150 + 120 - 50 + 250 = 470
	if res.AdjustmentsTotal != 470 {
		t.Fatalf("adjustments total = %v, want 470", res.AdjustmentsTotal)
	}
	if res.AdjustedSubtotal != 1470 {
		t.Fatalf("adjusted subtotal = %v, want 1470", res.AdjustedSubtotal)
	}
	if got, want := res.TaxAmount, Round2(1470*0.08); got != want {
		t.Fatalf("tax = %v, want %v", got, want)
	}
	if got, want := res.DepositAmount, Round2(1470*0.25); got != want {
		t.Fatalf("deposit = %v, want %v", got, want)
	}
	if got, want := res.Total, Round2(1470+res.TaxAmount); got != want {
		t.Fatalf("total = %v, want %v", got, want)
	}
	if len(res.Adjustments) != 4 {
		t.Fatalf("expected 4 adjustment lines, got %d", len(res.Adjustments))
	}
}

func TestApplyRules_NoMatches(t *testing.T) {
	res := ApplyRules(500, testRules(), RuleInputs{"lead_days": 10.0}, testPricingProfile())
	if res.AdjustmentsTotal != 0 || res.AdjustedSubtotal != 500 {
		t.Fatalf("expected no adjustments, got %+v", res)
	}
}

func TestApplyRules_UnboundRuleAlwaysApplies(t *testing.T) {
	rules := []entities.PricingRule{{ID: "r-fee", Name: "Service fee", Effect: entities.EffectFlat, Amount: 25}}
	res := ApplyRules(100, rules, nil, entities.PricingProfile{})
	if res.AdjustmentsTotal != 25 {
		t.Fatalf("unbound rule did not apply: %+v", res)
	}
}

func TestEvalCondition_AllOperators(t *testing.T) {
	inputs := RuleInputs{
		"zip":    "97205-1234",
		"crew":   4.0,
		"rural":  false,
		"urgent": true,
	}
	cases := []struct {
		name string
		cond entities.RuleCondition
		want bool
	}{
		{"equals hit", entities.RuleCondition{Kind: entities.CondEquals, Field: "zip", Value: "97205-1234"}, true},
		{"equals miss", entities.RuleCondition{Kind: entities.CondEquals, Field: "zip", Value: "97006"}, false},
		{"notEquals", entities.RuleCondition{Kind: entities.CondNotEquals, Field: "zip", Value: "97006"}, true},
		{"notEquals absent field", entities.RuleCondition{Kind: entities.CondNotEquals, Field: "missing", Value: "x"}, true},
		{"greaterThan", entities.RuleCondition{Kind: entities.CondGreaterThan, Field: "crew", Value: "3"}, true},
		{"greaterThan equal is false", entities.RuleCondition{Kind: entities.CondGreaterThan, Field: "crew", Value: "4"}, false},
		{"lessThan", entities.RuleCondition{Kind: entities.CondLessThan, Field: "crew", Value: "10"}, true},
		{"contains", entities.RuleCondition{Kind: entities.CondContains, Field: "zip", Value: "97205"}, true},
		{"isTrue", entities.RuleCondition{Kind: entities.CondIsTrue, Field: "urgent"}, true},
		{"isTrue on false", entities.RuleCondition{Kind: entities.CondIsTrue, Field: "rural"}, false},
		{"isFalse", entities.RuleCondition{Kind: entities.CondIsFalse, Field: "rural"}, true},
		{"isFalse absent field", entities.RuleCondition{Kind: entities.CondIsFalse, Field: "missing"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := evalCondition(tc.cond, inputs); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

// Regression property: when rules do not interact, the total is independent
// of evaluation order.
func TestApplyRules_OrderIndependentTotal(t *testing.T) {
	rules := testRules()
	inputs := RuleInputs{"weekend": true, "flights": 2.0, "customer_type": "senior", "lead_days": 1.0}
	profile := testPricingProfile()

	base := ApplyRules(1000, rules, inputs, profile)

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 20; i++ {
		shuffled := make([]entities.PricingRule, len(rules))
		copy(shuffled, rules)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		// Randomize stored order too; only the relative totals must agree.
		for j := range shuffled {
			shuffled[j].SortOrder = int64(j)
		}
		got := ApplyRules(1000, shuffled, inputs, profile)
		if math.Abs(got.AdjustmentsTotal-base.AdjustmentsTotal) > 1e-9 {
			t.Fatalf("iteration %d: total %v differs from %v", i, got.AdjustmentsTotal, base.AdjustmentsTotal)
		}
	}
}
