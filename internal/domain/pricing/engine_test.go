package pricing

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"fieldops_billing/internal/domain/entities"
)

func testProfile() entities.CostProfileSnapshot {
	in := baseInputs()
	return entities.CostProfileSnapshot{
		CompanyID:    "co-1",
		Version:      1,
		LaborRoles:   in.LaborRoles,
		Equipment:    in.Equipment,
		Margins:      in.Margins,
		Utilization:  in.Utilization,
		BillableDays: in.BillableDays,
		Outputs:      CalculateOutputs(in),
	}
}

func materialOnlyProfile() entities.CostProfileSnapshot {
	// Crew configured but no labor on the items: direct costs reduce to the
	// material sum, which makes margin arithmetic exact in tests.
	p := testProfile()
	return p
}

func TestPriceEstimate_ExampleScenario(t *testing.T) {
	// directCosts $1,000 at target 30% / floor 15%.
	p := materialOnlyProfile()
	items := []entities.WorkItem{{Description: "flat work", Quantity: 1, UnitPrice: 1000}}

	b, err := PriceEstimate(items, p, 0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.DirectCosts != 1000 {
		t.Fatalf("direct costs = %v, want 1000", b.DirectCosts)
	}
	if b.CalculatedPrice != 1428.57 {
		t.Fatalf("calculated price = %v, want 1428.57", b.CalculatedPrice)
	}
	if b.FloorPrice != 1176.47 {
		t.Fatalf("floor price = %v, want 1176.47", b.FloorPrice)
	}
	if b.FloorViolation {
		t.Fatalf("unexpected floor violation")
	}

	// Override at 0.5 pushes below the floor; the flag must fire.
	b, err = PriceEstimate(items, p, 0, &Override{Multiplier: 0.5, Reason: "repeat customer goodwill"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.FinalPrice != 714.29 {
		t.Fatalf("final price = %v, want 714.29", b.FinalPrice)
	}
	if !b.FloorViolation {
		t.Fatalf("expected floor violation")
	}
	if !b.IsOverride || b.OverrideReason != "repeat customer goodwill" {
		t.Fatalf("override not recorded verbatim: %+v", b)
	}
}

func TestPriceEstimate_OverrideRequiresReason(t *testing.T) {
	p := testProfile()
	items := []entities.WorkItem{{Quantity: 1, UnitPrice: 100}}
	_, err := PriceEstimate(items, p, 0, &Override{Multiplier: 0.9, Reason: "   "})
	if !errors.Is(err, ErrOverrideReasonRequired) {
		t.Fatalf("expected ErrOverrideReasonRequired, got %v", err)
	}
}

func TestPriceEstimate_LaborAndEquipment(t *testing.T) {
	p := testProfile()
	items := []entities.WorkItem{
		{Description: "install", Quantity: 10, UnitPrice: 45, LaborHours: 36, EquipmentIDs: []string{"truck-1"}},
	}
	b, err := PriceEstimate(items, p, 0.08, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 36h / 24 crew-hours = 1.5 labor-days
	if b.LaborDays != 1.5 {
		t.Fatalf("labor days = %v, want 1.5", b.LaborDays)
	}
	if got, want := b.LaborCost, Round2(1.5*790); got != want {
		t.Fatalf("labor cost = %v, want %v", got, want)
	}
	// equipment billed per started day: ceil(1.5) = 2 days at 100/day
	if b.EquipmentCost != 200 {
		t.Fatalf("equipment cost = %v, want 200", b.EquipmentCost)
	}
	if got, want := b.OverheadAllocation, Round2(1.5*100); got != want {
		t.Fatalf("overhead = %v, want %v", got, want)
	}
	if b.MaterialCost != 450 {
		t.Fatalf("material cost = %v, want 450", b.MaterialCost)
	}
	if b.FinalPrice < b.FloorPrice && !b.FloorViolation {
		t.Fatalf("floor invariant broken: %+v", b)
	}
}

func TestPriceEstimate_TaxArithmetic(t *testing.T) {
	p := testProfile()
	items := []entities.WorkItem{{Quantity: 3, UnitPrice: 199.99, LaborHours: 5}}
	for rate := 0.0; rate <= 0.15+1e-9; rate += 0.0125 {
		b, err := PriceEstimate(items, p, rate, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, want := b.TaxAmount, Round2(b.FinalPrice*b.TaxRate); math.Abs(got-want) > 0.01 {
			t.Fatalf("rate %v: tax = %v, want %v", rate, got, want)
		}
		if math.Abs(b.FinalPrice+b.TaxAmount-b.Total) > 0.01 {
			t.Fatalf("rate %v: subtotal+tax=%v total=%v", rate, b.FinalPrice+b.TaxAmount, b.Total)
		}
	}
}

// Property: either finalPrice >= floorPrice or floorViolation is set — never
// neither, across randomized profiles, items and overrides.
func TestPriceEstimate_FloorInvariantProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		in := baseInputs()
		in.Margins.TargetPercent = rng.Float64() * 0.6
		in.Margins.FloorPercent = rng.Float64() * in.Margins.TargetPercent
		p := testProfile()
		p.Margins = in.Margins
		p.Outputs = CalculateOutputs(in)

		items := []entities.WorkItem{{
			Quantity:   rng.Float64() * 20,
			UnitPrice:  rng.Float64() * 500,
			LaborHours: rng.Float64() * 100,
		}}
		var ov *Override
		if rng.Intn(2) == 0 {
			ov = &Override{Multiplier: 0.3 + rng.Float64(), Reason: "test override"}
		}
		b, err := PriceEstimate(items, p, 0.07, ov)
		if err != nil {
			t.Fatalf("iteration %d: %v", i, err)
		}
		if b.FinalPrice < b.FloorPrice && !b.FloorViolation {
			t.Fatalf("iteration %d: final %v < floor %v but no violation flag", i, b.FinalPrice, b.FloorPrice)
		}
		if ov == nil && b.IsOverride {
			t.Fatalf("iteration %d: override flag without override", i)
		}
		if ov != nil && !b.IsOverride {
			t.Fatalf("iteration %d: override not flagged", i)
		}
	}
}

// Property: increasing quantity or labor hours never decreases the final
// price.
func TestPriceEstimate_Monotonicity(t *testing.T) {
	p := testProfile()
	prev := 0.0
	for q := 1.0; q <= 20; q++ {
		b, err := PriceEstimate([]entities.WorkItem{{Quantity: q, UnitPrice: 50, LaborHours: q * 2}}, p, 0, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.FinalPrice < prev {
			t.Fatalf("q=%v: final price %v decreased from %v", q, b.FinalPrice, prev)
		}
		prev = b.FinalPrice
	}
}
