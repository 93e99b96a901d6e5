package pricing

import (
	"errors"
	"math"
	"strings"

	"fieldops_billing/internal/domain/entities"
)

var (
	ErrOverrideReasonRequired = errors.New("override requires a reason")
	ErrNoCostProfile          = errors.New("cost profile has no calculated outputs")
)

// Override is an explicit, reason-justified manual price adjustment. It may
// violate the floor; the violation is flagged, never silenced.
type Override struct {
	Multiplier float64
	Reason     string
}

// PriceEstimate computes the margin-protected price for a set of work items
// against a frozen cost profile.
//
// The floor-violation flag is a protected invariant: whenever the final price
// is actually below the floor price, FloorViolation is true, override or not.
func PriceEstimate(items []entities.WorkItem, profile entities.CostProfileSnapshot, taxRate float64, ov *Override) (entities.PricingBreakdown, error) {
	outs := profile.Outputs
	if outs.DailyLaborCost == 0 && outs.DailyOverheadAllocation == 0 && outs.CrewHoursPerDay == 0 {
		return entities.PricingBreakdown{}, ErrNoCostProfile
	}
	if ov != nil && strings.TrimSpace(ov.Reason) == "" {
		return entities.PricingBreakdown{}, ErrOverrideReasonRequired
	}

	var b entities.PricingBreakdown

	var totalLaborHours float64
	equipmentSeen := map[string]bool{}
	var equipmentPerDay float64
	for _, it := range items {
		totalLaborHours += it.LaborHours
		b.MaterialCost += it.Quantity * it.UnitPrice
		for _, eqID := range it.EquipmentIDs {
			if equipmentSeen[eqID] {
				continue
			}
			equipmentSeen[eqID] = true
			equipmentPerDay += equipmentDailyCost(profile, eqID)
		}
	}

	b.LaborDays = safeDiv(totalLaborHours, outs.CrewHoursPerDay)
	b.LaborCost = b.LaborDays * outs.DailyLaborCost
	b.EquipmentCost = equipmentPerDay * math.Ceil(b.LaborDays)
	b.OverheadAllocation = b.LaborDays * outs.DailyOverheadAllocation
	b.DirectCosts = b.LaborCost + b.EquipmentCost + b.OverheadAllocation + b.MaterialCost

	b.CalculatedPrice = grossUp(b.DirectCosts, profile.Margins.TargetPercent)
	b.FloorPrice = grossUp(b.DirectCosts, profile.Margins.FloorPercent)

	b.FinalPrice = b.CalculatedPrice
	if ov != nil {
		b.IsOverride = true
		b.OverrideMultiplier = ov.Multiplier
		b.OverrideReason = ov.Reason
		b.FinalPrice = b.CalculatedPrice * ov.Multiplier
	}

	b.LaborDays = Round2(b.LaborDays)
	b.LaborCost = Round2(b.LaborCost)
	b.EquipmentCost = Round2(b.EquipmentCost)
	b.OverheadAllocation = Round2(b.OverheadAllocation)
	b.MaterialCost = Round2(b.MaterialCost)
	b.DirectCosts = Round2(b.DirectCosts)
	b.CalculatedPrice = Round2(b.CalculatedPrice)
	b.FloorPrice = Round2(b.FloorPrice)
	b.FinalPrice = Round2(b.FinalPrice)

	// Compared after rounding so the flag matches what is actually stored.
	b.FloorViolation = b.FinalPrice < b.FloorPrice

	if b.FinalPrice != 0 {
		b.MarginPercent = Round2((b.FinalPrice - b.DirectCosts) / b.FinalPrice * 100)
	}

	b.TaxRate = Round4(taxRate)
	b.TaxAmount = Round2(b.FinalPrice * b.TaxRate)
	b.Total = Round2(b.FinalPrice + b.TaxAmount)
	return b, nil
}

// equipmentDailyCost resolves one referenced unit's per-day cost from the
// profile. Unknown references cost nothing rather than failing the quote.
func equipmentDailyCost(profile entities.CostProfileSnapshot, equipmentID string) float64 {
	for _, e := range profile.Equipment {
		if e.ID != equipmentID {
			continue
		}
		days := e.UsableDaysPerMonth
		if days <= 0 {
			days = profile.BillableDays
		}
		return safeDiv(e.MonthlyCost, days)
	}
	return 0
}
