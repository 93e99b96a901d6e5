// Package pricing holds the pure calculators of the billing core: the cost
// model, the margin-protected estimate pricing engine and the tenant-editable
// rule engine. Nothing in this package performs I/O.
package pricing

import (
	"fmt"
	"math"

	"fieldops_billing/internal/domain/entities"
)

// CostInputs are a tenant's raw cost assumptions, as entered on the cost
// profile screen.
type CostInputs struct {
	LaborRoles      []entities.LaborRole
	Equipment       []entities.EquipmentCost
	OverheadBuckets []entities.OverheadBucket
	Margins         entities.MarginTargets
	Utilization     float64 // 0..1
	BillableDays    float64 // per month
}

const defaultHalfDayFactor = 0.60

// CalculateOutputs derives the daily cost and minimum-revenue figures from
// raw cost assumptions. Every output is finite even for pathological inputs:
// each division is guarded, and a guard firing adds an advisory warning
// instead of producing NaN/Inf.
func CalculateOutputs(in CostInputs) entities.CalculatedOutputs {
	var out entities.CalculatedOutputs

	var crewHours float64
	for _, r := range in.LaborRoles {
		out.DailyLaborCost += r.HourlyWage * (1 + r.BurdenPercent) * r.HoursPerDay * float64(r.Headcount)
		crewHours += r.HoursPerDay * float64(r.Headcount)
	}
	out.CrewHoursPerDay = crewHours

	for _, e := range in.Equipment {
		days := e.UsableDaysPerMonth
		if days <= 0 {
			days = in.BillableDays
		}
		out.DailyEquipmentCost += safeDiv(e.MonthlyCost, days)
	}

	var monthlyOverhead float64
	for _, b := range in.OverheadBuckets {
		monthlyOverhead += b.MonthlyCost
	}
	out.DailyOverheadAllocation = safeDiv(monthlyOverhead, in.BillableDays)

	out.TotalDailyCost = out.DailyLaborCost + out.DailyEquipmentCost + out.DailyOverheadAllocation

	util := in.Utilization
	if util <= 0 || util > 1 {
		util = 1
	}
	out.AdjustedDailyCost = out.TotalDailyCost / util

	out.MinRevenuePerCrewDay = grossUp(out.AdjustedDailyCost, in.Margins.FloorPercent)
	out.TargetRevenuePerCrewDay = grossUp(out.AdjustedDailyCost, in.Margins.TargetPercent)

	factor := in.Margins.HalfDayFactor
	if factor <= 0 {
		factor = defaultHalfDayFactor
	}
	// Always derived from the crew-day minimum so the half-day ratio holds
	// by construction.
	out.MinRevenuePerHalfDay = out.MinRevenuePerCrewDay * factor

	out.BreakEvenHourlyRate = safeDiv(out.MinRevenuePerCrewDay, crewHours)
	out.TargetHourlyRate = safeDiv(out.TargetRevenuePerCrewDay, crewHours)

	out.Warnings = costWarnings(in, out)
	return out
}

// costWarnings emits advisories; none of them block saving the profile.
func costWarnings(in CostInputs, out entities.CalculatedOutputs) []string {
	var w []string
	if in.Margins.SurvivalThreshold > 0 && out.TargetRevenuePerCrewDay < in.Margins.SurvivalThreshold {
		w = append(w, fmt.Sprintf("target revenue per crew-day %.2f is below survival threshold %.2f",
			out.TargetRevenuePerCrewDay, in.Margins.SurvivalThreshold))
	}
	if in.Margins.TargetPercent < 0.15 {
		w = append(w, "target margin is below 15%")
	}
	if in.Utilization > 0 && in.Utilization < 0.60 {
		w = append(w, "utilization is below 60%")
	}
	if in.BillableDays <= 0 {
		w = append(w, "billable days per month is not set; equipment and overhead were not allocated")
	}
	if out.CrewHoursPerDay <= 0 {
		w = append(w, "no crew hours configured; hourly rates were not derived")
	}
	return w
}

// grossUp converts a cost into the revenue needed to hit the given margin:
// revenue = cost / (1 - margin). Margins at or above 100% are nonsensical and
// fall back to cost itself rather than exploding.
func grossUp(cost, margin float64) float64 {
	if margin <= 0 {
		return cost
	}
	if margin >= 1 {
		return cost
	}
	return cost / (1 - margin)
}

func safeDiv(a, b float64) float64 {
	if b == 0 || math.IsNaN(b) || math.IsInf(b, 0) {
		return 0
	}
	v := a / b
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
