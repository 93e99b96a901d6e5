package request

import (
	"fieldops_billing/internal/domain/entities"
	"fieldops_billing/internal/domain/pricing"
)

type LaborRoleRequest struct {
	Name          string  `json:"name" binding:"required"`
	HourlyWage    float64 `json:"hourly_wage" binding:"required"`
	BurdenPercent float64 `json:"burden_percent"`
	HoursPerDay   float64 `json:"hours_per_day" binding:"required"`
	Headcount     int     `json:"headcount" binding:"required"`
}

type EquipmentCostRequest struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name" binding:"required"`
	MonthlyCost        float64 `json:"monthly_cost"`
	UsableDaysPerMonth float64 `json:"usable_days_per_month"`
}

type OverheadBucketRequest struct {
	Name        string  `json:"name" binding:"required"`
	MonthlyCost float64 `json:"monthly_cost"`
}

type MarginTargetsRequest struct {
	TargetPercent     float64 `json:"target_percent"`
	FloorPercent      float64 `json:"floor_percent"`
	HalfDayFactor     float64 `json:"half_day_factor"`
	SurvivalThreshold float64 `json:"survival_threshold"`
}

// CostProfileRequest carries the raw cost assumptions for a save or preview.
type CostProfileRequest struct {
	LaborRoles      []LaborRoleRequest      `json:"labor_roles" binding:"required"`
	Equipment       []EquipmentCostRequest  `json:"equipment"`
	OverheadBuckets []OverheadBucketRequest `json:"overhead_buckets"`
	Margins         MarginTargetsRequest    `json:"margins"`
	Utilization     float64                 `json:"utilization"`
	BillableDays    float64                 `json:"billable_days"`
}

func (r CostProfileRequest) ToCostInputs() pricing.CostInputs {
	in := pricing.CostInputs{
		Margins: entities.MarginTargets{
			TargetPercent:     r.Margins.TargetPercent,
			FloorPercent:      r.Margins.FloorPercent,
			HalfDayFactor:     r.Margins.HalfDayFactor,
			SurvivalThreshold: r.Margins.SurvivalThreshold,
		},
		Utilization:  r.Utilization,
		BillableDays: r.BillableDays,
	}
	for _, lr := range r.LaborRoles {
		in.LaborRoles = append(in.LaborRoles, entities.LaborRole{
			Name:          lr.Name,
			HourlyWage:    lr.HourlyWage,
			BurdenPercent: lr.BurdenPercent,
			HoursPerDay:   lr.HoursPerDay,
			Headcount:     lr.Headcount,
		})
	}
	for _, eq := range r.Equipment {
		in.Equipment = append(in.Equipment, entities.EquipmentCost{
			ID:                 eq.ID,
			Name:               eq.Name,
			MonthlyCost:        eq.MonthlyCost,
			UsableDaysPerMonth: eq.UsableDaysPerMonth,
		})
	}
	for _, ob := range r.OverheadBuckets {
		in.OverheadBuckets = append(in.OverheadBuckets, entities.OverheadBucket{
			Name:        ob.Name,
			MonthlyCost: ob.MonthlyCost,
		})
	}
	return in
}
