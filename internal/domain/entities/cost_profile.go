package entities

import "time"

// CostProfileSnapshot is a tenant's cost model, frozen at save time.
//
// Storage model (DynamoDB):
//   - PK: company_id
//   - SK: version (monotonic per tenant)
//
// Rows are immutable: saving the cost profile always writes version+1 and the
// previous row is kept forever. CalculatedOutputs are computed once at save
// time and stored alongside the inputs, so later pricing reads never re-derive
// them from possibly-changed code.
type CostProfileSnapshot struct {
	CompanyID string    `json:"company_id"`
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by"`

	LaborRoles      []LaborRole       `json:"labor_roles"`
	Equipment       []EquipmentCost   `json:"equipment"`
	OverheadBuckets []OverheadBucket  `json:"overhead_buckets"`
	Margins         MarginTargets     `json:"margins"`
	Utilization     float64           `json:"utilization"`       // 0..1 fraction of paid time that is billable
	BillableDays    float64           `json:"billable_days"`     // billable days per month

	Outputs CalculatedOutputs `json:"calculated_outputs"`
}

type LaborRole struct {
	Name          string  `json:"name"`
	HourlyWage    float64 `json:"hourly_wage"`
	BurdenPercent float64 `json:"burden_percent"` // 0..1 loading on top of wage
	HoursPerDay   float64 `json:"hours_per_day"`
	Headcount     int     `json:"headcount"`
}

type EquipmentCost struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	MonthlyCost float64 `json:"monthly_cost"`
	// Workdays per month the unit is actually usable; falls back to the
	// profile's BillableDays when zero.
	UsableDaysPerMonth float64 `json:"usable_days_per_month"`
}

type OverheadBucket struct {
	Name        string  `json:"name"`
	MonthlyCost float64 `json:"monthly_cost"`
}

type MarginTargets struct {
	TargetPercent     float64 `json:"target_percent"` // 0..1
	FloorPercent      float64 `json:"floor_percent"`  // 0..1
	HalfDayFactor     float64 `json:"half_day_factor"`
	SurvivalThreshold float64 `json:"survival_threshold"` // minimum viable revenue per crew-day
}

// CalculatedOutputs are the derived figures the pricing engine consumes.
type CalculatedOutputs struct {
	DailyLaborCost          float64  `json:"daily_labor_cost"`
	DailyEquipmentCost      float64  `json:"daily_equipment_cost"`
	DailyOverheadAllocation float64  `json:"daily_overhead_allocation"`
	TotalDailyCost          float64  `json:"total_daily_cost"`
	AdjustedDailyCost       float64  `json:"adjusted_daily_cost"` // utilization-adjusted
	MinRevenuePerCrewDay    float64  `json:"min_revenue_per_crew_day"`
	TargetRevenuePerCrewDay float64  `json:"target_revenue_per_crew_day"`
	MinRevenuePerHalfDay    float64  `json:"min_revenue_per_half_day"`
	CrewHoursPerDay         float64  `json:"crew_hours_per_day"`
	BreakEvenHourlyRate     float64  `json:"break_even_hourly_rate"`
	TargetHourlyRate        float64  `json:"target_hourly_rate"`
	Warnings                []string `json:"warnings,omitempty"`
}
