package entities

import "time"

// EstimateStatus represents the lifecycle of a price quote.
//
// Domain notes:
//   - The billing-service is the source of truth for estimate/payment state.
//   - Transitions are guarded by the lifecycle package; repositories never
//     write a status the guard did not allow.
type EstimateStatus string

const (
	EstimateStatusDraft      EstimateStatus = "draft"
	EstimateStatusSent       EstimateStatus = "sent"
	EstimateStatusApproved   EstimateStatus = "approved"
	EstimateStatusRejected   EstimateStatus = "rejected"
	EstimateStatusSuperseded EstimateStatus = "superseded"
)

// WorkItem is a priced line on an estimate.
type WorkItem struct {
	ID           string   `json:"id"`
	Description  string   `json:"description"`
	Quantity     float64  `json:"quantity"`
	UnitPrice    float64  `json:"unit_price"`
	LaborHours   float64  `json:"labor_hours"`
	EquipmentIDs []string `json:"equipment_ids,omitempty"`
}

// Estimate is the mutable quote header.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (company_id-index): company_id
//
// Pricing lives in the latest EstimateSnapshot; the header carries a copy of
// the last PricingBreakdown for display. Version/ParentEstimateID form the
// change-order lineage: a change order is a new Estimate row with
// version = parent.version + 1, and the parent transitions to superseded.
type Estimate struct {
	ID               string         `json:"id"`
	CompanyID        string         `json:"company_id"`
	CustomerID       string         `json:"customer_id"`
	Title            string         `json:"title"`
	WorkItems        []WorkItem     `json:"work_items"`
	Status           EstimateStatus `json:"status"`
	Version          int64          `json:"version"`
	ParentEstimateID string         `json:"parent_estimate_id,omitempty"`

	CostProfileVersion int64            `json:"cost_profile_version"`
	Pricing            PricingBreakdown `json:"pricing"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PricingBreakdown is the margin-protected pricing result attached to an
// estimate and frozen into every snapshot.
type PricingBreakdown struct {
	LaborDays          float64 `json:"labor_days"`
	LaborCost          float64 `json:"labor_cost"`
	EquipmentCost      float64 `json:"equipment_cost"`
	OverheadAllocation float64 `json:"overhead_allocation"`
	MaterialCost       float64 `json:"material_cost"`
	DirectCosts        float64 `json:"direct_costs"`

	CalculatedPrice float64 `json:"calculated_price"`
	FloorPrice      float64 `json:"floor_price"`
	FinalPrice      float64 `json:"final_price"`

	IsOverride         bool    `json:"is_override"`
	OverrideMultiplier float64 `json:"override_multiplier,omitempty"`
	OverrideReason     string  `json:"override_reason,omitempty"`
	FloorViolation     bool    `json:"floor_violation"`

	MarginPercent float64 `json:"margin_percent"`
	TaxRate       float64 `json:"tax_rate"` // stored at 4 decimals
	TaxAmount     float64 `json:"tax_amount"`
	Total         float64 `json:"total"`
}
