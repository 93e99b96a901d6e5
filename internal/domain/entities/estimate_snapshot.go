package entities

import "time"

// TriggerAction names the lifecycle event that produced a snapshot.
type TriggerAction string

const (
	TriggerSend        TriggerAction = "send"
	TriggerApprove     TriggerAction = "approve"
	TriggerReject      TriggerAction = "reject"
	TriggerChangeOrder TriggerAction = "change_order"
	TriggerSupersede   TriggerAction = "supersede"
	TriggerFinalize    TriggerAction = "finalize"
)

// Actor identifies who caused a state change: an internal user or an external
// customer acting through a portal link.
type Actor struct {
	Type      string `json:"type"` // "user" | "customer" | "system"
	ID        string `json:"id,omitempty"`
	IPAddress string `json:"ip_address,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
}

// EstimateSnapshot is the system of record for "what was actually priced
// when". One row per pricing-affecting event; never updated or deleted.
//
// Storage model (DynamoDB):
//   - PK: estimate_id
//   - SK: snapshot_version (1..n, strictly increasing, never reused)
type EstimateSnapshot struct {
	EstimateID      string        `json:"estimate_id"`
	SnapshotVersion int64         `json:"snapshot_version"`
	CompanyID       string        `json:"company_id"`
	TriggerAction   TriggerAction `json:"trigger_action"`

	WorkItems      []WorkItem       `json:"work_items"`
	Pricing        PricingBreakdown `json:"pricing"`
	PreviousStatus EstimateStatus   `json:"previous_status"`
	NewStatus      EstimateStatus   `json:"new_status"`

	Actor     Actor     `json:"actor"`
	CreatedAt time.Time `json:"created_at"`
}
