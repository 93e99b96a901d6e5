package entities

import "time"

// AuditLogEntry is one append-only row per state-changing action anywhere in
// the billing core, including rejected attempts. Never updated or deleted.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (entity-index): entity_type#entity_id
type AuditLogEntry struct {
	ID         string `json:"id"`
	CompanyID  string `json:"company_id"`
	EntityType string `json:"entity_type"` // estimate, invoice, contract, token, job, payment
	EntityID   string `json:"entity_id"`
	// LinkedEntryID pairs the two sides of a change order (change_order row
	// on the child, supersede row on the parent) so either can be traced to
	// the other.
	LinkedEntryID string `json:"linked_entry_id,omitempty"`

	Action        string `json:"action"`
	PreviousState string `json:"previous_state,omitempty"`
	NewState      string `json:"new_state,omitempty"`
	Reason        string `json:"reason,omitempty"`
	Denied        bool   `json:"denied,omitempty"`

	Actor     Actor     `json:"actor"`
	CreatedAt time.Time `json:"created_at"`
}
