package entities

import "time"

// InvoiceStatus represents the financial document lifecycle.
//
// paid/partially_paid/refunded are payment-gated: they are only reachable
// through the payment ledger's internal transition, never via a direct
// status-change API. See lifecycle.InvoiceTransition.
type InvoiceStatus string

const (
	InvoiceStatusDraft         InvoiceStatus = "draft"
	InvoiceStatusSent          InvoiceStatus = "sent"
	InvoiceStatusViewed        InvoiceStatus = "viewed"
	InvoiceStatusPartiallyPaid InvoiceStatus = "partially_paid"
	InvoiceStatusPaid          InvoiceStatus = "paid"
	InvoiceStatusOverdue       InvoiceStatus = "overdue"
	InvoiceStatusVoided        InvoiceStatus = "voided"
	InvoiceStatusRefunded      InvoiceStatus = "refunded"
	InvoiceStatusWrittenOff    InvoiceStatus = "written_off"
	InvoiceStatusDisputed      InvoiceStatus = "disputed"
)

// InvoiceType distinguishes deposit invoices (which gate job scheduling) from
// final billing.
type InvoiceType string

const (
	InvoiceTypeDeposit InvoiceType = "deposit"
	InvoiceTypeFinal   InvoiceType = "final"
)

// Invoice is the mutable financial document.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id
//
// RowVersion is the optimistic-concurrency column: every financial write
// (payment, refund) is conditioned on the version read at validation time and
// increments it. AmountPaid + AmountDue == Total after every successful
// ledger write.
type Invoice struct {
	ID         string        `json:"id"`
	CompanyID  string        `json:"company_id"`
	CustomerID string        `json:"customer_id"`
	JobID      string        `json:"job_id,omitempty"`
	EstimateID string        `json:"estimate_id,omitempty"`
	Type       InvoiceType   `json:"type"`
	Status     InvoiceStatus `json:"status"`

	Total      float64 `json:"total"`
	AmountPaid float64 `json:"amount_paid"`
	AmountDue  float64 `json:"amount_due"`
	RowVersion int64   `json:"row_version"`

	WriteOffReason string `json:"write_off_reason,omitempty"`

	DueAt     time.Time `json:"due_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Terminal reports whether the status admits no further transitions.
func (s InvoiceStatus) Terminal() bool {
	switch s {
	case InvoiceStatusVoided, InvoiceStatusRefunded, InvoiceStatusWrittenOff:
		return true
	}
	return false
}
