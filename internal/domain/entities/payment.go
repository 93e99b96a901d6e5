package entities

import (
	"encoding/json"
	"time"
)

// PaymentMethod records how money moved.
type PaymentMethod string

const (
	PaymentMethodCash    PaymentMethod = "cash"
	PaymentMethodCheck   PaymentMethod = "check"
	PaymentMethodCard    PaymentMethod = "card"
	PaymentMethodGateway PaymentMethod = "gateway"
)

// Payment is an append-only ledger row against an invoice. Positive amount is
// a payment, negative amount is a refund. Rows are never updated or deleted;
// the invoice's balance and status are re-derived from the ledger.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (invoice_id-index): invoice_id
//
// Gateway payments keep the provider's original response body
// (ProviderPayloadRaw) for traceability/audit.
type Payment struct {
	ID         string        `json:"id"`
	InvoiceID  string        `json:"invoice_id"`
	CompanyID  string        `json:"company_id"`
	Amount     float64       `json:"amount"`
	Method     PaymentMethod `json:"method"`
	RecordedBy string        `json:"recorded_by"`
	Note       string        `json:"note,omitempty"`

	ProviderPaymentID  string          `json:"provider_payment_id,omitempty"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
