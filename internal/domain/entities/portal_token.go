package entities

import "time"

// TokenPurpose is the single narrow action a portal token authorizes.
type TokenPurpose string

const (
	TokenPurposeEstimateView  TokenPurpose = "estimate_view"
	TokenPurposeEstimateAct   TokenPurpose = "estimate_act" // approve or reject, one shot
	TokenPurposeInvoiceView   TokenPurpose = "invoice_view"
	TokenPurposeContractView  TokenPurpose = "contract_view"
	TokenPurposeContractSign  TokenPurpose = "contract_sign" // one shot
	TokenPurposePlanView      TokenPurpose = "plan_view"
	TokenPurposePlanPay       TokenPurpose = "plan_pay"
)

// DocumentType names the entity a token is scoped to.
type DocumentType string

const (
	DocumentTypeEstimate    DocumentType = "estimate"
	DocumentTypeInvoice     DocumentType = "invoice"
	DocumentTypeContract    DocumentType = "contract"
	DocumentTypePaymentPlan DocumentType = "payment_plan"
)

// PortalToken grants an unauthenticated customer a document-scoped action.
//
// Storage model (DynamoDB):
//   - PK: token_hash (SHA-256 hex of the raw token)
//
// The raw 32-byte token is returned exactly once at issue time and never
// stored. UsedAt is set by a conditional write; once set the hash can never
// again authorize a one-shot action.
type PortalToken struct {
	TokenHash    string       `json:"token_hash"`
	CompanyID    string       `json:"company_id"`
	DocumentType DocumentType `json:"document_type"`
	DocumentID   string       `json:"document_id"`
	Purpose      TokenPurpose `json:"purpose"`
	OneShot      bool         `json:"one_shot"`

	ExpiresAt time.Time  `json:"expires_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// OneShotPurpose reports whether the purpose consumes the token on use.
func (p TokenPurpose) OneShotPurpose() bool {
	switch p {
	case TokenPurposeEstimateAct, TokenPurposeContractSign:
		return true
	}
	return false
}
