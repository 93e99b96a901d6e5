package entities

import "time"

// ContractStatus represents the legal document lifecycle. signed, voided and
// expired are terminal; re-sending is blocked for all three.
type ContractStatus string

const (
	ContractStatusDraft   ContractStatus = "draft"
	ContractStatusSent    ContractStatus = "sent"
	ContractStatusSigned  ContractStatus = "signed"
	ContractStatusVoided  ContractStatus = "voided"
	ContractStatusExpired ContractStatus = "expired"
)

// Contract is mutable until signed. Once LockedAt is set all content fields
// are immutable and must match the SignedContractSnapshot taken at lock time.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (company_id-index): company_id
type Contract struct {
	ID         string         `json:"id"`
	CompanyID  string         `json:"company_id"`
	CustomerID string         `json:"customer_id"`
	EstimateID string         `json:"estimate_id"`
	// Snapshot version of the estimate the contract was generated from.
	EstimateSnapshotVersion int64 `json:"estimate_snapshot_version"`

	Status ContractStatus `json:"status"`

	HeaderContent    string `json:"header_content"`
	WorkItemsContent string `json:"work_items_content"`
	TermsContent     string `json:"terms_content"`
	FooterContent    string `json:"footer_content"`

	SignedByName string     `json:"signed_by_name,omitempty"`
	SignedAt     *time.Time `json:"signed_at,omitempty"`
	LockedAt     *time.Time `json:"locked_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SignedContractSnapshot is the durable legal record, written at the instant
// of signing and before the Contract row itself is updated. If the contract
// update fails after the snapshot succeeds, that is a detectable anomaly; the
// reverse order would lose the legal record and is not allowed.
//
// Storage model (DynamoDB):
//   - PK: contract_id (one snapshot per contract)
type SignedContractSnapshot struct {
	ContractID string `json:"contract_id"`
	CompanyID  string `json:"company_id"`

	HeaderContent    string `json:"header_content"`
	WorkItemsContent string `json:"work_items_content"`
	TermsContent     string `json:"terms_content"`
	FooterContent    string `json:"footer_content"`

	SignedByName string    `json:"signed_by_name"`
	Signer       Actor     `json:"signer"`
	SignedAt     time.Time `json:"signed_at"`
}
