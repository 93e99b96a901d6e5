package response

import (
	"time"

	"fieldops_billing/internal/domain/entities"
)

type ContractResponse struct {
	ID                      string `json:"id"`
	CompanyID               string `json:"company_id"`
	CustomerID              string `json:"customer_id"`
	EstimateID              string `json:"estimate_id"`
	EstimateSnapshotVersion int64  `json:"estimate_snapshot_version"`
	Status                  string `json:"status"`

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

func FromContract(c entities.Contract) ContractResponse {
	return ContractResponse{
		ID:                      c.ID,
		CompanyID:               c.CompanyID,
		CustomerID:              c.CustomerID,
		EstimateID:              c.EstimateID,
		EstimateSnapshotVersion: c.EstimateSnapshotVersion,
		Status:                  string(c.Status),
		HeaderContent:           c.HeaderContent,
		WorkItemsContent:        c.WorkItemsContent,
		TermsContent:            c.TermsContent,
		FooterContent:           c.FooterContent,
		SignedByName:            c.SignedByName,
		SignedAt:                c.SignedAt,
		LockedAt:                c.LockedAt,
		CreatedAt:               c.CreatedAt,
		UpdatedAt:               c.UpdatedAt,
	}
}
