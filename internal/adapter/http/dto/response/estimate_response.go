package response

import (
	"time"

	"fieldops_billing/internal/domain/entities"
)

type EstimateResponse struct {
	ID               string                    `json:"id"`
	CompanyID        string                    `json:"company_id"`
	CustomerID       string                    `json:"customer_id"`
	Title            string                    `json:"title"`
	WorkItems        []entities.WorkItem       `json:"work_items"`
	Status           string                    `json:"status"`
	Version          int64                     `json:"version"`
	ParentEstimateID string                    `json:"parent_estimate_id,omitempty"`
	CostProfileVersion int64                   `json:"cost_profile_version"`
	Pricing          entities.PricingBreakdown `json:"pricing"`
	CreatedAt        time.Time                 `json:"created_at"`
	UpdatedAt        time.Time                 `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:               e.ID,
		CompanyID:        e.CompanyID,
		CustomerID:       e.CustomerID,
		Title:            e.Title,
		WorkItems:        e.WorkItems,
		Status:           string(e.Status),
		Version:          e.Version,
		ParentEstimateID: e.ParentEstimateID,
		CostProfileVersion: e.CostProfileVersion,
		Pricing:          e.Pricing,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

type EstimateSnapshotResponse struct {
	EstimateID      string                    `json:"estimate_id"`
	SnapshotVersion int64                     `json:"snapshot_version"`
	Trigger         string                    `json:"trigger"`
	PreviousStatus  string                    `json:"previous_status,omitempty"`
	NewStatus       string                    `json:"new_status,omitempty"`
	WorkItems       []entities.WorkItem       `json:"work_items"`
	Pricing         entities.PricingBreakdown `json:"pricing"`
	Actor           entities.Actor            `json:"actor"`
	CreatedAt       time.Time                 `json:"created_at"`
}

func FromEstimateSnapshot(s entities.EstimateSnapshot) EstimateSnapshotResponse {
	return EstimateSnapshotResponse{
		EstimateID:      s.EstimateID,
		SnapshotVersion: s.SnapshotVersion,
		Trigger:         string(s.TriggerAction),
		PreviousStatus:  string(s.PreviousStatus),
		NewStatus:       string(s.NewStatus),
		WorkItems:       s.WorkItems,
		Pricing:         s.Pricing,
		Actor:           s.Actor,
		CreatedAt:       s.CreatedAt,
	}
}

func FromEstimateSnapshots(in []entities.EstimateSnapshot) []EstimateSnapshotResponse {
	out := make([]EstimateSnapshotResponse, 0, len(in))
	for _, s := range in {
		out = append(out, FromEstimateSnapshot(s))
	}
	return out
}
