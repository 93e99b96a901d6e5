package request

import (
	"fieldops_billing/internal/domain/entities"
	"fieldops_billing/internal/domain/pricing"
	"fieldops_billing/internal/usecase"
)

type WorkItemRequest struct {
	ID           string   `json:"id"`
	Description  string   `json:"description" binding:"required"`
	Quantity     float64  `json:"quantity"`
	UnitPrice    float64  `json:"unit_price"`
	LaborHours   float64  `json:"labor_hours"`
	EquipmentIDs []string `json:"equipment_ids"`
}

type OverrideRequest struct {
	Multiplier float64 `json:"multiplier" binding:"required"`
	Reason     string  `json:"reason"`
}

// EstimateCreateRequest opens a new draft quote.
type EstimateCreateRequest struct {
	CustomerID string            `json:"customer_id" binding:"required"`
	Title      string            `json:"title"`
	WorkItems  []WorkItemRequest `json:"work_items" binding:"required"`
	Override   *OverrideRequest  `json:"override"`
}

// EstimatePatchRequest updates a draft. nil fields are left untouched;
// sending work_items triggers a full reprice.
type EstimatePatchRequest struct {
	Title      *string            `json:"title"`
	CustomerID *string            `json:"customer_id"`
	WorkItems  *[]WorkItemRequest `json:"work_items"`
	Override   *OverrideRequest   `json:"override"`
}

// ChangeOrderRequest creates a child estimate superseding its parent.
type ChangeOrderRequest struct {
	WorkItems []WorkItemRequest `json:"work_items" binding:"required"`
	Override  *OverrideRequest  `json:"override"`
}

func ToWorkItems(items []WorkItemRequest) []entities.WorkItem {
	out := make([]entities.WorkItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.WorkItem{
			ID:           it.ID,
			Description:  it.Description,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			LaborHours:   it.LaborHours,
			EquipmentIDs: it.EquipmentIDs,
		})
	}
	return out
}

func ToOverride(r *OverrideRequest) *pricing.Override {
	if r == nil {
		return nil
	}
	return &pricing.Override{Multiplier: r.Multiplier, Reason: r.Reason}
}

func (r EstimatePatchRequest) ToPatch() usecase.EstimatePatch {
	patch := usecase.EstimatePatch{
		Title:      r.Title,
		CustomerID: r.CustomerID,
		Override:   ToOverride(r.Override),
	}
	if r.WorkItems != nil {
		items := ToWorkItems(*r.WorkItems)
		patch.WorkItems = &items
	}
	return patch
}
