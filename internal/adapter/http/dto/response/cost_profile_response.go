package response

import (
	"time"

	"fieldops_billing/internal/domain/entities"
)

type CostProfileResponse struct {
	CompanyID string    `json:"company_id"`
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by"`

	LaborRoles      []entities.LaborRole      `json:"labor_roles"`
	Equipment       []entities.EquipmentCost  `json:"equipment"`
	OverheadBuckets []entities.OverheadBucket `json:"overhead_buckets"`
	Margins         entities.MarginTargets    `json:"margins"`
	Utilization     float64                   `json:"utilization"`
	BillableDays    float64                   `json:"billable_days"`

	Outputs entities.CalculatedOutputs `json:"calculated_outputs"`
}

func FromCostProfile(s entities.CostProfileSnapshot) CostProfileResponse {
	return CostProfileResponse{
		CompanyID:       s.CompanyID,
		Version:         s.Version,
		CreatedAt:       s.CreatedAt,
		CreatedBy:       s.CreatedBy,
		LaborRoles:      s.LaborRoles,
		Equipment:       s.Equipment,
		OverheadBuckets: s.OverheadBuckets,
		Margins:         s.Margins,
		Utilization:     s.Utilization,
		BillableDays:    s.BillableDays,
		Outputs:         s.Outputs,
	}
}
