package response

import (
	"time"

	"fieldops_billing/internal/domain/entities"
)

type JobResponse struct {
	ID              string    `json:"id"`
	CompanyID       string    `json:"company_id"`
	CustomerID      string    `json:"customer_id"`
	EstimateID      string    `json:"estimate_id,omitempty"`
	Status          string    `json:"status"`
	DepositRequired bool      `json:"deposit_required"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromJob(j entities.Job) JobResponse {
	return JobResponse{
		ID:              j.ID,
		CompanyID:       j.CompanyID,
		CustomerID:      j.CustomerID,
		EstimateID:      j.EstimateID,
		Status:          string(j.Status),
		DepositRequired: j.DepositRequired,
		CreatedAt:       j.CreatedAt,
		UpdatedAt:       j.UpdatedAt,
	}
}

type CrewAssignmentResponse struct {
	ID        string    `json:"id"`
	JobID     string    `json:"job_id"`
	CrewID    string    `json:"crew_id"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	CreatedAt time.Time `json:"created_at"`
}

func FromCrewAssignment(a entities.CrewAssignment) CrewAssignmentResponse {
	return CrewAssignmentResponse{
		ID:        a.ID,
		JobID:     a.JobID,
		CrewID:    a.CrewID,
		StartsAt:  a.StartsAt,
		EndsAt:    a.EndsAt,
		CreatedAt: a.CreatedAt,
	}
}

type EquipmentReservationResponse struct {
	ID          string    `json:"id"`
	JobID       string    `json:"job_id"`
	EquipmentID string    `json:"equipment_id"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromEquipmentReservation(r entities.EquipmentReservation) EquipmentReservationResponse {
	return EquipmentReservationResponse{
		ID:          r.ID,
		JobID:       r.JobID,
		EquipmentID: r.EquipmentID,
		StartsAt:    r.StartsAt,
		EndsAt:      r.EndsAt,
		CreatedAt:   r.CreatedAt,
	}
}
