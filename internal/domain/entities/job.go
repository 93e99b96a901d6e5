package entities

import "time"

// JobStatus is the slice of the job lifecycle the billing core cares about:
// scheduling is deposit-gated and closing is blocked by unpaid invoices.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusScheduled JobStatus = "scheduled"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted JobStatus = "completed"
	JobStatusClosed    JobStatus = "closed"
)

// Job is owned by the external scheduling subsystem; the billing core reads
// and gates it but does not manage its full lifecycle.
//
// Storage model (DynamoDB):
//   - PK: id
type Job struct {
	ID         string    `json:"id"`
	CompanyID  string    `json:"company_id"`
	CustomerID string    `json:"customer_id"`
	EstimateID string    `json:"estimate_id,omitempty"`
	Status     JobStatus `json:"status"`
	// DepositRequired mirrors the tenant's deposit policy at job creation.
	DepositRequired bool `json:"deposit_required"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CrewAssignment and EquipmentReservation are the two assignment paths that
// can implicitly schedule a job; both re-run the deposit gate independently.
type CrewAssignment struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	JobID     string    `json:"job_id"`
	CrewID    string    `json:"crew_id"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	CreatedAt time.Time `json:"created_at"`
}

type EquipmentReservation struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	JobID       string    `json:"job_id"`
	EquipmentID string    `json:"equipment_id"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	CreatedAt   time.Time `json:"created_at"`
}
