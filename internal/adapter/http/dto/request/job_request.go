package request

import "time"

// JobStatusRequest moves a job along its lifecycle; the deposit gate is
// re-checked for scheduled and closed targets.
type JobStatusRequest struct {
	To string `json:"to" binding:"required"`
}

// CrewAssignmentRequest books a crew onto a job for a time window.
type CrewAssignmentRequest struct {
	CrewID   string    `json:"crew_id" binding:"required"`
	StartsAt time.Time `json:"starts_at" binding:"required"`
	EndsAt   time.Time `json:"ends_at" binding:"required"`
}

// EquipmentReservationRequest books an equipment unit onto a job.
type EquipmentReservationRequest struct {
	EquipmentID string    `json:"equipment_id" binding:"required"`
	StartsAt    time.Time `json:"starts_at" binding:"required"`
	EndsAt      time.Time `json:"ends_at" binding:"required"`
}
