package handlers

import (
	"net/http"

	request "fieldops_billing/internal/adapter/http/dto/request"
	response "fieldops_billing/internal/adapter/http/dto/response"
	"fieldops_billing/internal/domain/entities"
	"fieldops_billing/internal/usecase"
	"fieldops_billing/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// JobHandler exposes the billing-side job gates: scheduling is blocked on
// unpaid deposits, closing on open invoices.

type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

// TransitionJob moves a job to scheduled or closed; both targets re-run
// their gate.
//
// @Summary  Transition job status
// @Tags     jobs
// @Accept   json
// @Produce  json
// @Param    X-Company-ID  header  string                    true  "Tenant"
// @Param    id            path    string                    true  "Job ID"
// @Param    payload       body    request.JobStatusRequest  true  "Target status"
// @Success  200  {object}  response.JobResponse
// @Router   /jobs/{id}/status [patch]
func (h *JobHandler) TransitionJob(c *gin.Context) {
	cid, ok2 := companyID(c)
	if !ok2 {
		return
	}
	var payload request.JobStatusRequest
	if !bindJSON(c, &payload) {
		return
	}

	var (
		job entities.Job
		err error
	)
	switch entities.JobStatus(payload.To) {
	case entities.JobStatusScheduled:
		job, err = h.usecase.Schedule(c.Request.Context(), cid, c.Param("id"), userActor(c))
	case entities.JobStatusClosed:
		job, err = h.usecase.Close(c.Request.Context(), cid, c.Param("id"), userActor(c))
	default:
		renderAppError(c, apperror.Validation("UNSUPPORTED_JOB_TRANSITION",
			"Only scheduled and closed are managed here"))
		return
	}
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, response.FromJob(job))
}

// CheckSchedule reports whether the deposit gate would allow scheduling.
//
// @Summary  Check job scheduling gate
// @Tags     jobs
// @Produce  json
// @Param    X-Company-ID  header  string  true  "Tenant"
// @Param    id            path    string  true  "Job ID"
// @Success  204
// @Router   /jobs/{id}/can-schedule [get]
func (h *JobHandler) CheckSchedule(c *gin.Context) {
	cid, ok2 := companyID(c)
	if !ok2 {
		return
	}
	if err := h.usecase.CanSchedule(c.Request.Context(), cid, c.Param("id")); err != nil {
		renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CheckClose reports whether open invoices block closing; the failure lists
// them.
//
// @Summary  Check job closing gate
// @Tags     jobs
// @Produce  json
// @Param    X-Company-ID  header  string  true  "Tenant"
// @Param    id            path    string  true  "Job ID"
// @Success  204
// @Router   /jobs/{id}/can-close [get]
func (h *JobHandler) CheckClose(c *gin.Context) {
	cid, ok2 := companyID(c)
	if !ok2 {
		return
	}
	if err := h.usecase.CanClose(c.Request.Context(), cid, c.Param("id")); err != nil {
		renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AssignCrew books a crew onto the job; the deposit gate runs first.
//
// @Summary  Assign crew to job
// @Tags     jobs
// @Accept   json
// @Produce  json
// @Param    X-Company-ID  header  string                         true  "Tenant"
// @Param    id            path    string                         true  "Job ID"
// @Param    payload       body    request.CrewAssignmentRequest  true  "Booking window"
// @Success  201  {object}  response.CrewAssignmentResponse
// @Router   /jobs/{id}/crew-assignments [post]
func (h *JobHandler) AssignCrew(c *gin.Context) {
	cid, ok2 := companyID(c)
	if !ok2 {
		return
	}
	var payload request.CrewAssignmentRequest
	if !bindJSON(c, &payload) {
		return
	}

	a, err := h.usecase.AssignCrew(c.Request.Context(), cid, c.Param("id"),
		payload.CrewID, payload.StartsAt, payload.EndsAt, userActor(c))
	if err != nil {
		renderError(c, err)
		return
	}
	created(c, response.FromCrewAssignment(a))
}

// ReserveEquipment books an equipment unit onto the job; the deposit gate
// runs first.
//
// @Summary  Reserve equipment for job
// @Tags     jobs
// @Accept   json
// @Produce  json
// @Param    X-Company-ID  header  string                               true  "Tenant"
// @Param    id            path    string                               true  "Job ID"
// @Param    payload       body    request.EquipmentReservationRequest  true  "Booking window"
// @Success  201  {object}  response.EquipmentReservationResponse
// @Router   /jobs/{id}/equipment-reservations [post]
func (h *JobHandler) ReserveEquipment(c *gin.Context) {
	cid, ok2 := companyID(c)
	if !ok2 {
		return
	}
	var payload request.EquipmentReservationRequest
	if !bindJSON(c, &payload) {
		return
	}

	r, err := h.usecase.ReserveEquipment(c.Request.Context(), cid, c.Param("id"),
		payload.EquipmentID, payload.StartsAt, payload.EndsAt, userActor(c))
	if err != nil {
		renderError(c, err)
		return
	}
	created(c, response.FromEquipmentReservation(r))
}
