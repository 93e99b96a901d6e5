package handlers

import (
	"context"

	request "fieldops_billing/internal/adapter/http/dto/request"
	response "fieldops_billing/internal/adapter/http/dto/response"
	"fieldops_billing/internal/domain/entities"
	"fieldops_billing/internal/usecase"

	"github.com/gin-gonic/gin"
)

// EstimateHandler exposes the quote lifecycle: draft, patch, send, change
// orders, snapshot history.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// CreateEstimate opens a new draft quote priced against the latest cost
// profile.
//
// @Summary  Create estimate draft
// @Tags     estimates
// @Accept   json
// @Produce  json
// @Param    X-Company-ID  header  string                         true  "Tenant"
// @Param    payload       body    request.EstimateCreateRequest  true  "Draft"
// @Success  201  {object}  response.EstimateResponse
// @Router   /estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	cid, ok2 := companyID(c)
	if !ok2 {
		return
	}
	var payload request.EstimateCreateRequest
	if !bindJSON(c, &payload) {
		return
	}

	est, err := h.usecase.CreateDraft(c.Request.Context(), cid, c.GetHeader(headerUserID),
		payload.CustomerID, payload.Title, request.ToWorkItems(payload.WorkItems), request.ToOverride(payload.Override))
	if err != nil {
		renderError(c, err)
		return
	}
	created(c, response.FromEstimate(est))
}

// GetEstimate returns one estimate scoped to the tenant.
//
// @Summary  Get estimate
// @Tags     estimates
// @Produce  json
// @Param    X-Company-ID  header  string  true  "Tenant"
// @Param    id            path    string  true  "Estimate ID"
// @Success  200  {object}  response.EstimateResponse
// @Router   /estimates/{id} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	cid, ok2 := companyID(c)
	if !ok2 {
		return
	}
	est, err := h.usecase.GetByID(c.Request.Context(), cid, c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, response.FromEstimate(est))
}

// PatchEstimate edits a draft; sending work_items reprices it.
//
// @Summary  Patch estimate draft
// @Tags     estimates
// @Accept   json
// @Produce  json
// @Param    X-Company-ID  header  string                        true  "Tenant"
// @Param    id            path    string                        true  "Estimate ID"
// @Param    payload       body    request.EstimatePatchRequest  true  "Patch"
// @Success  200  {object}  response.EstimateResponse
// @Router   /estimates/{id} [patch]
func (h *EstimateHandler) PatchEstimate(c *gin.Context) {
	cid, ok2 := companyID(c)
	if !ok2 {
		return
	}
	var payload request.EstimatePatchRequest
	if !bindJSON(c, &payload) {
		return
	}

	est, err := h.usecase.PatchDraft(c.Request.Context(), cid, c.Param("id"), payload.ToPatch(), userActor(c))
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, response.FromEstimate(est))
}

// SendEstimate freezes a snapshot and delivers the customer link.
//
// @Summary  Send estimate to customer
// @Tags     estimates
// @Produce  json
// @Param    X-Company-ID  header  string  true  "Tenant"
// @Param    id            path    string  true  "Estimate ID"
// @Success  200  {object}  response.EstimateResponse
// @Router   /estimates/{id}/send [post]
func (h *EstimateHandler) SendEstimate(c *gin.Context) {
	h.transition(c, h.usecase.Send)
}

// ApproveEstimate records an internal approval (phone/in-person decision).
//
// @Summary  Approve estimate
// @Tags     estimates
// @Produce  json
// @Param    X-Company-ID  header  string  true  "Tenant"
// @Param    id            path    string  true  "Estimate ID"
// @Success  200  {object}  response.EstimateResponse
// @Router   /estimates/{id}/approve [post]
func (h *EstimateHandler) ApproveEstimate(c *gin.Context) {
	h.transition(c, h.usecase.Approve)
}

// RejectEstimate records an internal rejection.
//
// @Summary  Reject estimate
// @Tags     estimates
// @Produce  json
// @Param    X-Company-ID  header  string  true  "Tenant"
// @Param    id            path    string  true  "Estimate ID"
// @Success  200  {object}  response.EstimateResponse
// @Router   /estimates/{id}/reject [post]
func (h *EstimateHandler) RejectEstimate(c *gin.Context) {
	h.transition(c, h.usecase.Reject)
}

// CreateChangeOrder creates a child estimate and supersedes the approved
// parent.
//
// @Summary  Create change order
// @Tags     estimates
// @Accept   json
// @Produce  json
// @Param    X-Company-ID  header  string                     true  "Tenant"
// @Param    id            path    string                     true  "Parent estimate ID"
// @Param    payload       body    request.ChangeOrderRequest true  "Revised work items"
// @Success  201  {object}  response.EstimateResponse
// @Router   /estimates/{id}/change-orders [post]
func (h *EstimateHandler) CreateChangeOrder(c *gin.Context) {
	cid, ok2 := companyID(c)
	if !ok2 {
		return
	}
	var payload request.ChangeOrderRequest
	if !bindJSON(c, &payload) {
		return
	}

	child, err := h.usecase.CreateChangeOrder(c.Request.Context(), cid, c.Param("id"),
		request.ToWorkItems(payload.WorkItems), request.ToOverride(payload.Override), userActor(c))
	if err != nil {
		renderError(c, err)
		return
	}
	created(c, response.FromEstimate(child))
}

// ListEstimateSnapshots returns the immutable pricing history.
//
// @Summary  List estimate snapshots
// @Tags     estimates
// @Produce  json
// @Param    X-Company-ID  header  string  true  "Tenant"
// @Param    id            path    string  true  "Estimate ID"
// @Success  200  {array}  response.EstimateSnapshotResponse
// @Router   /estimates/{id}/snapshots [get]
func (h *EstimateHandler) ListEstimateSnapshots(c *gin.Context) {
	cid, ok2 := companyID(c)
	if !ok2 {
		return
	}
	snaps, err := h.usecase.ListSnapshots(c.Request.Context(), cid, c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, response.FromEstimateSnapshots(snaps))
}

func (h *EstimateHandler) transition(c *gin.Context, op func(ctx context.Context, companyID, id string, actor entities.Actor) (entities.Estimate, error)) {
	cid, ok2 := companyID(c)
	if !ok2 {
		return
	}
	est, err := op(c.Request.Context(), cid, c.Param("id"), userActor(c))
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, response.FromEstimate(est))
}
