package handlers

import (
	"context"

	request "fieldops_billing/internal/adapter/http/dto/request"
	response "fieldops_billing/internal/adapter/http/dto/response"
	"fieldops_billing/internal/domain/entities"
	"fieldops_billing/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ContractHandler exposes the legal document lifecycle.

type ContractHandler struct {
	usecase usecase.IContractUseCase
}

func NewContractHandler(uc usecase.IContractUseCase) *ContractHandler {
	return &ContractHandler{usecase: uc}
}

// CreateContract renders a contract off an approved estimate's latest
// snapshot.
//
// @Summary  Generate contract from estimate
// @Tags     contracts
// @Accept   json
// @Produce  json
// @Param    X-Company-ID  header  string                           true  "Tenant"
// @Param    payload       body    request.ContractGenerateRequest  true  "Source estimate"
// @Success  201  {object}  response.ContractResponse
// @Router   /contracts [post]
func (h *ContractHandler) CreateContract(c *gin.Context) {
	cid, ok2 := companyID(c)
	if !ok2 {
		return
	}
	var payload request.ContractGenerateRequest
	if !bindJSON(c, &payload) {
		return
	}

	contract, err := h.usecase.GenerateFromEstimate(c.Request.Context(), cid,
		payload.EstimateID, payload.Terms, payload.Footer, userActor(c))
	if err != nil {
		renderError(c, err)
		return
	}
	created(c, response.FromContract(contract))
}

// GetContract returns one contract scoped to the tenant.
//
// @Summary  Get contract
// @Tags     contracts
// @Produce  json
// @Param    X-Company-ID  header  string  true  "Tenant"
// @Param    id            path    string  true  "Contract ID"
// @Success  200  {object}  response.ContractResponse
// @Router   /contracts/{id} [get]
func (h *ContractHandler) GetContract(c *gin.Context) {
	cid, ok2 := companyID(c)
	if !ok2 {
		return
	}
	contract, err := h.usecase.GetByID(c.Request.Context(), cid, c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, response.FromContract(contract))
}

// PatchContract edits draft content; locked contracts reject every edit.
//
// @Summary  Patch contract draft
// @Tags     contracts
// @Accept   json
// @Produce  json
// @Param    X-Company-ID  header  string                        true  "Tenant"
// @Param    id            path    string                        true  "Contract ID"
// @Param    payload       body    request.ContractPatchRequest  true  "Patch"
// @Success  200  {object}  response.ContractResponse
// @Router   /contracts/{id} [patch]
func (h *ContractHandler) PatchContract(c *gin.Context) {
	cid, ok2 := companyID(c)
	if !ok2 {
		return
	}
	var payload request.ContractPatchRequest
	if !bindJSON(c, &payload) {
		return
	}

	contract, err := h.usecase.UpdateDraft(c.Request.Context(), cid, c.Param("id"),
		payload.Header, payload.WorkItems, payload.Terms, payload.Footer, userActor(c))
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, response.FromContract(contract))
}

// SendContract delivers the signing link to the customer.
//
// @Summary  Send contract for signature
// @Tags     contracts
// @Produce  json
// @Param    X-Company-ID  header  string  true  "Tenant"
// @Param    id            path    string  true  "Contract ID"
// @Success  200  {object}  response.ContractResponse
// @Router   /contracts/{id}/send [post]
func (h *ContractHandler) SendContract(c *gin.Context) {
	h.transition(c, h.usecase.Send)
}

// VoidContract terminally voids an unsigned contract.
//
// @Summary  Void contract
// @Tags     contracts
// @Produce  json
// @Param    X-Company-ID  header  string  true  "Tenant"
// @Param    id            path    string  true  "Contract ID"
// @Success  200  {object}  response.ContractResponse
// @Router   /contracts/{id}/void [post]
func (h *ContractHandler) VoidContract(c *gin.Context) {
	h.transition(c, h.usecase.Void)
}

// SignContract records an internal signing (e.g. in-person on paper). The
// signed snapshot is written before the contract row locks.
//
// @Summary  Sign contract
// @Tags     contracts
// @Accept   json
// @Produce  json
// @Param    X-Company-ID  header  string                       true  "Tenant"
// @Param    id            path    string                       true  "Contract ID"
// @Param    payload       body    request.ContractSignRequest  true  "Signer"
// @Success  200  {object}  response.ContractResponse
// @Router   /contracts/{id}/sign [post]
func (h *ContractHandler) SignContract(c *gin.Context) {
	cid, ok2 := companyID(c)
	if !ok2 {
		return
	}
	var payload request.ContractSignRequest
	if !bindJSON(c, &payload) {
		return
	}

	contract, err := h.usecase.Sign(c.Request.Context(), cid, c.Param("id"), payload.SignerName, userActor(c))
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, response.FromContract(contract))
}

func (h *ContractHandler) transition(c *gin.Context, op func(ctx context.Context, companyID, id string, actor entities.Actor) (entities.Contract, error)) {
	cid, ok2 := companyID(c)
	if !ok2 {
		return
	}
	contract, err := op(c.Request.Context(), cid, c.Param("id"), userActor(c))
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, response.FromContract(contract))
}
