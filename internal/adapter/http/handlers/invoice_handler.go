package handlers

import (
	request "fieldops_billing/internal/adapter/http/dto/request"
	response "fieldops_billing/internal/adapter/http/dto/response"
	"fieldops_billing/internal/domain/entities"
	"fieldops_billing/internal/usecase"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler exposes invoice issuance and the non-payment lifecycle.
// Payment-gated statuses are only reachable through the payment endpoints.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// CreateInvoice issues a deposit or final invoice from an approved estimate.
//
// @Summary  Create invoice from estimate
// @Tags     invoices
// @Accept   json
// @Produce  json
// @Param    X-Company-ID  header  string                        true  "Tenant"
// @Param    payload       body    request.InvoiceCreateRequest  true  "Invoice"
// @Success  201  {object}  response.InvoiceResponse
// @Router   /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	cid, ok2 := companyID(c)
	if !ok2 {
		return
	}
	var payload request.InvoiceCreateRequest
	if !bindJSON(c, &payload) {
		return
	}

	inv, err := h.usecase.CreateFromEstimate(c.Request.Context(), cid, payload.EstimateID,
		payload.JobID, entities.InvoiceType(payload.Type), payload.DepositPercent, userActor(c))
	if err != nil {
		renderError(c, err)
		return
	}
	created(c, response.FromInvoice(inv))
}

// GetInvoice returns one invoice scoped to the tenant.
//
// @Summary  Get invoice
// @Tags     invoices
// @Produce  json
// @Param    X-Company-ID  header  string  true  "Tenant"
// @Param    id            path    string  true  "Invoice ID"
// @Success  200  {object}  response.InvoiceResponse
// @Router   /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	cid, ok2 := companyID(c)
	if !ok2 {
		return
	}
	inv, err := h.usecase.GetByID(c.Request.Context(), cid, c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, response.FromInvoice(inv))
}

// TransitionInvoice moves an invoice along the non-payment lifecycle.
// written_off requires a reason of at least ten characters.
//
// @Summary  Transition invoice status
// @Tags     invoices
// @Accept   json
// @Produce  json
// @Param    X-Company-ID  header  string                            true  "Tenant"
// @Param    id            path    string                            true  "Invoice ID"
// @Param    payload       body    request.InvoiceTransitionRequest  true  "Target status"
// @Success  200  {object}  response.InvoiceResponse
// @Router   /invoices/{id}/status [patch]
func (h *InvoiceHandler) TransitionInvoice(c *gin.Context) {
	cid, ok2 := companyID(c)
	if !ok2 {
		return
	}
	var payload request.InvoiceTransitionRequest
	if !bindJSON(c, &payload) {
		return
	}

	inv, err := h.usecase.Transition(c.Request.Context(), cid, c.Param("id"),
		entities.InvoiceStatus(payload.To), payload.Reason, userActor(c))
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, response.FromInvoice(inv))
}
