package handlers

import (
	"fmt"
	"strings"

	request "fieldops_billing/internal/adapter/http/dto/request"
	response "fieldops_billing/internal/adapter/http/dto/response"
	"fieldops_billing/internal/domain/entities"
	"fieldops_billing/internal/usecase"
	"fieldops_billing/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// PortalHandler serves the customer-facing endpoints. Every route is driven
// purely by the token in the query string; there is no tenant header and no
// session. Failures are uniformly information-poor.

type PortalHandler struct {
	usecase       usecase.IPortalUseCase
	portalBaseURL string
}

func NewPortalHandler(uc usecase.IPortalUseCase, portalBaseURL string) *PortalHandler {
	return &PortalHandler{usecase: uc, portalBaseURL: portalBaseURL}
}

// token pulls the raw token off the query string. A missing token renders
// the same response as an invalid one; the URL shape leaks nothing.
func token(c *gin.Context) (string, bool) {
	raw := strings.TrimSpace(c.Query("token"))
	if raw == "" {
		renderAppError(c, apperror.InvalidAccessToken())
		return "", false
	}
	return raw, true
}

// CreatePortalLink mints a link for a document. Internal endpoint: the raw
// token is visible in this response only.
//
// @Summary  Mint portal link
// @Tags     portal
// @Accept   json
// @Produce  json
// @Param    X-Company-ID  header  string                     true  "Tenant"
// @Param    payload       body    request.PortalLinkRequest  true  "Document"
// @Success  201  {object}  response.PortalLinkResponse
// @Router   /portal-links [post]
func (h *PortalHandler) CreatePortalLink(c *gin.Context) {
	cid, ok2 := companyID(c)
	if !ok2 {
		return
	}
	var payload request.PortalLinkRequest
	if !bindJSON(c, &payload) {
		return
	}

	raw, expiresAt, err := h.usecase.Issue(c.Request.Context(), cid,
		entities.DocumentType(payload.DocumentType), payload.DocumentID,
		entities.TokenPurpose(payload.Purpose))
	if err != nil {
		renderError(c, err)
		return
	}
	created(c, response.PortalLinkResponse{
		URL: fmt.Sprintf("%s/portal/%ss?token=%s",
			strings.TrimRight(h.portalBaseURL, "/"), payload.DocumentType, raw),
		ExpiresAt: expiresAt,
	})
}

// ViewEstimate renders the estimate behind a view or decision token.
//
// @Summary  View estimate via portal link
// @Tags     portal
// @Produce  json
// @Param    token  query  string  true  "Access token"
// @Success  200  {object}  response.EstimateResponse
// @Router   /portal/estimates [get]
func (h *PortalHandler) ViewEstimate(c *gin.Context) {
	raw, ok2 := token(c)
	if !ok2 {
		return
	}
	est, err := h.usecase.ViewEstimate(c.Request.Context(), raw, customerActor(c))
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, response.FromEstimate(est))
}

// ApproveEstimate consumes a one-shot decision token and approves.
//
// @Summary  Approve estimate via portal link
// @Tags     portal
// @Produce  json
// @Param    token  query  string  true  "Access token"
// @Success  200  {object}  response.EstimateResponse
// @Router   /portal/estimates/approve [post]
func (h *PortalHandler) ApproveEstimate(c *gin.Context) {
	h.decide(c, true)
}

// RejectEstimate consumes a one-shot decision token and rejects.
//
// @Summary  Reject estimate via portal link
// @Tags     portal
// @Produce  json
// @Param    token  query  string  true  "Access token"
// @Success  200  {object}  response.EstimateResponse
// @Router   /portal/estimates/reject [post]
func (h *PortalHandler) RejectEstimate(c *gin.Context) {
	h.decide(c, false)
}

func (h *PortalHandler) decide(c *gin.Context, approve bool) {
	raw, ok2 := token(c)
	if !ok2 {
		return
	}
	est, err := h.usecase.DecideEstimate(c.Request.Context(), raw, approve, customerActor(c))
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, response.FromEstimate(est))
}

// ViewInvoice renders the invoice; the first view moves sent to viewed.
//
// @Summary  View invoice via portal link
// @Tags     portal
// @Produce  json
// @Param    token  query  string  true  "Access token"
// @Success  200  {object}  response.InvoiceResponse
// @Router   /portal/invoices [get]
func (h *PortalHandler) ViewInvoice(c *gin.Context) {
	raw, ok2 := token(c)
	if !ok2 {
		return
	}
	inv, err := h.usecase.ViewInvoice(c.Request.Context(), raw, customerActor(c))
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, response.FromInvoice(inv))
}

// PayInvoice runs a gateway checkout for the invoice behind the token.
//
// @Summary  Pay invoice via portal link
// @Tags     portal
// @Accept   json
// @Produce  json
// @Param    token  query  string  true  "Access token"
// @Success  200  {object}  response.InvoiceResponse
// @Router   /portal/invoices/pay [post]
func (h *PortalHandler) PayInvoice(c *gin.Context) {
	raw, ok2 := token(c)
	if !ok2 {
		return
	}
	payload, err := readProviderPayload(c)
	if err != nil {
		renderAppError(c, errInvalidPayload)
		return
	}

	inv, err := h.usecase.PayInvoice(c.Request.Context(), raw, payload, customerActor(c))
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, response.FromInvoice(inv))
}

// ViewContract renders the contract behind a view or sign token.
//
// @Summary  View contract via portal link
// @Tags     portal
// @Produce  json
// @Param    token  query  string  true  "Access token"
// @Success  200  {object}  response.ContractResponse
// @Router   /portal/contracts [get]
func (h *PortalHandler) ViewContract(c *gin.Context) {
	raw, ok2 := token(c)
	if !ok2 {
		return
	}
	contract, err := h.usecase.ViewContract(c.Request.Context(), raw, customerActor(c))
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, response.FromContract(contract))
}

// SignContract consumes a one-shot signing token.
//
// @Summary  Sign contract via portal link
// @Tags     portal
// @Accept   json
// @Produce  json
// @Param    token    query  string                     true  "Access token"
// @Param    payload  body   request.PortalSignRequest  true  "Signer"
// @Success  200  {object}  response.ContractResponse
// @Router   /portal/contracts/sign [post]
func (h *PortalHandler) SignContract(c *gin.Context) {
	raw, ok2 := token(c)
	if !ok2 {
		return
	}
	var payload request.PortalSignRequest
	if !bindJSON(c, &payload) {
		return
	}

	contract, err := h.usecase.SignContract(c.Request.Context(), raw, payload.SignerName, customerActor(c))
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, response.FromContract(contract))
}
