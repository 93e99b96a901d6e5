package handlers

import (
	"encoding/json"
	"errors"
	"strings"

	request "fieldops_billing/internal/adapter/http/dto/request"
	response "fieldops_billing/internal/adapter/http/dto/response"
	"fieldops_billing/internal/domain/entities"
	"fieldops_billing/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PaymentHandler exposes the append-only payment ledger. Every write carries
// the row version the caller last read; a mismatch returns 409 with the
// current version.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// RecordPayment posts a manual payment against an invoice.
//
// @Summary  Record payment
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    X-Company-ID  header  string                        true  "Tenant"
// @Param    id            path    string                        true  "Invoice ID"
// @Param    payload       body    request.PaymentCreateRequest  true  "Payment"
// @Success  201  {object}  response.InvoiceResponse
// @Router   /invoices/{id}/payments [post]
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	cid, ok2 := companyID(c)
	if !ok2 {
		return
	}
	var payload request.PaymentCreateRequest
	if !bindJSON(c, &payload) {
		return
	}

	inv, err := h.usecase.RecordPayment(c.Request.Context(), cid, c.Param("id"),
		payload.ExpectedVersion, payload.Amount, entities.PaymentMethod(payload.Method), userActor(c))
	if err != nil {
		renderError(c, err)
		return
	}
	created(c, response.FromInvoice(inv))
}

// RecordRefund posts a refund as a negative ledger row.
//
// @Summary  Record refund
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    X-Company-ID  header  string                       true  "Tenant"
// @Param    id            path    string                       true  "Invoice ID"
// @Param    payload       body    request.RefundCreateRequest  true  "Refund"
// @Success  201  {object}  response.InvoiceResponse
// @Router   /invoices/{id}/refunds [post]
func (h *PaymentHandler) RecordRefund(c *gin.Context) {
	cid, ok2 := companyID(c)
	if !ok2 {
		return
	}
	var payload request.RefundCreateRequest
	if !bindJSON(c, &payload) {
		return
	}

	inv, err := h.usecase.RecordRefund(c.Request.Context(), cid, c.Param("id"),
		payload.ExpectedVersion, payload.Amount, payload.Reason, userActor(c))
	if err != nil {
		renderError(c, err)
		return
	}
	created(c, response.FromInvoice(inv))
}

// ListPayments returns the ledger rows for an invoice in posting order.
//
// @Summary  List invoice payments
// @Tags     payments
// @Produce  json
// @Param    X-Company-ID  header  string  true  "Tenant"
// @Param    id            path    string  true  "Invoice ID"
// @Success  200  {array}  response.PaymentResponse
// @Router   /invoices/{id}/payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	cid, ok2 := companyID(c)
	if !ok2 {
		return
	}
	payments, err := h.usecase.ListByInvoiceID(c.Request.Context(), cid, c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, response.FromPayments(payments))
}

// CreateCheckout runs a provider checkout for the invoice's amount due and
// posts the approved charge to the ledger.
//
// @Summary  Create gateway checkout
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    X-Company-ID  header  string  true  "Tenant"
// @Param    id            path    string  true  "Invoice ID"
// @Success  201  {object}  response.PaymentResponse
// @Router   /invoices/{id}/checkout [post]
func (h *PaymentHandler) CreateCheckout(c *gin.Context) {
	cid, ok2 := companyID(c)
	if !ok2 {
		return
	}
	payload, err := readProviderPayload(c)
	if err != nil {
		renderAppError(c, errInvalidPayload)
		return
	}

	_, payment, err := h.usecase.CreateGatewayCheckout(c.Request.Context(), cid, c.Param("id"), payload)
	if err != nil {
		renderError(c, err)
		return
	}
	created(c, response.FromPayment(payment))
}

// readProviderPayload accepts either a bare provider payload or an envelope
// with a provider_payload field. An empty body becomes an empty object so
// mock-mode checkouts need no payload at all.
func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}
