package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"strings"

	"fieldops_billing/internal/domain/entities"
	"fieldops_billing/internal/domain/lifecycle"
	"fieldops_billing/internal/domain/pricing"
	"fieldops_billing/internal/usecase/interfaces"
	"fieldops_billing/pkg/apperror"

	"github.com/google/uuid"
)

var (
	ErrInvalidPaymentAmount = apperror.Validation("INVALID_PAYMENT_AMOUNT", "Payment amount must be positive")
	ErrAmountExceedsDue     = apperror.Validation("AMOUNT_EXCEEDS_DUE", "Payment exceeds the invoice amount due")
	ErrRefundExceedsPaid    = apperror.Validation("REFUND_EXCEEDS_PAID", "Refund exceeds the amount paid")
	ErrGatewayNotConfigured = apperror.New(apperror.KindInternal, "GATEWAY_NOT_CONFIGURED",
		"Payment gateway is not configured", http.StatusServiceUnavailable)
)

// IPaymentUseCase is the payment ledger: the only path to paid,
// partially_paid and refunded invoice statuses.
type IPaymentUseCase interface {
	RecordPayment(ctx context.Context, companyID, invoiceID string, expectedVersion int64, amount float64, method entities.PaymentMethod, actor entities.Actor) (entities.Invoice, error)
	RecordRefund(ctx context.Context, companyID, invoiceID string, expectedVersion int64, amount float64, reason string, actor entities.Actor) (entities.Invoice, error)
	CreateGatewayCheckout(ctx context.Context, companyID, invoiceID string, payload json.RawMessage) (entities.Invoice, entities.Payment, error)
	ListByInvoiceID(ctx context.Context, companyID, invoiceID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	ledger   interfaces.IPaymentLedgerRepository
	invoices interfaces.IInvoiceRepository
	audit    interfaces.IAuditLogRepository
	gateway  interfaces.IPaymentGateway
	clock    interfaces.Clock
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(ledger interfaces.IPaymentLedgerRepository, invoices interfaces.IInvoiceRepository, audit interfaces.IAuditLogRepository, gateway interfaces.IPaymentGateway, clock interfaces.Clock) *PaymentUseCase {
	return &PaymentUseCase{ledger: ledger, invoices: invoices, audit: audit, gateway: gateway, clock: clock}
}

// RecordPayment validates against the invoice read at expectedVersion, then
// writes payment row + invoice update as one transaction conditioned on that
// version. A mismatch aborts with no partial write and reports the current
// version so the caller can re-fetch and retry.
func (u *PaymentUseCase) RecordPayment(ctx context.Context, companyID, invoiceID string, expectedVersion int64, amount float64, method entities.PaymentMethod, actor entities.Actor) (entities.Invoice, error) {
	return u.applyLedgerRow(ctx, companyID, invoiceID, expectedVersion, amount, method, "", "", nil, actor)
}

// RecordRefund appends a negative ledger row; prior rows are never touched.
func (u *PaymentUseCase) RecordRefund(ctx context.Context, companyID, invoiceID string, expectedVersion int64, amount float64, reason string, actor entities.Actor) (entities.Invoice, error) {
	if amount <= 0 {
		return entities.Invoice{}, ErrInvalidPaymentAmount
	}
	return u.applyLedgerRow(ctx, companyID, invoiceID, expectedVersion, -amount, entities.PaymentMethodCard, reason, "", nil, actor)
}

func (u *PaymentUseCase) applyLedgerRow(ctx context.Context, companyID, invoiceID string, expectedVersion int64, amount float64, method entities.PaymentMethod, note, providerID string, providerRaw json.RawMessage, actor entities.Actor) (entities.Invoice, error) {
	companyID = strings.TrimSpace(companyID)
	invoiceID = strings.TrimSpace(invoiceID)
	if companyID == "" {
		return entities.Invoice{}, ErrInvalidCompanyID
	}
	if invoiceID == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	if amount == 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return entities.Invoice{}, ErrInvalidPaymentAmount
	}

	inv, err := u.invoices.GetByID(ctx, companyID, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	if inv.RowVersion != expectedVersion {
		return entities.Invoice{}, apperror.ConcurrencyConflict(inv.RowVersion)
	}

	const tolerance = 0.005
	if amount > 0 && amount > inv.AmountDue+tolerance {
		return entities.Invoice{}, ErrAmountExceedsDue
	}
	if amount < 0 && -amount > inv.AmountPaid+tolerance {
		return entities.Invoice{}, ErrRefundExceedsPaid
	}

	newPaid := pricing.Round2(inv.AmountPaid + amount)
	newDue := pricing.Round2(inv.Total - newPaid)
	newStatus := deriveLedgerStatus(inv, newPaid, amount)

	if newStatus != inv.Status {
		// The ledger is the only caller allowed through the payment gate.
		if d := lifecycle.InvoiceTransition(inv.Status, newStatus, true); !d.OK {
			auditBestEffort(ctx, u.audit, auditEntry(companyID, "invoice", invoiceID, "payment",
				string(inv.Status), string(newStatus), d.Reason, actor, true, u.clock.Now()))
			return entities.Invoice{}, apperror.StateConflict("INVOICE_TRANSITION_DENIED", d.Reason, string(inv.Status), d.Allowed)
		}
	}

	now := u.clock.Now()
	p := entities.Payment{
		ID:                 uuid.NewString(),
		InvoiceID:          invoiceID,
		CompanyID:          companyID,
		Amount:             pricing.Round2(amount),
		Method:             method,
		RecordedBy:         actor.ID,
		Note:               strings.TrimSpace(note),
		ProviderPaymentID:  providerID,
		ProviderPayloadRaw: providerRaw,
		CreatedAt:          now,
	}

	updated := inv
	updated.AmountPaid = newPaid
	updated.AmountDue = newDue
	updated.Status = newStatus
	updated.UpdatedAt = now

	stored, err := u.ledger.RecordPayment(ctx, updated, expectedVersion, p)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionMismatch) {
			current, gErr := u.invoices.GetByID(ctx, companyID, invoiceID)
			if gErr != nil || current.ID == "" {
				return entities.Invoice{}, apperror.ConcurrencyConflict(expectedVersion + 1)
			}
			return entities.Invoice{}, apperror.ConcurrencyConflict(current.RowVersion)
		}
		return entities.Invoice{}, err
	}
	log.Printf("[payment][usecase] ledger row recorded invoice_id=%s amount=%.2f status=%s version=%d",
		invoiceID, p.Amount, stored.Status, stored.RowVersion)
	auditBestEffort(ctx, u.audit, auditEntry(companyID, "invoice", invoiceID, "payment",
		string(inv.Status), string(stored.Status), fmt.Sprintf("ledger amount %.2f", p.Amount), actor, false, now))
	return stored, nil
}

// deriveLedgerStatus recomputes the invoice status from the post-write
// balance. Refund rows re-derive from the ledger, never from the prior
// status: zero balance after any refund is refunded; anything between is
// partially_paid.
func deriveLedgerStatus(inv entities.Invoice, newPaid, rowAmount float64) entities.InvoiceStatus {
	const tolerance = 0.005
	switch {
	case rowAmount < 0 && newPaid <= tolerance:
		return entities.InvoiceStatusRefunded
	case newPaid >= inv.Total-tolerance:
		return entities.InvoiceStatusPaid
	case newPaid > tolerance:
		return entities.InvoiceStatusPartiallyPaid
	default:
		return inv.Status
	}
}

// CreateGatewayCheckout runs the provider checkout for an invoice's amount
// due and, on an approved result, records it through the same ledger path as
// an offline payment.
func (u *PaymentUseCase) CreateGatewayCheckout(ctx context.Context, companyID, invoiceID string, payload json.RawMessage) (entities.Invoice, entities.Payment, error) {
	if u.gateway == nil {
		return entities.Invoice{}, entities.Payment{}, ErrGatewayNotConfigured
	}
	inv, err := u.invoices.GetByID(ctx, strings.TrimSpace(companyID), strings.TrimSpace(invoiceID))
	if err != nil {
		return entities.Invoice{}, entities.Payment{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, entities.Payment{}, ErrInvoiceNotFound
	}
	if inv.AmountDue <= 0 {
		return entities.Invoice{}, entities.Payment{}, ErrAmountExceedsDue
	}

	// The source of truth for the charge amount is the invoice in the store.
	reqMap := map[string]any{}
	if len(payload) > 0 && json.Valid(payload) {
		_ = json.Unmarshal(payload, &reqMap)
	}
	reqMap["transaction_amount"] = inv.AmountDue
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = inv.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Invoice %s", inv.ID)
	}
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.Invoice{}, entities.Payment{}, err
	}

	log.Printf("[payment][usecase] gateway checkout start invoice_id=%s amount=%.2f", inv.ID, inv.AmountDue)
	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Printf("[payment][usecase] gateway checkout failed invoice_id=%s err=%v", inv.ID, err)
		return entities.Invoice{}, entities.Payment{}, err
	}
	if providerStatus != "approved" {
		log.Printf("[payment][usecase] gateway checkout not approved invoice_id=%s status=%s", inv.ID, providerStatus)
		return entities.Invoice{}, entities.Payment{}, apperror.Validation("PAYMENT_NOT_APPROVED",
			fmt.Sprintf("payment gateway returned status %q", providerStatus))
	}

	actor := entities.Actor{Type: "customer"}
	updated, err := u.applyLedgerRow(ctx, companyID, invoiceID, inv.RowVersion, inv.AmountDue,
		entities.PaymentMethodGateway, "", providerID, providerResp, actor)
	if err != nil {
		return entities.Invoice{}, entities.Payment{}, err
	}

	payments, err := u.ledger.ListByInvoiceID(ctx, companyID, invoiceID)
	if err != nil || len(payments) == 0 {
		return updated, entities.Payment{}, nil
	}
	return updated, payments[len(payments)-1], nil
}

func (u *PaymentUseCase) ListByInvoiceID(ctx context.Context, companyID, invoiceID string) ([]entities.Payment, error) {
	companyID = strings.TrimSpace(companyID)
	invoiceID = strings.TrimSpace(invoiceID)
	if companyID == "" {
		return nil, ErrInvalidCompanyID
	}
	if invoiceID == "" {
		return nil, ErrInvalidInvoiceID
	}
	return u.ledger.ListByInvoiceID(ctx, companyID, invoiceID)
}
