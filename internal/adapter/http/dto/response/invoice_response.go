package response

import (
	"time"

	"fieldops_billing/internal/domain/entities"
)

type InvoiceResponse struct {
	ID         string  `json:"id"`
	CompanyID  string  `json:"company_id"`
	CustomerID string  `json:"customer_id"`
	JobID      string  `json:"job_id,omitempty"`
	EstimateID string  `json:"estimate_id,omitempty"`
	Type       string  `json:"type"`
	Status     string  `json:"status"`
	Total      float64 `json:"total"`
	AmountPaid float64 `json:"amount_paid"`
	AmountDue  float64 `json:"amount_due"`
	RowVersion int64   `json:"row_version"`

	WriteOffReason string `json:"write_off_reason,omitempty"`

	DueAt     time.Time `json:"due_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromInvoice(i entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:         i.ID,
		CompanyID:  i.CompanyID,
		CustomerID: i.CustomerID,
		JobID:      i.JobID,
		EstimateID: i.EstimateID,
		Type:       string(i.Type),
		Status:     string(i.Status),
		Total:      i.Total,
		AmountPaid: i.AmountPaid,
		AmountDue:  i.AmountDue,
		RowVersion: i.RowVersion,
		WriteOffReason: i.WriteOffReason,
		DueAt:      i.DueAt,
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}

type PaymentResponse struct {
	ID                string    `json:"id"`
	InvoiceID         string    `json:"invoice_id"`
	Amount            float64   `json:"amount"`
	Method            string    `json:"method"`
	RecordedBy        string    `json:"recorded_by,omitempty"`
	Note              string    `json:"note,omitempty"`
	ProviderPaymentID string    `json:"provider_payment_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		InvoiceID:         p.InvoiceID,
		Amount:            p.Amount,
		Method:            string(p.Method),
		RecordedBy:        p.RecordedBy,
		Note:              p.Note,
		ProviderPaymentID: p.ProviderPaymentID,
		CreatedAt:         p.CreatedAt,
	}
}

func FromPayments(in []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(in))
	for _, p := range in {
		out = append(out, FromPayment(p))
	}
	return out
}
