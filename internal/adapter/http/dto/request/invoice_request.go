package request

// InvoiceCreateRequest issues an invoice from an approved estimate.
// deposit_percent is only honored for type "deposit"; out-of-range values
// fall back to the tenant default.
type InvoiceCreateRequest struct {
	EstimateID     string  `json:"estimate_id" binding:"required"`
	JobID          string  `json:"job_id"`
	Type           string  `json:"type" binding:"required"`
	DepositPercent float64 `json:"deposit_percent"`
}

// InvoiceTransitionRequest moves an invoice along its lifecycle. Reason is
// mandatory for written_off and ignored elsewhere.
type InvoiceTransitionRequest struct {
	To     string `json:"to" binding:"required"`
	Reason string `json:"reason"`
}

// PaymentCreateRequest posts a manual payment against an invoice at the row
// version the caller last read.
type PaymentCreateRequest struct {
	Amount          float64 `json:"amount" binding:"required"`
	Method          string  `json:"method" binding:"required"`
	ExpectedVersion int64   `json:"expected_version" binding:"required"`
}

// RefundCreateRequest posts a refund (negative ledger row).
type RefundCreateRequest struct {
	Amount          float64 `json:"amount" binding:"required"`
	Reason          string  `json:"reason"`
	ExpectedVersion int64   `json:"expected_version" binding:"required"`
}
