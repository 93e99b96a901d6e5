// Package lifecycle holds the pure status-transition guards for estimates,
// invoices and contracts. Guards never perform I/O; callers consult the guard
// before every mutation and must not write on denial.
package lifecycle

import "fieldops_billing/internal/domain/entities"

// Decision is the outcome of a guard check. On denial, Allowed lists the
// transitions that would have been accepted from the current status, so the
// caller can surface actionable diagnostics.
type Decision struct {
	OK      bool
	Reason  string
	Allowed []string
}

func allow() Decision { return Decision{OK: true} }

func deny(reason string, allowed []string) Decision {
	return Decision{Reason: reason, Allowed: allowed}
}

var estimateTransitions = map[entities.EstimateStatus][]entities.EstimateStatus{
	entities.EstimateStatusDraft:      {entities.EstimateStatusSent},
	entities.EstimateStatusSent:       {entities.EstimateStatusApproved, entities.EstimateStatusRejected, entities.EstimateStatusSuperseded},
	entities.EstimateStatusApproved:   {entities.EstimateStatusSuperseded},
	entities.EstimateStatusRejected:   {},
	entities.EstimateStatusSuperseded: {},
}

// EstimateTransition checks one estimate status change.
func EstimateTransition(from, to entities.EstimateStatus) Decision {
	next, ok := estimateTransitions[from]
	if !ok {
		return deny("unknown estimate status", nil)
	}
	for _, n := range next {
		if n == to {
			return allow()
		}
	}
	return deny("transition not allowed from current status", estimateStatusNames(next))
}

// EstimateEditable reports whether direct field edits (PATCH) are allowed.
// Only drafts are editable; anything else is a structured conflict.
func EstimateEditable(status entities.EstimateStatus) Decision {
	if status == entities.EstimateStatusDraft {
		return allow()
	}
	return deny("estimate can only be edited while draft", nil)
}

var invoiceTransitions = map[entities.InvoiceStatus][]entities.InvoiceStatus{
	entities.InvoiceStatusDraft: {entities.InvoiceStatusSent, entities.InvoiceStatusVoided},
	entities.InvoiceStatusSent: {
		entities.InvoiceStatusViewed, entities.InvoiceStatusPartiallyPaid, entities.InvoiceStatusPaid,
		entities.InvoiceStatusOverdue, entities.InvoiceStatusVoided, entities.InvoiceStatusDisputed,
	},
	entities.InvoiceStatusViewed: {
		entities.InvoiceStatusPartiallyPaid, entities.InvoiceStatusPaid, entities.InvoiceStatusOverdue,
		entities.InvoiceStatusVoided, entities.InvoiceStatusDisputed,
	},
	entities.InvoiceStatusPartiallyPaid: {
		entities.InvoiceStatusPaid, entities.InvoiceStatusOverdue, entities.InvoiceStatusVoided,
		entities.InvoiceStatusDisputed,
	},
	entities.InvoiceStatusPaid: {entities.InvoiceStatusRefunded, entities.InvoiceStatusDisputed},
	entities.InvoiceStatusOverdue: {
		entities.InvoiceStatusViewed, entities.InvoiceStatusPartiallyPaid, entities.InvoiceStatusPaid,
		entities.InvoiceStatusVoided, entities.InvoiceStatusWrittenOff, entities.InvoiceStatusDisputed,
	},
	entities.InvoiceStatusDisputed: {
		entities.InvoiceStatusPaid, entities.InvoiceStatusRefunded, entities.InvoiceStatusWrittenOff,
	},
	entities.InvoiceStatusVoided:     {},
	entities.InvoiceStatusRefunded:   {},
	entities.InvoiceStatusWrittenOff: {},
}

// paymentGated statuses are reachable only through the payment ledger's
// internal transition, never through a direct status-change API. This is what
// prevents a spoofed "paid" state.
func paymentGated(s entities.InvoiceStatus) bool {
	switch s {
	case entities.InvoiceStatusPaid, entities.InvoiceStatusPartiallyPaid, entities.InvoiceStatusRefunded:
		return true
	}
	return false
}

// payable statuses can accept ledger rows: the invoice has been issued and
// its status admits further transitions.
func payable(s entities.InvoiceStatus) bool {
	return s != entities.InvoiceStatusDraft && !s.Terminal()
}

// InvoiceTransition checks one invoice status change. viaPaymentLedger is
// true only for the ledger's own status derivation after a payment write.
func InvoiceTransition(from, to entities.InvoiceStatus, viaPaymentLedger bool) Decision {
	next, ok := invoiceTransitions[from]
	if !ok {
		return deny("unknown invoice status", nil)
	}
	if paymentGated(to) {
		if !viaPaymentLedger {
			return deny("status is payment-gated; record a payment instead", directInvoiceTargets(next))
		}
		// Ledger-derived statuses are recomputed from the balance, so any
		// payable invoice may land on any of them: a partial refund moves
		// paid back to partially_paid, a full refund of a partial payment
		// lands on refunded, a partial payment settles a dispute into
		// partially_paid.
		if payable(from) {
			return allow()
		}
		return deny("transition not allowed from current status", invoiceStatusNames(next))
	}
	for _, n := range next {
		if n == to {
			return allow()
		}
	}
	return deny("transition not allowed from current status", invoiceStatusNames(next))
}

var contractTransitions = map[entities.ContractStatus][]entities.ContractStatus{
	entities.ContractStatusDraft:   {entities.ContractStatusSent},
	entities.ContractStatusSent:    {entities.ContractStatusSigned, entities.ContractStatusVoided},
	entities.ContractStatusSigned:  {},
	entities.ContractStatusVoided:  {},
	entities.ContractStatusExpired: {},
}

// ContractTransition checks one contract status change. viaSignOperation is
// true only for the dedicated sign flow; signed is unreachable otherwise.
func ContractTransition(from, to entities.ContractStatus, viaSignOperation bool) Decision {
	next, ok := contractTransitions[from]
	if !ok {
		return deny("unknown contract status", nil)
	}
	if to == entities.ContractStatusSigned && !viaSignOperation {
		return deny("contracts are signed through the sign operation only", contractStatusNames(next))
	}
	for _, n := range next {
		if n == to {
			return allow()
		}
	}
	return deny("transition not allowed from current status", contractStatusNames(next))
}

func estimateStatusNames(in []entities.EstimateStatus) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = string(s)
	}
	return out
}

func invoiceStatusNames(in []entities.InvoiceStatus) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = string(s)
	}
	return out
}

// directInvoiceTargets filters payment-gated statuses out of the allowed set
// shown for direct status-change attempts.
func directInvoiceTargets(in []entities.InvoiceStatus) []string {
	var out []string
	for _, s := range in {
		if !paymentGated(s) {
			out = append(out, string(s))
		}
	}
	return out
}

func contractStatusNames(in []entities.ContractStatus) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = string(s)
	}
	return out
}
