package lifecycle

import (
	"testing"

	"fieldops_billing/internal/domain/entities"
)

func TestEstimateTransition(t *testing.T) {
	cases := []struct {
		from, to entities.EstimateStatus
		want     bool
	}{
		{entities.EstimateStatusDraft, entities.EstimateStatusSent, true},
		{entities.EstimateStatusDraft, entities.EstimateStatusApproved, false},
		{entities.EstimateStatusSent, entities.EstimateStatusApproved, true},
		{entities.EstimateStatusSent, entities.EstimateStatusRejected, true},
		{entities.EstimateStatusSent, entities.EstimateStatusSuperseded, true},
		{entities.EstimateStatusSent, entities.EstimateStatusDraft, false},
		{entities.EstimateStatusApproved, entities.EstimateStatusSuperseded, true},
		{entities.EstimateStatusApproved, entities.EstimateStatusSent, false},
		{entities.EstimateStatusRejected, entities.EstimateStatusSent, false},
		{entities.EstimateStatusSuperseded, entities.EstimateStatusSent, false},
	}
	for _, tc := range cases {
		d := EstimateTransition(tc.from, tc.to)
		if d.OK != tc.want {
			t.Fatalf("%s -> %s: got %v, want %v", tc.from, tc.to, d.OK, tc.want)
		}
	}
}

func TestEstimateTransition_SentAllowedSet(t *testing.T) {
	d := EstimateTransition(entities.EstimateStatusSent, entities.EstimateStatusDraft)
	if d.OK {
		t.Fatalf("expected denial")
	}
	want := map[string]bool{"approved": true, "rejected": true, "superseded": true}
	if len(d.Allowed) != len(want) {
		t.Fatalf("allowed set = %v", d.Allowed)
	}
	for _, s := range d.Allowed {
		if !want[s] {
			t.Fatalf("unexpected allowed transition %q", s)
		}
	}
}

func TestEstimateEditable(t *testing.T) {
	if d := EstimateEditable(entities.EstimateStatusDraft); !d.OK {
		t.Fatalf("draft must be editable")
	}
	for _, s := range []entities.EstimateStatus{
		entities.EstimateStatusSent, entities.EstimateStatusApproved,
		entities.EstimateStatusRejected, entities.EstimateStatusSuperseded,
	} {
		if d := EstimateEditable(s); d.OK {
			t.Fatalf("%s must not be editable", s)
		}
	}
}

func TestInvoiceTransition_PaymentGating(t *testing.T) {
	// Direct API can never reach paid/partially_paid/refunded.
	for _, to := range []entities.InvoiceStatus{
		entities.InvoiceStatusPaid, entities.InvoiceStatusPartiallyPaid, entities.InvoiceStatusRefunded,
	} {
		if d := InvoiceTransition(entities.InvoiceStatusSent, to, false); d.OK {
			t.Fatalf("direct transition to %s must be denied", to)
		}
	}
	// The ledger path can.
	if d := InvoiceTransition(entities.InvoiceStatusSent, entities.InvoiceStatusPaid, true); !d.OK {
		t.Fatalf("ledger transition to paid denied: %+v", d)
	}
	if d := InvoiceTransition(entities.InvoiceStatusPaid, entities.InvoiceStatusRefunded, true); !d.OK {
		t.Fatalf("ledger transition paid -> refunded denied: %+v", d)
	}
	// But the ledger still cannot jump from a terminal status.
	if d := InvoiceTransition(entities.InvoiceStatusVoided, entities.InvoiceStatusPaid, true); d.OK {
		t.Fatalf("voided is terminal")
	}
	// Nor mark a draft paid: the invoice must be issued first.
	if d := InvoiceTransition(entities.InvoiceStatusDraft, entities.InvoiceStatusPaid, true); d.OK {
		t.Fatalf("draft must not accept ledger rows")
	}
}

func TestInvoiceTransition_LedgerDerivedRefundStatuses(t *testing.T) {
	// Refund rows re-derive the status from the remaining balance, so the
	// ledger moves between paid/partially_paid/refunded in both directions.
	cases := []struct {
		name     string
		from, to entities.InvoiceStatus
	}{
		{"partial refund of a paid invoice", entities.InvoiceStatusPaid, entities.InvoiceStatusPartiallyPaid},
		{"full refund of a partial payment", entities.InvoiceStatusPartiallyPaid, entities.InvoiceStatusRefunded},
		{"partial payment on a disputed invoice", entities.InvoiceStatusDisputed, entities.InvoiceStatusPartiallyPaid},
		{"payment completing an overdue invoice", entities.InvoiceStatusOverdue, entities.InvoiceStatusPaid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if d := InvoiceTransition(tc.from, tc.to, true); !d.OK {
				t.Fatalf("%s -> %s via ledger denied: %+v", tc.from, tc.to, d)
			}
			if d := InvoiceTransition(tc.from, tc.to, false); d.OK {
				t.Fatalf("%s -> %s must stay payment-gated", tc.from, tc.to)
			}
		})
	}
	// Refunded and written_off stay terminal even for the ledger.
	for _, from := range []entities.InvoiceStatus{
		entities.InvoiceStatusRefunded, entities.InvoiceStatusWrittenOff,
	} {
		if d := InvoiceTransition(from, entities.InvoiceStatusPartiallyPaid, true); d.OK {
			t.Fatalf("%s must not accept ledger rows", from)
		}
	}
}

func TestInvoiceTransition_Table(t *testing.T) {
	cases := []struct {
		from, to entities.InvoiceStatus
		want     bool
	}{
		{entities.InvoiceStatusDraft, entities.InvoiceStatusSent, true},
		{entities.InvoiceStatusDraft, entities.InvoiceStatusVoided, true},
		{entities.InvoiceStatusDraft, entities.InvoiceStatusOverdue, false},
		{entities.InvoiceStatusSent, entities.InvoiceStatusViewed, true},
		{entities.InvoiceStatusSent, entities.InvoiceStatusDisputed, true},
		{entities.InvoiceStatusViewed, entities.InvoiceStatusOverdue, true},
		{entities.InvoiceStatusOverdue, entities.InvoiceStatusWrittenOff, true},
		{entities.InvoiceStatusOverdue, entities.InvoiceStatusViewed, true},
		{entities.InvoiceStatusDisputed, entities.InvoiceStatusWrittenOff, true},
		{entities.InvoiceStatusDisputed, entities.InvoiceStatusVoided, false},
		{entities.InvoiceStatusWrittenOff, entities.InvoiceStatusSent, false},
		{entities.InvoiceStatusRefunded, entities.InvoiceStatusPaid, false},
	}
	for _, tc := range cases {
		d := InvoiceTransition(tc.from, tc.to, false)
		if d.OK != tc.want {
			t.Fatalf("%s -> %s: got %v, want %v (%s)", tc.from, tc.to, d.OK, tc.want, d.Reason)
		}
	}
}

func TestContractTransition(t *testing.T) {
	if d := ContractTransition(entities.ContractStatusDraft, entities.ContractStatusSent, false); !d.OK {
		t.Fatalf("draft -> sent denied: %+v", d)
	}
	// signed only via the dedicated sign operation
	if d := ContractTransition(entities.ContractStatusSent, entities.ContractStatusSigned, false); d.OK {
		t.Fatalf("signed must require the sign operation")
	}
	if d := ContractTransition(entities.ContractStatusSent, entities.ContractStatusSigned, true); !d.OK {
		t.Fatalf("sign operation denied: %+v", d)
	}
	// re-sending blocked for all terminal statuses
	for _, s := range []entities.ContractStatus{
		entities.ContractStatusSigned, entities.ContractStatusVoided, entities.ContractStatusExpired,
	} {
		if d := ContractTransition(s, entities.ContractStatusSent, false); d.OK {
			t.Fatalf("%s -> sent must be denied", s)
		}
	}
}
