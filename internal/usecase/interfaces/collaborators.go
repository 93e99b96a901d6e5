package interfaces

import (
	"context"
	"time"
)

// INotifier abstracts the SMS/email delivery provider. Delivery is
// fire-and-forget: a send failure is logged and must never roll back the
// state change that triggered it.
type INotifier interface {
	SendDocumentLink(ctx context.Context, msg DocumentLinkMessage) error
}

// DocumentLinkMessage carries everything the provider needs to deliver a
// portal link out of band.
type DocumentLinkMessage struct {
	CompanyID    string
	CustomerID   string
	DocumentType string
	DocumentID   string
	LinkURL      string
	ExpiresAt    time.Time
}

// IConflictChecker is the crew/equipment calendar service, consulted (not
// owned) before creating assignments.
type IConflictChecker interface {
	HasConflict(ctx context.Context, companyID, resourceID string, start, end time.Time) (bool, error)
}

// Clock is injected wherever time drives behavior (token expiry, rate
// limiting) so tests can pin it.
type Clock interface {
	Now() time.Time
}

// RealClock is the production Clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now().UTC() }
