package notify

import (
	"context"
	"log"

	"fieldops_billing/internal/usecase/interfaces"
)

// LogNotifier writes document links to the application log instead of a real
// SMS/email provider. The raw token is inside LinkURL, so the log line is as
// sensitive as the message it stands in for; production providers replace
// this implementation behind the same interface.
type LogNotifier struct{}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier() *LogNotifier { return &LogNotifier{} }

func (n *LogNotifier) SendDocumentLink(_ context.Context, msg interfaces.DocumentLinkMessage) error {
	log.Printf("[notify] document link company_id=%s customer_id=%s document=%s/%s expires_at=%s url=%s",
		msg.CompanyID, msg.CustomerID, msg.DocumentType, msg.DocumentID,
		msg.ExpiresAt.Format("2006-01-02T15:04:05Z07:00"), msg.LinkURL)
	return nil
}
