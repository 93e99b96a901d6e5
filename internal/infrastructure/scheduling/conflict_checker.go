package scheduling

import (
	"context"
	"time"

	"fieldops_billing/internal/usecase/interfaces"
)

// NoConflictChecker stands in for the crew/equipment calendar service, which
// lives outside the billing core. It never reports a conflict; deployments
// with a real calendar wire their client behind the same interface.
type NoConflictChecker struct{}

var _ interfaces.IConflictChecker = (*NoConflictChecker)(nil)

func NewNoConflictChecker() *NoConflictChecker { return &NoConflictChecker{} }

func (NoConflictChecker) HasConflict(_ context.Context, _, _ string, _, _ time.Time) (bool, error) {
	return false, nil
}
