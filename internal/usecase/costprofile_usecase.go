package usecase

import (
	"context"
	"strings"

	"fieldops_billing/internal/domain/entities"
	"fieldops_billing/internal/domain/pricing"
	"fieldops_billing/internal/usecase/interfaces"
	"fieldops_billing/pkg/apperror"
)

var (
	ErrInvalidCompanyID    = apperror.Validation("COMPANY_ID_REQUIRED", "Company id is required")
	ErrCostProfileNotFound = apperror.NotFound("COST_PROFILE_NOT_FOUND", "No cost profile saved for this company")
	ErrNoLaborRoles        = apperror.Validation("LABOR_ROLES_REQUIRED", "Cost profile needs at least one labor role")
)

// ICostProfileUseCase exposes the "save cost profile" action and reads.
//
// Saving never mutates an existing row: it computes the derived outputs once
// and writes an immutable snapshot at version latest+1.
type ICostProfileUseCase interface {
	Save(ctx context.Context, companyID, userID string, in pricing.CostInputs) (entities.CostProfileSnapshot, error)
	GetLatest(ctx context.Context, companyID string) (entities.CostProfileSnapshot, error)
	Preview(ctx context.Context, in pricing.CostInputs) entities.CalculatedOutputs
}

type CostProfileUseCase struct {
	repo  interfaces.ICostProfileRepository
	clock interfaces.Clock
}

var _ ICostProfileUseCase = (*CostProfileUseCase)(nil)

func NewCostProfileUseCase(repo interfaces.ICostProfileRepository, clock interfaces.Clock) *CostProfileUseCase {
	return &CostProfileUseCase{repo: repo, clock: clock}
}

func (u *CostProfileUseCase) Save(ctx context.Context, companyID, userID string, in pricing.CostInputs) (entities.CostProfileSnapshot, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return entities.CostProfileSnapshot{}, ErrInvalidCompanyID
	}
	if len(in.LaborRoles) == 0 {
		return entities.CostProfileSnapshot{}, ErrNoLaborRoles
	}

	latest, err := u.repo.GetLatest(ctx, companyID)
	if err != nil {
		return entities.CostProfileSnapshot{}, err
	}

	s := entities.CostProfileSnapshot{
		CompanyID:       companyID,
		Version:         latest.Version + 1,
		CreatedAt:       u.clock.Now(),
		CreatedBy:       strings.TrimSpace(userID),
		LaborRoles:      in.LaborRoles,
		Equipment:       in.Equipment,
		OverheadBuckets: in.OverheadBuckets,
		Margins:         in.Margins,
		Utilization:     in.Utilization,
		BillableDays:    in.BillableDays,
		Outputs:         pricing.CalculateOutputs(in),
	}
	if err := u.repo.Create(ctx, s); err != nil {
		return entities.CostProfileSnapshot{}, err
	}
	return s, nil
}

func (u *CostProfileUseCase) GetLatest(ctx context.Context, companyID string) (entities.CostProfileSnapshot, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return entities.CostProfileSnapshot{}, ErrInvalidCompanyID
	}
	s, err := u.repo.GetLatest(ctx, companyID)
	if err != nil {
		return entities.CostProfileSnapshot{}, err
	}
	if s.Version == 0 {
		return entities.CostProfileSnapshot{}, ErrCostProfileNotFound
	}
	return s, nil
}

// Preview computes outputs without persisting anything.
func (u *CostProfileUseCase) Preview(_ context.Context, in pricing.CostInputs) entities.CalculatedOutputs {
	return pricing.CalculateOutputs(in)
}
