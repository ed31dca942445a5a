package service

import (
	"context"

	"github.com/buildledger/budget-backend/internal/api/errs"
	"github.com/buildledger/budget-backend/internal/expenses/domain"
)

// ExpenseRepo is the slice of expense persistence the service needs.
type ExpenseRepo interface {
	Create(ctx context.Context, projectID, description string, amount float64, category domain.Category) (*domain.Expense, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.Expense, error)
	Update(ctx context.Context, id, description string, amount float64, category domain.Category) (*domain.Expense, error)
	Delete(ctx context.Context, id string) error
}

// ProjectChecker guards expense creation: the parent project must exist.
type ProjectChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// ExpenseService applies the existence guard and payload validation before
// any write.
type ExpenseService struct {
	repo     ExpenseRepo
	projects ProjectChecker
}

func NewExpenseService(repo ExpenseRepo, projects ProjectChecker) *ExpenseService {
	return &ExpenseService{repo: repo, projects: projects}
}

// Create records an expense against a project. The project lookup runs
// before validation, so an unknown project wins over a bad payload. No
// transaction spans the check and the insert.
func (s *ExpenseService) Create(ctx context.Context, projectID string, in domain.Input) (*domain.Expense, error) {
	ok, err := s.projects.Exists(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.ErrProjectNotFound
	}

	amount, err := domain.ValidateInput(in)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, projectID, in.Description, amount, domain.Category(in.Category))
}

// ListByProject returns a project's expenses, oldest first.
func (s *ExpenseService) ListByProject(ctx context.Context, projectID string) ([]domain.Expense, error) {
	return s.repo.ListByProject(ctx, projectID)
}

// Update fully replaces description, amount and category. Absence surfaces
// from the update statement itself.
func (s *ExpenseService) Update(ctx context.Context, id string, in domain.Input) (*domain.Expense, error) {
	amount, err := domain.ValidateInput(in)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, in.Description, amount, domain.Category(in.Category))
}

// Delete removes an expense by id.
func (s *ExpenseService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
