package service

import (
	"context"

	"github.com/buildledger/budget-backend/internal/api/errs"
	"github.com/buildledger/budget-backend/internal/core"
	expdomain "github.com/buildledger/budget-backend/internal/expenses/domain"
	"github.com/buildledger/budget-backend/internal/projects/domain"
)

// ProjectRepo is the slice of project persistence the service needs.
type ProjectRepo interface {
	Create(ctx context.Context, name, clientName string, estimatedBudget float64) (*domain.Project, error)
	ListWithTotals(ctx context.Context) ([]domain.Project, error)
	GetWithTotals(ctx context.Context, id string) (*domain.Project, error)
}

// ExpenseLister supplies the ordered expense list attached to a
// single-project read.
type ExpenseLister interface {
	ListByProject(ctx context.Context, projectID string) ([]expdomain.Expense, error)
}

// ProjectService validates project input and computes the derived budget
// aggregates on every read.
type ProjectService struct {
	repo     ProjectRepo
	expenses ExpenseLister
}

func NewProjectService(repo ProjectRepo, expenses ExpenseLister) *ProjectService {
	return &ProjectService{repo: repo, expenses: expenses}
}

// CreateInput is the create-project payload. EstimatedBudget is any so the
// caller may send a JSON number or a numeric string.
type CreateInput struct {
	Name            string
	ClientName      string
	EstimatedBudget any
}

// Create validates the input and inserts the project. A fresh project has no
// expenses yet, so its aggregates are known without a read-back.
func (s *ProjectService) Create(ctx context.Context, in CreateInput) (*domain.Project, error) {
	if in.Name == "" || in.ClientName == "" || in.EstimatedBudget == nil {
		return nil, errs.Validation("name, clientName and estimatedBudget are required")
	}

	budget, ok := core.CoerceNumber(in.EstimatedBudget)
	if !ok || budget < 0 {
		return nil, errs.Validation("estimatedBudget must be a non-negative number")
	}

	p, err := s.repo.Create(ctx, in.Name, in.ClientName, budget)
	if err != nil {
		return nil, err
	}

	p.TotalExpenses = 0
	p.RemainingBudget = p.EstimatedBudget
	return p, nil
}

// List returns all projects with their aggregates, oldest first.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	items, err := s.repo.ListWithTotals(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		fillAggregates(&items[i])
	}
	return items, nil
}

// Get returns one project with aggregates and its expenses in chronological
// order. The two reads are sequential and unwrapped; a write landing between
// them is tolerated.
func (s *ProjectService) Get(ctx context.Context, id string) (*domain.ProjectDetail, error) {
	p, err := s.repo.GetWithTotals(ctx, id)
	if err != nil {
		return nil, err
	}
	fillAggregates(p)

	expenses, err := s.expenses.ListByProject(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.ProjectDetail{Project: *p, Expenses: expenses}, nil
}

// fillAggregates derives the remaining budget from the stored estimate and
// the summed expenses. The result may be negative; over budget is a valid
// state, not an error.
func fillAggregates(p *domain.Project) {
	p.RemainingBudget = p.EstimatedBudget - p.TotalExpenses
}
