package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/buildledger/budget-backend/internal/api/errs"
	"github.com/buildledger/budget-backend/internal/projects/domain"
)

// ProjectRepository provides persistence operations for projects.
type ProjectRepository struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a new project and returns the stored row. Derived totals
// are left zeroed; the caller fills them.
func (r *ProjectRepository) Create(ctx context.Context, name, clientName string, estimatedBudget float64) (*domain.Project, error) {
	const q = `
insert into projects (id, name, client_name, estimated_budget)
values ($1, $2, $3, $4)
returning id, name, client_name, estimated_budget, created_at;
`
	id := uuid.New().String()

	var p domain.Project
	err := r.db.QueryRow(ctx, q, id, name, clientName, estimatedBudget).
		Scan(&p.ID, &p.Name, &p.ClientName, &p.EstimatedBudget, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return &p, nil
}

// ListWithTotals returns every project joined with the sum of its expense
// amounts, oldest first. Projects with no expenses report a zero total, not
// null.
func (r *ProjectRepository) ListWithTotals(ctx context.Context) ([]domain.Project, error) {
	const q = `
select p.id, p.name, p.client_name, p.estimated_budget,
       coalesce(sum(e.amount), 0) as total_expenses,
       p.created_at
from projects p
left join expenses e on e.project_id = p.id
group by p.id
order by p.created_at asc;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.ClientName, &p.EstimatedBudget, &p.TotalExpenses, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetWithTotals returns one project with its expense sum.
func (r *ProjectRepository) GetWithTotals(ctx context.Context, id string) (*domain.Project, error) {
	const q = `
select p.id, p.name, p.client_name, p.estimated_budget,
       coalesce(sum(e.amount), 0) as total_expenses,
       p.created_at
from projects p
left join expenses e on e.project_id = p.id
where p.id = $1
group by p.id;
`
	var p domain.Project
	err := r.db.QueryRow(ctx, q, id).
		Scan(&p.ID, &p.Name, &p.ClientName, &p.EstimatedBudget, &p.TotalExpenses, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &p, nil
}

// Exists reports whether a project row is present. Used as the guard before
// inserting an expense.
func (r *ProjectRepository) Exists(ctx context.Context, id string) (bool, error) {
	const q = `select exists(select 1 from projects where id = $1);`

	var exists bool
	if err := r.db.QueryRow(ctx, q, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check project exists: %w", err)
	}
	return exists, nil
}
