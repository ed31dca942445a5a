package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/buildledger/budget-backend/internal/api/errs"
	"github.com/buildledger/budget-backend/internal/expenses/domain"
)

// ExpenseRepository provides persistence operations for expenses.
type ExpenseRepository struct {
	db *pgxpool.Pool
}

func NewExpenseRepository(db *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// Create inserts an expense for the given project. The returned row omits
// project_id to match the create-response shape.
func (r *ExpenseRepository) Create(ctx context.Context, projectID, description string, amount float64, category domain.Category) (*domain.Expense, error) {
	const q = `
insert into expenses (id, project_id, description, amount, category)
values ($1, $2, $3, $4, $5)
returning id, description, amount, category, created_at;
`
	id := uuid.New().String()

	var e domain.Expense
	err := r.db.QueryRow(ctx, q, id, projectID, description, amount, category).
		Scan(&e.ID, &e.Description, &e.Amount, &e.Category, &e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert expense: %w", err)
	}
	return &e, nil
}

// ListByProject returns a project's expenses in chronological order. An
// unknown project id simply yields an empty slice.
func (r *ExpenseRepository) ListByProject(ctx context.Context, projectID string) ([]domain.Expense, error) {
	const q = `
select id, description, amount, category, created_at
from expenses
where project_id = $1
order by created_at asc;
`
	rows, err := r.db.Query(ctx, q, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Expense, 0, 16)
	for rows.Next() {
		var e domain.Expense
		if err := rows.Scan(&e.ID, &e.Description, &e.Amount, &e.Category, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Update replaces description, amount and category in a single statement.
// Absence is detected from the statement itself (no rows returned), not a
// separate pre-check. project_id is immutable and comes back in the row.
func (r *ExpenseRepository) Update(ctx context.Context, id, description string, amount float64, category domain.Category) (*domain.Expense, error) {
	const q = `
update expenses
set description = $2, amount = $3, category = $4
where id = $1
returning id, project_id, description, amount, category, created_at;
`
	var e domain.Expense
	err := r.db.QueryRow(ctx, q, id, description, amount, category).
		Scan(&e.ID, &e.ProjectID, &e.Description, &e.Amount, &e.Category, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrExpenseNotFound
		}
		return nil, fmt.Errorf("update expense: %w", err)
	}
	return &e, nil
}

// Delete removes an expense; zero rows affected means it never existed.
func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	const q = `delete from expenses where id = $1;`

	ct, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return errs.ErrExpenseNotFound
	}
	return nil
}
