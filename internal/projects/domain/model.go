package domain

import (
	"time"

	expdomain "github.com/buildledger/budget-backend/internal/expenses/domain"
)

// Project is a unit of construction work tracked against an estimated budget.
// TotalExpenses and RemainingBudget are derived at read time from the live
// set of expenses and are never persisted; RemainingBudget may go negative
// when a project runs over budget.
type Project struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	ClientName      string    `json:"clientName"`
	EstimatedBudget float64   `json:"estimatedBudget"`
	TotalExpenses   float64   `json:"totalExpenses"`
	RemainingBudget float64   `json:"remainingBudget"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ProjectDetail is the single-project read: the aggregated project plus its
// expenses in chronological order.
type ProjectDetail struct {
	Project
	Expenses []expdomain.Expense `json:"expenses"`
}
