package domain

import (
	"github.com/buildledger/budget-backend/internal/api/errs"
	"github.com/buildledger/budget-backend/internal/core"
)

// Input is the caller-supplied payload for creating or replacing an expense.
// Amount is declared as any so that JSON numbers and numeric strings both
// survive decoding untouched until coercion.
type Input struct {
	Description string `json:"description"`
	Amount      any    `json:"amount"`
	Category    string `json:"category"`
}

// ValidateInput checks an expense payload and returns the coerced amount.
// It is a pure function: no lookups, no writes. Runs before every create
// and every full update.
func ValidateInput(in Input) (float64, error) {
	if in.Description == "" || in.Amount == nil || in.Category == "" {
		return 0, errs.Validation("description, amount and category are required")
	}

	amount, ok := core.CoerceNumber(in.Amount)
	if !ok || amount < 0 {
		return 0, errs.Validation("amount must be a non-negative number")
	}

	if !Category(in.Category).Valid() {
		return 0, errs.Validation("category must be one of: " + CategoryList())
	}

	return amount, nil
}
