package domain

import (
	"strings"
	"time"
)

// Expense is a single cost entry recorded against a project.
// ProjectID is only populated on reads that select it (update responses);
// list and create responses omit it.
type Expense struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"projectId,omitempty"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    Category  `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Category string

const (
	CategoryMaterial Category = "material"
	CategoryLabor    Category = "labor"
	CategoryOther    Category = "other"
)

// Categories is the fixed set of allowed expense categories.
var Categories = []Category{CategoryMaterial, CategoryLabor, CategoryOther}

func (c Category) Valid() bool {
	for _, allowed := range Categories {
		if c == allowed {
			return true
		}
	}
	return false
}

// CategoryList renders the allowed set for error messages,
// e.g. "material, labor, other".
func CategoryList() string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
