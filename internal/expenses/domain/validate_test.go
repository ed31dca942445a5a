package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildledger/budget-backend/internal/api/errs"
)

func TestValidateInput_Valid(t *testing.T) {
	for _, category := range Categories {
		t.Run(string(category), func(t *testing.T) {
			amount, err := ValidateInput(Input{
				Description: "cement bags",
				Amount:      float64(120.5),
				Category:    string(category),
			})
			require.NoError(t, err)
			assert.Equal(t, 120.5, amount)
		})
	}

	t.Run("zero amount", func(t *testing.T) {
		amount, err := ValidateInput(Input{Description: "offcut", Amount: float64(0), Category: "other"})
		require.NoError(t, err)
		assert.Equal(t, 0.0, amount)
	})

	t.Run("numeric string amount is coerced", func(t *testing.T) {
		amount, err := ValidateInput(Input{Description: "rebar", Amount: "42", Category: "material"})
		require.NoError(t, err)
		assert.Equal(t, 42.0, amount)
	})
}

func TestValidateInput_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		in   Input
	}{
		{"missing description", Input{Amount: float64(10), Category: "labor"}},
		{"missing amount", Input{Description: "wiring", Category: "labor"}},
		{"missing category", Input{Description: "wiring", Amount: float64(10)}},
		{"empty input", Input{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateInput(tt.in)
			require.Error(t, err)
			assert.IsType(t, errs.Validation(""), err)
			assert.EqualError(t, err, "description, amount and category are required")
		})
	}
}

func TestValidateInput_InvalidAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount any
	}{
		{"negative", float64(-5)},
		{"negative string", "-5"},
		{"non-numeric string", "abc"},
		{"NaN", math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateInput(Input{Description: "paint", Amount: tt.amount, Category: "material"})
			require.Error(t, err)
			assert.EqualError(t, err, "amount must be a non-negative number")
		})
	}
}

func TestValidateInput_InvalidCategory(t *testing.T) {
	_, err := ValidateInput(Input{Description: "lunch", Amount: float64(12), Category: "food"})
	require.Error(t, err)
	assert.EqualError(t, err, "category must be one of: material, labor, other")
}

func TestCategoryValid(t *testing.T) {
	assert.True(t, CategoryMaterial.Valid())
	assert.True(t, CategoryLabor.Valid())
	assert.True(t, CategoryOther.Valid())
	assert.False(t, Category("Material").Valid())
	assert.False(t, Category("").Valid())
}
