package v1

import (
	"github.com/PhilipTheBackendDeveloper/finance-backend/internal/models"
	"github.com/PhilipTheBackendDeveloper/finance-backend/internal/types"
	"github.com/shopspring/decimal"
)

// BudgetEditable represents all user configurable parameters of a budget.
type BudgetEditable struct {
	Category string          `json:"category" example:"Food & Dining" default:""` // One of the recognized categories
	Amount   decimal.Decimal `json:"amount" example:"500" default:"0"`            // The spending ceiling, must be positive
	Month    types.Month     `json:"month" example:"2024-05" default:""`          // The month the ceiling applies to
}

func (editable BudgetEditable) model(owner string) models.Budget {
	return models.Budget{
		OwnerID:  owner,
		Category: editable.Category,
		Amount:   editable.Amount,
		Month:    editable.Month,
	}
}

// BudgetListResponse is the response for the budget collection.
//
// The "budgets" key is what existing clients consume, do not rename it.
type BudgetListResponse struct {
	Budgets []models.Budget `json:"budgets"`
	Error   *string         `json:"error,omitempty" example:"the specified resource ID is not a valid UUID"`
}

// BudgetResponse is the response for a single budget.
type BudgetResponse struct {
	Budget *models.Budget `json:"budget"`
	Error  *string        `json:"error,omitempty" example:"the specified resource ID is not a valid UUID"`
}

// BudgetQueryFilter narrows the budget collection.
type BudgetQueryFilter struct {
	Month    string `form:"month" example:"2024-05"`  // By month
	Category string `form:"category" example:"Food*"` // By category, glob patterns allowed
}
