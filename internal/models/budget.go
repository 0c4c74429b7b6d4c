package models

import (
	"strings"

	"github.com/PhilipTheBackendDeveloper/finance-backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is the spending ceiling for one category in one month.
//
// An owner can have at most one budget per (category, month) pair. The
// composite unique index is the transactional backstop for the check in
// BeforeSave.
type Budget struct {
	DefaultModel
	OwnerID  string          `json:"-" gorm:"uniqueIndex:budget_owner_category_month"`
	Category string          `json:"category" gorm:"uniqueIndex:budget_owner_category_month" example:"Food & Dining"`
	Month    types.Month     `json:"month" gorm:"uniqueIndex:budget_owner_category_month" example:"2024-05"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"500"`
}

func (b *Budget) BeforeSave(tx *gorm.DB) error {
	b.Category = strings.TrimSpace(b.Category)

	var existing []Budget
	err := tx.Where(&Budget{OwnerID: b.OwnerID}).Find(&existing).Error
	if err != nil {
		return err
	}

	return validateBudget(*b, existing, b.ID)
}

// validateBudget checks a budget candidate against the owner's existing
// collection. It is a pure function of its inputs.
//
// excludeID is the candidate's own ID during updates so that a budget
// never collides with itself. On creation the ID is not assigned yet,
// uuid.Nil matches nothing.
func validateBudget(candidate Budget, existing []Budget, excludeID uuid.UUID) error {
	if candidate.OwnerID == "" || candidate.Category == "" || candidate.Month.IsZero() {
		return ErrBudgetFieldsMissing
	}

	if !candidate.Month.Valid() {
		return ErrMonthInvalid
	}

	if !CategoryValid(candidate.Category) {
		return ErrCategoryUnknown
	}

	if !candidate.Amount.IsPositive() {
		return ErrBudgetAmountNotPositive
	}

	for _, other := range existing {
		if other.ID == excludeID {
			continue
		}

		if other.Category == candidate.Category && other.Month == candidate.Month {
			return ErrBudgetNotUnique
		}
	}

	return nil
}

// BudgetsForMonth returns all budgets of an owner for one month,
// ordered by category.
func BudgetsForMonth(db *gorm.DB, owner string, month types.Month) ([]Budget, error) {
	var budgets []Budget

	err := db.
		Where(&Budget{OwnerID: owner, Month: month}).
		Order("category ASC").
		Find(&budgets).
		Error
	if err != nil {
		return nil, err
	}

	return budgets, nil
}
