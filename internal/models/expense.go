package models

import (
	"fmt"
	"time"

	"github.com/PhilipTheBackendDeveloper/finance-backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is one entry of the expense ledger.
//
// The ledger is owned by the expense tracking side of the system, this
// backend only reads it to build summaries and reports. There is no
// HTTP surface for creating expenses here.
type Expense struct {
	DefaultModel
	OwnerID     string          `json:"-" gorm:"index"`
	Category    string          `json:"category" example:"Transportation"`
	Month       types.Month     `json:"month" gorm:"index" example:"2024-05"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"17.80"`
	Description string          `json:"description,omitempty" example:"Monthly metro pass"`
	Date        time.Time       `json:"date" example:"2024-05-03T00:00:00Z"`
}

// CategoryTotal is the summed expense amount of one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// ExpensesForMonth returns all expenses of an owner for one month.
func ExpensesForMonth(db *gorm.DB, owner string, month types.Month) ([]Expense, error) {
	var expenses []Expense

	err := db.
		Where(&Expense{OwnerID: owner, Month: month}).
		Order("date ASC").
		Find(&expenses).
		Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

// ExpenseTotals groups an owner's expenses for one month by category and
// sums the amounts.
//
// Categories without any expense are absent from the result, they are
// not materialized as zero entries.
func ExpenseTotals(db *gorm.DB, owner string, month types.Month) ([]CategoryTotal, error) {
	var totals []CategoryTotal

	err := db.Table("expenses").
		Select("category, SUM(amount) AS total").
		Where(&Expense{OwnerID: owner, Month: month}).
		Group("category").
		Order("category ASC").
		Find(&totals).
		Error
	if err != nil {
		return nil, fmt.Errorf("getting expense totals for month %s failed: %w", month, err)
	}

	return totals, nil
}

// ExpenseStats returns the summed amount and the number of an owner's
// expenses for one month.
func ExpenseStats(db *gorm.DB, owner string, month types.Month) (decimal.Decimal, int64, error) {
	var count int64

	err := db.Model(&Expense{}).
		Where(&Expense{OwnerID: owner, Month: month}).
		Count(&count).
		Error
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("counting expenses for month %s failed: %w", month, err)
	}

	// SUM over zero rows is NULL, not zero
	var sum struct {
		Total decimal.NullDecimal
	}

	err = db.Table("expenses").
		Select("SUM(amount) AS total").
		Where(&Expense{OwnerID: owner, Month: month}).
		Scan(&sum).
		Error
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("summing expenses for month %s failed: %w", month, err)
	}

	return sum.Total.Decimal, count, nil
}
