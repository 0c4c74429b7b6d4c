package models

import (
	"strings"

	"github.com/PhilipTheBackendDeveloper/finance-backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// Summary contains the scalar KPIs for one month. It is recomputed on
// every request and never persisted.
type Summary struct {
	TotalExpenses      decimal.Decimal `json:"total_expenses" example:"750"`       // Sum of all expenses for the month
	ExpenseCount       int64           `json:"expense_count" example:"23"`         // Number of expenses for the month
	TotalBudget        decimal.Decimal `json:"total_budget" example:"700"`         // Sum of all budgets for the month
	RemainingBudget    decimal.Decimal `json:"remaining_budget" example:"-50"`     // Total budget minus total expenses, negative when overspent
	BudgetUsagePercent decimal.Decimal `json:"budget_usage_percent" example:"107"` // Percentage of the total budget spent, 0 when no budget is set
}

// PieChartEntry is one slice of the expenses-by-category breakdown.
type PieChartEntry struct {
	Name       string          `json:"name" example:"Food & Dining"`
	Value      decimal.Decimal `json:"value" example:"600"`
	Percentage decimal.Decimal `json:"percentage" example:"80"` // Share of the month's total expenses
}

// BarChartEntry compares one category's expenses against its budget.
type BarChartEntry struct {
	Category   string          `json:"category" example:"Food & Dining"`
	Expenses   decimal.Decimal `json:"expenses" example:"600"`
	Budget     decimal.Decimal `json:"budget" example:"500"`
	OverBudget bool            `json:"over_budget" example:"true"`
}

// TopCategory is the category with the largest expense total.
type TopCategory struct {
	Category string          `json:"category" example:"Food & Dining"`
	Amount   decimal.Decimal `json:"amount" example:"600"`
}

// Report contains the category level breakdown for one month. Like the
// Summary it is a value object, recomputed on every request.
type Report struct {
	PieChartData              []PieChartEntry `json:"pie_chart_data"`
	BarChartData              []BarChartEntry `json:"bar_chart_data"`
	TopSpendingCategory       *TopCategory    `json:"top_spending_category"` // nil when the month has no expenses
	OverBudgetCategoriesCount int             `json:"over_budget_categories_count" example:"1"`
	TotalCategories           int             `json:"total_categories" example:"2"`
}

var hundred = decimal.NewFromInt(100)

// BuildSummary computes the Summary for one owner and month.
func BuildSummary(db *gorm.DB, owner string, month types.Month) (Summary, error) {
	// SUM over zero rows is NULL, not zero
	var totalBudget struct {
		Total decimal.NullDecimal
	}

	err := db.Table("budgets").
		Select("SUM(amount) AS total").
		Where(&Budget{OwnerID: owner, Month: month}).
		Scan(&totalBudget).
		Error
	if err != nil {
		return Summary{}, err
	}

	totalExpenses, count, err := ExpenseStats(db, owner, month)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		TotalExpenses:   totalExpenses,
		ExpenseCount:    count,
		TotalBudget:     totalBudget.Total.Decimal,
		RemainingBudget: totalBudget.Total.Decimal.Sub(totalExpenses),
	}

	// Without a budget there is nothing to express a percentage of.
	// 0 is the defined result, not an error and not infinity.
	if totalBudget.Total.Decimal.IsPositive() {
		summary.BudgetUsagePercent = totalExpenses.Mul(hundred).Div(totalBudget.Total.Decimal)
	}

	return summary, nil
}

// BuildReport computes the Report for one owner and month.
func BuildReport(db *gorm.DB, owner string, month types.Month) (Report, error) {
	budgets, err := BudgetsForMonth(db, owner, month)
	if err != nil {
		return Report{}, err
	}

	totals, err := ExpenseTotals(db, owner, month)
	if err != nil {
		return Report{}, err
	}

	return newReport(budgets, totals), nil
}

// newReport derives the chart-ready report from one month's budgets and
// per-category expense totals. Pure function of its inputs.
func newReport(budgets []Budget, totals []CategoryTotal) Report {
	report := Report{
		PieChartData: make([]PieChartEntry, 0, len(totals)),
		BarChartData: make([]BarChartEntry, 0),
	}

	var totalExpenses decimal.Decimal
	for _, total := range totals {
		totalExpenses = totalExpenses.Add(total.Total)
	}

	for _, total := range totals {
		if !total.Total.IsPositive() {
			continue
		}

		entry := PieChartEntry{Name: total.Category, Value: total.Total}
		if totalExpenses.IsPositive() {
			entry.Percentage = total.Total.Mul(hundred).Div(totalExpenses)
		}

		report.PieChartData = append(report.PieChartData, entry)
	}

	// Largest slice first. The name breaks ties so that the chart keeps
	// its order between reloads.
	slices.SortFunc(report.PieChartData, func(a, b PieChartEntry) int {
		if c := b.Value.Cmp(a.Value); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})

	budgeted := make(map[string]decimal.Decimal, len(budgets))
	for _, budget := range budgets {
		budgeted[budget.Category] = budget.Amount
	}

	spent := make(map[string]decimal.Decimal, len(totals))
	for _, total := range totals {
		spent[total.Category] = total.Total
	}

	// The bar chart covers the union of budgeted and spent categories
	names := make([]string, 0, len(budgeted)+len(spent))
	for name := range budgeted {
		names = append(names, name)
	}
	for name := range spent {
		if _, ok := budgeted[name]; !ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	for _, name := range names {
		entry := BarChartEntry{
			Category: name,
			Expenses: spent[name],
			Budget:   budgeted[name],
		}

		// A budget of zero or no budget at all means unconstrained,
		// such a category is never flagged
		entry.OverBudget = entry.Budget.IsPositive() && entry.Expenses.GreaterThan(entry.Budget)
		if entry.OverBudget {
			report.OverBudgetCategoriesCount++
		}

		if entry.Expenses.IsPositive() &&
			(report.TopSpendingCategory == nil || entry.Expenses.GreaterThan(report.TopSpendingCategory.Amount)) {
			report.TopSpendingCategory = &TopCategory{Category: name, Amount: entry.Expenses}
		}

		report.BarChartData = append(report.BarChartData, entry)
	}

	report.TotalCategories = len(names)

	return report
}
