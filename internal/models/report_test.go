package models_test

import (
	"github.com/PhilipTheBackendDeveloper/finance-backend/internal/models"
	"github.com/PhilipTheBackendDeveloper/finance-backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedOverspentMonth sets up May 2024 with budgets of 500 for food and
// 200 for transport against expenses of 600 and 150.
func (suite *TestSuiteStandard) seedOverspentMonth() {
	_ = suite.createTestBudget(models.Budget{
		Category: "Food & Dining",
		Month:    types.Month("2024-05"),
		Amount:   decimal.NewFromFloat(500),
	})
	_ = suite.createTestBudget(models.Budget{
		Category: "Transportation",
		Month:    types.Month("2024-05"),
		Amount:   decimal.NewFromFloat(200),
	})

	_ = suite.createTestExpense(models.Expense{
		Category: "Food & Dining",
		Month:    types.Month("2024-05"),
		Amount:   decimal.NewFromFloat(400),
	})
	_ = suite.createTestExpense(models.Expense{
		Category: "Food & Dining",
		Month:    types.Month("2024-05"),
		Amount:   decimal.NewFromFloat(200),
	})
	_ = suite.createTestExpense(models.Expense{
		Category: "Transportation",
		Month:    types.Month("2024-05"),
		Amount:   decimal.NewFromFloat(150),
	})
}

func (suite *TestSuiteStandard) TestBuildSummary() {
	suite.seedOverspentMonth()

	summary, err := models.BuildSummary(models.DB, "test-user", types.Month("2024-05"))
	require.Nil(suite.T(), err)

	assert.True(suite.T(), summary.TotalExpenses.Equal(decimal.NewFromFloat(750)), "TotalExpenses is %s", summary.TotalExpenses)
	assert.Equal(suite.T(), int64(3), summary.ExpenseCount)
	assert.True(suite.T(), summary.TotalBudget.Equal(decimal.NewFromFloat(700)), "TotalBudget is %s", summary.TotalBudget)
	assert.True(suite.T(), summary.RemainingBudget.Equal(decimal.NewFromFloat(-50)), "RemainingBudget is %s", summary.RemainingBudget)

	// 750 / 700 * 100 is roughly 107.1 percent
	assert.True(suite.T(), summary.BudgetUsagePercent.Round(1).Equal(decimal.NewFromFloat(107.1)), "BudgetUsagePercent is %s", summary.BudgetUsagePercent)
}

func (suite *TestSuiteStandard) TestBuildSummaryEmptyMonth() {
	summary, err := models.BuildSummary(models.DB, "test-user", types.Month("2024-05"))
	require.Nil(suite.T(), err)

	assert.True(suite.T(), summary.TotalExpenses.IsZero())
	assert.Equal(suite.T(), int64(0), summary.ExpenseCount)
	assert.True(suite.T(), summary.TotalBudget.IsZero())
	assert.True(suite.T(), summary.RemainingBudget.IsZero())
	assert.True(suite.T(), summary.BudgetUsagePercent.IsZero())
}

func (suite *TestSuiteStandard) TestBuildSummaryNoBudget() {
	_ = suite.createTestExpense(models.Expense{
		Category: "Food & Dining",
		Month:    types.Month("2024-05"),
		Amount:   decimal.NewFromFloat(100),
	})

	summary, err := models.BuildSummary(models.DB, "test-user", types.Month("2024-05"))
	require.Nil(suite.T(), err)

	assert.True(suite.T(), summary.TotalExpenses.Equal(decimal.NewFromFloat(100)))
	assert.True(suite.T(), summary.RemainingBudget.Equal(decimal.NewFromFloat(-100)), "RemainingBudget is %s", summary.RemainingBudget)

	// No budget means 0 percent, not a division error
	assert.True(suite.T(), summary.BudgetUsagePercent.IsZero())
}

func (suite *TestSuiteStandard) TestBuildReport() {
	suite.seedOverspentMonth()

	report, err := models.BuildReport(models.DB, "test-user", types.Month("2024-05"))
	require.Nil(suite.T(), err)

	// Pie chart is sorted by value, largest first
	require.Len(suite.T(), report.PieChartData, 2)
	assert.Equal(suite.T(), "Food & Dining", report.PieChartData[0].Name)
	assert.True(suite.T(), report.PieChartData[0].Value.Equal(decimal.NewFromFloat(600)))
	assert.Equal(suite.T(), "Transportation", report.PieChartData[1].Name)
	assert.True(suite.T(), report.PieChartData[1].Value.Equal(decimal.NewFromFloat(150)))

	// Percentages add up to 100
	percentageSum := report.PieChartData[0].Percentage.Add(report.PieChartData[1].Percentage)
	assert.True(suite.T(), percentageSum.Round(6).Equal(decimal.NewFromFloat(100)), "Percentage sum is %s", percentageSum)

	// Bar chart is sorted by category name
	require.Len(suite.T(), report.BarChartData, 2)
	food := report.BarChartData[0]
	assert.Equal(suite.T(), "Food & Dining", food.Category)
	assert.True(suite.T(), food.Expenses.Equal(decimal.NewFromFloat(600)))
	assert.True(suite.T(), food.Budget.Equal(decimal.NewFromFloat(500)))
	assert.True(suite.T(), food.OverBudget)

	transport := report.BarChartData[1]
	assert.Equal(suite.T(), "Transportation", transport.Category)
	assert.False(suite.T(), transport.OverBudget)

	assert.Equal(suite.T(), 1, report.OverBudgetCategoriesCount)
	assert.Equal(suite.T(), 2, report.TotalCategories)

	require.NotNil(suite.T(), report.TopSpendingCategory)
	assert.Equal(suite.T(), "Food & Dining", report.TopSpendingCategory.Category)
	assert.True(suite.T(), report.TopSpendingCategory.Amount.Equal(decimal.NewFromFloat(600)))
}

func (suite *TestSuiteStandard) TestBuildReportEmptyMonth() {
	report, err := models.BuildReport(models.DB, "test-user", types.Month("2024-05"))
	require.Nil(suite.T(), err)

	assert.Len(suite.T(), report.PieChartData, 0)
	assert.Len(suite.T(), report.BarChartData, 0)
	assert.Nil(suite.T(), report.TopSpendingCategory)
	assert.Equal(suite.T(), 0, report.OverBudgetCategoriesCount)
	assert.Equal(suite.T(), 0, report.TotalCategories)
}

func (suite *TestSuiteStandard) TestBuildReportUnbudgetedSpending() {
	_ = suite.createTestBudget(models.Budget{
		Category: "Food & Dining",
		Month:    types.Month("2024-05"),
		Amount:   decimal.NewFromFloat(500),
	})
	_ = suite.createTestExpense(models.Expense{
		Category: "Travel",
		Month:    types.Month("2024-05"),
		Amount:   decimal.NewFromFloat(2000),
	})

	report, err := models.BuildReport(models.DB, "test-user", types.Month("2024-05"))
	require.Nil(suite.T(), err)

	// Both the budgeted and the unbudgeted category appear
	require.Len(suite.T(), report.BarChartData, 2)
	assert.Equal(suite.T(), "Food & Dining", report.BarChartData[0].Category)
	assert.Equal(suite.T(), "Travel", report.BarChartData[1].Category)

	// Spending against no budget is never over budget
	assert.False(suite.T(), report.BarChartData[1].OverBudget)
	assert.Equal(suite.T(), 0, report.OverBudgetCategoriesCount)

	require.NotNil(suite.T(), report.TopSpendingCategory)
	assert.Equal(suite.T(), "Travel", report.TopSpendingCategory.Category)
}

func (suite *TestSuiteStandard) TestBuildReportBudgetWithoutSpending() {
	_ = suite.createTestBudget(models.Budget{
		Category: "Food & Dining",
		Month:    types.Month("2024-05"),
		Amount:   decimal.NewFromFloat(500),
	})

	report, err := models.BuildReport(models.DB, "test-user", types.Month("2024-05"))
	require.Nil(suite.T(), err)

	// No expenses, so no pie chart and no top category, but the
	// budgeted category still shows up in the bar chart
	assert.Len(suite.T(), report.PieChartData, 0)
	require.Len(suite.T(), report.BarChartData, 1)
	assert.True(suite.T(), report.BarChartData[0].Expenses.IsZero())
	assert.Nil(suite.T(), report.TopSpendingCategory)
	assert.Equal(suite.T(), 1, report.TotalCategories)
}

func (suite *TestSuiteStandard) TestBuildReportTopCategoryTieBreak() {
	_ = suite.createTestExpense(models.Expense{
		Category: "Travel",
		Month:    types.Month("2024-05"),
		Amount:   decimal.NewFromFloat(100),
	})
	_ = suite.createTestExpense(models.Expense{
		Category: "Entertainment",
		Month:    types.Month("2024-05"),
		Amount:   decimal.NewFromFloat(100),
	})

	report, err := models.BuildReport(models.DB, "test-user", types.Month("2024-05"))
	require.Nil(suite.T(), err)

	// On a tie the first category in name order wins
	require.NotNil(suite.T(), report.TopSpendingCategory)
	assert.Equal(suite.T(), "Entertainment", report.TopSpendingCategory.Category)
}

func (suite *TestSuiteStandard) TestBuildReportDatabaseClosed() {
	suite.CloseDB()

	_, err := models.BuildReport(models.DB, "test-user", types.Month("2024-05"))
	assert.NotNil(suite.T(), err)
}
