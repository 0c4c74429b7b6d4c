package models_test

import (
	"testing"

	"github.com/PhilipTheBackendDeveloper/finance-backend/internal/models"
	"github.com/PhilipTheBackendDeveloper/finance-backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetCreate() {
	budget := suite.createTestBudget(models.Budget{
		Category: "Food & Dining",
		Month:    types.Month("2024-05"),
		Amount:   decimal.NewFromFloat(500),
	})

	assert.NotZero(suite.T(), budget.ID)
	assert.Equal(suite.T(), "Food & Dining", budget.Category)
	assert.Equal(suite.T(), types.Month("2024-05"), budget.Month)
	assert.True(suite.T(), budget.Amount.Equal(decimal.NewFromFloat(500)))
}

func (suite *TestSuiteStandard) TestBudgetValidation() {
	tests := []struct {
		name   string
		budget models.Budget
		err    error
	}{
		{
			"No category",
			models.Budget{OwnerID: "test-user", Month: "2024-05", Amount: decimal.NewFromFloat(100)},
			models.ErrBudgetFieldsMissing,
		},
		{
			"No month",
			models.Budget{OwnerID: "test-user", Category: "Travel", Amount: decimal.NewFromFloat(100)},
			models.ErrBudgetFieldsMissing,
		},
		{
			"Malformed month",
			models.Budget{OwnerID: "test-user", Category: "Travel", Month: "05/2024", Amount: decimal.NewFromFloat(100)},
			models.ErrMonthInvalid,
		},
		{
			"Unknown category",
			models.Budget{OwnerID: "test-user", Category: "Yachts", Month: "2024-05", Amount: decimal.NewFromFloat(100)},
			models.ErrCategoryUnknown,
		},
		{
			"Zero amount",
			models.Budget{OwnerID: "test-user", Category: "Travel", Month: "2024-05"},
			models.ErrBudgetAmountNotPositive,
		},
		{
			"Negative amount",
			models.Budget{OwnerID: "test-user", Category: "Travel", Month: "2024-05", Amount: decimal.NewFromFloat(-10)},
			models.ErrBudgetAmountNotPositive,
		},
		{
			"Valid budget",
			models.Budget{OwnerID: "test-user", Category: "Travel", Month: "2024-05", Amount: decimal.NewFromFloat(100)},
			nil,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.budget).Error
			assert.ErrorIs(t, err, tt.err, "Error is: %s", err)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetDuplicate() {
	_ = suite.createTestBudget(models.Budget{
		Category: "Shopping",
		Month:    types.Month("2024-05"),
		Amount:   decimal.NewFromFloat(250),
	})

	duplicate := models.Budget{
		OwnerID:  "test-user",
		Category: "Shopping",
		Month:    types.Month("2024-05"),
		Amount:   decimal.NewFromFloat(300),
	}
	err := models.DB.Create(&duplicate).Error
	assert.ErrorIs(suite.T(), err, models.ErrBudgetNotUnique)

	// The same key is fine for another owner
	other := models.Budget{
		OwnerID:  "other-user",
		Category: "Shopping",
		Month:    types.Month("2024-05"),
		Amount:   decimal.NewFromFloat(300),
	}
	err = models.DB.Create(&other).Error
	assert.Nil(suite.T(), err)

	// The same category in another month is fine, too
	nextMonth := suite.createTestBudget(models.Budget{
		Category: "Shopping",
		Month:    types.Month("2024-06"),
		Amount:   decimal.NewFromFloat(250),
	})
	assert.NotZero(suite.T(), nextMonth.ID)
}

func (suite *TestSuiteStandard) TestBudgetUpdate() {
	budget := suite.createTestBudget(models.Budget{
		Category: "Utilities",
		Month:    types.Month("2024-05"),
		Amount:   decimal.NewFromFloat(120),
	})

	_ = suite.createTestBudget(models.Budget{
		Category: "Healthcare",
		Month:    types.Month("2024-05"),
		Amount:   decimal.NewFromFloat(80),
	})

	// Updating a budget without changing its key never collides with itself
	budget.Amount = decimal.NewFromFloat(150)
	err := models.DB.Save(&budget).Error
	assert.Nil(suite.T(), err)

	// Moving it onto another budget's key has to fail
	budget.Category = "Healthcare"
	err = models.DB.Save(&budget).Error
	assert.ErrorIs(suite.T(), err, models.ErrBudgetNotUnique)

	// Moving it to a free key works, the ID stays the same
	budget.Category = "Entertainment"
	budget.Month = types.Month("2024-06")
	err = models.DB.Save(&budget).Error
	assert.Nil(suite.T(), err)

	var reloaded models.Budget
	err = models.DB.First(&reloaded, "id = ?", budget.ID).Error
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), "Entertainment", reloaded.Category)
	assert.Equal(suite.T(), types.Month("2024-06"), reloaded.Month)
	assert.True(suite.T(), reloaded.Amount.Equal(decimal.NewFromFloat(150)))
}

func (suite *TestSuiteStandard) TestBudgetUniquenessInvariant() {
	// After any sequence of create, update and delete there is at most
	// one budget per (owner, category, month)
	first := suite.createTestBudget(models.Budget{
		Category: "Food & Dining",
		Month:    types.Month("2024-05"),
		Amount:   decimal.NewFromFloat(500),
	})

	err := models.DB.Delete(&first).Error
	assert.Nil(suite.T(), err)

	second := suite.createTestBudget(models.Budget{
		Category: "Food & Dining",
		Month:    types.Month("2024-05"),
		Amount:   decimal.NewFromFloat(400),
	})

	var budgets []models.Budget
	err = models.DB.Where(&models.Budget{OwnerID: "test-user"}).Find(&budgets).Error
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), budgets, 1)
	assert.Equal(suite.T(), second.ID, budgets[0].ID)
}

func (suite *TestSuiteStandard) TestBudgetDelete() {
	budget := suite.createTestBudget(models.Budget{
		Category: "Travel",
		Month:    types.Month("2024-07"),
		Amount:   decimal.NewFromFloat(1000),
	})

	err := models.DB.Delete(&budget).Error
	assert.Nil(suite.T(), err)

	// Deletion is hard, the record is gone
	err = models.DB.First(&models.Budget{}, "id = ?", budget.ID).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestBudgetTrimWhitespace() {
	budget := suite.createTestBudget(models.Budget{
		Category: "  Travel ",
		Month:    types.Month("2024-07"),
		Amount:   decimal.NewFromFloat(1000),
	})

	assert.Equal(suite.T(), "Travel", budget.Category)
}

func (suite *TestSuiteStandard) TestBudgetsForMonth() {
	_ = suite.createTestBudget(models.Budget{
		Category: "Transportation",
		Month:    types.Month("2024-05"),
		Amount:   decimal.NewFromFloat(200),
	})
	_ = suite.createTestBudget(models.Budget{
		Category: "Food & Dining",
		Month:    types.Month("2024-05"),
		Amount:   decimal.NewFromFloat(500),
	})
	_ = suite.createTestBudget(models.Budget{
		Category: "Food & Dining",
		Month:    types.Month("2024-06"),
		Amount:   decimal.NewFromFloat(550),
	})

	budgets, err := models.BudgetsForMonth(models.DB, "test-user", types.Month("2024-05"))
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), budgets, 2)
	assert.Equal(suite.T(), "Food & Dining", budgets[0].Category)
	assert.Equal(suite.T(), "Transportation", budgets[1].Category)
}

func (suite *TestSuiteStandard) TestBudgetDatabaseClosed() {
	suite.CloseDB()

	budget := models.Budget{
		OwnerID:  "test-user",
		Category: "Travel",
		Month:    types.Month("2024-05"),
		Amount:   decimal.NewFromFloat(100),
	}
	err := models.DB.Create(&budget).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestBudgetAfterFindUTC() {
	budget := suite.createTestBudget(models.Budget{
		Category: "Other",
		Month:    types.Month("2024-05"),
		Amount:   decimal.NewFromFloat(10),
	})

	var reloaded models.Budget
	err := models.DB.First(&reloaded, "id = ?", budget.ID).Error
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), "UTC", reloaded.CreatedAt.Location().String())
}
