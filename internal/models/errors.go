package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrBudgetFieldsMissing     = errors.New("category, amount and month must all be set")
	ErrMonthInvalid            = errors.New("months must be specified as YYYY-MM")
	ErrBudgetAmountNotPositive = errors.New("budget amounts must be larger than zero")
	ErrCategoryUnknown         = errors.New("the category is not in the recognized category set")
	ErrBudgetNotUnique         = errors.New("you can not create multiple budgets for the same category and month")
)
