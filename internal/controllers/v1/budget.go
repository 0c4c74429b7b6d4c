package v1

import (
	"net/http"

	"github.com/PhilipTheBackendDeveloper/finance-backend/internal/httputil"
	"github.com/PhilipTheBackendDeveloper/finance-backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetList)
		r.GET("", GetBudgets)
		r.POST("", CreateBudget)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", OptionsBudgetDetail)
		r.GET("/:id", GetBudget)
		r.PATCH("/:id", UpdateBudget)
		r.DELETE("/:id", DeleteBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/users/{userId}/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			userId	path	string	true	"ID of the user"
// @Param			id		path	string	true	"ID of the budget"
// @Router			/v1/users/{userId}/budgets/{id} [options]
func OptionsBudgetDetail(c *gin.Context) {
	var uri URIOwnerID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Budget{}, "id = ? AND owner_id = ?", uri.ID.UUID, uri.UserID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Get budgets
// @Description	Returns the list of budgets for a user, most recent month first
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Failure		400	{object}	BudgetListResponse
// @Failure		500	{object}	BudgetListResponse
// @Param			userId		path	string	true	"ID of the user"
// @Param			month		query	string	false	"Filter by month"
// @Param			category	query	string	false	"Filter by category, glob patterns allowed"
// @Router			/v1/users/{userId}/budgets [get]
func GetBudgets(c *gin.Context) {
	var uri URIOwner
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &s,
		})
		return
	}

	var filter BudgetQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	q := models.DB.
		Where(&models.Budget{OwnerID: uri.UserID}).
		Order("month DESC, category ASC")

	if filter.Month != "" {
		q = q.Where("month = ?", filter.Month)
	}

	var budgets []models.Budget
	err = q.Find(&budgets).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &s,
		})
		return
	}

	// glob matches plain strings as exact matches, so this covers
	// both filter styles
	if filter.Category != "" {
		matching := make([]models.Budget, 0, len(budgets))
		for _, budget := range budgets {
			if glob.Glob(filter.Category, budget.Category) {
				matching = append(matching, budget)
			}
		}
		budgets = matching
	}

	if budgets == nil {
		budgets = make([]models.Budget, 0)
	}

	c.JSON(http.StatusOK, BudgetListResponse{Budgets: budgets})
}

// @Summary		Create budget
// @Description	Creates a new budget for a category and month
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			userId	path		string			true	"ID of the user"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/users/{userId}/budgets [post]
func CreateBudget(c *gin.Context) {
	var uri URIOwner
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	var editable BudgetEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	budget := editable.model(uri.UserID)

	err = models.DB.Create(&budget).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, BudgetResponse{Budget: &budget})
}

// @Summary		Get budget
// @Description	Returns a specific budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Param			userId	path	string	true	"ID of the user"
// @Param			id		path	string	true	"ID of the budget"
// @Router			/v1/users/{userId}/budgets/{id} [get]
func GetBudget(c *gin.Context) {
	var uri URIOwnerID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, "id = ? AND owner_id = ?", uri.ID.UUID, uri.UserID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Budget: &budget})
}

// @Summary		Update budget
// @Description	Updates an existing budget. Category, amount and month must all be specified.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			userId	path		string			true	"ID of the user"
// @Param			id		path		string			true	"ID of the budget"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/users/{userId}/budgets/{id} [patch]
func UpdateBudget(c *gin.Context) {
	var uri URIOwnerID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, "id = ? AND owner_id = ?", uri.ID.UUID, uri.UserID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	var editable BudgetEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	// ID and owner never change on update
	budget.Category = editable.Category
	budget.Amount = editable.Amount
	budget.Month = editable.Month

	err = models.DB.Save(&budget).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Budget: &budget})
}

// @Summary		Delete budget
// @Description	Deletes a budget
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			userId	path	string	true	"ID of the user"
// @Param			id		path	string	true	"ID of the budget"
// @Router			/v1/users/{userId}/budgets/{id} [delete]
func DeleteBudget(c *gin.Context) {
	var uri URIOwnerID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, "id = ? AND owner_id = ?", uri.ID.UUID, uri.UserID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&budget).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
