package v1

import (
	"net/http"

	"github.com/PhilipTheBackendDeveloper/finance-backend/internal/httputil"
	"github.com/PhilipTheBackendDeveloper/finance-backend/internal/models"
	"github.com/PhilipTheBackendDeveloper/finance-backend/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterReportRoutes registers the summary and report routes with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/summary", OptionsSummary)
		r.GET("/summary", GetSummary)
	}

	{
		r.OPTIONS("/reports", OptionsReport)
		r.GET("/reports", GetReport)
	}
}

// parseReportQuery binds the owner and the month query parameter shared
// by the summary and report endpoints.
func parseReportQuery(c *gin.Context) (string, types.Month, error) {
	var uri URIOwner
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return "", "", err
	}

	var query QueryMonth
	_ = c.Bind(&query)

	if query.Month == "" {
		return "", "", errMonthNotSetInQuery
	}

	month, err := types.ParseMonth(query.Month)
	if err != nil {
		return "", "", models.ErrMonthInvalid
	}

	return uri.UserID, month, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/users/{userId}/summary [options]
func OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/users/{userId}/reports [options]
func OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get monthly summary
// @Description	Returns the scalar key figures for one month
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	models.Summary
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			userId	path		string	true	"ID of the user"
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Router			/v1/users/{userId}/summary [get]
func GetSummary(c *gin.Context) {
	owner, month, err := parseReportQuery(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	summary, err := models.BuildSummary(models.DB, owner, month)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// @Summary		Get monthly report
// @Description	Returns the category breakdown and chart data for one month
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	models.Report
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			userId	path		string	true	"ID of the user"
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Router			/v1/users/{userId}/reports [get]
func GetReport(c *gin.Context) {
	owner, month, err := parseReportQuery(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	report, err := models.BuildReport(models.DB, owner, month)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, report)
}
