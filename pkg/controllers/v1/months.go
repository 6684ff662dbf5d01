package v1

import (
	"net/http"

	"github.com/budget-tracker/backend/internal/types"
	"github.com/budget-tracker/backend/pkg/aggregate"
	"github.com/budget-tracker/backend/pkg/httperrors"
	"github.com/budget-tracker/backend/pkg/httputil"
	"github.com/gin-gonic/gin"
)

// Month is the dashboard data for one month.
type Month struct {
	Month      types.Month               `json:"month" example:"2024-05"`
	Summary    aggregate.Summary         `json:"summary"`    // Income, expenses and balance
	Categories []aggregate.CategoryTotal `json:"categories"` // Expenses per category, largest first
	Budgets    []aggregate.BudgetStatus  `json:"budgets"`
}

type MonthResponse struct {
	Data Month `json:"data"` // Data for the month
}

type MonthListResponse struct {
	Data []types.Month `json:"data"` // Months holding transactions or budgets, oldest first
}

// Year is the data for the yearly overview.
type Year struct {
	Year           int                     `json:"year" example:"2024"`
	Months         []aggregate.MonthTotals `json:"months"` // Always twelve months, January first
	Totals         aggregate.YearTotals    `json:"totals"`
	AvailableYears []int                   `json:"availableYears"` // Years with transactions, newest first
}

type YearResponse struct {
	Data Year `json:"data"` // Data for the year
}

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func (co Controller) RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsMonthList)
	r.GET("", co.GetMonths)
	r.OPTIONS("/:month", co.OptionsMonth)
	r.GET("/:month", co.GetMonth)
}

// RegisterYearRoutes registers the routes for years with
// the RouterGroup that is passed.
func (co Controller) RegisterYearRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:year", co.OptionsYear)
	r.GET("/:year", co.GetYear)
}

// OptionsMonthList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Months
//	@Success		204
//	@Router			/v1/months [options]
func (co Controller) OptionsMonthList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsMonth returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Months
//	@Success		204
//	@Param			month	path	string	true	"Month in YYYY-MM format"
//	@Router			/v1/months/{month} [options]
func (co Controller) OptionsMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsYear returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Years
//	@Success		204
//	@Param			year	path	int	true	"Year"
//	@Router			/v1/years/{year} [options]
func (co Controller) OptionsYear(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetMonths returns the months with data
//
//	@Summary		Get months
//	@Description	Returns all months that hold transactions or budgets
//	@Tags			Months
//	@Produce		json
//	@Success		200	{object}	MonthListResponse
//	@Router			/v1/months [get]
func (co Controller) GetMonths(c *gin.Context) {
	c.JSON(http.StatusOK, MonthListResponse{Data: co.store(c).Months()})
}

// GetMonth returns data for a specific month
//
//	@Summary		Get month
//	@Description	Returns the totals, the expenses per category and the budget usage of a month
//	@Tags			Months
//	@Produce		json
//	@Success		200	{object}	MonthResponse
//	@Failure		400	{object}	httperrors.HTTPError
//	@Param			month	path	string	true	"Month in YYYY-MM format"
//	@Router			/v1/months/{month} [get]
func (co Controller) GetMonth(c *gin.Context) {
	var uri URIMonth
	if err := c.ShouldBindUri(&uri); err != nil {
		httperrors.InvalidMonth(c)
		return
	}

	month, err := types.ParseMonth(uri.Month)
	if err != nil {
		httperrors.InvalidMonth(c)
		return
	}

	scope := co.store(c).In(month)
	transactions := scope.Transactions()

	c.JSON(http.StatusOK, MonthResponse{Data: Month{
		Month:      month,
		Summary:    aggregate.Totals(transactions),
		Categories: aggregate.CategoryBreakdown(transactions),
		Budgets:    aggregate.BudgetStatuses(scope.Budgets()),
	}})
}

// GetYear returns data for a specific year
//
//	@Summary		Get year
//	@Description	Returns income, expenses and savings per month of the year and their sums
//	@Tags			Years
//	@Produce		json
//	@Success		200	{object}	YearResponse
//	@Failure		400	{object}	httperrors.HTTPError
//	@Param			year	path	int	true	"Year"
//	@Router			/v1/years/{year} [get]
func (co Controller) GetYear(c *gin.Context) {
	var uri URIYear
	if err := c.ShouldBindUri(&uri); err != nil {
		httperrors.New(c, http.StatusBadRequest, "The year must be a positive number")
		return
	}

	transactions := co.store(c).AllTransactions()
	series := aggregate.MonthlySeries(transactions, uri.Year)

	c.JSON(http.StatusOK, YearResponse{Data: Year{
		Year:           uri.Year,
		Months:         series,
		Totals:         aggregate.YearlyTotals(series),
		AvailableYears: aggregate.AvailableYears(transactions),
	}})
}
