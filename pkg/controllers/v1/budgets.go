package v1

import (
	"net/http"

	"github.com/budget-tracker/backend/pkg/aggregate"
	"github.com/budget-tracker/backend/pkg/httperrors"
	"github.com/budget-tracker/backend/pkg/httputil"
	"github.com/budget-tracker/backend/pkg/ledger"
	"github.com/budget-tracker/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BudgetResponse struct {
	Data aggregate.BudgetStatus `json:"data"` // Data for the budget
}

type BudgetListResponse struct {
	Data []aggregate.BudgetStatus `json:"data"` // List of budgets
}

// BudgetEditable is the body for updates of a single budget.
type BudgetEditable struct {
	Amount decimal.Decimal `json:"amount" example:"600"`
}

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsBudgetList)
		r.GET("", co.GetBudgets)
		r.POST("", co.SetBudget)
	}

	{
		r.OPTIONS("/copy-previous", co.OptionsCopyPreviousBudgets)
		r.POST("/copy-previous", co.CopyPreviousBudgets)
	}

	// Budget for a category
	{
		r.OPTIONS("/:category", co.OptionsBudgetDetail)
		r.GET("/:category", co.GetBudget)
		r.PATCH("/:category", co.UpdateBudget)
		r.DELETE("/:category", co.DeleteBudget)
	}
}

// OptionsBudgetList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Budgets
//	@Success		204
//	@Router			/v1/budgets [options]
func (co Controller) OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsCopyPreviousBudgets returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Budgets
//	@Success		204
//	@Router			/v1/budgets/copy-previous [options]
func (co Controller) OptionsCopyPreviousBudgets(c *gin.Context) {
	httputil.OptionsPost(c)
}

// OptionsBudgetDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Budgets
//	@Success		204
//	@Param			category	path	string	true	"Name of the category"
//	@Router			/v1/budgets/{category} [options]
func (co Controller) OptionsBudgetDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// GetBudgets returns the budgets of a month
//
//	@Summary		Get budgets
//	@Description	Returns the budgets of the month with their usage. Defaults to the active month
//	@Tags			Budgets
//	@Produce		json
//	@Success		200	{object}	BudgetListResponse
//	@Failure		400	{object}	httperrors.HTTPError
//	@Param			month	query	string	false	"Month in YYYY-MM format"
//	@Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	scope, ok := co.scope(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: aggregate.BudgetStatuses(scope.Budgets())})
}

// SetBudget creates or replaces the budget of a category
//
//	@Summary		Set budget
//	@Description	Sets the budget of a category. An existing budget for the category is replaced and keeps its spent amount
//	@Tags			Budgets
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	BudgetResponse
//	@Failure		400	{object}	httperrors.HTTPError
//	@Failure		500	{object}	httperrors.HTTPError
//	@Param			month	query	string				false	"Month in YYYY-MM format"
//	@Param			budget	body	models.BudgetCreate	true	"Budget"
//	@Router			/v1/budgets [post]
func (co Controller) SetBudget(c *gin.Context) {
	var create models.BudgetCreate
	if err := httputil.BindData(c, &create); err != nil {
		httperrors.Handler(c, err)
		return
	}

	scope, ok := co.scope(c)
	if !ok {
		return
	}

	budget, err := scope.AddBudget(create)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, BudgetResponse{Data: aggregate.BudgetStatuses([]models.Budget{budget})[0]})
}

// CopyPreviousBudgets copies the budgets of the previous month
//
//	@Summary		Copy budgets from previous month
//	@Description	Replaces the budgets of the month with the ones of the month before
//	@Tags			Budgets
//	@Produce		json
//	@Success		201	{object}	BudgetListResponse
//	@Failure		400	{object}	httperrors.HTTPError
//	@Failure		500	{object}	httperrors.HTTPError
//	@Param			month	query	string	false	"Month in YYYY-MM format"
//	@Router			/v1/budgets/copy-previous [post]
func (co Controller) CopyPreviousBudgets(c *gin.Context) {
	scope, ok := co.scope(c)
	if !ok {
		return
	}

	budgets, err := scope.CopyPreviousMonthBudgets()
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, BudgetListResponse{Data: aggregate.BudgetStatuses(budgets)})
}

// GetBudget returns the budget of a category
//
//	@Summary		Get budget
//	@Description	Returns the budget of a category in the month
//	@Tags			Budgets
//	@Produce		json
//	@Success		200	{object}	BudgetResponse
//	@Failure		400	{object}	httperrors.HTTPError
//	@Failure		404	{object}	httperrors.HTTPError
//	@Param			category	path	string	true	"Name of the category"
//	@Param			month		query	string	false	"Month in YYYY-MM format"
//	@Router			/v1/budgets/{category} [get]
func (co Controller) GetBudget(c *gin.Context) {
	budget, _, ok := co.budget(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: aggregate.BudgetStatuses([]models.Budget{budget})[0]})
}

// UpdateBudget updates the amount of a budget
//
//	@Summary		Update budget
//	@Description	Updates the amount of an existing budget
//	@Tags			Budgets
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	BudgetResponse
//	@Failure		400	{object}	httperrors.HTTPError
//	@Failure		404	{object}	httperrors.HTTPError
//	@Failure		500	{object}	httperrors.HTTPError
//	@Param			category	path	string			true	"Name of the category"
//	@Param			month		query	string			false	"Month in YYYY-MM format"
//	@Param			budget		body	BudgetEditable	true	"Budget"
//	@Router			/v1/budgets/{category} [patch]
func (co Controller) UpdateBudget(c *gin.Context) {
	budget, scope, ok := co.budget(c)
	if !ok {
		return
	}

	edit := BudgetEditable{Amount: budget.Amount}
	if err := httputil.BindData(c, &edit); err != nil {
		httperrors.Handler(c, err)
		return
	}

	budget, err := scope.UpdateBudget(models.BudgetCreate{Category: budget.Category, Amount: edit.Amount})
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: aggregate.BudgetStatuses([]models.Budget{budget})[0]})
}

// DeleteBudget deletes the budget of a category
//
//	@Summary		Delete budget
//	@Description	Deletes the budget of a category in the month
//	@Tags			Budgets
//	@Success		204
//	@Failure		400	{object}	httperrors.HTTPError
//	@Failure		404	{object}	httperrors.HTTPError
//	@Failure		500	{object}	httperrors.HTTPError
//	@Param			category	path	string	true	"Name of the category"
//	@Param			month		query	string	false	"Month in YYYY-MM format"
//	@Router			/v1/budgets/{category} [delete]
func (co Controller) DeleteBudget(c *gin.Context) {
	var uri URICategory
	if err := c.ShouldBindUri(&uri); err != nil {
		httperrors.New(c, http.StatusBadRequest, err.Error())
		return
	}

	scope, ok := co.scope(c)
	if !ok {
		return
	}

	if err := scope.DeleteBudget(uri.Category); err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// budget looks up the budget addressed by the request.
func (co Controller) budget(c *gin.Context) (models.Budget, *ledger.Scope, bool) {
	var uri URICategory
	if err := c.ShouldBindUri(&uri); err != nil {
		httperrors.New(c, http.StatusBadRequest, err.Error())
		return models.Budget{}, nil, false
	}

	scope, ok := co.scope(c)
	if !ok {
		return models.Budget{}, nil, false
	}

	budget, ok := scope.Budget(uri.Category)
	if !ok {
		httperrors.Handler(c, ledger.ErrBudgetNotFound)
		return models.Budget{}, nil, false
	}

	return budget, scope, true
}
