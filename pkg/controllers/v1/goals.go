package v1

import (
	"net/http"

	"github.com/budget-tracker/backend/pkg/aggregate"
	"github.com/budget-tracker/backend/pkg/httperrors"
	"github.com/budget-tracker/backend/pkg/httputil"
	"github.com/budget-tracker/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

type GoalResponse struct {
	Data aggregate.GoalStatus `json:"data"` // Data for the savings goal
}

type GoalListResponse struct {
	Data []aggregate.GoalStatus `json:"data"` // List of savings goals
}

// Contribution is the result of a contribution to a savings goal.
type Contribution struct {
	Goal        aggregate.GoalStatus `json:"goal"`        // The savings goal after the contribution
	Transaction models.Transaction   `json:"transaction"` // The expense recording the contribution
}

type ContributionResponse struct {
	Data Contribution `json:"data"`
}

// RegisterGoalRoutes registers the routes for savings goals with
// the RouterGroup that is passed.
func (co Controller) RegisterGoalRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsGoalList)
		r.GET("", co.GetGoals)
		r.POST("", co.CreateGoal)
	}

	// Savings goal with ID
	{
		r.OPTIONS("/:id", co.OptionsGoalDetail)
		r.GET("/:id", co.GetGoal)
		r.PATCH("/:id", co.UpdateGoal)
		r.DELETE("/:id", co.DeleteGoal)
	}

	{
		r.OPTIONS("/:id/contributions", co.OptionsGoalContributions)
		r.POST("/:id/contributions", co.ContributeGoal)
	}
}

// OptionsGoalList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Goals
//	@Success		204
//	@Router			/v1/goals [options]
func (co Controller) OptionsGoalList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsGoalDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Goals
//	@Success		204
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/goals/{id} [options]
func (co Controller) OptionsGoalDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// OptionsGoalContributions returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Goals
//	@Success		204
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/goals/{id}/contributions [options]
func (co Controller) OptionsGoalContributions(c *gin.Context) {
	httputil.OptionsPost(c)
}

// GetGoals returns all savings goals
//
//	@Summary		Get savings goals
//	@Description	Returns all savings goals with their progress
//	@Tags			Goals
//	@Produce		json
//	@Success		200	{object}	GoalListResponse
//	@Router			/v1/goals [get]
func (co Controller) GetGoals(c *gin.Context) {
	c.JSON(http.StatusOK, GoalListResponse{Data: aggregate.GoalProgress(co.store(c).SavingsGoals())})
}

// CreateGoal creates a savings goal
//
//	@Summary		Create savings goal
//	@Description	Creates a new savings goal
//	@Tags			Goals
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	GoalResponse
//	@Failure		400	{object}	httperrors.HTTPError
//	@Failure		500	{object}	httperrors.HTTPError
//	@Param			goal	body	models.SavingsGoalCreate	true	"Savings goal"
//	@Router			/v1/goals [post]
func (co Controller) CreateGoal(c *gin.Context) {
	var create models.SavingsGoalCreate
	if err := httputil.BindData(c, &create); err != nil {
		httperrors.Handler(c, err)
		return
	}

	goal, err := co.store(c).AddSavingsGoal(create)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, GoalResponse{Data: goalStatus(goal)})
}

// GetGoal returns a specific savings goal
//
//	@Summary		Get savings goal
//	@Description	Returns a specific savings goal with its progress
//	@Tags			Goals
//	@Produce		json
//	@Success		200	{object}	GoalResponse
//	@Failure		400	{object}	httperrors.HTTPError
//	@Failure		404	{object}	httperrors.HTTPError
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/goals/{id} [get]
func (co Controller) GetGoal(c *gin.Context) {
	goal, ok := co.goal(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, GoalResponse{Data: goalStatus(goal)})
}

// UpdateGoal updates a specific savings goal
//
//	@Summary		Update savings goal
//	@Description	Updates an existing savings goal. Only values to be updated need to be specified. The current amount can not be decreased
//	@Tags			Goals
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	GoalResponse
//	@Failure		400	{object}	httperrors.HTTPError
//	@Failure		404	{object}	httperrors.HTTPError
//	@Failure		500	{object}	httperrors.HTTPError
//	@Param			id		path	string						true	"ID formatted as string"
//	@Param			goal	body	models.SavingsGoalCreate	true	"Savings goal"
//	@Router			/v1/goals/{id} [patch]
func (co Controller) UpdateGoal(c *gin.Context) {
	goal, ok := co.goal(c)
	if !ok {
		return
	}

	if err := httputil.BindData(c, &goal.SavingsGoalCreate); err != nil {
		httperrors.Handler(c, err)
		return
	}

	goal, err := co.store(c).UpdateSavingsGoal(goal)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, GoalResponse{Data: goalStatus(goal)})
}

// DeleteGoal deletes a specific savings goal
//
//	@Summary		Delete savings goal
//	@Description	Deletes a savings goal. Transactions recording contributions are kept
//	@Tags			Goals
//	@Success		204
//	@Failure		400	{object}	httperrors.HTTPError
//	@Failure		404	{object}	httperrors.HTTPError
//	@Failure		500	{object}	httperrors.HTTPError
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/goals/{id} [delete]
func (co Controller) DeleteGoal(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	if err := co.store(c).DeleteSavingsGoal(uri.ID); err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ContributeGoal contributes to a savings goal
//
//	@Summary		Contribute to savings goal
//	@Description	Increases the saved amount of the goal and records the contribution as an expense in the Savings category
//	@Tags			Goals
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	ContributionResponse
//	@Failure		400	{object}	httperrors.HTTPError
//	@Failure		404	{object}	httperrors.HTTPError
//	@Failure		500	{object}	httperrors.HTTPError
//	@Param			id				path	string			true	"ID formatted as string"
//	@Param			month			query	string			false	"Month in YYYY-MM format"
//	@Param			contribution	body	AmountEditable	true	"Contribution"
//	@Router			/v1/goals/{id}/contributions [post]
func (co Controller) ContributeGoal(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	var contribution AmountEditable
	if err := httputil.BindData(c, &contribution); err != nil {
		httperrors.Handler(c, err)
		return
	}

	scope, ok := co.scope(c)
	if !ok {
		return
	}

	goal, transaction, err := scope.ContributeSavingsGoal(uri.ID, contribution.Amount)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, ContributionResponse{Data: Contribution{Goal: goalStatus(goal), Transaction: transaction}})
}

func (co Controller) goal(c *gin.Context) (models.SavingsGoal, bool) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httperrors.InvalidUUID(c)
		return models.SavingsGoal{}, false
	}

	goal, err := co.store(c).SavingsGoal(uri.ID)
	if err != nil {
		httperrors.Handler(c, err)
		return models.SavingsGoal{}, false
	}

	return goal, true
}

func goalStatus(goal models.SavingsGoal) aggregate.GoalStatus {
	return aggregate.GoalProgress([]models.SavingsGoal{goal})[0]
}
