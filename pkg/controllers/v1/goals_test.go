package v1_test

import (
	"net/http"

	"github.com/budget-tracker/backend/internal/uuid"
	v1 "github.com/budget-tracker/backend/pkg/controllers/v1"
	"github.com/budget-tracker/backend/pkg/models"
	"github.com/budget-tracker/backend/test"
)

func (suite *TestSuiteStandard) createGoal(target, current string) v1.GoalResponse {
	r := suite.request(http.MethodPost, "http://example.com/v1/goals", map[string]any{
		"name":          "Bike",
		"targetAmount":  target,
		"currentAmount": current,
		"deadline":      "2024-09-01",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return response
}

func (suite *TestSuiteStandard) TestGoals() {
	goal := suite.createGoal("800", "100").Data
	suite.Assert().Equal("Bike", goal.Name)
	suite.Assert().Equal("2024-09-01", goal.Deadline.String())
	suite.assertDecimal("700", goal.Remaining)
	suite.assertDecimal("12.5", goal.Percent)
	suite.Assert().False(goal.Complete)

	r := suite.request(http.MethodGet, "http://example.com/v1/goals", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.GoalListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 1)
	suite.Assert().Equal(goal.ID, list.Data[0].ID)

	r = suite.request(http.MethodPatch, "http://example.com/v1/goals/"+goal.ID.String(), map[string]any{"name": "E-Bike", "currentAmount": "800"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal("E-Bike", updated.Data.Name)
	suite.assertDecimal("800", updated.Data.TargetAmount)
	suite.Assert().True(updated.Data.Complete)

	r = suite.request(http.MethodPatch, "http://example.com/v1/goals/"+goal.ID.String(), map[string]any{"currentAmount": "50"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(http.MethodDelete, "http://example.com/v1/goals/"+goal.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodGet, "http://example.com/v1/goals/"+goal.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGoalCreateRejected() {
	r := suite.request(http.MethodPost, "http://example.com/v1/goals", map[string]any{"name": "Bike", "targetAmount": "0"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(http.MethodPost, "http://example.com/v1/goals", map[string]any{"targetAmount": "100"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGoalContribution() {
	suite.createBudget("Savings", "200")
	goal := suite.createGoal("800", "100").Data

	r := suite.request(http.MethodPost, "http://example.com/v1/goals/"+goal.ID.String()+"/contributions", map[string]any{"amount": "150"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ContributionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.assertDecimal("250", response.Data.Goal.CurrentAmount)
	suite.assertDecimal("550", response.Data.Goal.Remaining)

	transaction := response.Data.Transaction
	suite.Assert().Equal("Savings", transaction.Category)
	suite.Assert().Equal("Contribution to Bike", transaction.Description)
	suite.Assert().Equal("2024-05-15", transaction.Date.String())
	suite.Assert().Equal(models.Expense, transaction.Type)
	suite.assertDecimal("150", transaction.Amount)

	list := suite.transactions("http://example.com/v1/transactions")
	suite.Require().Len(list, 1)
	suite.Assert().Equal(transaction.ID, list[0].ID)

	budgets := suite.budgets("http://example.com/v1/budgets")
	suite.Require().Len(budgets, 1)
	suite.assertDecimal("150", budgets[0].Spent)
}

func (suite *TestSuiteStandard) TestGoalContributionRejected() {
	goal := suite.createGoal("800", "100").Data

	r := suite.request(http.MethodPost, "http://example.com/v1/goals/"+goal.ID.String()+"/contributions", map[string]any{"amount": "0"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(http.MethodPost, "http://example.com/v1/goals/"+uuid.New().String()+"/contributions", map[string]any{"amount": "10"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(http.MethodGet, "http://example.com/v1/goals/"+goal.ID.String(), nil)
	var current v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &current)
	suite.assertDecimal("100", current.Data.CurrentAmount)

	suite.Assert().Len(suite.transactions("http://example.com/v1/transactions"), 0)
}
