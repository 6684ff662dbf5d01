package v1_test

import (
	"net/http"

	"github.com/budget-tracker/backend/pkg/aggregate"
	v1 "github.com/budget-tracker/backend/pkg/controllers/v1"
	"github.com/budget-tracker/backend/pkg/models"
	"github.com/budget-tracker/backend/test"
)

func (suite *TestSuiteStandard) budgets(url string) []aggregate.BudgetStatus {
	r := suite.request(http.MethodGet, url, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return response.Data
}

func (suite *TestSuiteStandard) TestBudgets() {
	r := suite.request(http.MethodPost, "http://example.com/v1/budgets", map[string]any{"category": "Food", "amount": "500"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var created v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &created)
	suite.Assert().Equal("Food", created.Data.Category)
	suite.assertDecimal("500", created.Data.Amount)
	suite.assertDecimal("0", created.Data.Spent)
	suite.assertDecimal("500", created.Data.Remaining)

	suite.createTransaction("450", "Food", "2024-05-03", models.Expense)

	list := suite.budgets("http://example.com/v1/budgets")
	suite.Require().Len(list, 1)
	suite.assertDecimal("450", list[0].Spent)
	suite.assertDecimal("90", list[0].PercentUsed)
	suite.Assert().True(list[0].Warning)
	suite.Assert().False(list[0].OverBudget)

	r = suite.request(http.MethodPatch, "http://example.com/v1/budgets/Food", map[string]any{"amount": "400"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.assertDecimal("400", updated.Data.Amount)
	suite.assertDecimal("450", updated.Data.Spent)
	suite.assertDecimal("-50", updated.Data.Remaining)
	suite.Assert().True(updated.Data.OverBudget)

	r = suite.request(http.MethodDelete, "http://example.com/v1/budgets/%20Food", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodDelete, "http://example.com/v1/budgets/Food", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	suite.Assert().Len(suite.transactions("http://example.com/v1/transactions"), 1, "Deleting a budget must keep its transactions")
}

func (suite *TestSuiteStandard) TestBudgetSeededFromExpenses() {
	suite.createTransaction("120", "Food", "2024-05-03", models.Expense)
	suite.createTransaction("30", "Food", "2024-05-04", models.Expense)

	r := suite.request(http.MethodPost, "http://example.com/v1/budgets", map[string]any{"category": "Food", "amount": "500"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var created v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &created)
	suite.assertDecimal("150", created.Data.Spent)
}

func (suite *TestSuiteStandard) TestBudgetRejected() {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"Income category", map[string]any{"category": "Salary", "amount": "100"}},
		{"Unknown category", map[string]any{"category": "Yachts", "amount": "100"}},
		{"Zero amount", map[string]any{"category": "Food", "amount": "0"}},
		{"No category", map[string]any{"amount": "100"}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodPost, "http://example.com/v1/budgets", tt.body)
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
		})
	}

	r := suite.request(http.MethodPatch, "http://example.com/v1/budgets/Housing", map[string]any{"amount": "100"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	suite.Assert().Len(suite.budgets("http://example.com/v1/budgets"), 0)
}

func (suite *TestSuiteStandard) TestBudgetCategoryWithSlash() {
	suite.createBudget("Gifts/Donations", "50")

	r := suite.request(http.MethodGet, "http://example.com/v1/budgets/Gifts%2FDonations", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Gifts/Donations", response.Data.Category)
}

func (suite *TestSuiteStandard) TestCopyPreviousBudgets() {
	r := suite.request(http.MethodPost, "http://example.com/v1/budgets?month=2024-04", map[string]any{"category": "Food", "amount": "500"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
	suite.createTransactionURL("http://example.com/v1/transactions?month=2024-04", "300", "Food", "2024-04-20", models.Expense)

	r = suite.request(http.MethodPost, "http://example.com/v1/budgets/copy-previous", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("Food", response.Data[0].Category)
	suite.assertDecimal("500", response.Data[0].Amount)
	suite.assertDecimal("0", response.Data[0].Spent)

	april := suite.budgets("http://example.com/v1/budgets?month=2024-04")
	suite.Require().Len(april, 1)
	suite.assertDecimal("300", april[0].Spent)

	r = suite.request(http.MethodPost, "http://example.com/v1/budgets/copy-previous?month=2024-03", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Contains(test.DecodeError(suite.T(), r.Body.Bytes()), "no budgets to copy")
}
