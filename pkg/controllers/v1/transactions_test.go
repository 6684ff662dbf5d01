package v1_test

import (
	"net/http"

	"github.com/budget-tracker/backend/internal/uuid"
	v1 "github.com/budget-tracker/backend/pkg/controllers/v1"
	"github.com/budget-tracker/backend/pkg/models"
	"github.com/budget-tracker/backend/test"
)

func (suite *TestSuiteStandard) TestTransactions() {
	salary := suite.createTransaction("3000", "Salary", "2024-05-01", models.Income)
	food := suite.createTransaction("42.5", "Food", "2024-05-12", models.Expense)

	suite.Assert().Equal("Food on 2024-05-12", food.Description)
	suite.Assert().Equal("2024-05-12", food.Date.String())
	suite.assertDecimal("42.5", food.Amount)

	list := suite.transactions("http://example.com/v1/transactions")
	suite.Require().Len(list, 2)
	suite.Assert().Equal(food.ID, list[0].ID, "Most recent transaction must be first")
	suite.Assert().Equal(salary.ID, list[1].ID)

	r := suite.request(http.MethodGet, "http://example.com/v1/transactions/"+food.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(food, response.Data)
}

func (suite *TestSuiteStandard) TestTransactionsFilter() {
	suite.createTransaction("3000", "Salary", "2024-05-01", models.Income)
	suite.createTransaction("42.5", "Food", "2024-05-12", models.Expense)
	suite.createTransaction("800", "Housing", "2024-05-02", models.Expense)

	tests := []struct {
		query string
		len   int
	}{
		{"", 3},
		{"?type=income", 1},
		{"?type=expense", 2},
		{"?search=FOOD", 1},
		{"?search=4*.5", 1},
		{"?search=on%202024-05", 3},
		{"?type=income&search=food", 0},
	}

	for _, tt := range tests {
		suite.Run(tt.query, func() {
			suite.Assert().Len(suite.transactions("http://example.com/v1/transactions"+tt.query), tt.len)
		})
	}

	r := suite.request(http.MethodGet, "http://example.com/v1/transactions?type=transfer", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionUpdate() {
	suite.createBudget("Food", "500")
	food := suite.createTransaction("40", "Food", "2024-05-12", models.Expense)

	r := suite.request(http.MethodPatch, "http://example.com/v1/transactions/"+food.ID.String(), map[string]any{"amount": "60"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.assertDecimal("60", response.Data.Amount)
	suite.Assert().Equal("Food", response.Data.Category, "Fields not in the body must not change")
	suite.Assert().Equal(food.Description, response.Data.Description)

	var budget v1.BudgetResponse
	r = suite.request(http.MethodGet, "http://example.com/v1/budgets/Food", nil)
	test.DecodeResponse(suite.T(), &r, &budget)
	suite.assertDecimal("60", budget.Data.Spent)

	r = suite.request(http.MethodPatch, "http://example.com/v1/transactions/"+food.ID.String(), map[string]any{"category": "Housing"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(http.MethodGet, "http://example.com/v1/budgets/Food", nil)
	test.DecodeResponse(suite.T(), &r, &budget)
	suite.assertDecimal("0", budget.Data.Spent)
}

func (suite *TestSuiteStandard) TestTransactionUpdateRejected() {
	food := suite.createTransaction("40", "Food", "2024-05-12", models.Expense)

	r := suite.request(http.MethodPatch, "http://example.com/v1/transactions/"+food.ID.String(), map[string]any{"category": "Yachts"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Contains(test.DecodeError(suite.T(), r.Body.Bytes()), "no category")

	r = suite.request(http.MethodPatch, "http://example.com/v1/transactions/"+food.ID.String(), `{"amount": false}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	list := suite.transactions("http://example.com/v1/transactions")
	suite.Require().Len(list, 1)
	suite.Assert().Equal(food, list[0], "Rejected updates must not change the transaction")
}

func (suite *TestSuiteStandard) TestTransactionCreateRejected() {
	valid := func() map[string]any {
		return map[string]any{
			"amount":      "10",
			"description": "Bus ticket",
			"category":    "Transportation",
			"date":        "2024-05-02",
			"type":        "expense",
		}
	}

	tests := []struct {
		name   string
		change func(map[string]any)
	}{
		{"Zero amount", func(m map[string]any) { m["amount"] = "0" }},
		{"Negative amount", func(m map[string]any) { m["amount"] = "-10" }},
		{"No description", func(m map[string]any) { m["description"] = "  " }},
		{"Unknown category", func(m map[string]any) { m["category"] = "Yachts" }},
		{"No date", func(m map[string]any) { delete(m, "date") }},
		{"Invalid type", func(m map[string]any) { m["type"] = "transfer" }},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			body := valid()
			tt.change(body)

			r := suite.request(http.MethodPost, "http://example.com/v1/transactions", body)
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
		})
	}

	r := suite.request(http.MethodPost, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal("the request body must not be empty", test.DecodeError(suite.T(), r.Body.Bytes()))

	r = suite.request(http.MethodPost, "http://example.com/v1/transactions", `{"amount": `)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	suite.Assert().Len(suite.transactions("http://example.com/v1/transactions"), 0)
}

func (suite *TestSuiteStandard) TestTransactionNotFound() {
	url := "http://example.com/v1/transactions/" + uuid.New().String()

	for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete} {
		r := suite.request(method, url, map[string]any{"amount": "1"})
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	}

	r := suite.request(http.MethodGet, "http://example.com/v1/transactions/not-a-uuid", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Contains(test.DecodeError(suite.T(), r.Body.Bytes()), "not a valid UUID")
}

func (suite *TestSuiteStandard) TestTransactionDelete() {
	suite.createBudget("Food", "500")
	food := suite.createTransaction("40", "Food", "2024-05-12", models.Expense)

	r := suite.request(http.MethodDelete, "http://example.com/v1/transactions/"+food.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodGet, "http://example.com/v1/transactions/"+food.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var budget v1.BudgetResponse
	r = suite.request(http.MethodGet, "http://example.com/v1/budgets/Food", nil)
	test.DecodeResponse(suite.T(), &r, &budget)
	suite.assertDecimal("0", budget.Data.Spent)
}

func (suite *TestSuiteStandard) TestTransactionMonthQuery() {
	april := suite.createTransactionURL("http://example.com/v1/transactions?month=2024-04", "15", "Food", "2024-04-10", models.Expense)

	suite.Assert().Len(suite.transactions("http://example.com/v1/transactions"), 0, "The active month must not contain April's transactions")
	suite.Assert().Len(suite.transactions("http://example.com/v1/transactions?month=2024-04"), 1)

	r := suite.request(http.MethodDelete, "http://example.com/v1/transactions/"+april.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(http.MethodDelete, "http://example.com/v1/transactions/"+april.ID.String()+"?month=2024-04", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodGet, "http://example.com/v1/transactions?month=April", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Contains(test.DecodeError(suite.T(), r.Body.Bytes()), "YYYY-MM")
}
