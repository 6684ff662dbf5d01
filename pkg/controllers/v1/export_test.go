package v1_test

import (
	"bytes"
	"net/http"

	"github.com/budget-tracker/backend/pkg/models"
	"github.com/budget-tracker/backend/test"
	"github.com/xuri/excelize/v2"
)

func (suite *TestSuiteStandard) createExpenses() {
	suite.createTransaction("3000", "Salary", "2024-05-01", models.Income)
	suite.createTransaction("40", "Food", "2024-05-12", models.Expense)
	suite.createTransaction("1234.5", "Housing", "2024-05-01", models.Expense)
}

func (suite *TestSuiteStandard) TestExportCSV() {
	suite.createExpenses()

	r := suite.request(http.MethodGet, "http://example.com/v1/export/expenses?format=csv&sort=amount&direction=asc", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	suite.Assert().Equal("text/csv; charset=utf-8", r.Header().Get("Content-Type"))
	suite.Assert().Equal("attachment; filename=expenses_2024_05.csv", r.Header().Get("Content-Disposition"))

	body := r.Body.String()
	suite.Assert().NotContains(body, "Salary")
	suite.Assert().Less(bytes.Index(r.Body.Bytes(), []byte("Food")), bytes.Index(r.Body.Bytes(), []byte("Housing")), "Expenses must be sorted by amount")
	suite.Assert().Contains(body, `"1,234.50"`)
	suite.Assert().Contains(body, `,Total,,"1,274.50"`)
}

func (suite *TestSuiteStandard) TestExportCategories() {
	suite.createExpenses()

	r := suite.request(http.MethodGet, "http://example.com/v1/export/expenses?format=csv&categories=Food,%20Debt", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	suite.Assert().Contains(r.Body.String(), "Food")
	suite.Assert().NotContains(r.Body.String(), "Housing")
}

func (suite *TestSuiteStandard) TestExportXLSX() {
	suite.createExpenses()

	r := suite.request(http.MethodGet, "http://example.com/v1/export/expenses", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal("attachment; filename=expenses_2024_05.xlsx", r.Header().Get("Content-Disposition"))

	f, err := excelize.OpenReader(bytes.NewReader(r.Body.Bytes()))
	suite.Require().Nil(err)
	defer f.Close()

	rows, err := f.GetRows("Expenses")
	suite.Require().Nil(err)
	suite.Assert().Len(rows, 4, "Header, two expenses and the total")
	suite.Assert().Equal([]string{"Date", "Description", "Category", "Amount"}, rows[0])
}

func (suite *TestSuiteStandard) TestExportRejected() {
	for _, query := range []string{"?format=pdf", "?sort=name", "?direction=up", "?month=May"} {
		suite.Run(query, func() {
			r := suite.request(http.MethodGet, "http://example.com/v1/export/expenses"+query, nil)
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
		})
	}
}
