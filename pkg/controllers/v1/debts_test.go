package v1_test

import (
	"net/http"

	"github.com/budget-tracker/backend/internal/uuid"
	v1 "github.com/budget-tracker/backend/pkg/controllers/v1"
	"github.com/budget-tracker/backend/test"
)

func (suite *TestSuiteStandard) createDebt(total, paid string) v1.DebtResponse {
	r := suite.request(http.MethodPost, "http://example.com/v1/debts", map[string]any{
		"name":         "Credit Card",
		"totalAmount":  total,
		"paidAmount":   paid,
		"interestRate": "19.9",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.DebtResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return response
}

func (suite *TestSuiteStandard) TestDebts() {
	debt := suite.createDebt("1000", "200").Data
	suite.assertDecimal("800", debt.Remaining)
	suite.assertDecimal("20", debt.PercentPaid)
	suite.assertDecimal("19.9", debt.InterestRate)
	suite.Assert().False(debt.PaidOff)

	r := suite.request(http.MethodGet, "http://example.com/v1/debts", nil)
	var list v1.DebtListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 1)

	r = suite.request(http.MethodPatch, "http://example.com/v1/debts/"+debt.ID.String(), map[string]any{"paidAmount": "100"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(http.MethodPatch, "http://example.com/v1/debts/"+debt.ID.String(), map[string]any{"paidAmount": "1000"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.DebtResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().True(updated.Data.PaidOff)
	suite.Assert().Equal("Credit Card", updated.Data.Name)

	r = suite.request(http.MethodDelete, "http://example.com/v1/debts/"+debt.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodDelete, "http://example.com/v1/debts/"+debt.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDebtPayments() {
	debt := suite.createDebt("1000", "0").Data

	r := suite.request(http.MethodPost, "http://example.com/v1/debts/"+debt.ID.String()+"/payments", map[string]any{"amount": "150"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.PaymentResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.assertDecimal("150", response.Data.Debt.PaidAmount)
	suite.assertDecimal("850", response.Data.Debt.Remaining)
	suite.Assert().Equal("Debt", response.Data.Transaction.Category)
	suite.Assert().Equal("Payment to Credit Card", response.Data.Transaction.Description)

	r = suite.request(http.MethodPost, "http://example.com/v1/debts/"+debt.ID.String()+"/payments", map[string]any{"amount": "900"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Contains(test.DecodeError(suite.T(), r.Body.Bytes()), "exceeds the remaining debt")

	r = suite.request(http.MethodGet, "http://example.com/v1/debts/"+debt.ID.String(), nil)
	var current v1.DebtResponse
	test.DecodeResponse(suite.T(), &r, &current)
	suite.assertDecimal("150", current.Data.PaidAmount)

	suite.Assert().Len(suite.transactions("http://example.com/v1/transactions"), 1)

	r = suite.request(http.MethodPost, "http://example.com/v1/debts/"+uuid.New().String()+"/payments", map[string]any{"amount": "10"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
