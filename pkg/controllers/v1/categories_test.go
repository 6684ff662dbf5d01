package v1_test

import (
	"net/http"
	"slices"
	"strconv"

	v1 "github.com/budget-tracker/backend/pkg/controllers/v1"
	"github.com/budget-tracker/backend/pkg/models"
	"github.com/budget-tracker/backend/test"
)

func (suite *TestSuiteStandard) categories() []v1.Category {
	r := suite.request(http.MethodGet, "http://example.com/v1/categories", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return response.Data
}

func (suite *TestSuiteStandard) TestCategoriesDefault() {
	categories := suite.categories()
	suite.Require().Len(categories, len(models.DefaultCategories))

	suite.Assert().Equal(v1.Category{Index: 2, Name: "Food", Income: false}, categories[2])
	suite.Assert().Equal(v1.Category{Index: 12, Name: "Salary", Income: true}, categories[12])
}

func (suite *TestSuiteStandard) TestCategoryCreate() {
	r := suite.request(http.MethodPost, "http://example.com/v1/categories", map[string]any{"name": "  Pets "})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(v1.Category{Index: len(models.DefaultCategories), Name: "Pets"}, response.Data)

	r = suite.request(http.MethodPost, "http://example.com/v1/categories", map[string]any{"name": "Pets"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Contains(test.DecodeError(suite.T(), r.Body.Bytes()), "must be unique")

	r = suite.request(http.MethodPost, "http://example.com/v1/categories", map[string]any{"name": " "})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoryRenameCascades() {
	suite.createBudget("Food", "300")
	suite.createTransaction("25", "Food", "2024-05-06", models.Expense)

	r := suite.request(http.MethodPatch, "http://example.com/v1/categories/2", map[string]any{"name": "Groceries"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(v1.Category{Index: 2, Name: "Groceries"}, response.Data)

	list := suite.transactions("http://example.com/v1/transactions")
	suite.Require().Len(list, 1)
	suite.Assert().Equal("Groceries", list[0].Category)

	r = suite.request(http.MethodGet, "http://example.com/v1/budgets/Groceries", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(http.MethodPatch, "http://example.com/v1/categories/2", map[string]any{"name": "Housing"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoryReserved() {
	for _, name := range models.ReservedCategories {
		index := strconv.Itoa(slices.Index(models.DefaultCategories, name))

		r := suite.request(http.MethodPatch, "http://example.com/v1/categories/"+index, map[string]any{"name": "Renamed"})
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

		r = suite.request(http.MethodDelete, "http://example.com/v1/categories/"+index, nil)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}

	suite.Assert().Len(suite.categories(), len(models.DefaultCategories))
}

func (suite *TestSuiteStandard) TestCategoryDelete() {
	suite.createTransaction("25", "Food", "2024-05-06", models.Expense)

	r := suite.request(http.MethodDelete, "http://example.com/v1/categories/2", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Contains(test.DecodeError(suite.T(), r.Body.Bytes()), "still used")

	r = suite.request(http.MethodDelete, "http://example.com/v1/categories/0", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	categories := suite.categories()
	suite.Assert().Len(categories, len(models.DefaultCategories)-1)
	suite.Assert().Equal("Transportation", categories[0].Name)

	for _, index := range []string{"99", "-1", "first"} {
		r = suite.request(http.MethodDelete, "http://example.com/v1/categories/"+index, nil)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	}
}
