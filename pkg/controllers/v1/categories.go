package v1

import (
	"net/http"

	"github.com/budget-tracker/backend/pkg/httperrors"
	"github.com/budget-tracker/backend/pkg/httputil"
	"github.com/budget-tracker/backend/pkg/ledger"
	"github.com/budget-tracker/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

// Category is a category with its position in the list.
type Category struct {
	Index  int    `json:"index" example:"2"`      // Position of the category, used to address it
	Name   string `json:"name" example:"Food"`    // Name of the category
	Income bool   `json:"income" example:"false"` // If the category is an income category
}

type CategoryResponse struct {
	Data Category `json:"data"` // Data for the category
}

type CategoryListResponse struct {
	Data []Category `json:"data"` // List of categories
}

type CategoryEditable struct {
	Name string `json:"name" example:"Pets"` // Name of the category
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsCategoryList)
		r.GET("", co.GetCategories)
		r.POST("", co.CreateCategory)
	}

	// Category at index
	{
		r.OPTIONS("/:index", co.OptionsCategoryDetail)
		r.PATCH("/:index", co.UpdateCategory)
		r.DELETE("/:index", co.DeleteCategory)
	}
}

// OptionsCategoryList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Categories
//	@Success		204
//	@Router			/v1/categories [options]
func (co Controller) OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsCategoryDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Categories
//	@Success		204
//	@Param			index	path	int	true	"Position of the category"
//	@Router			/v1/categories/{index} [options]
func (co Controller) OptionsCategoryDetail(c *gin.Context) {
	httputil.OptionsPatchDelete(c)
}

// GetCategories returns all categories
//
//	@Summary		Get categories
//	@Description	Returns all categories in their order
//	@Tags			Categories
//	@Produce		json
//	@Success		200	{object}	CategoryListResponse
//	@Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	names := co.store(c).Categories()

	categories := make([]Category, 0, len(names))
	for i, name := range names {
		categories = append(categories, newCategory(i, name))
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: categories})
}

// CreateCategory appends a category
//
//	@Summary		Create category
//	@Description	Appends a category to the list
//	@Tags			Categories
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	CategoryResponse
//	@Failure		400	{object}	httperrors.HTTPError
//	@Failure		500	{object}	httperrors.HTTPError
//	@Param			category	body	CategoryEditable	true	"Category"
//	@Router			/v1/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	var edit CategoryEditable
	if err := httputil.BindData(c, &edit); err != nil {
		httperrors.Handler(c, err)
		return
	}

	store := co.store(c)
	name, err := store.AddCategory(edit.Name)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, CategoryResponse{Data: newCategory(len(store.Categories())-1, name)})
}

// UpdateCategory renames a category
//
//	@Summary		Update category
//	@Description	Renames a category. All transactions and budgets in the category are moved to the new name
//	@Tags			Categories
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	CategoryResponse
//	@Failure		400	{object}	httperrors.HTTPError
//	@Failure		404	{object}	httperrors.HTTPError
//	@Failure		500	{object}	httperrors.HTTPError
//	@Param			index		path	int					true	"Position of the category"
//	@Param			category	body	CategoryEditable	true	"Category"
//	@Router			/v1/categories/{index} [patch]
func (co Controller) UpdateCategory(c *gin.Context) {
	index, ok := categoryIndex(c)
	if !ok {
		return
	}

	var edit CategoryEditable
	if err := httputil.BindData(c, &edit); err != nil {
		httperrors.Handler(c, err)
		return
	}

	name, err := co.store(c).UpdateCategory(index, edit.Name)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: newCategory(index, name)})
}

// DeleteCategory deletes a category
//
//	@Summary		Delete category
//	@Description	Deletes a category that no transaction or budget uses
//	@Tags			Categories
//	@Success		204
//	@Failure		400	{object}	httperrors.HTTPError
//	@Failure		404	{object}	httperrors.HTTPError
//	@Failure		500	{object}	httperrors.HTTPError
//	@Param			index	path	int	true	"Position of the category"
//	@Router			/v1/categories/{index} [delete]
func (co Controller) DeleteCategory(c *gin.Context) {
	index, ok := categoryIndex(c)
	if !ok {
		return
	}

	if err := co.store(c).DeleteCategory(index); err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func categoryIndex(c *gin.Context) (int, bool) {
	var uri URIIndex
	if err := c.ShouldBindUri(&uri); err != nil {
		httperrors.Handler(c, ledger.ErrCategoryIndex)
		return 0, false
	}

	return *uri.Index, true
}

func newCategory(index int, name string) Category {
	return Category{Index: index, Name: name, Income: models.IsIncomeCategory(name)}
}
