package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/budget-tracker/backend/pkg/httperrors"
	"github.com/budget-tracker/backend/pkg/httputil"
	"github.com/budget-tracker/backend/pkg/importer"
	ynabimport "github.com/budget-tracker/backend/pkg/importer/parser/ynab-import"
	"github.com/budget-tracker/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

type ImportPreviewList struct {
	Data []importer.TransactionPreview `json:"data"` // List of transaction previews
}

type ImportTransactions struct {
	Transactions []models.TransactionCreate `json:"transactions"` // Transactions to create, usually the reviewed previews
}

// RegisterImportRoutes registers the routes for imports with
// the RouterGroup that is passed.
func (co Controller) RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/ynab-import-preview", co.OptionsImportYnabImportPreview)
	r.POST("/ynab-import-preview", co.ImportYnabImportPreview)

	r.OPTIONS("/transactions", co.OptionsImportTransactions)
	r.POST("/transactions", co.ImportTransactions)
}

// getUploadedFile returns the form file with the given suffix.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, httputil.ErrNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(strings.ToLower(formFile.Filename), suffix) {
		return nil, fmt.Errorf("this endpoint only supports %s files", suffix)
	}

	return formFile.Open()
}

//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Import
//	@Success		204
//	@Router			/v1/import/ynab-import-preview [options]
func (co Controller) OptionsImportYnabImportPreview(c *gin.Context) {
	httputil.OptionsPost(c)
}

// ImportYnabImportPreview parses a YNAB import file
//
//	@Summary		Transaction Import Preview
//	@Description	Returns a preview of transactions to be imported after parsing a YNAB Import format csv file. Duplicates of existing transactions are marked and categories are recommended from earlier transactions with the same description
//	@Tags			Import
//	@Accept			multipart/form-data
//	@Produce		json
//	@Success		200		{object}	ImportPreviewList
//	@Failure		400		{object}	httperrors.HTTPError
//	@Failure		500		{object}	httperrors.HTTPError
//	@Param			file	formData	file	true	"File to import"
//	@Router			/v1/import/ynab-import-preview [post]
func (co Controller) ImportYnabImportPreview(c *gin.Context) {
	f, err := getUploadedFile(c, ".csv")
	if err != nil {
		httperrors.New(c, http.StatusBadRequest, err.Error())
		return
	}
	defer f.Close()

	previews, err := ynabimport.Parse(f)
	if err != nil {
		// ynabimport.Parse returns a usable error already
		httperrors.New(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, ImportPreviewList{Data: importer.Prepare(previews, co.store(c).AllTransactions())})
}

//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Import
//	@Success		204
//	@Router			/v1/import/transactions [options]
func (co Controller) OptionsImportTransactions(c *gin.Context) {
	httputil.OptionsPost(c)
}

// ImportTransactions creates several transactions at once
//
//	@Summary		Import transactions
//	@Description	Creates all transactions in the month. Defaults to the active month. If any transaction is invalid, none is created
//	@Tags			Import
//	@Accept			json
//	@Produce		json
//	@Success		201				{object}	TransactionListResponse
//	@Failure		400				{object}	httperrors.HTTPError
//	@Failure		500				{object}	httperrors.HTTPError
//	@Param			month			query		string				false	"Month in YYYY-MM format"
//	@Param			transactions	body		ImportTransactions	true	"Transactions"
//	@Router			/v1/import/transactions [post]
func (co Controller) ImportTransactions(c *gin.Context) {
	var data ImportTransactions
	if err := httputil.BindData(c, &data); err != nil {
		httperrors.Handler(c, err)
		return
	}

	scope, ok := co.scope(c)
	if !ok {
		return
	}

	transactions, err := scope.AddTransactions(data.Transactions)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, TransactionListResponse{Data: transactions})
}
