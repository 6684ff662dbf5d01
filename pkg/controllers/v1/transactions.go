package v1

import (
	"net/http"

	"github.com/budget-tracker/backend/pkg/aggregate"
	"github.com/budget-tracker/backend/pkg/httperrors"
	"github.com/budget-tracker/backend/pkg/httputil"
	"github.com/budget-tracker/backend/pkg/ledger"
	"github.com/budget-tracker/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

type TransactionResponse struct {
	Data models.Transaction `json:"data"` // Data for the transaction
}

type TransactionListResponse struct {
	Data []models.Transaction `json:"data"` // List of transactions, most recent first
}

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsTransactionList)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", co.OptionsTransactionDetail)
		r.GET("/:id", co.GetTransaction)
		r.PATCH("/:id", co.UpdateTransaction)
		r.DELETE("/:id", co.DeleteTransaction)
	}
}

// OptionsTransactionList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Transactions
//	@Success		204
//	@Router			/v1/transactions [options]
func (co Controller) OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsTransactionDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Transactions
//	@Success		204
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/transactions/{id} [options]
func (co Controller) OptionsTransactionDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// GetTransactions returns the transactions of a month
//
//	@Summary		Get transactions
//	@Description	Returns the transactions of the month, most recent first. Defaults to the active month
//	@Tags			Transactions
//	@Produce		json
//	@Success		200	{object}	TransactionListResponse
//	@Failure		400	{object}	httperrors.HTTPError
//	@Param			month	query	string	false	"Month in YYYY-MM format"
//	@Param			type	query	string	false	"Filter by type, income or expense"
//	@Param			search	query	string	false	"Search description, category and amount"
//	@Router			/v1/transactions [get]
func (co Controller) GetTransactions(c *gin.Context) {
	scope, ok := co.scope(c)
	if !ok {
		return
	}

	var filter aggregate.TransactionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		httperrors.New(c, http.StatusBadRequest, err.Error())
		return
	}

	if filter.Type != "" && !filter.Type.Valid() {
		httperrors.Handler(c, models.ErrTransactionTypeInvalid)
		return
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: aggregate.Filter(scope.Transactions(), filter)})
}

// CreateTransaction records a new transaction
//
//	@Summary		Create transaction
//	@Description	Creates a transaction in the month. Defaults to the active month
//	@Tags			Transactions
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	TransactionResponse
//	@Failure		400	{object}	httperrors.HTTPError
//	@Failure		500	{object}	httperrors.HTTPError
//	@Param			month		query	string						false	"Month in YYYY-MM format"
//	@Param			transaction	body	models.TransactionCreate	true	"Transaction"
//	@Router			/v1/transactions [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	var create models.TransactionCreate
	if err := httputil.BindData(c, &create); err != nil {
		httperrors.Handler(c, err)
		return
	}

	scope, ok := co.scope(c)
	if !ok {
		return
	}

	transaction, err := scope.AddTransaction(create)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: transaction})
}

// GetTransaction returns a specific transaction
//
//	@Summary		Get transaction
//	@Description	Returns a specific transaction of the month
//	@Tags			Transactions
//	@Produce		json
//	@Success		200	{object}	TransactionResponse
//	@Failure		400	{object}	httperrors.HTTPError
//	@Failure		404	{object}	httperrors.HTTPError
//	@Param			id		path	string	true	"ID formatted as string"
//	@Param			month	query	string	false	"Month in YYYY-MM format"
//	@Router			/v1/transactions/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	transaction, _, ok := co.transaction(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: transaction})
}

// UpdateTransaction updates a specific transaction
//
//	@Summary		Update transaction
//	@Description	Updates an existing transaction. Only values to be updated need to be specified.
//	@Tags			Transactions
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	TransactionResponse
//	@Failure		400	{object}	httperrors.HTTPError
//	@Failure		404	{object}	httperrors.HTTPError
//	@Failure		500	{object}	httperrors.HTTPError
//	@Param			id			path	string						true	"ID formatted as string"
//	@Param			month		query	string						false	"Month in YYYY-MM format"
//	@Param			transaction	body	models.TransactionCreate	true	"Transaction"
//	@Router			/v1/transactions/{id} [patch]
func (co Controller) UpdateTransaction(c *gin.Context) {
	transaction, scope, ok := co.transaction(c)
	if !ok {
		return
	}

	if err := httputil.BindData(c, &transaction.TransactionCreate); err != nil {
		httperrors.Handler(c, err)
		return
	}

	transaction, err := scope.UpdateTransaction(transaction)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: transaction})
}

// DeleteTransaction deletes a specific transaction
//
//	@Summary		Delete transaction
//	@Description	Deletes a transaction and releases its amount from the budget of its category
//	@Tags			Transactions
//	@Success		204
//	@Failure		400	{object}	httperrors.HTTPError
//	@Failure		404	{object}	httperrors.HTTPError
//	@Failure		500	{object}	httperrors.HTTPError
//	@Param			id		path	string	true	"ID formatted as string"
//	@Param			month	query	string	false	"Month in YYYY-MM format"
//	@Router			/v1/transactions/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	scope, ok := co.scope(c)
	if !ok {
		return
	}

	if err := scope.DeleteTransaction(uri.ID); err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// transaction looks up the transaction addressed by the request.
func (co Controller) transaction(c *gin.Context) (models.Transaction, *ledger.Scope, bool) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httperrors.InvalidUUID(c)
		return models.Transaction{}, nil, false
	}

	scope, ok := co.scope(c)
	if !ok {
		return models.Transaction{}, nil, false
	}

	for _, t := range scope.Transactions() {
		if t.ID == uri.ID {
			return t, scope, true
		}
	}

	httperrors.Handler(c, ledger.ErrTransactionNotFound)
	return models.Transaction{}, nil, false
}
