package v1

import (
	"net/http"

	"github.com/budget-tracker/backend/pkg/aggregate"
	"github.com/budget-tracker/backend/pkg/httperrors"
	"github.com/budget-tracker/backend/pkg/httputil"
	"github.com/budget-tracker/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

type DebtResponse struct {
	Data aggregate.DebtStatus `json:"data"` // Data for the debt
}

type DebtListResponse struct {
	Data []aggregate.DebtStatus `json:"data"` // List of debts
}

// Payment is the result of a payment towards a debt.
type Payment struct {
	Debt        aggregate.DebtStatus `json:"debt"`        // The debt after the payment
	Transaction models.Transaction   `json:"transaction"` // The expense recording the payment
}

type PaymentResponse struct {
	Data Payment `json:"data"`
}

// RegisterDebtRoutes registers the routes for debts with
// the RouterGroup that is passed.
func (co Controller) RegisterDebtRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsDebtList)
		r.GET("", co.GetDebts)
		r.POST("", co.CreateDebt)
	}

	// Debt with ID
	{
		r.OPTIONS("/:id", co.OptionsDebtDetail)
		r.GET("/:id", co.GetDebt)
		r.PATCH("/:id", co.UpdateDebt)
		r.DELETE("/:id", co.DeleteDebt)
	}

	{
		r.OPTIONS("/:id/payments", co.OptionsDebtPayments)
		r.POST("/:id/payments", co.PayDebt)
	}
}

// OptionsDebtList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Debts
//	@Success		204
//	@Router			/v1/debts [options]
func (co Controller) OptionsDebtList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsDebtDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Debts
//	@Success		204
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/debts/{id} [options]
func (co Controller) OptionsDebtDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// OptionsDebtPayments returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Debts
//	@Success		204
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/debts/{id}/payments [options]
func (co Controller) OptionsDebtPayments(c *gin.Context) {
	httputil.OptionsPost(c)
}

// GetDebts returns all debts
//
//	@Summary		Get debts
//	@Description	Returns all debts with their repayment progress
//	@Tags			Debts
//	@Produce		json
//	@Success		200	{object}	DebtListResponse
//	@Router			/v1/debts [get]
func (co Controller) GetDebts(c *gin.Context) {
	c.JSON(http.StatusOK, DebtListResponse{Data: aggregate.DebtProgress(co.store(c).Debts())})
}

// CreateDebt creates a debt
//
//	@Summary		Create debt
//	@Description	Creates a new debt
//	@Tags			Debts
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	DebtResponse
//	@Failure		400	{object}	httperrors.HTTPError
//	@Failure		500	{object}	httperrors.HTTPError
//	@Param			debt	body	models.DebtCreate	true	"Debt"
//	@Router			/v1/debts [post]
func (co Controller) CreateDebt(c *gin.Context) {
	var create models.DebtCreate
	if err := httputil.BindData(c, &create); err != nil {
		httperrors.Handler(c, err)
		return
	}

	debt, err := co.store(c).AddDebt(create)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, DebtResponse{Data: debtStatus(debt)})
}

// GetDebt returns a specific debt
//
//	@Summary		Get debt
//	@Description	Returns a specific debt with its repayment progress
//	@Tags			Debts
//	@Produce		json
//	@Success		200	{object}	DebtResponse
//	@Failure		400	{object}	httperrors.HTTPError
//	@Failure		404	{object}	httperrors.HTTPError
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/debts/{id} [get]
func (co Controller) GetDebt(c *gin.Context) {
	debt, ok := co.debt(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, DebtResponse{Data: debtStatus(debt)})
}

// UpdateDebt updates a specific debt
//
//	@Summary		Update debt
//	@Description	Updates an existing debt. Only values to be updated need to be specified. The paid amount can not be decreased
//	@Tags			Debts
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	DebtResponse
//	@Failure		400	{object}	httperrors.HTTPError
//	@Failure		404	{object}	httperrors.HTTPError
//	@Failure		500	{object}	httperrors.HTTPError
//	@Param			id		path	string				true	"ID formatted as string"
//	@Param			debt	body	models.DebtCreate	true	"Debt"
//	@Router			/v1/debts/{id} [patch]
func (co Controller) UpdateDebt(c *gin.Context) {
	debt, ok := co.debt(c)
	if !ok {
		return
	}

	if err := httputil.BindData(c, &debt.DebtCreate); err != nil {
		httperrors.Handler(c, err)
		return
	}

	debt, err := co.store(c).UpdateDebt(debt)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, DebtResponse{Data: debtStatus(debt)})
}

// DeleteDebt deletes a specific debt
//
//	@Summary		Delete debt
//	@Description	Deletes a debt. Transactions recording payments are kept
//	@Tags			Debts
//	@Success		204
//	@Failure		400	{object}	httperrors.HTTPError
//	@Failure		404	{object}	httperrors.HTTPError
//	@Failure		500	{object}	httperrors.HTTPError
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/debts/{id} [delete]
func (co Controller) DeleteDebt(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	if err := co.store(c).DeleteDebt(uri.ID); err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// PayDebt makes a payment towards a debt
//
//	@Summary		Pay debt
//	@Description	Increases the paid amount of the debt and records the payment as an expense in the Debt category
//	@Tags			Debts
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	PaymentResponse
//	@Failure		400	{object}	httperrors.HTTPError
//	@Failure		404	{object}	httperrors.HTTPError
//	@Failure		500	{object}	httperrors.HTTPError
//	@Param			id		path	string			true	"ID formatted as string"
//	@Param			month	query	string			false	"Month in YYYY-MM format"
//	@Param			payment	body	AmountEditable	true	"Payment"
//	@Router			/v1/debts/{id}/payments [post]
func (co Controller) PayDebt(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	var payment AmountEditable
	if err := httputil.BindData(c, &payment); err != nil {
		httperrors.Handler(c, err)
		return
	}

	scope, ok := co.scope(c)
	if !ok {
		return
	}

	debt, transaction, err := scope.MakeDebtPayment(uri.ID, payment.Amount)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, PaymentResponse{Data: Payment{Debt: debtStatus(debt), Transaction: transaction}})
}

func (co Controller) debt(c *gin.Context) (models.Debt, bool) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httperrors.InvalidUUID(c)
		return models.Debt{}, false
	}

	debt, err := co.store(c).Debt(uri.ID)
	if err != nil {
		httperrors.Handler(c, err)
		return models.Debt{}, false
	}

	return debt, true
}

func debtStatus(debt models.Debt) aggregate.DebtStatus {
	return aggregate.DebtProgress([]models.Debt{debt})[0]
}
