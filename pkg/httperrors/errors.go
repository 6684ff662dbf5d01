package httperrors

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/budget-tracker/backend/pkg/aggregate"
	"github.com/budget-tracker/backend/pkg/export"
	"github.com/budget-tracker/backend/pkg/httputil"
	"github.com/budget-tracker/backend/pkg/ledger"
	"github.com/budget-tracker/backend/pkg/models"
	"github.com/budget-tracker/backend/pkg/storage"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/go-sqlite"
	"github.com/rs/zerolog/log"
)

type HTTPError struct {
	Error string `json:"error" example:"there is no category with this name: Yachts"`
}

// Generate a struct containing the HTTP error on the fly.
func New(c *gin.Context, status int, msgAndArgs ...any) {
	// Format msgAndArgs in a final string.
	// This is taken almost exactly from https://github.com/stretchr/testify/blob/181cea6eab8b2de7071383eca4be32a424db38dd/assert/assertions.go#L181
	msg := ""
	if len(msgAndArgs) == 1 {
		if msgAsStr, ok := msgAndArgs[0].(string); ok {
			msg = msgAsStr
		}
		msg = fmt.Sprintf("%+v", msg)
	}

	if len(msgAndArgs) > 1 {
		msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
	}

	c.AbortWithStatusJSON(status, HTTPError{
		Error: msg,
	})
}

// Client errors. Their messages are meant for the user.
var (
	badRequest = []error{
		httputil.ErrInvalidBody,
		httputil.ErrRequestBodyEmpty,
		httputil.ErrInvalidUUID,
		httputil.ErrInvalidMonth,
		httputil.ErrNoFilePost,
		models.ErrAmountNotPositive,
		models.ErrDescriptionEmpty,
		models.ErrCategoryEmpty,
		models.ErrDateMissing,
		models.ErrTransactionTypeInvalid,
		models.ErrNameEmpty,
		models.ErrGoalAmountNotPositive,
		models.ErrGoalCurrentNegative,
		models.ErrDebtAmountNotPositive,
		models.ErrDebtPaidOutOfRange,
		models.ErrDebtInterestNegative,
		models.ErrBudgetIncomeCategory,
		models.ErrCategoryNameNotUnique,
		models.ErrDashboardWidgetEmpty,
		models.ErrDashboardWidgetNotUnique,
		ledger.ErrCategoryNotFound,
		ledger.ErrCategoryInUse,
		ledger.ErrCategoryReserved,
		ledger.ErrBudgetNotUnique,
		ledger.ErrIDNotUnique,
		ledger.ErrNoPreviousBudgets,
		ledger.ErrPaymentExceedsRemaining,
		ledger.ErrProgressDecrease,
		aggregate.ErrSortField,
		aggregate.ErrDirection,
		export.ErrFormat,
	}

	notFound = []error{
		ledger.ErrCategoryIndex,
		ledger.ErrTransactionNotFound,
		ledger.ErrBudgetNotFound,
		ledger.ErrGoalNotFound,
		ledger.ErrDebtNotFound,
	}
)

// Status returns the HTTP status code for err.
func Status(err error) int {
	for _, e := range notFound {
		if errors.Is(err, e) {
			return http.StatusNotFound
		}
	}

	for _, e := range badRequest {
		if errors.Is(err, e) {
			return http.StatusBadRequest
		}
	}

	var parseError *time.ParseError
	if errors.Is(err, io.EOF) || errors.As(err, &parseError) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// Handler writes the error response for err.
func Handler(c *gin.Context, err error) {
	status := Status(err)
	if status != http.StatusInternalServerError {
		New(c, status, err.Error())
		return
	}

	log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())

	var sqliteError *sqlite.Error
	if errors.As(err, &sqliteError) {
		New(c, status, "A database error occurred during your request. The request id is '%v'", requestid.Get(c))
		return
	}

	if errors.Is(err, storage.ErrWrite) {
		New(c, status, "The change was applied but could not be saved. The request id is '%v', send this to your server administrator to help them finding the problem", requestid.Get(c))
		return
	}

	New(c, status, "An error occurred on the server during your request, please contact your server administrator. The request id is '%v', send this to your server administrator to help them finding the problem", requestid.Get(c))
}

func InvalidUUID(c *gin.Context) {
	New(c, http.StatusBadRequest, "The specified resource ID is not a valid UUID")
}

func InvalidMonth(c *gin.Context) {
	New(c, http.StatusBadRequest, "Could not parse the specified month, did you use YYYY-MM format?")
}
