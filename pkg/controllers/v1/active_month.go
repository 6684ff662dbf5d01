package v1

import (
	"net/http"

	"github.com/budget-tracker/backend/internal/types"
	"github.com/budget-tracker/backend/pkg/httperrors"
	"github.com/budget-tracker/backend/pkg/httputil"
	"github.com/gin-gonic/gin"
)

type ActiveMonth struct {
	Month types.Month `json:"month" example:"2024-05"` // Month in YYYY-MM format
}

type ActiveMonthResponse struct {
	Data ActiveMonth `json:"data"`
}

// RegisterActiveMonthRoutes registers the routes for the active month with
// the RouterGroup that is passed.
func (co Controller) RegisterActiveMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsActiveMonth)
	r.GET("", co.GetActiveMonth)
	r.PUT("", co.SetActiveMonth)
}

// OptionsActiveMonth returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Active Month
//	@Success		204
//	@Router			/v1/active-month [options]
func (co Controller) OptionsActiveMonth(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// GetActiveMonth returns the active month
//
//	@Summary		Get active month
//	@Description	Returns the month that requests without a month parameter act on
//	@Tags			Active Month
//	@Produce		json
//	@Success		200	{object}	ActiveMonthResponse
//	@Router			/v1/active-month [get]
func (co Controller) GetActiveMonth(c *gin.Context) {
	c.JSON(http.StatusOK, ActiveMonthResponse{Data: ActiveMonth{Month: co.store(c).ActiveMonth()}})
}

// SetActiveMonth sets the active month
//
//	@Summary		Set active month
//	@Description	Sets the month that requests without a month parameter act on. No data is changed
//	@Tags			Active Month
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	ActiveMonthResponse
//	@Failure		400	{object}	httperrors.HTTPError
//	@Param			month	body	ActiveMonth	true	"Active month"
//	@Router			/v1/active-month [put]
func (co Controller) SetActiveMonth(c *gin.Context) {
	var active ActiveMonth
	if err := httputil.BindData(c, &active); err != nil {
		httperrors.Handler(c, err)
		return
	}

	if active.Month.IsZero() {
		httperrors.InvalidMonth(c)
		return
	}

	store := co.store(c)
	store.SetActiveMonth(active.Month)

	c.JSON(http.StatusOK, ActiveMonthResponse{Data: ActiveMonth{Month: store.ActiveMonth()}})
}
