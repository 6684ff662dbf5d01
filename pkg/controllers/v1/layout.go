package v1

import (
	"net/http"

	"github.com/budget-tracker/backend/pkg/httperrors"
	"github.com/budget-tracker/backend/pkg/httputil"
	"github.com/gin-gonic/gin"
)

// Layout is the order of the dashboard widgets.
type Layout struct {
	Widgets []string `json:"widgets" example:"overview,budgets,goals"` // Widget identifiers in display order
}

type LayoutResponse struct {
	Data Layout `json:"data"`
}

// RegisterLayoutRoutes registers the routes for the dashboard layout with
// the RouterGroup that is passed.
func (co Controller) RegisterLayoutRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsLayout)
	r.GET("", co.GetLayout)
	r.PUT("", co.SetLayout)
}

// OptionsLayout returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Layout
//	@Success		204
//	@Router			/v1/layout [options]
func (co Controller) OptionsLayout(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// GetLayout returns the dashboard layout
//
//	@Summary		Get dashboard layout
//	@Description	Returns the order of the dashboard widgets
//	@Tags			Layout
//	@Produce		json
//	@Success		200	{object}	LayoutResponse
//	@Router			/v1/layout [get]
func (co Controller) GetLayout(c *gin.Context) {
	c.JSON(http.StatusOK, LayoutResponse{Data: Layout{Widgets: co.store(c).DashboardLayout()}})
}

// SetLayout replaces the dashboard layout
//
//	@Summary		Set dashboard layout
//	@Description	Replaces the order of the dashboard widgets
//	@Tags			Layout
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	LayoutResponse
//	@Failure		400	{object}	httperrors.HTTPError
//	@Failure		500	{object}	httperrors.HTTPError
//	@Param			layout	body	Layout	true	"Layout"
//	@Router			/v1/layout [put]
func (co Controller) SetLayout(c *gin.Context) {
	var layout Layout
	if err := httputil.BindData(c, &layout); err != nil {
		httperrors.Handler(c, err)
		return
	}

	widgets, err := co.store(c).SetDashboardLayout(layout.Widgets)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, LayoutResponse{Data: Layout{Widgets: widgets}})
}
