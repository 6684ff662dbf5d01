// Package v1 implements the v1 JSON API on top of the ledger.
package v1

import (
	"net/http"

	"github.com/budget-tracker/backend/pkg/export"
	"github.com/budget-tracker/backend/pkg/httperrors"
	"github.com/budget-tracker/backend/pkg/httputil"
	"github.com/budget-tracker/backend/pkg/ledger"
	"github.com/gin-gonic/gin"
)

// Controller serves the API for all identities of a registry.
type Controller struct {
	registry *ledger.Registry
	exporter export.Exporter
}

func New(registry *ledger.Registry, exporter export.Exporter) Controller {
	return Controller{registry: registry, exporter: exporter}
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
// version is reported in backups.
func (co Controller) RegisterRoutes(r *gin.RouterGroup, version string) {
	backendVersion = version

	r.GET("", Get)
	r.OPTIONS("", Options)

	co.RegisterTransactionRoutes(r.Group("/transactions"))
	co.RegisterBudgetRoutes(r.Group("/budgets"))
	co.RegisterCategoryRoutes(r.Group("/categories"))
	co.RegisterGoalRoutes(r.Group("/goals"))
	co.RegisterDebtRoutes(r.Group("/debts"))
	co.RegisterMonthRoutes(r.Group("/months"))
	co.RegisterYearRoutes(r.Group("/years"))
	co.RegisterExportRoutes(r.Group("/export"))
	co.RegisterImportRoutes(r.Group("/import"))
	co.RegisterBackupRoutes(r.Group("/backup"))
	co.RegisterLayoutRoutes(r.Group("/layout"))
	co.RegisterActiveMonthRoutes(r.Group("/active-month"))
}

// store returns the Store of the identity making the request.
func (co Controller) store(c *gin.Context) *ledger.Store {
	return co.registry.Open(c.GetString(string(httputil.ContextIdentity)))
}

// scope returns the Scope for the month query parameter, or for the active
// month if it is not set. ok is false if an error response has been written.
func (co Controller) scope(c *gin.Context) (scope *ledger.Scope, ok bool) {
	month, set, err := httputil.QueryMonth(c)
	if err != nil {
		httperrors.InvalidMonth(c)
		return nil, false
	}

	store := co.store(c)
	if !set {
		return store.Active(), true
	}

	return store.In(month), true
}

type Response struct {
	Links Links `json:"links"`
}

type Links struct {
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"` // URL of Transaction collection endpoint
	Budgets      string `json:"budgets" example:"https://example.com/api/v1/budgets"`           // URL of Budget collection endpoint
	Categories   string `json:"categories" example:"https://example.com/api/v1/categories"`     // URL of Category collection endpoint
	Goals        string `json:"goals" example:"https://example.com/api/v1/goals"`               // URL of Savings Goal collection endpoint
	Debts        string `json:"debts" example:"https://example.com/api/v1/debts"`               // URL of Debt collection endpoint
	Months       string `json:"months" example:"https://example.com/api/v1/months"`             // URL of Month endpoint
	Years        string `json:"years" example:"https://example.com/api/v1/years"`               // URL of Year endpoint
	Export       string `json:"export" example:"https://example.com/api/v1/export/expenses"`    // URL of the expense export
	Import       string `json:"import" example:"https://example.com/api/v1/import"`             // URL of the import endpoints
	Backup       string `json:"backup" example:"https://example.com/api/v1/backup"`             // URL of the backup endpoint
	Layout       string `json:"layout" example:"https://example.com/api/v1/layout"`             // URL of the dashboard layout
	ActiveMonth  string `json:"activeMonth" example:"https://example.com/api/v1/active-month"`  // URL of the active month
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(httputil.ContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Transactions: url + "/v1/transactions",
			Budgets:      url + "/v1/budgets",
			Categories:   url + "/v1/categories",
			Goals:        url + "/v1/goals",
			Debts:        url + "/v1/debts",
			Months:       url + "/v1/months",
			Years:        url + "/v1/years",
			Export:       url + "/v1/export/expenses",
			Import:       url + "/v1/import",
			Backup:       url + "/v1/backup",
			Layout:       url + "/v1/layout",
			ActiveMonth:  url + "/v1/active-month",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
