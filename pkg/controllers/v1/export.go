package v1

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/budget-tracker/backend/pkg/aggregate"
	"github.com/budget-tracker/backend/pkg/export"
	"github.com/budget-tracker/backend/pkg/httperrors"
	"github.com/budget-tracker/backend/pkg/httputil"
	"github.com/gin-gonic/gin"
)

// ExportQuery configures the expense export.
type ExportQuery struct {
	Format     string `form:"format" example:"xlsx"`          // xlsx or csv. Defaults to xlsx
	Categories string `form:"categories" example:"Food,Debt"` // Comma separated list of categories. Defaults to all
	Sort       string `form:"sort" example:"amount"`          // date, amount or category. Defaults to date
	Direction  string `form:"direction" example:"desc"`       // asc or desc. Defaults to desc
}

// RegisterExportRoutes registers the routes for exports with
// the RouterGroup that is passed.
func (co Controller) RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/expenses", co.OptionsExportExpenses)
	r.GET("/expenses", co.ExportExpenses)
}

// OptionsExportExpenses returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Export
//	@Success		204
//	@Router			/v1/export/expenses [options]
func (co Controller) OptionsExportExpenses(c *gin.Context) {
	httputil.OptionsGet(c)
}

// ExportExpenses exports the expenses of a month
//
//	@Summary		Export expenses
//	@Description	Exports the expenses of the month as spreadsheet. Defaults to the active month
//	@Tags			Export
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Produce		text/csv
//	@Success		200	{file}		file
//	@Failure		400	{object}	httperrors.HTTPError
//	@Failure		500	{object}	httperrors.HTTPError
//	@Param			month		query	string	false	"Month in YYYY-MM format"
//	@Param			format		query	string	false	"xlsx or csv"
//	@Param			categories	query	string	false	"Comma separated list of categories"
//	@Param			sort		query	string	false	"date, amount or category"
//	@Param			direction	query	string	false	"asc or desc"
//	@Router			/v1/export/expenses [get]
func (co Controller) ExportExpenses(c *gin.Context) {
	var query ExportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperrors.New(c, http.StatusBadRequest, err.Error())
		return
	}

	format, err := export.ParseFormat(query.Format)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	scope, ok := co.scope(c)
	if !ok {
		return
	}

	report, err := aggregate.ExpenseReport(scope.Transactions(), aggregate.ReportOptions{
		Categories: splitList(query.Categories),
		SortBy:     aggregate.SortField(query.Sort),
		Direction:  aggregate.Direction(query.Direction),
	})
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	var buf bytes.Buffer
	if err := co.exporter.Write(&buf, format, report); err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", export.Filename(scope.Month(), format)))
	c.Header("Content-Length", strconv.Itoa(buf.Len()))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

// splitList splits a comma separated list and drops empty elements.
func splitList(s string) []string {
	var list []string
	for _, e := range strings.Split(s, ",") {
		if e = strings.TrimSpace(e); e != "" {
			list = append(list, e)
		}
	}

	return list
}
