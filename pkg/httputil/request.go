package httputil

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/budget-tracker/backend/internal/types"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// BindData binds the data from the request to the struct passed in the interface.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		var jsonUnmarshalTypeError *json.UnmarshalTypeError
		if errors.As(err, &jsonUnmarshalTypeError) {
			return err
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

// MonthQuery is the month selector accepted by month scoped endpoints.
type MonthQuery struct {
	Month string `form:"month" example:"2024-05"` // Month in YYYY-MM format. Defaults to the active month
}

// QueryMonth parses the month query parameter. ok is false when the
// parameter is not set.
func QueryMonth(c *gin.Context) (month types.Month, ok bool, err error) {
	var q MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return types.Month{}, false, ErrInvalidMonth
	}

	if q.Month == "" {
		return types.Month{}, false, nil
	}

	month, err = types.ParseMonth(q.Month)
	if err != nil {
		return types.Month{}, false, ErrInvalidMonth
	}

	return month, true, nil
}
