package healthz

import (
	"net/http"

	"github.com/budget-tracker/backend/pkg/httperrors"
	"github.com/budget-tracker/backend/pkg/httputil"
	"github.com/budget-tracker/backend/pkg/storage"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, backend storage.Backend) {
	r.OPTIONS("", Options)
	r.GET("", Get(backend))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object} httperrors.HTTPError
// @Router			/healthz [get]
func Get(backend storage.Backend) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := storage.Ping(backend); err != nil {
			httperrors.Handler(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}
