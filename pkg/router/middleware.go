package router

import (
	"net/url"
	"strings"

	"github.com/budget-tracker/backend/pkg/httputil"
	"github.com/budget-tracker/backend/pkg/storage"
	"github.com/gin-gonic/gin"
)

// IdentityHeader carries the identity of the user making the request.
const IdentityHeader = "X-User-ID"

func URLMiddleware(url *url.URL) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(httputil.ContextURL), url.String())
		c.Next()
	}
}

// IdentityMiddleware stores the identity from the IdentityHeader in the
// context. Requests without the header act as the anonymous user.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := strings.TrimSpace(c.GetHeader(IdentityHeader))
		if identity == "" {
			identity = storage.Anonymous
		}

		c.Set(string(httputil.ContextIdentity), identity)
		c.Next()
	}
}
