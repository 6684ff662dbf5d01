package httputil

// ContextKey is a key for values the router middlewares store in the gin
// context.
type ContextKey string

const (
	ContextURL      ContextKey = "baseURL"  // Base URL of the API
	ContextIdentity ContextKey = "identity" // Identity of the user making the request
)
