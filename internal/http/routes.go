package http

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
)

// Route is one entry of the API route table: a path pattern plus the methods
// it allows. The table drives route registration, preflight responses, and
// the Allow header on 405 responses.
type Route struct {
	Pattern string
	Methods []string
}

// apiRoutes is the full API surface. OPTIONS is implicit on every entry.
var apiRoutes = []Route{
	{Pattern: "/api/register", Methods: []string{http.MethodPost}},
	{Pattern: "/api/users", Methods: []string{http.MethodGet}},
	{Pattern: "/api/users/:id", Methods: []string{http.MethodGet, http.MethodPut, http.MethodDelete}},
	{Pattern: "/api/products", Methods: []string{http.MethodGet, http.MethodPost}},
	{Pattern: "/api/products/:id", Methods: []string{http.MethodGet, http.MethodPut, http.MethodDelete}},
	{Pattern: "/api/orders", Methods: []string{http.MethodGet, http.MethodPost}},
	{Pattern: "/api/orders/:id", Methods: []string{http.MethodGet}},
}

// resourceIDPattern constrains path IDs to the shape of a document ID. Values
// outside this shape can never name a stored document and short-circuit to 404.
var resourceIDPattern = regexp.MustCompile(`^[0-9a-z]{8,24}$`)

// ValidResourceID reports whether a path ID has the accepted shape.
func ValidResourceID(id string) bool {
	return resourceIDPattern.MatchString(id)
}

// preflightHandler answers OPTIONS for a route table entry with 204 and the
// CORS preflight headers. The allowed methods are joined with commas in table
// order.
func preflightHandler(methods []string) gin.HandlerFunc {
	allowMethods := strings.Join(methods, ",")
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Methods", allowMethods)
		c.Header("Access-Control-Allow-Headers", "Content-Type,Accept")
		c.Header("Access-Control-Max-Age", "86400")
		c.Status(http.StatusNoContent)
	}
}

// matchRoute resolves a concrete request path against the route table. It is
// used where gin has no matched route of its own, e.g. to compute the Allow
// header for a 405 response.
func matchRoute(path string) (Route, bool) {
	for _, route := range apiRoutes {
		if matchPattern(route.Pattern, path) {
			return route, true
		}
	}
	return Route{}, false
}

// matchPattern compares a path against a table pattern segment by segment.
// A ":param" segment matches any non-empty value; the ID shape is checked
// separately after route matching.
func matchPattern(pattern, path string) bool {
	patternParts := strings.Split(pattern, "/")
	pathParts := strings.Split(path, "/")
	if len(patternParts) != len(pathParts) {
		return false
	}
	for i := range patternParts {
		if strings.HasPrefix(patternParts[i], ":") {
			if pathParts[i] == "" {
				return false
			}
			continue
		}
		if patternParts[i] != pathParts[i] {
			return false
		}
	}
	return true
}
