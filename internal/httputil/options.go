package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OptionsGet returns the allowed HTTP methods for a collection that is
// read-only.
func OptionsGet(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET")
	c.Status(http.StatusNoContent)
}

// OptionsGetPost returns the allowed HTTP methods for a collection
// endpoint.
func OptionsGetPost(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET, POST")
	c.Status(http.StatusNoContent)
}

// OptionsGetPatchDelete returns the allowed HTTP methods for a resource
// endpoint.
func OptionsGetPatchDelete(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET, PATCH, PUT, DELETE")
	c.Status(http.StatusNoContent)
}

// OptionsPost returns the allowed HTTP methods for a write-only endpoint.
func OptionsPost(c *gin.Context) {
	c.Header("allow", "OPTIONS, POST")
	c.Status(http.StatusNoContent)
}
