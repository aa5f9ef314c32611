package httputil

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

// allow answers an OPTIONS request with the methods a resource supports.
func allow(c *gin.Context, methods ...string) {
	c.Header("allow", strings.Join(append([]string{http.MethodOptions}, methods...), ", "))
	c.Render(http.StatusNoContent, render.JSON{})
}

// OptionsGet is used for read-only resources like the projection.
func OptionsGet(c *gin.Context) {
	allow(c, http.MethodGet)
}

// OptionsPost is used for workflow transitions and generated texts.
func OptionsPost(c *gin.Context) {
	allow(c, http.MethodPost)
}

// OptionsGetPost is used for collections.
func OptionsGetPost(c *gin.Context) {
	allow(c, http.MethodGet, http.MethodPost)
}

// OptionsGetPut is used for settings.
func OptionsGetPut(c *gin.Context) {
	allow(c, http.MethodGet, http.MethodPut)
}

// OptionsGetPatchDelete is used for single resources.
func OptionsGetPatchDelete(c *gin.Context) {
	allow(c, http.MethodGet, http.MethodPatch, http.MethodDelete)
}
