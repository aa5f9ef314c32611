package version

import (
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/httputil"
)

type Response struct {
	Data Object `json:"data"` // Data object for the version endpoint
}

type Object struct {
	Version   string `json:"version" example:"1.1.0"`      // Version of the ledger backend, set at build time
	GoVersion string `json:"goVersion" example:"go1.25.0"` // Go version the backend was built with
}

func RegisterRoutes(r *gin.RouterGroup, version string) {
	r.GET("", Get(version))
	r.OPTIONS("", Options)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		API version
// @Description	Returns the build version of the ledger backend
// @Tags			General
// @Success		200	{object}	Response
// @Router			/version [get]
func Get(version string) gin.HandlerFunc {
	object := Object{
		Version:   version,
		GoVersion: runtime.Version(),
	}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{Data: object})
	}
}
