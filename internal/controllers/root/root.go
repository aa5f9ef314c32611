package root

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/httputil"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/models"
)

type Response struct {
	Links Links `json:"links"`
}

type Links struct {
	Docs          string `json:"docs" example:"https://example.com/api/docs/index.html"`           // Swagger API documentation
	Healthz       string `json:"healthz" example:"https://example.com/api/healthz"`                // Database health check
	Version       string `json:"version" example:"https://example.com/api/version"`                // Build version of the backend
	Metrics       string `json:"metrics" example:"https://example.com/api/metrics"`                // Prometheus metrics, including ledger drift
	V1            string `json:"v1" example:"https://example.com/api/v1"`                          // Links to all ledger resources
	Projection    string `json:"projection" example:"https://example.com/api/v1/projection"`       // Projected bank balance for the next 30 days
	Notifications string `json:"notifications" example:"https://example.com/api/v1/notifications"` // Items due in the next days
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		API root
// @Description	Entrypoint for the API, listing the service endpoints and the most used ledger views
// @Tags			General
// @Success		200	{object}	Response
// @Router			/ [get]
func Get(c *gin.Context) {
	base := c.GetString(string(models.DBContextURL))
	link := func(path string) string {
		return base + path
	}

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Docs:          link("/docs/index.html"),
			Healthz:       link("/healthz"),
			Version:       link("/version"),
			Metrics:       link("/metrics"),
			V1:            link("/v1"),
			Projection:    link("/v1/projection"),
			Notifications: link("/v1/notifications"),
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
