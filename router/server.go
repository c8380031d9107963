package router

import (
	"net/http"
	"time"

	commongin "github.com/equinor/radix-common/pkg/gin"
	"github.com/equinor/workload-analyzer/api"
	"github.com/equinor/workload-analyzer/models"
	"github.com/equinor/workload-analyzer/pkg/metrics"
	"github.com/gin-gonic/gin"
)

const apiVersionRoute = "/api/v1"

// NewServer creates the REST service. Health and metrics endpoints are open,
// everything under the API route requires a bearer credential.
func NewServer(config *models.Config, controllers ...api.Controller) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.RemoveExtraSlash = true
	engine.Use(RequestID(), commongin.ZerologRequestLogger(), gin.Recovery())

	started := time.Now()
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.HealthResponse{
			Status:        "ok",
			Version:       config.AppVersion,
			UptimeSeconds: time.Since(started).Seconds(),
		})
	})
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1Router := engine.Group(apiVersionRoute, BearerAuth(), ObserveRequests())
	{
		initializeAPIServer(v1Router, controllers)
	}

	return engine
}

func initializeAPIServer(router gin.IRoutes, controllers []api.Controller) {
	for _, controller := range controllers {
		for _, route := range controller.GetRoutes() {
			addHandlerRoute(router, route)
		}
	}
}

func addHandlerRoute(router gin.IRoutes, route api.Route) {
	router.Handle(route.Method, route.Path, route.Handler)
}
