package platforms

import (
	"fmt"
	"net/http"

	"github.com/equinor/workload-analyzer/api"
	"github.com/equinor/workload-analyzer/api/controllers"
	platformApi "github.com/equinor/workload-analyzer/api/platforms"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const platformIDParam = "platformId"

type platformController struct {
	*controllers.ControllerBase
	handler platformApi.Handler
}

// New create a new platform controller
func New(handler platformApi.Handler) api.Controller {
	return &platformController{
		handler: handler,
	}
}

// GetRoutes List the supported routes of this controller
func (controller *platformController) GetRoutes() []api.Route {
	routes := []api.Route{
		{
			Path:    "/platforms",
			Method:  http.MethodGet,
			Handler: controller.GetPlatforms,
		},
		{
			Path:    fmt.Sprintf("/platforms/:%s", platformIDParam),
			Method:  http.MethodGet,
			Handler: controller.GetPlatform,
		},
	}
	return routes
}

func (controller *platformController) GetPlatforms(c *gin.Context) {
	// swagger:operation GET /platforms Platform getPlatforms
	// ---
	// summary: Gets simulation platforms
	// responses:
	//   "200":
	//     description: "Successful get platforms"
	//   "502":
	//     description: "Job service failure"
	//     schema:
	//        "$ref": "#/definitions/Status"
	logger := log.Ctx(c.Request.Context())
	logger.Info().Msg("Get platform list")
	platforms, err := controller.handler.GetPlatforms(c.Request.Context(), c.Request.URL.Query(), controllers.Credential(c))
	if err != nil {
		controller.HandleError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", platforms)
}

func (controller *platformController) GetPlatform(c *gin.Context) {
	// swagger:operation GET /platforms/{platformId} Platform getPlatform
	// ---
	// summary: Gets platform
	// parameters:
	// - name: platformId
	//   in: path
	//   description: Id of platform
	//   type: string
	//   required: true
	// responses:
	//   "200":
	//     description: "Successful get platform"
	//     schema:
	//        "$ref": "#/definitions/Platform"
	//   "404":
	//     description: "Not found"
	//     schema:
	//        "$ref": "#/definitions/Status"
	//   "502":
	//     description: "Job service failure"
	//     schema:
	//        "$ref": "#/definitions/Status"
	platformID := c.Param(platformIDParam)
	logger := log.Ctx(c.Request.Context())
	logger.Info().Msgf("Get platform %s", platformID)
	platform, err := controller.handler.GetPlatform(c.Request.Context(), platformID, controllers.Credential(c))
	if err != nil {
		controller.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, platform)
}
