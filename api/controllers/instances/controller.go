package instances

import (
	"fmt"
	"net/http"

	"github.com/equinor/workload-analyzer/api"
	"github.com/equinor/workload-analyzer/api/controllers"
	instanceApi "github.com/equinor/workload-analyzer/api/instances"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const instanceIDParam = "instanceId"

type instanceController struct {
	*controllers.ControllerBase
	handler instanceApi.Handler
}

// New create a new instance controller
func New(handler instanceApi.Handler) api.Controller {
	return &instanceController{
		handler: handler,
	}
}

// GetRoutes List the supported routes of this controller
func (controller *instanceController) GetRoutes() []api.Route {
	routes := []api.Route{
		{
			Path:    "/instances",
			Method:  http.MethodGet,
			Handler: controller.GetInstances,
		},
		{
			Path:    fmt.Sprintf("/instances/:%s", instanceIDParam),
			Method:  http.MethodGet,
			Handler: controller.GetInstance,
		},
	}
	return routes
}

func (controller *instanceController) GetInstances(c *gin.Context) {
	// swagger:operation GET /instances Instance getInstances
	// ---
	// summary: Gets simulation instances
	// parameters:
	// - name: page
	//   in: query
	//   description: Page number, starting at 1
	//   type: integer
	//   required: false
	// - name: page_size
	//   in: query
	//   description: Page size, 1 to 1000
	//   type: integer
	//   required: false
	// - name: platform_id
	//   in: query
	//   description: Filter on platform
	//   type: string
	//   required: false
	// - name: available
	//   in: query
	//   description: Filter on availability
	//   type: boolean
	//   required: false
	// responses:
	//   "200":
	//     description: "Successful get instances"
	//     schema:
	//        "$ref": "#/definitions/InstanceListResponse"
	//   "400":
	//     description: "Invalid filter"
	//     schema:
	//        "$ref": "#/definitions/Status"
	//   "502":
	//     description: "Job service failure"
	//     schema:
	//        "$ref": "#/definitions/Status"
	logger := log.Ctx(c.Request.Context())
	logger.Info().Msg("Get instance list")

	options := instanceApi.ListOptions{
		Page:       c.Query("page"),
		PageSize:   c.Query("page_size"),
		PlatformID: c.Query("platform_id"),
		Available:  c.Query("available"),
	}
	response, err := controller.handler.GetInstances(c.Request.Context(), options, controllers.Credential(c))
	if err != nil {
		controller.HandleError(c, err)
		return
	}
	logger.Debug().Msgf("Found %d instances", len(response.Items))
	c.JSON(http.StatusOK, response)
}

func (controller *instanceController) GetInstance(c *gin.Context) {
	// swagger:operation GET /instances/{instanceId} Instance getInstance
	// ---
	// summary: Gets instance
	// parameters:
	// - name: instanceId
	//   in: path
	//   description: Id of instance
	//   type: string
	//   required: true
	// responses:
	//   "200":
	//     description: "Successful get instance"
	//     schema:
	//        "$ref": "#/definitions/Instance"
	//   "404":
	//     description: "Not found"
	//     schema:
	//        "$ref": "#/definitions/Status"
	//   "502":
	//     description: "Job service failure"
	//     schema:
	//        "$ref": "#/definitions/Status"
	instanceID := c.Param(instanceIDParam)
	logger := log.Ctx(c.Request.Context())
	logger.Info().Msgf("Get instance %s", instanceID)
	instance, err := controller.handler.GetInstance(c.Request.Context(), instanceID, controllers.Credential(c))
	if err != nil {
		controller.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, instance)
}
