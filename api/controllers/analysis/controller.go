package analysis

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/equinor/workload-analyzer/api"
	analysisApi "github.com/equinor/workload-analyzer/api/analysis"
	"github.com/equinor/workload-analyzer/api/controllers"
	apierrors "github.com/equinor/workload-analyzer/api/errors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type analysisController struct {
	*controllers.ControllerBase
	handler analysisApi.Handler
}

// New create a new analysis controller
func New(handler analysisApi.Handler) api.Controller {
	return &analysisController{
		handler: handler,
	}
}

// GetRoutes List the supported routes of this controller
func (controller *analysisController) GetRoutes() []api.Route {
	routes := []api.Route{
		{
			Path:    "/analysis/query",
			Method:  http.MethodPost,
			Handler: controller.Query,
		},
	}
	return routes
}

func (controller *analysisController) Query(c *gin.Context) {
	// swagger:operation POST /analysis/query Analysis queryAnalysis
	// ---
	// summary: Queries the analysis model
	// parameters:
	// - name: query
	//   in: body
	//   description: Analysis prompt
	//   required: true
	//   schema:
	//       "$ref": "#/definitions/QueryRequest"
	// responses:
	//   "200":
	//     description: "Successful analysis query"
	//     schema:
	//        "$ref": "#/definitions/AnalysisResponse"
	//   "400":
	//     description: "Bad request"
	//     schema:
	//        "$ref": "#/definitions/Status"
	//   "502":
	//     description: "Model failure"
	//     schema:
	//        "$ref": "#/definitions/Status"
	logger := log.Ctx(c.Request.Context())
	logger.Info().Msg("Analysis query")
	logger.Debug().Msgf("Read the request body. Request content length %d", c.Request.ContentLength)

	var request analysisApi.QueryRequest
	if body, _ := io.ReadAll(c.Request.Body); len(body) > 0 {
		if err := json.Unmarshal(body, &request); err != nil {
			_ = c.Error(err)
			controller.HandleError(c, apierrors.NewInvalidFilterMessage("request body must be valid JSON"))
			return
		}
	}

	answer, err := controller.handler.Query(c.Request.Context(), request)
	if err != nil {
		controller.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, answer)
}
