package jobs

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/equinor/workload-analyzer/api"
	"github.com/equinor/workload-analyzer/api/controllers"
	apierrors "github.com/equinor/workload-analyzer/api/errors"
	jobApi "github.com/equinor/workload-analyzer/api/jobs"
	"github.com/equinor/workload-analyzer/internal/query"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	jobIDParam    = "jobId"
	fileNameParam = "fileName"
)

type jobController struct {
	*controllers.ControllerBase
	handler jobApi.Handler
}

// New create a new job controller
func New(handler jobApi.Handler) api.Controller {
	return &jobController{
		handler: handler,
	}
}

// GetRoutes List the supported routes of this controller
func (controller *jobController) GetRoutes() []api.Route {
	routes := []api.Route{
		{
			Path:    "/jobs",
			Method:  http.MethodGet,
			Handler: controller.GetJobs,
		},
		{
			Path:    fmt.Sprintf("/jobs/:%s", jobIDParam),
			Method:  http.MethodGet,
			Handler: controller.GetJob,
		},
		{
			Path:    fmt.Sprintf("/jobs/:%s/files", jobIDParam),
			Method:  http.MethodGet,
			Handler: controller.GetJobFiles,
		},
		{
			Path:    fmt.Sprintf("/jobs/:%s/files/:%s", jobIDParam, fileNameParam),
			Method:  http.MethodGet,
			Handler: controller.DownloadJobFile,
		},
	}
	return routes
}

func (controller *jobController) GetJobs(c *gin.Context) {
	// swagger:operation GET /jobs Job getJobs
	// ---
	// summary: Gets jobs
	// parameters:
	// - name: status
	//   in: query
	//   description: Filter on job status
	//   type: string
	//   required: false
	// - name: job_type
	//   in: query
	//   description: Comma separated list of job types
	//   type: string
	//   required: false
	// - name: limit
	//   in: query
	//   description: Page size, 1 to 100
	//   type: integer
	//   required: false
	// - name: continuation_token
	//   in: query
	//   description: Opaque token continuing a previous listing
	//   type: string
	//   required: false
	// responses:
	//   "200":
	//     description: "Successful get jobs"
	//     schema:
	//        "$ref": "#/definitions/JobsPage"
	//   "400":
	//     description: "Invalid filter"
	//     schema:
	//        "$ref": "#/definitions/Status"
	//   "502":
	//     description: "Job service failure"
	//     schema:
	//        "$ref": "#/definitions/Status"
	logger := log.Ctx(c.Request.Context())
	logger.Info().Msg("Get job list")

	filters := query.Filters{
		Status:            c.Query("status"),
		JobType:           c.Query("job_type"),
		Limit:             c.Query("limit"),
		ContinuationToken: c.Query("continuation_token"),
		Owner:             c.Query("owner"),
		Queue:             c.Query("queue"),
		JobRequestID:      c.Query("job_request_id"),
		ParentInstanceID:  c.Query("parent_instance_id"),
		WorkloadJobROIID:  c.Query("workload_job_roi_id"),
	}
	page, err := controller.handler.GetJobs(c.Request.Context(), filters, controllers.Credential(c))
	if err != nil {
		controller.HandleError(c, err)
		return
	}
	logger.Debug().Msgf("Returning %d of %d jobs", len(page.Jobs), page.Count)
	c.JSON(http.StatusOK, page)
}

func (controller *jobController) GetJob(c *gin.Context) {
	// swagger:operation GET /jobs/{jobId} Job getJob
	// ---
	// summary: Gets job
	// parameters:
	// - name: jobId
	//   in: path
	//   description: Id of job
	//   type: string
	//   required: true
	// responses:
	//   "200":
	//     description: "Successful get job"
	//     schema:
	//        "$ref": "#/definitions/JobDetailResponse"
	//   "404":
	//     description: "Not found"
	//     schema:
	//        "$ref": "#/definitions/Status"
	//   "502":
	//     description: "Job service failure"
	//     schema:
	//        "$ref": "#/definitions/Status"
	jobID := c.Param(jobIDParam)
	logger := log.Ctx(c.Request.Context())
	logger.Info().Msgf("Get job %s", jobID)
	job, err := controller.handler.GetJob(c.Request.Context(), jobID, controllers.Credential(c))
	if err != nil {
		controller.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (controller *jobController) GetJobFiles(c *gin.Context) {
	// swagger:operation GET /jobs/{jobId}/files Job getJobFiles
	// ---
	// summary: Lists the files of a job
	// parameters:
	// - name: jobId
	//   in: path
	//   description: Id of job
	//   type: string
	//   required: true
	// responses:
	//   "200":
	//     description: "Successful list job files"
	//     schema:
	//        "$ref": "#/definitions/FileListResponse"
	//   "400":
	//     description: "Invalid tenant on job record"
	//     schema:
	//        "$ref": "#/definitions/Status"
	//   "404":
	//     description: "Not found"
	//     schema:
	//        "$ref": "#/definitions/Status"
	//   "502":
	//     description: "Upstream failure"
	//     schema:
	//        "$ref": "#/definitions/Status"
	jobID := c.Param(jobIDParam)
	logger := log.Ctx(c.Request.Context())
	logger.Info().Msgf("List files for job %s", jobID)
	files, err := controller.handler.GetJobFiles(c.Request.Context(), jobID, controllers.Credential(c))
	if err != nil {
		controller.HandleError(c, err)
		return
	}
	logger.Debug().Msgf("Found %d files for job %s", files.TotalFiles, jobID)
	c.JSON(http.StatusOK, files)
}

func (controller *jobController) DownloadJobFile(c *gin.Context) {
	// swagger:operation GET /jobs/{jobId}/files/{fileName} Job downloadJobFile
	// ---
	// summary: Downloads a file of a job
	// parameters:
	// - name: jobId
	//   in: path
	//   description: Id of job
	//   type: string
	//   required: true
	// - name: fileName
	//   in: path
	//   description: Name of file
	//   type: string
	//   required: true
	// produces:
	// - application/octet-stream
	// responses:
	//   "200":
	//     description: "Successful download job file"
	//   "404":
	//     description: "Not found"
	//     schema:
	//        "$ref": "#/definitions/Status"
	//   "502":
	//     description: "Upstream failure"
	//     schema:
	//        "$ref": "#/definitions/Status"
	jobID := c.Param(jobIDParam)
	fileName := c.Param(fileNameParam)
	logger := log.Ctx(c.Request.Context())
	logger.Info().Msgf("Download file %s of job %s", fileName, jobID)

	download, err := controller.handler.DownloadJobFile(c.Request.Context(), jobID, fileName, controllers.Credential(c))
	if err != nil {
		controller.HandleError(c, err)
		return
	}
	defer download.Body.Close()

	contentType := download.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", strconv.Quote(fileName)))
	if download.ContentLength >= 0 {
		c.Header("Content-Length", strconv.FormatInt(download.ContentLength, 10))
	}
	c.Status(http.StatusOK)

	// Headers are already on the wire. A copy failure can only be logged,
	// the client sees a truncated body.
	if _, err := io.Copy(c.Writer, download.Body); err != nil {
		streamErr := apierrors.NewStreamInterrupted(fileName, err)
		_ = c.Error(streamErr)
		logger.Error().Err(streamErr).Msgf("Transfer of file %s was interrupted", fileName)
	}
}
