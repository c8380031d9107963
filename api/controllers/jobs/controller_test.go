package jobs

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/equinor/workload-analyzer/api/controllers/testutils"
	apierrors "github.com/equinor/workload-analyzer/api/errors"
	jobApi "github.com/equinor/workload-analyzer/api/jobs"
	jobHandlersTest "github.com/equinor/workload-analyzer/api/jobs/test"
	"github.com/equinor/workload-analyzer/internal/query"
	"github.com/equinor/workload-analyzer/models"
	"github.com/equinor/workload-analyzer/pkg/fileservice"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func setupTest(handler jobApi.Handler) *testutils.ControllerTestUtils {
	jobController := jobController{handler: handler}
	controllerTestUtils := testutils.New(&jobController)
	return &controllerTestUtils
}

func TestGetJobs(t *testing.T) {
	t.Run("Get jobs - success", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobHandler := jobHandlersTest.NewMockHandler(ctrl)
		page := models.JobsPage{
			Jobs: []models.Job{
				{ID: "j1", Type: models.JobTypeIWPS, Status: models.JobStatusDone},
			},
			Count:             1,
			ContinuationToken: "next-page",
		}
		jobHandler.
			EXPECT().
			GetJobs(gomock.Any(), query.Filters{Status: "done", Limit: "10"}, testutils.TestToken).
			Return(&page, nil).
			Times(1)

		controllerTestUtils := setupTest(jobHandler)
		responseChannel := controllerTestUtils.ExecuteRequest(http.MethodGet, "/api/v1/jobs?status=done&limit=10")
		response := <-responseChannel
		assert.NotNil(t, response)

		if response != nil {
			assert.Equal(t, http.StatusOK, response.StatusCode)
			var returnedPage models.JobsPage
			_ = testutils.GetResponseBody(response, &returnedPage)
			assert.Len(t, returnedPage.Jobs, 1)
			assert.Equal(t, "j1", returnedPage.Jobs[0].ID)
			assert.Equal(t, "next-page", returnedPage.ContinuationToken)
		}
	})

	t.Run("Get jobs - invalid filter gives 400", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobHandler := jobHandlersTest.NewMockHandler(ctrl)
		jobHandler.
			EXPECT().
			GetJobs(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apierrors.NewInvalidFilter("status", "finished", models.JobStatusValues())).
			Times(1)

		controllerTestUtils := setupTest(jobHandler)
		responseChannel := controllerTestUtils.ExecuteRequest(http.MethodGet, "/api/v1/jobs?status=finished")
		response := <-responseChannel
		assert.NotNil(t, response)

		if response != nil {
			assert.Equal(t, http.StatusBadRequest, response.StatusCode)
			var returnedStatus apierrors.Status
			_ = testutils.GetResponseBody(response, &returnedStatus)
			assert.Equal(t, apierrors.StatusFailure, returnedStatus.Status)
			assert.Equal(t, apierrors.StatusReasonInvalidFilter, returnedStatus.Reason)
		}
	})

	t.Run("Get jobs - status code 500", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobHandler := jobHandlersTest.NewMockHandler(ctrl)
		jobHandler.
			EXPECT().
			GetJobs(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("unhandled error")).
			Times(1)

		controllerTestUtils := setupTest(jobHandler)
		responseChannel := controllerTestUtils.ExecuteRequest(http.MethodGet, "/api/v1/jobs")
		response := <-responseChannel
		assert.NotNil(t, response)

		if response != nil {
			assert.Equal(t, http.StatusInternalServerError, response.StatusCode)
			var returnedStatus apierrors.Status
			_ = testutils.GetResponseBody(response, &returnedStatus)
			assert.Equal(t, http.StatusInternalServerError, returnedStatus.Code)
			assert.Equal(t, apierrors.StatusFailure, returnedStatus.Status)
			assert.Equal(t, apierrors.StatusReasonUnknown, returnedStatus.Reason)
		}
	})

	t.Run("Get jobs - missing credential gives 401 without reaching the handler", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobHandler := jobHandlersTest.NewMockHandler(ctrl)
		jobHandler.
			EXPECT().
			GetJobs(gomock.Any(), gomock.Any(), gomock.Any()).
			Times(0)

		controllerTestUtils := setupTest(jobHandler)
		responseChannel := controllerTestUtils.ExecuteUnauthorizedRequest(http.MethodGet, "/api/v1/jobs")
		response := <-responseChannel
		assert.NotNil(t, response)

		if response != nil {
			assert.Equal(t, http.StatusUnauthorized, response.StatusCode)
			var returnedStatus apierrors.Status
			_ = testutils.GetResponseBody(response, &returnedStatus)
			assert.Equal(t, apierrors.StatusReasonUnauthorized, returnedStatus.Reason)
		}
	})
}

func TestGetJob(t *testing.T) {
	t.Run("Get job - success", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobID := "j1"
		jobHandler := jobHandlersTest.NewMockHandler(ctrl)
		fileCount := 3
		detail := models.JobDetailResponse{
			Job: models.JobDetail{
				Job:      models.Job{ID: jobID, Type: models.JobTypeISIM, Status: models.JobStatusInProgress},
				TenantID: "acme",
			},
			FileCount: &fileCount,
		}
		jobHandler.
			EXPECT().
			GetJob(gomock.Any(), jobID, testutils.TestToken).
			Return(&detail, nil).
			Times(1)

		controllerTestUtils := setupTest(jobHandler)
		responseChannel := controllerTestUtils.ExecuteRequest(http.MethodGet, fmt.Sprintf("/api/v1/jobs/%s", jobID))
		response := <-responseChannel
		assert.NotNil(t, response)

		if response != nil {
			assert.Equal(t, http.StatusOK, response.StatusCode)
			var returnedDetail models.JobDetailResponse
			_ = testutils.GetResponseBody(response, &returnedDetail)
			assert.Equal(t, jobID, returnedDetail.Job.ID)
			assert.Equal(t, "acme", returnedDetail.Job.TenantID)
			if assert.NotNil(t, returnedDetail.FileCount) {
				assert.Equal(t, 3, *returnedDetail.FileCount)
			}
		}
	})

	t.Run("Get job - not found", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobHandler := jobHandlersTest.NewMockHandler(ctrl)
		jobHandler.
			EXPECT().
			GetJob(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apierrors.NewNotFound("job", "anyjob")).
			Times(1)

		controllerTestUtils := setupTest(jobHandler)
		responseChannel := controllerTestUtils.ExecuteRequest(http.MethodGet, fmt.Sprintf("/api/v1/jobs/%s", "anyjob"))
		response := <-responseChannel
		assert.NotNil(t, response)

		if response != nil {
			assert.Equal(t, http.StatusNotFound, response.StatusCode)
			var returnedStatus apierrors.Status
			_ = testutils.GetResponseBody(response, &returnedStatus)
			assert.Equal(t, http.StatusNotFound, returnedStatus.Code)
			assert.Equal(t, apierrors.StatusReasonNotFound, returnedStatus.Reason)
		}
	})
}

func TestGetJobFiles(t *testing.T) {
	t.Run("List job files - success", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobHandler := jobHandlersTest.NewMockHandler(ctrl)
		listing := models.FileListResponse{
			Files:      []string{"trace.json", "summary.csv"},
			TotalFiles: 2,
			JobID:      "j1",
		}
		jobHandler.
			EXPECT().
			GetJobFiles(gomock.Any(), "j1", testutils.TestToken).
			Return(&listing, nil).
			Times(1)

		controllerTestUtils := setupTest(jobHandler)
		responseChannel := controllerTestUtils.ExecuteRequest(http.MethodGet, "/api/v1/jobs/j1/files")
		response := <-responseChannel
		assert.NotNil(t, response)

		if response != nil {
			assert.Equal(t, http.StatusOK, response.StatusCode)
			var returnedListing models.FileListResponse
			_ = testutils.GetResponseBody(response, &returnedListing)
			assert.Equal(t, []string{"trace.json", "summary.csv"}, returnedListing.Files)
			assert.Equal(t, 2, returnedListing.TotalFiles)
		}
	})

	t.Run("List job files - upstream unavailable gives 502", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobHandler := jobHandlersTest.NewMockHandler(ctrl)
		jobHandler.
			EXPECT().
			GetJobFiles(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apierrors.NewUpstreamUnavailable("file service", errors.New("connection refused"))).
			Times(1)

		controllerTestUtils := setupTest(jobHandler)
		responseChannel := controllerTestUtils.ExecuteRequest(http.MethodGet, "/api/v1/jobs/j1/files")
		response := <-responseChannel
		assert.NotNil(t, response)

		if response != nil {
			assert.Equal(t, http.StatusBadGateway, response.StatusCode)
			var returnedStatus apierrors.Status
			_ = testutils.GetResponseBody(response, &returnedStatus)
			assert.Equal(t, apierrors.StatusReasonUpstreamUnavailable, returnedStatus.Reason)
		}
	})
}

func TestDownloadJobFile(t *testing.T) {
	t.Run("Download job file - streams the content", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		content := "simulation output data"
		jobHandler := jobHandlersTest.NewMockHandler(ctrl)
		jobHandler.
			EXPECT().
			DownloadJobFile(gomock.Any(), "j1", "trace.json", testutils.TestToken).
			Return(&fileservice.Download{
				Body:          io.NopCloser(strings.NewReader(content)),
				ContentType:   "application/json",
				ContentLength: int64(len(content)),
			}, nil).
			Times(1)

		controllerTestUtils := setupTest(jobHandler)
		responseChannel := controllerTestUtils.ExecuteRequest(http.MethodGet, "/api/v1/jobs/j1/files/trace.json")
		response := <-responseChannel
		assert.NotNil(t, response)

		if response != nil {
			assert.Equal(t, http.StatusOK, response.StatusCode)
			assert.Equal(t, "application/json", response.Header.Get("Content-Type"))
			assert.Contains(t, response.Header.Get("Content-Disposition"), `"trace.json"`)
			body, _ := io.ReadAll(response.Body)
			assert.Equal(t, content, string(body))
		}
	})

	t.Run("Download job file - not found", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobHandler := jobHandlersTest.NewMockHandler(ctrl)
		jobHandler.
			EXPECT().
			DownloadJobFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apierrors.NewNotFound("file", "nope.txt")).
			Times(1)

		controllerTestUtils := setupTest(jobHandler)
		responseChannel := controllerTestUtils.ExecuteRequest(http.MethodGet, "/api/v1/jobs/j1/files/nope.txt")
		response := <-responseChannel
		assert.NotNil(t, response)

		if response != nil {
			assert.Equal(t, http.StatusNotFound, response.StatusCode)
		}
	})
}
