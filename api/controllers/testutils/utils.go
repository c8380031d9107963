package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"

	"github.com/equinor/workload-analyzer/api"
	"github.com/equinor/workload-analyzer/models"
	"github.com/equinor/workload-analyzer/router"
)

// TestToken is the bearer credential attached to authorized test requests.
const TestToken = "test-token"

type ControllerTestUtils struct {
	controllers []api.Controller
}

func New(controllers ...api.Controller) ControllerTestUtils {
	return ControllerTestUtils{
		controllers: controllers,
	}
}

// ExecuteRequest Helper method to issue an authorized http request
func (ctrl *ControllerTestUtils) ExecuteRequest(method, path string) <-chan *http.Response {
	return ctrl.ExecuteRequestWithBody(method, path, nil)
}

// ExecuteRequestWithBody Helper method to issue an authorized http request with a body
func (ctrl *ControllerTestUtils) ExecuteRequestWithBody(method, path string, body interface{}) <-chan *http.Response {
	return ctrl.executeRequest(method, path, body, "Bearer "+TestToken)
}

// ExecuteUnauthorizedRequest Helper method to issue a http request without a credential
func (ctrl *ControllerTestUtils) ExecuteUnauthorizedRequest(method, path string) <-chan *http.Response {
	return ctrl.executeRequest(method, path, nil, "")
}

func (ctrl *ControllerTestUtils) executeRequest(method, path string, body interface{}, authorization string) <-chan *http.Response {
	responseChan := make(chan *http.Response)

	go func() {
		var reader io.Reader

		if body != nil {
			payload, _ := json.Marshal(body)
			reader = bytes.NewReader(payload)
		}

		router := router.NewServer(&models.Config{AppVersion: "test"}, ctrl.controllers...)
		server := httptest.NewServer(router)
		defer server.Close()
		url := buildURLFromServer(server, path)
		request, _ := http.NewRequest(method, url, reader)
		if authorization != "" {
			request.Header.Set("Authorization", authorization)
		}
		response, _ := http.DefaultClient.Do(request)
		responseChan <- response
		close(responseChan)
	}()

	return responseChan
}

// GetResponseBody Gets response payload as type
func GetResponseBody(response *http.Response, target interface{}) error {
	body, _ := io.ReadAll(response.Body)

	return json.Unmarshal(body, target)
}

func buildURLFromServer(server *httptest.Server, path string) string {
	url, _ := url.Parse(server.URL)
	url.Path = path
	return url.String()
}
