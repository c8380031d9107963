package controllers

import (
	"encoding/json"
	"net/http"

	apierrors "github.com/equinor/workload-analyzer/api/errors"
	"github.com/gin-gonic/gin"
)

// CredentialKey is the gin context key under which the authentication
// middleware stores the caller's bearer token.
const CredentialKey = "credential"

type ControllerBase struct {
}

func (controller *ControllerBase) HandleError(c *gin.Context, err error) {
	_ = c.Error(err)

	var status *apierrors.Status
	switch t := err.(type) {
	case apierrors.APIStatus:
		status = t.Status()
	default:
		status = apierrors.NewFromError(err).Status()
	}

	controller.statusResponse(c.Writer, status)
}

func (controller *ControllerBase) statusResponse(w http.ResponseWriter, status *apierrors.Status) {
	body, err := json.Marshal(status)
	if err != nil {
		controller.writeResponse(w, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status.Code)
	_, _ = w.Write(body)
}

func (controller *ControllerBase) writeResponse(w http.ResponseWriter, statusCode int, response ...string) {
	w.WriteHeader(statusCode)
	for _, responseText := range response {
		_, _ = w.Write([]byte(responseText))
	}
}

// Credential returns the caller's bearer token placed in the context by the
// authentication middleware.
func Credential(c *gin.Context) string {
	credential, _ := c.Get(CredentialKey)
	token, _ := credential.(string)
	return token
}
