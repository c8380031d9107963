package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ReasonsMapToExpectedStatusCodes(t *testing.T) {
	scenarios := []struct {
		err          *StatusError
		expectedCode int
	}{
		{NewInvalidFilter("status", "bogus", []string{"queued", "done"}), http.StatusBadRequest},
		{NewInvalidTenant(""), http.StatusBadRequest},
		{NewUnauthorized("missing bearer token"), http.StatusUnauthorized},
		{NewForbidden("access denied"), http.StatusForbidden},
		{NewNotFound("job", "a2290337"), http.StatusNotFound},
		{NewRateLimited("job service"), http.StatusBadGateway},
		{NewUpstreamError("file service", 503, "maintenance"), http.StatusBadGateway},
		{NewUpstreamUnavailable("job service", errors.New("connection refused")), http.StatusBadGateway},
		{NewUpstreamTimeout("file service"), http.StatusGatewayTimeout},
		{NewStreamInterrupted("trace.log", errors.New("unexpected EOF")), http.StatusBadGateway},
	}

	for _, scenario := range scenarios {
		t.Run(string(scenario.err.ErrStatus.Reason), func(t *testing.T) {
			assert.Equal(t, scenario.expectedCode, scenario.err.Status().Code)
			assert.Equal(t, StatusFailure, scenario.err.Status().Status)
		})
	}
}

func Test_InvalidFilterListsAcceptedValues(t *testing.T) {
	err := NewInvalidFilter("job_type", "Bogus", []string{"IWPS", "ISIM"})
	assert.Contains(t, err.Error(), `invalid job_type "Bogus"`)
	assert.Contains(t, err.Error(), "IWPS, ISIM")
}

func Test_NewFromError(t *testing.T) {
	t.Run("passes StatusError through unchanged", func(t *testing.T) {
		original := NewNotFound("job", "j1")
		assert.Same(t, original, NewFromError(original))
	})

	t.Run("unwraps wrapped StatusError", func(t *testing.T) {
		wrapped := fmt.Errorf("fetching job: %w", NewForbidden("nope"))
		assert.Equal(t, StatusReasonForbidden, NewFromError(wrapped).Status().Reason)
	})

	t.Run("maps context deadline to UpstreamTimeout", func(t *testing.T) {
		status := NewFromError(context.DeadlineExceeded).Status()
		assert.Equal(t, StatusReasonUpstreamTimeout, status.Reason)
		assert.Equal(t, http.StatusGatewayTimeout, status.Code)
	})

	t.Run("maps unclassified errors to Unknown", func(t *testing.T) {
		status := NewFromError(errors.New("boom")).Status()
		assert.Equal(t, StatusReasonUnknown, status.Reason)
		assert.Equal(t, http.StatusInternalServerError, status.Code)
	})
}

func Test_IsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFound("job", "j1")))
	assert.False(t, IsNotFound(NewForbidden("nope")))
	assert.False(t, IsNotFound(errors.New("boom")))
}
