package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/equinor/workload-analyzer/api/controllers"
	apierrors "github.com/equinor/workload-analyzer/api/errors"
	"github.com/equinor/workload-analyzer/pkg/metrics"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const requestIDHeader = "X-Request-Id"

// RequestID tags every request with an id, reusing the caller's when present,
// and binds it to the request's logger context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)

		logger := log.Logger.With().Str("requestId", requestID).Logger()
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context()))
		c.Next()
	}
}

// BearerAuth rejects requests without a bearer credential before anything is
// forwarded upstream. The token itself is not validated here, the upstream
// services are its authority.
func BearerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			status := apierrors.NewUnauthorized("a bearer token is required").Status()
			c.AbortWithStatusJSON(http.StatusUnauthorized, status)
			return
		}
		c.Set(controllers.CredentialKey, strings.TrimSpace(token))
		c.Next()
	}
}

// ObserveRequests records count and duration per route.
func ObserveRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveRequest(c.Request.Method, path, c.Writer.Status(), time.Since(started))
	}
}
