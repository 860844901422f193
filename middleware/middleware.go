// Package middleware holds the gin handlers wrapped around every API route:
// request correlation, access logging and a limiter protecting our own endpoint.
package middleware

import (
	"net/http"
	"time"

	"github.com/Scalingo/sclng-repo-languages/config"
	"github.com/Scalingo/sclng-repo-languages/model"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	HeaderRequestID = "X-Request-ID"
	requestIDKey    = "requestID"
)

// RequestID reuses the X-Request-ID sent by the client or generates a new one
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)

		if requestID == "" {
			// uuid v7 is time sortable, fallback to v4 if the generator fails
			generated, err := uuid.NewV7()
			if err != nil {
				generated = uuid.New()
			}
			requestID = generated.String()
		}

		c.Set(requestIDKey, requestID)
		c.Header(HeaderRequestID, requestID)
		c.Next()
	}
}

// GetRequestID returns the id attached by RequestID, empty if the middleware did not run
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// RequestLogger writes one log line per request once the response is sent
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		entry := log.WithFields(log.Fields{
			"requestID": GetRequestID(c),
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    status,
			"latencyMs": time.Since(start).Milliseconds(),
		})

		switch {
		case status >= http.StatusInternalServerError:
			entry.Error("request finished")
		case status >= http.StatusBadRequest:
			entry.Warning("request finished")
		default:
			entry.Info("request finished")
		}
	}
}

// RateLimit guards our own api with a token bucket shared by all clients
// it says nothing about the github quota, which is reported as RATE_LIMIT_REACHED by the controller
func RateLimit(cfg config.APIConfig) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.RequestsBurst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			log.WithField("requestID", GetRequestID(c)).Warning("too many requests received, request rejected")

			c.AbortWithStatusJSON(http.StatusTooManyRequests, model.APIError{
				Code:    "TOO_MANY_REQUESTS",
				Message: "too many requests. wait a moment and try again",
			})
			return
		}

		c.Next()
	}
}
