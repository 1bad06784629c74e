package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestRecorder collects per-request metrics.
type RequestRecorder interface {
	RequestStarted() func()
	ObserveRequest(method, route string, status int, duration time.Duration)
}

// Metrics records request counts and latency by matched route.
func Metrics(recorder RequestRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		done := recorder.RequestStarted()
		defer done()

		start := time.Now()
		c.Next()
		recorder.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
