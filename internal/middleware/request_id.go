package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TraceIDHeader carries the request's trace ID in both directions.
const TraceIDHeader = "X-Trace-ID"

// TraceIDContextKey is where the trace ID lives on the echo context.
const TraceIDContextKey = "trace_id"

// RequestID tags every request with a trace ID. An inbound X-Trace-ID is
// honored so a caller can correlate its own logs with ours; otherwise a
// fresh UUID is minted. The ID ends up on the context (where the error
// envelope picks it up) and on the response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID reads the trace ID set by RequestID, or "" when the middleware
// did not run.
func GetTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}
