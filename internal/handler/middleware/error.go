package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"hotel-pricing/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the envelope recorded by httperr when a handler
// aborted without writing a body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			if resp, ok := c.Errors[i].Meta.(httperr.Response); ok && c.Errors[i].IsType(gin.ErrorTypePublic) {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		writeInternalError(c)
	}
}

// CustomRecovery turns a panic in a pricing handler into a 500 envelope.
// The panic value is kept on the context so the request log carries it.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				attrs := []any{"error", rec, "path", c.Request.URL.Path}
				if id, ok := c.Get("request_id"); ok {
					attrs = append(attrs, "request_id", id)
				}
				if terminal := c.GetHeader("X-POS-Terminal"); terminal != "" {
					attrs = append(attrs, "pos_terminal", terminal)
				}
				slog.ErrorContext(c.Request.Context(), "recovered from panic", attrs...)

				_ = c.Error(fmt.Errorf("panic: %v", rec))
				writeInternalError(c)
				c.Abort()
			}
		}()
		c.Next()
	}
}

func writeInternalError(c *gin.Context) {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	c.JSON(http.StatusInternalServerError, resp)
}
