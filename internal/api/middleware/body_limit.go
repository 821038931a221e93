package middleware

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mp3-transcriber/internal/api/errors"
)

// BodyLimitKey is the gin context key holding the body cap in MB
const BodyLimitKey = "body_limit_mb"

// BodyLimit caps the request body. Declared oversize bodies are refused up
// front; others fail while being read.
func BodyLimit(limitMB int) gin.HandlerFunc {
	limit := int64(limitMB) * 1024 * 1024
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			HandleError(c, errors.NewPayloadTooLargeError(limitMB))
			return
		}
		c.Set(BodyLimitKey, limitMB)
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}

// IsBodyTooLarge reports whether err came from a body over the BodyLimit cap.
// Multipart parsing does not always wrap the reader error, hence the text match.
func IsBodyTooLarge(err error) bool {
	if err == nil {
		return false
	}
	var maxErr *http.MaxBytesError
	if stderrors.As(err, &maxErr) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}
