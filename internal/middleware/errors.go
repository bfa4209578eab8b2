package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/persistorai/wikipath/internal/httputil"
	"github.com/persistorai/wikipath/internal/metrics"
)

// respondError counts the error and delegates to the shared httputil.RespondError helper.
func respondError(c *gin.Context, status int, code, message string) {
	metrics.ErrorsTotal.WithLabelValues(code).Inc()
	httputil.RespondError(c, status, code, message)
}
