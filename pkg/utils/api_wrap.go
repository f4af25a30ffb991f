package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	ErrorMessage string `json:"error_message"`
	TraceID      string `json:"trace_id,omitempty"`
}

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

// RespondSuccess writes data as the JSON body with 200. A nil data writes an
// empty 200.
func RespondSuccess(c *gin.Context, data interface{}) {
	if data == nil {
		c.Status(http.StatusOK)
		return
	}
	c.JSON(http.StatusOK, data)
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{
		ErrorMessage: message,
		TraceID:      traceID(c),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		zap.L().Warn("request rejected", zap.String("trace_id", traceID(c)), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusNotFound, "Username/password invalid")
	case errors.Is(err, ErrDuplicateAccount):
		zap.L().Error("duplicated account found", zap.String("trace_id", traceID(c)))
		RespondError(c, http.StatusNotFound, "More than one account exists with provided credentials")
	default:
		zap.L().Error("query error",
			zap.String("trace_id", traceID(c)),
			zap.String("path", c.FullPath()),
			zap.Error(err))
		RespondError(c, http.StatusInternalServerError, err.Error())
	}
}
