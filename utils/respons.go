package utils

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Norne9/pravda-server/apperrors"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Code    string      `json:"code,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Data:    nil,
	})
}

// RespondAppError maps an error onto its stable response class. Anything
// outside the taxonomy is logged with full detail server-side and
// collapsed into the opaque "unknown" class for the caller.
func RespondAppError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		ErrorLogger.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		appErr = apperrors.Unknown()
	}
	c.JSON(appErr.Status, JSONResponse{
		Status:  false,
		Message: appErr.Message,
		Code:    appErr.Code,
	})
}
