package util

import (
	"net/http"

	"github.com/KINGAKWO/lingoRoots-sub000/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response is the unified response envelope.
type Response struct {
	Code      int         `json:"code"`
	Message   string      `json:"message"`
	ErrorCode string      `json:"errorCode,omitempty"`
	Data      interface{} `json:"data,omitempty"`
}

// PageResponse wraps paginated lists.
type PageResponse struct {
	List  interface{} `json:"list"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    http.StatusCreated,
		Message: "created",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code:      http.StatusUnauthorized,
		Message:   "Unauthorized",
		ErrorCode: CodeUnauthenticated,
	})
}

func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Code:      http.StatusForbidden,
		Message:   "Forbidden",
		ErrorCode: CodePermissionDenied,
	})
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code:      http.StatusBadRequest,
		Message:   message,
		ErrorCode: CodeInvalidArgument,
	})
}

func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Response{
		Code:      http.StatusNotFound,
		Message:   "Resource not found",
		ErrorCode: CodeNotFound,
	})
}

func InternalServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code:      http.StatusInternalServerError,
		Message:   "Internal server error",
		ErrorCode: CodeInternal,
	})
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error", zap.Error(err))
	InternalServerError(c)
}

// appErrorStatus maps error codes onto HTTP statuses.
var appErrorStatus = map[string]int{
	CodeUnauthenticated:    http.StatusUnauthorized,
	CodeInvalidArgument:    http.StatusBadRequest,
	CodeNotFound:           http.StatusNotFound,
	CodeFailedPrecondition: http.StatusPreconditionFailed,
	CodePermissionDenied:   http.StatusForbidden,
	CodeAlreadyExists:      http.StatusConflict,
	CodeInternal:           http.StatusInternalServerError,
}

// HandleError renders an *AppError with its mapped status, and logs plus
// masks anything else as internal.
func HandleError(c *gin.Context, err error) {
	if appErr, ok := AsAppError(err); ok {
		status, known := appErrorStatus[appErr.Code]
		if !known {
			status = http.StatusInternalServerError
		}
		c.JSON(status, Response{
			Code:      status,
			Message:   appErr.Message,
			ErrorCode: appErr.Code,
		})
		return
	}
	LogInternalError(c, err)
}
