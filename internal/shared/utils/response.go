package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
)

// APIResponse represents a standard API response structure
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorInfo represents error information in API response
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse sends a successful response with custom status code
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// CreatedResponse sends a created response
func CreatedResponse(c *gin.Context, data interface{}, message ...string) {
	msg := "Resource created successfully"
	if len(message) > 0 {
		msg = message[0]
	}
	SuccessResponse(c, http.StatusCreated, msg, data)
}

// ErrorResponse sends an error response with custom status code and message
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error: &ErrorInfo{
			Type:    "error",
			Message: message,
		},
	})
}

// ErrorResponseWithError sends an error response based on error type
func ErrorResponseWithError(c *gin.Context, err error) {
	ErrorResponseWithData(c, err, nil)
}

// ErrorResponseWithData sends an error response that still carries a payload,
// used where a request partially failed.
func ErrorResponseWithData(c *gin.Context, err error, data interface{}) {
	statusCode, info := errorInfoFor(err)
	c.JSON(statusCode, APIResponse{
		Success: false,
		Data:    data,
		Error:   &info,
	})
}

func errorInfoFor(err error) (int, ErrorInfo) {
	if appErr := errors.GetAppError(err); appErr != nil {
		return appErr.Code, ErrorInfo{
			Type:    string(appErr.Type),
			Message: appErr.Message,
			Details: appErr.Details,
		}
	}
	// Non-AppErrors never expose internal details.
	return http.StatusInternalServerError, ErrorInfo{
		Type:    string(errors.ErrorTypeInternal),
		Message: constants.ErrMsgInternalServerError,
	}
}

// NoContentResponse sends a no content response
func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
