package response

import "github.com/gin-gonic/gin"

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}

// RespondRetryable marks a failure as transient so clients surface a retry
// action instead of a dead end.
func RespondRetryable(c *gin.Context, code int, message string, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     "error",
		StatusCode: code,
		Message:    message,
		Errors:     errors,
		Retryable:  true,
	})
}
