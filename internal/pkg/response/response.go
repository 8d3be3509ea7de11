// Package response renders the JSON envelope shared by every API
// endpoint: {"success":true,"data":...} on success,
// {"success":false,"error":{code,message[,details]}} on failure. The
// mobile client branches on success and the error code only; messages
// are display text.
package response

import "github.com/gin-gonic/gin"

type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *errorBody  `json:"error,omitempty"`
}

type errorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Success writes the payload under the data key.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, envelope{Success: true, Data: data})
}

// Error writes a machine-readable error code alongside a human message.
func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, envelope{Error: &errorBody{Code: code, Message: message}})
}

// ErrorWithDetails also attaches per-field details, typically the
// validator's field-to-rule map.
func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, envelope{Error: &errorBody{Code: code, Message: message, Details: details}})
}
