package api

import (
	"github.com/gin-gonic/gin"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

func success(c *gin.Context, code int, data any) {
	c.JSON(code, gin.H{"status": statusSuccess, "data": data})
}

func successMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"status": statusSuccess, "message": message})
}

// fail writes the error envelope. The error text is only included for server side failures.
func fail(c *gin.Context, code int, message string, err error) {
	body := gin.H{"status": statusError, "message": message}
	if err != nil {
		body["error"] = err.Error()
	}
	c.JSON(code, body)
}
