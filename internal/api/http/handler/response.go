package handler

import "github.com/gin-gonic/gin"

// APIResponse is the uniform response envelope.
type APIResponse struct {
	Status  int    `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
}

func respond(c *gin.Context, status int, data any, message string) {
	c.JSON(status, APIResponse{Status: status, Data: data, Message: message})
}
