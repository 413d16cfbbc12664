package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON serializes payload with the given status. Handlers go through this
// package so the success and error shapes stay in one place.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK writes a 200 response.
func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}

// Created writes a 201 response for newly stored resources.
func Created(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusCreated, payload)
}
