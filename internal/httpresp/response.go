package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The public API wraps mutating responses in a {success, ...} envelope; reads
// return their payload bare.

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    data,
	})
}

func Done(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func DoneWithMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}
