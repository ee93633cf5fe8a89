package render

import (
	"github.com/gin-gonic/gin"
)

// Screen writes a screen snapshot in the envelope the shell consumes.
func Screen(c *gin.Context, status int, name string, page any) {
	c.JSON(status, gin.H{
		"screen": name,
		"data":   page,
	})
}

// OK writes a bare success acknowledgement.
func OK(c *gin.Context, status int) {
	c.JSON(status, gin.H{"success": true})
}
