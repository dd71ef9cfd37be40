package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CheckAdmin must run after CheckAuth. An authenticated non-admin gets 403.
func CheckAdmin(c *gin.Context) {
	isAdmin := c.GetBool("admin")

	if !isAdmin {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return
	}
}
