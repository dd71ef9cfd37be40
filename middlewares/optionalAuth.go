package middlewares

import (
	"github.com/gin-gonic/gin"
)

// OptionalAuth resolves the requester to authenticated or anonymous without
// ever rejecting the request. Listings with visibility filtering sit behind
// this; a bad or absent token simply means the anonymous view.
func OptionalAuth(c *gin.Context) {
	c.Set("authenticated", false)
	c.Set("admin", false)

	tokenString, ok := bearerToken(c)
	if !ok {
		c.Next()
		return
	}

	claims, err := parseToken(tokenString)
	if err != nil {
		c.Next()
		return
	}

	user, found, err := loadUser(c, claims)
	if err != nil || !found {
		c.Next()
		return
	}

	c.Set("currentUser", user)
	c.Set("authenticated", true)
	c.Set("admin", user.Admin)

	c.Next()
}
