package controllers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ChurchSite/policy"
)

// dateFormats accepted for event and sermon dates, tried in order.
var dateFormats = []string{time.RFC3339, "2006-01-02"}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or RFC3339", value)
}

func idParam(c *gin.Context, name string) (int, error) {
	return strconv.Atoi(c.Param(name))
}

// viewerFrom reads the identity resolved by CheckAuth or OptionalAuth.
func viewerFrom(c *gin.Context) policy.Viewer {
	return policy.Viewer{
		Authenticated: c.GetBool("authenticated"),
		Admin:         c.GetBool("admin"),
	}
}
