package middleware

import (
	"net/http"

	"avia-booking/internal/httpx/httperr"
	"avia-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// UserNameHeader carries the caller identity. The header is trusted as-is;
// authentication happens upstream of this platform.
const UserNameHeader = "X-User-Name"

const usernameContextKey = "username"

var errMissingUserName = errs.New("missing " + UserNameHeader + " header")

// RequireUser rejects requests without the identity header and exposes the
// username via GetUsername.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetHeader(UserNameHeader)
		if username == "" {
			httperr.AbortWithError(c, http.StatusBadRequest, errMissingUserName,
				"Header '"+UserNameHeader+"' is required", nil)
			return
		}
		c.Set(usernameContextKey, username)
		c.Next()
	}
}

func GetUsername(c *gin.Context) (string, bool) {
	v, exists := c.Get(usernameContextKey)
	if !exists {
		return "", false
	}
	username, ok := v.(string)
	return username, ok && username != ""
}
