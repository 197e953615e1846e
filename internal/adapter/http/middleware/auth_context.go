package middleware

import (
	"net/http"
	"strings"

	"coldchain_pricing/pkg"

	"github.com/gin-gonic/gin"
)

// Caller identity arrives from the upstream API gateway, which has already
// authenticated the request and stamped these headers. This service trusts
// them and only enforces presence; org scoping happens in the usecases.

const (
	HeaderUserID = "X-User-ID"
	HeaderOrgID  = "X-Org-ID"

	ctxUserIDKey = "auth.user_id"
	ctxOrgIDKey  = "auth.org_id"
)

var errMissingCallerIdentity = pkg.NewDomainErrorSimple("MISSING_CALLER_IDENTITY", "Missing caller identity headers", http.StatusUnauthorized)

func AuthContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		orgID := strings.TrimSpace(c.GetHeader(HeaderOrgID))
		if userID == "" || orgID == "" {
			c.AbortWithStatusJSON(errMissingCallerIdentity.HTTPStatus, errMissingCallerIdentity.ToHTTPError())
			return
		}
		c.Set(ctxUserIDKey, userID)
		c.Set(ctxOrgIDKey, orgID)
		c.Next()
	}
}

func UserID(c *gin.Context) string {
	return c.GetString(ctxUserIDKey)
}

func OrgID(c *gin.Context) string {
	return c.GetString(ctxOrgIDKey)
}
