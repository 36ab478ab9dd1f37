package handlers

import (
	"crypto/subtle"
	"strings"

	"crane_fmv/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	HeaderAccountID  = "X-Account-ID"
	HeaderAdminToken = "X-Admin-Token"
)

// actorFromRequest reads the caller identity set by the session layer in
// front of the service. Admin rights need a configured token.
func actorFromRequest(c *gin.Context, adminToken string) usecase.Actor {
	actor := usecase.Actor{AccountID: strings.TrimSpace(c.GetHeader(HeaderAccountID))}
	if adminToken == "" {
		return actor
	}
	presented := c.GetHeader(HeaderAdminToken)
	if presented != "" && subtle.ConstantTimeCompare([]byte(presented), []byte(adminToken)) == 1 {
		actor.Admin = true
	}
	return actor
}
