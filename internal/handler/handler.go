// Package handler exposes the session engine over HTTP. Handlers are
// thin: bind the request, call the engine, wrap the result.
package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BoomMccloud/interviewer-pro-sub001/internal/auth"
	"github.com/BoomMccloud/interviewer-pro-sub001/internal/interview"
)

type Handler struct {
	Engine *interview.Engine
	Logger *zap.SugaredLogger
}

// claimsKey is the gin context key the auth middleware stores verified
// claims under.
const claimsKey = "claims"

// SetClaims stores verified claims on the request context.
func SetClaims(c *gin.Context, claims *auth.UserClaims) {
	c.Set(claimsKey, claims)
}

// UserIDFrom extracts the authenticated user from the gin context. A
// missing value means the auth middleware did not run.
func UserIDFrom(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(claimsKey)
	if !exists {
		return uuid.Nil, false
	}
	claims, ok := v.(*auth.UserClaims)
	if !ok {
		return uuid.Nil, false
	}
	return claims.UserID, true
}

// sessionID parses the :id path parameter.
func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
