package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BoomMccloud/interviewer-pro-sub001/internal/auth"
	"github.com/BoomMccloud/interviewer-pro-sub001/internal/handler"
	"github.com/BoomMccloud/interviewer-pro-sub001/pkg/metrics"
	"github.com/BoomMccloud/interviewer-pro-sub001/pkg/response"
)

// RequestLogMiddleware logs every request through zap and records the
// HTTP metrics.
func (app *application) RequestLogMiddleware() gin.HandlerFunc {
	sugar := app.Logger.Sugar()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		status := c.Writer.Status()
		sugar.Infow("http",
			"method", c.Request.Method, "path", path, "status", status, "duration", duration)
		metrics.RecordRequest(c.Request.Method, path, strconv.Itoa(status), duration.Seconds())
	}
}

// CORSMiddleware allows the configured origins only.
func (app *application) CORSMiddleware() gin.HandlerFunc {
	trusted := make(map[string]bool)
	for _, origin := range app.Config.GetCORSOrigins() {
		trusted[origin] = true
	}
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if trusted[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// AuthMiddleware verifies the Bearer token and stores the claims on the
// request context.
func (app *application) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := verifyClaimsFromAuthHeader(c, app.Verifier)
		if err != nil {
			response.Unauthorized(c, err.Error())
			c.Abort()
			return
		}

		handler.SetClaims(c, claims)
		c.Next()
	}
}

// RateLimitMiddleware enforces the per-user fixed-window limit. An
// unreachable Redis fails open: losing rate limiting beats refusing
// every interview.
func (app *application) RateLimitMiddleware() gin.HandlerFunc {
	sugar := app.Logger.Sugar()
	return func(c *gin.Context) {
		key := c.ClientIP()
		if uid, ok := handler.UserIDFrom(c); ok {
			key = uid.String()
		}

		allowed, err := app.Limiter.Allow(c.Request.Context(), key)
		if err != nil {
			sugar.Warnw("rate limiter unavailable", "err", err)
			c.Next()
			return
		}
		if !allowed {
			response.TooManyRequests(c, "")
			c.Abort()
			return
		}
		c.Next()
	}
}

func verifyClaimsFromAuthHeader(c *gin.Context, verifier *auth.Verifier) (*auth.UserClaims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, fmt.Errorf("authorization header is missing")
	}

	fields := strings.Fields(authHeader)
	if len(fields) != 2 || fields[0] != "Bearer" {
		return nil, fmt.Errorf("invalid authorization header")
	}

	claims, err := verifier.VerifyToken(fields[1])
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	return claims, nil
}
