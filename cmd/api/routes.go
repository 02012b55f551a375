package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (app *application) routes() http.Handler {
	if app.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(app.RequestLogMiddleware())
	r.Use(app.CORSMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	v1.Use(app.AuthMiddleware())
	if app.Config.Limiter.Enabled {
		v1.Use(app.RateLimitMiddleware())
	}
	{
		sessions := v1.Group("/sessions")
		sessions.POST("", app.Handler.CreateSession)
		sessions.POST("/:id/start", app.Handler.StartSession)
		sessions.POST("/:id/responses", app.Handler.SubmitResponse)
		sessions.POST("/:id/advance", app.Handler.AdvanceTopic)
		sessions.POST("/:id/next", app.Handler.NextQuestion)
		sessions.GET("/:id/state", app.Handler.GetSessionState)
		sessions.POST("/:id/save", app.Handler.SaveSession)
		sessions.GET("/:id/transcript", app.Handler.GetTranscript)
	}

	return r
}
