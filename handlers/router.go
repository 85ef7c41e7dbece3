package handlers

import (
	"market-signals/config"
	"market-signals/logger"

	"github.com/gin-gonic/gin"
)

// NewRouter mounts the signals API under cfg.BasePath.
func NewRouter(cfg config.ServerConfig, h *SignalsHandler, log *logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), RequestLogger(log), Recovery(log), CORS())

	r.GET("/healthz", h.Health)

	api := r.Group(cfg.BasePath)
	{
		api.GET("", h.Query)
		api.POST("", h.Query)
		api.GET("/reference", h.Reference)
	}

	return r
}
