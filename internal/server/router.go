package server

import (
	"time"

	"djp.chapter42.de/taskstarter/internal/data"
	"djp.chapter42.de/taskstarter/internal/handlers"
	"djp.chapter42.de/taskstarter/internal/queue"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(client queue.Client, cfg *data.AppConfig) *gin.Engine {
	router := gin.New()
	router.Use(handlers.RequestLogger(), gin.Recovery(), handlers.ErrorHandler())

	if len(cfg.CORS.AllowOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins: cfg.CORS.AllowOrigins,
			AllowMethods: []string{"GET", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Accept"},
			MaxAge:       12 * time.Hour,
		}))
	}

	router.GET("/tasks/start", handlers.NewStartTaskHandler(client, cfg.Task))
	router.GET("/tasks/:id", handlers.NewTaskStatusHandler(client, cfg.Task))
	router.GET("/health", handlers.NewHealthHandler(client))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
