package handlers

import (
	"net/http"
	"strconv"
	"time"

	"djp.chapter42.de/taskstarter/internal/logger"
	"djp.chapter42.de/taskstarter/internal/metrics"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const InternalErrorBody = "Interner Serverfehler"

// ErrorHandler ist der allgemeine Fehlerpfad: an den Kontext gehängte Fehler
// werden geloggt und, falls noch nichts geschrieben wurde, als 500 beantwortet.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		for _, e := range c.Errors {
			logger.Log.Error("Fehler bei der Verarbeitung der Anfrage:", zap.String("path", c.Request.URL.Path), zap.Error(e.Err))
		}
		if c.Writer.Written() {
			return
		}
		c.String(http.StatusInternalServerError, InternalErrorBody)
	}
}

func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		metrics.ObserveRequest(route, c.Request.Method, strconv.Itoa(status), latency.Seconds())

		logger.Log.Info("Anfrage verarbeitet:",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
