package handlers

import (
	"errors"
	"net/http"

	"djp.chapter42.de/taskstarter/internal/data"
	"djp.chapter42.de/taskstarter/internal/logger"
	"djp.chapter42.de/taskstarter/internal/queue"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewStartTaskHandler reiht bei jedem Aufruf genau einen Task ein und
// bestätigt mit dessen ID. Fehler der Queue werden nicht übersetzt, sondern
// an ErrorHandler weitergereicht.
func NewStartTaskHandler(client queue.Client, taskCfg data.TaskConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := client.GetQueue(taskCfg.Queue)
		job, err := q.Enqueue(c.Request.Context(), queue.TaskRef(taskCfg.Name), taskCfg.Arg)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		logger.Log.Info("Task gestartet:", zap.String("id", job.ID), zap.String("queue", q.Name()), zap.String("task", taskCfg.Name))
		c.String(http.StatusOK, "Task %s gestartet.", job.ID)
	}
}

func NewTaskStatusHandler(client queue.Client, taskCfg data.TaskConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		queueName := c.DefaultQuery("queue", taskCfg.Queue)

		job, err := client.GetQueue(queueName).Fetch(c.Request.Context(), id)
		if errors.Is(err, queue.ErrJobNotFound) {
			logger.Log.Debug("Task nicht gefunden:", zap.String("id", id), zap.String("queue", queueName))
			c.JSON(http.StatusNotFound, gin.H{"error": "Task nicht gefunden", "id": id})
			return
		}
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.JSON(http.StatusOK, job)
	}
}

func NewHealthHandler(client queue.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := client.Ping(c.Request.Context()); err != nil {
			logger.Log.Warn("Redis nicht erreichbar:", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
