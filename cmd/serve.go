package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"djp.chapter42.de/taskstarter/internal/config"
	"djp.chapter42.de/taskstarter/internal/data"
	"djp.chapter42.de/taskstarter/internal/logger"
	"djp.chapter42.de/taskstarter/internal/queue"
	"djp.chapter42.de/taskstarter/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Startet den HTTP-Server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", config.DefaultPort, "Port des HTTP-Servers")
	rootCmd.AddCommand(serveCmd)
}

// serveConfig liefert die Konfiguration für serve, ggf. mit dem Port aus --port.
func serveConfig(cmd *cobra.Command, base *data.AppConfig) *data.AppConfig {
	cfg := *base
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	return &cfg
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := serveConfig(cmd, config.Config)
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	client := queue.NewAsynqClient(cfg)
	defer func() {
		if err := client.Close(); err != nil {
			logger.Log.Warn("Fehler beim Schließen des Queue-Clients:", zap.Error(err))
		}
	}()

	config.WatchDebug(config.Viper)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: server.NewRouter(client, cfg),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	logger.Log.Info("Server startet...", zap.String("port", cfg.Port), zap.String("redis", cfg.Redis.Addr))
	return runServer(srv, quit)
}

// runServer blockiert, bis der Server nicht starten kann oder ein Signal auf
// quit eintrifft, und fährt ihn dann herunter.
func runServer(srv *http.Server, quit <-chan os.Signal) error {
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-listenErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("fehler beim Starten des Servers: %w", err)
	case <-quit:
	}

	logger.Log.Info("Server wird heruntergefahren...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server-Shutdown fehlgeschlagen: %w", err)
	}
	if err := <-listenErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("fehler beim Starten des Servers: %w", err)
	}

	logger.Log.Info("Server heruntergefahren.")
	return nil
}
