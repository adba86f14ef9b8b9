package cmd

import (
	"os"

	"djp.chapter42.de/taskstarter/internal/config"
	"djp.chapter42.de/taskstarter/internal/data"
	"djp.chapter42.de/taskstarter/internal/logger"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "taskstarter",
	Short: "Startet Hintergrund-Tasks über eine Redis-Queue",
	Long: `Taskstarter nimmt HTTP-Anfragen entgegen, reiht dafür Tasks in eine
asynq-Queue (Redis) ein und führt sie im Worker-Prozess aus.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Vorläufiger Logger, bis die Konfiguration gelesen ist.
		logger.InitLogger(false, data.LogConfig{})

		if err := config.InitConfig(logger.Log, cfgFile); err != nil {
			logger.Log.Error(err.Error())
			return err
		}
		logger.InitLogger(config.Config.Debug, config.Config.Log)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Pfad zur Konfigurationsdatei (Standard: /app/config/taskstarter.cfg oder ./taskstarter.cfg)")
}
