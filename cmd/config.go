package cmd

import (
	"fmt"
	"io"

	"djp.chapter42.de/taskstarter/internal/config"
	"djp.chapter42.de/taskstarter/internal/data"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Gibt die wirksame Konfiguration als YAML aus",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printConfig(cmd.OutOrStdout(), *config.Config)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func printConfig(w io.Writer, cfg data.AppConfig) error {
	if cfg.Redis.Password != "" {
		cfg.Redis.Password = "********"
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("fehler beim Serialisieren der Konfiguration: %w", err)
	}
	_, err = w.Write(out)
	return err
}
