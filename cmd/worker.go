package cmd

import (
	"djp.chapter42.de/taskstarter/internal/config"
	"djp.chapter42.de/taskstarter/internal/processor"
	"github.com/spf13/cobra"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Startet den Worker, der eingereihte Tasks ausführt",
	RunE: func(cmd *cobra.Command, args []string) error {
		return processor.Run(config.Config)
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
