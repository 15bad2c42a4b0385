package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mathadventure",
	Short: "Arithmetic practice game for kids",
	Long:  "Math Adventure! A terminal game where kids aged 2 and up practice adding, subtracting, multiplying and dividing.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("env-file", "", "Path to a .env file (default \".env\" when present)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Seed for deterministic problems (overrides MATHADVENTURE_SEED)")
	rootCmd.PersistentFlags().String("metrics-addr", "", "Serve Prometheus metrics on this address while playing (overrides MATHADVENTURE_METRICS_ADDR)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(sheetCmd)
	rootCmd.AddCommand(versionCmd)
}
