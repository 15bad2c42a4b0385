package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Jump straight into a game on one level",
	Example: `  mathadventure play --tier 2-4
  mathadventure play --tier 8+`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tier, _ := cmd.Flags().GetString("tier")
		return runApp(cmd, tier)
	},
}

func init() {
	playCmd.Flags().String("tier", "", "Level to play: 2-4, 4-8 or 8+")
	_ = playCmd.MarkFlagRequired("tier")
}
