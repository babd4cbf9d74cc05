package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "twisted",
	Short: "A coordinate-based Rubik's cube solver",
	Long: `Twisted solves the 2x2x2 and 3x3x3 cubes with IDA* over precomputed
coordinate move tables and pruning-table heuristics, using Kociemba's
two-phase method for the 3x3x3.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(cube2Cmd)
	rootCmd.AddCommand(cube3Cmd)
	rootCmd.AddCommand(serveCmd)
}
