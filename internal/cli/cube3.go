package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/ehrlich-b/twisted/internal/cube3"
	"github.com/spf13/cobra"
)

var cube3Cmd = &cobra.Command{
	Use:   "cube3",
	Short: "Interactive 3x3x3 two-phase solver",
	Long: `Solve 3x3x3 scrambles interactively with the two-phase method. Reads
one scramble per line in face-turn notation from standard input and
prints a solution line per phase-1 attempt. EOF exits.

Phase-1 solutions are explored in non-decreasing length; a later attempt
can still yield a shorter total. --attempts 1 keeps only the first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		attempts, _ := cmd.Flags().GetInt("attempts")
		if attempts < 1 {
			return fmt.Errorf("attempts must be at least 1")
		}

		fmt.Println("Initializing tables...")
		tables := cube3.NewTables()
		fmt.Println("Done")

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("Scramble: ")
			if !scanner.Scan() {
				break
			}

			seq, err := cube3.ParseNotation(scanner.Text())
			if err != nil {
				fmt.Println("Invalid cube notation")
				continue
			}

			for _, sol := range tables.Solutions(seq.Perm(), attempts) {
				l1, l2 := len(sol.Phase1), len(sol.Phase2)
				fmt.Printf("Solution (%d + %d = %d): %s\n", l1, l2, l1+l2, sol.Notation())
			}
			fmt.Println()
		}
		return scanner.Err()
	},
}

func init() {
	cube3Cmd.Flags().IntP("attempts", "n", 5, "Number of phase-1 solutions to complete")
}
