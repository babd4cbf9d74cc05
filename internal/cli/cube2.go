package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/ehrlich-b/twisted/internal/cube2"
	"github.com/spf13/cobra"
)

var cube2Cmd = &cobra.Command{
	Use:   "cube2",
	Short: "Interactive 2x2x2 solver",
	Long: `Solve 2x2x2 scrambles interactively. Reads one scramble per line in
face-turn notation (e.g. "U R' F2") from standard input and prints a
solution for each. EOF exits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		color, _ := cmd.Flags().GetBool("color")

		fmt.Println("Initializing tables...")
		tables := cube2.SolverTables()
		fmt.Println("Done")

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("Scramble: ")
			if !scanner.Scan() {
				break
			}

			seq, err := cube2.ParseNotation(scanner.Text())
			if err != nil {
				fmt.Println("Invalid cube notation")
				continue
			}

			perm := seq.Perm()
			fmt.Print(cube2.Render(perm, color))

			// Rotate the whole cube so DBL is solved, then search the
			// 7-corner space.
			_, fixed := cube2.FixDBLCorner(perm)
			solution := tables.Solve(fixed)
			fmt.Printf("Solution: %s\n", cube2.NotationOf(solution))
		}
		return scanner.Err()
	},
}

func init() {
	cube2Cmd.Flags().BoolP("color", "c", false, "Render the scrambled cube with ANSI colors")
}
