package cube2

import (
	"strings"

	"github.com/ehrlich-b/twisted/internal/cube"
)

// Terminal rendering of a 2x2x2 state as an unfolded net:
//
//	    U U
//	    U U
//	L L F F R R B B
//	L L F F R R B B
//	    D D
//	    D D

type facelet struct {
	pos    cube.CornerPos
	orient cube.CornerOrient
}

// Facelet rows of the net, top to bottom.
var netRows = [6][]facelet{
	{{cube.ULB, cube.Oriented}, {cube.UBR, cube.Oriented}},
	{{cube.UFL, cube.Oriented}, {cube.URF, cube.Oriented}},
	{
		{cube.ULB, cube.Clockwise}, {cube.UFL, cube.AntiClockwise},
		{cube.UFL, cube.Clockwise}, {cube.URF, cube.AntiClockwise},
		{cube.URF, cube.Clockwise}, {cube.UBR, cube.AntiClockwise},
		{cube.UBR, cube.Clockwise}, {cube.ULB, cube.AntiClockwise},
	},
	{
		{cube.DBL, cube.AntiClockwise}, {cube.DLF, cube.Clockwise},
		{cube.DLF, cube.AntiClockwise}, {cube.DFR, cube.Clockwise},
		{cube.DFR, cube.AntiClockwise}, {cube.DRB, cube.Clockwise},
		{cube.DRB, cube.AntiClockwise}, {cube.DBL, cube.Clockwise},
	},
	{{cube.DLF, cube.Oriented}, {cube.DFR, cube.Oriented}},
	{{cube.DBL, cube.Oriented}, {cube.DRB, cube.Oriented}},
}

var colorCodes = map[cube.FaceColor]string{
	cube.White:  "\033[47m",
	cube.Red:    "\033[41m",
	cube.Green:  "\033[42m",
	cube.Yellow: "\033[43m",
	cube.Orange: "\033[45m", // no ANSI orange; magenta stands in
	cube.Blue:   "\033[44m",
}

const colorReset = "\033[0m"

// Render draws the cube state as an unfolded net. With color enabled each
// sticker is a colored block, otherwise its face letter.
func Render(p cube.CornerPerm, color bool) string {
	var sb strings.Builder
	for i, row := range netRows {
		if len(row) == 2 {
			sb.WriteString("    ")
		}
		for _, f := range row {
			face := p.Face(cube.Corner{Pos: f.pos, Orient: f.orient})
			if color {
				sb.WriteString(colorCodes[face.Color()])
				sb.WriteString("  ")
				sb.WriteString(colorReset)
			} else {
				sb.WriteString(face.String())
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
		if i == 1 || i == 3 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
