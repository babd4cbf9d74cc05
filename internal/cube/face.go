package cube

// Face is one of the six faces of a cube.
type Face uint8

const (
	Up Face = iota
	Right
	Front
	Down
	Left
	Back
)

func (f Face) String() string {
	return [...]string{"U", "R", "F", "D", "L", "B"}[f]
}

// FaceColor is the sticker color of a face in the canonical orientation.
type FaceColor uint8

const (
	White FaceColor = iota
	Red
	Green
	Yellow
	Orange
	Blue
)

func (c FaceColor) String() string {
	return [...]string{"W", "R", "G", "Y", "O", "B"}[c]
}

// Color returns the sticker color of a face.
func (f Face) Color() FaceColor {
	return [...]FaceColor{White, Red, Green, Yellow, Orange, Blue}[f]
}
