package models

// DifficultyColor maps a Difficulty to the hex badge color used by clients.
var DifficultyColor = map[Difficulty]string{
	DifficultyEasy:   "#22c55e",
	DifficultyMedium: "#eab308",
	DifficultyHard:   "#ef4444",
}

// Color returns the badge color for d.
// Returns a neutral gray for unrecognised difficulties.
func (d Difficulty) Color() string {
	if c, ok := DifficultyColor[d]; ok {
		return c
	}
	return "#9ca3af"
}
