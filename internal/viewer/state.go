// Package viewer provides the interactive terminal preview of a resolved map.
package viewer

// State represents what the viewer is currently showing.
type State int

const (
	// StateTiles shows the resolved tile records using tileset glyphs.
	StateTiles State = iota
	// StateSource shows the layout characters as written.
	StateSource
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateTiles:
		return "tiles"
	case StateSource:
		return "source"
	default:
		return "unknown"
	}
}

// Next cycles to the other view.
func (s State) Next() State {
	if s == StateTiles {
		return StateSource
	}
	return StateTiles
}
