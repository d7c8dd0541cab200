package world

// Room represents the rectangular floor area of a room. Its walls lie one
// cell outside the rectangle.
type Room struct {
	X, Y          int // Top-left floor cell
	Width, Height int // Dimensions of the floor area
}

// Center returns the center coordinates of the room.
func (r Room) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains returns true if the given point is on the room's floor.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Corners returns the four wall corners around the room, clockwise from the
// top-left.
func (r Room) Corners() [4][2]int {
	return [4][2]int{
		{r.X - 1, r.Y - 1},
		{r.X + r.Width, r.Y - 1},
		{r.X + r.Width, r.Y + r.Height},
		{r.X - 1, r.Y + r.Height},
	}
}
