package doodle

import "github.com/vovakirdan/tui-doodle/internal/core"

// Character is the player-controlled doodle. Its size is fixed for the
// session; position and vertical velocity change every tick.
type Character struct {
	x, y     float64
	width    float64
	height   float64
	velocity float64
	visual   *core.Visual
}

// newCharacter creates a character at rest, mirrored by visual (may be nil).
func newCharacter(x, y, width, height float64, visual *core.Visual) *Character {
	c := &Character{width: width, height: height, visual: visual}
	c.SetPosition(x, y)
	return c
}

// Position returns the top-left corner.
func (c *Character) Position() (x, y float64) {
	return c.x, c.y
}

// X returns the left edge.
func (c *Character) X() float64 { return c.x }

// Y returns the top edge.
func (c *Character) Y() float64 { return c.y }

// SetPosition moves the character and its visual.
func (c *Character) SetPosition(x, y float64) {
	c.x, c.y = x, y
	c.sync()
}

// SetX moves the character horizontally.
func (c *Character) SetX(x float64) {
	c.SetPosition(x, c.y)
}

// SetY moves the character vertically.
func (c *Character) SetY(y float64) {
	c.SetPosition(c.x, y)
}

// Velocity returns the vertical velocity; positive is downward.
func (c *Character) Velocity() float64 {
	return c.velocity
}

// SetVelocity replaces the vertical velocity.
func (c *Character) SetVelocity(v float64) {
	c.velocity = v
}

// Bounds returns the character's bounding box.
func (c *Character) Bounds() core.Bounds {
	return core.NewBounds(c.x, c.y, c.width, c.height)
}

// Intersects reports whether the character overlaps the given box.
// Touching edges count as an overlap.
func (c *Character) Intersects(x, y, w, h float64) bool {
	return c.Bounds().Intersects(core.NewBounds(x, y, w, h))
}

func (c *Character) sync() {
	if c.visual != nil {
		c.visual.MoveTo(c.x, c.y)
	}
}
