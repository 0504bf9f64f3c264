package core

// VisualKind tells a host how to draw a visual.
type VisualKind int

const (
	VisualCharacter VisualKind = iota
	VisualPlatform
)

// String returns the lowercase name of the kind.
func (k VisualKind) String() string {
	switch k {
	case VisualCharacter:
		return "character"
	case VisualPlatform:
		return "platform"
	default:
		return "unknown"
	}
}

// Visual is a host-owned rectangle paired with a game entity.
// The entity owns the logical position and pushes it here with MoveTo.
type Visual struct {
	id     int
	Kind   VisualKind
	Bounds Bounds
	Color  Color
}

// ID returns the handle assigned by the canvas.
func (v *Visual) ID() int {
	return v.id
}

// MoveTo updates the drawn position.
func (v *Visual) MoveTo(x, y float64) {
	v.Bounds.X = x
	v.Bounds.Y = y
}

// Canvas is a retained set of visual rectangles plus the status label
// and input state a host displays alongside them. It is not safe for
// concurrent use; hosts drive it from their single event loop.
type Canvas struct {
	visuals       []*Visual
	nextID        int
	status        string
	inputDetached bool
	created       int
	removed       int
}

// NewCanvas creates an empty canvas showing the given status text.
func NewCanvas(status string) *Canvas {
	return &Canvas{status: status}
}

// CreateVisual adds a rectangle and returns its handle.
func (c *Canvas) CreateVisual(kind VisualKind, b Bounds, color Color) *Visual {
	c.nextID++
	c.created++
	v := &Visual{id: c.nextID, Kind: kind, Bounds: b, Color: color}
	c.visuals = append(c.visuals, v)
	return v
}

// RemoveVisual releases a rectangle. Unknown handles are ignored.
func (c *Canvas) RemoveVisual(v *Visual) {
	for i, cur := range c.visuals {
		if cur == v {
			copy(c.visuals[i:], c.visuals[i+1:])
			c.visuals[len(c.visuals)-1] = nil
			c.visuals = c.visuals[:len(c.visuals)-1]
			c.removed++
			return
		}
	}
}

// SetStatusText replaces the status label.
func (c *Canvas) SetStatusText(text string) {
	c.status = text
}

// DetachInput stops the host from routing movement keys to the game.
func (c *Canvas) DetachInput() {
	c.inputDetached = true
}

// Status returns the current status label.
func (c *Canvas) Status() string {
	return c.status
}

// InputDetached reports whether movement input has been detached.
func (c *Canvas) InputDetached() bool {
	return c.inputDetached
}

// Visuals returns the live visuals in creation order.
func (c *Canvas) Visuals() []*Visual {
	return c.visuals
}

// VisualsOf returns the live visuals of one kind in creation order.
func (c *Canvas) VisualsOf(kind VisualKind) []*Visual {
	var out []*Visual
	for _, v := range c.visuals {
		if v.Kind == kind {
			out = append(out, v)
		}
	}
	return out
}

// Stats returns how many visuals were created and removed so far.
func (c *Canvas) Stats() (created, removed int) {
	return c.created, c.removed
}
