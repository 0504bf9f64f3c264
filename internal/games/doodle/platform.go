package doodle

import "github.com/vovakirdan/tui-doodle/internal/core"

// Platform is a fixed-size ledge the doodle can bounce off.
type Platform struct {
	x, y    float64
	width   float64
	height  float64
	visual  *core.Visual
	surface Surface
}

// Position returns the top-left corner.
func (p *Platform) Position() (x, y float64) {
	return p.x, p.y
}

// X returns the left edge.
func (p *Platform) X() float64 { return p.x }

// Y returns the top edge.
func (p *Platform) Y() float64 { return p.y }

// SetPosition moves the platform and its visual.
func (p *Platform) SetPosition(x, y float64) {
	p.x, p.y = x, y
	if p.visual != nil {
		p.visual.MoveTo(x, y)
	}
}

// Bounds returns the platform's bounding box.
func (p *Platform) Bounds() core.Bounds {
	return core.NewBounds(p.x, p.y, p.width, p.height)
}

// Destroy releases the platform's visual. The platform must already be,
// or be about to be, dropped from the game's platform set.
func (p *Platform) Destroy() {
	if p.visual == nil {
		return
	}
	if p.surface != nil {
		p.surface.RemoveVisual(p.visual)
	}
	p.visual = nil
}
