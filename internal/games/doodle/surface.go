package doodle

import "github.com/vovakirdan/tui-doodle/internal/core"

// Surface is the host side of a session: it draws the rectangles the game
// creates, shows the status label and routes movement keys.
// core.Canvas is the implementation every host uses.
type Surface interface {
	CreateVisual(kind core.VisualKind, b core.Bounds, c core.Color) *core.Visual
	RemoveVisual(v *core.Visual)
	SetStatusText(text string)
	DetachInput()
}
