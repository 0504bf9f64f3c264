package doodle

import "github.com/vovakirdan/tui-doodle/internal/core"

// InputController moves the doodle sideways on discrete key presses.
// Each press applies immediately and exactly once; the next tick clamps
// the doodle back inside the viewport.
type InputController struct {
	character *Character
	step      float64
	attached  bool
}

func newInputController(c *Character, step float64) *InputController {
	return &InputController{character: c, step: step, attached: true}
}

// Handle applies a movement action. It reports whether the action was
// consumed; other actions, and everything after Detach, are ignored.
func (ic *InputController) Handle(a core.Action) bool {
	if !ic.attached {
		return false
	}

	switch a {
	case core.ActionLeft:
		ic.character.SetX(ic.character.X() - ic.step)
	case core.ActionRight:
		ic.character.SetX(ic.character.X() + ic.step)
	default:
		return false
	}
	return true
}

// Detach permanently stops the controller.
func (ic *InputController) Detach() {
	ic.attached = false
}

// Attached reports whether input still reaches the doodle.
func (ic *InputController) Attached() bool {
	return ic.attached
}
