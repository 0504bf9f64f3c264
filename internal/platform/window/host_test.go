package window

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
)

func newTestHost(t *testing.T) *Host {
	t.Helper()
	return NewHost(config.DefaultDoodleConfig(), core.RuntimeConfig{Seed: 1}, nil)
}

func TestRepeatFires(t *testing.T) {
	tests := []struct {
		duration int
		want     bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{repeatDelay - 1, false},
		{repeatDelay, true},
		{repeatDelay + 1, false},
		{repeatDelay + repeatInterval, true},
	}

	for _, tc := range tests {
		if got := repeatFires(tc.duration); got != tc.want {
			t.Errorf("repeatFires(%d) = %v, expected %v", tc.duration, got, tc.want)
		}
	}
}

func TestRGBA(t *testing.T) {
	if got := rgba(core.ColorBrightYellow); got != (color.RGBA{0xff, 0xff, 0x00, 0xff}) {
		t.Errorf("bright yellow = %v", got)
	}
	if got := rgba(core.ColorDefault); got != palette[core.ColorBrightWhite] {
		t.Errorf("default color should draw white, got %v", got)
	}
}

func TestToPixels(t *testing.T) {
	got := toPixels(core.NewBounds(10.5, 20.25, 20, 40))
	want := image.Rect(10, 20, 31, 61)
	if got != want {
		t.Errorf("toPixels = %v, expected %v", got, want)
	}
}

func TestHostApply(t *testing.T) {
	h := newTestHost(t)

	h.apply(core.ActionLeft)
	h.apply(core.ActionLeft)
	h.apply(core.ActionRight)
	if x := h.Game().Character().X(); x != 190 {
		t.Errorf("x = %v, expected 190", x)
	}

	h.canvas.DetachInput()
	h.apply(core.ActionLeft)
	if x := h.Game().Character().X(); x != 190 {
		t.Errorf("detached input moved the doodle to %v", x)
	}
}

func TestHostStep(t *testing.T) {
	h := newTestHost(t)

	if err := h.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if h.Game().State().Ticks != 1 {
		t.Errorf("ticks = %d, expected 1", h.Game().State().Ticks)
	}

	h.apply(core.ActionQuit)
	if err := h.step(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("step after quit = %v, expected ebiten.Termination", err)
	}
	if h.Game().State().Ticks != 1 {
		t.Error("no tick should run after quit")
	}
}

func TestHostReportsGameOverOnce(t *testing.T) {
	h := newTestHost(t)
	h.Game().Character().SetY(800)

	for range 3 {
		if err := h.step(); err != nil {
			t.Fatalf("step: %v", err)
		}
	}

	if h.Game().Running() || !h.reported {
		t.Error("session should be over and reported")
	}
	if !h.canvas.InputDetached() {
		t.Error("input should be detached after game over")
	}
}

func TestHostLayout(t *testing.T) {
	h := newTestHost(t)
	w, hgt := h.Layout(1920, 1080)
	if w != 400 || hgt != 700+statusHeight {
		t.Errorf("Layout = %dx%d", w, hgt)
	}
}
