package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
)

// Glyphs used to draw each visual kind.
const (
	doodleRune   = '█'
	platformRune = '▀'
	wallRune     = '│'
)

// cellAspect is how many columns a terminal needs to match one row visually.
const cellAspect = 2.0

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorBlack:         lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var (
	statusStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	gameOverStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// fieldLayout places the world viewport onto a block of terminal cells.
// The field keeps the viewport's aspect ratio and is centered horizontally.
type fieldLayout struct {
	offsetX int
	width   int
	height  int
	scaleX  float64 // Cells per world unit
	scaleY  float64
}

// layoutField fits the viewport into a screen of the given size.
func layoutField(screenW, screenH int, vp config.Viewport) fieldLayout {
	height := max(screenH, 1)
	width := int(math.Round(float64(height) * vp.Width / vp.Height * cellAspect))
	// Leave room for the two walls
	width = core.Clamp(width, 1, max(screenW-2, 1))

	return fieldLayout{
		offsetX: max((screenW-width)/2, 0),
		width:   width,
		height:  height,
		scaleX:  float64(width) / vp.Width,
		scaleY:  float64(height) / vp.Height,
	}
}

// toCells converts world bounds to a screen rectangle. Every visible rectangle
// covers at least one cell; anything outside the field is clipped away.
func (l fieldLayout) toCells(b core.Bounds) (core.Rect, bool) {
	x0 := int(math.Floor(b.X * l.scaleX))
	y0 := int(math.Floor(b.Y * l.scaleY))
	x1 := max(int(math.Ceil(b.Right()*l.scaleX)), x0+1)
	y1 := max(int(math.Ceil(b.Bottom()*l.scaleY)), y0+1)

	x0, x1 = core.Clamp(x0, 0, l.width), core.Clamp(x1, 0, l.width)
	y0, y1 = core.Clamp(y0, 0, l.height), core.Clamp(y1, 0, l.height)
	if x0 >= x1 || y0 >= y1 {
		return core.Rect{}, false
	}
	return core.NewRect(l.offsetX+x0, y0, x1-x0, y1-y0), true
}

// drawCanvas paints the canvas visuals onto the screen.
// Platforms go first so the doodle is never hidden behind one.
func drawCanvas(s *core.Screen, c *core.Canvas, vp config.Viewport) fieldLayout {
	l := layoutField(s.Width(), s.Height(), vp)

	for y := 0; y < l.height; y++ {
		s.SetColored(l.offsetX-1, y, wallRune, core.ColorGray)
		s.SetColored(l.offsetX+l.width, y, wallRune, core.ColorGray)
	}

	for _, v := range c.VisualsOf(core.VisualPlatform) {
		if r, ok := l.toCells(v.Bounds); ok {
			s.DrawRect(r, platformRune, v.Color)
		}
	}
	for _, v := range c.VisualsOf(core.VisualCharacter) {
		if r, ok := l.toCells(v.Bounds); ok {
			s.DrawRect(r, doodleRune, v.Color)
		}
	}
	return l
}

// drawBanner draws a boxed message in the middle of the field.
func drawBanner(s *core.Screen, l fieldLayout, lines ...string) {
	w := 0
	for _, line := range lines {
		w = max(w, len([]rune(line)))
	}
	box := core.NewRect(0, 0, w+4, len(lines)+2)
	box.X = l.offsetX + (l.width-box.W)/2
	box.Y = (l.height - box.H) / 2

	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box)
	for i, line := range lines {
		s.DrawText(box.X+2, box.Y+1+i, line)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
