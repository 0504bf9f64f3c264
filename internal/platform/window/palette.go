package window

import (
	"image/color"

	"github.com/vovakirdan/tui-doodle/internal/core"
)

// palette maps terminal colors to window colors, roughly matching the
// xterm defaults the terminal host renders with.
var palette = map[core.Color]color.RGBA{
	core.ColorBlack:         {0x00, 0x00, 0x00, 0xff},
	core.ColorRed:           {0xcd, 0x00, 0x00, 0xff},
	core.ColorGreen:         {0x00, 0xcd, 0x00, 0xff},
	core.ColorYellow:        {0xcd, 0xcd, 0x00, 0xff},
	core.ColorBlue:          {0x00, 0x00, 0xee, 0xff},
	core.ColorMagenta:       {0xcd, 0x00, 0xcd, 0xff},
	core.ColorCyan:          {0x00, 0xcd, 0xcd, 0xff},
	core.ColorWhite:         {0xe5, 0xe5, 0xe5, 0xff},
	core.ColorBrightRed:     {0xff, 0x00, 0x00, 0xff},
	core.ColorBrightGreen:   {0x00, 0xff, 0x00, 0xff},
	core.ColorBrightYellow:  {0xff, 0xff, 0x00, 0xff},
	core.ColorBrightBlue:    {0x5c, 0x5c, 0xff, 0xff},
	core.ColorBrightMagenta: {0xff, 0x00, 0xff, 0xff},
	core.ColorBrightCyan:    {0x00, 0xff, 0xff, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xff, 0x87, 0x00, 0xff},
	core.ColorGray:          {0x8a, 0x8a, 0x8a, 0xff},
}

var (
	backgroundColor = color.RGBA{0x1c, 0x1c, 0x1c, 0xff}
	statusBarColor  = color.RGBA{0x30, 0x30, 0x30, 0xff}
)

// rgba returns the window color for c. The default color draws as white so
// it stays visible on the dark background.
func rgba(c core.Color) color.RGBA {
	if rgb, ok := palette[c]; ok {
		return rgb
	}
	return palette[core.ColorBrightWhite]
}
