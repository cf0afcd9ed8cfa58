//go:build ebiten

package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// LineHeight is the vertical space taken by one banner line.
const LineHeight = 16

// Banner draws status lines underneath the simulation view.
type Banner struct {
	lines []string
	fg    color.Color
}

// NewBanner constructs an empty banner.
func NewBanner() *Banner {
	return &Banner{fg: color.RGBA{R: 220, G: 220, B: 120, A: 255}}
}

// SetLines replaces the displayed text. Tabs become spaces and the dashed
// rulers of console banners are trimmed.
func (b *Banner) SetLines(lines []string) {
	b.lines = b.lines[:0]
	for _, l := range lines {
		l = strings.ReplaceAll(l, "\t", "  ")
		b.lines = append(b.lines, strings.Trim(l, "- "))
	}
}

// Draw renders the banner starting at vertical offset top.
func (b *Banner) Draw(screen *ebiten.Image, top int) {
	face := basicfont.Face7x13
	for i, l := range b.lines {
		text.Draw(screen, l, face, 4, top+(i+1)*LineHeight-3, b.fg)
	}
}
