package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sierpinski/internal/geom"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Braille is a terminal surface where every character cell holds a 2x4
// grid of dots. Filling with the paper style clears dots; any other style
// raises them and tints the cell.
type Braille struct {
	Width, Height int
	Grid          [][]rune
	Tint          [][]FillStyle

	paper FillStyle
	style FillStyle
	path  path
}

// NewBraille creates a w x h cell canvas. Dots drawn in paper are treated
// as holes.
func NewBraille(w, h int, paper FillStyle) *Braille {
	b := &Braille{paper: paper}
	b.alloc(w, h)
	return b
}

func (b *Braille) alloc(w, h int) {
	b.Width, b.Height = max(w, 0), max(h, 0)
	b.Grid = make([][]rune, b.Height)
	b.Tint = make([][]FillStyle, b.Height)
	for i := range b.Grid {
		b.Grid[i] = make([]rune, b.Width)
		b.Tint[i] = make([]FillStyle, b.Width)
	}
	b.Clear()
}

// Set raises the dot at (x, y) in sub-pixel coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (b *Braille) Set(x, y int) {
	col, row, ok := b.cell(x, y)
	if !ok {
		return
	}
	b.Grid[row][col] |= pixelMap[y%4][x%2]
}

// Unset clears the dot at (x, y).
func (b *Braille) Unset(x, y int) {
	col, row, ok := b.cell(x, y)
	if !ok {
		return
	}
	b.Grid[row][col] &^= pixelMap[y%4][x%2]
	if b.Grid[row][col] < brailleBlank {
		b.Grid[row][col] = brailleBlank
	}
}

// IsSet reports whether the dot at (x, y) is raised.
func (b *Braille) IsSet(x, y int) bool {
	col, row, ok := b.cell(x, y)
	if !ok {
		return false
	}
	return b.Grid[row][col]&pixelMap[y%4][x%2] != 0
}

func (b *Braille) cell(x, y int) (col, row int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col, row = x/2, y/4
	if col >= b.Width || row >= b.Height {
		return 0, 0, false
	}
	return col, row, true
}

// Clear resets every cell to blank.
func (b *Braille) Clear() {
	for i := range b.Grid {
		for j := range b.Grid[i] {
			b.Grid[i][j] = brailleBlank
			b.Tint[i][j] = FillStyle{}
		}
	}
}

func (b *Braille) SetFillStyle(style FillStyle) { b.style = style }
func (b *Braille) BeginPath()                   { b.path.begin() }
func (b *Braille) MoveTo(p geom.Coordinate)     { b.path.moveTo(p) }
func (b *Braille) LineTo(p geom.Coordinate)     { b.path.lineTo(p) }

// Fill rasterises the current path onto the dot grid.
func (b *Braille) Fill() error {
	hole := b.style.Color == b.paper.Color
	w, h := b.Size()
	fillPolygon(b.path.take(), w, h, func(x, y int) {
		if hole {
			b.Unset(x, y)
			return
		}
		b.Set(x, y)
		b.Tint[y/4][x/2] = b.style
	})
	return nil
}

// Size is the dot resolution.
func (b *Braille) Size() (int, int) { return b.Width * 2, b.Height * 4 }

// PixelScale is always 1: one logical unit per dot.
func (b *Braille) PixelScale() float64 { return 1 }

// Resize reallocates the canvas to w x h cells and clears it.
func (b *Braille) Resize(w, h int) error {
	if w < 0 || h < 0 {
		return fmt.Errorf("render: invalid braille size %dx%d", w, h)
	}
	b.alloc(w, h)
	return nil
}

func (b *Braille) String() string {
	var sb strings.Builder
	for _, row := range b.Grid {
		sb.WriteString(string(row) + "\n")
	}
	return sb.String()
}

// Styled renders the canvas with each run of equally tinted cells wrapped
// in a lipgloss foreground color.
func (b *Braille) Styled() string {
	var sb strings.Builder
	for i, row := range b.Grid {
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && b.Tint[i][j] == b.Tint[i][start] {
				continue
			}
			run := string(row[start:j])
			if tint := b.Tint[i][start]; tint.Name != "" {
				run = lipgloss.NewStyle().Foreground(lipgloss.Color(tint.Hex())).Render(run)
			}
			sb.WriteString(run)
			start = j
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
