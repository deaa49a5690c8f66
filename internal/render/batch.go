package render

import (
	"fmt"
	"math"
	"sync"

	"github.com/san-kum/sierpinski/internal/geom"
)

// Batch queues filled polygons, in physical pixels, for a consumer that
// draws them later, such as a GPU frame loop. It is safe to fill from one
// goroutine while another drains.
type Batch struct {
	mu      sync.Mutex
	width   int
	height  int
	scale   float64
	resized bool
	queue   []Polygon

	style FillStyle
	path  path
}

// NewBatch creates a batch for a width x height logical area at scale.
// Non-positive or non-finite scales count as 1.
func NewBatch(width, height int, scale float64) *Batch {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1
	}
	return &Batch{width: width, height: height, scale: scale}
}

func (b *Batch) SetFillStyle(style FillStyle) { b.style = style }
func (b *Batch) BeginPath()                   { b.path.begin() }
func (b *Batch) MoveTo(p geom.Coordinate)     { b.path.moveTo(b.physical(p)) }
func (b *Batch) LineTo(p geom.Coordinate)     { b.path.lineTo(b.physical(p)) }

func (b *Batch) physical(p geom.Coordinate) geom.Coordinate {
	return geom.Coordinate{X: p.X * b.scale, Y: p.Y * b.scale}
}

// Fill queues the current path.
func (b *Batch) Fill() error {
	pts := b.path.take()
	if len(pts) < 3 {
		return nil
	}
	b.mu.Lock()
	b.queue = append(b.queue, Polygon{Points: pts, Style: b.style})
	b.mu.Unlock()
	return nil
}

// Size is the physical size.
func (b *Batch) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.physicalSize()
}

func (b *Batch) physicalSize() (int, int) {
	return int(math.Round(float64(b.width) * b.scale)), int(math.Round(float64(b.height) * b.scale))
}

func (b *Batch) PixelScale() float64 { return b.scale }

// Resize sets a new logical size, drops queued polygons and flags the
// change for the consumer.
func (b *Batch) Resize(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("render: invalid batch size %dx%d", width, height)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.width, b.height = width, height
	b.resized = true
	b.queue = nil
	return nil
}

// Drain hands out the queued polygons. resized reports whether Resize was
// called since the previous Drain; the consumer must then discard what it
// has drawn and reallocate to the returned physical size.
func (b *Batch) Drain() (polys []Polygon, resized bool, width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	polys, b.queue = b.queue, nil
	resized, b.resized = b.resized, false
	width, height = b.physicalSize()
	return polys, resized, width, height
}
