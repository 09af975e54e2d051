package autoplay

import "image"

type Coords struct {
	X int
	Y int
}

type Bounds struct {
	Top    int
	Left   int
	Width  int
	Height int
}

// Center returns the on-screen center of the bounds.
func (b Bounds) Center() Coords {
	return Coords{
		X: b.Left + b.Width/2,
		Y: b.Top + b.Height/2,
	}
}

func (b Bounds) Rect() image.Rectangle {
	return image.Rect(b.Left, b.Top, b.Left+b.Width, b.Top+b.Height)
}

// Marker is one candidate selection-cursor rectangle found in a captured
// frame. Coordinates are frame-local pixels. Markers are recomputed every
// tick and never persisted.
type Marker struct {
	X int
	Y int
	W int
	H int
}

func (m Marker) AspectRatio() float64 {
	return float64(m.W) / float64(m.H)
}

func (m Marker) Rect() image.Rectangle {
	return image.Rect(m.X, m.Y, m.X+m.W, m.Y+m.H)
}
