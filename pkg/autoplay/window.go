package autoplay

import (
	"fmt"
	"strings"

	"github.com/go-vgo/robotgo"
)

// WindowHandle is the live view of the target window the controller needs.
// Geometry is re-read on every call because the window can move or resize
// between ticks.
type WindowHandle interface {
	Name() string
	Bounds() Bounds
	Center() Coords
	IsActive() bool
	Activate() error
}

// Window identifies the game window by the pid that owns it.
type Window struct {
	PID   int32
	Title string
}

// FindWindowByTitle scans running processes for one whose window title
// contains the given string, case-insensitively. Not finding it is the
// caller's one fatal precondition.
func FindWindowByTitle(title string) (*Window, error) {
	procs, err := robotgo.Process()
	if err != nil {
		return nil, fmt.Errorf("listing processes: %v", err)
	}
	want := strings.ToLower(title)
	for _, p := range procs {
		t := robotgo.GetTitle(p.Pid)
		if t == "" {
			continue
		}
		if strings.Contains(strings.ToLower(t), want) {
			return &Window{PID: p.Pid, Title: t}, nil
		}
	}
	return nil, fmt.Errorf("window %q not found", title)
}

func (w *Window) Name() string {
	return w.Title
}

// Bounds reads the window's current screen geometry.
func (w *Window) Bounds() Bounds {
	left, top, width, height := robotgo.GetBounds(w.PID)
	return Bounds{
		Left:   left,
		Top:    top,
		Width:  width,
		Height: height,
	}
}

func (w *Window) Center() Coords {
	return w.Bounds().Center()
}

// IsActive reports whether the window currently holds input focus.
func (w *Window) IsActive() bool {
	return robotgo.GetTitle() == w.Title
}

func (w *Window) Activate() error {
	return robotgo.ActivePID(w.PID)
}
