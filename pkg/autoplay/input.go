package autoplay

import (
	"fmt"
	"time"

	"github.com/go-vgo/robotgo"
)

// ButtonKind enumerates the inputs the game is driven with. The set is
// closed; Dispatch matches over every member.
type ButtonKind int

const (
	LeftClick ButtonKind = iota
	RightClick
	EscapeKey
)

func (k ButtonKind) String() string {
	switch k {
	case LeftClick:
		return "left-click"
	case RightClick:
		return "right-click"
	case EscapeKey:
		return "escape"
	}
	return fmt.Sprintf("ButtonKind(%d)", int(k))
}

// ButtonAction is one timed press-and-release. X/Y are screen coordinates
// and are ignored for EscapeKey. Constructed by the caller, consumed once.
type ButtonAction struct {
	Kind     ButtonKind
	X        int
	Y        int
	PreDelay time.Duration
	Hold     time.Duration
}

// Sink receives the raw down/up events. robotgo backs the real one; tests
// substitute a recorder.
type Sink interface {
	ButtonDown(button string, x, y int) error
	ButtonUp(button string, x, y int) error
	KeyDown(key string) error
	KeyUp(key string) error
}

// Sequencer turns a ButtonAction into a timed down/up pair against a Sink.
type Sequencer struct {
	Sink Sink
}

func NewSequencer(sink Sink) *Sequencer {
	return &Sequencer{Sink: sink}
}

// Dispatch blocks for the action's pre-delay, issues the down event, holds,
// then issues the matching up event. Once the down event succeeded the up
// event is deferred, so the pair stays intact on every exit path and no
// button is left stuck.
func (s *Sequencer) Dispatch(a ButtonAction) (err error) {
	time.Sleep(a.PreDelay)

	down, up, err := s.events(a)
	if err != nil {
		return err
	}
	if err = down(); err != nil {
		return err
	}
	defer func() {
		if uerr := up(); err == nil {
			err = uerr
		}
	}()

	time.Sleep(a.Hold)
	return nil
}

func (s *Sequencer) events(a ButtonAction) (down, up func() error, err error) {
	switch a.Kind {
	case LeftClick:
		return func() error { return s.Sink.ButtonDown("left", a.X, a.Y) },
			func() error { return s.Sink.ButtonUp("left", a.X, a.Y) }, nil
	case RightClick:
		return func() error { return s.Sink.ButtonDown("right", a.X, a.Y) },
			func() error { return s.Sink.ButtonUp("right", a.X, a.Y) }, nil
	case EscapeKey:
		return func() error { return s.Sink.KeyDown("esc") },
			func() error { return s.Sink.KeyUp("esc") }, nil
	}
	return nil, nil, fmt.Errorf("unknown button kind %v", a.Kind)
}

// RobotSink dispatches events through robotgo against the real OS input
// subsystem.
type RobotSink struct{}

func NewRobotSink() *RobotSink {
	robotgo.KeySleep = 100
	robotgo.MouseSleep = 100
	return &RobotSink{}
}

func (r *RobotSink) ButtonDown(button string, x, y int) error {
	robotgo.Move(x, y)
	robotgo.Toggle(button, "down")
	return nil
}

func (r *RobotSink) ButtonUp(button string, x, y int) error {
	robotgo.Toggle(button, "up")
	return nil
}

func (r *RobotSink) KeyDown(key string) error {
	robotgo.KeyToggle(key, "down")
	return nil
}

func (r *RobotSink) KeyUp(key string) error {
	robotgo.KeyToggle(key, "up")
	return nil
}
