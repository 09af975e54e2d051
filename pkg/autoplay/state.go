package autoplay

import "time"

// State is the automation loop's run state. Exactly one holds at a time.
type State int

const (
	Running State = iota
	Paused
)

func (s State) String() string {
	if s == Paused {
		return "paused"
	}
	return "running"
}

func (s State) flipped() State {
	if s == Running {
		return Paused
	}
	return Running
}

// KeyProbe reports whether a key is physically held right now. Polled, not
// event-driven; the loop reads it once per tick.
type KeyProbe interface {
	IsPressed(key string) bool
}

// PauseToggle folds the polled state of the pause key into edge-triggered
// state flips. Only a not-pressed to pressed transition flips, and flips
// inside the debounce window are ignored so one physical press is not read
// as several toggles by a tight polling loop.
type PauseToggle struct {
	probe    KeyProbe
	key      string
	debounce time.Duration

	wasPressed bool
	lastFlip   time.Time
	now        func() time.Time
}

func NewPauseToggle(probe KeyProbe, key string, debounce time.Duration) *PauseToggle {
	return &PauseToggle{
		probe:    probe,
		key:      key,
		debounce: debounce,
		now:      time.Now,
	}
}

// Poll samples the pause key and returns the state the loop should carry
// forward.
func (t *PauseToggle) Poll(s State) State {
	pressed := t.probe.IsPressed(t.key)
	defer func() { t.wasPressed = pressed }()

	if !pressed || t.wasPressed {
		return s
	}
	if !t.lastFlip.IsZero() && t.now().Sub(t.lastFlip) < t.debounce {
		return s
	}
	t.lastFlip = t.now()
	return s.flipped()
}
