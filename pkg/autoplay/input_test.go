package autoplay

import (
	"errors"
	"testing"
	"time"

	"github.com/vcaesar/tt"
)

type recordedEvent struct {
	kind string
	x    int
	y    int
	at   time.Time
}

type recordSink struct {
	events   []recordedEvent
	failDown bool
}

func (s *recordSink) record(kind string, x, y int) {
	s.events = append(s.events, recordedEvent{kind: kind, x: x, y: y, at: time.Now()})
}

func (s *recordSink) ButtonDown(button string, x, y int) error {
	if s.failDown {
		return errors.New("sink rejected event")
	}
	s.record(button+"-down", x, y)
	return nil
}

func (s *recordSink) ButtonUp(button string, x, y int) error {
	s.record(button+"-up", x, y)
	return nil
}

func (s *recordSink) KeyDown(key string) error {
	s.record(key+"-down", 0, 0)
	return nil
}

func (s *recordSink) KeyUp(key string) error {
	s.record(key+"-up", 0, 0)
	return nil
}

func TestDispatchLeftClickOrderingAndDelays(t *testing.T) {
	sink := &recordSink{}
	seq := NewSequencer(sink)

	const preDelay = 40 * time.Millisecond
	const hold = 25 * time.Millisecond

	start := time.Now()
	err := seq.Dispatch(ButtonAction{Kind: LeftClick, X: 100, Y: 200, PreDelay: preDelay, Hold: hold})
	if err != nil {
		t.Fatal(err)
	}

	if len(sink.events) != 2 {
		t.Fatalf("expected down then up, got %v", sink.events)
	}
	down, up := sink.events[0], sink.events[1]
	tt.Equal(t, "left-down", down.kind)
	tt.Equal(t, "left-up", up.kind)
	tt.Equal(t, 100, down.x)
	tt.Equal(t, 200, down.y)
	tt.Equal(t, 100, up.x)
	tt.Equal(t, 200, up.y)

	if got := down.at.Sub(start); got < preDelay {
		t.Errorf("down event after %v, want at least %v", got, preDelay)
	}
	if got := up.at.Sub(down.at); got < hold {
		t.Errorf("up event %v after down, want at least %v", got, hold)
	}
}

func TestDispatchEscapePairsKeyEvents(t *testing.T) {
	sink := &recordSink{}
	seq := NewSequencer(sink)

	err := seq.Dispatch(ButtonAction{Kind: EscapeKey, Hold: time.Millisecond})
	if err != nil {
		t.Fatal(err)
	}
	if len(sink.events) != 2 {
		t.Fatalf("expected down then up, got %v", sink.events)
	}
	tt.Equal(t, "esc-down", sink.events[0].kind)
	tt.Equal(t, "esc-up", sink.events[1].kind)
}

func TestDispatchRightClick(t *testing.T) {
	sink := &recordSink{}
	seq := NewSequencer(sink)

	if err := seq.Dispatch(ButtonAction{Kind: RightClick, X: 5, Y: 6}); err != nil {
		t.Fatal(err)
	}
	tt.Equal(t, "right-down", sink.events[0].kind)
	tt.Equal(t, "right-up", sink.events[1].kind)
}

func TestDispatchFailedDownLeavesNoDanglingUp(t *testing.T) {
	sink := &recordSink{failDown: true}
	seq := NewSequencer(sink)

	err := seq.Dispatch(ButtonAction{Kind: LeftClick, X: 1, Y: 2})
	if err == nil {
		t.Fatal("expected sink error to surface")
	}
	// No down was observed, so no up may be issued either.
	tt.Equal(t, 0, len(sink.events))
}
