package autoplay

import (
	"sync"
	"unicode"

	hook "github.com/robotn/gohook"
)

// HookProbe tracks globally pressed keys through the gohook event stream so
// the pause toggle works even while the game window holds focus. The event
// stream is folded into a key set on a background goroutine; IsPressed is a
// plain polled read from the loop thread.
type HookProbe struct {
	mu      sync.Mutex
	pressed map[rune]bool
}

// StartHookProbe installs the global hook. Call Stop when done; the hook is
// an OS-level resource.
func StartHookProbe() *HookProbe {
	p := &HookProbe{pressed: make(map[rune]bool)}
	events := hook.Start()
	go p.consume(events)
	return p
}

func (p *HookProbe) consume(events chan hook.Event) {
	for ev := range events {
		switch ev.Kind {
		case hook.KeyDown, hook.KeyHold:
			p.set(ev.Keychar, true)
		case hook.KeyUp:
			p.set(ev.Keychar, false)
		}
	}
}

func (p *HookProbe) set(ch rune, down bool) {
	p.mu.Lock()
	p.pressed[unicode.ToLower(ch)] = down
	p.mu.Unlock()
}

// IsPressed reports whether the key named by the first rune of key is held.
func (p *HookProbe) IsPressed(key string) bool {
	if key == "" {
		return false
	}
	ch := unicode.ToLower([]rune(key)[0])
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pressed[ch]
}

func (p *HookProbe) Stop() {
	hook.End()
}
