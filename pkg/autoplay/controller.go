package autoplay

import (
	"fmt"
	"log"
	"time"

	"github.com/vitali-fedulov/images/v2"
	"go.uber.org/ratelimit"
	"gocv.io/x/gocv"
)

const (
	liveLabel   = "Window Capture"
	pausedLabel = "Paused - Press P to Resume"
)

// TitlePositions returns the clickable title-menu entries relative to the
// window center. The offsets are tied to irisu syndrome's title layout.
func TitlePositions(center Coords) []Coords {
	return []Coords{
		{X: center.X, Y: center.Y + 20},
		{X: center.X + 100, Y: center.Y + 100},
		{X: center.X + 150, Y: center.Y + 150},
		{X: center.X, Y: center.Y - 150},
	}
}

// Controller owns the run/pause state machine and sequences one capture,
// detect, render pass per tick. Everything runs on the calling goroutine;
// all waiting is plain sleeping.
type Controller struct {
	cfg      Config
	win      WindowHandle
	frames   FrameSource
	detector *Detector
	seq      *Sequencer
	toggle   *PauseToggle
	view     Viewer

	state State
}

func NewController(cfg Config, win WindowHandle, frames FrameSource, probe KeyProbe, sink Sink, view Viewer) *Controller {
	if cfg.TicksPerSecond < 1 {
		// The throttle needs a positive rate.
		cfg.TicksPerSecond = 1
	}
	return &Controller{
		cfg:      cfg,
		win:      win,
		frames:   frames,
		detector: cfg.Detector(),
		seq:      NewSequencer(sink),
		toggle:   NewPauseToggle(probe, cfg.ToggleKey, cfg.ToggleDebounce),
		view:     view,
		state:    Running,
	}
}

func (c *Controller) State() State {
	return c.state
}

// Startup clicks the first title-menu entry and waits for the game to move
// off the title screen. Runs once, before the first tick.
func (c *Controller) Startup() error {
	center := c.win.Center()
	first := TitlePositions(center)[0]
	log.Printf("Starting at title menu, first entry at x=%d y=%d", first.X, first.Y)

	before, berr := c.frames.Capture(c.win)

	err := c.seq.Dispatch(ButtonAction{
		Kind:     LeftClick,
		X:        first.X,
		Y:        first.Y,
		PreDelay: c.cfg.StartClickDelay,
		Hold:     c.cfg.ClickHold,
	})
	if err != nil {
		return fmt.Errorf("title click failed: %w", err)
	}
	time.Sleep(c.cfg.StartupSettle)

	// Sanity-check that the click took: the screen should look different
	// once the title menu is gone.
	if after, aerr := c.frames.Capture(c.win); berr == nil && aerr == nil {
		hashA, sizeA := images.Hash(before)
		hashB, sizeB := images.Hash(after)
		if images.Similar(hashA, hashB, sizeA, sizeB) {
			log.Println("WARN: screen unchanged after title click; the menu may not have advanced")
		}
	}

	c.state = Running
	return nil
}

// Run drives the tick loop until the quit key is read from the live
// preview. Preview windows are torn down on every exit path.
func (c *Controller) Run() error {
	throttle := ratelimit.New(c.cfg.TicksPerSecond)
	defer c.view.CloseAll()

	for {
		c.state = c.toggle.Poll(c.state)

		if c.state == Paused {
			if err := c.pauseUntilResumed(); err != nil {
				log.Println("WARN: paused preview unavailable:", err)
			}
			continue
		}

		if !c.win.IsActive() {
			if err := c.win.Activate(); err != nil {
				log.Println("WARN: could not focus window:", err)
			}
			time.Sleep(c.cfg.FocusSettle)
		}

		quit, err := c.tick()
		if err != nil {
			// Recoverable: skip the frame and try again next interval.
			log.Println("WARN: tick skipped:", err)
		}
		if quit {
			return nil
		}
		throttle.Take()
	}
}

// tick captures one frame, runs detection, and renders the annotated live
// view. Reports whether the quit key was read.
func (c *Controller) tick() (bool, error) {
	img, err := c.frames.Capture(c.win)
	if err != nil {
		return false, err
	}
	frame, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return false, err
	}
	defer frame.Close()

	markers := c.detector.DetectMat(frame)
	for _, m := range markers {
		log.Printf("Detected white frame at: x=%d, y=%d, w=%d, h=%d", m.X, m.Y, m.W, m.H)
	}
	// Detection stays observational: markers are drawn and logged, never
	// fed into an action.
	DrawMarkers(&frame, markers)

	c.view.Show(liveLabel, frame)
	return c.view.PollKey() == int(c.cfg.QuitKey), nil
}

// pauseUntilResumed renders a frozen frame and polls the toggle at a tight
// interval until the state flips back, then drops the paused window. The
// wait happens even when the frozen frame cannot be shown, so a capture
// hiccup does not break the pause.
func (c *Controller) pauseUntilResumed() error {
	log.Println("Paused; press", c.cfg.ToggleKey, "to resume")
	defer c.view.Close(pausedLabel)

	showErr := c.showFrozenFrame()
	for c.state == Paused {
		c.state = c.toggle.Poll(c.state)
		time.Sleep(c.cfg.PausePoll)
	}
	log.Println("Resumed")
	return showErr
}

func (c *Controller) showFrozenFrame() error {
	img, err := c.frames.Capture(c.win)
	if err != nil {
		return err
	}
	frame, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return err
	}
	defer frame.Close()
	c.view.Show(pausedLabel, frame)
	c.view.PollKey()
	return nil
}
