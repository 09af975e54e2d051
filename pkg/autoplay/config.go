package autoplay

import (
	"fmt"
	"time"

	"gopkg.in/ini.v1"
)

// Config carries the window title and the geometric/timing constants the
// automation is tuned with. Defaults are tuned against irisu syndrome;
// a Settings.ini can override any of them.
type Config struct {
	WindowTitle string

	// Detector tunables, see Detector.
	Threshold float64
	Epsilon   float64
	MinWidth  int
	MinHeight int
	MinAspect float64
	MaxAspect float64

	// ToggleKey flips pause; QuitKey ends the loop from the live preview.
	ToggleKey      string
	QuitKey        rune
	ToggleDebounce time.Duration
	PausePoll      time.Duration

	// FocusSettle is the wait after activating the window before input is
	// trusted to land on it.
	FocusSettle time.Duration

	// TicksPerSecond throttles the capture loop. Policy, not correctness.
	TicksPerSecond int

	// Startup click against the first title-menu entry.
	StartClickDelay time.Duration
	ClickHold       time.Duration
	StartupSettle   time.Duration
}

func DefaultConfig() Config {
	return Config{
		WindowTitle:     "irisu syndrome",
		Threshold:       200,
		Epsilon:         0.02,
		MinWidth:        50,
		MinHeight:       50,
		MinAspect:       0.1,
		MaxAspect:       10.0,
		ToggleKey:       "p",
		QuitKey:         'q',
		ToggleDebounce:  500 * time.Millisecond,
		PausePoll:       10 * time.Millisecond,
		FocusSettle:     100 * time.Millisecond,
		TicksPerSecond:  10,
		StartClickDelay: 1 * time.Second,
		ClickHold:       100 * time.Millisecond,
		StartupSettle:   3 * time.Second,
	}
}

// Detector builds a Detector from the configured tunables.
func (c Config) Detector() *Detector {
	return &Detector{
		Threshold: c.Threshold,
		Epsilon:   c.Epsilon,
		MinWidth:  c.MinWidth,
		MinHeight: c.MinHeight,
		MinAspect: c.MinAspect,
		MaxAspect: c.MaxAspect,
	}
}

// LoadConfig reads a Settings.ini, with every key optional and falling back
// to the defaults above.
func LoadConfig(path string) (Config, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load config file: %w", err)
	}
	c := DefaultConfig()

	window := cfg.Section("Window")
	c.WindowTitle = window.Key("Title").MustString(c.WindowTitle)

	detector := cfg.Section("Detector")
	c.Threshold = detector.Key("Threshold").MustFloat64(c.Threshold)
	c.Epsilon = detector.Key("Epsilon").MustFloat64(c.Epsilon)
	c.MinWidth = detector.Key("MinWidth").MustInt(c.MinWidth)
	c.MinHeight = detector.Key("MinHeight").MustInt(c.MinHeight)
	c.MinAspect = detector.Key("MinAspect").MustFloat64(c.MinAspect)
	c.MaxAspect = detector.Key("MaxAspect").MustFloat64(c.MaxAspect)

	timing := cfg.Section("Timing")
	c.ToggleDebounce = timing.Key("ToggleDebounce").MustDuration(c.ToggleDebounce)
	c.PausePoll = timing.Key("PausePoll").MustDuration(c.PausePoll)
	c.FocusSettle = timing.Key("FocusSettle").MustDuration(c.FocusSettle)
	c.TicksPerSecond = timing.Key("TicksPerSecond").MustInt(c.TicksPerSecond)
	if c.TicksPerSecond < 1 {
		// The throttle needs a positive rate.
		c.TicksPerSecond = 1
	}
	c.StartClickDelay = timing.Key("StartClickDelay").MustDuration(c.StartClickDelay)
	c.ClickHold = timing.Key("ClickHold").MustDuration(c.ClickHold)
	c.StartupSettle = timing.Key("StartupSettle").MustDuration(c.StartupSettle)

	keys := cfg.Section("Keys")
	c.ToggleKey = keys.Key("Toggle").MustString(c.ToggleKey)
	if quit := keys.Key("Quit").MustString(string(c.QuitKey)); quit != "" {
		c.QuitKey = []rune(quit)[0]
	}

	return c, nil
}
