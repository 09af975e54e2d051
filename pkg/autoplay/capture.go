package autoplay

import (
	"errors"
	"fmt"
	"image"

	"github.com/go-vgo/robotgo"
	"github.com/kbinani/screenshot"
)

// FrameSource produces one fresh frame of the target window per tick.
type FrameSource interface {
	Capture(w WindowHandle) (image.Image, error)
}

// Capturer grabs the window's pixels through robotgo. A capture failure is
// recoverable: the loop logs it and skips the tick.
type Capturer struct{}

func NewCapturer() *Capturer {
	return &Capturer{}
}

// Capture reads the window's current bounds and captures that screen
// region. The region is clamped to the visible desktop first, because a
// window dragged half off-screen would otherwise make the grab fail
// outright.
func (c *Capturer) Capture(w WindowHandle) (image.Image, error) {
	region := w.Bounds().Rect().Intersect(desktopBounds())
	if region.Empty() {
		return nil, fmt.Errorf("window %q is entirely off-screen", w.Name())
	}
	img := robotgo.CaptureImg(region.Min.X, region.Min.Y, region.Dx(), region.Dy())
	if img == nil {
		return nil, errors.New("screen capture failed")
	}
	return img, nil
}

// desktopBounds is the union of all active displays.
func desktopBounds() image.Rectangle {
	var union image.Rectangle
	for i := 0; i < screenshot.NumActiveDisplays(); i++ {
		union = union.Union(screenshot.GetDisplayBounds(i))
	}
	return union
}
