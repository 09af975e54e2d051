package autoplay

import "gocv.io/x/gocv"

// Viewer renders capture frames for the operator and relays the quit key.
type Viewer interface {
	Show(label string, frame gocv.Mat)
	PollKey() int
	Close(label string)
	CloseAll()
}

// Preview shows frames in OpenCV highgui windows, one per label. Windows
// are created lazily on first Show and torn down per label or all at once.
type Preview struct {
	windows map[string]*gocv.Window
	last    *gocv.Window
}

func NewPreview() *Preview {
	return &Preview{windows: make(map[string]*gocv.Window)}
}

func (p *Preview) Show(label string, frame gocv.Mat) {
	w, ok := p.windows[label]
	if !ok {
		w = gocv.NewWindow(label)
		p.windows[label] = w
	}
	w.IMShow(frame)
	p.last = w
}

// PollKey pumps the highgui event loop for one millisecond and returns the
// pressed key code, or a negative value when none. Must be called between
// Shows or the windows never repaint.
func (p *Preview) PollKey() int {
	if p.last == nil {
		return -1
	}
	return maskKey(p.last.WaitKey(1))
}

// maskKey strips the modifier and lock bits highgui sets above bit 7 on
// some platforms, so a key compares equal to its plain character code.
func maskKey(key int) int {
	if key < 0 {
		return key
	}
	return key & 0xff
}

func (p *Preview) Close(label string) {
	w, ok := p.windows[label]
	if !ok {
		return
	}
	w.Close()
	delete(p.windows, label)
	if p.last == w {
		p.last = nil
	}
}

func (p *Preview) CloseAll() {
	for label := range p.windows {
		p.Close(label)
	}
}
