package autoplay

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// Detector finds the bright rectangular selection marker irisu syndrome
// draws around the focused menu item. The game renders the marker as a
// near-white border, so a plain binary threshold on intensity isolates it
// against the darker game art.
type Detector struct {
	// Threshold is the binarization cutoff on the 0-255 intensity scale.
	// Tuned to the game's rendering, not derived.
	Threshold float64
	// Epsilon scales the polygon approximation tolerance against each
	// contour's own arc length, so jagged borders collapse to a few
	// vertices regardless of marker size.
	Epsilon float64
	// MinWidth and MinHeight drop speckles and thin lines.
	MinWidth  int
	MinHeight int
	// MinAspect and MaxAspect bound w/h (exclusive) to drop slivers along
	// the window edges while tolerating the marker's own variation across
	// menu layouts.
	MinAspect float64
	MaxAspect float64
}

// DefaultDetector returns a detector tuned to irisu syndrome's menus.
func DefaultDetector() *Detector {
	return &Detector{
		Threshold: 200,
		Epsilon:   0.02,
		MinWidth:  50,
		MinHeight: 50,
		MinAspect: 0.1,
		MaxAspect: 10.0,
	}
}

// DetectMat runs the detection pipeline over one captured frame, with
// channels in RGB order as gocv.ImageToMatRGB produces them, and returns
// the surviving candidate markers. The frame is never written to. A frame
// with no bright regions yields an empty result, not an error. Marker
// order follows contour discovery order and carries no meaning.
func (d *Detector) DetectMat(frame gocv.Mat) []Marker {
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(frame, &gray, gocv.ColorRGBToGray)

	bin := gocv.NewMat()
	defer bin.Close()
	gocv.Threshold(gray, &bin, float32(d.Threshold), 255, gocv.ThresholdBinary)

	// RetrievalTree keeps nested contours: the marker border produces both
	// an outer and an inner edge and either may survive the filters.
	contours := gocv.FindContours(bin, gocv.RetrievalTree, gocv.ChainApproxSimple)
	defer contours.Close()

	var markers []Marker
	for i := 0; i < contours.Size(); i++ {
		contour := contours.At(i)
		epsilon := d.Epsilon * gocv.ArcLength(contour, true)
		approx := gocv.ApproxPolyDP(contour, epsilon, true)
		rect := gocv.BoundingRect(approx)
		approx.Close()

		m := Marker{X: rect.Min.X, Y: rect.Min.Y, W: rect.Dx(), H: rect.Dy()}
		if d.keep(m) {
			markers = append(markers, m)
		}
	}
	return markers
}

// Detect is DetectMat for a plain image.Image, converting through gocv.
func (d *Detector) Detect(img image.Image) ([]Marker, error) {
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, err
	}
	defer mat.Close()
	return d.DetectMat(mat), nil
}

func (d *Detector) keep(m Marker) bool {
	if m.H == 0 {
		return false
	}
	aspect := m.AspectRatio()
	return aspect > d.MinAspect && aspect < d.MaxAspect &&
		m.W > d.MinWidth && m.H > d.MinHeight
}

// DrawMarkers outlines the detected markers on a frame for the preview
// windows. Presentation only; detection itself never touches the frame.
func DrawMarkers(frame *gocv.Mat, markers []Marker) {
	green := color.RGBA{0, 255, 0, 0}
	for _, m := range markers {
		gocv.Rectangle(frame, m.Rect(), green, 2)
	}
}
