package autoplay

import (
	"image"
	"image/color"
	"image/draw"
	"reflect"
	"testing"

	"github.com/vcaesar/tt"
	"gocv.io/x/gocv"
)

func syntheticFrame(rows, cols int, rects ...image.Rectangle) gocv.Mat {
	frame := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), rows, cols, gocv.MatTypeCV8UC3)
	white := color.RGBA{255, 255, 255, 0}
	for _, r := range rects {
		gocv.Rectangle(&frame, r, white, -1)
	}
	return frame
}

func TestDetectSingleMarker(t *testing.T) {
	want := image.Rect(100, 80, 300, 240)
	frame := syntheticFrame(480, 640, want)
	defer frame.Close()

	markers := DefaultDetector().DetectMat(frame)
	if len(markers) != 1 {
		t.Fatalf("expected exactly one marker, got %d: %v", len(markers), markers)
	}

	m := markers[0]
	const tolerance = 4
	if abs(m.X-want.Min.X) > tolerance || abs(m.Y-want.Min.Y) > tolerance ||
		abs(m.W-want.Dx()) > tolerance || abs(m.H-want.Dy()) > tolerance {
		t.Errorf("marker %+v not within tolerance of %v", m, want)
	}
}

func TestDetectRejectsUndersized(t *testing.T) {
	frame := syntheticFrame(480, 640,
		image.Rect(10, 10, 50, 50),     // 40x40, both sides too small
		image.Rect(100, 100, 400, 120), // 300x20, too short
		image.Rect(100, 200, 120, 460), // 20x260, too narrow
	)
	defer frame.Close()

	markers := DefaultDetector().DetectMat(frame)
	tt.Equal(t, 0, len(markers))
}

func TestDetectRejectsExtremeAspect(t *testing.T) {
	// 760x55: both sides above the minimum, but w/h > 10.
	frame := syntheticFrame(200, 900, image.Rect(50, 60, 810, 115))
	defer frame.Close()

	markers := DefaultDetector().DetectMat(frame)
	tt.Equal(t, 0, len(markers))
}

func TestDetectIsPure(t *testing.T) {
	frame := syntheticFrame(480, 640, image.Rect(60, 60, 260, 300), image.Rect(350, 100, 500, 260))
	defer frame.Close()

	detector := DefaultDetector()
	first := detector.DetectMat(frame)
	second := detector.DetectMat(frame)
	if !reflect.DeepEqual(markerSet(first), markerSet(second)) {
		t.Errorf("detection differed across identical frames: %v vs %v", first, second)
	}
	if len(first) == 0 {
		t.Error("expected markers from the synthetic frame")
	}
}

func TestDetectFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 400, 300))
	draw.Draw(img, image.Rect(50, 40, 250, 200), image.NewUniform(color.RGBA{255, 255, 255, 255}), image.Point{}, draw.Src)

	markers, err := DefaultDetector().Detect(img)
	if err != nil {
		t.Fatal(err)
	}
	tt.Equal(t, 1, len(markers))
}

func TestDetectUsesRGBLumaWeights(t *testing.T) {
	// A pure red region has luma ~76 under RGB weights (0.299*255) but
	// only ~29 if the channels were read as BGR. A threshold between the
	// two passes exactly when the conversion honors the frame's RGB order.
	img := image.NewRGBA(image.Rect(0, 0, 400, 300))
	draw.Draw(img, image.Rect(50, 40, 250, 200), image.NewUniform(color.RGBA{255, 0, 0, 255}), image.Point{}, draw.Src)

	detector := DefaultDetector()
	detector.Threshold = 50

	markers, err := detector.Detect(img)
	if err != nil {
		t.Fatal(err)
	}
	tt.Equal(t, 1, len(markers))
}

func markerSet(markers []Marker) map[Marker]bool {
	set := make(map[Marker]bool, len(markers))
	for _, m := range markers {
		set[m] = true
	}
	return set
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
