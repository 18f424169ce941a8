package gradient

import (
	"math"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/wordleology/wordleologist/pkg/trainer"
)

func colorsClose(a, b colorful.Color) bool {
	const eps = 1e-9
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps && math.Abs(a.B-b.B) < eps
}

func TestRangeInterpolation(t *testing.T) {
	r := NewRange(0, 100,
		colorful.Color{R: 0, G: 1, B: 0.5},
		colorful.Color{R: 1, G: 0, B: 0.5},
	)

	testCases := []struct {
		n    float64
		want colorful.Color
	}{
		{0, colorful.Color{R: 0, G: 1, B: 0.5}},
		{100, colorful.Color{R: 1, G: 0, B: 0.5}},
		{50, colorful.Color{R: 0.5, G: 0.5, B: 0.5}},
	}
	for _, tc := range testCases {
		got, err := r.At(tc.n)
		if err != nil {
			t.Fatalf("At(%v): %v", tc.n, err)
		}
		if !colorsClose(got, tc.want) {
			t.Errorf("At(%v) = %v, want %v", tc.n, got, tc.want)
		}
	}
}

func TestRangeBounds(t *testing.T) {
	r := NewRange(0, 100, Green, Gray)

	if _, err := r.At(-1); err == nil {
		t.Error("At below range must fail")
	}
	if _, err := r.At(101); err == nil {
		t.Error("At above range must fail")
	}
	if _, err := r.AtPosition(1.5); err == nil {
		t.Error("AtPosition above 1 must fail")
	}
}

func TestBoxCorners(t *testing.T) {
	box := NewBox(
		colorful.Color{R: 1, G: 1, B: 0}, // upper left
		colorful.Color{R: 0, G: 0, B: 1}, // upper right
		colorful.Color{R: 0, G: 0, B: 0}, // lower left
		colorful.Color{R: 1, G: 1, B: 1}, // lower right
	)

	testCases := []struct {
		x, y float64
		want colorful.Color
	}{
		{0, 0, colorful.Color{R: 0, G: 0, B: 0}},
		{0, 1, colorful.Color{R: 1, G: 1, B: 0}},
		{1, 0, colorful.Color{R: 1, G: 1, B: 1}},
		{1, 1, colorful.Color{R: 0, G: 0, B: 1}},
		{0.5, 0.5, colorful.Color{R: 0.5, G: 0.5, B: 0.5}},
	}
	for _, tc := range testCases {
		got, err := box.At(tc.x, tc.y)
		if err != nil {
			t.Fatalf("At(%v, %v): %v", tc.x, tc.y, err)
		}
		if !colorsClose(got, tc.want) {
			t.Errorf("At(%v, %v) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestMarkColors(t *testing.T) {
	testCases := []struct {
		mark trainer.Mark
		want colorful.Color
	}{
		{trainer.MarkCorrect, Green},
		{trainer.MarkPresent, Yellow},
		{trainer.MarkAbsent, Gray},
		{trainer.MarkUnknown, White},
	}
	for _, tc := range testCases {
		if got := MarkColor(tc.mark); !colorsClose(got, tc.want) {
			t.Errorf("MarkColor(%v) = %v, want %v", tc.mark, got, tc.want)
		}
	}
}

func TestRenderPredictionHandlesZeroFrequencies(t *testing.T) {
	// letters absent from every candidate must not divide by zero
	var freq trainer.Frequencies
	var idx trainer.IndexFrequencies
	if got := RenderPrediction("ZZZZZ", 0, freq, idx); got == "" {
		t.Error("RenderPrediction returned empty output")
	}
}

func TestRenderPredictionHandlesNonLetters(t *testing.T) {
	// bytes outside A..Z must render plainly, not index the count tables
	words := []string{"CRANE", "SLATE"}
	freq := trainer.CountFrequencies(words)
	idx := trainer.CountIndexFrequencies(words)

	got := RenderPrediction("CR-NE", len(words), freq, idx)
	if got == "" {
		t.Fatal("RenderPrediction returned empty output")
	}
	if !strings.Contains(got, "-") {
		t.Errorf("RenderPrediction(%q) = %q, non-letter byte dropped", "CR-NE", got)
	}
}
