/*
Package gradient renders engine output for the terminal.

It keeps two pieces: linear color interpolation (Range for one axis, Box
for two) built on go-colorful, and lipgloss styles that map graded marks
and frequency data onto colored text. The trainer package never depends on
any of this; rendering consumes the engine's plain values.
*/
package gradient

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/wordleology/wordleologist/pkg/trainer"
)

// The four output colors shared by marks and gradients.
var (
	Green  = colorful.Color{R: 0, G: 192.0 / 255.0, B: 50.0 / 255.0}
	Yellow = colorful.Color{R: 228.0 / 255.0, G: 208.0 / 255.0, B: 0}
	Gray   = colorful.Color{R: 98.0 / 255.0, G: 98.0 / 255.0, B: 98.0 / 255.0}
	White  = colorful.Color{R: 208.0 / 255.0, G: 208.0 / 255.0, B: 208.0 / 255.0}

	// silver is the washed-out end of the remaining-words countdown.
	silver = colorful.Color{R: 193.0 / 255.0, G: 193.0 / 255.0, B: 193.0 / 255.0}
)

// Range maps a numeric interval onto a linear color gradient.
type Range struct {
	Min, Max   float64
	Start, End colorful.Color
}

// NewRange builds a gradient over [min, max].
func NewRange(min, max float64, start, end colorful.Color) Range {
	return Range{Min: min, Max: max, Start: start, End: end}
}

// At interpolates the color for a number within the range bounds.
func (r Range) At(n float64) (colorful.Color, error) {
	if n < r.Min || n > r.Max {
		return colorful.Color{}, fmt.Errorf("%v exceeds range bounds (%v, %v)", n, r.Min, r.Max)
	}
	return r.AtPosition((n - r.Min) / (r.Max - r.Min))
}

// AtPosition interpolates the color for a position between 0 and 1.
func (r Range) AtPosition(pos float64) (colorful.Color, error) {
	if pos < 0 || pos > 1 {
		return colorful.Color{}, fmt.Errorf("position must be between 0 and 1, not %v", pos)
	}
	return r.Start.BlendRgb(r.End, pos), nil
}

// Box is a two dimensional gradient controlled by its four corner colors.
// The x axis runs along the upper and lower edges; the y axis blends
// between them.
type Box struct {
	upper, lower Range
}

// NewBox builds a box from its upper-edge and lower-edge corner colors.
func NewBox(upperStart, upperEnd, lowerStart, lowerEnd colorful.Color) Box {
	return Box{
		upper: NewRange(0, 1, upperStart, upperEnd),
		lower: NewRange(0, 1, lowerStart, lowerEnd),
	}
}

// At interpolates a color for positions x, y in [0, 1].
func (b Box) At(x, y float64) (colorful.Color, error) {
	upper, err := b.upper.AtPosition(x)
	if err != nil {
		return colorful.Color{}, err
	}
	lower, err := b.lower.AtPosition(x)
	if err != nil {
		return colorful.Color{}, err
	}
	vertical := NewRange(0, 1, lower, upper)
	return vertical.AtPosition(y)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func style(c colorful.Color) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Hex()))
}

// MarkColor maps a graded mark to its output color.
func MarkColor(m trainer.Mark) colorful.Color {
	switch m {
	case trainer.MarkCorrect:
		return Green
	case trainer.MarkPresent:
		return Yellow
	case trainer.MarkAbsent:
		return Gray
	}
	return White
}

// MarkStyle maps a graded mark to a bold lipgloss style.
func MarkStyle(m trainer.Mark) lipgloss.Style {
	return style(MarkColor(m))
}

// RenderMarks colors each letter of a graded guess by its mark.
func RenderMarks(guess string, marks [trainer.WordLength]trainer.Mark) string {
	var b strings.Builder
	for i := 0; i < len(guess) && i < trainer.WordLength; i++ {
		b.WriteString(MarkStyle(marks[i]).Render(string(guess[i])))
	}
	return b.String()
}

// RenderAlphabet prints A through Z, each colored by the best known status
// of that letter in the current game.
func RenderAlphabet(status [26]trainer.Mark) string {
	var b strings.Builder
	for c := byte('A'); c <= 'Z'; c++ {
		b.WriteString(MarkStyle(status[c-'A']).Render(string(c)))
		if c != 'Z' {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// RenderPrediction colors each letter of a prospective guess along two
// axes over the candidate set: how often the letter occurs at all (gray
// toward colorful) and how concentrated it is at this exact position
// (yellow toward green).
func RenderPrediction(guess string, numWords int, freq trainer.Frequencies, idxFreq trainer.IndexFrequencies) string {
	box := NewBox(Yellow, Green, Gray, Gray)
	var b strings.Builder
	for i := 0; i < len(guess) && i < trainer.WordLength; i++ {
		c := guess[i]
		if c < 'A' || c > 'Z' {
			b.WriteString(style(White).Render(string(c)))
			continue
		}
		presence := 0.0
		positional := 0.0
		if numWords > 0 {
			presence = float64(freq.Of(c)) / float64(numWords)
		}
		if freq.Of(c) > 0 {
			positional = float64(idxFreq.Of(i, c)) / float64(freq.Of(c))
		}
		color, err := box.At(clamp01(positional), clamp01(presence))
		if err != nil {
			color = White
		}
		b.WriteString(style(color).Render(string(c)))
	}
	return b.String()
}

// RenderRemaining colors a candidate count from green (nearly solved) to
// washed out (still wide open). The scale saturates at 50 words.
func RenderRemaining(n int) string {
	r := NewRange(0, 1, Green, silver)
	color, err := r.AtPosition(clamp01(float64(n) / 50.0))
	if err != nil {
		color = silver
	}
	return style(color).Render(fmt.Sprintf("%d", n))
}
