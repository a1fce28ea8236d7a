package knobs

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Font is the interface for text measurement and drawing.
type Font interface {
	MeasureString(text string) (width, height float64)
	LineHeight() float64
	Face() text.Face
}

// faceFont adapts any text/v2 face to Font.
type faceFont struct {
	face text.Face
	lh   float64 // cached line height
}

func newFaceFont(face text.Face) *faceFont {
	m := face.Metrics()
	return &faceFont{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}
}

// MeasureString returns the width and height of the rendered text.
func (f *faceFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *faceFont) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying text/v2 face.
func (f *faceFont) Face() text.Face {
	return f.face
}

// DefaultFont returns a 7x13 bitmap face that needs no font files.
func DefaultFont() Font {
	return newFaceFont(text.NewGoXFace(basicfont.Face7x13))
}

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	faceFont
	source *text.GoTextFaceSource
	size   float64
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("knobs: failed to parse TTF data: %w", err)
	}
	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}
	return &TTFFont{
		faceFont: *newFaceFont(face),
		source:   source,
		size:     size,
	}, nil
}

// Size returns the font size in pixels.
func (f *TTFFont) Size() float64 {
	return f.size
}

// displayLabel strips the "##" suffix that only contributes to an ID.
func displayLabel(label string) string {
	if i := strings.Index(label, "##"); i >= 0 {
		return label[:i]
	}
	return label
}

// FormatValue renders v with a printf format. Integer verbs receive v
// rounded to the nearest whole number so "%d" works for float knobs, and
// "%i" is accepted as "%d".
func FormatValue(format string, v float64) string {
	if format == "" {
		format = defaultFloatFormat
	}
	format = normalizeFormat(format)
	if FormatPrecision(format) == 0 && hasIntVerb(format) {
		return fmt.Sprintf(format, int64(math.Round(v)))
	}
	return fmt.Sprintf(format, v)
}

// hasIntVerb reports whether the first verb in format is an integer verb.
// The C-style "%i" is rewritten by normalizeFormat before use.
func hasIntVerb(format string) bool {
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		i++
		for i < len(format) && strings.IndexByte("+-# 0123456789.", format[i]) >= 0 {
			i++
		}
		if i >= len(format) {
			return false
		}
		switch format[i] {
		case '%':
			continue
		case 'd', 'x', 'X', 'o', 'b', 'c':
			return true
		}
		return false
	}
	return false
}

// normalizeFormat maps C-only verbs onto their Go equivalents.
func normalizeFormat(format string) string {
	return strings.ReplaceAll(format, "%i", "%d")
}
