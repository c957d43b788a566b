package graphics

import (
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	// defaultFontSize is used when no font size is specified.
	defaultFontSize = 13
)

// TextStyle describes how text should be rendered.
type TextStyle struct {
	Color    Color
	FontSize float64
}

// TextLayout contains measured text metrics.
type TextLayout struct {
	Text    string
	Style   TextStyle
	Size    Size
	Ascent  float64
	Descent float64
}

var (
	faceMu      sync.RWMutex
	defaultFace font.Face = basicfont.Face7x13
)

// SetDefaultFace replaces the face used for text measurement.
// Pass nil to restore the built-in 7x13 bitmap face.
func SetDefaultFace(face font.Face) {
	faceMu.Lock()
	defer faceMu.Unlock()
	if face == nil {
		face = basicfont.Face7x13
	}
	defaultFace = face
}

func currentFace() font.Face {
	faceMu.RLock()
	defer faceMu.RUnlock()
	return defaultFace
}

// LayoutText measures text in the given style. Multi-line text is split on
// '\n' and the widest line sets the width.
func LayoutText(text string, style TextStyle) *TextLayout {
	face := currentFace()
	metrics := face.Metrics()
	nativeHeight := toFloat(metrics.Height)
	if nativeHeight <= 0 {
		nativeHeight = defaultFontSize
	}
	size := style.FontSize
	if size <= 0 {
		size = defaultFontSize
		style.FontSize = size
	}
	scale := size / nativeHeight

	lines := strings.Split(text, "\n")
	var width float64
	for _, line := range lines {
		width = max(width, toFloat(font.MeasureString(face, line))*scale)
	}
	return &TextLayout{
		Text:    text,
		Style:   style,
		Size:    Size{Width: width, Height: nativeHeight * scale * float64(len(lines))},
		Ascent:  toFloat(metrics.Ascent) * scale,
		Descent: toFloat(metrics.Descent) * scale,
	}
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
