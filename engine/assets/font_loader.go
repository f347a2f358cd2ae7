package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// FontMetrics describes a TrueType/OpenType face rasterized at SizePx.
type FontMetrics struct {
	SizePx                   float32
	Ascent, Descent, LineGap float32
	NumGlyphs                int
	// MissingASCII lists printable ASCII runes the face has no glyph for.
	MissingASCII []rune
}

// LoadFontMetrics parses a font file and measures it at sizePx.
func LoadFontMetrics(path string, sizePx float32) (FontMetrics, error) {
	ttfData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return FontMetrics{}, &FileNotFoundError{Path: path, Err: err}
		}
		return FontMetrics{}, fmt.Errorf("read font %q: %w", path, err)
	}

	ft, err := opentype.Parse(ttfData)
	if err != nil {
		return FontMetrics{}, fmt.Errorf("parse font %q: %w", path, err)
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return FontMetrics{}, fmt.Errorf("new face %q: %w", path, err)
	}
	defer face.Close()

	// Metrics in pixels
	m := face.Metrics()
	out := FontMetrics{
		SizePx:    sizePx,
		Ascent:    float32(m.Ascent.Round()),
		Descent:   float32(-m.Descent.Round()),
		NumGlyphs: ft.NumGlyphs(),
	}
	out.LineGap = float32(m.Height.Round()) - out.Ascent + out.Descent

	for r := rune(32); r <= rune(126); r++ {
		if _, _, ok := face.GlyphBounds(r); !ok {
			out.MissingASCII = append(out.MissingASCII, r)
		}
	}
	return out, nil
}
