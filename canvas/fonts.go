package canvas

import (
	"fmt"
	"log"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
	"golang.org/x/image/font/opentype"
)

// Font names one of the embedded typefaces
type Font int

const (
	Regular Font = iota
	Bold
	Italic
	BoldItalic
	Medium
	SmallCaps
	SmallCapsItalic
	Mono
)

var fontData = map[Font][]byte{
	Regular:         goregular.TTF,
	Bold:            gobold.TTF,
	Italic:          goitalic.TTF,
	BoldItalic:      gobolditalic.TTF,
	Medium:          gomedium.TTF,
	SmallCaps:       gosmallcaps.TTF,
	SmallCapsItalic: gosmallcapsitalic.TTF,
	Mono:            gomono.TTF,
}

// Parsed fonts are shared read-only across canvases; faces are per canvas.
var (
	parseOnce   sync.Once
	parsedFonts map[Font]*opentype.Font
	parseErr    error
)

func loadFonts() {
	parsedFonts = make(map[Font]*opentype.Font, len(fontData))
	for id, data := range fontData {
		f, err := opentype.Parse(data)
		if err != nil {
			parseErr = fmt.Errorf("failed to parse font %d: %w", id, err)
			return
		}
		parsedFonts[id] = f
	}
}

type faceKey struct {
	font Font
	size int // quarter pixels
}

// Face returns a face of the given font at size pixels, cached on the canvas.
// If the embedded font cannot be loaded it falls back to basicfont.Face7x13.
func (c *Canvas) Face(id Font, size float64) font.Face {
	if size < 1 {
		size = 1
	}
	key := faceKey{font: id, size: int(math.Round(size * 4))}
	if f, ok := c.faces[key]; ok {
		return f
	}

	parseOnce.Do(loadFonts)
	if parseErr != nil {
		log.Printf("⚠️  Font loading failed, using basic font: %v", parseErr)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(parsedFonts[id], &opentype.FaceOptions{
		Size:    float64(key.size) / 4,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		log.Printf("⚠️  Failed to create face (font=%d size=%.1f): %v", id, size, err)
		return basicfont.Face7x13
	}
	c.faces[key] = face
	return face
}
