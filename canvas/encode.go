package canvas

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"

	"crew-poster/models"
)

const jpegQuality = 92

// Encode serializes the canvas as PNG (default) or JPEG
func (c *Canvas) Encode(format string) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case models.FormatJPEG:
		err = imaging.Encode(&buf, c.img, imaging.JPEG, imaging.JPEGQuality(jpegQuality))
	case models.FormatPNG, "":
		err = imaging.Encode(&buf, c.img, imaging.PNG)
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}
