package service

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"log"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"crew-poster/models"
)

// maxEmblemSize is the largest edge an emblem is kept at after decoding.
// Template corner regions never exceed it.
const maxEmblemSize = 1024

// EmblemIdentity is the content key of raw emblem bytes
func EmblemIdentity(data []byte) string {
	sum := sha256.Sum256(data)
	return "sha256:" + hex.EncodeToString(sum[:])
}

// DecodeEmblem decodes PNG, JPEG or WebP emblem bytes, honoring EXIF
// orientation, and shrinks oversize images
func DecodeEmblem(data []byte, identity string) (*models.Emblem, error) {
	if len(data) == 0 {
		return nil, models.NewRenderError(models.KindEmblemInvalid, "emblem is empty")
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		rerr := models.NewRenderError(models.KindEmblemInvalid, "failed to decode emblem")
		rerr.Err = err
		return nil, rerr
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, models.NewRenderError(models.KindEmblemInvalid, "emblem has no pixels")
	}

	if bounds.Dx() > maxEmblemSize || bounds.Dy() > maxEmblemSize {
		log.Printf("🔄 Resizing emblem: %dx%d -> fit %d", bounds.Dx(), bounds.Dy(), maxEmblemSize)
		img = imaging.Fit(img, maxEmblemSize, maxEmblemSize, imaging.Lanczos)
	}

	if identity == "" {
		identity = EmblemIdentity(data)
	}
	return &models.Emblem{Image: img, Identity: identity}, nil
}
