package storage

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/disintegration/imaging"
)

const thumbnailSize = 150

// ErrInvalidImage marks an upload that could not be decoded as an image.
// Handlers map it to a validation failure.
var ErrInvalidImage = errors.New("not a valid image")

// ProcessImage decodes an uploaded image, scales it to 150x150 and re-encodes
// it as JPEG. Non-image payloads fail here, before anything is stored.
func ProcessImage(raw []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	img = imaging.Resize(img, thumbnailSize, thumbnailSize, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
