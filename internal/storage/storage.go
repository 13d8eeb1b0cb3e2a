package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"
)

// ImageStore persists processed profile images and returns a stable reference
// that can be stored on the user record and later deleted.
type ImageStore interface {
	Save(ctx context.Context, raw []byte, originalName string) (string, error)
	Delete(ctx context.Context, ref string) error
}

// imageName builds a collision-safe object name: a random prefix plus the
// sanitized original file name, always with a .jpg extension since uploads
// are re-encoded as JPEG.
func imageName(originalName string) (string, error) {
	buf := make([]byte, 25)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate image name: %w", err)
	}

	base := filepath.Base(originalName)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." {
		base = "image"
	}

	return hex.EncodeToString(buf) + "_" + base + ".jpg", nil
}
