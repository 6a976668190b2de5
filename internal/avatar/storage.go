package avatar

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	avatarerrors "github.com/Leonguyenbk/QLCV/internal/avatar/errors"
)

// MaxDimension is the largest displayed avatar edge in pixels.
const MaxDimension = 200

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

//go:generate mockgen -source=storage.go -destination=mock/storage_mock.go -package=mock
type Storage interface {
	// Store normalizes and persists raw image bytes, returning the
	// relative path the employee record should reference.
	Store(raw []byte, originalFilename string) (string, error)
}

type fsStorage struct {
	baseDir string
}

// NewFSStorage writes avatars under baseDir (e.g. static/avatars).
func NewFSStorage(baseDir string) Storage {
	return &fsStorage{baseDir: baseDir}
}

func (s *fsStorage) Store(raw []byte, originalFilename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	if !allowedExtensions[ext] {
		return "", avatarerrors.ErrUnsupportedImageType
	}

	img, err := decode(raw, ext)
	if err != nil {
		return "", avatarerrors.ErrInvalidImage
	}

	// Fit keeps the aspect ratio; only downscales.
	img = imaging.Fit(img, MaxDimension, MaxDimension, imaging.Lanczos)

	if ext == ".jpg" || ext == ".jpeg" {
		img = flattenToWhite(img)
	}

	encoded, err := encode(img, ext)
	if err != nil {
		return "", err
	}

	name := uuid.New().String() + ext
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(s.baseDir, name), encoded, 0o644); err != nil {
		return "", err
	}

	return filepath.ToSlash(filepath.Join(filepath.Base(s.baseDir), name)), nil
}

// decode applies EXIF auto-orientation for formats that carry it.
func decode(raw []byte, ext string) (image.Image, error) {
	if ext == ".webp" {
		return webp.Decode(bytes.NewReader(raw))
	}
	return imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
}

func encode(img image.Image, ext string) ([]byte, error) {
	var buf bytes.Buffer
	switch ext {
	case ".jpg", ".jpeg":
		if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(90)); err != nil {
			return nil, err
		}
	case ".png":
		if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
			return nil, err
		}
	case ".webp":
		if err := webp.Encode(&buf, img, &webp.Options{Quality: 90}); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}
	return buf.Bytes(), nil
}

// flattenToWhite composites transparent pixels onto a white background;
// JPEG has no alpha channel.
func flattenToWhite(img image.Image) image.Image {
	bounds := img.Bounds()
	flat := image.NewRGBA(bounds)
	draw.Draw(flat, bounds, image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(flat, bounds, img, bounds.Min, draw.Over)
	return flat
}
