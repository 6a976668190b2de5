package avatar

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	avatarerrors "github.com/Leonguyenbk/QLCV/internal/avatar/errors"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	assert.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestFSStorage_Store(t *testing.T) {
	dir := t.TempDir()
	storage := NewFSStorage(dir)

	path, err := storage.Store(pngBytes(t, 400, 300), "photo.PNG")
	assert.NoError(t, err)
	assert.Equal(t, ".png", filepath.Ext(path))

	written, err := os.ReadFile(filepath.Join(dir, filepath.Base(path)))
	assert.NoError(t, err)

	img, _, err := image.Decode(bytes.NewReader(written))
	assert.NoError(t, err)

	// 400x300 fit into a 200px box keeps the aspect ratio.
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())
}

func TestFSStorage_Store_SmallImageNotUpscaled(t *testing.T) {
	dir := t.TempDir()
	storage := NewFSStorage(dir)

	path, err := storage.Store(pngBytes(t, 80, 60), "small.png")
	assert.NoError(t, err)

	written, _ := os.ReadFile(filepath.Join(dir, filepath.Base(path)))
	img, _, err := image.Decode(bytes.NewReader(written))
	assert.NoError(t, err)
	assert.LessOrEqual(t, img.Bounds().Dx(), 80)
}

func TestFSStorage_Store_RejectsUnknownExtension(t *testing.T) {
	storage := NewFSStorage(t.TempDir())

	_, err := storage.Store(pngBytes(t, 10, 10), "animation.gif")
	assert.ErrorIs(t, err, avatarerrors.ErrUnsupportedImageType)

	_, err = storage.Store(pngBytes(t, 10, 10), "noextension")
	assert.ErrorIs(t, err, avatarerrors.ErrUnsupportedImageType)
}

func TestFSStorage_Store_RejectsCorruptData(t *testing.T) {
	storage := NewFSStorage(t.TempDir())

	_, err := storage.Store([]byte("definitely not an image"), "photo.jpg")
	assert.ErrorIs(t, err, avatarerrors.ErrInvalidImage)
}
