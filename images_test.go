package bio

import (
	"bytes"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessFixedDensities(t *testing.T) {
	img, variants, err := ProcessFixed(bytes.NewReader(jpegBytes(t, 200, 160)), "Profile Pic.JPG", FixedOptions{})
	require.NoError(t, err)

	assert.Equal(t, 50, img.Width)
	assert.Equal(t, 50, img.Height)
	assert.Equal(t, "/static/fixed/profile-pic-50x50.jpg", img.Src)
	assert.Equal(t, "/static/fixed/profile-pic-50x50.jpg 1x, /static/fixed/profile-pic-75x75.jpg 1.5x, /static/fixed/profile-pic-100x100.jpg 2x", img.SrcSet)
	assert.True(t, strings.HasPrefix(img.Base64, "data:image/jpeg;base64,"))

	require.Len(t, variants, 3)
	for _, v := range variants {
		decoded, err := jpeg.Decode(bytes.NewReader(v.Data))
		require.NoError(t, err)
		assert.Equal(t, v.Width, decoded.Bounds().Dx(), v.Filename)
		assert.Equal(t, v.Height, decoded.Bounds().Dy(), v.Filename)
	}
}

func TestProcessFixedSmallSourceKeeps1x(t *testing.T) {
	tests := []struct {
		name     string
		w, h     int
		variants int
	}{
		{"exactly 1x", 50, 50, 1},
		{"between 1x and 1.5x", 60, 60, 1},
		{"below 1x", 10, 10, 1},
		{"fits 1.5x", 80, 90, 2},
	}
	for _, tt := range tests {
		_, variants, err := ProcessFixed(pngReader(t, tt.w, tt.h), "a.png", FixedOptions{Width: 50, Height: 50})
		if err != nil {
			t.Fatalf("%s: ProcessFixed failed: %v", tt.name, err)
		}
		if len(variants) != tt.variants {
			t.Errorf("%s: got %d variants, want %d", tt.name, len(variants), tt.variants)
		}
		if variants[0].Width != 50 || variants[0].Height != 50 {
			t.Errorf("%s: 1x = %dx%d, want 50x50", tt.name, variants[0].Width, variants[0].Height)
		}
	}
}

func TestProcessFixedInvalidImage(t *testing.T) {
	_, _, err := ProcessFixed(strings.NewReader("not an image"), "x.jpg", FixedOptions{})
	assert.Error(t, err)
}

func TestCoverRect(t *testing.T) {
	tests := []struct {
		bounds image.Rectangle
		w, h   int
		want   image.Rectangle
	}{
		{image.Rect(0, 0, 200, 100), 50, 50, image.Rect(50, 0, 150, 100)},
		{image.Rect(0, 0, 100, 200), 50, 50, image.Rect(0, 50, 100, 150)},
		{image.Rect(0, 0, 100, 200), 50, 25, image.Rect(0, 75, 100, 125)},
		{image.Rect(0, 0, 80, 80), 50, 50, image.Rect(0, 0, 80, 80)},
		{image.Rect(0, 0, 1, 100), 100, 1, image.Rect(0, 49, 1, 50)},
		{image.Rect(0, 0, 100, 1), 1, 100, image.Rect(49, 0, 50, 1)},
	}
	for _, tt := range tests {
		if got := coverRect(tt.bounds, tt.w, tt.h); got != tt.want {
			t.Errorf("coverRect(%v, %d, %d) = %v, want %v", tt.bounds, tt.w, tt.h, got, tt.want)
		}
	}
}

func TestWriteVariants(t *testing.T) {
	out := t.TempDir()
	_, variants, err := ProcessFixed(pngReader(t, 120, 120), "avatar.png", FixedOptions{})
	require.NoError(t, err)
	require.NoError(t, WriteVariants(out, variants))

	for _, v := range variants {
		data, err := os.ReadFile(filepath.Join(out, "static", "fixed", v.Filename))
		require.NoError(t, err)
		assert.Equal(t, v.Data, data)
	}
}

func TestSlugifyFilename(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"profile-pic.jpg", "profile-pic"},
		{"/abs/path/My Photo.PNG", "my-photo"},
		{"___.gif", "image"},
	}
	for _, tt := range tests {
		if got := slugifyFilename(tt.input); got != tt.expected {
			t.Errorf("slugifyFilename(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestProcessFixedExtremeAspectRatio(t *testing.T) {
	_, variants, err := ProcessFixed(pngReader(t, 1, 100), "sliver.png", FixedOptions{Width: 100, Height: 1})
	require.NoError(t, err)
	require.NotEmpty(t, variants)

	decoded, err := jpeg.Decode(bytes.NewReader(variants[0].Data))
	require.NoError(t, err)
	assert.Equal(t, 100, decoded.Bounds().Dx())
	assert.Equal(t, 1, decoded.Bounds().Dy())
	// Source blue is 128 everywhere; an empty crop would leave the variant black.
	_, _, b, _ := decoded.At(50, 0).RGBA()
	assert.Greater(t, b>>8, uint32(64))
}
