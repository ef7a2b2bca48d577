package bio

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func solidImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, solidImage(w, h), nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	return buf.Bytes()
}

func pngReader(t *testing.T, w, h int) io.Reader {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, solidImage(w, h)); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return &buf
}

const testSiteYAML = `siteMetadata:
  title: Vue Newbie
  author: Jane
  description: Learning Vue one post at a time.
  siteUrl: https://example.com
  social:
    twitter: janedoe
`

// writeSite lays out a content tree with a profile picture and a site.yaml,
// returning a Config pointing at it.
func writeSite(t *testing.T) Config {
	t.Helper()
	root := t.TempDir()
	content := filepath.Join(root, "content")
	assets := filepath.Join(content, "assets")
	if err := os.MkdirAll(assets, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(assets, "profile-pic.jpg"), jpegBytes(t, 200, 160), 0o644); err != nil {
		t.Fatalf("write avatar: %v", err)
	}
	siteFile := filepath.Join(root, "site.yaml")
	if err := os.WriteFile(siteFile, []byte(testSiteYAML), 0o644); err != nil {
		t.Fatalf("write site.yaml: %v", err)
	}
	return Config{
		ContentDir: content,
		SiteFile:   siteFile,
		OutDir:     filepath.Join(root, "public"),
		Env:        "test",
	}
}
