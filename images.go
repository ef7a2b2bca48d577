package bio

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/draw"
)

const (
	defaultFixedSize   = 50
	jpegQuality        = 80
	placeholderWidth   = 20
	fixedSubdir        = "static/fixed"
	maxSourceImageSize = 20 << 20 // 20MB
)

// densities the fixed pipeline emits, in srcset order.
var densities = []float64{1, 1.5, 2}

// FixedOptions sizes the fixed image transformation.
type FixedOptions struct {
	Width   int
	Height  int
	Quality int
}

func (o *FixedOptions) setDefaults() {
	if o.Width <= 0 {
		o.Width = defaultFixedSize
	}
	if o.Height <= 0 {
		o.Height = defaultFixedSize
	}
	if o.Quality <= 0 || o.Quality > 100 {
		o.Quality = jpegQuality
	}
}

// FixedVariant is one encoded density of a fixed image.
type FixedVariant struct {
	Filename string
	Density  float64
	Width    int
	Height   int
	Data     []byte
}

// ProcessFixed decodes src, cover-crops it to the requested aspect ratio and
// encodes a JPEG per density. The 1x variant is always produced; larger
// densities are skipped when the source is too small to fill them.
func ProcessFixed(src io.Reader, originalName string, opts FixedOptions) (FixedImage, []FixedVariant, error) {
	opts.setDefaults()

	img, _, err := image.Decode(io.LimitReader(src, maxSourceImageSize))
	if err != nil {
		return FixedImage{}, nil, fmt.Errorf("decode image: %w", err)
	}
	crop := coverRect(img.Bounds(), opts.Width, opts.Height)
	slug := slugifyFilename(originalName)

	var variants []FixedVariant
	for _, d := range densities {
		w := int(float64(opts.Width) * d)
		h := int(float64(opts.Height) * d)
		if d > 1 && (w > crop.Dx() || h > crop.Dy()) {
			continue
		}
		data, err := encodeJPEG(scale(img, crop, w, h), opts.Quality)
		if err != nil {
			return FixedImage{}, nil, err
		}
		variants = append(variants, FixedVariant{
			Filename: fmt.Sprintf("%s-%dx%d.jpg", slug, w, h),
			Density:  d,
			Width:    w,
			Height:   h,
			Data:     data,
		})
	}

	phH := placeholderWidth * opts.Height / opts.Width
	if phH < 1 {
		phH = 1
	}
	ph, err := encodeJPEG(scale(img, crop, placeholderWidth, phH), opts.Quality)
	if err != nil {
		return FixedImage{}, nil, err
	}

	var srcSet []string
	for _, v := range variants {
		srcSet = append(srcSet, fixedPublicPath(v.Filename)+" "+strconv.FormatFloat(v.Density, 'f', -1, 64)+"x")
	}

	return FixedImage{
		Src:    fixedPublicPath(variants[0].Filename),
		SrcSet: strings.Join(srcSet, ", "),
		Base64: "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(ph),
		Width:  opts.Width,
		Height: opts.Height,
	}, variants, nil
}

// WriteVariants stores the encoded variants under outDir.
func WriteVariants(outDir string, variants []FixedVariant) error {
	dir := filepath.Join(outDir, filepath.FromSlash(fixedSubdir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create fixed dir: %w", err)
	}
	for _, v := range variants {
		if err := os.WriteFile(filepath.Join(dir, v.Filename), v.Data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", v.Filename, err)
		}
	}
	return nil
}

// coverRect returns the centered sub-rectangle of b with the aspect ratio w:h.
func coverRect(b image.Rectangle, w, h int) image.Rectangle {
	sw, sh := b.Dx(), b.Dy()
	cw, ch := sw, sw*h/w
	if ch > sh {
		cw, ch = sh*w/h, sh
	}
	cw, ch = max(cw, 1), max(ch, 1)
	x0 := b.Min.X + (sw-cw)/2
	y0 := b.Min.Y + (sh-ch)/2
	return image.Rect(x0, y0, x0+cw, y0+ch)
}

func scale(img image.Image, crop image.Rectangle, w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, crop, draw.Over, nil)
	return dst
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

func fixedPublicPath(filename string) string {
	return "/" + path.Join(fixedSubdir, filename)
}

// slugifyFilename converts a filename (without extension) to a URL-safe slug.
func slugifyFilename(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(filepath.Base(name), ext)
	if s := Slugify(base); s != "" {
		return s
	}
	return "image"
}
