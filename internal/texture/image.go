package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"strings"

	"github.com/pkg/errors"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
)

// Decode decodes an encoded image (PNG) into RGBA pixels.
func Decode(data []byte) (*image.RGBA, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "decode image")
	}
	return toRGBA(img), nil
}

// RasterizeSVG renders an SVG document into a width x height RGBA image.
// When tint is non-nil every "currentColor" in the document is replaced by
// it.
func RasterizeSVG(svg []byte, width, height int, tint color.Color) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("rasterize svg: invalid size %dx%d", width, height)
	}
	src := string(svg)
	if tint != nil {
		r, g, b, _ := tint.RGBA()
		src = strings.ReplaceAll(src, "currentColor", fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
	}
	icon, err := oksvg.ReadIconStream(strings.NewReader(src))
	if err != nil {
		return nil, errors.Wrap(err, "parse svg")
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	icon.SetTarget(0, 0, float64(width), float64(height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}

// Resize scales img to width x height with bilinear filtering.
func Resize(img image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
