package doc

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// defaultRasterSize is used when the SVG viewBox carries no usable size.
const defaultRasterSize = 1024

// maxRasterDim is the maximum pixel dimension (width or height) allowed
// when rasterizing an SVG. A hostile viewBox ("0 0 100000 100000") would
// otherwise make the RGBA buffer allocation unbounded.
const maxRasterDim = 8192

// rasterizeSVG renders SVG data to PNG on a white background. The longest
// side is scaled down to bound when it exceeds it; bound <= 0 keeps the
// intrinsic size.
func rasterizeSVG(data []byte, bound int) ([]byte, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unable to parse SVG: %w", err)
	}

	w := int(math.Ceil(icon.ViewBox.W))
	h := int(math.Ceil(icon.ViewBox.H))
	if w <= 0 {
		w = defaultRasterSize
	}
	if h <= 0 {
		h = defaultRasterSize
	}

	fit := func(limit int) {
		if w <= limit && h <= limit {
			return
		}
		s := min(float64(limit)/float64(w), float64(limit)/float64(h))
		w = max(int(math.Round(float64(w)*s)), 1)
		h = max(int(math.Round(float64(h)*s)), 1)
	}
	if bound > 0 {
		fit(bound)
	}
	fit(maxRasterDim)

	icon.SetTarget(0, 0, float64(w), float64(h))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.RGBA{255, 255, 255, 255}}, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("unable to encode rasterized SVG: %w", err)
	}
	return buf.Bytes(), nil
}
