package doc

import (
	"bytes"
	_ "embed"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"weft/jpegquality"
)

//go:embed broken.svg
var brokenImageSVG []byte

// AssetOpener resolves a document-relative asset reference to its bytes.
type AssetOpener func(ref string) ([]byte, error)

// ImagePolicy controls how image references embed into pages.
type ImagePolicy struct {
	// ScaleBound caps the longest raster side in px; larger images are
	// downscaled. Zero disables scaling.
	ScaleBound int
	// JPEGQuality is the re-encode quality used when the source quality
	// cannot be estimated.
	JPEGQuality int
	// RasterizeSVG converts SVG assets to PNG instead of passing them
	// through.
	RasterizeSVG bool
	// UseBroken substitutes a placeholder for unreadable assets instead
	// of failing the document.
	UseBroken bool
}

// DirAssets resolves references against a directory. Absolute references
// and references escaping the directory are rejected.
func DirAssets(dir string) AssetOpener {
	return func(ref string) ([]byte, error) {
		clean := filepath.Clean(filepath.FromSlash(ref))
		if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
			return nil, fmt.Errorf("unsafe image reference %q", ref)
		}
		return os.ReadFile(filepath.Join(dir, clean))
	}
}

// imageSrc turns an image reference into an embeddable src value. Data URIs
// and absolute URLs pass through; everything else is read through the
// opener and inlined as a data URI.
func (b *Builder) imageSrc(ref string) (string, error) {
	if b.open == nil || strings.HasPrefix(ref, "data:") || strings.Contains(ref, "://") {
		return ref, nil
	}

	data, err := b.open(ref)
	if err == nil {
		var uri string
		if uri, err = b.encodeImage(ref, data); err == nil {
			return uri, nil
		}
	}
	if !b.images.UseBroken {
		return "", fmt.Errorf("unable to resolve image %q: %w", ref, err)
	}
	b.log.Warn("Unable to resolve image, using placeholder", zap.String("src", ref), zap.Error(err))
	return dataURI("image/svg+xml", brokenImageSVG), nil
}

func (b *Builder) encodeImage(ref string, data []byte) (string, error) {
	// Special case - SVG is text and escapes signature matching.
	if isSVG(data) {
		if b.images.RasterizeSVG {
			raster, err := rasterizeSVG(data, b.images.ScaleBound)
			if err != nil {
				return "", fmt.Errorf("unable to rasterize SVG: %w", err)
			}
			return dataURI("image/png", raster), nil
		}
		return dataURI("image/svg+xml", data), nil
	}

	mimeType := detectMIME(ref, data)
	if mimeType == "" {
		return "", fmt.Errorf("unknown image type for %q", ref)
	}
	if b.images.ScaleBound > 0 {
		var err error
		if data, mimeType, err = b.downscale(data, mimeType); err != nil {
			return "", err
		}
	}
	return dataURI(mimeType, data), nil
}

// downscale resizes a raster image so its longest side fits the configured
// bound, preserving aspect ratio. JPEG output is re-encoded at the source's
// estimated quality so a once-compressed image is not inflated.
func (b *Builder) downscale(data []byte, mimeType string) ([]byte, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("unable to decode image: %w", err)
	}

	bound := b.images.ScaleBound
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w <= bound && h <= bound {
		return data, mimeType, nil
	}

	var resized image.Image
	if w >= h {
		resized = imaging.Resize(img, bound, 0, imaging.Lanczos)
	} else {
		resized = imaging.Resize(img, 0, bound, imaging.Lanczos)
	}
	if resized == nil {
		return nil, "", fmt.Errorf("unable to resize %dx%d image", w, h)
	}

	buf := new(bytes.Buffer)
	switch format {
	case "jpeg":
		quality := b.images.JPEGQuality
		if jr, err := jpegquality.NewWithBytes(data); err == nil {
			quality = jr.Quality()
		} else {
			b.log.Warn("Unable to detect JPEG quality level", zap.Error(err))
		}
		if quality < 1 {
			quality = 75
		}
		if err := imaging.Encode(buf, resized, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
			return nil, "", fmt.Errorf("unable to encode scaled JPEG: %w", err)
		}
		return buf.Bytes(), "image/jpeg", nil
	default:
		if err := imaging.Encode(buf, resized, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
			return nil, "", fmt.Errorf("unable to encode scaled PNG: %w", err)
		}
		return buf.Bytes(), "image/png", nil
	}
}

func detectMIME(ref string, data []byte) string {
	if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown && kind.MIME.Value != "" {
		return kind.MIME.Value
	}
	if ext := filepath.Ext(ref); ext != "" {
		if mt := mime.TypeByExtension(ext); mt != "" {
			return mt
		}
	}
	return ""
}

// isSVG sniffs for an <svg root; signature matching only covers binary
// formats.
func isSVG(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return bytes.Contains(head, []byte("<svg"))
}

func dataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
