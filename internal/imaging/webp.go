// Package imaging normalizes uploaded pictures before they are stored.
package imaging

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/BruksfildServices01/garage-manager/internal/httperr"
)

const (
	LogoMaxSide = 512
	webpQuality = 80
)

// ToWebP decodes a PNG, JPEG, GIF or WebP image, scales it down so its
// longer side is at most maxSide, and re-encodes it as lossy WebP.
func ToWebP(data []byte, maxSide int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_image")
	}

	img = fit(img, maxSide)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fit(src image.Image, maxSide int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSide <= 0 || (w <= maxSide && h <= maxSide) {
		return src
	}

	if w >= h {
		h = h * maxSide / w
		w = maxSide
	} else {
		w = w * maxSide / h
		h = maxSide
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// IsPDF sniffs the leading bytes.
func IsPDF(data []byte) bool {
	return http.DetectContentType(data) == "application/pdf"
}
