// Copyright CuriousMike56, 2026. All rights reserved.

package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/creachadair/atomicfile"
	"golang.org/x/image/draw"

	_ "image/jpeg" // legacy world textures are usually JPEG
)

// goCompositor builds the textures in-process with the image packages.
// Output is PNG: encoding DDS without ImageMagick is not worth carrying,
// and the game loads PNG textures fine.
type goCompositor struct{}

// NewGoCompositor returns the built-in fallback Compositor used when no
// ImageMagick installation is found.
func NewGoCompositor() Compositor {
	return goCompositor{}
}

func (goCompositor) Name() string { return "builtin" }

func (goCompositor) Ext() string { return ".png" }

func (goCompositor) Composite(p *Plan) error {
	for _, l := range p.Layers {
		if l.Source == "" {
			continue
		}
		src, err := loadImage(l.Source)
		if err != nil {
			return err
		}
		src = scalePow2(src)

		if err := writePNG(l.DiffuseSpecular, withAlpha(src, uint8(p.SpecularLevel))); err != nil {
			return err
		}
		if err := writePNG(l.NormalHeight, flatNormal(src.Bounds())); err != nil {
			return err
		}
		if l.BlendMap != "" {
			if err := writePNG(l.BlendMap, flatGray(blendMapSize)); err != nil {
				return err
			}
		}
	}
	return nil
}

func loadImage(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading texture: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding texture %s: %w", path, err)
	}
	return img, nil
}

// scalePow2 resamples src up to the next power-of-two dimensions. Texture
// units want power-of-two sizes; legacy world textures usually are one
// already, in which case src is returned untouched.
func scalePow2(src image.Image) image.Image {
	b := src.Bounds()
	w, h := nextPow2(b.Dx()), nextPow2(b.Dy())
	if w == b.Dx() && h == b.Dy() {
		return src
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

// withAlpha copies src and sets every pixel's alpha to a, which is how
// the new format encodes a uniform specular level.
func withAlpha(src image.Image, a uint8) *image.NRGBA {
	b := src.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), src, b.Min, draw.Src)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = a
	}
	return out
}

func flatNormal(b image.Rectangle) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.NRGBA{R: 0x80, G: 0x80, B: 0xff, A: 0xff}), image.Point{}, draw.Src)
	return out
}

func flatGray(size int) *image.Gray {
	out := image.NewGray(image.Rect(0, 0, size, size))
	for i := range out.Pix {
		out.Pix[i] = 0x80
	}
	return out
}

func writePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := atomicfile.WriteData(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
