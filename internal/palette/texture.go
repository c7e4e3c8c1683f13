package palette

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// maxTextureDim bounds imported texture resolution; larger sources are
// downscaled so per-vertex sampling during a stroke stays cheap.
const maxTextureDim = 512

// Texture is a decoded paint texture stored as linear RGB floats,
// sampled bilinearly with wraparound tiling.
type Texture struct {
	W, H int
	Pix  []float64 // 3*W*H, row-major RGB
}

// NewTexture converts a decoded image into a linear-space texture,
// downscaling if either dimension exceeds maxTextureDim.
func NewTexture(img image.Image) *Texture {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 1 || h < 1 {
		// Degenerate source; a single black texel keeps Sample total.
		return &Texture{W: 1, H: 1, Pix: make([]float64, 3)}
	}
	if w > maxTextureDim || h > maxTextureDim {
		scale := float64(maxTextureDim) / float64(max(w, h))
		dw := max(1, int(float64(w)*scale))
		dh := max(1, int(float64(h)*scale))
		dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
		draw.BiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		img = dst
		b = dst.Bounds()
		w, h = dw, dh
	}

	t := &Texture{W: w, H: h, Pix: make([]float64, 3*w*h)}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r16, g16, b16, _ := img.At(x, y).RGBA()
			t.Pix[i] = SRGBToLinear(float64(r16) / 65535)
			t.Pix[i+1] = SRGBToLinear(float64(g16) / 65535)
			t.Pix[i+2] = SRGBToLinear(float64(b16) / 65535)
			i += 3
		}
	}
	return t
}

// Sample returns the bilinearly interpolated linear RGB color at the
// given UV. Coordinates outside [0,1) wrap, so the texture tiles.
func (t *Texture) Sample(u, v float64) (r, g, b float64) {
	fx := wrap(u) * float64(t.W)
	fy := wrap(v) * float64(t.H)

	// wrap can round up to exactly 1.0 for inputs a hair below an
	// integer, putting fx/fy at the texture edge; reduce again here.
	x0 := int(fx) % t.W
	y0 := int(fy) % t.H
	x1 := (x0 + 1) % t.W
	y1 := (y0 + 1) % t.H
	sx := fx - math.Floor(fx)
	sy := fy - math.Floor(fy)

	r = bilerp(t.at(x0, y0, 0), t.at(x1, y0, 0), t.at(x0, y1, 0), t.at(x1, y1, 0), sx, sy)
	g = bilerp(t.at(x0, y0, 1), t.at(x1, y0, 1), t.at(x0, y1, 1), t.at(x1, y1, 1), sx, sy)
	b = bilerp(t.at(x0, y0, 2), t.at(x1, y0, 2), t.at(x0, y1, 2), t.at(x1, y1, 2), sx, sy)
	return r, g, b
}

func (t *Texture) at(x, y, c int) float64 {
	return t.Pix[3*(y*t.W+x)+c]
}

func bilerp(v00, v10, v01, v11, sx, sy float64) float64 {
	top := v00 + (v10-v00)*sx
	bot := v01 + (v11-v01)*sx
	return top + (bot-top)*sy
}

func wrap(v float64) float64 {
	return v - math.Floor(v)
}

// SRGBToLinear converts one display-space channel in [0,1] to linear space.
func SRGBToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}
