// Package palette handles image import: extracting paint palettes from
// reference images and preparing textures for texture-mode painting.
package palette

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sort"

	_ "golang.org/x/image/webp"
)

// MaxEntries caps how many palette colors an import may produce.
const MaxEntries = 8

// Entry is one extracted palette color with a display name.
type Entry struct {
	Name  string
	Color [3]float64 // linear RGB
}

// bucketStep is the quantization step per 8-bit channel. 32 gives an
// 8x8x8 color cube, coarse enough that shading variations of the same
// hue land in one bucket.
const bucketStep = 32

// Extract quantizes the image's pixels into coarse buckets, discards
// presumed background pixels (near-transparent, near-white, near-black)
// and returns the most frequent colors, most frequent first.
func Extract(img image.Image) []Entry {
	counts := make(map[[3]uint8]int)
	sums := make(map[[3]uint8][3]uint64)

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			r := uint8(r16 >> 8)
			g := uint8(g16 >> 8)
			bl := uint8(b16 >> 8)
			a := uint8(a16 >> 8)

			if a < 32 {
				continue // near-transparent
			}
			if r > 240 && g > 240 && bl > 240 {
				continue // near-white background
			}
			if r < 16 && g < 16 && bl < 16 {
				continue // near-black background
			}

			key := [3]uint8{r / bucketStep, g / bucketStep, bl / bucketStep}
			counts[key]++
			s := sums[key]
			s[0] += uint64(r)
			s[1] += uint64(g)
			s[2] += uint64(bl)
			sums[key] = s
		}
	}

	keys := make([][3]uint8, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ci, cj := counts[keys[i]], counts[keys[j]]
		if ci != cj {
			return ci > cj
		}
		// Stable order for equal counts.
		ki := int(keys[i][0])<<6 | int(keys[i][1])<<3 | int(keys[i][2])
		kj := int(keys[j][0])<<6 | int(keys[j][1])<<3 | int(keys[j][2])
		return ki < kj
	})
	if len(keys) > MaxEntries {
		keys = keys[:MaxEntries]
	}

	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		n := uint64(counts[k])
		s := sums[k]
		r8 := uint8(s[0] / n)
		g8 := uint8(s[1] / n)
		b8 := uint8(s[2] / n)
		entries = append(entries, Entry{
			Name: fmt.Sprintf("#%02x%02x%02x", r8, g8, b8),
			Color: [3]float64{
				SRGBToLinear(float64(r8) / 255),
				SRGBToLinear(float64(g8) / 255),
				SRGBToLinear(float64(b8) / 255),
			},
		})
	}
	return entries
}

// LoadImage decodes an image file. PNG, JPEG, GIF and WEBP are supported.
// A decode failure leaves whatever the caller previously imported intact.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image %s: %w", path, err)
	}
	return img, nil
}
