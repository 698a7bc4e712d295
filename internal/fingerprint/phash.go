package fingerprint

import (
	"image"
	"math"
)

// PHash is the DCT-based perceptual hash and the default algorithm.
// It samples the image onto a 32x32 luma grid, takes the top-left 8x8
// block of the grid's DCT-II, and emits one bit per coefficient
// depending on whether it sits above the block average.
type PHash struct{}

func (PHash) Name() string { return "phash" }

// cosines[n][k] = cos(pi/32 * (n + 0.5) * k), the only DCT basis values
// the 8x8 block needs. Computed once; the table is what keeps the four
// nested loops in Compute cheap at this fixed size.
var cosines = func() [32][8]float64 {
	var t [32][8]float64
	for n := 0; n < 32; n++ {
		for k := 0; k < 8; k++ {
			t[n][k] = math.Cos(math.Pi / 32 * (float64(n) + 0.5) * float64(k))
		}
	}
	return t
}()

// Compute derives the 64-bit perceptual hash of an image.
//
// The transform is the top-left 8x8 block of a 32x32 DCT-II, computed
// directly from the definition rather than through a general transform
// routine, so that fingerprints are bit-exact and reproducible. Luma is
// centered on 128 before transforming; the DC coefficient is excluded
// from the average because it only reflects overall brightness.
func (PHash) Compute(img image.Image) Fingerprint {
	luma := sampleLuma(img, 32, 32)

	var coeffs [64]float64
	for k1 := 0; k1 < 8; k1++ {
		for k2 := 0; k2 < 8; k2++ {
			var sum float64
			for n1 := 0; n1 < 32; n1++ {
				for n2 := 0; n2 < 32; n2++ {
					sum += cosines[n1][k1] * cosines[n2][k2] * (luma[n1][n2] - 128)
				}
			}
			coeffs[k1*8+k2] = sum
		}
	}

	var total float64
	for _, c := range coeffs[1:] {
		total += c
	}
	average := total / 63

	var hash Fingerprint
	for i, c := range coeffs {
		if c >= average {
			hash |= 1 << (63 - i)
		}
	}
	return hash
}

func (PHash) Distance(a, b Fingerprint) int {
	return HammingDistance(a, b)
}
