package fingerprint

import "image"

// DHash is the gradient-based difference hash, kept as an alternative
// algorithm behind the same interface. It is cheaper than PHash but
// more sensitive to crops and rotations.
type DHash struct{}

func (DHash) Name() string { return "dhash" }

// Compute samples a 9x8 luma grid and emits one bit per horizontally
// adjacent pixel pair: 1 when the left pixel is brighter. 8 rows of 8
// comparisons make up the 64 bits.
func (DHash) Compute(img image.Image) Fingerprint {
	luma := sampleLuma(img, 9, 8)

	var hash Fingerprint
	bit := 63
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if luma[y][x] > luma[y][x+1] {
				hash |= 1 << bit
			}
			bit--
		}
	}
	return hash
}

func (DHash) Distance(a, b Fingerprint) int {
	return HammingDistance(a, b)
}
