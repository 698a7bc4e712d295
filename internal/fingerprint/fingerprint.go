// Package fingerprint computes 64-bit perceptual signatures for decoded
// images and compares them by Hamming distance.
package fingerprint

import (
	"fmt"
	"image"
	"math/bits"
)

// Fingerprint is a 64-bit perceptual signature of an image. Two
// fingerprints are only comparable when produced by the same algorithm.
type Fingerprint uint64

// String renders the fingerprint as 16 zero-padded lowercase hex digits.
// The same rendering is embedded in output filenames, so it must stay
// stable.
func (f Fingerprint) String() string {
	return fmt.Sprintf("%016x", uint64(f))
}

// Algorithm turns a decoded image into a fingerprint and defines the
// distance between two of its fingerprints. Implementations must be
// pure: the same pixels always yield the same fingerprint.
type Algorithm interface {
	Name() string
	Compute(img image.Image) Fingerprint
	Distance(a, b Fingerprint) int
}

// ForName returns the algorithm registered under the given name.
func ForName(name string) (Algorithm, error) {
	switch name {
	case "phash":
		return PHash{}, nil
	case "dhash":
		return DHash{}, nil
	default:
		return nil, fmt.Errorf("unknown signature algorithm %q (supported: phash, dhash)", name)
	}
}

// DefaultThreshold is the Hamming distance below which two fingerprints
// are considered the same image. 8 of 64 bits (~12.5%) tolerates
// re-encoding and resizing artifacts without merging distinct photos.
const DefaultThreshold = 8

// HammingDistance counts the differing bits between two fingerprints,
// in the range 0-64.
func HammingDistance(a, b Fingerprint) int {
	return bits.OnesCount64(uint64(a ^ b))
}

// Similar reports whether two fingerprints are within the threshold.
// The comparison is strict: a distance equal to the threshold is not
// similar.
func Similar(a, b Fingerprint, threshold int) bool {
	return HammingDistance(a, b) < threshold
}

// Score maps the distance between two fingerprints onto [0,1], where 1
// means identical. Display only; similarity decisions use Similar.
func Score(a, b Fingerprint) float64 {
	return 1.0 - float64(HammingDistance(a, b))/64.0
}

// sampleLuma reduces an image to a rows x cols grid of BT.601 luma
// values in [0,255] using nearest-neighbor sampling. No filtering is
// applied: the fingerprint transforms must see the raw low-frequency
// structure, and any smoothing here would change hashes between
// implementations.
func sampleLuma(img image.Image, cols, rows int) [][]float64 {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	luma := make([][]float64, rows)
	for y := 0; y < rows; y++ {
		luma[y] = make([]float64, cols)
		for x := 0; x < cols; x++ {
			sx := b.Min.X + x*w/cols
			sy := b.Min.Y + y*h/rows
			r, g, bl, _ := img.At(sx, sy).RGBA()
			luma[y][x] = 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(bl>>8)
		}
	}
	return luma
}
