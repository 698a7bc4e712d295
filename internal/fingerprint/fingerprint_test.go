package fingerprint

import "testing"

func TestHammingDistance(t *testing.T) {
	tests := []struct {
		name     string
		a        Fingerprint
		b        Fingerprint
		expected int
	}{
		{"identical", 0x0, 0x0, 0},
		{"completely different", 0xFFFFFFFFFFFFFFFF, 0x0, 64},
		{"one bit different", 0x1, 0x0, 1},
		{"four bits different", 0xF, 0x0, 4},
		{"half different", 0xFFFFFFFF00000000, 0x0, 32},
		{"alternating", 0xAAAAAAAAAAAAAAAA, 0x5555555555555555, 64},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HammingDistance(tc.a, tc.b); got != tc.expected {
				t.Errorf("HammingDistance(%x, %x) = %d; want %d", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestHammingDistanceSymmetry(t *testing.T) {
	pairs := [][2]Fingerprint{
		{0x0, 0xFF},
		{0x123456789ABCDEF0, 0x0FEDCBA987654321},
		{0xFFFFFFFFFFFFFFFF, 0xAAAAAAAAAAAAAAAA},
	}
	for _, p := range pairs {
		if HammingDistance(p[0], p[1]) != HammingDistance(p[1], p[0]) {
			t.Errorf("distance not symmetric for %x and %x", p[0], p[1])
		}
	}
}

func TestSimilarThresholdBoundary(t *testing.T) {
	tests := []struct {
		name     string
		a        Fingerprint
		b        Fingerprint
		expected bool
	}{
		{"identical", 0x0, 0x0, true},
		{"seven bits different", 0x0, 0x7F, true},
		{"eight bits different", 0x0, 0xFF, false},
		{"completely different", 0x0, 0xFFFFFFFFFFFFFFFF, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Similar(tc.a, tc.b, DefaultThreshold); got != tc.expected {
				t.Errorf("Similar(%x, %x, %d) = %v; want %v", tc.a, tc.b, DefaultThreshold, got, tc.expected)
			}
		})
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		a        Fingerprint
		b        Fingerprint
		expected float64
	}{
		{"identical", 0xABCD, 0xABCD, 1.0},
		{"completely different", 0x0, 0xFFFFFFFFFFFFFFFF, 0.0},
		{"half different", 0x0, 0xFFFFFFFF00000000, 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Score(tc.a, tc.b); got != tc.expected {
				t.Errorf("Score(%x, %x) = %f; want %f", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestFingerprintString(t *testing.T) {
	tests := []struct {
		fp       Fingerprint
		expected string
	}{
		{0x0, "0000000000000000"},
		{0xABCDEF, "0000000000abcdef"},
		{0xFFFFFFFFFFFFFFFF, "ffffffffffffffff"},
	}

	for _, tc := range tests {
		if got := tc.fp.String(); got != tc.expected {
			t.Errorf("Fingerprint(%d).String() = %q; want %q", tc.fp, got, tc.expected)
		}
	}
}

func TestForName(t *testing.T) {
	for _, name := range []string{"phash", "dhash"} {
		alg, err := ForName(name)
		if err != nil {
			t.Fatalf("ForName(%q) failed: %v", name, err)
		}
		if alg.Name() != name {
			t.Errorf("ForName(%q).Name() = %q", name, alg.Name())
		}
	}

	if _, err := ForName("ahash"); err == nil {
		t.Error("ForName should fail for unknown algorithm")
	}
}
