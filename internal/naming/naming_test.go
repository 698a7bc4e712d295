package naming

import (
	"testing"

	"github.com/kozaktomas/photo-dedupe/internal/fingerprint"
	"github.com/kozaktomas/photo-dedupe/internal/media"
)

func TestBaseName(t *testing.T) {
	canonical := fingerprint.Fingerprint(0xABCDEF)
	member := fingerprint.Fingerprint(0x123456)

	tests := []struct {
		name     string
		member   fingerprint.Fingerprint
		rank     int
		expected string
	}{
		{"canonical", canonical, 0, "0000000000abcdef"},
		{"first duplicate", member, 1, "0000000000abcdef-1-0000000000123456"},
		{"tenth duplicate", member, 10, "0000000000abcdef-10-0000000000123456"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := BaseName(canonical, tc.member, tc.rank); got != tc.expected {
				t.Errorf("BaseName = %q; want %q", got, tc.expected)
			}
		})
	}
}

func TestFileName(t *testing.T) {
	canonical := fingerprint.Fingerprint(0x1)

	tests := []struct {
		format   media.Format
		expected string
	}{
		{media.FormatJPEG, "0000000000000001.jpg"},
		{media.FormatPNG, "0000000000000001.png"},
		{media.FormatGIF, "0000000000000001.gif"},
		{media.FormatWEBP, "0000000000000001.webp"},
	}

	for _, tc := range tests {
		if got := FileName(canonical, canonical, 0, tc.format); got != tc.expected {
			t.Errorf("FileName(%v) = %q; want %q", tc.format, got, tc.expected)
		}
	}
}

func TestNamesUniqueWithinGroup(t *testing.T) {
	canonical := fingerprint.Fingerprint(0xAAAA)
	members := []fingerprint.Fingerprint{0xAAAA, 0xAAAB, 0xAAAC, 0xAAAB}

	seen := map[string]bool{}
	for rank, member := range members {
		name := BaseName(canonical, member, rank)
		if seen[name] {
			t.Errorf("duplicate name %q at rank %d", name, rank)
		}
		seen[name] = true
	}
}

func TestNamingIsPure(t *testing.T) {
	canonical := fingerprint.Fingerprint(0x42)
	member := fingerprint.Fingerprint(0x43)

	first := FileName(canonical, member, 3, media.FormatWEBP)
	second := FileName(canonical, member, 3, media.FormatWEBP)
	if first != second {
		t.Errorf("same inputs produced different names: %q vs %q", first, second)
	}
}
