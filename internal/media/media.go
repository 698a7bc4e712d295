// Package media defines the data model shared by the scanner, the
// clusterer and the organizer: recognized image formats and the
// fingerprinted item produced for every decoded file.
package media

import (
	_ "embed"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kozaktomas/photo-dedupe/internal/fingerprint"
)

// Format identifies one of the supported image formats.
type Format int

const (
	FormatGIF Format = iota + 1
	FormatPNG
	FormatJPEG
	FormatWEBP
)

// Ext returns the canonical file extension for the format, dot
// included. Aliases like .jpeg or .jpg-large all normalize to this.
func (f Format) Ext() string {
	switch f {
	case FormatGIF:
		return ".gif"
	case FormatPNG:
		return ".png"
	case FormatJPEG:
		return ".jpg"
	case FormatWEBP:
		return ".webp"
	}
	return ""
}

func (f Format) String() string {
	switch f {
	case FormatGIF:
		return "gif"
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatWEBP:
		return "webp"
	}
	return "unknown"
}

//go:embed formats.yaml
var formatsYAML []byte

type formatsFile struct {
	Formats map[string][]string `yaml:"formats"`
}

// extensions maps a lowercase extension (without the dot) to its format.
var extensions = func() map[string]Format {
	var file formatsFile
	if err := yaml.Unmarshal(formatsYAML, &file); err != nil {
		// Embedded file, cannot fail once the build passes.
		panic("failed to unmarshal embedded formats.yaml: " + err.Error())
	}
	byName := map[string]Format{
		"gif":  FormatGIF,
		"png":  FormatPNG,
		"jpg":  FormatJPEG,
		"webp": FormatWEBP,
	}
	table := make(map[string]Format)
	for name, aliases := range file.Formats {
		format, ok := byName[name]
		if !ok {
			panic("formats.yaml lists unknown format: " + name)
		}
		for _, alias := range aliases {
			table[alias] = format
		}
	}
	return table
}()

// FormatFromPath recognizes the image format of a path by its
// extension, case-insensitively and across aliases. The second return
// value is false for unrecognized extensions.
func FormatFromPath(path string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	ext = strings.TrimPrefix(ext, ".")
	format, ok := extensions[ext]
	return format, ok
}

// Item is one successfully decoded and fingerprinted input file.
// Immutable after creation.
type Item struct {
	Fingerprint fingerprint.Fingerprint
	Path        string
	Format      Format
	// PixelCount is width*height of the original image, kept as a
	// resolution proxy for inspection output.
	PixelCount uint64
}
