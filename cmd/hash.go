package cmd

import (
	"fmt"
	"image"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/spf13/cobra"
	_ "golang.org/x/image/webp"

	"github.com/kozaktomas/photo-dedupe/internal/fingerprint"
	"github.com/kozaktomas/photo-dedupe/internal/media"
)

var hashCmd = &cobra.Command{
	Use:   "hash <file>...",
	Short: "Print perceptual fingerprints for image files",
	Long: `Compute and print the perceptual hash and difference hash for each
given image file. Useful for inspecting why two files did or did not
end up in the same duplicate group.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runHash,
}

func init() {
	rootCmd.AddCommand(hashCmd)
}

func runHash(cmd *cobra.Command, args []string) error {
	for _, path := range args {
		format, ok := media.FormatFromPath(path)
		if !ok {
			fmt.Printf("%s: unsupported format\n", path)
			continue
		}

		img, err := decodeFile(path)
		if err != nil {
			fmt.Printf("%s: %v\n", path, err)
			continue
		}

		bounds := img.Bounds()
		fmt.Printf("%s (%s, %dx%d)\n", path, format, bounds.Dx(), bounds.Dy())
		fmt.Printf("  phash: %s\n", fingerprint.PHash{}.Compute(img))
		fmt.Printf("  dhash: %s\n", fingerprint.DHash{}.Compute(img))
	}
	return nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}
