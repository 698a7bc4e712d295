// Package scanner walks a directory, decodes every recognized image and
// computes its fingerprint.
package scanner

import (
	"context"
	"fmt"
	"image"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/schollz/progressbar/v3"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"

	"github.com/kozaktomas/photo-dedupe/internal/fingerprint"
	"github.com/kozaktomas/photo-dedupe/internal/media"
)

// Options controls a scan.
type Options struct {
	Concurrency  int  // number of parallel hashing workers
	Verbose      bool // print "path: fingerprint" per file (disables the bar)
	ShowProgress bool // render a progress bar while hashing
}

// Stats summarizes a scan.
type Stats struct {
	Eligible int // files with a recognized extension
	Hashed   int // files successfully decoded and fingerprinted
	Skipped  int // files that failed to decode
}

type target struct {
	path   string
	format media.Format
}

// Scan walks dir and returns one item per successfully decoded image.
// Files with unrecognized extensions are excluded silently; decode
// failures are logged and skipped without aborting the scan.
//
// Hashing fans out across workers, but results land at their walk-order
// index, so the returned slice is deterministic regardless of worker
// scheduling. Clustering downstream depends on that order.
func Scan(ctx context.Context, dir string, alg fingerprint.Algorithm, opts Options) ([]media.Item, Stats, error) {
	var targets []target
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		format, ok := media.FormatFromPath(path)
		if !ok {
			return nil
		}
		targets = append(targets, target{path: path, format: format})
		return nil
	})
	if err != nil {
		return nil, Stats{}, fmt.Errorf("failed to walk %s: %w", dir, err)
	}

	stats := Stats{Eligible: len(targets)}

	concurrency := opts.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	var bar *progressbar.ProgressBar
	if opts.ShowProgress && !opts.Verbose {
		bar = progressbar.NewOptions(len(targets),
			progressbar.OptionSetDescription(fmt.Sprintf("Hashing images (%d workers)", concurrency)),
			progressbar.OptionShowCount(),
			progressbar.OptionShowElapsedTimeOnFinish(),
		)
	}

	results := make([]*media.Item, len(targets))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)
	for i, t := range targets {
		i, t := i, t
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			item, err := hashFile(t.path, t.format, alg)
			if err != nil {
				log.Printf("skipping %s: %v", t.path, err)
			} else {
				results[i] = item
				if opts.Verbose {
					fmt.Printf("%s: %s\n", t.path, item.Fingerprint)
				}
			}
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, stats, err
	}
	if bar != nil {
		fmt.Println()
	}

	items := make([]media.Item, 0, len(results))
	for _, item := range results {
		if item == nil {
			stats.Skipped++
			continue
		}
		items = append(items, *item)
	}
	stats.Hashed = len(items)
	return items, stats, nil
}

// hashFile decodes one image file and fingerprints it.
func hashFile(path string, format media.Format, alg fingerprint.Algorithm) (*media.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	return &media.Item{
		Fingerprint: alg.Compute(img),
		Path:        path,
		Format:      format,
		PixelCount:  uint64(bounds.Dx()) * uint64(bounds.Dy()),
	}, nil
}
