package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/photo-dedupe/internal/cluster"
	"github.com/kozaktomas/photo-dedupe/internal/config"
	"github.com/kozaktomas/photo-dedupe/internal/fingerprint"
	"github.com/kozaktomas/photo-dedupe/internal/organizer"
	"github.com/kozaktomas/photo-dedupe/internal/scanner"
)

var dedupeCmd = &cobra.Command{
	Use:   "dedupe <source-dir> <target-dir>",
	Short: "Find near-duplicate images and move them into grouped names",
	Long: `Scan a directory for images, group near-duplicates by perceptual
hash, and move every file into the target directory. Each duplicate
group shares one canonical fingerprint prefix in its filenames.

The move step is final: there is no dry-run or undo.

Example:
  photo-dedupe dedupe ~/Pictures/inbox ~/Pictures/deduped --verbose`,
	Args: cobra.ExactArgs(2),
	RunE: runDedupe,
}

func init() {
	rootCmd.AddCommand(dedupeCmd)

	dedupeCmd.Flags().Int("threshold", fingerprint.DefaultThreshold, "Hamming distance below which two images count as duplicates")
	dedupeCmd.Flags().String("algorithm", "phash", "Signature algorithm: phash, dhash")
	dedupeCmd.Flags().Int("concurrency", 4, "Number of parallel hashing workers")
	dedupeCmd.Flags().Bool("verbose", false, "Print every file with its fingerprint during hashing")
	dedupeCmd.Flags().Bool("transitive", false, "Group by transitive similarity (union-find) instead of the default greedy pass")
}

func runDedupe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	// Env config supplies defaults; explicitly set flags win.
	threshold := cfg.Threshold
	if cmd.Flags().Changed("threshold") {
		threshold = mustGetInt(cmd, "threshold")
	}
	algorithmName := cfg.Algorithm
	if cmd.Flags().Changed("algorithm") {
		algorithmName = mustGetString(cmd, "algorithm")
	}
	concurrency := cfg.Concurrency
	if cmd.Flags().Changed("concurrency") {
		concurrency = mustGetInt(cmd, "concurrency")
	}
	verbose := mustGetBool(cmd, "verbose")
	transitive := mustGetBool(cmd, "transitive")

	alg, err := fingerprint.ForName(algorithmName)
	if err != nil {
		return err
	}

	sourceDir, targetDir, err := resolveDirs(args[0], args[1])
	if err != nil {
		return err
	}

	// Set up context with signal handling for graceful cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal...")
		cancel()
	}()

	fmt.Printf("Scanning %s (algorithm: %s, threshold: %d)\n", sourceDir, alg.Name(), threshold)
	items, stats, err := scanner.Scan(ctx, sourceDir, alg, scanner.Options{
		Concurrency:  concurrency,
		Verbose:      verbose,
		ShowProgress: true,
	})
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	fmt.Printf("Hashed %d of %d eligible images (%d skipped)\n", stats.Hashed, stats.Eligible, stats.Skipped)

	if len(items) == 0 {
		fmt.Println("Nothing to do.")
		return nil
	}

	var groups []cluster.Group
	if transitive {
		groups = cluster.ClusterTransitive(items, alg, threshold)
	} else {
		groups = cluster.Cluster(items, alg, threshold)
	}

	duplicateGroups := 0
	for _, group := range groups {
		if len(group.Items) > 1 {
			duplicateGroups++
		}
	}
	fmt.Printf("Found %d groups, %d with duplicates\n", len(groups), duplicateGroups)

	if verbose {
		printGroups(groups)
	}

	moved := organizer.Move(groups, targetDir)
	fmt.Printf("\nMoved: %d files\n", moved.Moved)
	if moved.Failed > 0 {
		fmt.Printf("Failed: %d files (left in place)\n", moved.Failed)
	}
	return nil
}

// resolveDirs validates the source directory and prepares the target.
// Source and target resolving to the same directory is the one fatal
// configuration error: deduping a directory into itself would rename
// files while they are being scanned.
func resolveDirs(source, target string) (string, string, error) {
	sourceDir, err := filepath.Abs(source)
	if err != nil {
		return "", "", fmt.Errorf("invalid source directory: %w", err)
	}
	targetDir, err := filepath.Abs(target)
	if err != nil {
		return "", "", fmt.Errorf("invalid target directory: %w", err)
	}
	if sourceDir == targetDir {
		return "", "", fmt.Errorf("source and target are the same directory: %s", sourceDir)
	}

	info, err := os.Stat(sourceDir)
	if err != nil {
		return "", "", fmt.Errorf("cannot read source directory: %w", err)
	}
	if !info.IsDir() {
		return "", "", fmt.Errorf("source is not a directory: %s", sourceDir)
	}

	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", "", fmt.Errorf("cannot create target directory: %w", err)
	}
	return sourceDir, targetDir, nil
}

// printGroups lists every duplicate group with each member's similarity
// to the canonical anchor.
func printGroups(groups []cluster.Group) {
	for _, group := range groups {
		if len(group.Items) < 2 {
			continue
		}
		canonical := group.Canonical()
		fmt.Printf("\nGroup %s (%d members):\n", canonical.Fingerprint, len(group.Items))
		for _, member := range group.Items {
			fmt.Printf("  %s (%.2f)\n", member.Path, fingerprint.Score(canonical.Fingerprint, member.Fingerprint))
		}
	}
}
