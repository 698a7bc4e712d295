package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "photo-dedupe",
	Short: "A CLI tool for finding and consolidating near-duplicate images",
	Long: `Photo Dedupe scans a directory for images, fingerprints them with a
DCT-based perceptual hash, groups visually identical files (re-encodes,
resizes, minor edits) and moves each group into a target directory under
deterministic fingerprint-derived names.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}
