package config

import (
	"os"
	"strconv"
)

type Config struct {
	// Threshold is the Hamming distance below which two fingerprints
	// count as the same image.
	Threshold int
	// Algorithm names the signature algorithm: phash or dhash.
	Algorithm string
	// Concurrency is the number of parallel hashing workers.
	Concurrency int
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

// envString reads an environment variable, falling back to a default
// when unset or empty.
func envString(key, defaultVal string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return defaultVal
}

func Load() *Config {
	return &Config{
		Threshold:   envInt("DEDUPE_THRESHOLD", 8),
		Algorithm:   envString("DEDUPE_ALGORITHM", "phash"),
		Concurrency: envInt("DEDUPE_CONCURRENCY", 4),
	}
}
