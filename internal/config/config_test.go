package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DEDUPE_THRESHOLD", "")
	t.Setenv("DEDUPE_ALGORITHM", "")
	t.Setenv("DEDUPE_CONCURRENCY", "")

	cfg := Load()
	if cfg.Threshold != 8 {
		t.Errorf("default threshold = %d; want 8", cfg.Threshold)
	}
	if cfg.Algorithm != "phash" {
		t.Errorf("default algorithm = %q; want phash", cfg.Algorithm)
	}
	if cfg.Concurrency != 4 {
		t.Errorf("default concurrency = %d; want 4", cfg.Concurrency)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DEDUPE_THRESHOLD", "12")
	t.Setenv("DEDUPE_ALGORITHM", "dhash")
	t.Setenv("DEDUPE_CONCURRENCY", "16")

	cfg := Load()
	if cfg.Threshold != 12 {
		t.Errorf("threshold = %d; want 12", cfg.Threshold)
	}
	if cfg.Algorithm != "dhash" {
		t.Errorf("algorithm = %q; want dhash", cfg.Algorithm)
	}
	if cfg.Concurrency != 16 {
		t.Errorf("concurrency = %d; want 16", cfg.Concurrency)
	}
}

func TestLoadIgnoresInvalidNumbers(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not a number", "abc"},
		{"negative", "-3"},
		{"zero", "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("DEDUPE_THRESHOLD", tc.value)
			if cfg := Load(); cfg.Threshold != 8 {
				t.Errorf("threshold = %d; want default 8", cfg.Threshold)
			}
		})
	}
}
