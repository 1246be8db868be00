package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cleanup-discogs/internal/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Error("exists = true for a missing file")
	}
	if resolved != path {
		t.Errorf("resolved path = %q, want %q", resolved, path)
	}
	if !cfg.Checks.ASIN || !cfg.Checks.ReportAll {
		t.Error("default checks not applied")
	}
	if cfg.Checks.Month || cfg.Checks.Year || cfg.Checks.Credits {
		t.Error("opt-in checks should default off")
	}
	if cfg.Policy.MinPlausibleYear != 1900 {
		t.Errorf("min_plausible_year = %d, want 1900", cfg.Policy.MinPlausibleYear)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Errorf("logging defaults = %+v", cfg.Logging)
	}
}

func TestLoadOverridesMergeWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `
[checks]
month = true
isrc = false

[policy]
year_tolerance = 3
min_plausible_year = 1950

[logging]
format = "JSON"
level = "Debug"
`)

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("exists = false for a present file")
	}
	if !cfg.Checks.Month {
		t.Error("month override not applied")
	}
	if cfg.Checks.ISRC {
		t.Error("isrc override not applied")
	}
	if !cfg.Checks.ASIN {
		t.Error("untouched checks should keep their defaults")
	}
	if cfg.Policy.YearTolerance != 3 || cfg.Policy.MinPlausibleYear != 1950 {
		t.Errorf("policy = %+v", cfg.Policy)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Errorf("logging not normalized: %+v", cfg.Logging)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errText string
	}{
		{
			name:    "credits without vocabulary",
			content: "[checks]\ncredits = true\n",
			errText: "credits_file",
		},
		{
			name:    "negative tolerance",
			content: "[policy]\nyear_tolerance = -1\n",
			errText: "year_tolerance",
		},
		{
			name:    "future plausibility floor",
			content: "[policy]\nmin_plausible_year = 3000\n",
			errText: "min_plausible_year",
		},
		{
			name:    "malformed toml",
			content: "checks = [broken",
			errText: "parse config",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			writeFile(t, path, tc.content)

			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.errText) {
				t.Fatalf("error %q does not mention %q", err, tc.errText)
			}
		})
	}
}

func TestLoadExpandsCreditsFile(t *testing.T) {
	dir := t.TempDir()
	credits := filepath.Join(dir, "credits.txt")
	writeFile(t, credits, "Producer\n")

	path := filepath.Join(dir, "config.toml")
	writeFile(t, path, "[checks]\ncredits = true\n\n[policy]\ncredits_file = \""+credits+"\"\n")

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Policy.CreditsFile != credits {
		t.Errorf("credits_file = %q, want %q", cfg.Policy.CreditsFile, credits)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load of sample returned error: %v", err)
	}
	if !exists {
		t.Fatal("sample config not found after creation")
	}
	if !cfg.Checks.SPARS || cfg.Checks.Month {
		t.Errorf("sample should document the defaults, got checks %+v", cfg.Checks)
	}
}

func TestLoadCredits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credits.txt")
	writeFile(t, path, "# vocabulary\nProducer\n\nMixed By\n  Guitar  \n")

	roles, err := config.LoadCredits(path)
	if err != nil {
		t.Fatalf("LoadCredits returned error: %v", err)
	}
	want := []string{"Producer", "Mixed By", "Guitar"}
	if len(roles) != len(want) {
		t.Fatalf("got %d roles, want %d: %v", len(roles), len(want), roles)
	}
	for _, role := range want {
		if _, ok := roles[role]; !ok {
			t.Errorf("missing role %q", role)
		}
	}
}

func TestLoadCreditsMissingFile(t *testing.T) {
	if _, err := config.LoadCredits(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatal("expected an error for a missing credits file")
	}
}
