package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Checks holds the per-check toggles. Key names follow the categories used
// in reports.
type Checks struct {
	ASIN            bool `toml:"asin"`
	CDG             bool `toml:"cdg"`
	CreativeCommons bool `toml:"creative_commons"`
	Credits         bool `toml:"credits"`
	CzechDates      bool `toml:"manufacturing_date_cs"`
	CzechSpelling   bool `toml:"spelling_cs"`
	Deposito        bool `toml:"deposito"`
	GreekLicense    bool `toml:"greek_license_number"`
	HTML            bool `toml:"html"`
	ISRC            bool `toml:"isrc"`
	LabelCode       bool `toml:"label_code"`
	LabelName       bool `toml:"label_name"`
	Labels          bool `toml:"labels"`
	MasteringSID    bool `toml:"mastering_sid"`
	Matrix          bool `toml:"matrix"`
	Month           bool `toml:"month"`
	MouldSID        bool `toml:"mould_sid"`
	PKD             bool `toml:"pkd"`
	Plants          bool `toml:"plants"`
	ReportAll       bool `toml:"reportall"`
	RightsSociety   bool `toml:"rights_society"`
	SPARS           bool `toml:"spars"`
	Tracklisting    bool `toml:"tracklisting"`
	Year            bool `toml:"year"`
}

// Policy holds the year comparison knobs and the credits vocabulary path.
type Policy struct {
	// CreditsFile points at a newline separated list of valid role names.
	// Required when checks.credits is enabled.
	CreditsFile string `toml:"credits_file"`
	// MinPlausibleYear is the earliest year any embedded date may carry.
	MinPlausibleYear int `toml:"min_plausible_year"`
	// YearTolerance flags embedded years preceding the release by more than
	// this many years; 0 disables the gap check.
	YearTolerance int `toml:"year_tolerance"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for the scanner.
type Config struct {
	Checks  Checks  `toml:"checks"`
	Policy  Policy  `toml:"policy"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/cleanup-discogs/config.toml")
}

// Load locates, parses, and validates a configuration file. A missing file
// is not an error; defaults apply. The returned path is where the file was
// found (or would be), exists reports whether it was read.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("cleanup-discogs.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
