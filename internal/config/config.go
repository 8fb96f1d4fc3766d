package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	// Test executable and output settings
	Executable string
	OutputDir  string

	// Test selection
	Subsystem  string
	NameFilter string
	FilterEnv  string

	// Report settings
	Backends      []string
	StrictColumns bool
	NoOpen        bool

	// Reference images live at <repo>/<ReferenceDir>/<case>/<ReferenceImage>
	ReferenceDir   string
	ReferenceImage string

	// Directory the repository root search starts from, the working directory when empty
	SearchStart string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Directory     string
	ConfigFile    string
	NoOpen        bool
	StrictColumns bool
}

// File is the optional YAML configuration file
type File struct {
	Subsystem     string   `yaml:"subsystem,omitempty"`
	Backends      []string `yaml:"backends,omitempty"`
	ReferenceDir  string   `yaml:"reference_dir,omitempty"`
	FilterEnv     string   `yaml:"filter_env,omitempty"`
	StrictColumns bool     `yaml:"strict_columns,omitempty"`
}

// For mocking in tests
var osGetwd = os.Getwd

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		OutputDir:      DefaultOutputDir,
		Subsystem:      DefaultSubsystem,
		FilterEnv:      DefaultFilterEnv,
		ReferenceDir:   DefaultReferenceDir,
		ReferenceImage: DefaultReferenceImage,
	}
	// Copy default backends
	cfg.Backends = make([]string, len(DefaultBackends))
	copy(cfg.Backends, DefaultBackends)
	return cfg
}

// Load creates a config from defaults, the YAML file, the environment and flags
func Load(flags Flags) (*Config, error) {
	cfg := New()

	path, explicit := flags.ConfigFile, flags.ConfigFile != ""
	if !explicit {
		if wd, err := osGetwd(); err == nil {
			path = filepath.Join(wd, DefaultConfigFile)
		}
	}
	if path != "" {
		file, err := LoadFile(path)
		switch {
		case err == nil:
			cfg.Merge(file)
		case errors.Is(err, os.ErrNotExist) && !explicit:
			// the default config file is optional
		default:
			return nil, fmt.Errorf("error loading config from %s: %w", path, err)
		}
	}

	if err := loadEnvFile(); err != nil {
		return nil, err
	}
	cfg.NameFilter = os.Getenv(cfg.FilterEnv)

	cfg.Apply(flags)
	return cfg, nil
}

// LoadFile reads a YAML configuration file
func LoadFile(path string) (File, error) {
	var file File
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return File{}, fmt.Errorf("error unmarshalling YAML from %s: %w", path, err)
	}
	return file, nil
}

// Merge overrides defaults with the non-zero values of file
func (c *Config) Merge(file File) {
	if file.Subsystem != "" {
		c.Subsystem = file.Subsystem
	}
	if len(file.Backends) > 0 {
		c.Backends = append([]string(nil), file.Backends...)
	}
	if file.ReferenceDir != "" {
		c.ReferenceDir = file.ReferenceDir
	}
	if file.FilterEnv != "" {
		c.FilterEnv = file.FilterEnv
	}
	if file.StrictColumns {
		c.StrictColumns = true
	}
}

// Apply applies command flags on top of the loaded configuration
func (c *Config) Apply(flags Flags) {
	c.Flags = flags
	if flags.Directory != "" {
		c.OutputDir = flags.Directory
	}
	if flags.NoOpen {
		c.NoOpen = true
	}
	if flags.StrictColumns {
		c.StrictColumns = true
	}
}

// loadEnvFile loads .env from the working directory; variables already set win
func loadEnvFile() error {
	wd, err := osGetwd()
	if err != nil {
		return nil
	}
	path := filepath.Join(wd, DefaultEnvFile)
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("error loading %s: %w", path, err)
	}
	return nil
}

// GetRunDir returns the run directory under the output root
func (c *Config) GetRunDir() string {
	p := filepath.Join(c.OutputDir, DefaultRunsDir)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetListPath returns the path of the XML test listing
func (c *Config) GetListPath() string {
	return filepath.Join(c.GetRunDir(), DefaultListFile)
}

// GetReportPath returns the path of the HTML report
func (c *Config) GetReportPath() string {
	return filepath.Join(c.GetRunDir(), DefaultReportFile)
}

// GetManifestPath returns the path of the JSON run manifest
func (c *Config) GetManifestPath() string {
	return filepath.Join(c.GetRunDir(), DefaultManifestFile)
}

// GetCaseDir returns the working directory of a test case
func (c *Config) GetCaseDir(testCase string) string {
	return filepath.Join(c.GetRunDir(), testCase)
}

// GetReferencePath returns the reference image of a test case under repoRoot
func (c *Config) GetReferencePath(repoRoot, testCase string) string {
	return filepath.Join(repoRoot, c.ReferenceDir, testCase, c.ReferenceImage)
}

// GetSearchStart returns the directory the repository root search starts from
func (c *Config) GetSearchStart() (string, error) {
	if c.SearchStart != "" {
		return c.SearchStart, nil
	}
	return osGetwd()
}
