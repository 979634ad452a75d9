package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Scan Settings
	DefaultRoot       string `yaml:"default_root"`
	AllowUnknownOwner bool   `yaml:"allow_unknown_owner"`

	// Export
	ExportFormat   string `yaml:"export_format"`
	ExportFilename string `yaml:"export_filename"`

	// Time Series
	TimelineGranularity string `yaml:"timeline_granularity"`
	HistoryField        string `yaml:"history_field"`
	UseUTC              bool   `yaml:"use_utc"`

	// Chart Settings
	HistogramBins int    `yaml:"histogram_bins"`
	ChartWidth    int    `yaml:"chart_width"`
	ChartHeight   int    `yaml:"chart_height"`
	ChartTheme    string `yaml:"chart_theme"`
	OpenCharts    bool   `yaml:"open_charts"`

	// UI Settings
	ColorTheme string `yaml:"color_theme"`
	TopTypes   int    `yaml:"top_types"`
	Editor     string `yaml:"editor"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		DefaultRoot:         ".",
		AllowUnknownOwner:   false,
		ExportFormat:        "csv",
		ExportFilename:      "file_metadata.csv",
		TimelineGranularity: "day",
		HistoryField:        "accessed",
		UseUTC:              false,
		HistogramBins:       20,
		ChartWidth:          1200,
		ChartHeight:         600,
		ChartTheme:          "white",
		OpenCharts:          false,
		ColorTheme:          "auto",
		TopTypes:            10,
		Editor:              "",
	}
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	// Start with default config
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// A missing file means defaults
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults restores essential values that were blanked or set to
// something unusable in the file
func (c *Config) applyDefaults() {
	def := DefaultConfig()

	if c.DefaultRoot == "" {
		c.DefaultRoot = def.DefaultRoot
	}
	if c.ExportFilename == "" {
		c.ExportFilename = def.ExportFilename
	}
	if c.HistogramBins <= 0 {
		c.HistogramBins = def.HistogramBins
	}
	if c.ChartWidth <= 0 {
		c.ChartWidth = def.ChartWidth
	}
	if c.ChartHeight <= 0 {
		c.ChartHeight = def.ChartHeight
	}
	if c.ChartTheme == "" {
		c.ChartTheme = def.ChartTheme
	}
	if c.ColorTheme == "" {
		c.ColorTheme = def.ColorTheme
	}
	if c.TopTypes <= 0 {
		c.TopTypes = def.TopTypes
	}

	if !isOneOf(c.ExportFormat, ExportFormats()) {
		c.ExportFormat = def.ExportFormat
	}
	if !isOneOf(c.TimelineGranularity, []string{"year", "month", "day"}) {
		c.TimelineGranularity = def.TimelineGranularity
	}
	if !isOneOf(c.HistoryField, []string{"modified", "accessed", "created"}) {
		c.HistoryField = def.HistoryField
	}
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ExportFormats lists the accepted values for export_format
func ExportFormats() []string {
	return []string{"csv", "json", "yaml"}
}

func isOneOf(value string, valid []string) bool {
	for _, v := range valid {
		if value == v {
			return true
		}
	}
	return false
}
