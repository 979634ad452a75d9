package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Workspace holds the directories fsviz writes to outside the scanned tree
type Workspace struct {
	RootPath    string
	ReportsPath string
	ExportsPath string
	ConfigPath  string
}

// New creates a new Workspace with XDG-compliant paths
func New() (*Workspace, error) {
	rootPath, rootErr := getDataRoot()
	configPath, configErr := getConfigPath()
	if rootErr != nil {
		return nil, fmt.Errorf("failed to determine data root: %w", rootErr)
	}
	if configErr != nil {
		return nil, fmt.Errorf("failed to determine config path: %w", configErr)
	}

	return &Workspace{
		RootPath:    rootPath,
		ReportsPath: filepath.Join(rootPath, "reports"),
		ExportsPath: filepath.Join(rootPath, "exports"),
		ConfigPath:  configPath,
	}, nil
}

// getDataRoot follows the XDG Base Directory specification on Unix and
// uses AppData on Windows
func getDataRoot() (string, error) {
	if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
		return filepath.Join(xdgDataHome, "fsviz"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "fsviz"), nil
	}

	return filepath.Join(homeDir, ".local", "share", "fsviz"), nil
}

func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "fsviz", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "fsviz-config", "config.yaml"), nil
	}

	return filepath.Join(homeDir, ".config", "fsviz", "config.yaml"), nil
}

// Initialize creates the workspace directories if they don't exist
func (w *Workspace) Initialize() error {
	for _, dir := range []string{w.RootPath, w.ReportsPath, w.ExportsPath} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// Exists checks if the workspace has been initialized
func (w *Workspace) Exists() bool {
	info, err := os.Stat(w.RootPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ReportPath returns a timestamped HTML report path for a scanned root,
// e.g. reports/photos-20231211-150405.html
func (w *Workspace) ReportPath(root string, at time.Time) string {
	name := fmt.Sprintf("%s-%s.html", Slug(filepath.Base(root)), at.Format("20060102-150405"))
	return filepath.Join(w.ReportsPath, name)
}

// ExportPath returns the path for an export file
func (w *Workspace) ExportPath(filename string) string {
	return filepath.Join(w.ExportsPath, filename)
}

// CleanReports removes every generated report
func (w *Workspace) CleanReports() (int, error) {
	entries, err := os.ReadDir(w.ReportsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read reports directory: %w", err)
	}

	removed := 0
	for _, entry := range entries {
		path := filepath.Join(w.ReportsPath, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			return removed, fmt.Errorf("failed to remove %s: %w", path, err)
		}
		removed++
	}
	return removed, nil
}

// Slug turns a directory name into something safe for a filename
func Slug(name string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash && b.Len() > 0:
			b.WriteByte('-')
			lastDash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "root"
	}
	return slug
}
