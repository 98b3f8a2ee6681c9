package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths resolves the directories used by the gradecli tools. Relative
// entries are resolved against the working directory.
type Paths struct {
	DataDir       string `yaml:"data_dir" envconfig:"DATA_DIR"`
	GradebooksDir string `yaml:"gradebooks_dir" envconfig:"GRADEBOOKS_DIR"`
	ReportsDir    string `yaml:"reports_dir" envconfig:"REPORTS_DIR"`
	LogsDir       string `yaml:"logs_dir" envconfig:"LOGS_DIR"`
}

// DefaultPaths returns the standard directory layout.
func DefaultPaths() Paths {
	return Paths{
		DataDir:       DefaultDataDir,
		GradebooksDir: DefaultGradebooksDir,
		ReportsDir:    DefaultReportsDir,
		LogsDir:       DefaultLogsDir,
	}
}

// withDefaults fills empty directories from the standard layout.
func (p Paths) withDefaults() Paths {
	def := DefaultPaths()
	if p.DataDir == "" {
		p.DataDir = def.DataDir
	}
	if p.GradebooksDir == "" {
		p.GradebooksDir = def.GradebooksDir
	}
	if p.ReportsDir == "" {
		p.ReportsDir = def.ReportsDir
	}
	if p.LogsDir == "" {
		p.LogsDir = def.LogsDir
	}
	return p
}

// EnsureDirectories creates all configured directories if missing.
func (p Paths) EnsureDirectories() error {
	for _, dir := range []string{p.DataDir, p.GradebooksDir, p.ReportsDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GetGradebookPath resolves a gradebook file name against the gradebooks
// directory. Absolute paths are returned unchanged.
func (p Paths) GetGradebookPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(p.GradebooksDir, name)
}

// GetReportPath resolves a report file name against the reports directory.
func (p Paths) GetReportPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(p.ReportsDir, name)
}

// GetLogPath resolves a log file name against the logs directory.
func (p Paths) GetLogPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(p.LogsDir, name)
}
