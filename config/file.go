package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultDirectory is where file sinks write when no directory is set.
	DefaultDirectory = "./logs"
	// DefaultFileNamePrefix starts every log file name.
	DefaultFileNamePrefix = "log"
)

// ErrInvalidPath is returned for directory paths that cannot be used.
var ErrInvalidPath = errors.New("invalid path")

// FileConfig configures the plain text and JSON file sinks.
type FileConfig struct {
	Config

	directory string
	prefix    string
}

// NewFile returns a FileConfig with default core settings writing to
// DefaultDirectory.
func NewFile() FileConfig {
	return FileConfig{
		Config:    New(),
		directory: DefaultDirectory,
		prefix:    DefaultFileNamePrefix,
	}
}

// FileFrom returns a FileConfig wrapping base with the default directory
// and prefix.
func FileFrom(base Config) FileConfig {
	fc := NewFile()
	fc.Config = base
	return fc
}

func (c FileConfig) Directory() string {
	if c.directory == "" {
		return DefaultDirectory
	}
	return c.directory
}

func (c FileConfig) FileNamePrefix() string {
	if c.prefix == "" {
		return DefaultFileNamePrefix
	}
	return c.prefix
}

// SetDirectory validates path and stores it. The directory itself is only
// created by EnsureDirectory.
func (c *FileConfig) SetDirectory(path string) error {
	if err := ValidateDirectory(path); err != nil {
		return err
	}
	c.directory = path
	return nil
}

// SetFileNamePrefix sets the prefix of generated file names. An empty
// prefix restores DefaultFileNamePrefix.
func (c *FileConfig) SetFileNamePrefix(prefix string) {
	c.prefix = prefix
}

// EnsureDirectory creates the configured directory and any parents.
func (c FileConfig) EnsureDirectory() error {
	dir := c.Directory()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create log directory %s: %w", dir, err)
	}
	return nil
}

// FilePath returns the path of the log file for a sink created at now,
// in the form <dir>/<prefix>_<timestamp><ext>.
func (c FileConfig) FilePath(now time.Time, ext string) string {
	name := c.FileNamePrefix() + "_" + now.Format(c.TimestampFormat())
	return filepath.Join(c.Directory(), SanitizeFileName(name)+ext)
}

// ValidateDirectory rejects paths that are empty, contain NUL bytes, or
// cannot be made absolute.
func ValidateDirectory(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: directory is empty", ErrInvalidPath)
	}
	if strings.ContainsRune(path, 0) {
		return fmt.Errorf("%w: %q contains a NUL byte", ErrInvalidPath, path)
	}
	if _, err := filepath.Abs(path); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidPath, path, err)
	}
	return nil
}

// SanitizeFileName replaces characters that are invalid in file names on
// common platforms with '_'.
func SanitizeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || strings.ContainsRune(`<>:"/\|?*`, r) {
			return '_'
		}
		return r
	}, name)
}

// Clone returns an independent copy of c.
func (c FileConfig) Clone() FileConfig {
	return c
}
