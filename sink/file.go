package sink

import (
	"fmt"
	"os"
	"time"

	"github.com/philipp01105/nloggify/config"
	"github.com/philipp01105/nloggify/core"
	"github.com/philipp01105/nloggify/formatter"
)

// File extensions of the built-in file sinks.
const (
	PlainTextExt = ".log"
	JSONExt      = ".json"
)

// FileSink appends formatted records to a file it owns.
type FileSink struct {
	writerBase
	path string
	file *os.File
}

// NewPlainTextFile creates a sink writing "<header><message>" lines to
// <dir>/<prefix>_<timestamp>.log.
func NewPlainTextFile(cfg config.FileConfig) (*FileSink, error) {
	return NewFile(cfg, formatter.NewTextFormatter(), PlainTextExt)
}

// NewJSONFile creates a sink writing one JSON object per line to
// <dir>/<prefix>_<timestamp>.json.
func NewJSONFile(cfg config.FileConfig) (*FileSink, error) {
	return NewFile(cfg, formatter.NewJSONFormatter(), JSONExt)
}

// NewFile creates the configured directory and opens the sink's file in
// append mode.
func NewFile(cfg config.FileConfig, f formatter.Formatter, ext string) (*FileSink, error) {
	if err := cfg.EnsureDirectory(); err != nil {
		return nil, err
	}

	path := cfg.FilePath(time.Now(), ext)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	s := &FileSink{path: path, file: file}
	initWriterBase(&s.writerBase, file, f)
	return s, nil
}

// Path returns the file the sink writes to.
func (s *FileSink) Path() string {
	return s.path
}

func (s *FileSink) Write(rec core.Record, header string) error {
	return s.write(rec, header)
}

// Close syncs and closes the file.
func (s *FileSink) Close() error {
	if !s.markClosed() {
		return nil
	}
	syncErr := s.file.Sync()
	if err := s.file.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	return syncErr
}
