package sink

import (
	"bytes"
	"io"

	"github.com/fatih/color"

	"github.com/philipp01105/nloggify/config"
	"github.com/philipp01105/nloggify/core"
)

// ConsoleSink writes text lines to the configured console writer,
// wrapping each line in its level colour when colours are enabled.
type ConsoleSink struct {
	writerBase
	colors []*color.Color // indexed by level; nil when colours are off
}

// NewConsole creates a console sink from cfg.
func NewConsole(cfg config.ConsoleConfig) *ConsoleSink {
	s := &ConsoleSink{}
	initWriterBase(&s.writerBase, cfg.Writer(), nil)

	if cfg.UseColors() {
		levels := core.Levels()
		s.colors = make([]*color.Color, len(levels))
		for _, lvl := range levels {
			c := color.New(cfg.ColorFor(lvl))
			c.EnableColor()
			s.colors[lvl] = c
		}
	}
	return s
}

func (s *ConsoleSink) Write(rec core.Record, header string) error {
	c := s.colorFor(rec.Level)
	if c == nil {
		return s.write(rec, header)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if err := s.format(rec, header); err != nil {
		return err
	}
	line := bytes.TrimSuffix(s.syncBuf.Bytes(), []byte{'\n'})
	_, err := io.WriteString(s.writer, c.Sprint(string(line))+"\n")
	return err
}

func (s *ConsoleSink) Close() error {
	s.markClosed()
	return nil
}

func (s *ConsoleSink) colorFor(level core.Level) *color.Color {
	if s.colors == nil || !level.Valid() {
		return nil
	}
	return s.colors[level]
}
