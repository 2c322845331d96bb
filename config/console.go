package config

import (
	"io"
	"maps"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/philipp01105/nloggify/core"
)

// DefaultColors maps each level to its console colour.
var DefaultColors = map[core.Level]color.Attribute{
	core.TraceLevel:    color.FgWhite,
	core.DebugLevel:    color.FgHiGreen,
	core.InfoLevel:     color.FgHiCyan,
	core.WarningLevel:  color.FgHiYellow,
	core.ErrorLevel:    color.FgYellow,
	core.CriticalLevel: color.FgHiRed,
	core.FatalLevel:    color.FgRed,
}

// ConsoleConfig configures the console sink.
type ConsoleConfig struct {
	Config

	writer    io.Writer
	useColors *bool
	colors    map[core.Level]color.Attribute
}

// NewConsole returns a ConsoleConfig with default core settings writing
// to os.Stdout with colours auto-detected.
func NewConsole() ConsoleConfig {
	return ConsoleFrom(New())
}

// ConsoleFrom returns a ConsoleConfig wrapping base.
func ConsoleFrom(base Config) ConsoleConfig {
	return ConsoleConfig{Config: base}
}

// Writer returns the console destination, os.Stdout by default.
func (c ConsoleConfig) Writer() io.Writer {
	if c.writer == nil {
		return os.Stdout
	}
	return c.writer
}

func (c *ConsoleConfig) SetWriter(w io.Writer) {
	c.writer = w
}

// UseColors returns the explicit colour setting, or whether the writer is
// a terminal when none was set.
func (c ConsoleConfig) UseColors() bool {
	if c.useColors != nil {
		return *c.useColors
	}
	f, ok := c.Writer().(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (c *ConsoleConfig) SetUseColors(use bool) {
	c.useColors = &use
}

// ColorFor returns the colour used for level.
func (c ConsoleConfig) ColorFor(level core.Level) color.Attribute {
	if attr, ok := c.colors[level]; ok {
		return attr
	}
	if attr, ok := DefaultColors[level]; ok {
		return attr
	}
	return color.Reset
}

// SetColor overrides the colour of a single level.
func (c *ConsoleConfig) SetColor(level core.Level, attr color.Attribute) {
	if c.colors == nil {
		c.colors = make(map[core.Level]color.Attribute, len(DefaultColors))
	}
	c.colors[level] = attr
}

// Clone returns a copy of c that shares no mutable state with it.
func (c ConsoleConfig) Clone() ConsoleConfig {
	out := c
	out.colors = maps.Clone(c.colors)
	if c.useColors != nil {
		v := *c.useColors
		out.useColors = &v
	}
	return out
}
