package sink

import (
	"errors"
	"fmt"
	"strings"

	"github.com/philipp01105/nloggify/core"
)

// ErrClosed is returned by Write after the sink has been closed.
var ErrClosed = errors.New("sink closed")

// Sink accepts rendered records.
type Sink interface {
	// Write renders rec. header is the prefix computed by the dispatching
	// core; plain sinks write header+rec.Message.
	Write(rec core.Record, header string) error
	// Close releases any held resources. It is safe to call more than once.
	Close() error
}

// Kind identifies a class of sink. A builder accepts one sink per kind
// unless multiple sinks of the same kind are explicitly allowed.
type Kind uint8

const (
	Console Kind = iota
	Debug
	PlainTextFile
	JSONFile
)

var kindNames = [...]string{
	Console:       "console",
	Debug:         "debug",
	PlainTextFile: "plaintext",
	JSONFile:      "json",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind converts a kind name as used in settings files to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "console":
		return Console, nil
	case "debug":
		return Debug, nil
	case "plaintext", "plain", "text", "file":
		return PlainTextFile, nil
	case "json", "jsonfile":
		return JSONFile, nil
	default:
		return 0, fmt.Errorf("unknown sink kind: %q", s)
	}
}
