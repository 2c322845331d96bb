package formatter

import (
	"bytes"
	"io"

	"github.com/philipp01105/nloggify/core"
)

// TextFormatter writes "<header><message>\n".
type TextFormatter struct{}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format formats a record as text
func (f *TextFormatter) Format(rec core.Record, header string) ([]byte, error) {
	out := make([]byte, 0, len(header)+len(rec.Message)+1)
	out = append(out, header...)
	out = append(out, rec.Message...)
	return append(out, '\n'), nil
}

// FormatTo formats a record and writes it directly to the writer
func (f *TextFormatter) FormatTo(rec core.Record, header string, w io.Writer) error {
	buf := getBuffer()
	_ = f.FormatRecord(rec, header, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatRecord writes the formatted record into buf.
func (f *TextFormatter) FormatRecord(rec core.Record, header string, buf *bytes.Buffer) error {
	buf.WriteString(header)
	buf.WriteString(rec.Message)
	buf.WriteByte('\n')
	return nil
}
