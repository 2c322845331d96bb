package formatter

import (
	"bytes"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/nloggify/config"
	"github.com/philipp01105/nloggify/core"
)

// JSONFormatter writes one JSON object per record:
// {"header":{"timestamp":..,"level":..,"threadInfo":{..}},"message":..}
type JSONFormatter struct {
	enc zapcore.Encoder
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	// No entry-level keys: header and message are added as fields so they
	// keep their order in the output.
	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		LineEnding: zapcore.DefaultLineEnding,
	})
	return &JSONFormatter{enc: enc}
}

// Format formats a record as JSON. The header argument is ignored; the
// JSON header is built from the record fields.
func (f *JSONFormatter) Format(rec core.Record, _ string) ([]byte, error) {
	buf, err := f.encode(rec)
	if err != nil {
		return nil, err
	}
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	buf.Free()
	return out, nil
}

// FormatTo formats a record and writes it directly to the writer
func (f *JSONFormatter) FormatTo(rec core.Record, _ string, w io.Writer) error {
	buf, err := f.encode(rec)
	if err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	buf.Free()
	return err
}

// FormatRecord writes the JSON line into buf.
func (f *JSONFormatter) FormatRecord(rec core.Record, _ string, buf *bytes.Buffer) error {
	out, err := f.encode(rec)
	if err != nil {
		return err
	}
	buf.Write(out.Bytes())
	out.Free()
	return nil
}

func (f *JSONFormatter) encode(rec core.Record) (*buffer.Buffer, error) {
	return f.enc.EncodeEntry(zapcore.Entry{}, []zapcore.Field{
		zap.Object("header", jsonHeader(rec)),
		zap.String("message", rec.Message),
	})
}

type jsonHeader core.Record

func (h jsonHeader) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	ts := h.Timestamp
	if ts == "" {
		ts = h.Time.Format(config.DefaultTimestampFormat)
	}
	enc.AddString("timestamp", ts)
	enc.AddString("level", h.Level.String())
	if !h.Thread.IsZero() {
		return enc.AddObject("threadInfo", jsonThread(h.Thread))
	}
	return nil
}

type jsonThread core.ThreadInfo

func (t jsonThread) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint64("threadId", t.ID)
	if t.Name != "" {
		enc.AddString("threadName", t.Name)
	}
	return nil
}
