package sink

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/philipp01105/nloggify/core"
	"github.com/philipp01105/nloggify/formatter"
)

// writerBase formats records into an owned buffer and writes them to w
// under mu, one Write call per record.
type writerBase struct {
	writer          io.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	writerFormatter formatter.WriterFormatter
	mu              sync.Mutex // protects syncBuf, writer and closed
	syncBuf         bytes.Buffer
	closed          bool
}

func initWriterBase(b *writerBase, w io.Writer, f formatter.Formatter) {
	if f == nil {
		f = formatter.NewTextFormatter()
	}
	b.writer = w
	b.formatter = f
	if bf, ok := f.(formatter.BufferFormatter); ok {
		b.bufferFormatter = bf
	} else if wf, ok := f.(formatter.WriterFormatter); ok {
		b.writerFormatter = wf
	}
}

// format renders rec into syncBuf. Callers hold mu.
func (b *writerBase) format(rec core.Record, header string) error {
	b.syncBuf.Reset()
	if b.bufferFormatter != nil {
		return b.bufferFormatter.FormatRecord(rec, header, &b.syncBuf)
	}
	if b.writerFormatter != nil {
		return b.writerFormatter.FormatTo(rec, header, &b.syncBuf)
	}
	data, err := b.formatter.Format(rec, header)
	if err != nil {
		return err
	}
	b.syncBuf.Write(data)
	return nil
}

func (b *writerBase) write(rec core.Record, header string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrClosed
	}
	if err := b.format(rec, header); err != nil {
		return err
	}
	_, err := b.writer.Write(b.syncBuf.Bytes())
	return err
}

// markClosed reports whether this call closed the sink.
func (b *writerBase) markClosed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return false
	}
	b.closed = true
	return true
}

// Writer is a sink writing formatted records to an io.Writer it does not
// own. Close stops further writes but leaves the io.Writer open.
type Writer struct {
	writerBase
}

// NewWriter creates a sink writing to w with f (TextFormatter when nil).
func NewWriter(w io.Writer, f formatter.Formatter) *Writer {
	s := &Writer{}
	initWriterBase(&s.writerBase, w, f)
	return s
}

// NewDebug creates the debug stream sink. It writes text lines to w, or to
// os.Stderr when w is nil.
func NewDebug(w io.Writer) *Writer {
	if w == nil {
		w = os.Stderr
	}
	return NewWriter(w, formatter.NewTextFormatter())
}

func (s *Writer) Write(rec core.Record, header string) error {
	return s.write(rec, header)
}

func (s *Writer) Close() error {
	s.markClosed()
	return nil
}
