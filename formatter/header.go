package formatter

import (
	"strconv"

	"github.com/philipp01105/nloggify/config"
	"github.com/philipp01105/nloggify/core"
)

// Header renders the header every sink receives:
//
//	"[" ts "] " ["[Thread " id [" (" name ")"] "] "] level ": "
//
// rec.Timestamp is used when set, otherwise rec.Time is formatted with
// config.DefaultTimestampFormat.
func Header(rec core.Record) string {
	buf := getBuffer()
	defer putBuffer(buf)

	buf.Write(AppendHeader(buf.AvailableBuffer(), rec))
	return buf.String()
}

// AppendHeader appends the header of rec to dst.
func AppendHeader(dst []byte, rec core.Record) []byte {
	dst = append(dst, '[')
	if rec.Timestamp != "" {
		dst = append(dst, rec.Timestamp...)
	} else {
		dst = rec.Time.AppendFormat(dst, config.DefaultTimestampFormat)
	}
	dst = append(dst, "] "...)

	if !rec.Thread.IsZero() {
		dst = append(dst, "[Thread "...)
		dst = strconv.AppendUint(dst, rec.Thread.ID, 10)
		if rec.Thread.Name != "" {
			dst = append(dst, " ("...)
			dst = append(dst, rec.Thread.Name...)
			dst = append(dst, ')')
		}
		dst = append(dst, "] "...)
	}

	dst = append(dst, rec.Level.String()...)
	return append(dst, ": "...)
}
