// Package formatter renders records into the bytes a sink writes.
//
// Every record a sink receives comes with a header built by Header:
//
//	[2025-02-25 16:05:38] [Thread 17 (worker)] Warning:
//
// The thread tag is present only when the dispatching core captured
// thread info. TextFormatter writes header, message and a newline.
// JSONFormatter writes one JSON object per line using zap's encoder:
//
//	{"header":{"timestamp":"...","level":"Warning","threadInfo":{"threadId":17,"threadName":"worker"}},"message":"..."}
//
// Formatters implement Formatter and, where cheaper, WriterFormatter and
// BufferFormatter. Sinks check for the optional interfaces once at
// construction. Pooled buffers larger than 64 KiB are not returned to the
// pool.
package formatter
