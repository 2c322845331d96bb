package core

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
)

// ThreadInfo identifies the goroutine that emitted a record.
// The zero value means "no thread info".
type ThreadInfo struct {
	ID   uint64
	Name string
}

// IsZero reports whether no thread information was captured.
func (t ThreadInfo) IsZero() bool {
	return t.ID == 0
}

var (
	threadNames sync.Map // uint64 -> string

	goroutinePrefix = []byte("goroutine ")
)

// CurrentThread returns the id and optional name of the calling goroutine.
func CurrentThread() ThreadInfo {
	id := goroutineID()
	info := ThreadInfo{ID: id}
	if name, ok := threadNames.Load(id); ok {
		info.Name = name.(string)
	}
	return info
}

// SetThreadName names the calling goroutine for subsequent records.
// The returned func restores the previous name and must be called before
// the goroutine exits, otherwise the entry outlives it.
func SetThreadName(name string) (restore func()) {
	id := goroutineID()
	prev, hadPrev := threadNames.Load(id)
	if name == "" {
		threadNames.Delete(id)
	} else {
		threadNames.Store(id, name)
	}
	return func() {
		if hadPrev {
			threadNames.Store(id, prev)
			return
		}
		threadNames.Delete(id)
	}
}

// goroutineID parses the id out of the "goroutine N [status]:" stack header.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := bytes.TrimPrefix(buf[:n], goroutinePrefix)
	if i := bytes.IndexByte(b, ' '); i > 0 {
		b = b[:i]
	}
	id, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
