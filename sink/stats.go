package sink

import (
	"sync/atomic"

	"github.com/philipp01105/nloggify/core"
)

const numLevels = int(core.FatalLevel) + 1

// Stats counts records per level that reached a sink (Written) or were
// lost to a write error or panic (Dropped).
type Stats struct {
	written [numLevels]atomic.Uint64
	dropped [numLevels]atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementWritten atomically increments the written counter for a level
func (s *Stats) IncrementWritten(level core.Level) {
	if level.Valid() {
		s.written[level].Add(1)
	}
}

// IncrementDropped atomically increments the dropped counter for a level
func (s *Stats) IncrementDropped(level core.Level) {
	if level.Valid() {
		s.dropped[level].Add(1)
	}
}

// GetWritten returns the written count for a level
func (s *Stats) GetWritten(level core.Level) uint64 {
	if !level.Valid() {
		return 0
	}
	return s.written[level].Load()
}

// GetDropped returns the dropped count for a level
func (s *Stats) GetDropped(level core.Level) uint64 {
	if !level.Valid() {
		return 0
	}
	return s.dropped[level].Load()
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.written {
		s.written[i].Store(0)
		s.dropped[i].Store(0)
	}
}

// Snapshot is a point-in-time copy of Stats.
type Snapshot struct {
	Written      map[core.Level]uint64
	Dropped      map[core.Level]uint64
	WrittenTotal uint64
	DroppedTotal uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Written: make(map[core.Level]uint64, numLevels),
		Dropped: make(map[core.Level]uint64, numLevels),
	}
	for _, lvl := range core.Levels() {
		w, d := s.GetWritten(lvl), s.GetDropped(lvl)
		snap.Written[lvl] = w
		snap.Dropped[lvl] = d
		snap.WrittenTotal += w
		snap.DroppedTotal += d
	}
	return snap
}

// Add merges other into snap.
func (snap *Snapshot) Add(other Snapshot) {
	if snap.Written == nil {
		snap.Written = make(map[core.Level]uint64, numLevels)
		snap.Dropped = make(map[core.Level]uint64, numLevels)
	}
	for lvl, n := range other.Written {
		snap.Written[lvl] += n
	}
	for lvl, n := range other.Dropped {
		snap.Dropped[lvl] += n
	}
	snap.WrittenTotal += other.WrittenTotal
	snap.DroppedTotal += other.DroppedTotal
}
