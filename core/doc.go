// Package core defines the shared types used across nloggify.
//
// Level is the ordered severity scale used for filtering. Record is the
// ephemeral value built for every accepted log call; it is passed by value
// and never retained after the sinks have rendered it.
//
// ThreadInfo identifies the goroutine that produced a record. Go does not
// expose goroutine identity, so the id is read from the runtime stack
// header. Names are optional and attached per goroutine with SetThreadName:
//
//	restore := core.SetThreadName("worker-1")
//	defer restore()
package core
