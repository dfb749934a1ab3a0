package metrics

import "runtime"

// MemorySnapshot holds the heap figures logged after a dynamic programming
// run.
type MemorySnapshot struct {
	HeapAlloc   uint64 // bytes in use
	HeapObjects uint64 // allocated heap objects
	NumGC       uint32 // completed GC cycles
}

// ReadMemory reads the current heap statistics.
func ReadMemory() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:   m.HeapAlloc,
		HeapObjects: m.HeapObjects,
		NumGC:       m.NumGC,
	}
}
