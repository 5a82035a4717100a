package zpacker

import "sync"

// defaultScratchSize is the initial capacity of pooled scratch writers.
// 4KB avoids re-allocations for common payload sizes.
const defaultScratchSize = 4096

// scratchPool reuses growable writers for the envelope path and the
// two-pass lazy-range encoder. This reduces GC pressure by avoiding an
// allocation per top-level Serialize call.
var scratchPool = sync.Pool{
	New: func() any {
		return NewWriterSize(defaultScratchSize)
	},
}

func getScratch() *Writer {
	w := scratchPool.Get().(*Writer)
	w.Reset()
	return w
}

func putScratch(w *Writer) {
	scratchPool.Put(w)
}
