package ecies

import (
	"sync"
)

// bufferPool holds byte slices reused for envelope assembly to reduce
// allocations on the encrypt path.
var bufferPool = sync.Pool{
	New: func() any {
		buf := make([]byte, 0, 1024)
		return &buf
	},
}

// getBuffer retrieves a zero-length buffer with at least the specified
// capacity. Return it with putBuffer after use.
func getBuffer(minCapacity int) []byte {
	bufPtr := bufferPool.Get().(*[]byte)
	buf := *bufPtr

	if cap(buf) < minCapacity {
		buf = make([]byte, 0, minCapacity)
	}
	return buf[:0]
}

// putBuffer returns a buffer to the pool. The buffer must not be used after
// this call.
func putBuffer(buf []byte) {
	// Keep very large buffers out of the pool
	const maxPooledBufferSize = 64 * 1024

	if cap(buf) <= maxPooledBufferSize {
		buf = buf[:0]
		bufferPool.Put(&buf)
	}
}
