//go:build minimalstdlib

package sizedchunks

// Under minimalstdlib, the facade carries only the core container
// constructors declared in doc.go (Bitmap, Chunk, SparseChunk,
// InlineArray); RingBuffer, pool, and fuzzinput are all compiled out
// regardless of the noringbuffer/nopool/nofuzzinput tags' individual
// settings, since minimalstdlib implies all three.
