// Package sizedchunks is a facade over the container packages
// (bitmap, chunk, ringbuffer, sparsechunk, inlinearray, pool, fuzzinput),
// re-exporting the handful of top-level constructors a caller most often
// reaches for so a single import covers the common case. The underlying
// packages remain independently importable for anyone who wants only one
// container kernel.
//
// Four build tags select which of the optional pieces this facade carries,
// mirroring the way a no_std/no_alloc Rust crate strips optional cargo
// features:
//
//   - noringbuffer: drop the RingBuffer re-export.
//   - nopool: drop the pool re-export.
//   - nofuzzinput: drop the fuzzinput re-export.
//   - minimalstdlib: drop all three of the above at once, leaving only the
//     core container constructors (Bitmap, Chunk, SparseChunk, InlineArray).
//
// None of these tags affect the semantics of an operation that remains
// compiled in; they only select what is compiled at all.
package sizedchunks

import (
	"github.com/joeycumines/go-sizedchunks/bitmap"
	"github.com/joeycumines/go-sizedchunks/chunk"
	"github.com/joeycumines/go-sizedchunks/inlinearray"
	"github.com/joeycumines/go-sizedchunks/sparsechunk"
)

// NewBitmap constructs a Bitmap of n bits. See package bitmap.
func NewBitmap(n int) *bitmap.Bitmap { return bitmap.New(n) }

// NewChunk constructs a Chunk of capacity n. See package chunk.
func NewChunk[A any](n int) *chunk.Chunk[A] { return chunk.New[A](n) }

// NewSparseChunk constructs a SparseChunk of capacity n. See package
// sparsechunk.
func NewSparseChunk[A any](n int) *sparsechunk.SparseChunk[A] { return sparsechunk.New[A](n) }

// NewInlineArray constructs an InlineArray whose capacity is derived from
// Host. See package inlinearray.
func NewInlineArray[A, Host any]() *inlinearray.InlineArray[A, Host] {
	return inlinearray.New[A, Host]()
}
