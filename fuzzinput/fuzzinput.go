// Package fuzzinput implements constructors that build each container type
// from a byte-stream consumer, yielding up to the container's capacity and
// truncating (never panicking) once the stream runs dry — exactly the
// access pattern a fuzzer's corpus-to-value conversion needs, in the style
// of a Rust arbitrary.rs byte-driven construction and of catrate's own use
// of math/rand (ring_test.go) to drive property-style exercises.
package fuzzinput

import (
	"math/rand"

	"github.com/joeycumines/go-sizedchunks/chunk"
	"github.com/joeycumines/go-sizedchunks/inlinearray"
	"github.com/joeycumines/go-sizedchunks/ringbuffer"
	"github.com/joeycumines/go-sizedchunks/sparsechunk"
)

// Source yields values one at a time, reporting false once exhausted. It is
// the consumer-facing shape every Fill* constructor below pulls from.
type Source[A any] interface {
	Next() (A, bool)
}

// RandSource is a Source backed by math/rand, generating values with gen
// until it has produced exactly limit of them. A negative limit means
// unbounded (the Fill* constructors below always cap at the container's
// capacity regardless).
type RandSource[A any] struct {
	Rand  *rand.Rand
	Gen   func(r *rand.Rand) A
	limit int
	count int
}

// NewRandSource returns a RandSource that produces at most limit values
// using gen, drawing randomness from r.
func NewRandSource[A any](r *rand.Rand, limit int, gen func(r *rand.Rand) A) *RandSource[A] {
	return &RandSource[A]{Rand: r, Gen: gen, limit: limit}
}

// Next implements Source.
func (s *RandSource[A]) Next() (A, bool) {
	if s.limit >= 0 && s.count >= s.limit {
		var zero A
		return zero, false
	}
	s.count++
	return s.Gen(s.Rand), true
}

// ByteSource is a Source that decodes values out of a flat byte buffer,
// consuming a fixed stride per value and reporting exhaustion once fewer
// than stride bytes remain — the byte-stream consumer shape a fuzz harness
// needs to turn raw corpus bytes into values.
type ByteSource[A any] struct {
	buf    []byte
	pos    int
	stride int
	decode func([]byte) A
}

// NewByteSource returns a ByteSource that decodes values of the given
// stride (in bytes) out of buf using decode.
func NewByteSource[A any](buf []byte, stride int, decode func([]byte) A) *ByteSource[A] {
	return &ByteSource[A]{buf: buf, stride: stride, decode: decode}
}

// Next implements Source.
func (s *ByteSource[A]) Next() (A, bool) {
	if s.stride <= 0 || s.pos+s.stride > len(s.buf) {
		var zero A
		return zero, false
	}
	v := s.decode(s.buf[s.pos : s.pos+s.stride])
	s.pos += s.stride
	return v, true
}

// FillChunk builds a Chunk of capacity n, pulling from src until it either
// exhausts or n values have been taken — never panicking regardless of how
// many values src could have produced.
func FillChunk[A any](n int, src Source[A]) *chunk.Chunk[A] {
	c := chunk.New[A](n)
	for i := 0; i < n; i++ {
		v, ok := src.Next()
		if !ok {
			break
		}
		c.PushBack(v)
	}
	return c
}

// FillRingBuffer builds a RingBuffer of capacity n from src, same
// truncation rule as FillChunk.
func FillRingBuffer[A any](n int, src Source[A]) *ringbuffer.RingBuffer[A] {
	r := ringbuffer.New[A](n)
	for i := 0; i < n; i++ {
		v, ok := src.Next()
		if !ok {
			break
		}
		r.PushBack(v)
	}
	return r
}

// FillSparseChunk builds a SparseChunk of capacity n, inserting at
// successive indices starting from 0 until src is exhausted or n values
// have been placed.
func FillSparseChunk[A any](n int, src Source[A]) *sparsechunk.SparseChunk[A] {
	c := sparsechunk.New[A](n)
	for i := 0; i < n; i++ {
		v, ok := src.Next()
		if !ok {
			break
		}
		c.Insert(i, v)
	}
	return c
}

// FillInlineArray builds an InlineArray whose capacity is derived from Host
// and A, from src, same truncation rule as FillChunk.
func FillInlineArray[A, Host any](src Source[A]) *inlinearray.InlineArray[A, Host] {
	a := inlinearray.New[A, Host]()
	for !a.IsFull() {
		v, ok := src.Next()
		if !ok {
			break
		}
		a.Push(v)
	}
	return a
}
