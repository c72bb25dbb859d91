//go:build !noringbuffer && !minimalstdlib

package sizedchunks

import "github.com/joeycumines/go-sizedchunks/ringbuffer"

// NewRingBuffer constructs a RingBuffer of capacity n. See package
// ringbuffer. Compiled out under the noringbuffer or minimalstdlib build
// tags.
func NewRingBuffer[A any](n int) *ringbuffer.RingBuffer[A] { return ringbuffer.New[A](n) }
