//go:build !nopool && !minimalstdlib

package sizedchunks

import "github.com/joeycumines/go-sizedchunks/pool"

// NewPool constructs a pool.Pool for container type T. See package pool.
// Compiled out under the nopool or minimalstdlib build tags.
func NewPool[T pool.Resettable](newItem func() T) *pool.Pool[T] { return pool.New(newItem) }
