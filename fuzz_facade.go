//go:build !nofuzzinput && !minimalstdlib

package sizedchunks

import (
	"math/rand"

	"github.com/joeycumines/go-sizedchunks/fuzzinput"
)

// NewRandSource constructs a fuzzinput.RandSource. See package fuzzinput.
// Compiled out under the nofuzzinput or minimalstdlib build tags.
func NewRandSource[A any](r *rand.Rand, limit int, gen func(r *rand.Rand) A) *fuzzinput.RandSource[A] {
	return fuzzinput.NewRandSource(r, limit, gen)
}
