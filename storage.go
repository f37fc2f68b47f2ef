// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package numvec

//go:generate mockgen -source storage.go -destination growth_mocks.go -package numvec

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// GrowthPolicy decides the capacity of the replacement buffer when an
// array runs out of room.
type GrowthPolicy interface {
	// Grow returns the new capacity for a buffer currently holding
	// capacity slots that must hold at least required slots.  The
	// result must be >= required.
	Grow(capacity int, required int) int
}

// Doubling is the default GrowthPolicy.
type Doubling struct{}

func (Doubling) Grow(capacity int, required int) int {
	if capacity < 1 {
		capacity = 1
	}
	for capacity < required {
		capacity <<= 1
	}
	return capacity
}

// storage owns the contiguous buffer behind an array.  len(buf) is the
// allocated capacity, slots [used, len(buf)) are never read.
type storage[T Element] struct {
	buf    []T
	used   int
	growth GrowthPolicy
	// grown, if set, is notified after the buffer was replaced
	grown func(capacity int)
}

func newStorage[T Element](capacity int, growth GrowthPolicy) *storage[T] {
	if capacity < 1 {
		capacity = 1
	}
	if growth == nil {
		growth = Doubling{}
	}
	return &storage[T]{
		buf:    make([]T, capacity),
		growth: growth,
	}
}

func (s *storage[T]) length() int {
	return s.used
}

func (s *storage[T]) capacity() int {
	return len(s.buf)
}

// rawGet and rawSet do not check ix beyond what the runtime does; callers
// validate against length first.
func (s *storage[T]) rawGet(ix int) T {
	return s.buf[ix]
}

func (s *storage[T]) rawSet(ix int, val T) {
	s.buf[ix] = val
}

// reserve makes sure at least n slots are allocated, replacing the
// buffer if needed.
func (s *storage[T]) reserve(n int) {
	c := len(s.buf)
	if n <= c {
		return
	}
	next := s.growth.Grow(c, n)
	if next < n {
		panic(fmt.Sprintf("growth policy returned capacity %d, %d required", next, n))
	}
	// never grow by less than a quarter, so appends stay amortized O(1)
	if floor := c + c/4; next < floor {
		next = floor
	}
	buf := make([]T, next)
	copy(buf, s.buf[:s.used])
	s.buf = buf
	if s.grown != nil {
		s.grown(next)
	}
}

func (s *storage[T]) push(val T) {
	s.reserve(s.used + 1)
	s.buf[s.used] = val
	s.used++
}

// insert shifts [ix, used) up by one slot and writes val at ix.
func (s *storage[T]) insert(ix int, val T) {
	s.reserve(s.used + 1)
	s.buf = slices.Insert(s.buf[:s.used], ix, val)[:len(s.buf)]
	s.used++
}

// remove shifts (ix, used) down by one slot and returns the value that
// was at ix.
func (s *storage[T]) remove(ix int) (val T) {
	val = s.buf[ix]
	s.buf = slices.Delete(s.buf[:s.used], ix, ix+1)[:len(s.buf)]
	s.used--
	return
}

// slice returns the occupied part of the buffer.  It aliases the
// buffer and must not outlive the next structural change.
func (s *storage[T]) slice() []T {
	return s.buf[:s.used]
}

func (s *storage[T]) release() {
	s.buf = nil
	s.used = 0
}
