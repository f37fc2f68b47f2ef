// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

// Package numvec implements a typed, growable, contiguous array of
// 64 bit integers or doubles, supporting:
//  1. positional access with negative (from the end) indices
//  2. amortized O(1) append with a pluggable growth policy
//  3. insert/remove/pop at arbitrary positions
//  4. binary search over caller sorted contents
//  5. an optional bloom prefilter for value lookups
//
// Structural operations (Insert, RemoveAt, Pop, Remove) consume the
// handle they are called on and return the one that remains valid.
// Arrays are not safe for concurrent use.
package numvec

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"
)

// Array is a homogeneous container of T.  The zero value is not usable;
// create arrays with New, NewWithConfig or From.
type Array[T Element] struct {
	e *engine[T]
}

// engine is the state that moves from handle to handle.
type engine[T Element] struct {
	store  *storage[T]
	config Config
	pf     *prefilter[T]
}

// New creates an empty array able to hold capacity elements before
// growing.
func New[T Element](capacity int) *Array[T] {
	c := DefaultConfig
	c.Capacity = capacity
	return NewWithConfig[T](c)
}

func NewWithConfig[T Element](c Config) *Array[T] {
	c = c.withDefaults()
	e := &engine[T]{
		store:  newStorage[T](c.Capacity, c.Growth),
		config: c,
	}
	// the prefilter is sized for the old buffer
	e.store.grown = func(int) { e.pf = nil }
	return &Array[T]{e: e}
}

// From creates an array holding values in order.  It fails with
// ErrOverflow, and allocates nothing, if any value is out of range.
func From[T Element](values ...T) (*Array[T], error) {
	for _, v := range values {
		if err := checkRange(v); err != nil {
			return nil, err
		}
	}
	a := NewWithConfig[T](SizeFor(len(values)))
	for _, v := range values {
		a.e.store.push(v)
	}
	return a, nil
}

func (a *Array[T]) live() *engine[T] {
	if a == nil || a.e == nil {
		panic(ErrReleased)
	}
	return a.e
}

// consume moves the state of a into a fresh handle and invalidates a.
func (a *Array[T]) consume() *Array[T] {
	next := &Array[T]{e: a.e}
	a.e = nil
	return next
}

// Release frees the buffer.  Calling it again, or on a handle consumed
// by a structural operation, does nothing; any other use of a released
// handle panics with ErrReleased.
func (a *Array[T]) Release() {
	if a == nil || a.e == nil {
		return
	}
	a.e.store.release()
	a.e.pf = nil
	a.e = nil
}

// Released reports whether a can no longer be used.
func (a *Array[T]) Released() bool {
	return a == nil || a.e == nil
}

func (a *Array[T]) Kind() Kind {
	return KindOf[T]()
}

// Len returns the number of elements stored.
func (a *Array[T]) Len() int {
	return a.live().store.length()
}

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int {
	return a.live().store.capacity()
}

// Append adds v after the last element, growing the buffer if needed.
func (a *Array[T]) Append(v T) error {
	e := a.live()
	if err := checkRange(v); err != nil {
		return err
	}
	e.store.push(v)
	e.added(v)
	return nil
}

// AppendValue is Append for a dynamically typed value.  It fails with
// ErrType if v is not of the array's kind.
func (a *Array[T]) AppendValue(v Value) error {
	a.live()
	x, err := Convert[T](v)
	if err != nil {
		return err
	}
	return a.Append(x)
}

// Get returns the element at pos.  Negative positions count from the
// end.
func (a *Array[T]) Get(pos int) (T, error) {
	e := a.live()
	ix, err := checkIndex(e.store.length(), pos)
	if err != nil {
		var zero T
		return zero, err
	}
	return e.store.rawGet(ix), nil
}

func (a *Array[T]) GetValue(pos int) (Value, error) {
	v, err := a.Get(pos)
	if err != nil {
		return Value{}, err
	}
	return valueOf(v), nil
}

// Set overwrites the element at pos in place.
func (a *Array[T]) Set(pos int, v T) error {
	e := a.live()
	ix, err := checkIndex(e.store.length(), pos)
	if err != nil {
		return err
	}
	if err := checkRange(v); err != nil {
		return err
	}
	e.store.rawSet(ix, v)
	e.added(v)
	return nil
}

// Insert places v at pos, shifting the elements at and after pos up by
// one.  pos may equal Len().  On success a is consumed and the returned
// handle replaces it; on failure a is returned untouched alongside the
// error.
func (a *Array[T]) Insert(pos int, v T) (*Array[T], error) {
	e := a.live()
	ix, err := checkInsertIndex(e.store.length(), pos)
	if err != nil {
		return a, err
	}
	if err := checkRange(v); err != nil {
		return a, err
	}
	e.store.insert(ix, v)
	e.added(v)
	return a.consume(), nil
}

// RemoveAt removes the element at pos, preserving the order of the
// rest.  On success the removed value is returned in an OK Result, a is
// consumed and the returned handle replaces it.  If pos is out of range
// the Result is not OK and a is returned untouched.
func (a *Array[T]) RemoveAt(pos int) (Result[T], *Array[T]) {
	e := a.live()
	ix, err := checkIndex(e.store.length(), pos)
	if err != nil {
		return Failed[T](), a
	}
	v := e.store.remove(ix)
	return Succeeded(v), a.consume()
}

// Pop is RemoveAt reporting failure as an ErrIndex error.
func (a *Array[T]) Pop(pos int) (T, *Array[T], error) {
	res, next := a.RemoveAt(pos)
	if !res.OK {
		if next.Len() == 0 {
			return res.Value, next, emptyError()
		}
		return res.Value, next, indexError(pos)
	}
	return res.Value, next, nil
}

// Remove deletes the first element equal to v, scanning in storage
// order; the contents need not be sorted.  It fails with ErrNotFound
// when no element matches, in which case a is returned untouched.
func (a *Array[T]) Remove(v T) (*Array[T], error) {
	e := a.live()
	ix := e.indexOf(v)
	if ix == NotFound {
		return a, notFoundError(v)
	}
	e.store.remove(ix)
	return a.consume(), nil
}

// BinarySearch returns the position of an element equal to target, or
// NotFound.  The array must already be sorted in ascending order; with
// duplicates any matching position may be returned.
func (a *Array[T]) BinarySearch(target T) int {
	e := a.live()
	ix, found := slices.BinarySearch(e.store.slice(), target)
	if !found {
		return NotFound
	}
	return ix
}

// Search is BinarySearch reporting absence as an ErrNotFound error.
func (a *Array[T]) Search(target T) (int, error) {
	ix := a.BinarySearch(target)
	if ix == NotFound {
		return ix, notFoundError(target)
	}
	return ix, nil
}

// IndexOf returns the position of the first element equal to v in
// storage order, or NotFound.
func (a *Array[T]) IndexOf(v T) int {
	return a.live().indexOf(v)
}

func (a *Array[T]) Contains(v T) bool {
	return a.IndexOf(v) != NotFound
}

// Values returns a copy of the elements in order.
func (a *Array[T]) Values() []T {
	return slices.Clone(a.live().store.slice())
}

// Each calls cb with the position and value of every element in order.
// cb must not modify the array.
func (a *Array[T]) Each(cb func(int, T)) {
	for i, v := range a.live().store.slice() {
		cb(i, v)
	}
}

// Equal reports whether a and b hold the same elements in the same
// order.
func (a *Array[T]) Equal(b *Array[T]) bool {
	return slices.Equal(a.live().store.slice(), b.live().store.slice())
}

func (a *Array[T]) String() string {
	if a.Released() {
		return "<released>"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a.e.store.slice() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(Format(v))
	}
	sb.WriteByte(']')
	return sb.String()
}

// DebugDump writes a textual representation of the buffer to w,
// including the unused tail.
func (a *Array[T]) DebugDump(w io.Writer) {
	e := a.live()
	fmt.Fprintf(w, "\n  %s array: %d used, %d allocated\n", a.Kind(), e.store.length(), e.store.capacity())
	fmt.Fprintf(w, "  slot   value\n")
	for i, v := range e.store.slice() {
		fmt.Fprintf(w, "%6d   %s\n", i, Format(v))
	}
	if free := e.store.capacity() - e.store.length(); free > 0 {
		fmt.Fprintf(w, "          ... %d free\n", free)
	}
	if e.pf != nil {
		fmt.Fprintf(w, "  prefilter: %d bits, %d hashes\n", e.pf.filter.Cap(), e.pf.filter.K())
	}
}

// added keeps the prefilter, if built, in step with a newly stored value.
func (e *engine[T]) added(v T) {
	if e.pf != nil {
		e.pf.add(v)
	}
}

func (e *engine[T]) indexOf(v T) int {
	values := e.store.slice()
	if t := e.config.PrefilterThreshold; t > 0 && len(values) >= t {
		if e.pf == nil {
			e.pf = newPrefilter(values, e.store.capacity(), e.config.PrefilterFalsePositiveRate)
		}
		if !e.pf.mayContain(v) {
			return NotFound
		}
	}
	return slices.Index(values, v)
}
