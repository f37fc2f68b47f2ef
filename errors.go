// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package numvec

import "fmt"

// ConstError is an error type that can be used to define immutable
// error constants.
type ConstError string

func (e ConstError) Error() string {
	return string(e)
}

const (
	// ErrIndex is reported when a position falls outside the occupied
	// slots of an array, or when the array is empty.
	ErrIndex = ConstError("index out of range")
	// ErrOverflow is reported when a Long value exceeds MaxLong.
	ErrOverflow = ConstError("value overflow")
	// ErrType is reported when a value's kind does not match the kind
	// an array was created with.
	ErrType = ConstError("type mismatch")
	// ErrNotFound is reported when a value based lookup or removal finds
	// no matching element.
	ErrNotFound = ConstError("value not found")
	// ErrReleased is the panic value raised when a handle is used after
	// Release or after a structural operation consumed it.
	ErrReleased = ConstError("use of released or consumed array")
)

// NotFound is returned by BinarySearch and IndexOf when no element
// matches.
const NotFound = -1

func indexError(pos int) error {
	return fmt.Errorf("%w: index %d", ErrIndex, pos)
}

func emptyError() error {
	return fmt.Errorf("%w: array is empty", ErrIndex)
}

func overflowError(v int64) error {
	return fmt.Errorf("%w: %d exceeds %d", ErrOverflow, v, MaxLong)
}

func typeError(want Kind, got Kind) error {
	return fmt.Errorf("%w: expected %s, got %s", ErrType, want, got)
}

func notFoundError[T Element](v T) error {
	return fmt.Errorf("%w: %s", ErrNotFound, Format(v))
}
