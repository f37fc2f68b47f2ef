// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package numvec

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the payload an array stores.  It is fixed when the
// array is created.
type Kind uint8

const (
	// Long arrays hold 64 bit signed integers, range checked against
	// MaxLong on the way in
	Long Kind = iota
	// Double arrays hold 64 bit floats
	Double
)

func (k Kind) String() string {
	switch k {
	case Long:
		return "long"
	case Double:
		return "double"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind maps a typecode or kind name onto a Kind.  "i" and "long"
// select Long, "d" and "double" select Double.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "i", "long":
		return Long, nil
	case "d", "double":
		return Double, nil
	}
	return 0, fmt.Errorf("%w: unsupported typecode %q", ErrType, s)
}

// Element is the set of payload types an Array can be instantiated with.
type Element interface {
	int64 | float64
}

// KindOf reports the Kind corresponding to the type parameter T.
func KindOf[T Element]() Kind {
	var zero T
	switch any(zero).(type) {
	case float64:
		return Double
	}
	return Long
}

// Value is a single tagged element: a kind plus the payload selected by
// that kind.  It is the currency used by callers that only learn the
// kind of a value at runtime.
type Value struct {
	kind Kind
	l    int64
	d    float64
}

func LongValue(v int64) Value {
	return Value{kind: Long, l: v}
}

func DoubleValue(v float64) Value {
	return Value{kind: Double, d: v}
}

func valueOf[T Element](v T) Value {
	switch x := any(v).(type) {
	case int64:
		return LongValue(x)
	case float64:
		return DoubleValue(x)
	}
	panic("unreachable")
}

func (v Value) Kind() Kind {
	return v.kind
}

// Long returns the integer payload.  It panics if v is not a Long.
func (v Value) Long() int64 {
	if v.kind != Long {
		panic(fmt.Sprintf("numvec: reading %s value as long", v.kind))
	}
	return v.l
}

// Double returns the float payload.  It panics if v is not a Double.
func (v Value) Double() float64 {
	if v.kind != Double {
		panic(fmt.Sprintf("numvec: reading %s value as double", v.kind))
	}
	return v.d
}

func (v Value) String() string {
	if v.kind == Double {
		return formatDouble(v.d)
	}
	return strconv.FormatInt(v.l, 10)
}

// Convert extracts the payload of v as a T.  It fails with ErrType when
// the kind of v differs from the kind of T; no numeric coercion is
// performed.
func Convert[T Element](v Value) (T, error) {
	var out T
	want := KindOf[T]()
	if v.kind != want {
		return out, typeError(want, v.kind)
	}
	switch p := any(&out).(type) {
	case *int64:
		*p = v.l
	case *float64:
		*p = v.d
	}
	return out, nil
}

func formatDouble(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		// keep doubles visually distinct from longs
		s += ".0"
	}
	return s
}

// Format renders v the way String renders array elements.
func Format[T Element](v T) string {
	switch x := any(v).(type) {
	case float64:
		return formatDouble(x)
	case int64:
		return strconv.FormatInt(x, 10)
	}
	return fmt.Sprint(v)
}
