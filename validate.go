package numvec

import "math"

// MaxLong is the largest value a Long array accepts.
//
// Only the upper bound is enforced; values below math.MinInt32 are
// stored as given.
const MaxLong = math.MaxInt32

// checkIndex validates pos against an array of the given length and
// normalizes negative positions, which count from the end.
func checkIndex(length int, pos int) (int, error) {
	if length == 0 {
		return 0, emptyError()
	}
	if pos < -length || pos >= length {
		return 0, indexError(pos)
	}
	if pos < 0 {
		pos += length
	}
	return pos, nil
}

// checkInsertIndex is checkIndex for insertion points: pos == length
// is allowed, so an empty array accepts position 0.
func checkInsertIndex(length int, pos int) (int, error) {
	if pos < -length || pos > length {
		return 0, indexError(pos)
	}
	if pos < 0 {
		pos += length
	}
	return pos, nil
}

func checkLongRange(v int64) error {
	if v > MaxLong {
		return overflowError(v)
	}
	return nil
}

func checkRange[T Element](v T) error {
	if x, ok := any(v).(int64); ok {
		return checkLongRange(x)
	}
	return nil
}
