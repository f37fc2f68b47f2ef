package numvec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckIndex(t *testing.T) {
	tests := []struct {
		length, pos, want int
		ok                bool
	}{
		{0, 0, 0, false},
		{0, -1, 0, false},
		{3, 0, 0, true},
		{3, 2, 2, true},
		{3, 3, 0, false},
		{3, -1, 2, true},
		{3, -3, 0, true},
		{3, -4, 0, false},
	}
	for _, test := range tests {
		got, err := checkIndex(test.length, test.pos)
		if test.ok {
			assert.NoError(t, err, "length %d pos %d", test.length, test.pos)
			assert.Equal(t, test.want, got, "length %d pos %d", test.length, test.pos)
		} else {
			assert.ErrorIs(t, err, ErrIndex, "length %d pos %d", test.length, test.pos)
		}
	}
}

func TestCheckIndexEmptyMessage(t *testing.T) {
	_, err := checkIndex(0, 0)
	assert.EqualError(t, err, "index out of range: array is empty")
	_, err = checkIndex(2, 7)
	assert.EqualError(t, err, "index out of range: index 7")
}

func TestCheckInsertIndex(t *testing.T) {
	tests := []struct {
		length, pos, want int
		ok                bool
	}{
		{0, 0, 0, true},
		{0, 1, 0, false},
		{0, -1, 0, false},
		{3, 3, 3, true},
		{3, 4, 0, false},
		{3, -3, 0, true},
		{3, -1, 2, true},
		{3, -4, 0, false},
	}
	for _, test := range tests {
		got, err := checkInsertIndex(test.length, test.pos)
		if test.ok {
			assert.NoError(t, err, "length %d pos %d", test.length, test.pos)
			assert.Equal(t, test.want, got, "length %d pos %d", test.length, test.pos)
		} else {
			assert.ErrorIs(t, err, ErrIndex, "length %d pos %d", test.length, test.pos)
		}
	}
}

func TestCheckLongRange(t *testing.T) {
	assert.NoError(t, checkLongRange(math.MaxInt32))
	assert.ErrorIs(t, checkLongRange(math.MaxInt32+1), ErrOverflow)
	assert.ErrorIs(t, checkLongRange(math.MaxInt64), ErrOverflow)
	// only the upper bound is checked
	assert.NoError(t, checkLongRange(math.MinInt32-1))
	assert.NoError(t, checkLongRange(math.MinInt64))

	assert.NoError(t, checkRange(math.MaxFloat64))
	assert.ErrorIs(t, checkRange(int64(1)<<40), ErrOverflow)
}
