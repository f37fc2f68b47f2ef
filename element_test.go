package numvec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{
		"i":      Long,
		"long":   Long,
		" LONG ": Long,
		"d":      Double,
		"double": Double,
	} {
		got, err := ParseKind(in)
		require.NoError(t, err, "%q", in)
		assert.Equal(t, want, got, "%q", in)
	}
	for _, in := range []string{"a", "", "f", "int"} {
		_, err := ParseKind(in)
		assert.ErrorIs(t, err, ErrType, "%q", in)
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, Long, KindOf[int64]())
	assert.Equal(t, Double, KindOf[float64]())
	assert.Equal(t, "long", Long.String())
	assert.Equal(t, "double", Double.String())
	assert.Equal(t, "kind(7)", Kind(7).String())
}

func TestValueAccessors(t *testing.T) {
	l := LongValue(42)
	assert.Equal(t, Long, l.Kind())
	assert.Equal(t, int64(42), l.Long())
	assert.Equal(t, "42", l.String())
	assert.Panics(t, func() { l.Double() })

	d := DoubleValue(2)
	assert.Equal(t, Double, d.Kind())
	assert.Equal(t, 2.0, d.Double())
	assert.Equal(t, "2.0", d.String())
	assert.Panics(t, func() { d.Long() })

	assert.Equal(t, "0.25", DoubleValue(0.25).String())
	assert.Equal(t, "+Inf", DoubleValue(math.Inf(1)).String())
	assert.Equal(t, "NaN", DoubleValue(math.NaN()).String())
}

func TestConvert(t *testing.T) {
	l, err := Convert[int64](LongValue(-5))
	require.NoError(t, err)
	assert.Equal(t, int64(-5), l)

	d, err := Convert[float64](DoubleValue(1.5))
	require.NoError(t, err)
	assert.Equal(t, 1.5, d)

	// no coercion between kinds
	_, err = Convert[float64](LongValue(1))
	assert.ErrorIs(t, err, ErrType)
	_, err = Convert[int64](DoubleValue(1))
	assert.ErrorIs(t, err, ErrType)
	assert.EqualError(t, err, "type mismatch: expected long, got double")
}

func TestValueOfRoundTrip(t *testing.T) {
	assert.Equal(t, LongValue(7), valueOf(int64(7)))
	assert.Equal(t, DoubleValue(0.5), valueOf(0.5))
}
