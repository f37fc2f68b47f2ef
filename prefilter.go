// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package numvec

import (
	"encoding/binary"
	"math"

	"github.com/bits-and-blooms/bloom/v3"
)

// prefilter answers "definitely absent" for value lookups on long
// arrays so that Contains and Remove can skip the linear scan.  Keys are
// only ever added: removed values linger as false positives, which is
// harmless, but a false negative is impossible.
type prefilter[T Element] struct {
	filter *bloom.BloomFilter
}

// newPrefilter builds a filter sized for capacity entries holding all
// of values.
func newPrefilter[T Element](values []T, capacity int, fpRate float64) *prefilter[T] {
	if capacity < len(values) {
		capacity = len(values)
	}
	p := &prefilter[T]{
		filter: bloom.NewWithEstimates(uint(capacity), fpRate),
	}
	for _, v := range values {
		p.add(v)
	}
	return p
}

func (p *prefilter[T]) add(v T) {
	var k [8]byte
	p.filter.Add(prefilterKey(v, k[:]))
}

func (p *prefilter[T]) mayContain(v T) bool {
	var k [8]byte
	return p.filter.Test(prefilterKey(v, k[:]))
}

// prefilterKey encodes v into buf.  Values that compare equal must
// encode identically, so -0.0 is folded onto 0.0.
func prefilterKey[T Element](v T, buf []byte) []byte {
	var bits uint64
	switch x := any(v).(type) {
	case int64:
		bits = uint64(x)
	case float64:
		if x == 0 {
			x = 0
		}
		bits = math.Float64bits(x)
	}
	binary.LittleEndian.PutUint64(buf, bits)
	return buf
}
