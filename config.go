package numvec

import (
	"fmt"
	"io"
	"math/bits"
)

// MinCapacity is the smallest buffer an array ever holds, even when
// empty.
const MinCapacity = 1

// Config controls the behavior of an array
type Config struct {
	// Number of slots to allocate up front.  Values below MinCapacity
	// are raised to it.
	Capacity int
	// How the buffer grows once Capacity is exhausted.  Defaults to
	// Doubling.
	Growth GrowthPolicy
	// Length at which value lookups start consulting a bloom filter
	// before scanning.  Zero disables the prefilter.
	PrefilterThreshold int
	// Target false positive rate of the prefilter
	PrefilterFalsePositiveRate float64
}

// DefaultConfig is used for any field left unset.
var DefaultConfig = Config{
	Capacity:                   MinCapacity,
	Growth:                     Doubling{},
	PrefilterThreshold:         1024,
	PrefilterFalsePositiveRate: 0.01,
}

// SizeFor generates a Config whose initial capacity can hold
// numberOfEntries without growing, rounded up to a power of two.
func SizeFor(numberOfEntries int) Config {
	c := DefaultConfig
	if numberOfEntries > MinCapacity {
		c.Capacity = 1 << bits.Len(uint(numberOfEntries-1))
	}
	return c
}

func (c Config) withDefaults() Config {
	if c.Capacity < MinCapacity {
		c.Capacity = MinCapacity
	}
	if c.Growth == nil {
		c.Growth = DefaultConfig.Growth
	}
	if c.PrefilterFalsePositiveRate <= 0 || c.PrefilterFalsePositiveRate >= 1 {
		c.PrefilterFalsePositiveRate = DefaultConfig.PrefilterFalsePositiveRate
	}
	return c
}

// BytesRequired reports the approximate size of the element buffer
// at the configured capacity.  Both kinds use 8 bytes per slot.
func (c *Config) BytesRequired() uint {
	n := c.Capacity
	if n < MinCapacity {
		n = MinCapacity
	}
	return uint(n) * 8
}

// ExplainIndent writes an indented summary of the configuration to w
func (c *Config) ExplainIndent(w io.Writer, indent string, kind Kind) {
	d := c.withDefaults()
	fmt.Fprintf(w, "%s%d %s slots allocated up front\n", indent, d.Capacity, kind)
	fmt.Fprintf(w, "%s%T growth\n", indent, d.Growth)
	if d.PrefilterThreshold > 0 {
		fmt.Fprintf(w, "%sprefilter from %d entries at %0.2f%% false positives\n",
			indent, d.PrefilterThreshold, 100*d.PrefilterFalsePositiveRate)
	} else {
		fmt.Fprintf(w, "%sprefilter disabled\n", indent)
	}
	fmt.Fprintf(w, "%s%s storage size expected\n", indent, humanBytes(d.BytesRequired()))
}

// Explain writes a summary of the configuration to w
func (c *Config) Explain(w io.Writer, kind Kind) {
	c.ExplainIndent(w, "", kind)
}

func humanBytes(bytes uint) string {
	v := float64(bytes)
	suffix := "bytes"
	if v > 1024 {
		v /= 1024.
		suffix = "KB"
		if v > 1024. {
			suffix = "MB"
			v /= 1024.0
			if v > 1024. {
				suffix = "GB"
				v /= 1024.
			}
		}
	}
	if v < 10 {
		return fmt.Sprintf("%0.2f %s", v, suffix)
	} else if v < 100 {
		return fmt.Sprintf("%0.1f %s", v, suffix)
	} else {
		return fmt.Sprintf("%0.0f %s", v, suffix)
	}
}
