// Package counts normalizes raw measurement-outcome histograms into
// canonical integer-keyed frequency maps.
//
// Raw histograms come from sampled backends keyed by per-register bitstrings,
// possibly space-delimited ("1 1"). Normalization concatenates the registers,
// parses the result in base 2, and preserves the total occurrence count
// exactly. Outcomes are 256-bit values so registers wider than 64 bits
// normalize without loss.
package counts

import (
	"fmt"
	"sort"

	"github.com/holiman/uint256"
)

// Outcome is a measured basis-state value.
type Outcome = uint256.Int

// FrequencyMap maps outcomes to occurrence counts. The sum of the values is
// the total shot count of the execution that produced it. Use Keys for the
// canonical ascending iteration order.
type FrequencyMap map[Outcome]int

// MalformedBitstringError reports a histogram key containing characters
// other than '0', '1', and register-delimiting spaces.
type MalformedBitstringError struct {
	Key string
}

func (e *MalformedBitstringError) Error() string {
	return fmt.Sprintf("malformed bitstring %q in histogram", e.Key)
}

// Normalize converts a raw histogram into a FrequencyMap. Keys that collapse
// to the same outcome are summed, so no occurrence count is lost or
// invented.
func Normalize(raw map[string]int) (FrequencyMap, error) {
	out := make(FrequencyMap, len(raw))
	for k, v := range raw {
		o, err := ParseBitstring(k)
		if err != nil {
			return nil, err
		}
		out[o] += v
	}
	return out, nil
}

// ParseBitstring parses a possibly space-delimited binary string into an
// outcome value.
func ParseBitstring(s string) (Outcome, error) {
	var v uint256.Int
	one := uint256.NewInt(1)
	bits := 0
	for _, r := range s {
		if r == ' ' {
			continue
		}
		if r != '0' && r != '1' {
			return Outcome{}, &MalformedBitstringError{Key: s}
		}
		if bits == 256 {
			return Outcome{}, fmt.Errorf("bitstring %q is wider than 256 bits", s)
		}
		v.Lsh(&v, 1)
		if r == '1' {
			v.Or(&v, one)
		}
		bits++
	}
	if bits == 0 {
		return Outcome{}, &MalformedBitstringError{Key: s}
	}
	return v, nil
}

// FormatBitstring renders an outcome as a binary string zero-padded to the
// given register width. It is the inverse of ParseBitstring for outcomes
// that fit the width.
func FormatBitstring(o Outcome, width int) string {
	if width < 1 {
		width = 1
	}
	buf := make([]byte, width)
	one := uint256.NewInt(1)
	v := o
	var bit uint256.Int
	for i := width - 1; i >= 0; i-- {
		bit.And(&v, one)
		if bit.IsZero() {
			buf[i] = '0'
		} else {
			buf[i] = '1'
		}
		v.Rsh(&v, 1)
	}
	return string(buf)
}

// Width returns the register width implied by the largest outcome.
func (m FrequencyMap) Width() int {
	width := 1
	for k := range m {
		if bl := k.BitLen(); bl > width {
			width = bl
		}
	}
	return width
}

// Total returns the sum of all occurrence counts.
func (m FrequencyMap) Total() int {
	total := 0
	for _, v := range m {
		total += v
	}
	return total
}

// Keys returns the outcomes in ascending order.
func (m FrequencyMap) Keys() []Outcome {
	keys := make([]Outcome, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Cmp(&keys[j]) < 0
	})
	return keys
}

// UnionKeys returns the ascending union of the outcomes of both maps.
func UnionKeys(a, b FrequencyMap) []Outcome {
	seen := make(map[Outcome]bool, len(a)+len(b))
	keys := make([]Outcome, 0, len(a)+len(b))
	for k := range a {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	for k := range b {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Cmp(&keys[j]) < 0
	})
	return keys
}
