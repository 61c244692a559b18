// Package stats implements the two-sample tests used to decide whether two
// sampled outcome distributions are statistically equivalent.
//
// The primary test is the nonparametric two-sample Kolmogorov-Smirnov test.
// PValue returns the probability, under the null hypothesis that both
// samples come from the same distribution, of a KS statistic at least as
// extreme as the one observed. No significance threshold is applied here;
// thresholding is the caller's decision.
package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/qdiff-xyz/go-qdiff/counts"
)

// SampleSizeMismatchError reports a frequency map whose expanded sample
// length does not equal the declared shot count. It indicates an upstream
// execution bug, not a statistical outcome.
type SampleSizeMismatchError struct {
	Sample string // "first" or "second"
	Got    int
	Want   int
}

func (e *SampleSizeMismatchError) Error() string {
	return fmt.Sprintf("sample size mismatch: %s sample has %d outcomes, expected %d shots", e.Sample, e.Got, e.Want)
}

// PValue runs the two-sample KS test between two frequency maps, both drawn
// with totalShots shots. The maps are aligned over the union of their
// outcome keys (missing keys count zero) and expanded into flat sorted
// samples before the statistic is computed.
func PValue(a, b counts.FrequencyMap, totalShots int) (float64, error) {
	if totalShots < 1 {
		return 0, fmt.Errorf("total shots must be positive, got %d", totalShots)
	}

	keys := counts.UnionKeys(a, b)
	x := expand(a, keys, totalShots)
	y := expand(b, keys, totalShots)
	if len(x) != totalShots {
		return 0, &SampleSizeMismatchError{Sample: "first", Got: len(x), Want: totalShots}
	}
	if len(y) != totalShots {
		return 0, &SampleSizeMismatchError{Sample: "second", Got: len(y), Want: totalShots}
	}

	d := stat.KolmogorovSmirnov(x, nil, y, nil)

	n := float64(len(x))
	m := float64(len(y))
	en := n * m / (n + m)
	return kolmogorovSurvival(math.Sqrt(en) * d), nil
}

// expand flattens a frequency map into an ascending sample of outcome
// ranks, one entry per shot. The KS statistic depends only on the empirical
// CDFs, which are invariant under the strictly monotone outcome-to-rank
// relabeling, and ranks stay exact where 256-bit outcomes cannot be
// represented in float64.
func expand(m counts.FrequencyMap, keys []counts.Outcome, capHint int) []float64 {
	sample := make([]float64, 0, capHint)
	for rank, k := range keys {
		for i := 0; i < m[k]; i++ {
			sample = append(sample, float64(rank))
		}
	}
	return sample
}

// kolmogorovSurvival evaluates the survival function of the Kolmogorov
// distribution, Q(x) = 2 * sum_{k>=1} (-1)^(k-1) * exp(-2 k^2 x^2).
func kolmogorovSurvival(x float64) float64 {
	// Below 0.2 the survival deficit is under 1e-12, and the series needs
	// hundreds of terms; Q(0) = 1 makes self-comparison exactly 1.0.
	if x <= 0.2 {
		return 1.0
	}

	x2 := -2 * x * x
	sum := 0.0
	sign := 1.0
	for k := 1; k <= 100; k++ {
		term := 2 * math.Exp(x2*float64(k)*float64(k))
		// Alternating series: the truncation error is bounded by the
		// first omitted term.
		if term < 1e-12 {
			break
		}
		sum += sign * term
		sign = -sign
	}
	return math.Min(math.Max(sum, 0), 1)
}
