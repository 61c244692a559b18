package stats

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/qdiff-xyz/go-qdiff/counts"
)

// ChiSquare runs Pearson's chi-square homogeneity test between two
// frequency maps, both drawn with totalShots shots, and returns the
// p-value. It serves as a secondary metric alongside the KS test; the KS
// test is sensitive to shifts in outcome order, chi-square to per-outcome
// count differences regardless of order.
func ChiSquare(a, b counts.FrequencyMap, totalShots int) (float64, error) {
	if totalShots < 1 {
		return 0, fmt.Errorf("total shots must be positive, got %d", totalShots)
	}
	if got := a.Total(); got != totalShots {
		return 0, &SampleSizeMismatchError{Sample: "first", Got: got, Want: totalShots}
	}
	if got := b.Total(); got != totalShots {
		return 0, &SampleSizeMismatchError{Sample: "second", Got: got, Want: totalShots}
	}

	na := float64(totalShots)
	nb := float64(totalShots)
	statistic := 0.0
	bins := 0
	for _, k := range counts.UnionKeys(a, b) {
		oa := float64(a[k])
		ob := float64(b[k])
		pooled := oa + ob
		if pooled == 0 {
			continue
		}
		bins++
		ea := na * pooled / (na + nb)
		eb := nb * pooled / (na + nb)
		statistic += (oa-ea)*(oa-ea)/ea + (ob-eb)*(ob-eb)/eb
	}

	dof := bins - 1
	if dof < 1 {
		// A single shared outcome: the distributions are trivially identical.
		return 1.0, nil
	}

	dist := distuv.ChiSquared{K: float64(dof)}
	return dist.Survival(statistic), nil
}
