package stats

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/holiman/uint256"

	"github.com/qdiff-xyz/go-qdiff/counts"
)

func outcome(v uint64) counts.Outcome {
	return *uint256.NewInt(v)
}

func TestPValueSelfComparison(t *testing.T) {
	fm := counts.FrequencyMap{
		outcome(0): 500,
		outcome(3): 524,
	}

	p, err := PValue(fm, fm, 1024)
	if err != nil {
		t.Fatalf("PValue failed: %v", err)
	}
	if p != 1.0 {
		t.Errorf("Self-comparison p-value = %v, expected exactly 1.0", p)
	}
}

func TestPValueSimilarDistributions(t *testing.T) {
	// Two seeded draws from the same Bernoulli(0.5) source should not be
	// flagged as different.
	shots := 1024
	a := counts.FrequencyMap{}
	b := counts.FrequencyMap{}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < shots; i++ {
		a[outcome(uint64(rng.Intn(2)))]++
		b[outcome(uint64(rng.Intn(2)))]++
	}

	p, err := PValue(a, b, shots)
	if err != nil {
		t.Fatalf("PValue failed: %v", err)
	}
	if p < 1e-6 {
		t.Errorf("Same-source samples got p = %v, expected p well above zero", p)
	}
}

func TestPValueDisjointDistributions(t *testing.T) {
	a := counts.FrequencyMap{outcome(0): 1024}
	b := counts.FrequencyMap{outcome(1): 1024}

	p, err := PValue(a, b, 1024)
	if err != nil {
		t.Fatalf("PValue failed: %v", err)
	}
	if p > 1e-6 {
		t.Errorf("Disjoint distributions got p = %v, expected near zero", p)
	}
}

func TestPValueRange(t *testing.T) {
	a := counts.FrequencyMap{outcome(0): 700, outcome(1): 324}
	b := counts.FrequencyMap{outcome(0): 512, outcome(1): 512}

	p, err := PValue(a, b, 1024)
	if err != nil {
		t.Fatalf("PValue failed: %v", err)
	}
	if p < 0 || p > 1 {
		t.Errorf("p-value %v outside [0, 1]", p)
	}
}

func TestPValueSampleSizeMismatch(t *testing.T) {
	good := counts.FrequencyMap{outcome(0): 100}
	short := counts.FrequencyMap{outcome(0): 90}

	_, err := PValue(short, good, 100)
	var sme *SampleSizeMismatchError
	if !errors.As(err, &sme) {
		t.Fatalf("Expected SampleSizeMismatchError, got %v", err)
	}
	if sme.Sample != "first" || sme.Got != 90 || sme.Want != 100 {
		t.Errorf("Unexpected mismatch detail: %+v", sme)
	}

	_, err = PValue(good, short, 100)
	if !errors.As(err, &sme) {
		t.Fatalf("Expected SampleSizeMismatchError, got %v", err)
	}
	if sme.Sample != "second" {
		t.Errorf("Expected mismatch on second sample, got %q", sme.Sample)
	}
}

func TestPValueRejectsNonPositiveShots(t *testing.T) {
	fm := counts.FrequencyMap{outcome(0): 1}
	if _, err := PValue(fm, fm, 0); err == nil {
		t.Error("Expected error for zero total shots")
	}
}

func TestKolmogorovSurvival(t *testing.T) {
	if got := kolmogorovSurvival(0); got != 1.0 {
		t.Errorf("Q(0) = %v, expected 1.0", got)
	}
	if got := kolmogorovSurvival(-1); got != 1.0 {
		t.Errorf("Q(-1) = %v, expected 1.0", got)
	}

	// Reference values of the Kolmogorov survival function. The mid-range
	// entries need several series terms; a one-term truncation is off by
	// up to 0.11 at x = 0.6.
	cases := []struct {
		x, want float64
	}{
		{0.50, 0.963945},
		{0.55, 0.922817},
		{0.60, 0.864283},
		{0.80, 0.544142},
		{1.00, 0.270000},
		{1.36, 0.049486},
		{1.50, 0.022218},
	}
	for _, tt := range cases {
		got := kolmogorovSurvival(tt.x)
		if math.Abs(got-tt.want) > 1e-4 {
			t.Errorf("Q(%v) = %v, expected %v", tt.x, got, tt.want)
		}
	}

	// Q is monotone decreasing.
	prev := 1.0
	for x := 0.2; x < 3.0; x += 0.2 {
		q := kolmogorovSurvival(x)
		if q > prev {
			t.Errorf("Q not decreasing at x = %v: %v > %v", x, q, prev)
		}
		if q < 0 || q > 1 {
			t.Errorf("Q(%v) = %v outside [0, 1]", x, q)
		}
		prev = q
	}
}

func TestChiSquareSelfComparison(t *testing.T) {
	fm := counts.FrequencyMap{outcome(0): 500, outcome(3): 524}

	p, err := ChiSquare(fm, fm, 1024)
	if err != nil {
		t.Fatalf("ChiSquare failed: %v", err)
	}
	if p != 1.0 {
		t.Errorf("Self-comparison chi-square p = %v, expected 1.0", p)
	}
}

func TestChiSquareDisjointDistributions(t *testing.T) {
	a := counts.FrequencyMap{outcome(0): 1024}
	b := counts.FrequencyMap{outcome(1): 1024}

	p, err := ChiSquare(a, b, 1024)
	if err != nil {
		t.Fatalf("ChiSquare failed: %v", err)
	}
	if p > 1e-6 {
		t.Errorf("Disjoint distributions got chi-square p = %v, expected near zero", p)
	}
}

func TestChiSquareSingleSharedOutcome(t *testing.T) {
	a := counts.FrequencyMap{outcome(0): 100}
	b := counts.FrequencyMap{outcome(0): 100}

	p, err := ChiSquare(a, b, 100)
	if err != nil {
		t.Fatalf("ChiSquare failed: %v", err)
	}
	if p != 1.0 {
		t.Errorf("Single shared outcome p = %v, expected 1.0", p)
	}
}

func TestChiSquareSampleSizeMismatch(t *testing.T) {
	good := counts.FrequencyMap{outcome(0): 100}
	short := counts.FrequencyMap{outcome(0): 90}

	_, err := ChiSquare(good, short, 100)
	var sme *SampleSizeMismatchError
	if !errors.As(err, &sme) {
		t.Fatalf("Expected SampleSizeMismatchError, got %v", err)
	}
	if sme.Sample != "second" {
		t.Errorf("Expected mismatch on second sample, got %q", sme.Sample)
	}
}
