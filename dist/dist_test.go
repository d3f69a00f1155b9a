package dist

import (
	"math"
	"testing"
)

func TestNormal(t *testing.T) {
	p := New()

	if got := p.NormalCDF(0); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("NormalCDF(0) = %v, want 0.5", got)
	}
	if got := p.NormalQuantile(0.975); math.Abs(got-1.959963985) > 1e-6 {
		t.Errorf("NormalQuantile(0.975) = %v, want 1.959963985", got)
	}

	// Quantile inverts the CDF.
	for _, q := range []float64{0.025, 0.5, 0.95} {
		if got := p.NormalCDF(p.NormalQuantile(q)); math.Abs(got-q) > 1e-9 {
			t.Errorf("NormalCDF(NormalQuantile(%v)) = %v", q, got)
		}
	}
}

func TestStudentsT(t *testing.T) {
	p := New()

	if got := p.TCDF(0, 5); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("TCDF(0, 5) = %v, want 0.5", got)
	}

	// Symmetry: CDF(-x) = 1 - CDF(x).
	if got := p.TCDF(-1.3, 7) + p.TCDF(1.3, 7); math.Abs(got-1) > 1e-9 {
		t.Errorf("TCDF symmetry violated: sum = %v", got)
	}

	// Critical value t(0.975, 6) = 2.446912 (standard table).
	if got := p.TQuantile(0.975, 6); math.Abs(got-2.446912) > 1e-5 {
		t.Errorf("TQuantile(0.975, 6) = %v, want 2.446912", got)
	}

	// Fractional Welch degrees of freedom are accepted.
	if got := p.TCDF(1.0, 4.69889); got <= 0.5 || got >= 1 {
		t.Errorf("TCDF(1.0, 4.69889) = %v out of range", got)
	}

	if got := p.TCDF(1.0, 0); !math.IsNaN(got) {
		t.Errorf("TCDF with df=0 = %v, want NaN", got)
	}
}

func TestChiSquare(t *testing.T) {
	p := New()

	// chi2.cdf(3.841459, 1) = 0.95 (the 95th percentile with 1 df).
	if got := p.ChiSquareCDF(3.841459, 1); math.Abs(got-0.95) > 1e-5 {
		t.Errorf("ChiSquareCDF(3.841459, 1) = %v, want 0.95", got)
	}

	// Survival complements the CDF.
	if got := p.ChiSquareCDF(3.11485, 2) + p.ChiSquareSurvival(3.11485, 2); math.Abs(got-1) > 1e-12 {
		t.Errorf("CDF + Survival = %v, want 1", got)
	}
}

func TestBetaQuantile(t *testing.T) {
	p := New()

	// Clopper-Pearson bounds for 2 successes in 10 trials at alpha=0.05:
	// BetaQuantile(0.025, 2, 9) = 0.02521, BetaQuantile(0.975, 3, 8) = 0.55610.
	if got := p.BetaQuantile(0.025, 2, 9); math.Abs(got-0.02521) > 1e-4 {
		t.Errorf("BetaQuantile(0.025, 2, 9) = %v, want 0.02521", got)
	}
	if got := p.BetaQuantile(0.975, 3, 8); math.Abs(got-0.55610) > 1e-4 {
		t.Errorf("BetaQuantile(0.975, 3, 8) = %v, want 0.55610", got)
	}

	if got := p.BetaQuantile(0.5, 0, 3); !math.IsNaN(got) {
		t.Errorf("BetaQuantile with alpha=0 = %v, want NaN", got)
	}
}

func TestBinomialPMF(t *testing.T) {
	p := New()

	// C(10,2)/2^10 = 45/1024.
	if got := p.BinomialPMF(2, 10, 0.5); math.Abs(got-45.0/1024) > 1e-12 {
		t.Errorf("BinomialPMF(2, 10, 0.5) = %v, want %v", got, 45.0/1024)
	}

	// PMF sums to one.
	var sum float64
	for k := 0; k <= 10; k++ {
		sum += p.BinomialPMF(k, 10, 0.3)
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("pmf sum = %v, want 1", sum)
	}

	// Out-of-support and degenerate probabilities.
	if got := p.BinomialPMF(11, 10, 0.5); got != 0 {
		t.Errorf("BinomialPMF(11, 10, 0.5) = %v, want 0", got)
	}
	if got := p.BinomialPMF(0, 10, 0); got != 1 {
		t.Errorf("BinomialPMF(0, 10, 0) = %v, want 1", got)
	}
	if got := p.BinomialPMF(10, 10, 1); got != 1 {
		t.Errorf("BinomialPMF(10, 10, 1) = %v, want 1", got)
	}
}
