package ld

import "math"

// MinSharedSamples is the minimum haplotype count N required before EM
// phasing and LD statistics are computed at all. N counts both chromosomes,
// so it is twice the number of shared samples. Below it, Stats.N is
// reported but every other field is zero.
const MinSharedSamples = 40

const emTolerance = 1e-4

// MaxEMIterations bounds the theta fixed-point iteration. The recursion
// converges monotonically in practice; this is a backstop, not an expected
// limit.
const MaxEMIterations = 1000

// Stats holds the computed LD statistics for one pair of loci.
type Stats struct {
	D      float64
	R2     float64
	Theta  float64
	DPrime float64
	N      int
	People int
}

// ComputeStats derives theta, D, r-squared and D-prime from a pair of
// loci's merge-joined haplotype counts. The second return value is false
// when the EM loop ran but failed to converge within MaxEMIterations; the
// returned Stats.Theta is still the last value reached and remains usable,
// since non-convergence is a warning condition, not a fatal one. When N <
// MinSharedSamples the EM loop never runs, Stats has only N populated, and
// the second return value is true (nothing to fail to converge).
func ComputeStats(hc HaplotypeCounts) (Stats, bool) {
	c := &hc.Counters
	nAB := 2*c[idxAABB] + c[idxAaBB] + c[idxAABb]
	nAb := 2*c[idxAAbb] + c[idxAabb] + c[idxAABb]
	naB := 2*c[idxaaBB] + c[idxAaBB] + c[idxaaBb]
	nab := 2*c[idxaabb] + c[idxAabb] + c[idxaaBb]
	doubleHet := c[idxAaBb]
	N := nAB + nAb + naB + nab + 2*doubleHet

	if N < MinSharedSamples {
		return Stats{N: N}, true
	}

	theta := 0.5
	thetaPrev := 2.0
	dh := float64(doubleHet)
	for iter := 0; math.Abs(theta-thetaPrev) > emTolerance; iter++ {
		if iter >= MaxEMIterations {
			break
		}
		thetaPrev = theta
		abTerm := float64(nAB) + (1-theta)*dh
		abTermB := float64(nab) + (1-theta)*dh
		AbTerm := float64(nAb) + theta*dh
		aBTerm := float64(naB) + theta*dh
		denom := abTerm*abTermB + AbTerm*aBTerm
		if denom == 0 {
			theta = 0.5
		} else {
			theta = (AbTerm * aBTerm) / denom
		}
	}
	converged := math.Abs(theta-thetaPrev) <= emTolerance

	fA, fB := majorFreqs(hc.Haplotypes)
	D := (float64(nAB)+(1-theta)*dh)/float64(N) - fA*fB

	den := fA * fB * (1 - fA) * (1 - fB)
	r2 := 0.0
	if den != 0 {
		r2 = D * D / den
	}

	var dmax float64
	switch {
	case D < 0:
		dmax = math.Min(fA*fB, (1-fA)*(1-fB))
	case D > 0:
		dmax = math.Min(fA*(1-fB), (1-fA)*fB)
	}
	dPrime := 0.0
	if dmax != 0 {
		dPrime = D / dmax
	}

	return Stats{
		D:      D,
		R2:     r2,
		Theta:  theta,
		DPrime: dPrime,
		N:      N,
		People: len(hc.Haplotypes),
	}, converged
}

// majorFreqs computes the A and B allele frequencies across the shared
// samples' packed haplotype-pair codes. The number of set bits among each
// code's high two bits is the count of 'a' alleles in the diploid genotype
// at the first locus, and among the low two bits the count at the second;
// summing (2-count) over all samples and
// dividing by 2*len(haplotypes) gives the reference-allele frequency.
func majorFreqs(haplotypes []uint8) (fA, fB float64) {
	if len(haplotypes) == 0 {
		return 0, 0
	}
	var aCount, bCount, total int
	for _, h := range haplotypes {
		aAlt := int((h&0x8)>>3) + int((h&0x4)>>2)
		aCount += 2 - aAlt
		bAlt := int((h&0x2)>>1) + int(h&0x1)
		bCount += 2 - bAlt
		total += 2
	}
	return float64(aCount) / float64(total), float64(bCount) / float64(total)
}
