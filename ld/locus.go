package ld

import "sort"

// DefaultMaxSamplesPerLocus is the per-locus genotype-entry capacity used
// when a LocusQueue is not given an explicit one. The source this package
// is modeled on hard-codes 1,000,000; callers with larger cohorts may pass
// a bigger value to NewLocusQueue.
const DefaultMaxSamplesPerLocus = 1_000_000

// GenotypeCall is one person's genotype at a Locus.
type GenotypeCall struct {
	PersonID int32
	Genotype Genotype
}

// Locus holds one variant site's position, variant identifier, and the
// per-sample genotype calls observed there, kept sorted by PersonID.
// AppendEntry does not reject a PersonID that is already present.
type Locus struct {
	Position int32
	VarID    string

	genotypes []GenotypeCall
}

// NewLocus creates a Locus seeded with a single genotype call, mirroring
// the source's enqueue-with-first-genotype pattern.
func NewLocus(position int32, varID string, personID int32, g Genotype) *Locus {
	return &Locus{
		Position:  position,
		VarID:     varID,
		genotypes: []GenotypeCall{{PersonID: personID, Genotype: g}},
	}
}

// AppendEntry adds a genotype call to the Locus, keeping the sequence
// sorted by PersonID. The plumbing layer is expected to deliver calls
// already in increasing PersonID order, but AppendEntry sorts defensively
// rather than trusting that precondition, since the cost of doing so is
// small relative to the cost of a silently-broken merge-join downstream.
//
// Fails with TooManySamples if capacity is exceeded.
func (l *Locus) AppendEntry(personID int32, g Genotype, capacity int) error {
	if len(l.genotypes) >= capacity {
		return errTooManySamples(capacity)
	}
	idx := sort.Search(len(l.genotypes), func(i int) bool {
		return l.genotypes[i].PersonID >= personID
	})
	l.genotypes = append(l.genotypes, GenotypeCall{})
	copy(l.genotypes[idx+1:], l.genotypes[idx:])
	l.genotypes[idx] = GenotypeCall{PersonID: personID, Genotype: g}
	return nil
}

// Genotypes returns the Locus's genotype calls in PersonID order. The
// returned slice must not be modified.
func (l *Locus) Genotypes() []GenotypeCall {
	return l.genotypes
}

// Len returns the number of genotype calls at this Locus.
func (l *Locus) Len() int {
	return len(l.genotypes)
}
