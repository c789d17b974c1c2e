package ld

import "fmt"

// InvalidGenotypeError reports a genotype character pair that is not in
// {A,a}x{A,a}. It is always fatal.
type InvalidGenotypeError struct {
	Detail string
}

func (e *InvalidGenotypeError) Error() string {
	return fmt.Sprintf("InvalidGenotype: %s", e.Detail)
}

// TooManySamplesError reports that a single Locus exceeded its configured
// genotype-entry capacity. It is always fatal.
type TooManySamplesError struct {
	Cap int
}

func (e *TooManySamplesError) Error() string {
	return fmt.Sprintf("TooManySamples: exceeded per-locus capacity of %d genotype entries", e.Cap)
}

func errInvalidGenotype(detail string) error {
	return &InvalidGenotypeError{Detail: detail}
}

func errTooManySamples(cap int) error {
	return &TooManySamplesError{Cap: cap}
}

// Go does not give callers a recoverable out-of-memory signal the way the C
// original's malloc/realloc NULL checks do: a failing make() is a fatal,
// unrecoverable runtime error rather than a panic, so LocusQueue growth has
// no AllocationFailure constructor to return.
