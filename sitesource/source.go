// Package sitesource adapts indexed VCF/BCF files into the streaming
// site abstraction the ld package's Coordinator consumes. It owns all of
// the plumbing around that core: region seeking, sample-subset and
// include-variants filtering, and the record-level decode rules (ploidy,
// missingness, multiallelic, SNP position shift).
package sitesource

import "github.com/grailbio/ld/ld"

// SampleCall is one sample's decoded diploid genotype at a Site, before
// A/a encoding. Allele0 and Allele1 follow the record-level convention: 1
// means the reference allele, 2 means the single supported ALT allele.
// Records carrying 0 (missing) or 3+ (multiallelic) at either chromosome
// are discarded upstream in the Iterator and never reach a SampleCall.
type SampleCall struct {
	PersonID int32
	Allele0  uint8
	Allele1  uint8
}

// Site is one variant record surviving record-level filtering: a ploidy-2,
// biallelic, fully-called site with its position already shifted for
// non-SNP variants.
type Site struct {
	Position int32
	VarID    string
	Samples  []SampleCall
}

// GenotypeCalls converts a Site's SampleCalls into ld.GenotypeCall values,
// encoding each (Allele0, Allele1) pair into the 2-bit Genotype the core
// engine operates on. REF (1) maps to 'A', ALT (2) maps to 'a'.
func (s Site) GenotypeCalls() ([]ld.GenotypeCall, error) {
	out := make([]ld.GenotypeCall, 0, len(s.Samples))
	for _, sc := range s.Samples {
		c0, c1 := alleleByte(sc.Allele0), alleleByte(sc.Allele1)
		g, err := ld.EncodeGenotype(c0, c1)
		if err != nil {
			return nil, err
		}
		out = append(out, ld.GenotypeCall{PersonID: sc.PersonID, Genotype: g})
	}
	return out, nil
}

func alleleByte(allele uint8) byte {
	if allele == 1 {
		return 'A'
	}
	return 'a'
}

// Region identifies a 1-based, inclusive genomic interval to query.
type Region struct {
	Chrom string
	Start int
	End   int
}

// Source opens indexed VCF/BCF files and yields Iterators over genomic
// regions. Implementations must support both the bgzipped-and-tabixed VCF
// and the CSI-indexed BCF case transparently.
type Source interface {
	// SampleNames returns the sample IDs in header order; person_id is
	// assigned as the 1-based index into this slice.
	SampleNames() ([]string, error)

	// Open returns an Iterator over the given region. The caller must
	// Close it when done.
	Open(region Region) (Iterator, error)

	// Close releases the underlying file handle and index.
	Close() error
}

// Iterator yields Sites in ascending position order within its region, one
// per call to Scan.
type Iterator interface {
	// Scan advances to the next surviving Site. It returns false at the
	// end of the region or on error; call Err to distinguish the two.
	Scan() bool

	// Site returns the current Site. Valid only after Scan returns true.
	Site() Site

	// Err returns the first error encountered, if any.
	Err() error

	// Close must be called exactly once; it returns Err().
	Close() error
}
