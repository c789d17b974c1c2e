package sitesource

import (
	"fmt"
	"io"

	"github.com/brentp/bix"
	"github.com/brentp/vcfgo"
)

// regionQuery adapts a Region to the Chrom/Start/End interface bix.Query
// expects for an indexed lookup.
type regionQuery struct {
	chrom      string
	start, end int
}

func (r regionQuery) Chrom() string { return r.chrom }
func (r regionQuery) Start() int    { return r.start }
func (r regionQuery) End() int      { return r.end }

// vcfSource reads a single bgzipped-and-tabixed VCF or CSI-indexed BCF
// file, optionally restricted to a sample subset.
type vcfSource struct {
	path        string
	sampleNames []string
	keepSample  []bool // len == len(sampleNames); nil means "keep all"
}

// OpenVCF opens path (a bgzipped, tabix- or CSI-indexed VCF/BCF file) and
// restricts its samples to sampleSubset, if non-nil.
func OpenVCF(path string, sampleSubset map[string]bool) (Source, error) {
	idx, err := bix.New(path)
	if err != nil {
		return nil, fmt.Errorf("FileOpenFailure: opening %s: %w", path, err)
	}
	if idx.VReader == nil || idx.VReader.Header == nil {
		idx.Close()
		return nil, fmt.Errorf("HeaderParseFailure: %s has no VCF header", path)
	}
	names := idx.VReader.Header.SampleNames
	idx.Close()

	src := &vcfSource{path: path, sampleNames: names}
	if sampleSubset != nil {
		src.keepSample = make([]bool, len(names))
		for i, name := range names {
			src.keepSample[i] = sampleSubset[name]
		}
	}
	return src, nil
}

func (s *vcfSource) SampleNames() ([]string, error) {
	return s.sampleNames, nil
}

func (s *vcfSource) Close() error { return nil }

func (s *vcfSource) Open(region Region) (Iterator, error) {
	idx, err := bix.New(s.path)
	if err != nil {
		return nil, fmt.Errorf("FileOpenFailure: opening %s: %w", s.path, err)
	}
	q := regionQuery{chrom: region.Chrom, start: region.Start, end: region.End}
	it, err := idx.Query(q)
	if err != nil {
		idx.Close()
		return nil, fmt.Errorf("IndexUnavailable: querying %s at %s: %w", s.path, region.Chrom, err)
	}
	return &vcfIterator{idx: idx, it: it, keepSample: s.keepSample}, nil
}

type vcfIterator struct {
	idx        *bix.Bix
	it         bix.Iterator
	keepSample []bool

	site Site
	err  error
}

func (it *vcfIterator) Scan() bool {
	for {
		raw, err := it.it.Next()
		if err == io.EOF {
			return false
		}
		if err != nil {
			it.err = err
			return false
		}
		variant, ok := raw.(*vcfgo.Variant)
		if !ok {
			it.err = fmt.Errorf("HeaderParseFailure: unexpected record type %T", raw)
			return false
		}
		site, ok := decodeSite(variant, it.keepSample)
		if !ok {
			continue
		}
		it.site = site
		return true
	}
}

func (it *vcfIterator) Site() Site { return it.site }
func (it *vcfIterator) Err() error { return it.err }

func (it *vcfIterator) Close() error {
	it.idx.Close()
	return it.err
}

// decodeSite applies the record-level filters: ploidy must be 2, no sample
// may carry a missing or ALT2+ allele on either chromosome, and at least
// one sample must carry the ALT allele. The returned position is shifted
// by one extra base for non-SNP variants to compensate for the anchor
// base VCF includes in REF/ALT.
func decodeSite(v *vcfgo.Variant, keepSample []bool) (Site, bool) {
	hasAlt := false
	calls := make([]SampleCall, 0, len(v.Samples))
	for i, sample := range v.Samples {
		if keepSample != nil && (i >= len(keepSample) || !keepSample[i]) {
			continue
		}
		if len(sample.GT) != 2 {
			return Site{}, false
		}
		a0, a1, ok := decodeAlleles(sample.GT)
		if !ok {
			return Site{}, false
		}
		if a0 == 2 || a1 == 2 {
			hasAlt = true
		}
		calls = append(calls, SampleCall{PersonID: int32(i + 1), Allele0: a0, Allele1: a1})
	}
	if !hasAlt || len(calls) == 0 {
		return Site{}, false
	}

	position := int32(v.Pos)
	if !isSNP(v) {
		position++
	}
	return Site{Position: position, VarID: v.Id(), Samples: calls}, true
}

// decodeAlleles maps vcfgo's allele-index encoding (-1 missing, 0 REF, 1
// ALT1, 2+ further ALTs) onto this package's own convention (0 missing, 1
// REF, 2 ALT1, 3 ALT2+), and rejects the genotype if either chromosome is
// missing or names an allele beyond ALT1.
func decodeAlleles(gt []int) (a0, a1 uint8, ok bool) {
	first, firstOK := mapAllele(gt[0])
	second, secondOK := mapAllele(gt[1])
	if !firstOK || !secondOK || first == 0 || second == 0 || first == 3 || second == 3 {
		return 0, 0, false
	}
	return first, second, true
}

func mapAllele(idx int) (uint8, bool) {
	switch {
	case idx < 0:
		return 0, true // missing
	case idx == 0:
		return 1, true // REF
	case idx == 1:
		return 2, true // ALT1
	default:
		return 3, true // ALT2+
	}
}

func isSNP(v *vcfgo.Variant) bool {
	if len(v.Ref()) != 1 {
		return false
	}
	for _, alt := range v.Alt() {
		if len(alt) != 1 {
			return false
		}
	}
	return true
}
