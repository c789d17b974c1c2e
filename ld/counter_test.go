package ld

import "testing"

func buildLocus(position int32, varID string, calls ...GenotypeCall) *Locus {
	if len(calls) == 0 {
		return &Locus{Position: position, VarID: varID}
	}
	l := NewLocus(position, varID, calls[0].PersonID, calls[0].Genotype)
	for _, c := range calls[1:] {
		if err := l.AppendEntry(c.PersonID, c.Genotype, DefaultMaxSamplesPerLocus); err != nil {
			panic(err)
		}
	}
	return l
}

func TestCountHaplotypePairsOnlySharedSamples(t *testing.T) {
	first := buildLocus(100, "rs1",
		GenotypeCall{PersonID: 1, Genotype: GenotypeAA},
		GenotypeCall{PersonID: 2, Genotype: GenotypeAa},
		GenotypeCall{PersonID: 3, Genotype: Genotypeaa},
	)
	second := buildLocus(200, "rs2",
		GenotypeCall{PersonID: 2, Genotype: GenotypeAA},
		GenotypeCall{PersonID: 3, Genotype: GenotypeAa},
		GenotypeCall{PersonID: 4, Genotype: Genotypeaa},
	)

	hc := CountHaplotypePairs(first, second)
	if len(hc.Haplotypes) != 2 {
		t.Fatalf("len(Haplotypes) = %d, want 2 (only persons 2 and 3 are shared)", len(hc.Haplotypes))
	}
	if hc.Counters[idxAaBB] != 1 {
		t.Errorf("Counters[idxAaBB] = %d, want 1", hc.Counters[idxAaBB])
	}
	if hc.Counters[idxaaBb] != 1 {
		t.Errorf("Counters[idxaaBb] = %d, want 1", hc.Counters[idxaaBb])
	}

	var sum int
	for _, c := range hc.Counters {
		sum += c
	}
	if sum != len(hc.Haplotypes) {
		t.Errorf("sum(Counters) = %d, want %d (== len(Haplotypes))", sum, len(hc.Haplotypes))
	}
}

func TestCountHaplotypePairsNoOverlap(t *testing.T) {
	first := buildLocus(100, "rs1", GenotypeCall{PersonID: 1, Genotype: GenotypeAA})
	second := buildLocus(200, "rs2", GenotypeCall{PersonID: 2, Genotype: GenotypeAA})

	hc := CountHaplotypePairs(first, second)
	if len(hc.Haplotypes) != 0 {
		t.Fatalf("len(Haplotypes) = %d, want 0", len(hc.Haplotypes))
	}
}

func TestCountHaplotypePairsEmptyLocus(t *testing.T) {
	first := buildLocus(100, "rs1")
	second := buildLocus(200, "rs2", GenotypeCall{PersonID: 1, Genotype: GenotypeAA})

	hc := CountHaplotypePairs(first, second)
	if len(hc.Haplotypes) != 0 {
		t.Fatalf("len(Haplotypes) = %d, want 0", len(hc.Haplotypes))
	}
}
