package ld

// HaplotypeCounts is the result of merge-joining two Loci on PersonID: a
// 16-entry direct-indexed counter array (only the 9 canonical diploid
// genotype-pair indices are ever nonzero) plus the packed haplotype-pair
// index observed for each shared sample, in the order the samples were
// matched.
type HaplotypeCounts struct {
	Counters   [16]int
	Haplotypes []uint8
}

// CountHaplotypePairs merge-joins first and second on PersonID in O(m+n),
// assuming both Loci's genotype calls are sorted by PersonID (an invariant
// Locus.AppendEntry maintains). Samples present in only one Locus are
// ignored. sum(Counters) always equals len(Haplotypes), the number of
// shared samples.
func CountHaplotypePairs(first, second *Locus) HaplotypeCounts {
	fg := first.genotypes
	sg := second.genotypes
	var hc HaplotypeCounts
	if len(fg) > 0 && len(sg) > 0 {
		hc.Haplotypes = make([]uint8, 0, minInt(len(fg), len(sg)))
	}
	i, j := 0, 0
	for i < len(fg) && j < len(sg) {
		switch {
		case fg[i].PersonID == sg[j].PersonID:
			h := PackHaplotype(fg[i].Genotype, sg[j].Genotype)
			hc.Counters[h]++
			hc.Haplotypes = append(hc.Haplotypes, h)
			i++
			j++
		case fg[i].PersonID < sg[j].PersonID:
			i++
		default:
			j++
		}
	}
	return hc
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
