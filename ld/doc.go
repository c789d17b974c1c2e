// Package ld computes pairwise linkage-disequilibrium statistics between
// biallelic genetic variants observed across a population of diploid
// individuals.
//
// The package is the streaming core of the LD engine: a sliding window of
// recently-seen loci (LocusQueue), a merge-join haplotype-pair counter, and
// an EM phaser that derives theta, D, r-squared, and D-prime from the nine
// diploid genotype-pair counts at a pair of sites. VCF/BCF decoding and
// command-line handling live outside this package; ld only ever sees
// already-decoded (position, variant id, person id, genotype) tuples.
package ld
