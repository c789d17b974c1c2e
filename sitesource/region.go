package sitesource

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseRegion parses a "chr:start-end" region string into a Region with
// 1-based, inclusive Start/End. A bare "chr" with no colon is accepted and
// yields a zero Start/End, meaning "the whole contig".
func ParseRegion(s string) (Region, error) {
	if len(s) == 0 {
		return Region{}, fmt.Errorf("sitesource: empty region string")
	}
	colon := strings.IndexByte(s, ':')
	if colon == -1 {
		return Region{Chrom: s}, nil
	}
	if colon == 0 {
		return Region{}, fmt.Errorf("sitesource: region %q has no contig name", s)
	}
	chrom := s[:colon]
	rangeStr := s[colon+1:]
	dash := strings.IndexByte(rangeStr, '-')
	if dash == -1 {
		pos, err := strconv.Atoi(rangeStr)
		if err != nil {
			return Region{}, fmt.Errorf("sitesource: invalid position in region %q: %v", s, err)
		}
		if pos <= 0 {
			return Region{}, fmt.Errorf("sitesource: position %d in region %q is not positive", pos, s)
		}
		return Region{Chrom: chrom, Start: pos, End: pos}, nil
	}
	start, err := strconv.Atoi(rangeStr[:dash])
	if err != nil {
		return Region{}, fmt.Errorf("sitesource: invalid start in region %q: %v", s, err)
	}
	end, err := strconv.Atoi(rangeStr[dash+1:])
	if err != nil {
		return Region{}, fmt.Errorf("sitesource: invalid end in region %q: %v", s, err)
	}
	if start <= 0 || end < start {
		return Region{}, fmt.Errorf("sitesource: region %q has an invalid range", s)
	}
	return Region{Chrom: chrom, Start: start, End: end}, nil
}
