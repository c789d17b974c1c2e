package sitesource

import "testing"

func TestParseRegion(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Region
		wantErr bool
	}{
		{"full range", "chr1:1000-2000", Region{Chrom: "chr1", Start: 1000, End: 2000}, false},
		{"single position", "chr2:500", Region{Chrom: "chr2", Start: 500, End: 500}, false},
		{"bare contig", "chrX", Region{Chrom: "chrX"}, false},
		{"empty string", "", Region{}, true},
		{"empty contig", ":100-200", Region{}, true},
		{"non-numeric start", "chr1:a-200", Region{}, true},
		{"end before start", "chr1:200-100", Region{}, true},
		{"zero position", "chr1:0-100", Region{}, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ParseRegion(test.in)
			if test.wantErr {
				if err == nil {
					t.Fatalf("ParseRegion(%q): expected error, got nil", test.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRegion(%q): unexpected error: %v", test.in, err)
			}
			if got != test.want {
				t.Errorf("ParseRegion(%q) = %+v, want %+v", test.in, got, test.want)
			}
		})
	}
}
