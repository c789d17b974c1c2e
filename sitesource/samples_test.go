package sitesource

import (
	"context"
	"testing"
)

func TestParseSampleSubsetInlineList(t *testing.T) {
	set, err := ParseSampleSubset(context.Background(), "sampleA,sampleB, sampleC")
	if err != nil {
		t.Fatalf("ParseSampleSubset: unexpected error: %v", err)
	}
	if len(set) != 3 || !set["sampleA"] || !set["sampleB"] || !set["sampleC"] {
		t.Errorf("set = %v, want sampleA, sampleB, sampleC", set)
	}
}

func TestParseSampleSubsetEmptyMeansNoFilter(t *testing.T) {
	set, err := ParseSampleSubset(context.Background(), "")
	if err != nil {
		t.Fatalf("ParseSampleSubset: unexpected error: %v", err)
	}
	if set != nil {
		t.Errorf("set = %v, want nil for an unset -l/--samples flag", set)
	}
}

func TestParseSampleSubsetMissingFileIsFatal(t *testing.T) {
	if _, err := ParseSampleSubset(context.Background(), "/nonexistent/path/to/samples.txt"); err == nil {
		t.Fatal("expected an error for a sample-subset path that does not exist")
	}
}
