package ld

import (
	"bytes"
	"strings"
	"testing"
)

func strongCalls() ([]GenotypeCall, []GenotypeCall) {
	g1 := concat(repeat(GenotypeAA, 15), repeat(GenotypeAA, 5), repeat(Genotypeaa, 5), repeat(Genotypeaa, 25))
	g2 := concat(repeat(GenotypeAA, 15), repeat(Genotypeaa, 5), repeat(GenotypeAA, 5), repeat(Genotypeaa, 25))
	c1 := make([]GenotypeCall, len(g1))
	c2 := make([]GenotypeCall, len(g2))
	for i := range g1 {
		c1[i] = GenotypeCall{PersonID: int32(i + 1), Genotype: g1[i]}
		c2[i] = GenotypeCall{PersonID: int32(i + 1), Genotype: g2[i]}
	}
	return c1, c2
}

func TestCoordinatorEmitsPairWithinWindow(t *testing.T) {
	var buf bytes.Buffer
	c := NewCoordinator(1000, "", 0, &buf)
	calls1, calls2 := strongCalls()

	if err := c.AddSite(1000, "rs1", calls1); err != nil {
		t.Fatalf("AddSite: %v", err)
	}
	if err := c.AddSite(1500, "rs2", calls2); err != nil {
		t.Fatalf("AddSite: %v", err)
	}
	if err := c.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	if buf.Len() == 0 {
		t.Fatal("expected an emitted record after flush")
	}
	if !strings.Contains(buf.String(), "rs1") || !strings.Contains(buf.String(), "rs2") {
		t.Errorf("expected record to reference both variants, got %q", buf.String())
	}
}

func TestCoordinatorEvictsOutsideWindowBeforeFlush(t *testing.T) {
	var buf bytes.Buffer
	c := NewCoordinator(100, "", 0, &buf)
	calls1, calls2 := strongCalls()

	if err := c.AddSite(1000, "rs1", calls1); err != nil {
		t.Fatalf("AddSite: %v", err)
	}
	// Far outside the window: rs1 should be evicted (and found to have no
	// partner, since the queue was empty of anything else) before rs2 is
	// enqueued.
	if err := c.AddSite(5000, "rs2", calls2); err != nil {
		t.Fatalf("AddSite: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no record for a pair split across the window, got %q", buf.String())
	}
	if err := c.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no record after flush when loci never overlapped, got %q", buf.String())
	}
}

func TestCoordinatorCrossFileWindowSizeDisablesFilter(t *testing.T) {
	var buf bytes.Buffer
	c := NewCoordinator(CrossFileWindowSize, "", 0, &buf)
	calls1, calls2 := strongCalls()

	if err := c.AddSite(1, "rs1", calls1); err != nil {
		t.Fatalf("AddSite: %v", err)
	}
	if err := c.AddSite(900_000_000, "rs2", calls2); err != nil {
		t.Fatalf("AddSite: %v", err)
	}
	if err := c.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected CrossFileWindowSize to keep distant loci paired")
	}
}

func TestCoordinatorPropagatesTooManySamples(t *testing.T) {
	var buf bytes.Buffer
	c := NewCoordinator(1000, "", 1, &buf)
	calls := []GenotypeCall{
		{PersonID: 1, Genotype: GenotypeAA},
		{PersonID: 2, Genotype: GenotypeAa},
	}
	if err := c.AddSite(1, "rs1", calls); err == nil {
		t.Fatal("expected TooManySamplesError when a locus exceeds its capacity")
	}
}
