package ld

import (
	"fmt"
	"io"
	"math"

	"github.com/grailbio/base/log"
)

// CrossFileWindowSize is the window size two-file mode forces: larger than
// any genomic coordinate, so the window filter in EmitPairs never
// rejects a pair. It is the only place two-file mode differs from
// one-file mode.
const CrossFileWindowSize int32 = 1_000_000_000

// EmitOptions configures one EmitPairs call.
type EmitOptions struct {
	// WindowSize is the maximum allowed coordinate distance between the
	// head locus and a candidate partner. <= 0 disables the window filter
	// entirely (used for the end-of-stream flush).
	WindowSize int32
	// TargetVariant, if non-empty, restricts emission to pairs where at
	// least one of the two variant IDs equals this value.
	TargetVariant string
}

// Record is one emitted LD pair: tab-separated, %f-formatted floats (6
// decimal digits), newline terminated. The two leading "1" fields are
// legacy placeholders preserved for output-format compatibility.
type Record struct {
	HeadPosition  int32
	HeadVarID     string
	OtherPosition int32
	OtherVarID    string
	R2            float64
	DPrimeAbs     float64
	N             int
}

// WriteTo writes the record in its canonical tab-separated form.
func (r Record) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "1\t1\t%d\t%s\t%d\t%s\t%f\t%f\t%d\n",
		r.HeadPosition, r.HeadVarID, r.OtherPosition, r.OtherVarID, r.R2, r.DPrimeAbs, r.N)
	return int64(n), err
}

// EmitPairs walks the queue from the entry after its head to its tail,
// computing and emitting LD statistics for the head locus paired with each
// later one that survives the window, variant, and output-gate filters.
// Output ordering follows queue order, i.e. increasing position within the
// stream.
func EmitPairs(q *LocusQueue, opts EmitOptions, w io.Writer) error {
	head := q.PeekHead()
	if head == nil {
		return nil
	}
	for _, other := range q.IterAfterHead() {
		if opts.WindowSize > 0 {
			dist := head.Position - other.Position
			if dist < 0 {
				dist = -dist
			}
			if dist > opts.WindowSize {
				continue
			}
		}
		if opts.TargetVariant != "" && head.VarID != opts.TargetVariant && other.VarID != opts.TargetVariant {
			continue
		}
		hc := CountHaplotypePairs(head, other)
		stats, converged := ComputeStats(hc)
		if !converged {
			log.Error.Printf("ld: EM phasing did not converge for %s:%d / %s:%d after %d iterations, using theta=%f",
				head.VarID, head.Position, other.VarID, other.Position, MaxEMIterations, stats.Theta)
		}
		if stats.R2 < 0.05 || stats.R2 > 1.0 || math.Abs(stats.DPrime) > 1.0 || stats.N < MinSharedSamples {
			continue
		}
		rec := Record{
			HeadPosition:  head.Position,
			HeadVarID:     head.VarID,
			OtherPosition: other.Position,
			OtherVarID:    other.VarID,
			R2:            stats.R2,
			DPrimeAbs:     math.Abs(stats.DPrime),
			N:             stats.N,
		}
		if _, err := rec.WriteTo(w); err != nil {
			return err
		}
	}
	return nil
}
