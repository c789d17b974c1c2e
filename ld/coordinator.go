package ld

import "io"

// Coordinator drives the sliding-window evict/enqueue cycle over a
// coordinate-sorted stream of sites: each incoming site first evicts (and
// emits pairs for) any queued locus that has fallen outside the window
// relative to the new site, then the new site is enqueued. A final Flush
// drains whatever remains once the stream ends.
type Coordinator struct {
	queue         *LocusQueue
	windowSize    int32
	targetVariant string
	w             io.Writer
}

// NewCoordinator creates a Coordinator. windowSize <= 0 disables the window
// filter entirely (the two-file-mode trick uses CrossFileWindowSize rather
// than 0, since 0 is also Flush's "drain everything" sentinel).
// maxSamplesPerLocus bounds each Locus's genotype-entry capacity; <= 0 falls
// back to DefaultMaxSamplesPerLocus.
func NewCoordinator(windowSize int32, targetVariant string, maxSamplesPerLocus int, w io.Writer) *Coordinator {
	return &Coordinator{
		queue:         NewLocusQueue(maxSamplesPerLocus),
		windowSize:    windowSize,
		targetVariant: targetVariant,
		w:             w,
	}
}

// AddSite feeds one site's genotype calls into the coordinator: it evicts
// and emits any queued locus now further than windowSize from position,
// resets the queue's backing storage if that eviction drained it, then
// enqueues the new locus. calls may arrive in any PersonID order, since the
// Locus keeps its entries sorted as they are appended; an empty calls
// slice is a no-op beyond eviction, since a site with no genotype calls
// contributes nothing to any pair.
func (c *Coordinator) AddSite(position int32, varID string, calls []GenotypeCall) error {
	for !c.queue.Empty() {
		head := c.queue.PeekHead()
		if c.windowSize > 0 {
			dist := position - head.Position
			if dist < 0 {
				dist = -dist
			}
			if dist <= c.windowSize {
				break
			}
		} else {
			break
		}
		if err := EmitPairs(c.queue, EmitOptions{TargetVariant: c.targetVariant}, c.w); err != nil {
			return err
		}
		c.queue.Dequeue()
	}
	c.queue.ResetIfDrained()

	if len(calls) == 0 {
		return nil
	}
	l := c.queue.Enqueue(position, varID, calls[0].PersonID, calls[0].Genotype)
	for _, call := range calls[1:] {
		if err := l.AppendEntry(call.PersonID, call.Genotype, c.queue.MaxSamplesPerLocus()); err != nil {
			return err
		}
	}
	return nil
}

// Flush emits pairs for, then drains, every locus still queued. Call it
// once after the last AddSite to account for loci that never fell outside
// the window before the stream ended.
func (c *Coordinator) Flush() error {
	for !c.queue.Empty() {
		if err := EmitPairs(c.queue, EmitOptions{TargetVariant: c.targetVariant}, c.w); err != nil {
			return err
		}
		c.queue.Dequeue()
	}
	c.queue.ResetIfDrained()
	return nil
}
