package ld

const initialQueueCapacity = 256

// LocusQueue is a growable FIFO of Locus records: a sliding window over a
// coordinate-sorted stream of sites. tail == head-1 denotes an empty queue;
// tail >= head denotes a non-empty one holding tail-head+1 live entries.
// Capacity doubles on overflow. Once fully drained (tail < head) the queue
// resets to head=0, tail=-1 to reclaim prefix space, mirroring the source's
// Locus_list.
type LocusQueue struct {
	head, tail int
	loci       []*Locus
	maxSamples int
}

// NewLocusQueue creates an empty LocusQueue. maxSamplesPerLocus bounds the
// number of genotype entries any one Locus may hold; values <= 0 fall back
// to DefaultMaxSamplesPerLocus.
func NewLocusQueue(maxSamplesPerLocus int) *LocusQueue {
	if maxSamplesPerLocus <= 0 {
		maxSamplesPerLocus = DefaultMaxSamplesPerLocus
	}
	return &LocusQueue{
		head:       0,
		tail:       -1,
		loci:       make([]*Locus, initialQueueCapacity),
		maxSamples: maxSamplesPerLocus,
	}
}

// MaxSamplesPerLocus returns the per-locus genotype-entry capacity this
// queue enforces.
func (q *LocusQueue) MaxSamplesPerLocus() int {
	return q.maxSamples
}

// Empty reports whether the queue currently holds no live Locus entries.
func (q *LocusQueue) Empty() bool {
	return q.tail < q.head
}

// Len returns the number of live entries in the queue.
func (q *LocusQueue) Len() int {
	if q.Empty() {
		return 0
	}
	return q.tail - q.head + 1
}

// Enqueue appends a new Locus seeded with one genotype entry, growing the
// backing storage (doubling) if necessary, and returns it so the caller can
// append further genotype entries to it.
func (q *LocusQueue) Enqueue(position int32, varID string, personID int32, g Genotype) *Locus {
	q.tail++
	if q.tail == len(q.loci) {
		q.grow()
	}
	l := NewLocus(position, varID, personID, g)
	q.loci[q.tail] = l
	return l
}

func (q *LocusQueue) grow() {
	grown := make([]*Locus, len(q.loci)*2)
	copy(grown, q.loci)
	q.loci = grown
}

// Dequeue advances head by one, releasing the previous head entry for
// garbage collection.
func (q *LocusQueue) Dequeue() {
	if q.Empty() {
		return
	}
	q.loci[q.head] = nil
	q.head++
}

// ResetIfDrained resets head and tail to their initial empty-queue values
// if the queue has been fully drained, reclaiming the prefix of the
// backing slice for future growth.
func (q *LocusQueue) ResetIfDrained() {
	if q.tail < q.head {
		q.head = 0
		q.tail = -1
	}
}

// PeekHead returns the Locus at the head of the queue, or nil if empty.
func (q *LocusQueue) PeekHead() *Locus {
	if q.Empty() {
		return nil
	}
	return q.loci[q.head]
}

// IterAfterHead returns the live Loci strictly after the head, in queue
// (insertion) order. The returned slice must not be modified.
func (q *LocusQueue) IterAfterHead() []*Locus {
	if q.Len() < 2 {
		return nil
	}
	return q.loci[q.head+1 : q.tail+1]
}
