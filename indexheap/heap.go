package indexheap

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by Heap.
var (
	// ErrEmptyHeap indicates ExtractMin or PeekMin on a heap with no present nodes.
	ErrEmptyHeap = errors.New("indexheap: heap is empty")

	// ErrInvalidNode indicates a node id outside [1, capacity].
	ErrInvalidNode = errors.New("indexheap: node id out of range")

	// ErrCapacity indicates New was asked for a negative capacity or one above
	// MaxCapacity.
	ErrCapacity = errors.New("indexheap: capacity out of range")

	// ErrCorrupted is reported by Validate when an invariant does not hold.
	ErrCorrupted = errors.New("indexheap: invariant violated")
)

// absent marks a node id with no slot.
const absent = -1

// MaxCapacity is the largest node id a Heap can track.
const MaxCapacity = math.MaxInt32

// Heap is an indexed binary min-heap keyed by int64 over node ids 1..n.
type Heap struct {
	keys   []int64 // live region is keys[:len(keys)]
	nodeAt []int   // slot → node id, parallel to keys
	slotOf []int   // node id → slot, or absent; index 0 unused
}

// New returns an empty heap with room for nodes 1..n, all implicitly at +∞.
// Returns ErrCapacity if n is negative or above MaxCapacity.
// Complexity: O(n).
func New(n int) (*Heap, error) {
	if n < 0 || n > MaxCapacity {
		return nil, fmt.Errorf("%w: n=%d, max %d", ErrCapacity, n, MaxCapacity)
	}
	h := &Heap{
		keys:   make([]int64, 0, n),
		nodeAt: make([]int, 0, n),
		slotOf: make([]int, n+1),
	}
	for i := range h.slotOf {
		h.slotOf[i] = absent
	}

	return h, nil
}

// Len returns the number of present nodes.
func (h *Heap) Len() int { return len(h.keys) }

// IsEmpty reports whether no node is present.
func (h *Heap) IsEmpty() bool { return len(h.keys) == 0 }

// Cap returns the highest node id the heap accepts.
func (h *Heap) Cap() int { return len(h.slotOf) - 1 }

// Contains reports whether v currently occupies a slot.
func (h *Heap) Contains(v int) bool {
	return v >= 1 && v < len(h.slotOf) && h.slotOf[v] != absent
}

// Key returns v's current key and true if v is present.
func (h *Heap) Key(v int) (int64, bool) {
	if !h.Contains(v) {
		return 0, false
	}

	return h.keys[h.slotOf[v]], true
}

// DecreaseKeyOrInsert inserts v with key if v is not present, or lowers v's
// key if key is strictly smaller than the current one. Otherwise it does
// nothing. It reports whether the heap changed.
//
// A node that was extracted earlier is not present any more and is inserted
// again; callers that finalize nodes on extraction must filter them first.
func (h *Heap) DecreaseKeyOrInsert(v int, key int64) (bool, error) {
	if v < 1 || v >= len(h.slotOf) {
		return false, fmt.Errorf("%w: node %d with capacity %d", ErrInvalidNode, v, h.Cap())
	}

	i := h.slotOf[v]
	if i == absent {
		i = len(h.keys)
		h.keys = append(h.keys, key)
		h.nodeAt = append(h.nodeAt, v)
		h.slotOf[v] = i
	} else if key < h.keys[i] {
		h.keys[i] = key
	} else {
		return false, nil
	}
	h.up(i)

	return true, nil
}

// PeekMin returns the node with the smallest key without removing it.
func (h *Heap) PeekMin() (int, int64, error) {
	if len(h.keys) == 0 {
		return 0, 0, ErrEmptyHeap
	}

	return h.nodeAt[0], h.keys[0], nil
}

// ExtractMin removes and returns the node with the smallest key.
//
// The root is swapped with the last live slot, the live region shrinks by one,
// and the new root sifts down toward its smaller child (left on ties).
func (h *Heap) ExtractMin() (int, int64, error) {
	n := len(h.keys)
	if n == 0 {
		return 0, 0, ErrEmptyHeap
	}

	v, key := h.nodeAt[0], h.keys[0]
	last := n - 1
	h.swap(0, last)
	h.keys = h.keys[:last]
	h.nodeAt = h.nodeAt[:last]
	h.slotOf[v] = absent
	h.down(0)

	return v, key, nil
}

// Validate checks the heap property and the slot/node bijection.
// It returns an error wrapping ErrCorrupted describing the first violation.
// Complexity: O(n).
func (h *Heap) Validate() error {
	n := len(h.keys)
	if len(h.nodeAt) != n {
		return fmt.Errorf("%w: %d keys but %d node slots", ErrCorrupted, n, len(h.nodeAt))
	}

	var l, r, v int
	for i := 0; i < n; i++ {
		l, r = 2*i+1, 2*i+2
		if l < n && h.keys[l] < h.keys[i] {
			return fmt.Errorf("%w: keys[%d]=%d > left child keys[%d]=%d", ErrCorrupted, i, h.keys[i], l, h.keys[l])
		}
		if r < n && h.keys[r] < h.keys[i] {
			return fmt.Errorf("%w: keys[%d]=%d > right child keys[%d]=%d", ErrCorrupted, i, h.keys[i], r, h.keys[r])
		}
		v = h.nodeAt[i]
		if v < 1 || v >= len(h.slotOf) || h.slotOf[v] != i {
			return fmt.Errorf("%w: slot %d holds node %d whose slot is not %d", ErrCorrupted, i, v, i)
		}
	}

	present := 0
	for v = 1; v < len(h.slotOf); v++ {
		if h.slotOf[v] == absent {
			continue
		}
		present++
		if h.slotOf[v] >= n || h.nodeAt[h.slotOf[v]] != v {
			return fmt.Errorf("%w: node %d maps to slot %d outside the live region", ErrCorrupted, v, h.slotOf[v])
		}
	}
	if present != n {
		return fmt.Errorf("%w: %d nodes mapped but %d live slots", ErrCorrupted, present, n)
	}

	return nil
}

// up moves slot i toward the root while it is smaller than its parent.
func (h *Heap) up(i int) {
	var p int
	for i > 0 {
		p = (i - 1) / 2
		if h.keys[p] <= h.keys[i] {
			return
		}
		h.swap(i, p)
		i = p
	}
}

// down moves slot i toward the leaves while a child is smaller.
// The smaller child is chosen with strict less-than, so the left child wins ties.
func (h *Heap) down(i int) {
	n := len(h.keys)
	var l, r, m int
	for {
		l = 2*i + 1
		if l >= n {
			return
		}
		m = l
		if r = l + 1; r < n && h.keys[r] < h.keys[l] {
			m = r
		}
		if h.keys[i] <= h.keys[m] {
			return
		}
		h.swap(i, m)
		i = m
	}
}

// swap exchanges slots i and j, keeping keys, nodeAt and slotOf in step.
func (h *Heap) swap(i, j int) {
	h.keys[i], h.keys[j] = h.keys[j], h.keys[i]
	h.nodeAt[i], h.nodeAt[j] = h.nodeAt[j], h.nodeAt[i]
	h.slotOf[h.nodeAt[i]] = i
	h.slotOf[h.nodeAt[j]] = j
}
