package pqueue

// Heap is a binary min-heap over node indices [0, n), ordered by an
// externally-owned value array. Values are pushed in by the caller via
// Insert/DecreaseKey; the heap itself only tracks ordering and position.
type Heap struct {
	value []float64 // value[node] is node's current key
	slot  []int     // slot[node] is node's position in heap, or -1 if absent
	heap  []int     // heap[pos] is the node index stored at pos
}

// New allocates a Heap over node indices [0, n) with every value at +Inf
// and nothing enqueued.
func New(n int, inf float64) *Heap {
	h := &Heap{
		value: make([]float64, n),
		slot:  make([]int, n),
		heap:  make([]int, 0, n),
	}
	for i := 0; i < n; i++ {
		h.value[i] = inf
		h.slot[i] = -1
	}
	return h
}

// Len reports how many nodes are currently enqueued.
func (h *Heap) Len() int { return len(h.heap) }

// Value returns node's current key.
func (h *Heap) Value(node int) float64 { return h.value[node] }

// Contains reports whether node is currently enqueued.
func (h *Heap) Contains(node int) bool { return h.slot[node] >= 0 }

// Insert adds node to the heap with the given value. node must not already
// be enqueued.
func (h *Heap) Insert(node int, value float64) {
	h.value[node] = value
	pos := len(h.heap)
	h.heap = append(h.heap, node)
	h.slot[node] = pos
	h.siftUp(pos)
}

// DecreaseKey lowers node's value and restores the heap invariant. If node
// is not currently enqueued, it is inserted.
func (h *Heap) DecreaseKey(node int, value float64) {
	h.value[node] = value
	pos := h.slot[node]
	if pos < 0 {
		h.Insert(node, value)
		return
	}
	h.siftUp(pos)
}

// FindMin returns the node with the smallest value without removing it.
func (h *Heap) FindMin() int { return h.heap[0] }

// DeleteMin removes and returns the node with the smallest value.
func (h *Heap) DeleteMin() int {
	min := h.heap[0]
	last := len(h.heap) - 1
	h.heap[0] = h.heap[last]
	h.slot[h.heap[0]] = 0
	h.heap = h.heap[:last]
	h.slot[min] = -1
	if len(h.heap) > 0 {
		h.siftDown(0)
	}
	return min
}

func (h *Heap) siftUp(pos int) {
	for pos > 0 {
		parent := (pos - 1) / 2
		if h.value[h.heap[parent]] <= h.value[h.heap[pos]] {
			break
		}
		h.swap(parent, pos)
		pos = parent
	}
}

func (h *Heap) siftDown(pos int) {
	n := len(h.heap)
	for {
		left, right := 2*pos+1, 2*pos+2
		smallest := pos
		if left < n && h.value[h.heap[left]] < h.value[h.heap[smallest]] {
			smallest = left
		}
		if right < n && h.value[h.heap[right]] < h.value[h.heap[smallest]] {
			smallest = right
		}
		if smallest == pos {
			return
		}
		h.swap(pos, smallest)
		pos = smallest
	}
}

func (h *Heap) swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]
	h.slot[h.heap[i]] = i
	h.slot[h.heap[j]] = j
}
