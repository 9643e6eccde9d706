package huffman

/*** ---------- MinHeap (빈도 → 병합 노드 우선 → 삽입 순서) ---------- ***/

type entry struct {
	node   *Node
	weight uint64
	seq    uint64
}

// less is the total order used for dequeueing: lower weight first, then
// merged nodes before leaves, then lower insertion sequence (FIFO).
func less(a, b entry) bool {
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	if al, bl := a.node.IsLeaf(), b.node.IsLeaf(); al != bl {
		return bl
	}
	return a.seq < b.seq
}

type minHeap struct {
	arr []entry
	seq uint64
}

func (h *minHeap) size() int { return len(h.arr) }

func (h *minHeap) push(n *Node, weight uint64) {
	h.arr = append(h.arr, entry{node: n, weight: weight, seq: h.seq})
	h.seq++
	i := len(h.arr) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if !less(h.arr[i], h.arr[parent]) {
			return
		}
		h.arr[parent], h.arr[i] = h.arr[i], h.arr[parent]
		i = parent
	}
}

func (h *minHeap) pop() (entry, bool) {
	if h.size() == 0 {
		return entry{}, false
	}
	out := h.arr[0]
	last := h.arr[h.size()-1]
	h.arr = h.arr[:h.size()-1]
	if h.size() == 0 {
		return out, true
	}
	h.arr[0] = last

	parent := 0
	child := 2*parent + 1
	for child < h.size() {
		if child+1 < h.size() && less(h.arr[child+1], h.arr[child]) { // 더 작은 자식
			child++
		}
		if !less(h.arr[child], h.arr[parent]) {
			return out, true
		}
		h.arr[parent], h.arr[child] = h.arr[child], h.arr[parent]
		parent = child
		child = 2*child + 1
	}
	return out, true
}
