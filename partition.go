package tandem

// span returns the contiguous half-open index range [lo, hi) owned by a
// worker slot. Ranges tile [0, n) exactly and differ in size by at most one,
// so no slot is idle while another holds two extra indexes.
func span(slot, workers, n int) (lo, hi int) {
	lo = slot * n / workers
	hi = (slot + 1) * n / workers
	return lo, hi
}

// forEachIndex invokes visit with every input index owned by slot under the
// given partition policy, in increasing index order.
func forEachIndex(p Partition, slot, workers, n int, visit func(i int)) {
	switch p {
	case RoundRobin:
		for i := slot; i < n; i += workers {
			visit(i)
		}
	default:
		lo, hi := span(slot, workers, n)
		for i := lo; i < hi; i++ {
			visit(i)
		}
	}
}
