package debugui

// history is a fixed-size ring of samples laid out for ImGui plots.
type history struct {
	samples []float32
	next    int
	filled  bool
}

func newHistory(size int) *history {
	return &history{samples: make([]float32, max(size, 1))}
}

func (h *history) push(v float32) {
	h.samples[h.next] = v
	h.next = (h.next + 1) % len(h.samples)
	if h.next == 0 {
		h.filled = true
	}
}

// average of the samples pushed so far.
func (h *history) average() float32 {
	n := h.next
	if h.filled {
		n = len(h.samples)
	}
	if n == 0 {
		return 0
	}
	var sum float32
	for _, v := range h.samples[:n] {
		sum += v
	}
	return sum / float32(n)
}
