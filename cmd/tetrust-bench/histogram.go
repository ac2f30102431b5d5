package main

import "github.com/kamstrup/intmap"

// Histogram counts samples in fixed-width buckets.
type Histogram struct {
	width  int
	counts *intmap.Map[int, int]
	top    int
}

type Bucket struct {
	Low, High int
	Count     int
}

func NewHistogram(width int) *Histogram {
	return &Histogram{
		width:  max(width, 1),
		counts: intmap.New[int, int](16),
		top:    -1,
	}
}

func (h *Histogram) Add(v int) {
	b := max(v, 0) / h.width
	n, _ := h.counts.Get(b)
	h.counts.Put(b, n+1)
	h.top = max(h.top, b)
}

// Buckets lists every bucket from zero to the highest one seen.
func (h *Histogram) Buckets() []Bucket {
	buckets := make([]Bucket, 0, h.top+1)
	for b := 0; b <= h.top; b++ {
		n, _ := h.counts.Get(b)
		buckets = append(buckets, Bucket{Low: b * h.width, High: (b+1)*h.width - 1, Count: n})
	}
	return buckets
}
