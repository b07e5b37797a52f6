package window

import "math"

// Sizes tracks per-row heights for lists whose rows are not uniform. Rows
// that were never measured count as the estimate. Offsets are answered in
// O(log n) from a Fenwick tree of the differences to the estimate.
type Sizes struct {
	estimate float64
	measured map[int]float64
	tree     []float64 // 1-based Fenwick tree over measured-estimate deltas
}

// NewSizes returns Sizes for n rows of the given estimated height. A
// non-positive or non-finite estimate is replaced by DefaultRowHeight.
func NewSizes(n int, estimate float64) *Sizes {
	if !(estimate > 0) || math.IsInf(estimate, 0) {
		estimate = DefaultRowHeight
	}
	s := &Sizes{estimate: estimate}
	s.Reset(n)
	return s
}

// Reset forgets all measurements and resizes to n rows.
func (s *Sizes) Reset(n int) {
	if n < 0 {
		n = 0
	}
	s.measured = make(map[int]float64)
	s.tree = make([]float64, n+1)
}

// Len returns the number of rows.
func (s *Sizes) Len() int {
	return len(s.tree) - 1
}

// Estimate returns the height assumed for unmeasured rows.
func (s *Sizes) Estimate() float64 {
	return s.estimate
}

// Size returns the measured height of row i, or the estimate.
func (s *Sizes) Size(i int) float64 {
	if h, ok := s.measured[i]; ok {
		return h
	}
	return s.estimate
}

// Set records the measured height of row i. Out-of-range indices and
// non-positive heights are ignored.
func (s *Sizes) Set(i int, height float64) {
	if i < 0 || i >= s.Len() || !(height > 0) || math.IsInf(height, 0) {
		return
	}
	delta := height - s.Size(i)
	s.measured[i] = height
	for j := i + 1; j < len(s.tree); j += j & -j {
		s.tree[j] += delta
	}
}

// Start returns the offset of the top edge of row i. Start(Len()) is the
// total height.
func (s *Sizes) Start(i int) float64 {
	i = clampInt(i, 0, s.Len())
	sum := float64(i) * s.estimate
	for j := i; j > 0; j -= j & -j {
		sum += s.tree[j]
	}
	return sum
}

// Total returns the height of all rows.
func (s *Sizes) Total() float64 {
	return s.Start(s.Len())
}

// IndexAt returns the row whose span contains offset. Offsets past the end
// return Len()-1; an empty list returns 0.
func (s *Sizes) IndexAt(offset float64) int {
	n := s.Len()
	if n == 0 || offset <= 0 {
		return 0
	}
	// Smallest i with Start(i+1) > offset.
	lo, hi := 0, n-1
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if s.Start(mid+1) > offset {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// ComputeMeasured returns the window over sizes. vp.RowHeight is ignored;
// paddings are derived from the measured offsets, so
// PaddingTop + rendered height + PaddingBottom == sizes.Total().
func ComputeMeasured(sizes *Sizes, vp Viewport) Result {
	n := sizes.Len()
	if n == 0 {
		return Result{}
	}
	offset := vp.ScrollOffset
	vp.ScrollOffset = 0
	vp.RowHeight = sizes.Estimate()
	vp, _ = Sanitize(n, vp)
	total := sizes.Total()
	if math.IsNaN(offset) || offset < 0 {
		offset = 0
	}
	vp.ScrollOffset = math.Min(offset, math.Max(0, total-vp.Height))

	first := sizes.IndexAt(vp.ScrollOffset)
	last := first
	if vp.Height > 0 {
		bottom := vp.ScrollOffset + vp.Height
		last = sizes.IndexAt(bottom)
		if sizes.Start(last) < bottom {
			last++
		}
	}

	start, end := expand(first, last, vp.Overscan, n)
	return Result{
		Start:         start,
		End:           end,
		PaddingTop:    sizes.Start(start),
		PaddingBottom: math.Max(0, total-sizes.Start(end)),
	}
}
