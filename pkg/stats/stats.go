// Package stats computes descriptive statistics over sub-image views.
// All functions iterate the child region through the view's index
// translation, so only the child's elements are ever touched; the parent
// buffer is never copied beyond the gathered float64 sample.
package stats

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"sliceview/pkg/view"
)

// Numeric covers the element types a view can be summarized over
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Summary holds the descriptive statistics of one view's child region
type Summary struct {
	// Mean is the arithmetic mean of the child's elements
	Mean float64

	// StdDev is the sample standard deviation
	StdDev float64

	// Min and Max are the smallest and largest element values
	Min float64
	Max float64

	// Count is the number of elements in the child region
	Count int
}

// gather reads every child element through the view into a float64 sample
func gather[T Numeric](v *view.SliceView[T]) []float64 {
	n := v.ChildDims.Columns * v.ChildDims.Rows
	sample := make([]float64, n)
	for i := 0; i < n; i++ {
		sample[i] = float64(v.At(i))
	}
	return sample
}

// Summarize computes mean, standard deviation and range over the view's
// child region. A zero-extent child yields the zero Summary.
func Summarize[T Numeric](v *view.SliceView[T]) Summary {
	sample := gather(v)
	if len(sample) == 0 {
		return Summary{}
	}

	return Summary{
		Mean:   stat.Mean(sample, nil),
		StdDev: stat.StdDev(sample, nil),
		Min:    floats.Min(sample),
		Max:    floats.Max(sample),
		Count:  len(sample),
	}
}

// Histogram bins the child's elements into the given number of
// equal-width bins spanning the observed value range and returns the
// per-bin counts. Values equal to the range maximum fall in the last bin.
func Histogram[T Numeric](v *view.SliceView[T], bins int) ([]float64, error) {
	if bins <= 0 {
		return nil, fmt.Errorf("bin count must be positive")
	}

	sample := gather(v)
	if len(sample) == 0 {
		return nil, fmt.Errorf("view has no elements")
	}
	sort.Float64s(sample)

	lo := sample[0]
	hi := sample[len(sample)-1]
	if hi == lo {
		// Degenerate constant sample: give the dividers nonzero width
		// so everything lands in the first bin
		hi = lo + 1
	}

	dividers := make([]float64, bins+1)
	floats.Span(dividers, lo, hi)
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	return stat.Histogram(nil, dividers, sample, nil), nil
}

// Entropy computes the Shannon entropy in nats of the child's value
// distribution, estimated from a histogram with the given bin count.
// A constant region has zero entropy.
func Entropy[T Numeric](v *view.SliceView[T], bins int) (float64, error) {
	hist, err := Histogram(v, bins)
	if err != nil {
		return 0, err
	}

	total := floats.Sum(hist)
	p := make([]float64, len(hist))
	for i, count := range hist {
		p[i] = count / total
	}

	return stat.Entropy(p), nil
}

// Compare computes the root mean square error and the Pearson correlation
// between two equal-shape views, read element by element in child order.
func Compare[T Numeric](a, b *view.SliceView[T]) (rmse, correlation float64, err error) {
	if a.ChildDims != b.ChildDims {
		return 0, 0, fmt.Errorf("view shapes differ: %dx%d vs %dx%d",
			a.ChildDims.Columns, a.ChildDims.Rows, b.ChildDims.Columns, b.ChildDims.Rows)
	}

	sa := gather(a)
	sb := gather(b)
	if len(sa) == 0 {
		return 0, 0, fmt.Errorf("views have no elements")
	}

	var sumSq float64
	for i := range sa {
		d := sa[i] - sb[i]
		sumSq += d * d
	}
	rmse = math.Sqrt(sumSq / float64(len(sa)))
	correlation = stat.Correlation(sa, sb, nil)

	return rmse, correlation, nil
}
