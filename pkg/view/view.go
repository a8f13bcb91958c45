// Package view provides zero-copy views over rectangular sub-regions of
// row-major 2D buffers. A SliceView borrows a linear buffer describing a
// parent image and exposes a child rectangle inside it as if the child were
// its own densely-addressed image, translating child-local linear indices
// into parent-local ones on every access. No pixel data is ever copied.
package view

// ImageDimensions describes a rectangle's extent as columns x rows.
// The zero value is a zero-extent rectangle, usable only as a structural
// placeholder; indexing through a view whose child has zero columns
// divides by zero.
type ImageDimensions struct {
	// Columns is the width of the rectangle in elements
	Columns int

	// Rows is the height of the rectangle in elements
	Rows int
}

// NewImageDimensions creates dimensions from a width and height.
// It performs no validation; bounds validity is the consumer's concern.
func NewImageDimensions(width, height int) ImageDimensions {
	return ImageDimensions{
		Columns: width,
		Rows:    height,
	}
}

// SliceView exposes a child rectangle of a larger parent image stored in a
// borrowed row-major buffer. The view is read-only and immutable after
// construction, it never copies the buffer, and it must not outlive it.
// Multiple views may share one buffer as long as nothing writes to the
// buffer while the views are in use.
type SliceView[T any] struct {
	// ParentDims is the shape of the full backing buffer
	ParentDims ImageDimensions

	// ChildDims is the shape of the logical sub-image exposed by At
	ChildDims ImageDimensions

	// parentStartRow and parentStartCol locate the child's top-left
	// corner within the parent, in parent coordinates
	parentStartRow int
	parentStartCol int

	// passthru skips coordinate translation when the child is the whole
	// parent at origin (0,0)
	passthru bool

	// buf is the borrowed backing buffer, at least
	// ParentDims.Columns*ParentDims.Rows elements long
	buf []T
}

// New creates a view over an arbitrary sub-rectangle of the parent with its
// top-left corner at (parentStartRow, parentStartCol), in parent
// coordinates. It performs no validation: the caller must guarantee that
// childDims.Columns is positive, that the child rectangle fits inside the
// parent, and that buf covers the full parent area. If the child's column
// span extends past the parent's right edge, later child rows silently wrap
// into the next parent row (see At).
func New[T any](parentDims ImageDimensions, parentStartRow, parentStartCol int, buf []T, childDims ImageDimensions) *SliceView[T] {
	return &SliceView[T]{
		ParentDims:     parentDims,
		ChildDims:      childDims,
		parentStartRow: parentStartRow,
		parentStartCol: parentStartCol,
		buf:            buf,
	}
}

// NewPassthru wraps an entire buffer as a view of itself: the child equals
// the parent at origin (0,0) and At reads the buffer directly without any
// coordinate translation.
func NewPassthru[T any](parentDims ImageDimensions, buf []T) *SliceView[T] {
	return &SliceView[T]{
		ParentDims: parentDims,
		ChildDims:  parentDims,
		passthru:   true,
		buf:        buf,
	}
}

// NewSplit creates two adjacent childDims-shaped views side by side along
// the column axis: the left view starts at (parentStartRow, parentStartCol)
// and the right one immediately to its right, at column
// parentStartCol+childDims.Columns. Both borrow the same buffer. Like New,
// it does not validate that the right child stays within the parent.
func NewSplit[T any](parentDims ImageDimensions, parentStartRow, parentStartCol int, buf []T, childDims ImageDimensions) (*SliceView[T], *SliceView[T]) {
	left := New(parentDims, parentStartRow, parentStartCol, buf, childDims)
	right := New(parentDims, parentStartRow, parentStartCol+childDims.Columns, buf, childDims)
	return left, right
}

// NewQuadrants divides the parent into four half-by-half views in
// top-left, top-right, bottom-left, bottom-right order (index with
// models.Quadrant). Each quadrant is ParentDims.Columns/2 by
// ParentDims.Rows/2; for odd parent dimensions the trailing column or row
// is excluded, matching integer-half division.
func NewQuadrants[T any](parentDims ImageDimensions, buf []T) [4]*SliceView[T] {
	halfWidth := parentDims.Columns / 2
	halfHeight := parentDims.Rows / 2
	child := NewImageDimensions(halfWidth, halfHeight)

	var quadrants [4]*SliceView[T]
	for q := 0; q < 4; q++ {
		startCol := (q % 2) * halfWidth
		startRow := (q / 2) * halfHeight
		quadrants[q] = New(parentDims, startRow, startCol, buf, child)
	}
	return quadrants
}

// At returns the element at the given zero-based child-local linear index,
// where idx = childY*ChildDims.Columns + childX in row-major order. The
// caller must keep idx below ChildDims.Columns*ChildDims.Rows; the view
// itself does not expose a length, so collaborators compute their own
// iteration bound from ChildDims.
//
// When the child's column span overruns the parent's row width, the
// translated index spills into the next parent row rather than failing.
// This overwrap is preserved deliberately; treat it as a misuse hazard, not
// a feature. A translated index past the end of the buffer panics via the
// normal slice bounds check.
func (v *SliceView[T]) At(idx int) T {
	frameIdx := idx
	if !v.passthru {
		childY := idx / v.ChildDims.Columns
		childX := idx % v.ChildDims.Columns
		frameX := v.parentStartCol + childX
		frameY := v.parentStartRow + childY
		frameIdx = frameY*v.ParentDims.Columns + frameX
	}
	return v.buf[frameIdx]
}

// Origin returns the child's top-left corner within the parent as
// (row, col) parent coordinates.
func (v *SliceView[T]) Origin() (row, col int) {
	return v.parentStartRow, v.parentStartCol
}
