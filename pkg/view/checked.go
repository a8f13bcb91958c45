package view

import (
	"fmt"
)

// validateGeometry checks the caller contract that New leaves unchecked.
func validateGeometry[T any](parentDims ImageDimensions, parentStartRow, parentStartCol int, buf []T, childDims ImageDimensions) error {
	if parentStartRow < 0 || parentStartCol < 0 {
		return fmt.Errorf("start coordinates must be non-negative")
	}

	if childDims.Columns <= 0 || childDims.Rows <= 0 {
		return fmt.Errorf("child dimensions must be positive")
	}

	if parentStartCol+childDims.Columns > parentDims.Columns ||
		parentStartRow+childDims.Rows > parentDims.Rows {
		return fmt.Errorf("child region extends beyond parent boundaries")
	}

	if need := parentDims.Columns * parentDims.Rows; len(buf) < need {
		return fmt.Errorf("buffer length %d is shorter than parent area %d", len(buf), need)
	}

	return nil
}

// NewChecked is the validating variant of New: it rejects geometry that New
// would silently accept (negative origin, non-positive child dimensions, a
// child overrunning the parent, a buffer shorter than the parent area) and
// otherwise builds the same view. Construction stays allocation-free beyond
// the fixed-size view itself.
func NewChecked[T any](parentDims ImageDimensions, parentStartRow, parentStartCol int, buf []T, childDims ImageDimensions) (*SliceView[T], error) {
	if err := validateGeometry(parentDims, parentStartRow, parentStartCol, buf, childDims); err != nil {
		return nil, err
	}
	return New(parentDims, parentStartRow, parentStartCol, buf, childDims), nil
}

// NewSplitChecked is the validating variant of NewSplit. It validates both
// children, including the right child that NewSplit lets overrun the
// parent.
func NewSplitChecked[T any](parentDims ImageDimensions, parentStartRow, parentStartCol int, buf []T, childDims ImageDimensions) (*SliceView[T], *SliceView[T], error) {
	if err := validateGeometry(parentDims, parentStartRow, parentStartCol, buf, childDims); err != nil {
		return nil, nil, fmt.Errorf("left child: %w", err)
	}
	if err := validateGeometry(parentDims, parentStartRow, parentStartCol+childDims.Columns, buf, childDims); err != nil {
		return nil, nil, fmt.Errorf("right child: %w", err)
	}

	left, right := NewSplit(parentDims, parentStartRow, parentStartCol, buf, childDims)
	return left, right, nil
}
