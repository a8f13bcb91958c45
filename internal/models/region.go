package models

// Region identifies a rectangular sub-area of a parent image by its
// top-left corner in parent coordinates and its extent
type Region struct {
	// Row is the parent row of the region's top-left corner
	Row int `yaml:"row"`

	// Col is the parent column of the region's top-left corner
	Col int `yaml:"col"`

	// Width is the region width in columns
	Width int `yaml:"width"`

	// Height is the region height in rows
	Height int `yaml:"height"`
}

// Quadrant names one of the four half-by-half quadrants of an image,
// in the order view.NewQuadrants returns them
type Quadrant int

const (
	TopLeft Quadrant = iota
	TopRight
	BottomLeft
	BottomRight
)

// String returns the quadrant name used in output filenames and logs
func (q Quadrant) String() string {
	switch q {
	case TopLeft:
		return "top_left"
	case TopRight:
		return "top_right"
	case BottomLeft:
		return "bottom_left"
	case BottomRight:
		return "bottom_right"
	default:
		return "unknown"
	}
}
