package domain

// BoundingBox locates a detected face within an image using normalized
// coordinates. All fields are fractions of the image dimensions in [0,1].
// Callers may receive padded boxes where Left+Width or Top+Height slightly
// exceed 1; those are clamped downstream, not rejected here.
type BoundingBox struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PixelBox is a bounding box converted to integer pixel coordinates for a
// concrete image size.
type PixelBox struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
}
