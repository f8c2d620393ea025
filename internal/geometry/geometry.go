// Package geometry implements pure numeric transformations on normalized
// face bounding boxes: pixel conversion, area, centering, quality scoring
// and overlap. No I/O, no side effects.
package geometry

import (
	"fmt"
	"math"

	"github.com/saturnino-fabrica-de-software/faceproof/internal/domain"
)

const (
	// DefaultCenterTolerance is the general tolerance for the centering
	// check. The quality score uses the stricter qualityCenterTolerance.
	DefaultCenterTolerance = 0.2

	qualityCenterTolerance = 0.15
)

// ToPixels converts a normalized box to integer pixel coordinates for an
// image of the given size. Each field is scaled by the matching dimension
// and rounded half away from zero. Non-positive dimensions are rejected so
// degenerate input cannot produce silently wrong pixel values.
func ToPixels(box domain.BoundingBox, imageWidth, imageHeight int) (domain.PixelBox, error) {
	if imageWidth <= 0 || imageHeight <= 0 {
		return domain.PixelBox{}, domain.ErrInvalidDimensions.WithError(
			fmt.Errorf("got %dx%d", imageWidth, imageHeight),
		)
	}

	return domain.PixelBox{
		Left:   int(math.Round(box.Left * float64(imageWidth))),
		Top:    int(math.Round(box.Top * float64(imageHeight))),
		Width:  int(math.Round(box.Width * float64(imageWidth))),
		Height: int(math.Round(box.Height * float64(imageHeight))),
	}, nil
}

// Area returns the normalized area of the box, width*height. For valid
// boxes the result lies in [0,1]; no clamping is applied.
func Area(box domain.BoundingBox) float64 {
	return box.Width * box.Height
}

// IsCentered reports whether the box center is within tolerance of the
// image center on both axes.
func IsCentered(box domain.BoundingBox, tolerance float64) bool {
	centerX := box.Left + box.Width/2
	centerY := box.Top + box.Height/2
	return math.Abs(centerX-0.5) <= tolerance && math.Abs(centerY-0.5) <= tolerance
}

// QualityScore derives a deterministic 0-100 score from the box:
//
//	size term:       min(area*400, 70)
//	centered bonus:  +20 when centered within 0.15
//	size-band bonus: +10 when 0.1 <= area <= 0.4
//
// The sum is rounded and capped at 100. Recomputed on demand, never stored.
func QualityScore(box domain.BoundingBox) int {
	area := Area(box)

	score := math.Min(area*400, 70)

	if IsCentered(box, qualityCenterTolerance) {
		score += 20
	}

	if area >= 0.1 && area <= 0.4 {
		score += 10
	}

	return int(math.Min(math.Round(score), 100))
}

// IntersectionOverUnion returns the overlap ratio of two axis-aligned
// normalized boxes. Disjoint boxes yield exactly 0; there are no
// negative-area degenerate cases.
func IntersectionOverUnion(a, b domain.BoundingBox) float64 {
	interLeft := math.Max(a.Left, b.Left)
	interTop := math.Max(a.Top, b.Top)
	interRight := math.Min(a.Left+a.Width, b.Left+b.Width)
	interBottom := math.Min(a.Top+a.Height, b.Top+b.Height)

	if interRight <= interLeft || interBottom <= interTop {
		return 0
	}

	interArea := (interRight - interLeft) * (interBottom - interTop)
	unionArea := Area(a) + Area(b) - interArea
	if unionArea <= 0 {
		return 0
	}

	return interArea / unionArea
}
