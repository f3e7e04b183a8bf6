package mock

import "github.com/fwojciec/bookmirror"

var _ bookmirror.ShapeDetector = (*ShapeDetector)(nil)

// ShapeDetector is a mock implementation of bookmirror.ShapeDetector.
type ShapeDetector struct {
	DetectFn func(content string) bookmirror.Shape
}

func (d *ShapeDetector) Detect(content string) bookmirror.Shape {
	return d.DetectFn(content)
}
