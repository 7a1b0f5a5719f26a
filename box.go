package gcam

import (
	"fmt"
	"math"
)

// === Axis-aligned Regions ==================================================

// Rect2D is an axis-aligned rectangle in the XY plane. Min is always
// the lower-left corner, Max the upper-right one.
type Rect2D struct {
	Min, Max Point2D
}

// NewRect2D creates a rectangle from two arbitrary corners.
func NewRect2D(a, b Point2D) Rect2D {
	if math.IsNaN(a.X+a.Y+b.X+b.Y) {
		tracer().Errorf("created rect for NaN corner")
		return Rect2D{}
	}
	return Rect2D{
		Min: Point2D{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)},
		Max: Point2D{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)},
	}
}

func (r Rect2D) String() string {
	return fmt.Sprintf("[%s..%s]", r.Min, r.Max)
}

// Width is the extent of r along X.
func (r Rect2D) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height is the extent of r along Y.
func (r Rect2D) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the midpoint of r.
func (r Rect2D) Center() Point2D {
	return Point2D{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Contains is a predicate: is p inside of r or on its border?
func (r Rect2D) Contains(p Point2D) bool {
	return p.X >= r.Min.X-Epsilon && p.X <= r.Max.X+Epsilon &&
		p.Y >= r.Min.Y-Epsilon && p.Y <= r.Max.Y+Epsilon
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect2D) Union(s Rect2D) Rect2D {
	return Rect2D{
		Min: Point2D{X: math.Min(r.Min.X, s.Min.X), Y: math.Min(r.Min.Y, s.Min.Y)},
		Max: Point2D{X: math.Max(r.Max.X, s.Max.X), Y: math.Max(r.Max.Y, s.Max.Y)},
	}
}

// Intersection returns the overlap of r and s. If they do not overlap,
// ok is false.
func (r Rect2D) Intersection(s Rect2D) (Rect2D, bool) {
	i := Rect2D{
		Min: Point2D{X: math.Max(r.Min.X, s.Min.X), Y: math.Max(r.Min.Y, s.Min.Y)},
		Max: Point2D{X: math.Min(r.Max.X, s.Max.X), Y: math.Min(r.Max.Y, s.Max.Y)},
	}
	if i.Min.X > i.Max.X || i.Min.Y > i.Max.Y {
		return Rect2D{}, false
	}
	return i, true
}

// Corners returns the four corners of r in counter-clockwise order,
// starting at Min.
func (r Rect2D) Corners() [4]Point2D {
	return [4]Point2D{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
	}
}

// BoundingBox3D is an axis-aligned box in machine space. The zero value is
// a degenerate box at the origin; use EmptyBox3D as the neutral element for
// extending a box point by point.
type BoundingBox3D struct {
	Min, Max Point3D
}

// EmptyBox3D returns a box containing nothing. Extending it by a point
// results in a box containing just that point.
func EmptyBox3D() BoundingBox3D {
	inf := math.Inf(1)
	return BoundingBox3D{
		Min: Point3D{X: inf, Y: inf, Z: inf},
		Max: Point3D{X: -inf, Y: -inf, Z: -inf},
	}
}

// NewBoundingBox3D creates a box from two arbitrary corners.
func NewBoundingBox3D(a, b Point3D) BoundingBox3D {
	return EmptyBox3D().Extend(a).Extend(b)
}

func (b BoundingBox3D) String() string {
	if b.IsEmpty() {
		return "[empty]"
	}
	return fmt.Sprintf("[%s..%s]", b.Min, b.Max)
}

// IsEmpty is a predicate: does b contain no point at all?
func (b BoundingBox3D) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Extend returns a new box containing b and p.
func (b BoundingBox3D) Extend(p Point3D) BoundingBox3D {
	return BoundingBox3D{
		Min: Point3D{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)},
		Max: Point3D{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)},
	}
}

// Width is the extent of b along X.
func (b BoundingBox3D) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height is the extent of b along Y.
func (b BoundingBox3D) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Depth is the extent of b along Z.
func (b BoundingBox3D) Depth() float64 {
	return b.Max.Z - b.Min.Z
}

// Center returns the midpoint of b.
func (b BoundingBox3D) Center() Point3D {
	return Point3D{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: (b.Min.Z + b.Max.Z) / 2,
	}
}

// Contains is a predicate: is p inside of b or on its border?
func (b BoundingBox3D) Contains(p Point3D) bool {
	return p.X >= b.Min.X-Epsilon && p.X <= b.Max.X+Epsilon &&
		p.Y >= b.Min.Y-Epsilon && p.Y <= b.Max.Y+Epsilon &&
		p.Z >= b.Min.Z-Epsilon && p.Z <= b.Max.Z+Epsilon
}

// Union returns the smallest box containing both b and c.
func (b BoundingBox3D) Union(c BoundingBox3D) BoundingBox3D {
	if c.IsEmpty() {
		return b
	}
	return b.Extend(c.Min).Extend(c.Max)
}

// Intersection returns the overlap of b and c. If they do not overlap,
// ok is false.
func (b BoundingBox3D) Intersection(c BoundingBox3D) (BoundingBox3D, bool) {
	i := BoundingBox3D{
		Min: Point3D{X: math.Max(b.Min.X, c.Min.X), Y: math.Max(b.Min.Y, c.Min.Y), Z: math.Max(b.Min.Z, c.Min.Z)},
		Max: Point3D{X: math.Min(b.Max.X, c.Max.X), Y: math.Min(b.Max.Y, c.Max.Y), Z: math.Min(b.Max.Z, c.Max.Z)},
	}
	if i.IsEmpty() {
		return EmptyBox3D(), false
	}
	return i, true
}

// XY projects b onto the XY plane.
func (b BoundingBox3D) XY() Rect2D {
	return Rect2D{Min: b.Min.XY(), Max: b.Max.XY()}
}
