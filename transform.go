package gcam

import (
	"fmt"
	"math"
)

// === Affine Transformations ================================================

// Transform2D is an affine transform, a 3x3 homogeneous matrix used for
// moving, rotating and scaling 2D primitives. It is never mutated after
// construction; combinations return new transforms.
type Transform2D [9]float64 // flattened by rows

func (m *Transform2D) set(row, col int, value float64) {
	m[row*3+col] = value
}

func (m Transform2D) row(row int) [3]float64 {
	return [3]float64{m[row*3], m[row*3+1], m[row*3+2]}
}

func (m Transform2D) col(col int) [3]float64 {
	return [3]float64{m[col], m[3+col], m[6+col]}
}

// Identity transform. Will transform a point onto itself.
func Identity() Transform2D {
	var m Transform2D
	m.set(0, 0, 1.0)
	m.set(1, 1, 1.0)
	m.set(2, 2, 1.0)
	return m
}

// Translation transform. Translate a point by v.
func Translation(v Vector2D) Transform2D {
	m := Identity()
	m.set(0, 2, v.X)
	m.set(1, 2, v.Y)
	return m
}

// Rotation transform. Rotate a point counter-clockwise around the origin.
// Argument is in radians.
func Rotation(theta float64) Transform2D {
	var m Transform2D
	sin := math.Sin(theta)
	cos := math.Cos(theta)
	m.set(0, 0, cos)
	m.set(0, 1, -sin)
	m.set(1, 0, sin)
	m.set(1, 1, cos)
	m.set(2, 2, 1.0)
	return m
}

// Scaling transform. Scale x-part by sx and y-part by sy.
func Scaling(sx, sy float64) Transform2D {
	var m Transform2D
	m.set(0, 0, sx)
	m.set(1, 1, sy)
	m.set(2, 2, 1.0)
	return m
}

// Debug Stringer for an affine transform.
func (m Transform2D) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

// v1 × v2, v.n = [a,b,c]
func dotProd(vec1, vec2 [3]float64) float64 {
	return vec1[0]*vec2[0] + vec1[1]*vec2[1] + vec1[2]*vec2[2]
}

// Combine 2 affine transformations to a new one. The resulting transform
// applies m first, then n. Neither m nor n is changed.
func (m Transform2D) Combine(n Transform2D) Transform2D {
	var o Transform2D
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			o.set(row, col, dotProd(n.row(row), m.col(col)))
		}
	}
	return o
}

func (m Transform2D) multiplyVector(v [3]float64) [3]float64 {
	return [3]float64{
		dotProd(m.row(0), v),
		dotProd(m.row(1), v),
		dotProd(m.row(2), v),
	}
}

// Apply transforms a 2D point, including translation. The argument is
// unchanged and a new point is returned.
func (m Transform2D) Apply(p Point2D) Point2D {
	c := m.multiplyVector([3]float64{p.X, p.Y, 1.0})
	if math.IsNaN(c[0]) || math.IsNaN(c[1]) {
		tracer().Errorf("transform %s produced NaN for %s", m, p)
	}
	return Point2D{X: c[0], Y: c[1]}.Zap()
}

// ApplyVector transforms a 2D vector. Translation does not apply to vectors.
func (m Transform2D) ApplyVector(v Vector2D) Vector2D {
	c := m.multiplyVector([3]float64{v.X, v.Y, 0.0})
	return Vector2D{X: Zap(c[0]), Y: Zap(c[1])}
}

// Shifted returns a new point translated by v.
func (p Point2D) Shifted(v Vector2D) Point2D {
	return Translation(v).Apply(p)
}

// Rotated returns a new point rotated around origin by theta (counterclockwise).
func (p Point2D) Rotated(theta float64) Point2D {
	return Rotation(theta).Apply(p)
}

// RotatedAround returns a new point rotated around c by theta (counterclockwise).
func (p Point2D) RotatedAround(c Point2D, theta float64) Point2D {
	v := Origin2D.To(c)
	T := Translation(v.Scaled(-1)).Combine(Rotation(theta)).Combine(Translation(v))
	return T.Apply(p)
}
