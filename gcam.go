/*
Package gcam implements the geometric primitives of a CAM tool chain:
points, vectors, axis-aligned boxes and affine 2D transformations.
Sub-packages build tool paths, machining operations and G-code programs
on top of them.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package gcam

import (
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// tracer writes to trace with key 'gcam'
func tracer() tracing.Trace {
	return tracing.Select("gcam")
}

// === Numeric Helpers =======================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = 0.01745329251

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// === 2D Points and Vectors =================================================

// Point2D is a location in the XY plane.
type Point2D struct {
	X, Y float64
}

// Vector2D is a displacement in the XY plane.
type Vector2D struct {
	X, Y float64
}

// Origin2D represents the frequently used constant (0,0).
var Origin2D = Point2D{}

// P2 is a quick notation for constructing a 2D point.
func P2(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// V2 is a quick notation for constructing a 2D vector.
func V2(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

func (p Point2D) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Add returns p translated by v.
func (p Point2D) Add(v Vector2D) Point2D {
	return Point2D{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns p translated by -v.
func (p Point2D) Sub(v Vector2D) Point2D {
	return Point2D{X: p.X - v.X, Y: p.Y - v.Y}
}

// To returns the vector pointing from p to q.
func (p Point2D) To(q Point2D) Vector2D {
	return Vector2D{X: q.X - p.X, Y: q.Y - p.Y}
}

// DistanceSquared returns the squared euclidean distance between p and q.
func (p Point2D) DistanceSquared(q Point2D) float64 {
	return r2.Norm2(r2.Sub(r2.Vec(q), r2.Vec(p)))
}

// Distance returns the euclidean distance between p and q.
func (p Point2D) Distance(q Point2D) float64 {
	return r2.Norm(r2.Sub(r2.Vec(q), r2.Vec(p)))
}

// Equal compares two points, component-wise within Epsilon.
func (p Point2D) Equal(q Point2D) bool {
	return Is0(p.X-q.X) && Is0(p.Y-q.Y)
}

// Zap rounds x-part and y-part to Epsilon.
func (p Point2D) Zap() Point2D {
	return Point2D{X: Zap(p.X), Y: Zap(p.Y)}
}

// Lift returns p as a 3D point at height z.
func (p Point2D) Lift(z float64) Point3D {
	return Point3D{X: p.X, Y: p.Y, Z: z}
}

func (v Vector2D) String() string {
	return fmt.Sprintf("<%g,%g>", v.X, v.Y)
}

// Add returns the sum of v and w.
func (v Vector2D) Add(w Vector2D) Vector2D {
	return Vector2D(r2.Add(r2.Vec(v), r2.Vec(w)))
}

// Sub returns the difference of v and w.
func (v Vector2D) Sub(w Vector2D) Vector2D {
	return Vector2D(r2.Sub(r2.Vec(v), r2.Vec(w)))
}

// Scaled returns a new vector scaled by factor a.
func (v Vector2D) Scaled(a float64) Vector2D {
	return Vector2D(r2.Scale(a, r2.Vec(v)))
}

// Dot returns the dot product of v and w.
func (v Vector2D) Dot(w Vector2D) float64 {
	return r2.Dot(r2.Vec(v), r2.Vec(w))
}

// Length returns the euclidean norm of v.
func (v Vector2D) Length() float64 {
	return r2.Norm(r2.Vec(v))
}

// Equal compares two vectors, component-wise within Epsilon.
func (v Vector2D) Equal(w Vector2D) bool {
	return Is0(v.X-w.X) && Is0(v.Y-w.Y)
}

// === 3D Points and Vectors =================================================

// Point3D is a location in machine space.
type Point3D struct {
	X, Y, Z float64
}

// Vector3D is a displacement in machine space.
type Vector3D struct {
	X, Y, Z float64
}

// Origin3D represents the machine origin (0,0,0).
var Origin3D = Point3D{}

// P3 is a quick notation for constructing a 3D point.
func P3(x, y, z float64) Point3D {
	return Point3D{X: x, Y: y, Z: z}
}

// V3 is a quick notation for constructing a 3D vector.
func V3(x, y, z float64) Vector3D {
	return Vector3D{X: x, Y: y, Z: z}
}

func (p Point3D) String() string {
	return fmt.Sprintf("(%g,%g,%g)", p.X, p.Y, p.Z)
}

// Add returns p translated by v.
func (p Point3D) Add(v Vector3D) Point3D {
	return Point3D(r3.Add(r3.Vec(p), r3.Vec(v)))
}

// Sub returns p translated by -v.
func (p Point3D) Sub(v Vector3D) Point3D {
	return Point3D(r3.Sub(r3.Vec(p), r3.Vec(v)))
}

// To returns the vector pointing from p to q.
func (p Point3D) To(q Point3D) Vector3D {
	return Vector3D(r3.Sub(r3.Vec(q), r3.Vec(p)))
}

// DistanceSquared returns the squared euclidean distance between p and q.
func (p Point3D) DistanceSquared(q Point3D) float64 {
	return r3.Norm2(r3.Sub(r3.Vec(q), r3.Vec(p)))
}

// Distance returns the euclidean distance between p and q.
func (p Point3D) Distance(q Point3D) float64 {
	return r3.Norm(r3.Sub(r3.Vec(q), r3.Vec(p)))
}

// Equal compares two points, component-wise within Epsilon.
func (p Point3D) Equal(q Point3D) bool {
	return Is0(p.X-q.X) && Is0(p.Y-q.Y) && Is0(p.Z-q.Z)
}

// XY projects p onto the XY plane.
func (p Point3D) XY() Point2D {
	return Point2D{X: p.X, Y: p.Y}
}

func (v Vector3D) String() string {
	return fmt.Sprintf("<%g,%g,%g>", v.X, v.Y, v.Z)
}

// Add returns the sum of v and w.
func (v Vector3D) Add(w Vector3D) Vector3D {
	return Vector3D(r3.Add(r3.Vec(v), r3.Vec(w)))
}

// Sub returns the difference of v and w.
func (v Vector3D) Sub(w Vector3D) Vector3D {
	return Vector3D(r3.Sub(r3.Vec(v), r3.Vec(w)))
}

// Scaled returns a new vector scaled by factor a.
func (v Vector3D) Scaled(a float64) Vector3D {
	return Vector3D(r3.Scale(a, r3.Vec(v)))
}

// Dot returns the dot product of v and w.
func (v Vector3D) Dot(w Vector3D) float64 {
	return r3.Dot(r3.Vec(v), r3.Vec(w))
}

// Length returns the euclidean norm of v.
func (v Vector3D) Length() float64 {
	return r3.Norm(r3.Vec(v))
}

// Equal compares two vectors, component-wise within Epsilon.
func (v Vector3D) Equal(w Vector3D) bool {
	return Is0(v.X-w.X) && Is0(v.Y-w.Y) && Is0(v.Z-w.Z)
}
