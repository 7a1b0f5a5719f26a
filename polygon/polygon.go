/*
Package polygon implements simple 2D polygons with one or more closed
contours. Polygons are built with a builder API similar to paths:

	pg := NullPolygon().Knot(gcam.P2(0, 0)).Knot(gcam.P2(1, 3)).Knot(gcam.P2(3, 0)).Cycle()

Boolean operations (union, intersection, difference) are delegated to
polyclip-go, an implementation of the Martinez-Rueda clipping algorithm.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"errors"
	"fmt"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/gcam"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'gcam.polygon'
func tracer() tracing.Trace {
	return tracing.Select("gcam.polygon")
}

// ErrOpenContour indicates a contour which has not been closed by Cycle().
var ErrOpenContour = errors.New("polygon has an open contour")

// Polygon is a set of closed contours. Contours are implicitly closed:
// the last knot connects back to the first one.
type Polygon struct {
	contours polyclip.Polygon
	open     polyclip.Contour // contour under construction
}

// NullPolygon creates an empty polygon, to be extended by subsequent builder
// calls.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a vertex to the contour under construction.
// Part of builder functionality.
func (pg *Polygon) Knot(p gcam.Point2D) *Polygon {
	pg.open.Add(polyclip.Point{X: p.X, Y: p.Y})
	return pg
}

// Cycle closes the contour under construction. Contours with less than
// three knots are dropped. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	if len(pg.open) < 3 {
		tracer().Infof("dropping degenerate contour with %d knots", len(pg.open))
	} else {
		pg.contours.Add(pg.open)
	}
	pg.open = nil
	return pg
}

// Box creates a rectangular polygon from two opposite corners.
func Box(a, b gcam.Point2D) *Polygon {
	r := gcam.NewRect2D(a, b)
	pg := NullPolygon()
	for _, c := range r.Corners() {
		pg.Knot(c)
	}
	return pg.Cycle()
}

// FromRect creates a rectangular polygon covering r.
func FromRect(r gcam.Rect2D) *Polygon {
	return Box(r.Min, r.Max)
}

// Check returns an error if the polygon still has an open contour.
func (pg *Polygon) Check() error {
	if len(pg.open) > 0 {
		return ErrOpenContour
	}
	return nil
}

// N returns the total number of vertices of all closed contours.
func (pg *Polygon) N() int {
	if pg == nil {
		return 0
	}
	return pg.contours.NumVertices()
}

// IsEmpty is a predicate: does pg have no closed contour?
func (pg *Polygon) IsEmpty() bool {
	return pg == nil || len(pg.contours) == 0
}

// Contours returns the vertices of every closed contour, in order.
func (pg *Polygon) Contours() [][]gcam.Point2D {
	if pg == nil {
		return nil
	}
	cs := make([][]gcam.Point2D, len(pg.contours))
	for i, c := range pg.contours {
		cs[i] = make([]gcam.Point2D, len(c))
		for j, p := range c {
			cs[i][j] = gcam.P2(p.X, p.Y)
		}
	}
	return cs
}

// BoundingBox returns the axis-aligned bounds of all contours.
func (pg *Polygon) BoundingBox() gcam.Rect2D {
	if pg.IsEmpty() {
		return gcam.Rect2D{}
	}
	bb := pg.contours.BoundingBox()
	return gcam.NewRect2D(gcam.P2(bb.Min.X, bb.Min.Y), gcam.P2(bb.Max.X, bb.Max.Y))
}

// Transformed returns a new polygon with every vertex transformed by T.
func (pg *Polygon) Transformed(T gcam.Transform2D) *Polygon {
	out := NullPolygon()
	for _, c := range pg.Contours() {
		for _, p := range c {
			out.Knot(T.Apply(p))
		}
		out.Cycle()
	}
	return out
}

func (pg *Polygon) construct(op polyclip.Op, other *Polygon) *Polygon {
	var subject, clipping polyclip.Polygon
	if pg != nil {
		subject = pg.contours
	}
	if other != nil {
		clipping = other.contours
	}
	result := subject.Construct(op, clipping)
	tracer().Debugf("polygon op %d: %d vertices -> %d vertices", op, pg.N(), result.NumVertices())
	return &Polygon{contours: result}
}

// Union returns a new polygon covering the area of both pg and other.
func (pg *Polygon) Union(other *Polygon) *Polygon {
	return pg.construct(polyclip.UNION, other)
}

// Intersection returns a new polygon covering the area common to pg and other.
func (pg *Polygon) Intersection(other *Polygon) *Polygon {
	return pg.construct(polyclip.INTERSECTION, other)
}

// Difference returns a new polygon covering the area of pg not covered by other.
func (pg *Polygon) Difference(other *Polygon) *Polygon {
	return pg.construct(polyclip.DIFFERENCE, other)
}

// Clip returns the part of pg inside of rectangle r.
func (pg *Polygon) Clip(r gcam.Rect2D) *Polygon {
	return pg.Intersection(FromRect(r))
}

// AsString returns a polygon as a (debugging) string, one contour per line.
func AsString(pg *Polygon) string {
	var b strings.Builder
	for i, c := range pg.Contours() {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, p := range c {
			b.WriteString(fmt.Sprintf("%s -- ", p))
		}
		b.WriteString("cycle")
	}
	return b.String()
}
