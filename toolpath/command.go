/*
Package toolpath deals with tool paths: ordered sequences of motion
directives, each resolved against the tool position preceding it.

A tool path is built by appending move commands. A move command names
only the axes it changes; absent axes carry the previous position forward:

	tp := toolpath.New()
	tp.AddMove(toolpath.RapidTo(toolpath.Some(10), toolpath.Some(5), toolpath.Some(3)))
	tp.AddMove(toolpath.LinearTo(toolpath.None, toolpath.None, toolpath.Some(-2), toolpath.Some(100)))

results in two segments, (0,0,0)→(10,5,3) and (10,5,3)→(10,5,-2).

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package toolpath

import (
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'gcam.toolpath'
func tracer() tracing.Trace {
	return tracing.Select("gcam.toolpath")
}

// === Optional Coordinates ==================================================

// Coord is an optional coordinate or parameter value. The zero value is
// absent.
type Coord struct {
	v  float64
	ok bool
}

// None is the absent coordinate.
var None = Coord{}

// Some wraps a present value.
func Some(v float64) Coord {
	return Coord{v: v, ok: true}
}

// Get returns the value and whether it is present.
func (c Coord) Get() (float64, bool) {
	return c.v, c.ok
}

// IsSet is a predicate: is c present?
func (c Coord) IsSet() bool {
	return c.ok
}

// Or returns the value of c, or def if c is absent.
func (c Coord) Or(def float64) float64 {
	if c.ok {
		return c.v
	}
	return def
}

func (c Coord) String() string {
	if !c.ok {
		return "-"
	}
	return fmt.Sprintf("%g", c.v)
}

// === Move Types ============================================================

// MoveType is the kind of motion a move command performs.
type MoveType int8

// Kinds of motion.
const (
	MoveRapid  MoveType = iota // G0
	MoveLinear                 // G1
	MoveArcCW                  // G2
	MoveArcCCW                 // G3
)

func (t MoveType) String() string {
	switch t {
	case MoveRapid:
		return "rapid"
	case MoveLinear:
		return "linear"
	case MoveArcCW:
		return "arc-cw"
	case MoveArcCCW:
		return "arc-ccw"
	}
	return fmt.Sprintf("MoveType(%d)", int(t))
}

// Word returns the short G-code word for a move type, e.g. "G0".
func (t MoveType) Word() string {
	return fmt.Sprintf("G%d", int(t))
}

// IsArc is a predicate: is t a circular interpolation?
func (t MoveType) IsArc() bool {
	return t == MoveArcCW || t == MoveArcCCW
}

// === Move Commands =========================================================

// MoveCommand is a single, immutable motion directive. Target coordinates
// are optional; an absent axis keeps its current value.
type MoveCommand struct {
	typ        MoveType
	x, y, z    Coord
	feed       Coord
	i, j, k, r Coord
}

// NewMove creates a rapid or linear move. Passing an arc type is a
// programming error and panics; use ArcTo or ArcRadiusTo instead.
func NewMove(t MoveType, x, y, z, feed Coord) MoveCommand {
	if t.IsArc() {
		panic(fmt.Sprintf("toolpath: NewMove called with arc type %s", t))
	}
	if t != MoveRapid && t != MoveLinear {
		panic(fmt.Sprintf("toolpath: unknown move type %s", t))
	}
	return MoveCommand{typ: t, x: x, y: y, z: z, feed: feed}
}

// RapidTo creates a rapid positioning move.
func RapidTo(x, y, z Coord) MoveCommand {
	return NewMove(MoveRapid, x, y, z, None)
}

// LinearTo creates a feed-controlled straight cut.
func LinearTo(x, y, z, feed Coord) MoveCommand {
	return NewMove(MoveLinear, x, y, z, feed)
}

// ArcTo creates a circular move with center offsets I, J (and optionally K)
// relative to the start point. It panics if t is not an arc type, if neither
// an X nor a Y target is given, or if neither I nor J is given.
func ArcTo(t MoveType, x, y, z, feed Coord, i, j, k Coord) MoveCommand {
	checkArc(t, x, y)
	if !i.ok && !j.ok {
		panic("toolpath: arc needs center offsets I or J")
	}
	return MoveCommand{typ: t, x: x, y: y, z: z, feed: feed, i: i, j: j, k: k}
}

// ArcRadiusTo creates a circular move given by its radius. It panics if t is
// not an arc type, if neither an X nor a Y target is given, or if the radius
// is absent or zero.
func ArcRadiusTo(t MoveType, x, y, z, feed Coord, r Coord) MoveCommand {
	checkArc(t, x, y)
	if !r.ok || r.v == 0 || math.IsNaN(r.v) {
		panic("toolpath: arc needs a non-zero radius R")
	}
	return MoveCommand{typ: t, x: x, y: y, z: z, feed: feed, r: r}
}

func checkArc(t MoveType, x, y Coord) {
	if !t.IsArc() {
		panic(fmt.Sprintf("toolpath: arc constructor called with non-arc type %s", t))
	}
	if !x.ok && !y.ok {
		panic("toolpath: arc needs an X or Y target")
	}
}

// Type returns the kind of motion.
func (m MoveCommand) Type() MoveType { return m.typ }

// X returns the optional X target.
func (m MoveCommand) X() Coord { return m.x }

// Y returns the optional Y target.
func (m MoveCommand) Y() Coord { return m.y }

// Z returns the optional Z target.
func (m MoveCommand) Z() Coord { return m.z }

// Feed returns the optional feed rate.
func (m MoveCommand) Feed() Coord { return m.feed }

// I returns the optional X offset of an arc center.
func (m MoveCommand) I() Coord { return m.i }

// J returns the optional Y offset of an arc center.
func (m MoveCommand) J() Coord { return m.j }

// K returns the optional Z offset of an arc center.
func (m MoveCommand) K() Coord { return m.k }

// R returns the optional arc radius.
func (m MoveCommand) R() Coord { return m.r }

// HasRadius is a predicate: is m an arc given by radius?
func (m MoveCommand) HasRadius() bool { return m.r.ok }

func (m MoveCommand) String() string {
	var b strings.Builder
	b.WriteString(m.typ.Word())
	for _, w := range []struct {
		l byte
		c Coord
	}{{'X', m.x}, {'Y', m.y}, {'Z', m.z}, {'I', m.i}, {'J', m.j}, {'K', m.k}, {'R', m.r}, {'F', m.feed}} {
		if w.c.ok {
			fmt.Fprintf(&b, " %c%g", w.l, w.c.v)
		}
	}
	return b.String()
}
