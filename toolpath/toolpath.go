package toolpath

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/gcam"
)

var (
	// ErrPathStarted indicates an attempt to move the start of a path which
	// already has directives.
	ErrPathStarted = errors.New("tool path already has moves")
	// ErrInvalidDwell indicates a dwell time which is not a positive number.
	ErrInvalidDwell = errors.New("dwell time must be positive")
)

// Directive is an element of a tool path: either a Segment or a Dwell.
type Directive interface {
	fmt.Stringer
	directive()
}

// Segment is a move command resolved against the position preceding it.
type Segment struct {
	Command MoveCommand
	Start   gcam.Point3D
	End     gcam.Point3D
}

func (Segment) directive() {}

func (s Segment) String() string {
	return fmt.Sprintf("%s %s→%s", s.Command.Type(), s.Start, s.End)
}

// Length is the straight-line distance between start and end.
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Dwell pauses the tool at its current position. It is not a move.
type Dwell struct {
	Seconds float64
}

func (Dwell) directive() {}

func (d Dwell) String() string {
	return fmt.Sprintf("dwell %gs", d.Seconds)
}

// ToolPath is an ordered, append-only sequence of directives, together with
// the current tool position. Consecutive segments are always connected:
// the end of segment i is the start of segment i+1.
type ToolPath struct {
	start      gcam.Point3D
	position   gcam.Point3D
	directives []Directive
	segments   []Segment
}

// New creates an empty tool path starting at the origin.
func New() *ToolPath {
	return &ToolPath{}
}

// NewAt creates an empty tool path starting at p.
func NewAt(p gcam.Point3D) *ToolPath {
	return &ToolPath{start: p, position: p}
}

// SetStart overrides the start position. This is only allowed before the
// first directive has been added.
func (tp *ToolPath) SetStart(p gcam.Point3D) error {
	if len(tp.directives) > 0 {
		return ErrPathStarted
	}
	tp.start, tp.position = p, p
	return nil
}

// AddMove resolves cmd against the current position, appends the resulting
// segment and advances the current position to its end.
func (tp *ToolPath) AddMove(cmd MoveCommand) Segment {
	end := gcam.Point3D{
		X: cmd.x.Or(tp.position.X),
		Y: cmd.y.Or(tp.position.Y),
		Z: cmd.z.Or(tp.position.Z),
	}
	seg := Segment{Command: cmd, Start: tp.position, End: end}
	tp.segments = append(tp.segments, seg)
	tp.directives = append(tp.directives, seg)
	tp.position = end
	tracer().Debugf("tool path: %s", seg)
	return seg
}

// AddDwell appends a pause of the given number of seconds.
func (tp *ToolPath) AddDwell(seconds float64) error {
	if !(seconds > 0) || math.IsInf(seconds, 0) {
		return ErrInvalidDwell
	}
	tp.directives = append(tp.directives, Dwell{Seconds: seconds})
	return nil
}

// Start returns the position the path starts from.
func (tp *ToolPath) Start() gcam.Point3D {
	return tp.start
}

// Position returns the current tool position, i.e. the end of the last
// segment or the start position if there are no segments yet.
func (tp *ToolPath) Position() gcam.Point3D {
	return tp.position
}

// Len returns the number of directives, moves and dwells.
func (tp *ToolPath) Len() int {
	return len(tp.directives)
}

// Segments returns a copy of the move segments, in order.
func (tp *ToolPath) Segments() []Segment {
	s := make([]Segment, len(tp.segments))
	copy(s, tp.segments)
	return s
}

// Directives returns a copy of all directives, in order.
func (tp *ToolPath) Directives() []Directive {
	d := make([]Directive, len(tp.directives))
	copy(d, tp.directives)
	return d
}

// Points returns the start position followed by the end point of every
// segment.
func (tp *ToolPath) Points() []gcam.Point3D {
	pts := make([]gcam.Point3D, 0, len(tp.segments)+1)
	pts = append(pts, tp.start)
	for _, s := range tp.segments {
		pts = append(pts, s.End)
	}
	return pts
}

// Bounds returns the axis-aligned bounding box of all visited points.
func (tp *ToolPath) Bounds() gcam.BoundingBox3D {
	bb := gcam.EmptyBox3D()
	for _, p := range tp.Points() {
		bb = bb.Extend(p)
	}
	return bb
}

// Length returns the total travel distance of all segments. Arcs are
// measured by their chord.
func (tp *ToolPath) Length() float64 {
	var l float64
	for _, s := range tp.segments {
		l += s.Length()
	}
	return l
}
