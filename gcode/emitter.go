package gcode

import (
	"fmt"
	"strings"
	"time"

	"github.com/npillmayer/gcam/toolpath"
)

const (
	programNumber = "O0001"
	endOfProgram  = "M30"
	endOfTape     = "%"
	timeLayout    = "2006-01-02 15:04:05"
)

var axisLetters = [3]string{"X", "Y", "Z"}

// axis is a tracked machine coordinate, unknown until first set.
type axis struct {
	value float64
	known bool
}

// emitter is the working state of a single Generate call. It is never
// shared between calls.
type emitter struct {
	cfg   effective
	lines []string
	next  int     // next line number
	pos   [3]axis // X, Y, Z
	feed  axis
}

func newEmitter(cfg effective) *emitter {
	return &emitter{
		cfg:  cfg,
		next: cfg.startLineNumber,
	}
}

// raw appends a line which is never numbered.
func (e *emitter) raw(line string) {
	e.lines = append(e.lines, line)
}

// blank appends a structural spacer, removed before the program is returned.
func (e *emitter) blank() {
	e.lines = append(e.lines, "")
}

func (e *emitter) numbered(line string) {
	if e.cfg.useLineNumbers {
		line = fmt.Sprintf("N%04d %s", e.next, line)
		e.next += e.cfg.lineNumberStep
	}
	e.lines = append(e.lines, line)
}

// command appends a command line built from words.
func (e *emitter) command(words ...string) {
	line := strings.TrimSpace(strings.Join(words, " "))
	if line == "" {
		return
	}
	if e.cfg.formatCommands {
		line = alias(line)
	}
	e.numbered(line)
}

// comment appends a comment line. Comments are numbered like commands but
// never aliased.
func (e *emitter) comment(text string) {
	e.numbered("; " + text)
}

// number parses a numeric setting, tracing values which degrade to absent.
func (e *emitter) number(name, s string) (float64, bool) {
	v, ok := parseNumber(s)
	if !ok && strings.TrimSpace(s) != "" {
		tracer().Debugf("setting %s: %q is not a number, ignored", name, s)
	}
	return v, ok
}

func (e *emitter) coordOf(name, s string) toolpath.Coord {
	if v, ok := e.number(name, s); ok {
		return toolpath.Some(v)
	}
	return toolpath.None
}

// axisWords applies the move-rendering rule to X, Y and Z: absent targets
// and targets equal to the tracked position are omitted, others are
// rendered and become the new tracked position.
func (e *emitter) axisWords(targets [3]toolpath.Coord) []string {
	var words []string
	places := e.cfg.places
	for i, c := range targets {
		v, ok := c.Get()
		if !ok {
			continue
		}
		cur := e.pos[i]
		if cur.known && sameAt(v, cur.value, places) {
			continue
		}
		out := v
		if e.relativeMode() {
			out = roundTo(v, places) - roundTo(cur.value, places)
		}
		words = append(words, axisLetters[i]+formatCoord(out, places))
		e.pos[i] = axis{value: v, known: true}
	}
	return words
}

// feedWord returns the F word for feed if it differs from the last one
// emitted. Feeds are compared as printed, independent of the coordinate
// precision.
func (e *emitter) feedWord(feed toolpath.Coord) []string {
	f, ok := feed.Get()
	if !ok || (e.feed.known && formatNumber(f) == formatNumber(e.feed.value)) {
		return nil
	}
	e.feed = axis{value: f, known: true}
	return []string{"F" + formatNumber(f)}
}

// move renders a rapid or linear move. A move without any remaining axis
// word is skipped entirely and consumes no line number. It reports whether
// a line was emitted.
func (e *emitter) move(t toolpath.MoveType, x, y, z, feed toolpath.Coord) bool {
	words := e.axisWords([3]toolpath.Coord{x, y, z})
	if len(words) == 0 {
		return false
	}
	if t == toolpath.MoveLinear {
		words = append(words, e.feedWord(feed)...)
	}
	e.command(append([]string{t.Word()}, words...)...)
	return true
}

// arc renders a circular move. With arcs disabled, the arc is lowered to a
// straight move to its end point.
func (e *emitter) arc(cmd toolpath.MoveCommand) {
	if !e.cfg.allowArcs {
		e.move(toolpath.MoveLinear, cmd.X(), cmd.Y(), cmd.Z(), cmd.Feed())
		return
	}
	words := []string{cmd.Type().Word()}
	words = append(words, e.axisWords([3]toolpath.Coord{cmd.X(), cmd.Y(), cmd.Z()})...)
	if cmd.HasRadius() {
		r, _ := cmd.R().Get()
		words = append(words, "R"+formatCoord(r, e.cfg.places))
	} else {
		for i, c := range []toolpath.Coord{cmd.I(), cmd.J(), cmd.K()} {
			if v, ok := c.Get(); ok {
				words = append(words, string("IJK"[i])+formatCoord(v, e.cfg.places))
			}
		}
	}
	words = append(words, e.feedWord(cmd.Feed())...)
	e.command(words...)
}

func (e *emitter) dwell(seconds float64) {
	e.command("G4", "P"+formatNumber(seconds))
}

func (e *emitter) relativeMode() bool {
	return !e.cfg.absolute && e.cfg.relative
}

// --- Program sections ------------------------------------------------------

func (e *emitter) header(now time.Time) {
	if e.cfg.comments {
		e.raw(programNumber + " (Program)")
		e.raw(fmt.Sprintf(";(File created: %s)", now.Format(timeLayout)))
		return
	}
	e.raw(programNumber)
}

func (e *emitter) programStart() {
	c := e.cfg
	if c.setWCS && strings.TrimSpace(c.wcs) != "" {
		e.command(strings.TrimSpace(c.wcs))
	}
	if c.absolute {
		e.command("G90")
	} else if c.relative {
		e.command("G91")
	}
	if c.zerosAtStart {
		e.originOffset()
	}
	if c.spindle && c.spindleAtStart && strings.TrimSpace(c.spindleCommand) != "" {
		e.spindleStart()
	}
	if c.coolant && c.coolantAtStart {
		e.command("M8")
	}
	e.blank()
}

// originOffset emits G92 with every parseable origin coordinate and seeds
// the tracked position with exactly those values.
func (e *emitter) originOffset() {
	words := []string{"G92"}
	for i, s := range []string{e.cfg.x0, e.cfg.y0, e.cfg.z0} {
		v, ok := e.number(axisLetters[i]+"0", s)
		if !ok {
			continue
		}
		words = append(words, axisLetters[i]+formatCoord(v, e.cfg.places))
		e.pos[i] = axis{value: v, known: true}
	}
	if len(words) > 1 {
		e.command(words...)
	}
}

func (e *emitter) spindleStart() {
	c := e.cfg
	words := []string{strings.TrimSpace(c.spindleCommand)}
	if c.setSpeed {
		if s, ok := e.number("spindle speed", c.speed); ok {
			words = append(words, "S"+formatNumber(s))
		}
	}
	e.command(words...)
	if !c.spindleDelay {
		return
	}
	param, value := strings.TrimSpace(c.delayParameter), strings.TrimSpace(c.delayValue)
	if param == "" || value == "" {
		return
	}
	if d, ok := e.number("spindle delay", value); ok {
		e.command("G4", delayWord(param)+formatNumber(d))
	}
}

// DelayParameterMilliseconds is the spindle delay parameter token selecting
// a dwell given in milliseconds. It is rendered as a P word.
const DelayParameterMilliseconds = "P (ms)"

func delayWord(param string) string {
	if strings.EqualFold(param, DelayParameterMilliseconds) {
		return "P"
	}
	return strings.ToUpper(param)
}

func (e *emitter) body(entry Entry) {
	if e.cfg.comments {
		e.comment(entry.Name)
	}
	if entry.Path == nil {
		return
	}
	for _, d := range entry.Path.Directives() {
		switch d := d.(type) {
		case toolpath.Segment:
			cmd := d.Command
			if cmd.Type().IsArc() {
				e.arc(cmd)
			} else {
				e.move(cmd.Type(), cmd.X(), cmd.Y(), cmd.Z(), cmd.Feed())
			}
		case toolpath.Dwell:
			e.dwell(d.Seconds)
		}
	}
}

func (e *emitter) programEnd() {
	c := e.cfg
	e.blank()
	if c.moveAtEnd {
		e.move(toolpath.MoveRapid,
			e.coordOf("X", c.endX), e.coordOf("Y", c.endY), e.coordOf("Z", c.endZ),
			toolpath.None)
	}
	if c.spindle && c.spindleOffAtEnd {
		e.command("M5")
	}
	if c.coolant && c.coolantOffAtEnd {
		e.command("M9")
	}
	e.command(endOfProgram)
	e.raw(endOfTape)
}
