/*
Package gcode compiles machining operations into G-code programs.

A Generator lowers an ordered list of entries, each carrying a tool path,
together with a program configuration into the lines of a G-code program.
Generation tracks the machine position across the whole program: axis words
which would not change the position are omitted, and moves without any
remaining axis word are dropped altogether.

	g := gcode.NewGenerator()
	lines := g.Generate(entries, gcode.Config{})

Generation is total: malformed numeric settings degrade to absent values
and never abort a program. Every call to Generate works on its own state,
so a Generator may be used from several goroutines at once.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package gcode

import (
	"errors"
	"strings"
	"time"

	"github.com/npillmayer/gcam/operation"
	"github.com/npillmayer/gcam/toolpath"
	"github.com/npillmayer/schuko/tracing"
	"github.com/samber/lo"
)

// tracer writes to trace with key 'gcam.gcode'
func tracer() tracing.Trace {
	return tracing.Select("gcam.gcode")
}

// Entry is an operation as seen by the generator: a name for the comment
// line, an enabled flag and the compiled tool path.
type Entry struct {
	Name    string
	Enabled bool
	Path    *toolpath.ToolPath
}

// Generator produces G-code programs. It holds no per-program state.
type Generator struct {
	clock func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock sets the clock used for the creation timestamp comment.
func WithClock(clock func() time.Time) Option {
	return func(g *Generator) {
		if clock != nil {
			g.clock = clock
		}
	}
}

// NewGenerator creates a generator using the wall clock unless told
// otherwise.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{clock: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces the lines of a G-code program for the enabled entries,
// in order. cfg is only read.
func (g *Generator) Generate(entries []Entry, cfg Config) []string {
	eff := resolve(cfg)
	e := newEmitter(eff)
	enabled := lo.Filter(entries, func(entry Entry, _ int) bool {
		return entry.Enabled
	})
	tracer().Infof("generating program for %d of %d operations", len(enabled), len(entries))
	e.header(g.clock())
	e.programStart()
	for _, entry := range enabled {
		e.body(entry)
	}
	e.programEnd()
	return lo.Filter(e.lines, func(line string, _ int) bool {
		return strings.TrimSpace(line) != ""
	})
}

// Compile validates the enabled operations and compiles each into a tool
// path, after sorting them by execution order. Disabled operations are kept
// as entries without a tool path. All validation failures are returned
// together; no entries are returned in that case.
func Compile(ops []operation.Operation) ([]Entry, error) {
	sorted := make([]operation.Operation, len(ops))
	copy(sorted, ops)
	operation.Sort(sorted)
	entries := make([]Entry, 0, len(sorted))
	var errs []error
	for _, op := range sorted {
		entry := Entry{Name: op.Name, Enabled: op.Enabled}
		if op.Enabled {
			tp, err := op.GenerateToolPath()
			if err != nil {
				errs = append(errs, err)
				continue
			}
			entry.Path = tp
		}
		entries = append(entries, entry)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return entries, nil
}

// GenerateOperations compiles ops and generates a program from them.
// Invalid enabled operations block generation.
func (g *Generator) GenerateOperations(ops []operation.Operation, cfg Config) ([]string, error) {
	entries, err := Compile(ops)
	if err != nil {
		return nil, err
	}
	return g.Generate(entries, cfg), nil
}
