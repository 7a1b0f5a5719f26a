/*
Package operation implements machining operations. An operation validates
its own parameters and compiles itself into a tool path.

Operation kinds form a closed set: every kind carries its own parameter
record, which implements the sealed interface Params. Dispatch is done by
type switch, so adding a kind means adding a parameter record and two
switch cases.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package operation

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/npillmayer/gcam/toolpath"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'gcam.operation'
func tracer() tracing.Trace {
	return tracing.Select("gcam.operation")
}

// ErrUnknownKind indicates an operation without a known parameter record.
var ErrUnknownKind = errors.New("unknown operation kind")

// Kind identifies the kind of machining an operation performs.
type Kind int8

// Known operation kinds.
const (
	KindUnknown Kind = iota
	KindDrilling
	KindProfile
)

func (k Kind) String() string {
	switch k {
	case KindDrilling:
		return "drilling"
	case KindProfile:
		return "profile"
	}
	return "unknown"
}

// Params is the parameter record of an operation kind. The interface is
// sealed: only types of this package implement it.
type Params interface {
	Kind() Kind
	sealed()
}

// Operation is a single machining step of a job.
type Operation struct {
	ID      uuid.UUID
	Name    string
	Enabled bool
	Order   int // execution order, ascending
	Params  Params
}

// New creates an enabled operation with a fresh identity.
func New(name string, params Params) Operation {
	return Operation{
		ID:      uuid.New(),
		Name:    name,
		Enabled: true,
		Params:  params,
	}
}

// Kind returns the kind of op, derived from its parameter record.
func (op Operation) Kind() Kind {
	p := op.params()
	if p == nil {
		return KindUnknown
	}
	return p.Kind()
}

// params returns the parameter record of op by value. A missing record,
// including a nil pointer, yields nil.
func (op Operation) params() Params {
	switch p := op.Params.(type) {
	case *DrillingParams:
		if p == nil {
			return nil
		}
		return *p
	case *ProfileParams:
		if p == nil {
			return nil
		}
		return *p
	}
	return op.Params
}

func (op Operation) String() string {
	return fmt.Sprintf("%s %q (%s)", op.Kind(), op.Name, op.ID)
}

// Validate checks the parameters of op, collecting every violated rule.
func (op Operation) Validate() ValidationResult {
	switch p := op.params().(type) {
	case DrillingParams:
		return validateDrilling(p)
	case ProfileParams:
		return validateProfile(p)
	}
	return ValidationResult{Errors: []string{ErrUnknownKind.Error()}}
}

// GenerateToolPath validates op and compiles it into a tool path.
// An invalid operation yields no tool path and a *ValidationError.
func (op Operation) GenerateToolPath() (*toolpath.ToolPath, error) {
	if r := op.Validate(); !r.OK() {
		tracer().Infof("operation %s is invalid: %s", op, strings.Join(r.Errors, "; "))
		return nil, &ValidationError{Operation: op.Name, Messages: r.Errors}
	}
	var tp *toolpath.ToolPath
	switch p := op.params().(type) {
	case DrillingParams:
		tp = drillingPath(p)
	case ProfileParams:
		tp = profilePath(p)
	default:
		return nil, ErrUnknownKind
	}
	tracer().Debugf("operation %s: %d directives", op, tp.Len())
	return tp, nil
}

// Sort orders operations by execution order. Operations with equal order
// keep their relative position.
func Sort(ops []Operation) {
	sort.SliceStable(ops, func(i, j int) bool {
		return ops[i].Order < ops[j].Order
	})
}

// === Validation ============================================================

// ValidationResult is the outcome of validating an operation: success, or
// failure with an ordered list of human-readable messages.
type ValidationResult struct {
	Errors []string
}

// OK is a predicate: did validation succeed?
func (r ValidationResult) OK() bool {
	return len(r.Errors) == 0
}

// finite is a predicate: is v neither infinite nor NaN?
func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

func (r *ValidationResult) check(cond bool, format string, args ...interface{}) {
	if !cond {
		r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	}
}

// ValidationError reports an operation which failed validation.
type ValidationError struct {
	Operation string
	Messages  []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("operation %q is invalid: %s", e.Operation, strings.Join(e.Messages, "; "))
}
