package cmd

import (
	"bytes"
	"os"
	"strings"

	"github.com/npillmayer/gcam"
	"github.com/npillmayer/gcam/gcode"
	"github.com/npillmayer/gcam/operation"
	"github.com/npillmayer/gcam/polygon"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Job is the contents of a job file: a list of operations and the program
// settings.
//
//	operations:
//	  - name: holes
//	    kind: drilling
//	    drilling:
//	      points: [[10, 20], [30, 20]]
//	      depth: -5
//	      retractHeight: 2
//	      rapidHeight: 10
//	      feedRate: 120
//	settings:
//	  codeGeneration:
//	    decimalPlaces: 2
type Job struct {
	Operations []OperationDef `yaml:"operations"`
	Settings   gcode.Config   `yaml:"settings"`
}

// OperationDef is a single operation as written in a job file. Exactly one
// of the parameter blocks must match Kind.
type OperationDef struct {
	Name     string       `yaml:"name"`
	Kind     string       `yaml:"kind"`
	Enabled  *bool        `yaml:"enabled,omitempty"` // default true
	Order    int          `yaml:"order,omitempty"`
	Drilling *DrillingDef `yaml:"drilling,omitempty"`
	Profile  *ProfileDef  `yaml:"profile,omitempty"`
}

// Point is a 2D point written as a [x, y] pair.
type Point [2]float64

func (p Point) point() gcam.Point2D {
	return gcam.P2(p[0], p[1])
}

// DrillingDef holds the parameters of a drilling operation.
type DrillingDef struct {
	Points        []Point  `yaml:"points"`
	Depth         float64  `yaml:"depth"`
	RetractHeight float64  `yaml:"retractHeight"`
	RapidHeight   float64  `yaml:"rapidHeight"`
	FeedRate      float64  `yaml:"feedRate"`
	DwellTime     *float64 `yaml:"dwellTime,omitempty"`
}

// ProfileDef holds the parameters of a profile operation. Every contour is
// closed implicitly.
type ProfileDef struct {
	Contours   [][]Point `yaml:"contours"`
	Depth      float64   `yaml:"depth"`
	SafeHeight float64   `yaml:"safeHeight"`
	FeedRate   float64   `yaml:"feedRate"`
	PlungeRate *float64  `yaml:"plungeRate,omitempty"`
	Stock      *struct {
		Min Point `yaml:"min"`
		Max Point `yaml:"max"`
	} `yaml:"stock,omitempty"`
}

// LoadJob reads and parses a job file.
func LoadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading job %s", path)
	}
	job, err := ParseJob(data)
	if err != nil {
		return nil, errors.Wrapf(err, "job %s", path)
	}
	return job, nil
}

// ParseJob parses the YAML text of a job. Unknown keys are rejected.
func ParseJob(data []byte) (*Job, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	job := &Job{}
	if err := dec.Decode(job); err != nil {
		return nil, errors.Wrap(err, "parsing YAML")
	}
	return job, nil
}

// Build converts the job's operation definitions into operations. A
// definition whose kind is unknown, or whose parameter block is missing, is an error.
func (job *Job) Build() ([]operation.Operation, error) {
	ops := make([]operation.Operation, 0, len(job.Operations))
	for i, def := range job.Operations {
		params, err := def.params()
		if err != nil {
			return nil, errors.Wrapf(err, "operation #%d (%q)", i+1, def.Name)
		}
		op := operation.New(def.Name, params)
		op.Order = def.Order
		if def.Enabled != nil {
			op.Enabled = *def.Enabled
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func (def OperationDef) params() (operation.Params, error) {
	switch strings.ToLower(strings.TrimSpace(def.Kind)) {
	case "drilling":
		if def.Drilling == nil {
			return nil, errors.New("drilling operation without drilling parameters")
		}
		return def.Drilling.params(), nil
	case "profile":
		if def.Profile == nil {
			return nil, errors.New("profile operation without profile parameters")
		}
		return def.Profile.params(), nil
	}
	return nil, errors.Wrapf(operation.ErrUnknownKind, "kind %q", def.Kind)
}

func (d *DrillingDef) params() operation.DrillingParams {
	points := make([]gcam.Point2D, len(d.Points))
	for i, p := range d.Points {
		points[i] = p.point()
	}
	return operation.DrillingParams{
		Points:        points,
		Depth:         d.Depth,
		RetractHeight: d.RetractHeight,
		RapidHeight:   d.RapidHeight,
		FeedRate:      d.FeedRate,
		DwellTime:     d.DwellTime,
	}
}

func (p *ProfileDef) params() operation.ProfileParams {
	outline := polygon.NullPolygon()
	for _, contour := range p.Contours {
		for _, pt := range contour {
			outline.Knot(pt.point())
		}
		outline.Cycle()
	}
	params := operation.ProfileParams{
		Outline:    outline,
		Depth:      p.Depth,
		SafeHeight: p.SafeHeight,
		FeedRate:   p.FeedRate,
		PlungeRate: p.PlungeRate,
	}
	if p.Stock != nil {
		r := gcam.NewRect2D(p.Stock.Min.point(), p.Stock.Max.point())
		params.Stock = &r
	}
	return params
}
