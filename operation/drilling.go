package operation

import (
	"math"

	"github.com/npillmayer/gcam"
	"github.com/npillmayer/gcam/toolpath"
)

// DrillingParams describes a set of holes drilled at the same depth.
// Heights are absolute Z values with the stock surface at Z = 0, so a valid
// drilling operation satisfies Depth < RetractHeight < RapidHeight.
type DrillingParams struct {
	Points        []gcam.Point2D // drill positions, drilled in order
	Depth         float64        // final Z of the drill tip, below 0
	RetractHeight float64        // Z to feed from and retract to
	RapidHeight   float64        // Z for travelling between holes
	FeedRate      float64        // plunge feed rate
	DwellTime     *float64       // optional pause at the bottom, in seconds
}

// Kind is part of interface Params.
func (DrillingParams) Kind() Kind { return KindDrilling }

func (DrillingParams) sealed() {}

func validateDrilling(p DrillingParams) ValidationResult {
	var r ValidationResult
	r.check(len(p.Points) > 0, "at least one drill point is required")
	r.check(p.Depth < 0, "depth must be below the surface (< 0), is %g", p.Depth)
	r.check(p.RetractHeight > p.Depth, "retract height (%g) must be above depth (%g)",
		p.RetractHeight, p.Depth)
	r.check(p.RapidHeight > p.RetractHeight, "rapid height (%g) must be above retract height (%g)",
		p.RapidHeight, p.RetractHeight)
	r.check(p.FeedRate > 0, "feed rate must be positive, is %g", p.FeedRate)
	r.check(finite(p.Depth), "depth must be finite")
	r.check(finite(p.RetractHeight), "retract height must be finite")
	r.check(finite(p.RapidHeight), "rapid height must be finite")
	r.check(finite(p.FeedRate), "feed rate must be finite")
	for _, pt := range p.Points {
		r.check(finite(pt.X) && finite(pt.Y), "drill point %s must be finite", pt)
	}
	if p.DwellTime != nil {
		r.check(*p.DwellTime >= 0, "dwell time must not be negative, is %g", *p.DwellTime)
		r.check(!math.IsInf(*p.DwellTime, 0), "dwell time must be finite")
	}
	return r
}

// drillingPath emits, per drill point: rapid to rapid height, rapid down to
// retract height, plunge to depth, optional dwell, retract, rapid up.
func drillingPath(p DrillingParams) *toolpath.ToolPath {
	some := toolpath.Some
	tp := toolpath.New()
	for _, pt := range p.Points {
		x, y := some(pt.X), some(pt.Y)
		tp.AddMove(toolpath.RapidTo(x, y, some(p.RapidHeight)))
		tp.AddMove(toolpath.RapidTo(x, y, some(p.RetractHeight)))
		tp.AddMove(toolpath.LinearTo(x, y, some(p.Depth), some(p.FeedRate)))
		if p.DwellTime != nil && *p.DwellTime > 0 {
			if err := tp.AddDwell(*p.DwellTime); err != nil {
				tracer().Errorf("drilling at %s: %v", pt, err)
			}
		}
		tp.AddMove(toolpath.RapidTo(x, y, some(p.RetractHeight)))
		tp.AddMove(toolpath.RapidTo(x, y, some(p.RapidHeight)))
	}
	return tp
}
