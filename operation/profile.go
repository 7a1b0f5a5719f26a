package operation

import (
	"github.com/npillmayer/gcam"
	"github.com/npillmayer/gcam/polygon"
	"github.com/npillmayer/gcam/toolpath"
)

// ProfileParams describes a cut along the contours of a polygon at a single
// depth. If Stock is set, the outline is clipped to the stock rectangle
// before cutting.
type ProfileParams struct {
	Outline    *polygon.Polygon
	Depth      float64      // Z of the cut, below 0
	SafeHeight float64      // Z for travelling between contours, above 0
	FeedRate   float64      // cutting feed rate
	PlungeRate *float64     // optional plunge feed rate, FeedRate if unset
	Stock      *gcam.Rect2D // optional clipping rectangle
}

// Kind is part of interface Params.
func (ProfileParams) Kind() Kind { return KindProfile }

func (ProfileParams) sealed() {}

// outline returns the outline to cut, clipped to the stock if one is set.
func (p ProfileParams) outline() *polygon.Polygon {
	if p.Stock == nil || p.Outline.IsEmpty() {
		return p.Outline
	}
	return p.Outline.Clip(*p.Stock)
}

func validateProfile(p ProfileParams) ValidationResult {
	var r ValidationResult
	r.check(!p.Outline.IsEmpty(), "outline must have at least one closed contour")
	if p.Outline != nil {
		r.check(p.Outline.Check() == nil, "outline has an unclosed contour")
	}
	if p.Stock != nil && !p.Outline.IsEmpty() {
		r.check(!p.outline().IsEmpty(), "outline lies completely outside of stock %s", *p.Stock)
	}
	r.check(p.Depth < 0, "depth must be below the surface (< 0), is %g", p.Depth)
	r.check(p.SafeHeight > 0, "safe height must be above the surface (> 0), is %g", p.SafeHeight)
	r.check(p.FeedRate > 0, "feed rate must be positive, is %g", p.FeedRate)
	r.check(finite(p.Depth), "depth must be finite")
	r.check(finite(p.SafeHeight), "safe height must be finite")
	r.check(finite(p.FeedRate), "feed rate must be finite")
	if p.PlungeRate != nil {
		r.check(*p.PlungeRate > 0, "plunge rate must be positive, is %g", *p.PlungeRate)
		r.check(finite(*p.PlungeRate), "plunge rate must be finite")
	}
	return r
}

// profilePath emits, per contour: rapid to safe height above the first
// vertex, plunge, cut along all vertices back to the first one, rapid up.
func profilePath(p ProfileParams) *toolpath.ToolPath {
	some := toolpath.Some
	plunge := p.FeedRate
	if p.PlungeRate != nil {
		plunge = *p.PlungeRate
	}
	tp := toolpath.New()
	for _, contour := range p.outline().Contours() {
		first := contour[0]
		tp.AddMove(toolpath.RapidTo(some(first.X), some(first.Y), some(p.SafeHeight)))
		tp.AddMove(toolpath.LinearTo(toolpath.None, toolpath.None, some(p.Depth), some(plunge)))
		for _, v := range append(contour[1:], first) {
			tp.AddMove(toolpath.LinearTo(some(v.X), some(v.Y), toolpath.None, some(p.FeedRate)))
		}
		tp.AddMove(toolpath.RapidTo(toolpath.None, toolpath.None, some(p.SafeHeight)))
	}
	return tp
}
