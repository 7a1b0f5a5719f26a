package operation

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/gcam"
	"github.com/npillmayer/gcam/polygon"
	"github.com/npillmayer/gcam/toolpath"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(f float64) *float64 {
	return &f
}

func validDrilling() DrillingParams {
	return DrillingParams{
		Points:        []gcam.Point2D{gcam.P2(10, 20), gcam.P2(30, 40)},
		Depth:         -5,
		RetractHeight: 2,
		RapidHeight:   10,
		FeedRate:      120,
	}
}

func TestDrillingFiveMovesPerPoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	op := New("holes", validDrilling())
	tp, err := op.GenerateToolPath()
	require.NoError(t, err)
	segs := tp.Segments()
	require.Len(t, segs, 10)
	want := []struct {
		typ toolpath.MoveType
		end gcam.Point3D
	}{
		{toolpath.MoveRapid, gcam.P3(10, 20, 10)},
		{toolpath.MoveRapid, gcam.P3(10, 20, 2)},
		{toolpath.MoveLinear, gcam.P3(10, 20, -5)},
		{toolpath.MoveRapid, gcam.P3(10, 20, 2)},
		{toolpath.MoveRapid, gcam.P3(10, 20, 10)},
		{toolpath.MoveRapid, gcam.P3(30, 40, 10)},
	}
	for i, w := range want {
		assert.Equal(t, w.typ, segs[i].Command.Type(), "move %d", i)
		assert.Equal(t, w.end, segs[i].End, "move %d", i)
	}
	feed, ok := segs[2].Command.Feed().Get()
	assert.True(t, ok)
	assert.Equal(t, 120.0, feed)
	assert.Equal(t, 10, tp.Len(), "no dwell without dwell time")
}

func TestDrillingDwell(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := validDrilling()
	p.Points = p.Points[:1]
	p.DwellTime = fptr(0.5)
	tp, err := New("dwell", p).GenerateToolPath()
	require.NoError(t, err)
	d := tp.Directives()
	require.Len(t, d, 6)
	dwell, ok := d[3].(toolpath.Dwell)
	require.True(t, ok, "dwell follows the plunge")
	assert.Equal(t, 0.5, dwell.Seconds)
	assert.Len(t, tp.Segments(), 5)

	p.DwellTime = fptr(0)
	tp, err = New("no dwell", p).GenerateToolPath()
	require.NoError(t, err)
	assert.Equal(t, 5, tp.Len())
}

func TestDrillingValidationCollectsAll(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := DrillingParams{
		Depth:         1,
		RetractHeight: 0,
		RapidHeight:   0,
		FeedRate:      0,
		DwellTime:     fptr(-1),
	}
	r := New("bad", p).Validate()
	assert.False(t, r.OK())
	assert.Len(t, r.Errors, 6)
}

func TestDrillingValidationRules(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cases := []struct {
		name   string
		modify func(*DrillingParams)
	}{
		{"no points", func(p *DrillingParams) { p.Points = nil }},
		{"depth at surface", func(p *DrillingParams) { p.Depth = 0 }},
		{"retract below depth", func(p *DrillingParams) { p.RetractHeight = -6 }},
		{"rapid equals retract", func(p *DrillingParams) { p.RapidHeight = 2 }},
		{"negative feed", func(p *DrillingParams) { p.FeedRate = -1 }},
		{"negative dwell", func(p *DrillingParams) { p.DwellTime = fptr(-0.1) }},
		{"infinite rapid", func(p *DrillingParams) { p.RapidHeight = math.Inf(1) }},
		{"infinite dwell", func(p *DrillingParams) { p.DwellTime = fptr(math.Inf(1)) }},
		{"NaN point", func(p *DrillingParams) { p.Points = []gcam.Point2D{gcam.P2(math.NaN(), 0)} }},
	}
	for _, c := range cases {
		p := validDrilling()
		c.modify(&p)
		r := New(c.name, p).Validate()
		assert.Len(t, r.Errors, 1, c.name)
	}
	assert.True(t, New("ok", validDrilling()).Validate().OK())
	//
	p := validDrilling()
	p.Depth, p.FeedRate = math.Inf(-1), math.Inf(1)
	r := New("infinite", p).Validate()
	assert.Len(t, r.Errors, 2)
	_, err := New("infinite", p).GenerateToolPath()
	assert.Error(t, err)
}

func TestInvalidOperationBlocksToolPath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := validDrilling()
	p.FeedRate = 0
	tp, err := New("bad feed", p).GenerateToolPath()
	assert.Nil(t, tp)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "bad feed", verr.Operation)
	assert.Len(t, verr.Messages, 1)
}

func TestUnknownKind(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	op := Operation{Name: "empty"}
	assert.Equal(t, KindUnknown, op.Kind())
	assert.False(t, op.Validate().OK())
	_, err := op.GenerateToolPath()
	assert.Error(t, err)
}

func TestPointerParams(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := validDrilling()
	op := New("ptr", &p)
	assert.Equal(t, KindDrilling, op.Kind())
	tp, err := op.GenerateToolPath()
	require.NoError(t, err)
	assert.Len(t, tp.Segments(), 10)
	//
	nilOps := []Operation{
		{Name: "nil drilling", Params: (*DrillingParams)(nil)},
		New("nil profile", (*ProfileParams)(nil)),
	}
	for _, op := range nilOps {
		assert.NotPanics(t, func() {
			assert.Equal(t, KindUnknown, op.Kind(), op.Name)
			assert.False(t, op.Validate().OK(), op.Name)
			tp, err := op.GenerateToolPath()
			assert.Nil(t, tp, op.Name)
			assert.Error(t, err, op.Name)
		}, op.Name)
	}
}

func TestSortIsStable(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a, b, c := New("a", validDrilling()), New("b", validDrilling()), New("c", validDrilling())
	a.Order, b.Order, c.Order = 2, 1, 1
	ops := []Operation{a, b, c}
	Sort(ops)
	assert.Equal(t, "b", ops[0].Name)
	assert.Equal(t, "c", ops[1].Name)
	assert.Equal(t, "a", ops[2].Name)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestProfilePath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := ProfileParams{
		Outline:    polygon.Box(gcam.P2(0, 0), gcam.P2(10, 5)),
		Depth:      -1,
		SafeHeight: 5,
		FeedRate:   300,
		PlungeRate: fptr(50),
	}
	tp, err := New("frame", p).GenerateToolPath()
	require.NoError(t, err)
	segs := tp.Segments()
	// rapid, plunge, 4 edges, retract
	require.Len(t, segs, 7)
	assert.Equal(t, gcam.P3(0, 0, 5), segs[0].End)
	assert.Equal(t, gcam.P3(0, 0, -1), segs[1].End)
	plunge, _ := segs[1].Command.Feed().Get()
	assert.Equal(t, 50.0, plunge)
	assert.Equal(t, gcam.P3(0, 0, -1), segs[5].End, "contour is closed")
	assert.Equal(t, gcam.P3(0, 0, 5), segs[6].End)
	bb := tp.Bounds()
	assert.Equal(t, gcam.P3(0, 0, -1), bb.Min)
	assert.Equal(t, gcam.P3(10, 5, 5), bb.Max)
}

func TestProfileClippedToStock(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	stock := gcam.NewRect2D(gcam.P2(-1, -1), gcam.P2(5, 3))
	p := ProfileParams{
		Outline:    polygon.Box(gcam.P2(0, 0), gcam.P2(10, 10)),
		Depth:      -1,
		SafeHeight: 5,
		FeedRate:   300,
		Stock:      &stock,
	}
	tp, err := New("clipped", p).GenerateToolPath()
	require.NoError(t, err)
	xy := tp.Bounds().XY()
	assert.Equal(t, gcam.NewRect2D(gcam.P2(0, 0), gcam.P2(5, 3)), xy)

	outside := gcam.NewRect2D(gcam.P2(50, 50), gcam.P2(60, 60))
	p.Stock = &outside
	r := New("outside", p).Validate()
	assert.Len(t, r.Errors, 1)
}

func TestProfileValidation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := New("bad", ProfileParams{PlungeRate: fptr(0)}).Validate()
	// outline, depth, safe height, feed, plunge
	assert.Len(t, r.Errors, 5)
	//
	outline := polygon.NullPolygon().Knot(gcam.P2(0, 0)).Knot(gcam.P2(10, 0)).Knot(gcam.P2(10, 10)).Cycle()
	p := ProfileParams{Outline: outline, Depth: -2, SafeHeight: math.Inf(1), FeedRate: 100}
	r = New("infinite", p).Validate()
	assert.Len(t, r.Errors, 1)
	p.SafeHeight, p.PlungeRate = 5, fptr(math.NaN())
	r = New("NaN plunge", p).Validate()
	assert.Len(t, r.Errors, 2) // NaN fails the positivity rule, too
}
