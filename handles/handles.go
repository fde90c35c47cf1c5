package handles

import (
	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'squircle.handles'
func tracer() tracing.Trace {
	return tracing.Select("squircle.handles")
}

// Lengths below epsilon count as collapsed, ratios within epsilon of 1 as
// matching.
const epsilon = 1e-6

// Segment is one cubic Bézier curve of an outline: on-curve endpoints P0
// and P3 with the off-curve handles P1 (belonging to P0) and P2
// (belonging to P3).
type Segment struct {
	P0, P1, P2, P3 arithm.Pair
}

// Window is the context of an on-curve node N where two curve segments
// meet: segment A = (P0, A1, A2, N) arrives at N, segment B =
// (N, B1, B2, P3) leaves it. A2 and B1 are the near handles adjacent to
// N, A1 and B2 the far handles.
type Window struct {
	P0 arithm.Pair // on-curve start of the incoming segment
	A1 arithm.Pair // far handle of the incoming segment
	A2 arithm.Pair // near handle of the incoming segment
	N  arithm.Pair // the shared on-curve node
	B1 arithm.Pair // near handle of the outgoing segment
	B2 arithm.Pair // far handle of the outgoing segment
	P3 arithm.Pair // on-curve end of the outgoing segment
}

// Params are the two scalars steering Balance, both on the user-facing
// 0–100 display scale.
type Params struct {
	Tension    float64
	Adjustment float64
}

// Outcome tells callers whether a solver produced new coordinates or
// returned its input unchanged, and why. Degenerate geometry is not an
// error: skipping is a silent, deterministic fallback, and at most a
// higher layer may want to log it.
type Outcome int

const (
	// Adjusted means new coordinates were computed.
	Adjusted Outcome = iota
	// SkipDegenerate: a chord or handle is shorter than epsilon.
	SkipDegenerate
	// SkipTangents: the tangent departure angles could not be resolved.
	SkipTangents
	// SkipMatched: the handle ratio already matches the target.
	SkipMatched
	// SkipNoRoot: the area quadratic has no usable positive root.
	SkipNoRoot
	// SkipParallel: a required line intersection does not exist.
	SkipParallel
	// SkipInflection: curvature centers lie on opposite sides of the
	// node, or one side has no curvature to match.
	SkipInflection
)

// Skipped is a predicate: did the solver leave its input unchanged?
func (o Outcome) Skipped() bool {
	return o != Adjusted
}

// Pretty Stringer for outcomes, used in trace messages.
func (o Outcome) String() string {
	switch o {
	case Adjusted:
		return "adjusted"
	case SkipDegenerate:
		return "degenerate geometry"
	case SkipTangents:
		return "unresolved tangent angles"
	case SkipMatched:
		return "ratio already matches"
	case SkipNoRoot:
		return "no positive quadratic root"
	case SkipParallel:
		return "parallel lines"
	case SkipInflection:
		return "inflection at node"
	}
	return "unknown outcome"
}
