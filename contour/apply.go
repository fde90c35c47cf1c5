package contour

import (
	"math"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/squircle"
	"github.com/npillmayer/squircle/handles"
)

// Mode selects what happens to a contour after its segments have been
// balanced. The modes are mutually exclusive per run.
type Mode int8

const (
	// ModeBalanced keeps the balanced handle lengths as computed.
	ModeBalanced Mode = iota
	// ModePreserve restores each segment's original handle-length ratio
	// while preserving the enclosed area.
	ModePreserve
	// ModeSmooth harmonizes curvature at smooth nodes by scaling the
	// near handles.
	ModeSmooth
	// ModeSmart harmonizes curvature at smooth nodes by relocating the
	// node itself.
	ModeSmart
)

func (m Mode) String() string {
	switch m {
	case ModeBalanced:
		return "balanced"
	case ModePreserve:
		return "preserve"
	case ModeSmooth:
		return "smooth"
	case ModeSmart:
		return "smart"
	}
	return "unknown"
}

// Options bundles the user-tunable scalars of a filter run. Tension and
// Adjustment are on the 0–100 display scale, Slant in degrees. Out of
// range values are clamped, not rejected.
type Options struct {
	Tension    float64
	Adjustment float64
	Slant      float64
	Mode       Mode
}

// DefaultOptions mirrors the presets of the interactive tool: the Type
// tension preset, median adjustment, upright, balanced mode.
func DefaultOptions() Options {
	return Options{
		Tension:    squircle.DefaultTension,
		Adjustment: squircle.DefaultAdjustment,
		Slant:      squircle.DefaultSlant,
		Mode:       ModeBalanced,
	}
}

func (opts Options) clamped() Options {
	opts.Tension = clamp(opts.Tension, 0, 100)
	opts.Adjustment = clamp(opts.Adjustment, 0, 100)
	opts.Slant = clamp(opts.Slant, -45, 45)
	return opts
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// Report counts what a filter run did to a contour.
type Report struct {
	Balanced        int // cubic segments with recomputed handles
	Redistributed   int // segments with their original handle ratio restored
	Harmonized      int // smooth nodes with G2 harmonization applied
	SkippedSegments int // cubic segments the balancer declined
	SkippedNodes    int // smooth node candidates left untouched
}

// Apply runs the superellipse filter over a contour and returns the
// reshaped contour with a count of what happened. The input is never
// mutated.
//
// Pass 1 balances every cubic segment, in ModePreserve followed by the
// area-preserving redistribution against the segment's original handles.
// In ModeSmooth and ModeSmart a second pass harmonizes curvature at
// every smooth node framed by two cubic segments. All computation runs
// in deslanted (upright) space. Within a pass every window is read
// before any write lands, so results do not depend on node order.
func Apply(c Contour, opts Options) (Contour, Report, error) {
	var report Report
	if err := c.Validate(); err != nil {
		return nil, report, err
	}
	opts = opts.clamped()
	shear := squircle.ShearFactor(opts.Slant)
	par := handles.Params{Tension: opts.Tension, Adjustment: opts.Adjustment}

	out := make(Contour, len(c))
	copy(out, c)

	// Segments own their two handles exclusively, writes can go straight
	// to the output copy.
	for i, node := range c {
		if !node.OnCurve() || !c.cubicInto(i) {
			continue
		}
		seg := handles.Segment{
			P0: squircle.Deslant(c.at(i-3).Pos, shear),
			P1: squircle.Deslant(c.at(i-2).Pos, shear),
			P2: squircle.Deslant(c.at(i-1).Pos, shear),
			P3: squircle.Deslant(node.Pos, shear),
		}
		bal, outcome := handles.Balance(seg, par)
		if outcome.Skipped() {
			tracer().Debugf("segment into node %d skipped: %s", i, outcome)
			report.SkippedSegments++
			continue
		}
		report.Balanced++
		if opts.Mode == ModePreserve {
			if red, outcome := handles.Redistribute(seg, bal); !outcome.Skipped() {
				bal = red
				report.Redistributed++
			} else {
				tracer().Debugf("segment into node %d not redistributed: %s", i, outcome)
			}
		}
		out[wrap(i-2, len(c))].Pos = squircle.Reslant(bal.P1, shear)
		out[wrap(i-1, len(c))].Pos = squircle.Reslant(bal.P2, shear)
	}

	if opts.Mode == ModeSmooth || opts.Mode == ModeSmart {
		report.Harmonized, report.SkippedNodes = harmonize(out, opts.Mode, shear)
	}
	tracer().Infof("%s filter: %d segments balanced, %d nodes harmonized",
		opts.Mode, report.Balanced, report.Harmonized)
	return out, report, nil
}

// harmonize runs the pass 2 node solvers over the balanced contour,
// mutating it in place. Adjacent windows overlap in up to three points,
// so writes are staged and land only after every window has been read.
func harmonize(out Contour, mode Mode, shear float64) (harmonized, skipped int) {
	type write struct {
		index int
		pos   arithm.Pair
	}
	var writes []write
	for i, node := range out {
		if node.Type != Smooth {
			continue
		}
		if !out.cubicInto(i) || !out.cubicOutOf(i) {
			tracer().Debugf("node %d not framed by two cubic segments", i)
			skipped++
			continue
		}
		w := handles.Window{
			P0: squircle.Deslant(out.at(i-3).Pos, shear),
			A1: squircle.Deslant(out.at(i-2).Pos, shear),
			A2: squircle.Deslant(out.at(i-1).Pos, shear),
			N:  squircle.Deslant(node.Pos, shear),
			B1: squircle.Deslant(out.at(i+1).Pos, shear),
			B2: squircle.Deslant(out.at(i+2).Pos, shear),
			P3: squircle.Deslant(out.at(i+3).Pos, shear),
		}
		var outcome handles.Outcome
		if mode == ModeSmooth {
			var h handles.Window
			if h, outcome = handles.SmoothNode(w); !outcome.Skipped() {
				writes = append(writes,
					write{wrap(i-1, len(out)), squircle.Reslant(h.A2, shear)},
					write{wrap(i+1, len(out)), squircle.Reslant(h.B1, shear)})
			}
		} else {
			var h handles.Window
			if h, outcome = handles.SmartNode(w); !outcome.Skipped() {
				writes = append(writes, write{i, squircle.Reslant(h.N, shear)})
			}
		}
		if outcome.Skipped() {
			tracer().Debugf("node %d skipped: %s", i, outcome)
			skipped++
			continue
		}
		harmonized++
	}
	for _, wr := range writes {
		out[wr.index].Pos = wr.pos
	}
	return harmonized, skipped
}
