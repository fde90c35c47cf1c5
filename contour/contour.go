// Package contour drives the squircle handle solvers over whole glyph
// outline contours: closed, cyclic sequences of on-curve nodes and
// off-curve Bézier handles. It validates outline structure, walks the
// cubic segments and smooth nodes, and applies the configured filter
// mode with all writes deferred to the end of each pass.
/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer.

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
   list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
   contributors may be used to endorse or promote products derived from
   this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package contour

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'squircle.contour'
func tracer() tracing.Trace {
	return tracing.Select("squircle.contour")
}

// Structural errors reported by Validate. Degenerate but well-formed
// geometry is not an error; the solvers skip it silently.
var (
	// ErrEmptyContour indicates a contour without any nodes.
	ErrEmptyContour = errors.New("contour has no nodes")
	// ErrNoOnCurve indicates a contour consisting of off-curve handles only.
	ErrNoOnCurve = errors.New("contour has no on-curve node")
	// ErrUnpairedHandles indicates an off-curve run that is not a cubic handle pair.
	ErrUnpairedHandles = errors.New("off-curve handles do not pair up for a cubic segment")
	// ErrInvalidCoordinate indicates a NaN or infinite node coordinate.
	ErrInvalidCoordinate = errors.New("node coordinate is not a finite number")
)

// NodeType classifies the points of an outline contour.
type NodeType int8

const (
	Corner   NodeType = iota // on-curve node with a visible kink
	Smooth                   // on-curve node with a continuous tangent
	OffCurve                 // Bézier handle
)

func (t NodeType) String() string {
	switch t {
	case Corner:
		return "corner"
	case Smooth:
		return "smooth"
	case OffCurve:
		return "off-curve"
	}
	return "unknown"
}

// Node is one point of a contour.
type Node struct {
	Pos  arithm.Pair
	Type NodeType
}

// OnCurve is true for nodes the outline passes through.
func (n Node) OnCurve() bool {
	return n.Type != OffCurve
}

// Contour is a closed outline path. The node list wraps around: the
// successor of the last node is the first. Between two consecutive
// on-curve nodes lie either no off-curve handles (a straight line) or
// exactly two (a cubic curve segment).
type Contour []Node

// at returns the node at cyclic index i.
func (c Contour) at(i int) Node {
	return c[wrap(i, len(c))]
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// cubicInto reports whether the segment arriving at node i is a cubic,
// i.e. the two preceding nodes are off-curve handles.
func (c Contour) cubicInto(i int) bool {
	return !c.at(i-1).OnCurve() && !c.at(i-2).OnCurve()
}

// cubicOutOf reports whether the segment leaving node i is a cubic.
func (c Contour) cubicOutOf(i int) bool {
	return !c.at(i+1).OnCurve() && !c.at(i+2).OnCurve()
}

// Validate checks the structural invariants Apply relies on: at least
// one on-curve node, finite coordinates, and off-curve runs of length
// exactly 2 between the on-curve nodes they belong to (quadratic
// outlines are not supported).
func (c Contour) Validate() error {
	if len(c) == 0 {
		return ErrEmptyContour
	}
	start := -1
	for i, node := range c {
		x, y := node.Pos.F()
		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
			return fmt.Errorf("%w at node %d", ErrInvalidCoordinate, i)
		}
		if start < 0 && node.OnCurve() {
			start = i
		}
	}
	if start < 0 {
		return ErrNoOnCurve
	}
	run := 0
	for k := 1; k <= len(c); k++ {
		if node := c.at(start + k); !node.OnCurve() {
			run++
			continue
		}
		if run != 0 && run != 2 {
			return fmt.Errorf("%w: %d handles before node %d", ErrUnpairedHandles, run, wrap(start+k, len(c)))
		}
		run = 0
	}
	return nil
}
