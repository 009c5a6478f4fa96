// Package saturate drives an e-graph to (bounded) equality saturation:
// repeatedly applying a ruleset and rebuilding until a fixpoint or a
// budget is hit.
package saturate

import (
	"time"

	"github.com/rogpeppe/eqsat/egraph"
	"github.com/rogpeppe/eqsat/pattern"
)

// Budget bounds a saturation run. A zero field means "unbounded" along
// that dimension.
type Budget struct {
	MaxIterations int
	MaxSize       int
	MaxDuration   time.Duration
}

// StopReason records why a Run loop stopped.
type StopReason int

const (
	Saturated StopReason = iota
	IterationLimit
	SizeLimit
	TimeLimit
)

func (r StopReason) String() string {
	switch r {
	case Saturated:
		return "saturated"
	case IterationLimit:
		return "iteration limit"
	case SizeLimit:
		return "size limit"
	case TimeLimit:
		return "time limit"
	default:
		return "unknown"
	}
}

// Report summarizes a completed Run.
type Report struct {
	Iterations int
	Unions     int
	Elapsed    time.Duration
	Reason     StopReason
}

// Run applies rules to g, rebuilding after each pass, until no pass
// produces a union or a budget dimension is exceeded.
func Run(g *egraph.EGraph, rules []pattern.Rule, budget Budget) Report {
	start := time.Now()
	var report Report

	for {
		if budget.MaxIterations > 0 && report.Iterations >= budget.MaxIterations {
			report.Reason = IterationLimit
			break
		}
		if budget.MaxSize > 0 && g.NumNodes() >= budget.MaxSize {
			report.Reason = SizeLimit
			break
		}
		if budget.MaxDuration > 0 && time.Since(start) >= budget.MaxDuration {
			report.Reason = TimeLimit
			break
		}

		edits := g.ApplyRuleset(rules)
		g.Rebuild()
		report.Iterations++
		report.Unions += edits

		if edits == 0 {
			report.Reason = Saturated
			break
		}
	}

	report.Elapsed = time.Since(start)
	return report
}
