package mcts

import (
	"fmt"
	"strings"
)

// Visit count of a single root action
type ActionVisits[A ActionLike] struct {
	Action A
	Visits uint32
}

// Point-in-time summary of the root, a copy, not a live view of the tree
type Stats[A ActionLike] struct {
	// 1-indexed iteration, at which the snapshot was taken
	Iterations uint32
	// Root's expanded children, in the expansion order
	Actions []ActionVisits[A]
}

// The most visited action, ties are resolved by the expansion order (earliest wins).
// Returns false if the root has no children yet
func (s Stats[A]) BestAction() (A, bool) {
	var best A
	if len(s.Actions) == 0 {
		return best, false
	}

	bestVisits := s.Actions[0].Visits
	best = s.Actions[0].Action
	for _, av := range s.Actions[1:] {
		if av.Visits > bestVisits {
			best, bestVisits = av.Action, av.Visits
		}
	}
	return best, true
}

// Visits of given action, 0 if not expanded
func (s Stats[A]) Visits(action A) uint32 {
	for _, av := range s.Actions {
		if av.Action == action {
			return av.Visits
		}
	}
	return 0
}

// Fraction of the iteration budget done, in [0, 1]
func (s Stats[A]) Progress(maxIterations uint32) float64 {
	if maxIterations == 0 {
		return 0
	}
	return float64(s.Iterations) / float64(maxIterations)
}

func (s Stats[A]) String() string {
	builder := strings.Builder{}
	fmt.Fprintf(&builder, "iterations %d", s.Iterations)
	if best, ok := s.BestAction(); ok {
		fmt.Fprintf(&builder, " best %v", best)
	}
	for _, av := range s.Actions {
		fmt.Fprintf(&builder, " %v:%d", av.Action, av.Visits)
	}
	return builder.String()
}
