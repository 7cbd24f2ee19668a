package runner

import "github.com/IlikeChooros/fishing-jigsaw/pkg/mcts"

// Visit count of an action at given iteration
type Point struct {
	Iterations uint32 `json:"iterations"`
	Visits     uint32 `json:"visits"`
}

// Per action visit count series, in the order of the snapshots
type History[A mcts.ActionLike] map[A][]Point

func (h History[A]) record(stats mcts.Stats[A]) {
	for _, av := range stats.Actions {
		h[av.Action] = append(h[av.Action], Point{Iterations: stats.Iterations, Visits: av.Visits})
	}
}

func (h History[A]) clone() History[A] {
	c := make(History[A], len(h))
	for action, points := range h {
		c[action] = append([]Point(nil), points...)
	}
	return c
}
