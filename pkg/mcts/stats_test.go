package mcts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatsBestAction(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, ok := Stats[Move]{Iterations: 1}.BestAction()
		require.False(t, ok)
	})

	t.Run("max visits", func(t *testing.T) {
		s := Stats[Move]{Actions: []ActionVisits[Move]{{3, 10}, {1, 42}, {2, 7}}}
		best, ok := s.BestAction()
		require.True(t, ok)
		require.Equal(t, Move(1), best)
	})

	t.Run("tie goes to the earliest expanded", func(t *testing.T) {
		s := Stats[Move]{Actions: []ActionVisits[Move]{{5, 3}, {2, 9}, {0, 9}}}
		best, ok := s.BestAction()
		require.True(t, ok)
		require.Equal(t, Move(2), best)
	})
}

func TestStatsVisitsAndProgress(t *testing.T) {
	s := Stats[Move]{Iterations: 250, Actions: []ActionVisits[Move]{{4, 100}, {7, 149}}}

	require.Equal(t, uint32(149), s.Visits(7))
	require.Zero(t, s.Visits(1))
	require.InDelta(t, 0.25, s.Progress(1000), 1e-12)
	require.Zero(t, s.Progress(0))
	require.Equal(t, "iterations 250 best 7 4:100 7:149", s.String())
}

func TestShouldNotify(t *testing.T) {
	require.True(t, shouldNotify(1000, 1000, 2500))
	require.False(t, shouldNotify(1001, 1000, 2500))
	require.True(t, shouldNotify(2500, 1000, 2500))
	require.False(t, shouldNotify(10, 0, 20))
	require.True(t, shouldNotify(20, 0, 20))
}

func TestConfigSetters(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, DefaultMaxIterations, cfg.MaxIterations)
	require.Equal(t, DefaultMaxDepth, cfg.MaxDepth)
	require.Equal(t, DefaultCallbackInterval, cfg.CallbackInterval)
	require.InDelta(t, DefaultExplorationParam, cfg.ExplorationParam, 0)

	cfg.SetMaxIterations(10).SetMaxDepth(2).SetExplorationParam(0.5).SetCallbackInterval(5)
	require.Equal(t, `{"max_iterations":10,"max_depth":2,"c":0.5,"callback_interval":5}`, cfg.String())
}

func TestNodeSetChildTwicePanics(t *testing.T) {
	node := newNode[Move](NoParent)
	node.setChild(1, 1)
	require.Panics(t, func() { node.setChild(1, 2) })

	idx, ok := node.Child(1)
	require.True(t, ok)
	require.Equal(t, 1, idx)
	require.True(t, node.fullyExpanded([]Move{1}))
	require.False(t, node.fullyExpanded([]Move{1, 2}))
	// Stochastic environments: a stale child doesn't count for another legal action
	require.False(t, node.fullyExpanded([]Move{2}))
}
