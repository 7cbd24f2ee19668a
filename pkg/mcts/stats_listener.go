package mcts

// Whether the listener should be called before iteration 'iter' (1-indexed)
func shouldNotify(iter, interval, maxIterations uint32) bool {
	if iter == maxIterations {
		return true
	}
	return interval != 0 && iter%interval == 0
}

func (tree *Tree[A, E]) tryNotify(iter uint32, listener ListenerFunc[A]) {
	if listener == nil || !shouldNotify(iter, tree.config.CallbackInterval, tree.config.MaxIterations) {
		return
	}
	listener(tree.snapshot(iter))
}

// Copy the root's currently expanded children stats
func (tree *Tree[A, E]) snapshot(iter uint32) Stats[A] {
	root := tree.Root()
	actions := make([]ActionVisits[A], len(root.edges))
	for i, edge := range root.edges {
		actions[i] = ActionVisits[A]{Action: edge.Action, Visits: tree.nodes[edge.Child].Visits}
	}

	return Stats[A]{
		Iterations: iter,
		Actions:    actions,
	}
}
