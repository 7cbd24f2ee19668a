package mcts

import "fmt"

// Single select -> expand -> simulate -> backpropagate cycle
func (tree *Tree[A, E]) iterate() {
	state := tree.rootState.Clone()
	depth := uint32(0)

	index := tree.selection(tree.rootIndex, state, &depth)

	if state.HasFinished() || depth > tree.config.MaxDepth {
		tree.backpropagate(state.Eval(), 1, index)
		return
	}

	index = tree.expansion(index, state)
	reward := tree.simulation(state, tree.config.MaxDepth-depth)
	tree.backpropagate(reward, 1, index)
}

// Descend from 'index' by the best UCB1 child, until the state is terminal,
// or the current node has an untried legal action. Applies the chosen actions to 'state'.
func (tree *Tree[A, E]) selection(index Index, state E, depth *uint32) Index {
	c := tree.config.ExplorationParam

	for !state.HasFinished() {
		legal := state.LegalActions()
		node := &tree.nodes[index]

		if !node.fullyExpanded(legal) {
			break
		}

		// Argmax in the enumeration order, first one wins the tie
		bestAction := legal[0]
		bestChild := node.children[bestAction]
		bestScore := tree.nodes[bestChild].ucb(c, node.Visits)

		for _, action := range legal[1:] {
			child := node.children[action]
			if score := tree.nodes[child].ucb(c, node.Visits); totalCmp(score, bestScore) > 0 {
				bestAction, bestChild, bestScore = action, child, score
			}
		}

		state.PerformAction(bestAction)
		*depth++
		index = bestChild
	}

	return index
}

// Create a child for the first untried legal action, and apply it to 'state'
func (tree *Tree[A, E]) expansion(index Index, state E) Index {
	for _, action := range state.LegalActions() {
		if _, ok := tree.nodes[index].children[action]; ok {
			continue
		}

		child := tree.createNode(index)
		tree.nodes[index].setChild(action, child)
		state.PerformAction(action)
		return child
	}

	panic(fmt.Sprintf("[MCTS] expansion: node %d has no untried action", index))
}

// Random playout of at most 'maxSteps' actions, returns the final evaluation
func (tree *Tree[A, E]) simulation(state E, maxSteps uint32) int32 {
	for step := uint32(0); step < maxSteps && !state.HasFinished(); step++ {
		legal := state.LegalActions()
		state.PerformAction(legal[tree.rand.Intn(len(legal))])
	}
	return state.Eval()
}

// Add the reward and visits to every node from 'index' up to the root
func (tree *Tree[A, E]) backpropagate(reward int32, visits uint32, index Index) {
	for index != NoParent {
		node := &tree.nodes[index]
		node.update(reward, visits)
		index = node.Parent
	}
}
