package mcts

import "fmt"

// Link between a node and one of its children
type Edge[A ActionLike] struct {
	Action A
	Child  Index
}

// Single vertex of the tree, stored in the arena and addressed by its index.
// Parent is a lookup-only back reference, NoParent for the root
type Node[A ActionLike] struct {
	Visits uint32
	Reward int64
	Parent Index

	// action -> index, for the lookup
	children map[A]Index
	// children in the expansion order, for deterministic iteration
	edges []Edge[A]
}

func newNode[A ActionLike](parent Index) Node[A] {
	return Node[A]{
		Parent:   parent,
		children: make(map[A]Index),
	}
}

// Accumulate reward and visit count, used only by the backpropagation
func (node *Node[A]) update(reward int32, visits uint32) {
	node.Reward += int64(reward)
	node.Visits += visits
}

func (node *Node[A]) setChild(action A, child Index) {
	if _, ok := node.children[action]; ok {
		panic(fmt.Sprintf("[MCTS] setChild: action %v already has a child", action))
	}
	node.children[action] = child
	node.edges = append(node.edges, Edge[A]{Action: action, Child: child})
}

// Index of the child reached with given action
func (node *Node[A]) Child(action A) (Index, bool) {
	idx, ok := node.children[action]
	return idx, ok
}

// Children in the expansion order, the slice must not be modified
func (node *Node[A]) Edges() []Edge[A] {
	return node.edges
}

func (node *Node[A]) NumChildren() int {
	return len(node.edges)
}

// Whether every given legal action already has a child
func (node *Node[A]) fullyExpanded(legal []A) bool {
	if len(node.edges) < len(legal) {
		return false
	}
	for _, action := range legal {
		if _, ok := node.children[action]; !ok {
			return false
		}
	}
	return true
}

// Average reward, valid only when the node was visited at least once
// Mean reward per visit, 0 for an unvisited node
func (node *Node[A]) AvgReward() float64 {
	if node.Visits == 0 {
		return 0
	}
	return float64(node.Reward) / float64(node.Visits)
}

func (node *Node[A]) String() string {
	return fmt.Sprintf("Node{visits=%d, reward=%d, avg=%.3f, parent=%d, children=%d}",
		node.Visits, node.Reward, node.AvgReward(), node.Parent, len(node.edges))
}
