package mcts

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Monte Carlo search tree, built once per search and discarded afterwards.
// Owns the node arena and a private copy of the root position.
type Tree[A ActionLike, E Environment[A, E]] struct {
	nodes     []Node[A]
	rootState E
	rootIndex Index
	config    Config
	rand      *rand.Rand
}

// Create new tree with a single root node, holding a clone of the given state
func New[A ActionLike, E Environment[A, E]](state E, config Config) *Tree[A, E] {
	tree := &Tree[A, E]{
		// Arena never outgrows 'MaxIterations + 1', but don't trust huge configs
		nodes:     make([]Node[A], 0, min(uint64(config.MaxIterations)+1, 1<<16)),
		rootState: state.Clone(),
		config:    config,
		rand:      rand.New(rand.NewSource(uint64(SeedGeneratorFn()))),
	}

	tree.rootIndex = tree.createNode(NoParent)
	return tree
}

// Run the whole iteration budget synchronously, calling 'listener' with the root
// statistics every 'CallbackInterval' iterations and on the final one.
// 'listener' may be nil.
func (tree *Tree[A, E]) Compute(listener ListenerFunc[A]) {
	start := time.Now()
	log.Debug().
		Uint32("iterations", tree.config.MaxIterations).
		Uint32("depth", tree.config.MaxDepth).
		Float64("c", tree.config.ExplorationParam).
		Msg("search started")

	for iter := uint32(1); iter <= tree.config.MaxIterations; iter++ {
		tree.tryNotify(iter, listener)
		tree.iterate()
	}

	log.Debug().
		Int("size", tree.Size()).
		Uint32("root_visits", tree.Root().Visits).
		Dur("elapsed", time.Since(start)).
		Msg("search finished")
}

func (tree *Tree[A, E]) createNode(parent Index) Index {
	index := len(tree.nodes)
	tree.nodes = append(tree.nodes, newNode[A](parent))
	return index
}

// Number of nodes in the arena
func (tree *Tree[A, E]) Size() int {
	return len(tree.nodes)
}

func (tree *Tree[A, E]) Root() *Node[A] {
	return &tree.nodes[tree.rootIndex]
}

// Node at given arena index, the pointer is valid until the next iteration
func (tree *Tree[A, E]) Node(index Index) *Node[A] {
	return &tree.nodes[index]
}

func (tree *Tree[A, E]) Config() Config {
	return tree.config
}

// Snapshot of the root's children visit counts
func (tree *Tree[A, E]) Stats(iterations uint32) Stats[A] {
	return tree.snapshot(iterations)
}

func (tree *Tree[A, E]) String() string {
	return fmt.Sprintf("Tree={Size=%d, Config=%v, Root=%v}", tree.Size(), tree.Config(), tree.Root())
}
