package mcts

// Decision environment the search operates on. The tree never inspects
// the state directly, only through these methods.
type Environment[A ActionLike, E any] interface {
	// Whether the position is terminal
	HasFinished() bool
	// Legal actions in this position, the order determines the expansion order.
	// Must not be empty, when HasFinished returns false
	LegalActions() []A
	// Apply the action in place, the action must be one of LegalActions
	PerformAction(A)
	// Reward of the position, used verbatim (never negated) by the search,
	// adversarial games have to encode the perspective themselves
	Eval() int32
	// Independent copy, without any shared memory with the original,
	// safe to move to another goroutine
	Clone() E
}
