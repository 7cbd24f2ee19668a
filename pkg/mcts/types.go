package mcts

// Other types, which didn't fit to Tree or Node files

// Action played in the environment, must be a small comparable token (usually an integer)
type ActionLike comparable

// Position of a node in the tree's arena
type Index = int

// No parent, only the root has it
const NoParent Index = -1

// Listener function callback, will receive the root statistics snapshot,
// called every 'CallbackInterval' iterations and on the final one
type ListenerFunc[A ActionLike] func(Stats[A])

type SeedGeneratorFnType func() int64
