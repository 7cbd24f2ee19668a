package mcts

import (
	"math"
	"time"
)

// Exploration parameter used in UCB1 formula, higher values increase exploration
// while lower values increase exploitation. Theoretical perfect value is sqrt(2).
var DefaultExplorationParam = math.Sqrt2

const (
	DefaultMaxIterations    uint32 = 300_000
	DefaultMaxDepth         uint32 = 10
	DefaultCallbackInterval uint32 = 1000
)

var SeedGeneratorFn SeedGeneratorFnType = func() int64 {
	return time.Now().UnixNano()
}

// Set custom seed generator function for random number generators in MCTS,
// by default uses current time in nanoseconds
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}
