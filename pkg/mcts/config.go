package mcts

import (
	"encoding/json"
	"strings"
)

// Search parameters, supplied by the caller and not validated by the tree
type Config struct {
	MaxIterations    uint32  `json:"max_iterations" yaml:"max_iterations"`
	MaxDepth         uint32  `json:"max_depth" yaml:"max_depth"`
	ExplorationParam float64 `json:"c" yaml:"c"`
	CallbackInterval uint32  `json:"callback_interval" yaml:"callback_interval"`
}

func (c Config) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(c)
	return strings.TrimSpace(builder.String())
}

func DefaultConfig() *Config {
	return &Config{
		MaxIterations:    DefaultMaxIterations,
		MaxDepth:         DefaultMaxDepth,
		ExplorationParam: DefaultExplorationParam,
		CallbackInterval: DefaultCallbackInterval,
	}
}

// Set the number of select-expand-simulate-backpropagate cycles
func (c *Config) SetMaxIterations(iterations uint32) *Config {
	c.MaxIterations = iterations
	return c
}

// Set the maximum depth of the search, selection stops expanding below it,
// and the rollouts are cut off at it
func (c *Config) SetMaxDepth(depth uint32) *Config {
	c.MaxDepth = depth
	return c
}

// Set the exploration parameter 'c' of the UCB1 formula
func (c *Config) SetExplorationParam(param float64) *Config {
	c.ExplorationParam = param
	return c
}

// Call the listener every n iterations, 0 means only on the final iteration
func (c *Config) SetCallbackInterval(n uint32) *Config {
	c.CallbackInterval = n
	return c
}
