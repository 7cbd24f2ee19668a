package runner

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/IlikeChooros/fishing-jigsaw/pkg/mcts"
	"github.com/rs/zerolog/log"
)

// Runs the search on a background goroutine and keeps the latest statistics,
// so that a render loop can poll them at any time.
// Holds the current position, which can be advanced with Perform.
type Runner[A mcts.ActionLike, E mcts.Environment[A, E]] struct {
	mu        sync.Mutex
	wg        sync.WaitGroup
	state     E
	config    mcts.Config
	computing bool
	latest    *mcts.Stats[A]
	history   History[A]
}

func New[A mcts.ActionLike, E mcts.Environment[A, E]](initial E) *Runner[A, E] {
	return &Runner[A, E]{
		state:   initial.Clone(),
		config:  *mcts.DefaultConfig(),
		history: make(History[A]),
	}
}

// Start the search on the current position with given config.
// Clears the previous results, returns ErrComputing if a search is still running.
func (r *Runner[A, E]) Compute(config mcts.Config) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.computing {
		return fmt.Errorf("failed to start the search: %w", ErrComputing)
	}

	r.computing = true
	r.config = config
	r.latest = nil
	r.history = make(History[A])
	state := r.state.Clone()

	r.wg.Add(1)
	go r.run(state, config)
	return nil
}

func (r *Runner[A, E]) run(state E, config mcts.Config) {
	defer r.wg.Done()

	start := time.Now()
	log.Info().Str("config", config.String()).Msg("computing optimal action")

	mcts.New[A](state, config).Compute(r.record)

	r.mu.Lock()
	r.computing = false
	latest := r.latest
	r.mu.Unlock()

	event := log.Info().Dur("elapsed", time.Since(start))
	if latest != nil {
		if best, ok := latest.BestAction(); ok {
			event = event.Str("best", fmt.Sprint(best)).Uint32("visits", latest.Visits(best))
		}
	}
	event.Msg("computation finished")
}

// Listener of the tree, called on the worker goroutine
func (r *Runner[A, E]) record(stats mcts.Stats[A]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.latest = &stats
	r.history.record(stats)
}

// Block until the current search (if any) finishes
func (r *Runner[A, E]) Wait() {
	r.wg.Wait()
}

func (r *Runner[A, E]) IsComputing() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.computing
}

// The latest snapshot, false if nothing was reported yet
func (r *Runner[A, E]) Latest() (mcts.Stats[A], bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.latest == nil {
		return mcts.Stats[A]{}, false
	}
	return *r.latest, true
}

// The most visited action of the latest snapshot
func (r *Runner[A, E]) OptimalAction() (A, bool) {
	stats, ok := r.Latest()
	if !ok {
		var zero A
		return zero, false
	}
	return stats.BestAction()
}

// Fraction of the current search's iterations done, in [0, 1]
func (r *Runner[A, E]) Progress() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.latest == nil {
		return 0
	}
	return r.latest.Progress(r.config.MaxIterations)
}

// Copy of the per action visit counts over the snapshots
func (r *Runner[A, E]) History() History[A] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.history.clone()
}

// Play the action in the current position and clear the results.
// Fails if the search is running or the action is illegal
func (r *Runner[A, E]) Perform(action A) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.computing {
		return fmt.Errorf("failed to perform %v: %w", action, ErrComputing)
	}
	if r.state.HasFinished() || !slices.Contains(r.state.LegalActions(), action) {
		return fmt.Errorf("failed to perform %v: %w", action, ErrIllegalAction)
	}

	r.state.PerformAction(action)
	r.clear()
	return nil
}

// Replace the current position and clear the results
func (r *Runner[A, E]) Reset(state E) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.computing {
		return fmt.Errorf("failed to reset: %w", ErrComputing)
	}

	r.state = state.Clone()
	r.clear()
	return nil
}

// Clone of the current position
func (r *Runner[A, E]) State() E {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.Clone()
}

// Config of the latest search
func (r *Runner[A, E]) Config() mcts.Config {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.config
}

func (r *Runner[A, E]) clear() {
	r.latest = nil
	r.history = make(History[A])
}
