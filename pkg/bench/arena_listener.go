package bench

import (
	"sync"

	"github.com/IlikeChooros/fishing-jigsaw/pkg/mcts"
)

// Distributes the arena events to multiple listeners, serialized with a mutex,
// so the wrapped listeners don't need to be thread-safe
type ArenaListener[A mcts.ActionLike] struct {
	mu        sync.Mutex
	listeners []ListenerLike[A]
}

func NewArenaListener[A mcts.ActionLike](listeners ...ListenerLike[A]) *ArenaListener[A] {
	al := &ArenaListener[A]{
		listeners: make([]ListenerLike[A], 0, len(listeners)),
	}
	for _, l := range listeners {
		if l != nil {
			al.listeners = append(al.listeners, l)
		}
	}
	return al
}

func (al *ArenaListener[A]) OnMoveMade(info WorkerInfo[A]) {
	al.mu.Lock()
	defer al.mu.Unlock()
	for _, l := range al.listeners {
		l.OnMoveMade(info)
	}
}

func (al *ArenaListener[A]) OnFinishedGame(info WorkerInfo[A]) {
	al.mu.Lock()
	defer al.mu.Unlock()
	for _, l := range al.listeners {
		l.OnFinishedGame(info)
	}
}

func (al *ArenaListener[A]) OnFinishedWork(info WorkerInfo[A]) {
	al.mu.Lock()
	defer al.mu.Unlock()
	for _, l := range al.listeners {
		l.OnFinishedWork(info)
	}
}

// Collects every game result, e.g. for the CSV writer
type RecordListener[A mcts.ActionLike] struct {
	mu      sync.Mutex
	results []GameResult
}

func (rl *RecordListener[A]) OnMoveMade(WorkerInfo[A])     {}
func (rl *RecordListener[A]) OnFinishedWork(WorkerInfo[A]) {}

func (rl *RecordListener[A]) OnFinishedGame(info WorkerInfo[A]) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.results = append(rl.results, info.Result)
}

// Copy of the collected results, in the order they finished
func (rl *RecordListener[A]) Results() []GameResult {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return append([]GameResult(nil), rl.results...)
}
