package bench

import (
	"fmt"

	"github.com/IlikeChooros/fishing-jigsaw/pkg/mcts"
	"github.com/rs/zerolog/log"
)

// Receives the arena events, methods may be called concurrently by different workers
type ListenerLike[A mcts.ActionLike] interface {
	OnMoveMade(info WorkerInfo[A])
	OnFinishedGame(info WorkerInfo[A])
	OnFinishedWork(info WorkerInfo[A])
}

// Logs finished games and workers
type DefaultListener[A mcts.ActionLike] struct{}

func (DefaultListener[A]) OnMoveMade(info WorkerInfo[A]) {
	if best, ok := info.LastStats.BestAction(); ok {
		log.Trace().
			Int("worker", info.WorkerID).
			Int("move", info.GameMoveNum).
			Str("action", fmt.Sprint(best)).
			Uint32("visits", info.LastStats.Visits(best)).
			Msg("move made")
	}
}

func (DefaultListener[A]) OnFinishedGame(info WorkerInfo[A]) {
	log.Debug().
		Int("worker", info.WorkerID).
		Int("game", info.Result.Game).
		Int("moves", info.Result.Moves).
		Bool("finished", info.Result.Finished).
		Int32("reward", info.Result.Reward).
		Dur("duration", info.Result.Duration).
		Msgf("game %d/%d done", info.FinishedGames, info.NGames)
}

func (DefaultListener[A]) OnFinishedWork(info WorkerInfo[A]) {
	log.Info().Int("worker", info.WorkerID).Int("games", info.FinishedGames).Msg("worker finished")
}
