package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IlikeChooros/fishing-jigsaw/pkg/mcts"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

/*
Arena benchmark subpackage, plays a series of headless episodes: in every
position a fresh search is run and its most visited action is played, until
the environment finishes or the move limit is hit.
*/

var ErrInvalidArena = errors.New("invalid arena setup")

type Arena[A mcts.ActionLike, E mcts.Environment[A, E]] struct {
	ArenaStats
	// Creates the starting position of every game
	Factory  func() E
	Config   mcts.Config
	NGames   int
	NWorkers int
	// Cut the game off after this many moves, 0 means no limit
	MaxMoves int
	ctx      context.Context
}

func NewArena[A mcts.ActionLike, E mcts.Environment[A, E]](factory func() E, config mcts.Config) *Arena[A, E] {
	return &Arena[A, E]{
		Factory:  factory,
		Config:   config,
		NGames:   100,
		NWorkers: 2,
		ctx:      context.Background(),
	}
}

func (a *Arena[A, E]) WithContext(ctx context.Context) *Arena[A, E] {
	a.ctx = ctx
	return a
}

func (a *Arena[A, E]) Setup(nGames, nWorkers, maxMoves int) *Arena[A, E] {
	a.NGames = nGames
	a.NWorkers = nWorkers
	a.MaxMoves = maxMoves
	return a
}

// Play all of the games, blocks until done. Games are equally distributed between
// the workers. On context cancellation the workers stop between moves,
// and the summary of the games finished so far is returned with the error.
func (a *Arena[A, E]) Run(listener ListenerLike[A]) (SummaryInfo, error) {
	if a.Factory == nil || a.NGames < 0 || a.NWorkers < 1 || a.MaxMoves < 0 {
		return SummaryInfo{}, fmt.Errorf("%w: games=%d, workers=%d, max moves=%d",
			ErrInvalidArena, a.NGames, a.NWorkers, a.MaxMoves)
	}
	if listener == nil {
		listener = DefaultListener[A]{}
	}

	start := time.Now()
	log.Info().
		Int("games", a.NGames).
		Int("workers", a.NWorkers).
		Str("config", a.Config.String()).
		Msg("arena started")

	g, ctx := errgroup.WithContext(a.ctx)
	nGames := a.NGames / a.NWorkers
	rest := a.NGames % a.NWorkers
	game := 0

	for id := range a.NWorkers {
		n := nGames
		if rest > 0 {
			n++
			rest--
		}

		first := game
		game += n
		g.Go(func() error {
			return a.worker(ctx, id, first, n, listener)
		})
	}

	err := g.Wait()
	summary := a.summary(a.NWorkers, time.Since(start))
	log.Info().Str("summary", summary.String()).Msg("arena finished")

	if err != nil {
		return summary, fmt.Errorf("arena stopped: %w", err)
	}
	return summary, nil
}

// Plays games [first, first + nGames)
func (a *Arena[A, E]) worker(ctx context.Context, id, first, nGames int, listener ListenerLike[A]) error {
	info := WorkerInfo[A]{WorkerID: id, NGames: nGames}
	defer func() {
		listener.OnFinishedWork(info)
	}()

	for i := range nGames {
		result, err := a.playGame(ctx, &info, first+i, listener)
		if err != nil {
			return err
		}

		a.add(result)
		info.FinishedGames++
		info.Result = result
		listener.OnFinishedGame(info)
	}
	return nil
}

func (a *Arena[A, E]) playGame(ctx context.Context, info *WorkerInfo[A], game int, listener ListenerLike[A]) (GameResult, error) {
	start := time.Now()
	env := a.Factory()
	info.Moves = make([]A, 0, 16)
	info.GameMoveNum = 0

	for !env.HasFinished() && (a.MaxMoves == 0 || len(info.Moves) < a.MaxMoves) {
		if err := ctx.Err(); err != nil {
			return GameResult{}, err
		}

		tree := mcts.New[A](env, a.Config)
		tree.Compute(nil)
		stats := tree.Stats(a.Config.MaxIterations)

		best, ok := stats.BestAction()
		if !ok {
			// Nothing was expanded: no iterations or no legal actions
			break
		}

		env.PerformAction(best)
		info.Moves = append(info.Moves, best)
		info.GameMoveNum = len(info.Moves)
		info.LastStats = stats
		listener.OnMoveMade(*info)
	}

	return GameResult{
		WorkerID: info.WorkerID,
		Game:     game,
		Moves:    len(info.Moves),
		Finished: env.HasFinished(),
		Reward:   env.Eval(),
		Duration: time.Since(start),
	}, nil
}
