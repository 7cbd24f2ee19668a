package bench

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/IlikeChooros/fishing-jigsaw/pkg/mcts"
)

// Aggregated counters, shared between the workers
type ArenaStats struct {
	games    uint32
	finished uint32
	moves    uint64
	reward   int64
}

func (as *ArenaStats) add(result GameResult) {
	atomic.AddUint32(&as.games, 1)
	if result.Finished {
		atomic.AddUint32(&as.finished, 1)
	}
	atomic.AddUint64(&as.moves, uint64(result.Moves))
	atomic.AddInt64(&as.reward, int64(result.Reward))
}

func (as *ArenaStats) Games() int {
	return int(atomic.LoadUint32(&as.games))
}

// Games that ended in a terminal position (not cut off by MaxMoves)
func (as *ArenaStats) Finished() int {
	return int(atomic.LoadUint32(&as.finished))
}

func (as *ArenaStats) TotalMoves() int {
	return int(atomic.LoadUint64(&as.moves))
}

func (as *ArenaStats) TotalReward() int64 {
	return atomic.LoadInt64(&as.reward)
}

// Outcome of a single episode
type GameResult struct {
	WorkerID int           `json:"worker_id"`
	Game     int           `json:"game"`
	Moves    int           `json:"moves"`
	Finished bool          `json:"finished"`
	Reward   int32         `json:"reward"`
	Duration time.Duration `json:"duration"`
}

// Progress of a single worker, passed to the listeners
type WorkerInfo[A mcts.ActionLike] struct {
	WorkerID      int
	NGames        int
	FinishedGames int
	GameMoveNum   int
	Moves         []A
	LastStats     mcts.Stats[A]
	Result        GameResult
}

type SummaryInfo struct {
	TotalGames    int     `json:"total_games"`
	FinishedGames int     `json:"finished_games"`
	MeanMoves     float64 `json:"mean_moves"`
	MeanReward    float64 `json:"mean_reward"`
	Workers       int     `json:"workers"`
	Elapsed       string  `json:"elapsed"`
}

func (si SummaryInfo) String() string {
	b, _ := json.Marshal(si)
	return string(b)
}

func (as *ArenaStats) summary(workers int, elapsed time.Duration) SummaryInfo {
	info := SummaryInfo{
		TotalGames:    as.Games(),
		FinishedGames: as.Finished(),
		Workers:       workers,
		Elapsed:       elapsed.Round(time.Millisecond).String(),
	}
	if info.TotalGames > 0 {
		info.MeanMoves = float64(as.TotalMoves()) / float64(info.TotalGames)
		info.MeanReward = float64(as.TotalReward()) / float64(info.TotalGames)
	}
	return info
}
