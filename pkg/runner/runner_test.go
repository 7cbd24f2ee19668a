package runner

import (
	"os"
	"testing"

	"github.com/IlikeChooros/fishing-jigsaw/pkg/mcts"
	"github.com/stretchr/testify/require"
)

type Move uint8

const (
	good Move = 0
	bad  Move = 1
)

// Single decision: 'good' is worth 1, 'bad' 0. HasFinished blocks until 'gate' is closed
type pickEnv struct {
	gate   chan struct{}
	picked bool
	last   Move
}

func newPickEnv() *pickEnv {
	gate := make(chan struct{})
	close(gate)
	return &pickEnv{gate: gate}
}

func (e *pickEnv) HasFinished() bool {
	<-e.gate
	return e.picked
}

func (e *pickEnv) LegalActions() []Move { return []Move{good, bad} }
func (e *pickEnv) PerformAction(m Move) { e.picked, e.last = true, m }

func (e *pickEnv) Eval() int32 {
	if e.picked && e.last == good {
		return 1
	}
	return 0
}

func (e *pickEnv) Clone() *pickEnv {
	c := *e
	return &c
}

func TestMain(m *testing.M) {
	mcts.SetSeedGeneratorFn(func() int64 { return 42 })
	os.Exit(m.Run())
}

func testConfig() mcts.Config {
	return *mcts.DefaultConfig().SetMaxIterations(2500).SetCallbackInterval(1000).SetMaxDepth(2)
}

func TestRunnerNoResultYet(t *testing.T) {
	r := New[Move](newPickEnv())

	_, ok := r.Latest()
	require.False(t, ok)
	_, ok = r.OptimalAction()
	require.False(t, ok)
	require.Zero(t, r.Progress())
	require.Empty(t, r.History())
	require.False(t, r.IsComputing())
}

func TestRunnerCompute(t *testing.T) {
	r := New[Move](newPickEnv())
	require.NoError(t, r.Compute(testConfig()))
	r.Wait()

	require.False(t, r.IsComputing())

	stats, ok := r.Latest()
	require.True(t, ok)
	require.Equal(t, uint32(2500), stats.Iterations)
	require.InDelta(t, 1.0, r.Progress(), 1e-12)

	best, ok := r.OptimalAction()
	require.True(t, ok)
	require.Equal(t, good, best)

	history := r.History()
	require.Len(t, history, 2)
	for action, points := range history {
		require.Len(t, points, 3, "snapshots at 1000, 2000 and 2500")
		require.Equal(t, uint32(1000), points[0].Iterations)
		require.Equal(t, uint32(2500), points[2].Iterations)
		require.Equal(t, stats.Visits(action), points[2].Visits)
		for i := 1; i < len(points); i++ {
			require.GreaterOrEqual(t, points[i].Visits, points[i-1].Visits)
		}
	}

	// History is a copy
	history[good] = nil
	require.Len(t, r.History()[good], 3)
}

func TestRunnerBusy(t *testing.T) {
	env := &pickEnv{gate: make(chan struct{})}
	r := New[Move](env)

	require.NoError(t, r.Compute(testConfig()))
	require.True(t, r.IsComputing())
	require.ErrorIs(t, r.Compute(testConfig()), ErrComputing)
	require.ErrorIs(t, r.Perform(good), ErrComputing)
	require.ErrorIs(t, r.Reset(newPickEnv()), ErrComputing)

	close(env.gate)
	r.Wait()
	require.False(t, r.IsComputing())
	require.NoError(t, r.Compute(testConfig()))
	r.Wait()
}

func TestRunnerPerform(t *testing.T) {
	r := New[Move](newPickEnv())
	require.NoError(t, r.Compute(testConfig()))
	r.Wait()

	require.ErrorIs(t, r.Perform(Move(7)), ErrIllegalAction)
	_, ok := r.Latest()
	require.True(t, ok, "a failed perform keeps the results")

	require.NoError(t, r.Perform(good))
	_, ok = r.Latest()
	require.False(t, ok, "perform clears the results")
	require.Empty(t, r.History())
	require.True(t, r.State().HasFinished())
	require.Equal(t, int32(1), r.State().Eval())

	require.ErrorIs(t, r.Perform(bad), ErrIllegalAction, "no moves in a finished position")
}

func TestRunnerReset(t *testing.T) {
	r := New[Move](newPickEnv())
	require.NoError(t, r.Perform(bad))
	require.True(t, r.State().HasFinished())

	require.NoError(t, r.Reset(newPickEnv()))
	require.False(t, r.State().HasFinished())
}

func TestRunnerStateIsCopy(t *testing.T) {
	r := New[Move](newPickEnv())
	state := r.State()
	state.PerformAction(good)

	require.False(t, r.State().HasFinished())
}
