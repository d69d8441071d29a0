package nrpa

import (
	"context"
	"math"
	"math/rand/v2"
	"runtime"
	"time"

	"k8s.io/klog/v2"

	"github.com/nrpa-go/nrpa/internal/nrpa/workerpool"
)

// childResult is one child call's return value, used to collect a batch of
// parallel sub-searches before folding them into the level's best-so-far.
type childResult struct {
	rollout Rollout
	legal   LegalMoveCodes
	score   float64
}

// selectBatchWinner returns the index of the highest-scoring result in a
// batch, ties resolving to the lowest index -- the single `j*` the batch
// folds into the level's best-so-far, per the batch runner's tie-break rule.
func selectBatchWinner(results []childResult) int {
	winner := 0
	for i := 1; i < len(results); i++ {
		if results[i].score > results[winner].score {
			winner = i
		}
	}
	return winner
}

// Driver owns every piece of scratch state a search needs -- one NrpaLevel per
// recursion level, one more set per worker slot for the levels below the
// parallel level -- so a call to Search never allocates a fresh NrpaLevel
// mid-recursion.
type Driver[M any] struct {
	newBoard NewBoard[M]
	cfg      Config
	pool     *workerpool.Pool
	stats    *StatsRecorder

	levels       []NrpaLevel[M]   // indexed by level, 0..cfg.NumLevel
	workerLevels [][]NrpaLevel[M] // [workerIdx][level], 0..cfg.ParallelLevel-1

	seed       uint64
	rng        *rand.Rand
	workerRngs []*rand.Rand
}

// NewDriver validates cfg and pre-allocates every scratch structure the
// search will need. newBoard is the factory every playout instantiates a
// fresh board from.
func NewDriver[M any](newBoard NewBoard[M], cfg Config) (*Driver[M], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	threads := cfg.NumThread
	if threads == 0 {
		threads = runtime.GOMAXPROCS(0)
	}

	d := &Driver[M]{
		newBoard: newBoard,
		cfg:      cfg,
		levels:   make([]NrpaLevel[M], cfg.NumLevel+1),
	}

	if threads != 1 {
		d.pool = workerpool.New(threads)
		d.workerLevels = make([][]NrpaLevel[M], threads)
		d.workerRngs = make([]*rand.Rand, threads)
		for w := range d.workerLevels {
			d.workerLevels[w] = make([]NrpaLevel[M], cfg.ParallelLevel+1)
		}
	}

	if cfg.Stats {
		d.stats = NewStatsRecorder()
	}

	d.SetSeed(uint64(time.Now().UnixNano()))
	return d, nil
}

// SetSeed reseeds the driver's random streams: the coordinator's own stream
// and one independent stream per worker slot, derived from seed and the
// worker's index so that, at num_thread=1, two Search calls with the same
// seed are byte-identical (property 7).
func (d *Driver[M]) SetSeed(seed uint64) {
	d.seed = seed
	d.rng = rand.New(rand.NewPCG(seed, 0))
	for w := range d.workerRngs {
		d.workerRngs[w] = rand.New(rand.NewPCG(seed, uint64(w)+1))
	}
}

// Stats returns the driver's stats recorder, or nil if the configuration
// disabled stats collection.
func (d *Driver[M]) Stats() *StatsRecorder {
	return d.stats
}

// Search runs cfg.NumRun independent top-level searches and returns the best
// rollout found across all of them, along with its legal-move-codes and
// score. A configured timeout, once reached, stops the search early and
// returns the best found so far -- this is not an error.
func (d *Driver[M]) Search(ctx context.Context) (result Rollout, legal LegalMoveCodes, score float64) {
	ctx, cancel := startTimer(ctx, d.cfg.Timeout, d.stats)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			klog.Errorf("nrpa: recovered board-contract panic, returning best result found so far: %v", r)
		}
	}()

	score = math.Inf(-1)
	for run := 0; run < d.cfg.NumRun; run++ {
		policy := NewPolicy()
		runRollout, runLegal, runScore := d.runLevel(ctx, d.levels, d.cfg.NumLevel, policy, d.rng, true)
		if runScore >= score {
			score = runScore
			result = runRollout
			legal = runLegal
		}
		if ctx.Err() != nil {
			break
		}
	}
	return result, legal, score
}

// runLevel dispatches to a playout at level 0, to the parallel batch runner
// at the configured parallel level, and otherwise to the sequential nested
// loop. levels is the scratch slice to use -- the driver's own for the
// coordinator's chain, a worker's private slice for recursion below the
// parallel level -- and rng is the random stream level-0 playouts along this
// chain draw from.
func (d *Driver[M]) runLevel(ctx context.Context, levels []NrpaLevel[M], level int, policy Policy, rng *rand.Rand, top bool) (Rollout, LegalMoveCodes, float64) {
	if level == 0 {
		rollout, legal, err := Playout(d.newBoard, policy, rng)
		if err != nil {
			klog.Errorf("nrpa: playout aborted: %v", err)
			return Rollout{}, LegalMoveCodes{}, math.Inf(-1)
		}
		return rollout, legal, rollout.Score()
	}

	nl := &levels[level]
	nl.reset(policy)

	if level == d.cfg.ParallelLevel && d.pool != nil {
		return d.runPar(ctx, nl, top)
	}
	return d.runSeq(ctx, levels, level, nl, rng, top)
}

// runSeq is the level-ℓ nested loop: N iterations, each invoking level ℓ-1,
// folding its result into the level's best-so-far, and adapting the level's
// policy toward that best -- every iteration but the last.
func (d *Driver[M]) runSeq(ctx context.Context, levels []NrpaLevel[M], level int, nl *NrpaLevel[M], rng *rand.Rand, top bool) (Rollout, LegalMoveCodes, float64) {
	for i := 0; i < d.cfg.NumIter; i++ {
		rollout, legal, score := d.runLevel(ctx, levels, level-1, nl.policy, rng, false)
		nl.considerChild(rollout, legal, score)

		if top && d.stats != nil {
			d.stats.RecordIter(i, nl.bestScore)
		}
		if ctx.Err() != nil {
			break
		}
		if i != d.cfg.NumIter-1 {
			nl.adapt(1.0)
		}
	}
	return nl.bestRollout, nl.bestLegal, nl.bestScore
}

// runPar is the parallel batch runner at the configured parallel level: each
// batch of up to NbThreads sub-searches runs concurrently against the same
// policy snapshot, then the level adapts once per batch at an amplified
// learning rate that approximates the aggregate of running that many
// sequential adaptations.
func (d *Driver[M]) runPar(ctx context.Context, nl *NrpaLevel[M], top bool) (Rollout, LegalMoveCodes, float64) {
	threads := d.pool.NbThreads()

	for batchStart := 0; batchStart < d.cfg.NumIter; batchStart += threads {
		batchSize := threads
		if remaining := d.cfg.NumIter - batchStart; remaining < batchSize {
			batchSize = remaining
		}

		snapshot := nl.policy.Clone()
		results := make([]childResult, batchSize)

		for w := 0; w < batchSize; w++ {
			w := w
			d.pool.Submit(func() error {
				rollout, legal, score := d.runLevel(ctx, d.workerLevels[w], d.cfg.ParallelLevel-1, snapshot, d.workerRngs[w], false)
				results[w] = childResult{rollout: rollout, legal: legal, score: score}
				return nil
			})
		}
		if err := d.pool.Wait(); err != nil {
			klog.Errorf("nrpa: worker batch reported an error: %v", err)
		}

		winner := selectBatchWinner(results)
		nl.considerChild(results[winner].rollout, results[winner].legal, results[winner].score)

		if top && d.stats != nil {
			d.stats.RecordIter(batchStart, nl.bestScore)
		}
		if ctx.Err() != nil {
			break
		}
		nl.adapt(float64(batchSize))
	}
	return nl.bestRollout, nl.bestLegal, nl.bestScore
}
