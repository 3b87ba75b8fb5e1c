package montecarlo

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/ducminhle1904/strategy-sim/internal/simulator"
)

// Pool manages parallel execution of independent simulation trials. Each
// trial is a full single-threaded engine run with its own seeded randomness.
type Pool struct {
	workerCount int
	jobQueue    chan Job
	resultQueue chan Result
	wg          sync.WaitGroup
	ctx         context.Context
	cancel      context.CancelFunc
}

// Job represents a single simulation trial.
type Job struct {
	ID     int
	Params simulator.SimulationParams
	Seed   int64
}

// Result represents the outcome of one trial.
type Result struct {
	ID       int
	Summary  *simulator.SimulationSummary
	Duration time.Duration
}

// NewPool creates a worker pool for parallel trials. A non-positive worker
// count defaults to the number of CPUs.
func NewPool(workerCount, jobBufferSize int) *Pool {
	if workerCount <= 0 {
		workerCount = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Pool{
		workerCount: workerCount,
		jobQueue:    make(chan Job, jobBufferSize),
		resultQueue: make(chan Result, jobBufferSize),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Start starts the workers.
func (p *Pool) Start() {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// Stop drains the pool gracefully: no new jobs, workers finish what they have.
func (p *Pool) Stop() {
	close(p.jobQueue)
	p.wg.Wait()
	close(p.resultQueue)
	p.cancel()
}

// Submit queues a trial for execution.
func (p *Pool) Submit(job Job) error {
	select {
	case p.jobQueue <- job:
		return nil
	case <-p.ctx.Done():
		return p.ctx.Err()
	}
}

// Results returns the channel of completed trials.
func (p *Pool) Results() <-chan Result {
	return p.resultQueue
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for job := range p.jobQueue {
		select {
		case <-p.ctx.Done():
			return
		default:
		}

		start := time.Now()
		summary := simulator.New(job.Params, simulator.SeededRand(job.Seed)).Run()

		p.resultQueue <- Result{
			ID:       job.ID,
			Summary:  summary,
			Duration: time.Since(start),
		}
	}
}

// RunBatch executes trials independent simulations and aggregates them into
// distribution statistics. Trial seeds derive from baseSeed, so a batch is
// reproducible end to end.
func RunBatch(params simulator.SimulationParams, trials int, baseSeed int64) *BatchStats {
	if trials <= 0 {
		return &BatchStats{}
	}

	pool := NewPool(0, trials)
	pool.Start()

	go func() {
		for i := 0; i < trials; i++ {
			// Submit only fails after cancellation, which RunBatch never triggers.
			_ = pool.Submit(Job{ID: i, Params: params, Seed: baseSeed + int64(i)})
		}
		pool.Stop()
	}()

	summaries := make([]*simulator.SimulationSummary, 0, trials)
	for res := range pool.Results() {
		summaries = append(summaries, res.Summary)
	}

	return Aggregate(summaries)
}
