package experiment

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"bitbucket.org/optimizer/backend/core/entities"
	"bitbucket.org/optimizer/backend/core/genetic"
	"bitbucket.org/optimizer/backend/core/logger"
	"bitbucket.org/optimizer/backend/core/metrics"
	"bitbucket.org/optimizer/backend/core/storage/results"
	"github.com/google/uuid"
)

// Problem is an objective with a name and a known optimum to report against.
// Runs evaluate it from several goroutines, so it must be safe for concurrent
// reads.
type Problem interface {
	genetic.Objective
	Name() string
	Optimum() float64
}

// Config of an experiment
type Config struct {
	// Runs is the number of independent runs per problem
	Runs int `json:"runs"`
	// Parallelism is the number of runs executing at the same time
	Parallelism int `json:"parallelism"`
	// Seed of the first run, 0 draws one from the operating system
	Seed int64          `json:"seed"`
	GA   genetic.Config `json:"ga"`
}

var (
	// ErrorInvalidRuns the number of runs is not positive
	ErrorInvalidRuns = errors.New("the number of runs must be positive")
	// ErrorInvalidParallelism the parallelism is not positive
	ErrorInvalidParallelism = errors.New("the parallelism must be positive")
)

// DefaultConfig runs every problem 30 times on every CPU
func DefaultConfig() Config {
	return Config{
		Runs:        30,
		Parallelism: runtime.NumCPU(),
		GA:          genetic.DefaultConfig(),
	}
}

// Runner executes independent genetic algorithm runs and aggregates them
type Runner struct {
	config  Config
	storage results.Storage
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// WithStorage persists every result and summary
func WithStorage(s results.Storage) func(*Runner) {
	return func(r *Runner) {
		r.storage = s
	}
}

// WithMetrics records runs and generations
func WithMetrics(m *metrics.Metrics) func(*Runner) {
	return func(r *Runner) {
		r.metrics = m
	}
}

// WithLogger sets the runner logger, runs log through it as well
func WithLogger(l *slog.Logger) func(*Runner) {
	return func(r *Runner) {
		r.logger = l
	}
}

// New validates the experiment configuration. The genetic algorithm
// parameters are validated against each problem when running.
func New(c Config, config ...func(*Runner)) (*Runner, error) {
	if c.Runs < 1 {
		return nil, &logger.Error{Level: "Error", Message: "Invalid experiment configuration.", Err: ErrorInvalidRuns, Context: c}
	}
	if c.Parallelism < 1 {
		return nil, &logger.Error{Level: "Error", Message: "Invalid experiment configuration.", Err: ErrorInvalidParallelism, Context: c}
	}

	r := &Runner{
		config: c,
		logger: logger.Discard(),
	}
	for _, fn := range config {
		fn(r)
	}

	return r, nil
}

type job struct {
	problem int
	run     int
	seed    int64
}

// Run executes Runs independent runs of every problem and returns one summary
// per problem, in the same order. Run i of problem d is seeded with
// Seed + d*Runs + i, so the outcome does not depend on scheduling. Cancelling
// ctx stops starting new runs and returns the context error.
func (r *Runner) Run(ctx context.Context, problems []Problem) ([]*entities.Summary, error) {
	for _, p := range problems {
		if err := r.config.GA.Validate(p.NumGenes()); err != nil {
			return nil, err
		}
	}

	seed := r.config.Seed
	if seed == 0 {
		var err error
		if seed, err = genetic.GenerateSeed(); err != nil {
			return nil, err
		}
	}
	r.logger.Info("experiment started",
		"problems", len(problems),
		"runs", r.config.Runs,
		"parallelism", r.config.Parallelism,
		"seed", seed,
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		jobs     = make(chan job)
		fitness  = make([][]float64, len(problems))
	)
	for d := range fitness {
		fitness[d] = make([]float64, r.config.Runs)
	}

	for w := 0; w < r.config.Parallelism; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				if ctx.Err() != nil {
					continue
				}
				res, err := r.run(problems[j.problem], j.run, j.seed)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					cancel()
					continue
				}
				fitness[j.problem][j.run] = res.Fitness
			}
		}()
	}

feed:
	for d := range problems {
		for i := 0; i < r.config.Runs; i++ {
			select {
			case jobs <- job{problem: d, run: i, seed: seed + int64(d*r.config.Runs+i)}:
			case <-ctx.Done():
				break feed
			}
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summaries := make([]*entities.Summary, len(problems))
	for d, p := range problems {
		s := Summarize(p.Name(), p.Optimum(), fitness[d])
		if r.storage != nil {
			if err := r.storage.StoreSummary(s); err != nil {
				return nil, err
			}
		}
		r.logger.Info("dataset completed",
			"dataset", s.Dataset,
			"optimum", s.Optimum,
			"mean", s.Mean,
			"best", s.Best,
			"worst", s.Worst,
			"hits", s.Hits,
		)
		summaries[d] = s
	}

	return summaries, nil
}

func (r *Runner) run(p Problem, run int, seed int64) (*entities.Result, error) {
	start := time.Now()
	config := []func(*genetic.GA){
		genetic.WithLogger(r.logger.With("dataset", p.Name(), "run", run)),
	}
	if r.metrics != nil {
		config = append(config, genetic.WithObserver(func(generation int, _ *genetic.Population) {
			if generation > 0 {
				r.metrics.ObserveGeneration(p.Name())
			}
		}))
	}

	g, err := genetic.New(p, r.config.GA, genetic.NewRandom(seed), config...)
	if err != nil {
		return nil, err
	}
	best := g.Run()

	res := &entities.Result{
		ID:      uuid.NewString(),
		Dataset: p.Name(),
		Run:     run,
		Seed:    seed,
		Fitness: best.Fitness,
		Genes:   best.Genes,
		Optimum: p.Optimum(),
	}
	if r.metrics != nil {
		r.metrics.ObserveRun(p.Name(), best.Fitness, p.Optimum(), time.Since(start))
	}
	if r.storage != nil {
		if err := r.storage.StoreResult(res); err != nil {
			return nil, &logger.Error{
				Level:   "Error",
				Message: "Unable to store run result.",
				Err:     err,
				Context: res.ID,
			}
		}
	}
	r.logger.Debug("run completed", "dataset", p.Name(), "run", run, "fitness", best.Fitness)

	return res, nil
}
