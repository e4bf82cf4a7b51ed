// Package puzzle registers the puzzle solvers and runs them against input
// files. Each run is one sequential pass: open, scan, accumulate, report.
package puzzle

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/boshu2/aoc2021/internal/logging"
	"github.com/boshu2/aoc2021/internal/sonar"
	"github.com/boshu2/aoc2021/internal/worker"
)

// Options tunes solvers that have knobs.
type Options struct {
	// Window is the sliding-window width for day01b (0 = default).
	Window int
}

func (o Options) window() int {
	if o.Window == 0 {
		return sonar.DefaultWidth
	}
	return o.Window
}

// Solver consumes a whole puzzle input and returns the answer.
type Solver func(r io.Reader, opts Options) (int, error)

// Puzzle describes one solver.
type Puzzle struct {
	ID       string `json:"id" yaml:"id"`
	Day      int    `json:"day" yaml:"day"`
	Title    string `json:"title" yaml:"title"`
	Input    string `json:"input" yaml:"input"` // default file name under the input dir
	Template string `json:"-" yaml:"-"`
	Solve    Solver `json:"-" yaml:"-"`
}

// Sentence renders the answer as the puzzle's report line.
func (p Puzzle) Sentence(answer int) string {
	return fmt.Sprintf(p.Template, answer)
}

// Result is the outcome of one run.
type Result struct {
	Puzzle  string `json:"puzzle" yaml:"puzzle"`
	Input   string `json:"input" yaml:"input"`
	Answer  int    `json:"answer" yaml:"answer"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
	Err     error  `json:"-" yaml:"-"`
}

// OK reports whether the run succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Runner executes puzzles against files.
type Runner struct {
	// InputDir is where default inputs live.
	InputDir string
	// Options is passed to every solver.
	Options Options
	// Logger receives per-run debug logs. Nil means no logging.
	Logger *zap.Logger
}

// NewRunner creates a runner reading inputs from inputDir.
func NewRunner(inputDir string, opts Options, logger *zap.Logger) *Runner {
	return &Runner{InputDir: inputDir, Options: opts, Logger: logger}
}

// DefaultPath returns where p's input is expected.
func (r *Runner) DefaultPath(p Puzzle) string {
	return filepath.Join(r.InputDir, p.Input)
}

// Run solves p against the file at path, or the default input when path is
// empty. Any failure discards the partial answer.
func (r *Runner) Run(p Puzzle, path string) (Result, error) {
	if path == "" {
		path = r.DefaultPath(p)
	}
	res := Result{Puzzle: p.ID, Input: path}

	answer, err := r.solveFile(p, path)
	if err != nil {
		err = fmt.Errorf("%s: %w", p.ID, err)
		res.Err = err
		res.Error = err.Error()
		return res, err
	}

	res.Answer = answer
	res.Message = p.Sentence(answer)
	return res, nil
}

func (r *Runner) solveFile(p Puzzle, path string) (answer int, err error) {
	if p.Solve == nil {
		return 0, ErrNilSolver
	}
	log := r.logger().With(zap.String("puzzle", p.ID), zap.String("input", path))

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open input: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	start := time.Now()
	answer, err = p.Solve(f, r.Options)
	if err != nil {
		log.Debug("solve failed", zap.Error(err))
		return 0, err
	}
	log.Debug("solved", zap.Int("answer", answer), zap.Duration("elapsed", time.Since(start)))
	return answer, nil
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return logging.Nop()
	}
	return r.Logger
}

// RunAll solves every puzzle against its default input using a worker pool.
// Results keep the order of puzzles; failures are recorded per result.
func (r *Runner) RunAll(puzzles []Puzzle, concurrency int) []Result {
	pool := worker.NewPool[Puzzle, Result](concurrency)
	r.logger().Debug("running batch", zap.Int("puzzles", len(puzzles)), zap.Int("workers", pool.Concurrency()))

	processed := pool.Process(puzzles, func(p Puzzle) (Result, error) {
		return r.Run(p, "")
	})

	results := make([]Result, len(processed))
	for i, pr := range processed {
		results[i] = pr.Value
	}
	return results
}
