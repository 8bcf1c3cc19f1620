package ml

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Estimator is a model that can be refitted from scratch on a fold.
type Estimator interface {
	Fit(x [][]float64, y []float64) error
	Predict(x [][]float64) []float64
}

// Scorer rates predictions against the known values. Higher is better.
type Scorer func(yTrue, yPred []float64) float64

// Candidate is a named grid point. Build returns a fresh estimator so no
// state leaks between folds.
type Candidate struct {
	Name  string
	Build func() Estimator
}

// Result is the cross-validated score of a grid candidate.
type Result struct {
	Name  string
	Score float64
}

// Grid is an exhaustive search over candidates scored by k-fold
// cross-validation.
type Grid struct {
	Folds int
	Score Scorer
}

// Search scores every candidate and returns the winner along with the
// per-candidate results in declaration order. Ties go to the earlier
// candidate, so the outcome is deterministic.
func (g Grid) Search(x [][]float64, y []float64, candidates []Candidate) (Result, []Result, error) {
	if len(candidates) == 0 {
		return Result{}, nil, fmt.Errorf("no candidates to search")
	}
	results := make([]Result, 0, len(candidates))
	best := Result{Score: -1}
	for i, c := range candidates {
		score, err := g.crossValidate(c, x, y)
		if err != nil {
			return Result{}, nil, fmt.Errorf("could not score candidate %s: %w", c.Name, err)
		}
		r := Result{Name: c.Name, Score: score}
		results = append(results, r)
		log.Debug().Str("candidate", c.Name).Float64("score", score).Msg("scored candidate")
		if i == 0 || score > best.Score {
			best = r
		}
	}
	log.Info().
		Str("candidate", best.Name).
		Float64("score", best.Score).
		Int("folds", g.Folds).
		Msg("grid search complete")
	return best, results, nil
}

// crossValidate averages the score over contiguous positional folds,
// training on the complement of each fold.
func (g Grid) crossValidate(c Candidate, x [][]float64, y []float64) (float64, error) {
	n := len(x)
	if g.Folds < 2 || g.Folds > n {
		return 0, fmt.Errorf("invalid fold count %d for %d samples", g.Folds, n)
	}
	folds := KFold(n, g.Folds)
	sum := 0.0
	for f, holdout := range folds {
		train := make([]int, 0, n-len(holdout))
		for other, idx := range folds {
			if other == f {
				continue
			}
			train = append(train, idx...)
		}
		trainX, trainY := pick(x, y, train)
		testX, testY := pick(x, y, holdout)

		est := c.Build()
		if err := est.Fit(trainX, trainY); err != nil {
			return 0, fmt.Errorf("fold %d fit failed: %w", f, err)
		}
		sum += g.Score(testY, est.Predict(testX))
	}
	return sum / float64(g.Folds), nil
}
