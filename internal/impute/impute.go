package impute

import (
	"fmt"

	"github.com/drakos74/cyto/internal/data"
	cytomath "github.com/drakos74/cyto/internal/math"
	"github.com/drakos74/cyto/internal/math/ml"
	"github.com/drakos74/cyto/internal/metrics"
	"github.com/rs/zerolog/log"
)

const stage = "impute"

// Config drives the imputation grid search.
type Config struct {
	Lambdas []float64 `json:"lambdas"`
	Folds   int       `json:"folds"`
}

// Result describes the imputation outcome for reporting.
type Result struct {
	Best    ml.Result
	Results []ml.Result
	Imputed int
}

// Run resolves the missing bare-nuclei measurements in place.
// A ridge regressor over the remaining eight measurements is selected by
// cross-validated grid search on the complete records and used to predict
// the missing values, truncated back to the ordinal [0,10] scale.
func Run(table *data.Table, cfg Config) (*Result, error) {
	complete, incomplete := table.Split()
	if len(complete) == 0 {
		return nil, fmt.Errorf("no complete records to train on")
	}
	if len(incomplete) == 0 {
		log.Info().Msg("no missing measurements, nothing to impute")
		return &Result{}, nil
	}

	cols := data.AllCols(data.BareNuclei)
	// population scaling over all rows, as the source analysis did
	scaled, _ := ml.MaxScale(table.Matrix(cols...))

	trainX := make([][]float64, 0, len(complete))
	trainY := make([]float64, 0, len(complete))
	predX := make([][]float64, 0, len(incomplete))
	targets := make([]*data.Record, 0, len(incomplete))
	for i, r := range table.Records {
		if r.Missing {
			predX = append(predX, scaled[i])
			targets = append(targets, r)
			continue
		}
		trainX = append(trainX, scaled[i])
		trainY = append(trainY, r.Measurements[data.BareNuclei])
	}

	builders := make(map[string]func() ml.Estimator, len(cfg.Lambdas))
	candidates := make([]ml.Candidate, 0, len(cfg.Lambdas))
	for _, lambda := range cfg.Lambdas {
		l := lambda
		name := fmt.Sprintf("lambda=%s", cytomath.Format(l))
		build := func() ml.Estimator { return ml.NewRidge(l) }
		builders[name] = build
		candidates = append(candidates, ml.Candidate{Name: name, Build: build})
	}

	grid := ml.Grid{Folds: cfg.Folds, Score: ml.NegMSE}
	best, results, err := grid.Search(trainX, trainY, candidates)
	if err != nil {
		return nil, fmt.Errorf("could not select imputation model: %w", err)
	}

	est := builders[best.Name]()
	if err := est.Fit(trainX, trainY); err != nil {
		return nil, fmt.Errorf("could not fit imputation model: %w", err)
	}

	predictions := est.Predict(predX)
	for i, r := range targets {
		v := cytomath.Truncate(predictions[i], 0, 10)
		r.Measurements[data.BareNuclei] = float64(v)
		r.Missing = false
		log.Debug().
			Int("id", r.ID).
			Float64("raw", predictions[i]).
			Int("value", v).
			Msg("imputed bare nuclei")
	}

	metrics.Observer.Add(float64(len(targets)), stage, "values")
	log.Info().
		Str("model", best.Name).
		Float64("score", best.Score).
		Int("imputed", len(targets)).
		Msg("imputation complete")

	return &Result{Best: best, Results: results, Imputed: len(targets)}, nil
}
