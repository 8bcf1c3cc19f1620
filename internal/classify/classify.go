package classify

import (
	"fmt"

	"github.com/drakos74/cyto/internal/data"
	cytomath "github.com/drakos74/cyto/internal/math"
	"github.com/drakos74/cyto/internal/math/ml"
	"github.com/drakos74/cyto/internal/metrics"
	"github.com/rs/zerolog/log"
)

const stage = "classify"

// Config drives the hyperparameter search for the classifier.
type Config struct {
	Penalties []string  `json:"penalties"`
	Cs        []float64 `json:"cs"`
	Folds     int       `json:"folds"`
	Balanced  bool      `json:"balanced"`
}

// Params are the selected classifier hyperparameters.
type Params struct {
	Penalty  ml.Penalty
	C        float64
	Balanced bool
}

// Model is the trained classifier together with the data it was fitted on,
// kept around so the evaluator can retrain on splits of the same matrix.
type Model struct {
	Names      []string
	X          [][]float64 // max-scaled features
	Y          []float64
	Params     Params
	Best       ml.Result
	Results    []ml.Result
	Classifier *ml.Logistic
}

// New creates a fresh classifier with the selected hyperparameters.
func (m *Model) New() *ml.Logistic {
	return ml.NewLogistic(m.Params.Penalty, m.Params.C, m.Params.Balanced)
}

// Train scales all nine measurements by their population maximum, selects
// penalty and regularization strength by cross-validated grid search and
// refits the winner on the full table.
func Train(table *data.Table, cfg Config) (*Model, error) {
	if table.Len() == 0 {
		return nil, fmt.Errorf("empty table")
	}

	cols := data.AllCols()
	x, _ := ml.MaxScale(table.Matrix(cols...))
	y := table.Labels()

	params := make(map[string]Params, len(cfg.Penalties)*len(cfg.Cs))
	candidates := make([]ml.Candidate, 0, len(cfg.Penalties)*len(cfg.Cs))
	for _, penalty := range cfg.Penalties {
		for _, c := range cfg.Cs {
			p := Params{Penalty: ml.Penalty(penalty), C: c, Balanced: cfg.Balanced}
			name := fmt.Sprintf("penalty=%s,c=%s", penalty, cytomath.Format(c))
			params[name] = p
			candidates = append(candidates, ml.Candidate{
				Name: name,
				Build: func() ml.Estimator {
					return ml.NewLogistic(p.Penalty, p.C, p.Balanced)
				},
			})
		}
	}

	grid := ml.Grid{Folds: cfg.Folds, Score: ml.Accuracy}
	best, results, err := grid.Search(x, y, candidates)
	if err != nil {
		return nil, fmt.Errorf("could not select classifier: %w", err)
	}

	model := &Model{
		Names:   data.Features,
		X:       x,
		Y:       y,
		Params:  params[best.Name],
		Best:    best,
		Results: results,
	}

	classifier := model.New()
	if err := classifier.Fit(x, y); err != nil {
		return nil, fmt.Errorf("could not fit classifier: %w", err)
	}
	model.Classifier = classifier

	metrics.Observer.Increment(stage, "models")
	log.Info().
		Str("params", best.Name).
		Float64("score", best.Score).
		Int("samples", len(x)).
		Msg("classifier trained")

	return model, nil
}
