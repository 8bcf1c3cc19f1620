package report

import (
	"fmt"
	"math"
	"sort"

	"github.com/drakos74/cyto/internal/buffer"
	"github.com/drakos74/cyto/internal/classify"
	"github.com/drakos74/cyto/internal/math/ml"
	"github.com/drakos74/cyto/internal/metrics"
	"github.com/rs/zerolog/log"
)

const stage = "evaluate"

// Config drives the evaluation stage.
type Config struct {
	Thresholds       []float64 `json:"thresholds"`
	ForestTrees      int       `json:"forest_trees"`
	Neighbours       int       `json:"knn_neighbours"`
	NetEpochs        int       `json:"net_epochs"`
	KMeansIterations int       `json:"kmeans_iterations"`
}

// ThresholdConfusion is the cross-tabulation at one decision threshold.
type ThresholdConfusion struct {
	Threshold float64
	Confusion ml.Confusion
}

// Evaluation is the held-out assessment of the selected classifier.
type Evaluation struct {
	TrainSize  int
	TestSize   int
	Confusions []ThresholdConfusion
}

// Evaluate retrains the selected classifier on the first half of the rows
// and tabulates its predictions on the second half, once per threshold.
// The split is positional, so it is reproducible for a given row count.
func Evaluate(m *classify.Model, thresholds []float64) (*Evaluation, error) {
	set, err := ml.NewDataset(m.Names, m.X, m.Y)
	if err != nil {
		return nil, fmt.Errorf("inconsistent model data: %w", err)
	}
	train, test := set.SplitHalf()
	if train.Len() == 0 || test.Len() == 0 {
		return nil, fmt.Errorf("not enough rows to split: %d", set.Len())
	}

	cls := m.New()
	if err := cls.Fit(train.X, train.Y); err != nil {
		return nil, fmt.Errorf("could not fit on train half: %w", err)
	}
	prob := cls.PredictProba(test.X)

	eval := &Evaluation{TrainSize: train.Len(), TestSize: test.Len()}
	for _, threshold := range thresholds {
		confusion := ml.NewConfusion(test.Y, ml.Threshold(prob, threshold))
		eval.Confusions = append(eval.Confusions, ThresholdConfusion{
			Threshold: threshold,
			Confusion: confusion,
		})
		log.Info().
			Float64("threshold", threshold).
			Float64("accuracy", confusion.Accuracy()).
			Float64("sensitivity", confusion.Sensitivity()).
			Int("false-negatives", confusion.FN).
			Msg("evaluated threshold")
	}

	metrics.Observer.Add(float64(test.Len()*len(thresholds)), stage, "predictions")
	return eval, nil
}

// Effect is one row of the interpretability table : the coefficient scaled
// into probability units by the feature's full-population deviation.
type Effect struct {
	Name   string
	Coef   float64
	Std    float64
	Effect float64
}

// Effects ranks the features of the fitted classifier by the magnitude of
// coefficient times standard deviation. The intercept closes the table,
// one row per feature plus one.
func Effects(m *classify.Model) []Effect {
	sc := buffer.NewStatsCollector(len(m.Names))
	for _, row := range m.X {
		sc.Push(row...)
	}

	effects := make([]Effect, 0, len(m.Names)+1)
	for j, name := range m.Names {
		coef := m.Classifier.Coef()[j]
		std := sc.Stats()[j].StDev()
		effects = append(effects, Effect{
			Name:   name,
			Coef:   coef,
			Std:    std,
			Effect: coef * std,
		})
	}
	sort.SliceStable(effects, func(i, j int) bool {
		return math.Abs(effects[i].Effect) > math.Abs(effects[j].Effect)
	})

	effects = append(effects, Effect{
		Name:   "intercept",
		Coef:   m.Classifier.Intercept(),
		Effect: m.Classifier.Intercept(),
	})
	return effects
}
