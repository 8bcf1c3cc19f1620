package ml

import (
	"fmt"

	randomforest "github.com/malaschitz/randomForest"
	"github.com/rs/zerolog/log"
)

// Forest is a random forest used as a reference classifier and as a second
// opinion on feature importance next to the logistic effect sizes.
type Forest struct {
	trees  int
	forest *randomforest.Forest
}

// NewForest creates a forest with the given number of trees.
func NewForest(n int) *Forest {
	return &Forest{
		trees: n,
	}
}

// Train fits the forest and returns the per-feature importance.
func (rf *Forest) Train(xData [][]float64, yData []int) []float64 {
	forest := &randomforest.Forest{}
	forest.Data = randomforest.ForestData{X: xData, Class: yData}
	forest.Train(rf.trees)
	rf.forest = forest
	log.Info().Int("trees", rf.trees).Int("samples", len(xData)).Msg("trained forest")
	return forest.FeatureImportance
}

// IntLabels converts 0/1 float labels to the int classes the forest expects.
func IntLabels(y []float64) []int {
	out := make([]int, len(y))
	for i, v := range y {
		out[i] = int(v)
	}
	return out
}

// Predict returns the class votes for the given row.
func (rf *Forest) Predict(xData []float64) []float64 {
	return rf.forest.Vote(xData)
}

// Accuracy classifies each test row by majority vote and scores the result.
func (rf *Forest) Accuracy(xData [][]float64, yData []int) (float64, error) {
	if rf.forest == nil {
		return 0, fmt.Errorf("no model present")
	}
	correct := 0
	for i, row := range xData {
		votes := rf.forest.Vote(row)
		label := 0
		max := -1.0
		for class, v := range votes {
			if v > max {
				max = v
				label = class
			}
		}
		if label == yData[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(xData)), nil
}
