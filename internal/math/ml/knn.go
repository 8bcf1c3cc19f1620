package ml

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/evaluation"
	"github.com/sjwhitworth/golearn/knn"
)

// class labels as golearn categorical values
const (
	labelBenign    = "benign"
	labelMalignant = "malignant"
)

// KNN wraps a golearn k-nearest-neighbours classifier as a reference model.
type KNN struct {
	neighbours int
}

// NewKNN creates a classifier with the given neighbour count.
func NewKNN(k int) *KNN {
	return &KNN{neighbours: k}
}

// Evaluate fits on the train half and scores the test half.
// It returns the golearn evaluation summary together with the accuracy.
func (k *KNN) Evaluate(names []string, trainX [][]float64, trainY []float64, testX [][]float64, testY []float64) (string, float64, error) {
	trainData, err := instances(names, trainX, trainY)
	if err != nil {
		return "", 0, fmt.Errorf("could not build train instances: %w", err)
	}
	testData, err := instances(names, testX, testY)
	if err != nil {
		return "", 0, fmt.Errorf("could not build test instances: %w", err)
	}

	cls := knn.NewKnnClassifier("euclidean", "linear", k.neighbours)
	if err := cls.Fit(trainData); err != nil {
		log.Error().Err(err).Msg("could not train knn model")
		return "", 0, err
	}

	predictions, err := cls.Predict(testData)
	if err != nil {
		log.Error().Err(err).Msg("could not predict on knn model")
		return "", 0, err
	}

	confusionMat, err := evaluation.GetConfusionMatrix(testData, predictions)
	if err != nil {
		log.Error().Err(err).Msg("could not get confusion matrix")
		return "", 0, err
	}
	return evaluation.GetSummary(confusionMat), evaluation.GetAccuracy(confusionMat), nil
}

// instances builds an in-memory golearn grid from the feature matrix.
// The class values are registered up front so both halves share the same
// categorical encoding.
func instances(names []string, x [][]float64, y []float64) (*base.DenseInstances, error) {
	data := base.NewDenseInstances()
	specs := make([]base.AttributeSpec, 0, len(names)+1)
	for _, name := range names {
		specs = append(specs, data.AddAttribute(base.NewFloatAttribute(name)))
	}

	class := new(base.CategoricalAttribute)
	class.SetName("outcome")
	class.GetSysValFromString(labelBenign)
	class.GetSysValFromString(labelMalignant)
	specs = append(specs, data.AddAttribute(class))
	if err := data.AddClassAttribute(class); err != nil {
		return nil, fmt.Errorf("could not set class attribute: %w", err)
	}

	if err := data.Extend(len(x)); err != nil {
		return nil, fmt.Errorf("could not allocate %d rows: %w", len(x), err)
	}
	for i, row := range x {
		for j, v := range row {
			data.Set(specs[j], i, base.PackFloatToBytes(v))
		}
		data.Set(specs[len(names)], i, class.GetSysValFromString(classLabel(y[i])))
	}
	return data, nil
}

func classLabel(v float64) string {
	if v == 1 {
		return labelMalignant
	}
	return labelBenign
}
