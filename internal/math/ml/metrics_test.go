package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfusion(t *testing.T) {

	yTrue := []float64{1, 1, 1, 0, 0, 0, 0, 1}
	yPred := []float64{1, 0, 1, 0, 1, 0, 0, 1}

	c := NewConfusion(yTrue, yPred)

	assert.Equal(t, 3, c.TP)
	assert.Equal(t, 1, c.FN)
	assert.Equal(t, 1, c.FP)
	assert.Equal(t, 3, c.TN)

	// margins line up with the label counts
	assert.Equal(t, len(yTrue), c.Total())
	assert.Equal(t, 4, c.ActualPositives())
	assert.Equal(t, 4, c.ActualNegatives())

	assert.InDelta(t, 0.75, c.Accuracy(), 1e-9)
	assert.InDelta(t, 0.75, c.Sensitivity(), 1e-9)
	assert.InDelta(t, 0.75, c.Specificity(), 1e-9)
}

func TestConfusion_Empty(t *testing.T) {

	c := NewConfusion(nil, nil)

	assert.Equal(t, 0, c.Total())
	assert.Equal(t, 0.0, c.Accuracy())
	assert.Equal(t, 0.0, c.Sensitivity())
	assert.Equal(t, 0.0, c.Specificity())
}

func TestConfusion_ThresholdMonotonicity(t *testing.T) {

	yTrue := []float64{0, 0, 1, 0, 1, 1, 0, 1, 1, 1}
	prob := []float64{0.1, 0.2, 0.3, 0.4, 0.45, 0.55, 0.6, 0.7, 0.8, 0.9}

	strict := NewConfusion(yTrue, Threshold(prob, 0.5))
	loose := NewConfusion(yTrue, Threshold(prob, 0.25))

	// lowering the decision threshold must not lose true positives
	assert.GreaterOrEqual(t, loose.TP, strict.TP)
	assert.GreaterOrEqual(t, loose.Sensitivity(), strict.Sensitivity())

	// both tables still cover the full test set
	assert.Equal(t, len(yTrue), strict.Total())
	assert.Equal(t, len(yTrue), loose.Total())
	assert.Equal(t, strict.ActualPositives(), loose.ActualPositives())
}

func TestAccuracy(t *testing.T) {

	type test struct {
		yTrue []float64
		yPred []float64
		out   float64
	}

	tests := map[string]test{
		"perfect": {
			yTrue: []float64{0, 1, 1},
			yPred: []float64{0, 1, 1},
			out:   1,
		},
		"none": {
			yTrue: []float64{0, 1},
			yPred: []float64{1, 0},
			out:   0,
		},
		"half": {
			yTrue: []float64{0, 1, 1, 0},
			yPred: []float64{0, 1, 0, 1},
			out:   0.5,
		},
		"empty": {
			out: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.out, Accuracy(tt.yTrue, tt.yPred))
		})
	}
}

func TestNegMSE(t *testing.T) {

	assert.Equal(t, 0.0, NegMSE(nil, nil))
	assert.Equal(t, 0.0, NegMSE([]float64{1, 2}, []float64{1, 2}))
	assert.InDelta(t, -1, NegMSE([]float64{1, 2}, []float64{2, 3}), 1e-9)
}
