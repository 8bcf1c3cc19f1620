package ml

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func nineFeatureBlobs(n int) ([][]float64, []float64) {
	x := make([][]float64, 0, 2*n)
	y := make([]float64, 0, 2*n)
	for i := 0; i < n; i++ {
		shift := float64(i%5) * 0.02
		lo := make([]float64, 9)
		hi := make([]float64, 9)
		for j := range lo {
			lo[j] = 0.1 + shift
			hi[j] = 0.9 - shift
		}
		x = append(x, lo)
		y = append(y, 0)
		x = append(x, hi)
		y = append(y, 1)
	}
	return x, y
}

func TestNetwork_Train(t *testing.T) {

	x, y := nineFeatureBlobs(20)

	n := NewNetwork(10)
	loss := n.Train(x, y)

	assert.False(t, math.IsNaN(loss))
	assert.False(t, math.IsInf(loss, 0))

	acc := n.Accuracy(x, y)
	assert.True(t, acc >= 0 && acc <= 1)

	// predictions stay in label space
	for _, row := range x {
		p := n.Predict(row)
		assert.True(t, p == 0 || p == 1)
	}
}

func TestOneHot(t *testing.T) {
	assert.Equal(t, []float64{0, 1}, oneHot(1))
	assert.Equal(t, []float64{1, 0}, oneHot(0))
}
