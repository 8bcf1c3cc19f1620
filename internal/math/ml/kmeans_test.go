package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKMeans_Train(t *testing.T) {

	x, y := blobs(50)

	km := NewKMeans(2, 30)
	clusters, err := km.Train(x, y)
	assert.NoError(t, err)

	assert.Equal(t, 2, len(clusters))

	total := 0
	for _, c := range clusters {
		total += c.Size
		assert.True(t, c.Avg >= 0 && c.Avg <= 1)
	}
	assert.Equal(t, len(x), total)

	// prediction lands in a known cluster
	g, score, stats, err := km.Predict([]float64{0.1, 0.2})
	assert.NoError(t, err)
	_, ok := stats[g]
	assert.True(t, ok)
	assert.True(t, score >= 0 && score <= 1)
}

func TestKMeans_Errors(t *testing.T) {

	km := NewKMeans(2, 10)

	// predict before training
	_, _, _, err := km.Predict([]float64{1, 2})
	assert.Error(t, err)

	// not enough data for the cluster count
	_, err = km.Train([][]float64{{1, 2}}, []float64{0})
	assert.Error(t, err)
}
