package ml

import (
	"fmt"
	"math"

	"github.com/cdipaolo/goml/cluster"
	"github.com/drakos74/cyto/internal/buffer"
	"github.com/rs/zerolog/log"
)

// KMeans clusters the samples without looking at the outcome and tracks how
// cleanly the found groups line up with the labels.
type KMeans struct {
	dim        int
	iterations int
	model      *cluster.KMeans
	stats      map[int]*buffer.Stats
}

// NewKMeans creates a clusterer for the given number of groups.
func NewKMeans(dim int, iterations int) *KMeans {
	return &KMeans{
		dim:        dim,
		iterations: iterations,
		stats:      make(map[int]*buffer.Stats, dim),
	}
}

// Cluster groups the stats collected per cluster.
type Cluster struct {
	Size int
	// Avg is the mean label of the cluster members, i.e. the malignant fraction.
	Avg float64
}

func transform(stats map[int]*buffer.Stats) map[int]Cluster {
	newStats := make(map[int]Cluster)
	for g, st := range stats {
		newStats[g] = Cluster{
			Size: st.Count(),
			Avg:  st.Avg(),
		}
	}
	return newStats
}

// Train fits the clusters on the feature rows and scores each cluster by the
// labels of its members.
func (k *KMeans) Train(data [][]float64, results []float64) (map[int]Cluster, error) {
	if len(data) < k.dim {
		return nil, fmt.Errorf("not enough data for %d clusters: %d", k.dim, len(data))
	}
	k.model = cluster.NewKMeans(k.dim, k.iterations, data)
	if err := k.model.Learn(); err != nil {
		log.Error().Err(err).Msg("error during training on k-means")
		return nil, fmt.Errorf("could not train: %w", err)
	}
	guesses := k.model.Guesses()
	if len(guesses) != len(results) {
		return nil, fmt.Errorf("could not align results with data [ %d | %d | %d ]", len(results), len(guesses), len(data))
	}
	k.stats = make(map[int]*buffer.Stats, k.dim)
	for i := 0; i < len(guesses); i++ {
		g := guesses[i]
		if _, ok := k.stats[g]; !ok {
			k.stats[g] = buffer.NewStats()
		}
		k.stats[g].Push(results[i])
	}
	return transform(k.stats), nil
}

// Predict assigns the row to a cluster and returns the cluster stats.
func (k *KMeans) Predict(x []float64) (int, float64, map[int]Cluster, error) {
	if k.model == nil {
		return 0, 0, map[int]Cluster{}, fmt.Errorf("no model present")
	}
	guess, err := k.model.Predict(x)
	if err != nil {
		log.Error().Err(err).Msg("could not predict for k-means")
		return 0, 0, map[int]Cluster{}, fmt.Errorf("could not predict: %w", err)
	}

	f := int(math.Round(guess[0]))
	score := k.stats[f].Avg()

	return f, score, transform(k.stats), nil
}
