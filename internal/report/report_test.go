package report

import (
	"bytes"
	"testing"

	"github.com/drakos74/cyto/internal/classify"
	"github.com/drakos74/cyto/internal/data"
	"github.com/stretchr/testify/assert"
)

// model trains a classifier on a separable synthetic table,
// alternating benign and malignant rows so both halves carry both classes.
func model(t *testing.T, n int) *classify.Model {
	t.Helper()
	tab := &data.Table{}
	for i := 0; i < n; i++ {
		m := make([]float64, data.NumFeatures)
		label := 0.0
		base := 1 + i%3
		if i%2 == 1 {
			label = 1
			base = 7 + i%3
		}
		for c := 0; c < data.NumFeatures; c++ {
			m[c] = float64(base)
		}
		tab.Records = append(tab.Records, &data.Record{
			ID:           i,
			Measurements: m,
			Malignant:    label,
		})
	}

	cfg := classify.Config{
		Penalties: []string{"l2"},
		Cs:        []float64{1},
		Folds:     2,
		Balanced:  true,
	}
	m, err := classify.Train(tab, cfg)
	assert.NoError(t, err)
	return m
}

func TestEvaluate(t *testing.T) {

	m := model(t, 60)

	eval, err := Evaluate(m, []float64{0.5, 0.25})
	assert.NoError(t, err)

	assert.Equal(t, 30, eval.TrainSize)
	assert.Equal(t, 30, eval.TestSize)
	assert.Equal(t, 2, len(eval.Confusions))

	strict := eval.Confusions[0].Confusion
	loose := eval.Confusions[1].Confusion

	// margins cover the test half
	assert.Equal(t, 30, strict.Total())
	assert.Equal(t, 30, loose.Total())
	assert.Equal(t, strict.ActualPositives(), loose.ActualPositives())

	// sensitivity is monotone in the threshold
	assert.GreaterOrEqual(t, loose.TP, strict.TP)

	// the separable data is classified cleanly at the default threshold
	assert.Greater(t, strict.Accuracy(), 0.9)
}

func TestEvaluate_NotEnoughRows(t *testing.T) {

	m := model(t, 60)
	m.X = m.X[:1]
	m.Y = m.Y[:1]

	_, err := Evaluate(m, []float64{0.5})
	assert.Error(t, err)
}

func TestEffects(t *testing.T) {

	m := model(t, 60)

	effects := Effects(m)

	// one row per feature plus the intercept
	assert.Equal(t, data.NumFeatures+1, len(effects))
	assert.Equal(t, "intercept", effects[len(effects)-1].Name)

	// ranked by effect magnitude
	for i := 1; i < len(effects)-1; i++ {
		assert.GreaterOrEqual(t,
			abs(effects[i-1].Effect), abs(effects[i].Effect))
	}

	// every feature appears exactly once
	seen := make(map[string]bool)
	for _, e := range effects[:len(effects)-1] {
		assert.False(t, seen[e.Name])
		seen[e.Name] = true
	}
	assert.Equal(t, data.NumFeatures, len(seen))
}

func TestReferences(t *testing.T) {

	m := model(t, 60)

	cfg := Config{
		ForestTrees:      50,
		Neighbours:       3,
		NetEpochs:        5,
		KMeansIterations: 20,
	}

	refs, importance, err := References(m, cfg)
	assert.NoError(t, err)

	assert.Equal(t, 4, len(refs))
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		names = append(names, ref.Name)
		assert.True(t, ref.Accuracy >= 0 && ref.Accuracy <= 1)
	}
	assert.Equal(t, []string{"random-forest", "knn", "feed-forward-net", "k-means"}, names)

	// forest importance aligned to the feature names
	assert.Equal(t, data.NumFeatures, len(importance))
}

func TestReporter_Render(t *testing.T) {

	m := model(t, 60)

	eval, err := Evaluate(m, []float64{0.5, 0.25})
	assert.NoError(t, err)

	var buf bytes.Buffer
	r := NewReporter(&buf)

	r.Header(60)
	r.Grid("classifier grid", m.Best, m.Results)
	for _, tc := range eval.Confusions {
		r.Confusion(tc)
	}
	r.Effects(Effects(m), map[string]float64{"mitoses": 0.5})

	out := buf.String()
	assert.Contains(t, out, r.ID)
	assert.Contains(t, out, "classifier grid")
	assert.Contains(t, out, m.Best.Name)
	assert.Contains(t, out, "confusion matrix @ threshold 0.50")
	assert.Contains(t, out, "confusion matrix @ threshold 0.25")
	assert.Contains(t, out, "intercept")
	assert.Contains(t, out, "mitoses")
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
