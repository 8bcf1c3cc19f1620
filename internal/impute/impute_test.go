package impute

import (
	"testing"

	"github.com/drakos74/cyto/internal/data"
	"github.com/stretchr/testify/assert"
)

// table builds records where bare nuclei tracks clump thickness,
// so the imputation target is learnable.
func table(n int, missing ...int) *data.Table {
	skip := make(map[int]struct{})
	for _, m := range missing {
		skip[m] = struct{}{}
	}
	t := &data.Table{}
	for i := 0; i < n; i++ {
		m := make([]float64, data.NumFeatures)
		v := float64(i%10 + 1)
		for c := 0; c < data.NumFeatures; c++ {
			m[c] = v
		}
		r := &data.Record{ID: i, Measurements: m}
		if _, ok := skip[i]; ok {
			r.Missing = true
			r.Measurements[data.BareNuclei] = 0
		}
		t.Records = append(t.Records, r)
	}
	return t
}

func TestRun(t *testing.T) {

	tab := table(50, 7, 23, 41)

	cfg := Config{Lambdas: []float64{0.1, 1, 10}, Folds: 5}
	res, err := Run(tab, cfg)
	assert.NoError(t, err)

	assert.Equal(t, 3, res.Imputed)
	assert.Equal(t, 3, len(res.Results))
	assert.NotEmpty(t, res.Best.Name)

	// invariant : every record now carries an integer bare nuclei in [0,10]
	for _, r := range tab.Records {
		assert.False(t, r.Missing)
		v := r.Measurements[data.BareNuclei]
		assert.Equal(t, float64(int(v)), v)
		assert.True(t, v >= 0 && v <= 10)
	}

	// the complete rows keep their original measurement
	assert.Equal(t, 1.0, tab.Records[0].Measurements[data.BareNuclei])

	// the learnable pattern is recovered closely for the imputed rows
	imputed := tab.Records[7].Measurements[data.BareNuclei]
	assert.InDelta(t, 8, imputed, 2)
}

func TestRun_NoMissing(t *testing.T) {

	tab := table(10)

	res, err := Run(tab, Config{Lambdas: []float64{1}, Folds: 5})
	assert.NoError(t, err)
	assert.Equal(t, 0, res.Imputed)
}

func TestRun_NoCompleteRecords(t *testing.T) {

	tab := table(3, 0, 1, 2)

	_, err := Run(tab, Config{Lambdas: []float64{1}, Folds: 5})
	assert.Error(t, err)
}
