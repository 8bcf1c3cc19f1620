package config

import (
	"os"
	"testing"

	"github.com/drakos74/cyto/internal/classify"
	"github.com/drakos74/cyto/internal/impute"
	"github.com/drakos74/cyto/internal/report"
	"github.com/stretchr/testify/assert"
)

// mirrors the run config of cmd/analysis
type analysis struct {
	Dataset  string          `json:"dataset"`
	Sentinel string          `json:"sentinel"`
	Impute   impute.Config   `json:"impute"`
	Classify classify.Config `json:"classify"`
	Report   report.Config   `json:"report"`
}

func TestMustLoad(t *testing.T) {

	// MustLoad resolves relative to the repo root, like the binary does
	wd, err := os.Getwd()
	assert.NoError(t, err)
	defer func() {
		assert.NoError(t, os.Chdir(wd))
	}()
	assert.NoError(t, os.Chdir("../.."))

	var cfg analysis
	MustLoad("analysis", &cfg)

	assert.Equal(t, "data/breast-cancer-wisconsin.data", cfg.Dataset)
	assert.Equal(t, "?", cfg.Sentinel)

	assert.Equal(t, []float64{0.1, 1, 10}, cfg.Impute.Lambdas)
	assert.Equal(t, 5, cfg.Impute.Folds)

	assert.Equal(t, []string{"l1", "l2"}, cfg.Classify.Penalties)
	assert.Equal(t, []float64{0.01, 0.1, 1, 10}, cfg.Classify.Cs)
	assert.Equal(t, 2, cfg.Classify.Folds)
	assert.True(t, cfg.Classify.Balanced)

	assert.Equal(t, []float64{0.5, 0.25}, cfg.Report.Thresholds)
	assert.Equal(t, 1000, cfg.Report.ForestTrees)
	assert.Equal(t, 10, cfg.Report.Neighbours)
	assert.Equal(t, 100, cfg.Report.NetEpochs)
	assert.Equal(t, 30, cfg.Report.KMeansIterations)
}

func TestMustLoad_MissingKey(t *testing.T) {
	assert.Panics(t, func() {
		var v map[string]interface{}
		MustLoad("unknown", &v)
	})
}
