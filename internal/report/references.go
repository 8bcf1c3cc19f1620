package report

import (
	"fmt"
	"math"

	"github.com/drakos74/cyto/internal/classify"
	cytomath "github.com/drakos74/cyto/internal/math"
	"github.com/drakos74/cyto/internal/math/ml"
	"github.com/rs/zerolog/log"
)

// Reference is a companion model scored on the same positional split,
// kept as a sanity check next to the logistic classifier.
type Reference struct {
	Name     string
	Accuracy float64
	Detail   string
}

// References trains the companion models. It returns their scores and the
// forest's per-feature importance for the interpretability table.
func References(m *classify.Model, cfg Config) ([]Reference, map[string]float64, error) {
	set, err := ml.NewDataset(m.Names, m.X, m.Y)
	if err != nil {
		return nil, nil, fmt.Errorf("inconsistent model data: %w", err)
	}
	train, test := set.SplitHalf()

	refs := make([]Reference, 0, 4)

	rf := ml.NewForest(cfg.ForestTrees)
	rawImportance := rf.Train(train.X, ml.IntLabels(train.Y))
	acc, err := rf.Accuracy(test.X, ml.IntLabels(test.Y))
	if err != nil {
		return nil, nil, fmt.Errorf("could not score forest: %w", err)
	}
	refs = append(refs, Reference{Name: "random-forest", Accuracy: acc})

	importance := make(map[string]float64, len(m.Names))
	for j, name := range m.Names {
		if j < len(rawImportance) {
			importance[name] = rawImportance[j]
		}
	}

	knn := ml.NewKNN(cfg.Neighbours)
	summary, acc, err := knn.Evaluate(m.Names, train.X, train.Y, test.X, test.Y)
	if err != nil {
		return nil, nil, fmt.Errorf("could not score knn: %w", err)
	}
	refs = append(refs, Reference{Name: "knn", Accuracy: acc, Detail: summary})

	net := ml.NewNetwork(cfg.NetEpochs)
	loss := net.Train(train.X, train.Y)
	refs = append(refs, Reference{
		Name:     "feed-forward-net",
		Accuracy: net.Accuracy(test.X, test.Y),
		Detail:   fmt.Sprintf("final loss %s", cytomath.Format(loss)),
	})

	km := ml.NewKMeans(2, cfg.KMeansIterations)
	clusters, err := km.Train(m.X, m.Y)
	if err != nil {
		return nil, nil, fmt.Errorf("could not cluster samples: %w", err)
	}
	purity := 0.0
	detail := ""
	for g, c := range clusters {
		purity += float64(c.Size) * math.Max(c.Avg, 1-c.Avg)
		detail += fmt.Sprintf("cluster %d : size=%d malignant=%s ", g, c.Size, cytomath.Format(c.Avg))
	}
	purity /= float64(set.Len())
	refs = append(refs, Reference{Name: "k-means", Accuracy: purity, Detail: detail})

	for _, ref := range refs {
		log.Info().Str("model", ref.Name).Float64("accuracy", ref.Accuracy).Msg("reference model")
	}
	return refs, importance, nil
}
