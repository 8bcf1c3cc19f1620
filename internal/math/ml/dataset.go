package ml

import (
	"fmt"

	"github.com/drakos74/cyto/internal/buffer"
)

// Dataset couples a feature matrix with its label vector and column names.
type Dataset struct {
	Names []string
	X     [][]float64
	Y     []float64
}

// NewDataset creates a dataset and checks the dimensions line up.
func NewDataset(names []string, x [][]float64, y []float64) (Dataset, error) {
	if len(x) != len(y) {
		return Dataset{}, fmt.Errorf("inconsistent sample count %d vs %d", len(x), len(y))
	}
	for i, row := range x {
		if len(row) != len(names) {
			return Dataset{}, fmt.Errorf("inconsistent feature count at row %d: %d vs %d", i, len(row), len(names))
		}
	}
	return Dataset{Names: names, X: x, Y: y}, nil
}

// Len returns the number of samples.
func (d Dataset) Len() int {
	return len(d.X)
}

// SplitHalf splits the dataset by positional order into two halves.
// The first half trains, the second half tests. No shuffling, so the
// boundary is reproducible for a given row count.
func (d Dataset) SplitHalf() (train, test Dataset) {
	half := d.Len() / 2
	train = Dataset{Names: d.Names, X: d.X[:half], Y: d.Y[:half]}
	test = Dataset{Names: d.Names, X: d.X[half:], Y: d.Y[half:]}
	return train, test
}

// KFold splits n row indices into k contiguous positional folds.
// Every index lands in exactly one fold.
func KFold(n, k int) [][]int {
	folds := make([][]int, k)
	for f := 0; f < k; f++ {
		lo := f * n / k
		hi := (f + 1) * n / k
		fold := make([]int, 0, hi-lo)
		for i := lo; i < hi; i++ {
			fold = append(fold, i)
		}
		folds[f] = fold
	}
	return folds
}

// MaxScale divides each feature column by its full-population maximum and
// returns the scaled copy together with the per-column maxima.
// Columns with a non-positive maximum are left untouched.
func MaxScale(x [][]float64) ([][]float64, []float64) {
	if len(x) == 0 {
		return nil, nil
	}
	dim := len(x[0])
	sc := buffer.NewStatsCollector(dim)
	for _, row := range x {
		sc.Push(row...)
	}
	maxes := make([]float64, dim)
	for j, s := range sc.Stats() {
		maxes[j] = s.Max()
	}
	out := make([][]float64, len(x))
	for i, row := range x {
		scaled := make([]float64, dim)
		for j, v := range row {
			if maxes[j] > 0 {
				scaled[j] = v / maxes[j]
			} else {
				scaled[j] = v
			}
		}
		out[i] = scaled
	}
	return out, maxes
}

// pick selects the rows of x and y at the given indices.
func pick(x [][]float64, y []float64, idx []int) ([][]float64, []float64) {
	px := make([][]float64, len(idx))
	py := make([]float64, len(idx))
	for i, j := range idx {
		px[i] = x[j]
		py[i] = y[j]
	}
	return px, py
}
