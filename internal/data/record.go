package data

import (
	"github.com/drakos74/cyto/internal/buffer"
)

// Feature indices into the measurement vector of a Record.
const (
	ClumpThickness = iota
	CellSizeUniformity
	CellShapeUniformity
	MarginalAdhesion
	EpithelialCellSize
	BareNuclei
	BlandChromatin
	NormalNucleoli
	Mitoses

	NumFeatures
)

// Features are the cytological measurement names, in column order.
var Features = []string{
	"clump_thickness",
	"cell_size_uniformity",
	"cell_shape_uniformity",
	"marginal_adhesion",
	"epithelial_cell_size",
	"bare_nuclei",
	"bland_chromatin",
	"normal_nucleoli",
	"mitoses",
}

// outcome codes as they appear in the raw file.
const (
	rawBenign    = 2
	rawMalignant = 4
)

// Record is a single tissue sample.
type Record struct {
	// ID is the sample code number from the source file.
	ID int
	// Measurements are the nine ordinal cytological measurements, each in [0,10].
	Measurements []float64
	// Missing marks a record whose bare-nuclei measurement was a sentinel
	// in the raw file. The value stays at 0 until imputation resolves it.
	Missing bool
	// Malignant is the recoded outcome: 1 for malignant, 0 for benign.
	Malignant float64
}

// Table is the in-memory dataset. It is loaded once and mutated in place
// by the imputation stage, then consumed read-only by training and evaluation.
type Table struct {
	Records []*Record
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.Records)
}

// Split partitions the table into the records with a complete bare-nuclei
// measurement and the ones still flagged as missing.
func (t *Table) Split() (complete, incomplete []*Record) {
	for _, r := range t.Records {
		if r.Missing {
			incomplete = append(incomplete, r)
		} else {
			complete = append(complete, r)
		}
	}
	return complete, incomplete
}

// Matrix extracts the given measurement columns as a row-major feature matrix.
func (t *Table) Matrix(cols ...int) [][]float64 {
	x := make([][]float64, len(t.Records))
	for i, r := range t.Records {
		row := make([]float64, len(cols))
		for j, c := range cols {
			row[j] = r.Measurements[c]
		}
		x[i] = row
	}
	return x
}

// Column extracts a single measurement column.
func (t *Table) Column(col int) []float64 {
	y := make([]float64, len(t.Records))
	for i, r := range t.Records {
		y[i] = r.Measurements[col]
	}
	return y
}

// Labels returns the recoded outcome vector.
func (t *Table) Labels() []float64 {
	y := make([]float64, len(t.Records))
	for i, r := range t.Records {
		y[i] = r.Malignant
	}
	return y
}

// Stats collects full-population statistics over all measurement columns.
func (t *Table) Stats() *buffer.StatsCollector {
	sc := buffer.NewStatsCollector(NumFeatures)
	for _, r := range t.Records {
		sc.Push(r.Measurements...)
	}
	return sc
}

// AllCols lists all measurement column indices, except the excluded ones.
func AllCols(except ...int) []int {
	skip := make(map[int]struct{}, len(except))
	for _, e := range except {
		skip[e] = struct{}{}
	}
	cols := make([]int, 0, NumFeatures)
	for c := 0; c < NumFeatures; c++ {
		if _, ok := skip[c]; ok {
			continue
		}
		cols = append(cols, c)
	}
	return cols
}
