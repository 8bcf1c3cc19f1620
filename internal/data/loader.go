package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
)

// raw file layout : id , 9 measurements , outcome code
const numColumns = 11

// Load reads the delimited source file into a Table.
// The file carries no header. A sentinel token in the bare-nuclei column
// marks a missing measurement and flags the record for imputation.
func Load(path string, sentinel string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open dataset %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = numColumns

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read dataset %s: %w", path, err)
	}

	table := &Table{Records: make([]*Record, 0, len(rows))}
	missing := 0
	malignant := 0

	for i, row := range rows {
		record, err := parse(row, sentinel)
		if err != nil {
			return nil, fmt.Errorf("could not parse row %d: %w", i+1, err)
		}
		if record.Missing {
			missing++
		}
		if record.Malignant == 1 {
			malignant++
		}
		table.Records = append(table.Records, record)
	}

	log.Info().
		Str("path", path).
		Int("records", table.Len()).
		Int("missing", missing).
		Int("malignant", malignant).
		Msg("loaded dataset")

	return table, nil
}

func parse(row []string, sentinel string) (*Record, error) {
	id, err := strconv.Atoi(row[0])
	if err != nil {
		return nil, fmt.Errorf("invalid sample id %s: %w", row[0], err)
	}

	record := &Record{
		ID:           id,
		Measurements: make([]float64, NumFeatures),
	}

	for c := 0; c < NumFeatures; c++ {
		raw := row[c+1]
		if c == BareNuclei && raw == sentinel {
			record.Missing = true
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %s: %w", Features[c], raw, err)
		}
		if v < 0 || v > 10 {
			return nil, fmt.Errorf("%s value %d out of range [0,10]", Features[c], v)
		}
		record.Measurements[c] = float64(v)
	}

	outcome, err := strconv.Atoi(row[numColumns-1])
	if err != nil {
		return nil, fmt.Errorf("invalid outcome code %s: %w", row[numColumns-1], err)
	}
	// recode : raw code 4 means malignant, anything else is benign
	if outcome == rawMalignant {
		record.Malignant = 1
	}

	return record, nil
}
