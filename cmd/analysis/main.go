package main

import (
	"fmt"
	"os"

	"github.com/drakos74/cyto/infra/config"
	"github.com/drakos74/cyto/internal/classify"
	"github.com/drakos74/cyto/internal/data"
	"github.com/drakos74/cyto/internal/impute"
	"github.com/drakos74/cyto/internal/metrics"
	"github.com/drakos74/cyto/internal/report"
	"github.com/rs/zerolog"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

type analysis struct {
	Dataset  string          `json:"dataset"`
	Sentinel string          `json:"sentinel"`
	Impute   impute.Config   `json:"impute"`
	Classify classify.Config `json:"classify"`
	Report   report.Config   `json:"report"`
}

func main() {

	var cfg analysis
	config.MustLoad("analysis", &cfg)

	table, err := data.Load(cfg.Dataset, cfg.Sentinel)
	if err != nil {
		panic(fmt.Sprintf("could not load dataset : %+v", err))
	}
	metrics.Observer.Add(float64(table.Len()), "load", "records")

	imputed, err := impute.Run(table, cfg.Impute)
	if err != nil {
		panic(fmt.Sprintf("could not impute missing measurements : %+v", err))
	}

	model, err := classify.Train(table, cfg.Classify)
	if err != nil {
		panic(fmt.Sprintf("could not train classifier : %+v", err))
	}

	eval, err := report.Evaluate(model, cfg.Report.Thresholds)
	if err != nil {
		panic(fmt.Sprintf("could not evaluate classifier : %+v", err))
	}

	refs, importance, err := report.References(model, cfg.Report)
	if err != nil {
		panic(fmt.Sprintf("could not score reference models : %+v", err))
	}

	reporter := report.NewReporter(os.Stdout)
	reporter.Header(table.Len())
	if imputed.Imputed > 0 {
		reporter.Grid("imputation grid : ridge", imputed.Best, imputed.Results)
	}
	reporter.Grid("classifier grid : logistic", model.Best, model.Results)
	for _, tc := range eval.Confusions {
		reporter.Confusion(tc)
	}
	reporter.Effects(report.Effects(model), importance)
	reporter.References(refs)

	metrics.Observer.Flush()
}
