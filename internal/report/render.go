package report

import (
	"fmt"
	"io"
	"strconv"

	cytomath "github.com/drakos74/cyto/internal/math"
	"github.com/drakos74/cyto/internal/math/ml"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
)

// Reporter renders the run tables to the given writer.
type Reporter struct {
	ID  string
	out io.Writer
}

// NewReporter creates a reporter with a fresh run id.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{
		ID:  uuid.New().String(),
		out: out,
	}
}

// Header opens the report.
func (r *Reporter) Header(records int) {
	fmt.Fprintf(r.out, "analysis run %s : %d samples\n", r.ID, records)
}

// Grid renders the cross-validated scores of a grid search.
func (r *Reporter) Grid(title string, best ml.Result, results []ml.Result) {
	fmt.Fprintf(r.out, "\n%s\n", title)
	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"candidate", "cv score", "selected"})
	for _, res := range results {
		mark := ""
		if res.Name == best.Name {
			mark = "*"
		}
		table.Append([]string{res.Name, cytomath.Format(res.Score), mark})
	}
	table.Render()
}

// Confusion renders the cross-tabulation for one decision threshold,
// with the label counts on the margins.
func (r *Reporter) Confusion(tc ThresholdConfusion) {
	c := tc.Confusion
	fmt.Fprintf(r.out, "\nconfusion matrix @ threshold %s\n", cytomath.Format(tc.Threshold))
	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"", "predicted benign", "predicted malignant", "total"})
	table.Append([]string{"actual benign", itoa(c.TN), itoa(c.FP), itoa(c.ActualNegatives())})
	table.Append([]string{"actual malignant", itoa(c.FN), itoa(c.TP), itoa(c.ActualPositives())})
	table.SetFooter([]string{"total", itoa(c.TN + c.FN), itoa(c.FP + c.TP), itoa(c.Total())})
	table.Render()
	fmt.Fprintf(r.out, "accuracy=%s sensitivity=%s specificity=%s\n",
		cytomath.Format(c.Accuracy()),
		cytomath.Format(c.Sensitivity()),
		cytomath.Format(c.Specificity()))
}

// Effects renders the interpretability table, pairing the logistic effect
// sizes with the forest importance where available.
func (r *Reporter) Effects(effects []Effect, importance map[string]float64) {
	fmt.Fprintf(r.out, "\nfeature effects\n")
	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"feature", "coefficient", "std dev", "effect", "forest importance"})
	for _, e := range effects {
		imp := "-"
		if v, ok := importance[e.Name]; ok {
			imp = cytomath.Format(v)
		}
		table.Append([]string{
			e.Name,
			cytomath.Format(e.Coef),
			cytomath.Format(e.Std),
			cytomath.Format(e.Effect),
			imp,
		})
	}
	table.Render()
}

// References renders the companion model scores and their details.
func (r *Reporter) References(refs []Reference) {
	fmt.Fprintf(r.out, "\nreference models\n")
	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"model", "accuracy"})
	for _, ref := range refs {
		table.Append([]string{ref.Name, cytomath.Format(ref.Accuracy)})
	}
	table.Render()
	for _, ref := range refs {
		if ref.Detail != "" {
			fmt.Fprintf(r.out, "\n%s\n%s\n", ref.Name, ref.Detail)
		}
	}
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
