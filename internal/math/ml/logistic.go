package ml

import (
	"fmt"
	"math"
)

// Penalty is the regularization family applied to the logistic coefficients.
type Penalty string

const (
	L1 Penalty = "l1"
	L2 Penalty = "l2"
)

// Logistic is a binary logistic regression classifier trained by
// full-batch gradient descent with an L1 or L2 penalty.
type Logistic struct {
	Penalty    Penalty
	C          float64
	Balanced   bool
	Rate       float64
	Iterations int

	weights   []float64
	intercept float64
}

// NewLogistic creates a classifier for the given penalty family and
// inverse regularization strength.
func NewLogistic(penalty Penalty, c float64, balanced bool) *Logistic {
	return &Logistic{
		Penalty:    penalty,
		C:          c,
		Balanced:   balanced,
		Rate:       0.5,
		Iterations: 500,
	}
}

// Fit trains the classifier. Weights start at zero, so the fit is
// deterministic for a given input order.
func (l *Logistic) Fit(x [][]float64, y []float64) error {
	if len(x) == 0 {
		return fmt.Errorf("empty training set")
	}
	if len(x) != len(y) {
		return fmt.Errorf("inconsistent sample count %d vs %d", len(x), len(y))
	}
	if l.C <= 0 {
		return fmt.Errorf("invalid inverse regularization strength %f", l.C)
	}
	switch l.Penalty {
	case L1, L2:
	default:
		return fmt.Errorf("unknown penalty %s", l.Penalty)
	}

	n := len(x)
	d := len(x[0])
	for i, row := range x {
		if len(row) != d {
			return fmt.Errorf("inconsistent feature count at row %d: %d vs %d", i, len(row), d)
		}
	}
	l.weights = make([]float64, d)
	l.intercept = 0

	sw := sampleWeights(y, l.Balanced)

	for it := 0; it < l.Iterations; it++ {
		g := make([]float64, d)
		gb := 0.0
		for i, row := range x {
			p := sigmoid(l.score(row))
			e := sw[i] * (p - y[i])
			for j, v := range row {
				g[j] += e * v
			}
			gb += e
		}
		for j := 0; j < d; j++ {
			g[j] /= float64(n)
			switch l.Penalty {
			case L2:
				g[j] += l.weights[j] / (l.C * float64(n))
				l.weights[j] -= l.Rate * g[j]
			case L1:
				// proximal step : shrink towards zero after the data
				// gradient, so weak coefficients land exactly on zero
				// instead of oscillating around it
				l.weights[j] = shrink(l.weights[j]-l.Rate*g[j], l.Rate/(l.C*float64(n)))
			}
		}
		l.intercept -= l.Rate * gb / float64(n)
	}
	return nil
}

// PredictProba returns the probability of the positive class for each row.
func (l *Logistic) PredictProba(x [][]float64) []float64 {
	out := make([]float64, len(x))
	for i, row := range x {
		out[i] = sigmoid(l.score(row))
	}
	return out
}

// Predict returns class labels at the default 0.5 probability threshold.
func (l *Logistic) Predict(x [][]float64) []float64 {
	return Threshold(l.PredictProba(x), 0.5)
}

// Coef returns the fitted coefficients.
func (l *Logistic) Coef() []float64 {
	return l.weights
}

// Intercept returns the fitted intercept.
func (l *Logistic) Intercept() float64 {
	return l.intercept
}

func (l *Logistic) score(row []float64) float64 {
	sum := l.intercept
	for j, v := range row {
		sum += l.weights[j] * v
	}
	return sum
}

// Threshold maps probabilities to class labels at the given cut-off.
func Threshold(prob []float64, threshold float64) []float64 {
	out := make([]float64, len(prob))
	for i, p := range prob {
		if p >= threshold {
			out[i] = 1
		}
	}
	return out
}

// sampleWeights balances the classes so that each class contributes
// half of the total weight : w(k) = n / (2 * count(k)).
func sampleWeights(y []float64, balanced bool) []float64 {
	sw := make([]float64, len(y))
	if !balanced {
		for i := range sw {
			sw[i] = 1
		}
		return sw
	}
	n := float64(len(y))
	pos := 0.0
	for _, v := range y {
		pos += v
	}
	neg := n - pos
	if pos == 0 || neg == 0 {
		// single-class fold, nothing to balance
		for i := range sw {
			sw[i] = 1
		}
		return sw
	}
	for i, v := range y {
		if v == 1 {
			sw[i] = n / (2 * pos)
		} else {
			sw[i] = n / (2 * neg)
		}
	}
	return sw
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// shrink is the soft-thresholding operator : it moves w towards zero by t
// and clips at zero when the magnitude is below the threshold.
func shrink(w, t float64) float64 {
	switch {
	case w > t:
		return w - t
	case w < -t:
		return w + t
	}
	return 0
}
