package ml

// Confusion is a cross-tabulation of predicted vs actual binary labels.
type Confusion struct {
	TN, FP, FN, TP int
}

// NewConfusion tabulates predictions against the known labels.
func NewConfusion(yTrue, yPred []float64) Confusion {
	var c Confusion
	for i := range yTrue {
		switch {
		case yTrue[i] == 1 && yPred[i] == 1:
			c.TP++
		case yTrue[i] == 1 && yPred[i] == 0:
			c.FN++
		case yTrue[i] == 0 && yPred[i] == 1:
			c.FP++
		default:
			c.TN++
		}
	}
	return c
}

// Total returns the number of tabulated samples.
func (c Confusion) Total() int {
	return c.TN + c.FP + c.FN + c.TP
}

// ActualPositives returns the count of samples with a positive label.
func (c Confusion) ActualPositives() int {
	return c.TP + c.FN
}

// ActualNegatives returns the count of samples with a negative label.
func (c Confusion) ActualNegatives() int {
	return c.TN + c.FP
}

// Accuracy is the fraction of correct predictions.
func (c Confusion) Accuracy() float64 {
	if c.Total() == 0 {
		return 0
	}
	return float64(c.TP+c.TN) / float64(c.Total())
}

// Sensitivity is the true positive rate.
func (c Confusion) Sensitivity() float64 {
	if c.ActualPositives() == 0 {
		return 0
	}
	return float64(c.TP) / float64(c.ActualPositives())
}

// Specificity is the true negative rate.
func (c Confusion) Specificity() float64 {
	if c.ActualNegatives() == 0 {
		return 0
	}
	return float64(c.TN) / float64(c.ActualNegatives())
}

// Accuracy is the fraction of matching labels.
func Accuracy(yTrue, yPred []float64) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	correct := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(yTrue))
}

// NegMSE is the negative mean squared error, so that higher is better.
func NegMSE(yTrue, yPred []float64) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	sum := 0.0
	for i := range yTrue {
		d := yPred[i] - yTrue[i]
		sum += d * d
	}
	return -sum / float64(len(yTrue))
}
