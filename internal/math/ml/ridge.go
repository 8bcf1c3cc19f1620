package ml

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Ridge is a least-squares regressor with an L2 penalty on the coefficients.
// The intercept is carried as an unpenalized bias column.
type Ridge struct {
	Lambda    float64
	coef      []float64
	intercept float64
}

// NewRidge creates a ridge regressor for the given regularization strength.
func NewRidge(lambda float64) *Ridge {
	return &Ridge{Lambda: lambda}
}

// Fit solves the normal equations (XᵀX + λI)β = Xᵀy,
// with the identity zeroed at the intercept position.
func (r *Ridge) Fit(x [][]float64, y []float64) error {
	if len(x) == 0 {
		return fmt.Errorf("empty training set")
	}
	if len(x) != len(y) {
		return fmt.Errorf("inconsistent sample count %d vs %d", len(x), len(y))
	}
	n := len(x)
	d := len(x[0])

	a := mat.NewDense(n, d+1, nil)
	for i, row := range x {
		if len(row) != d {
			return fmt.Errorf("inconsistent feature count at row %d: %d vs %d", i, len(row), d)
		}
		a.Set(i, 0, 1)
		for j, v := range row {
			a.Set(i, j+1, v)
		}
	}
	b := mat.NewVecDense(n, y)

	var ata mat.Dense
	ata.Mul(a.T(), a)
	for j := 1; j <= d; j++ {
		ata.Set(j, j, ata.At(j, j)+r.Lambda)
	}

	var atb mat.VecDense
	atb.MulVec(a.T(), b)

	var beta mat.VecDense
	if err := beta.SolveVec(&ata, &atb); err != nil {
		return fmt.Errorf("could not solve normal equations: %w", err)
	}

	r.intercept = beta.AtVec(0)
	r.coef = make([]float64, d)
	for j := 0; j < d; j++ {
		r.coef[j] = beta.AtVec(j + 1)
	}
	return nil
}

// Predict returns the regression value for each row.
func (r *Ridge) Predict(x [][]float64) []float64 {
	out := make([]float64, len(x))
	for i, row := range x {
		sum := r.intercept
		for j, v := range row {
			sum += r.coef[j] * v
		}
		out[i] = sum
	}
	return out
}

// Coef returns the fitted coefficients.
func (r *Ridge) Coef() []float64 {
	return r.coef
}

// Intercept returns the fitted intercept.
func (r *Ridge) Intercept() float64 {
	return r.intercept
}
