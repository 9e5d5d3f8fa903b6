// SPDX-License-Identifier: MIT

package fit

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// solveOLS performs one ordinary least-squares regression of y against
// the columns of design via QR factorization, returning the coefficient
// vector and the coefficient of determination R² on the training data.
//
// A mat.Condition error from the solver flags an ill-conditioned
// design but still carries a usable solution; it is accepted. Any other
// solve failure is wrapped and returned.
func solveOLS(design *mat.Dense, y []float64) ([]float64, float64, error) {
	n, p := design.Dims()

	var qr mat.QR
	qr.Factorize(design)

	sol := mat.NewDense(p, 1, nil)
	if err := qr.SolveTo(sol, false, mat.NewVecDense(n, y)); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, 0, fmt.Errorf("fit: least-squares solve: %w", err)
		}
	}

	var predicted mat.Dense
	predicted.Mul(design, sol)
	estimates := make([]float64, n)
	for i := 0; i < n; i++ {
		estimates[i] = predicted.At(i, 0)
	}

	coef := make([]float64, p)
	for i := 0; i < p; i++ {
		coef[i] = sol.At(i, 0)
	}

	return coef, stat.RSquaredFrom(estimates, y, nil), nil
}
