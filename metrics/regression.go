// Package metrics provides regression evaluation helpers shared by the
// visualizers and their tests.
package metrics

import (
	"github.com/YuminosukeSato/vizgo/pkg/errors"
)

// MSE computes the mean squared error between two series.
func MSE(yTrue, yPred []float64) (float64, error) {
	n := len(yTrue)
	if n == 0 {
		return 0, errors.NewValueError("MSE", "empty series")
	}
	if len(yPred) != n {
		return 0, errors.NewDimensionError("MSE", n, len(yPred), 0)
	}

	// MSE = (1/n) * Σ(yTrue - yPred)²
	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue[i] - yPred[i]
		sum += diff * diff
	}

	return sum / float64(n), nil
}

// R2 computes the coefficient of determination R².
func R2(yTrue, yPred []float64) (float64, error) {
	n := len(yTrue)
	if n == 0 {
		return 0, errors.NewValueError("R2", "empty series")
	}
	if len(yPred) != n {
		return 0, errors.NewDimensionError("R2", n, len(yPred), 0)
	}

	var mean float64
	for _, v := range yTrue {
		mean += v
	}
	mean /= float64(n)

	var tss, rss float64
	for i := 0; i < n; i++ {
		tss += (yTrue[i] - mean) * (yTrue[i] - mean)
		rss += (yTrue[i] - yPred[i]) * (yTrue[i] - yPred[i])
	}

	if tss == 0 {
		return 0, errors.NewValueError("R2", "total sum of squares is zero")
	}

	return 1 - rss/tss, nil
}

// Residuals returns yPred - yTrue element-wise.
func Residuals(yTrue, yPred []float64) ([]float64, error) {
	n := len(yTrue)
	if len(yPred) != n {
		return nil, errors.NewDimensionError("Residuals", n, len(yPred), 0)
	}

	res := make([]float64, n)
	for i := 0; i < n; i++ {
		res[i] = yPred[i] - yTrue[i]
	}
	return res, nil
}
