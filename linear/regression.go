// Package linear provides an ordinary-least-squares regression model used as
// the reference regressor for the visualizers and their examples.
package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/vizgo/core/model"
	"github.com/YuminosukeSato/vizgo/pkg/errors"
)

// Regression is a linear regression model fitted by the normal equations.
type Regression struct {
	model.BaseEstimator

	weights   *mat.VecDense
	intercept float64
	nFeatures int

	fitIntercept bool
}

// Option configures a Regression.
type Option func(*Regression)

// WithFitIntercept sets whether to estimate the intercept term.
func WithFitIntercept(fit bool) Option {
	return func(r *Regression) {
		r.fitIntercept = fit
	}
}

// NewRegression creates a linear regression model.
func NewRegression(opts ...Option) *Regression {
	r := &Regression{fitIntercept: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// EstimatorKind declares regression capability.
func (r *Regression) EstimatorKind() model.Kind {
	return model.KindRegressor
}

// Fit solves w = (X^T X)^(-1) X^T y.
func (r *Regression) Fit(X, y mat.Matrix) error {
	rows, cols := X.Dims()
	ry, cy := y.Dims()

	if rows == 0 || cols == 0 {
		return errors.Wrap(errors.ErrEmptyData, "Regression.Fit")
	}
	if ry != rows {
		return errors.NewDimensionError("Regression.Fit", rows, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("Regression.Fit", "y must be a column vector")
	}

	r.nFeatures = cols

	// Augment X with a leading ones column when fitting the intercept.
	nCoef := cols
	offset := 0
	if r.fitIntercept {
		nCoef++
		offset = 1
	}
	design := mat.NewDense(rows, nCoef, nil)
	for i := 0; i < rows; i++ {
		if r.fitIntercept {
			design.Set(i, 0, 1.0)
		}
		for j := 0; j < cols; j++ {
			design.Set(i, j+offset, X.At(i, j))
		}
	}

	var xt mat.Dense
	xt.CloneFrom(design.T())

	var xtx mat.Dense
	xtx.Mul(&xt, design)

	var xtxInv mat.Dense
	if err := xtxInv.Inverse(&xtx); err != nil {
		return errors.Wrap(errors.ErrSingularMatrix, "Regression.Fit")
	}

	yVec := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		yVec.SetVec(i, y.At(i, 0))
	}

	var xty mat.VecDense
	xty.MulVec(&xt, yVec)

	coef := mat.NewVecDense(nCoef, nil)
	coef.MulVec(&xtxInv, &xty)

	if r.fitIntercept {
		r.intercept = coef.AtVec(0)
	} else {
		r.intercept = 0
	}
	r.weights = mat.NewVecDense(cols, nil)
	for j := 0; j < cols; j++ {
		r.weights.SetVec(j, coef.AtVec(j+offset))
	}

	r.SetFitted()
	return nil
}

// Predict returns X*w + intercept as an n×1 matrix.
func (r *Regression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !r.IsFitted() {
		return nil, errors.NewNotFittedError("Regression", "Predict")
	}

	rows, cols := X.Dims()
	if cols != r.nFeatures {
		return nil, errors.NewDimensionError("Regression.Predict", r.nFeatures, cols, 1)
	}

	predictions := mat.NewDense(rows, 1, nil)
	for i := 0; i < rows; i++ {
		pred := r.intercept
		for j := 0; j < cols; j++ {
			pred += X.At(i, j) * r.weights.AtVec(j)
		}
		predictions.Set(i, 0, pred)
	}

	return predictions, nil
}

// Score computes the coefficient of determination R².
func (r *Regression) Score(X, y mat.Matrix) (float64, error) {
	if !r.IsFitted() {
		return 0, errors.NewNotFittedError("Regression", "Score")
	}

	yPred, err := r.Predict(X)
	if err != nil {
		return 0, err
	}

	rows, _ := y.Dims()

	var mean float64
	for i := 0; i < rows; i++ {
		mean += y.At(i, 0)
	}
	mean /= float64(rows)

	var tss, rss float64
	for i := 0; i < rows; i++ {
		yTrue := y.At(i, 0)
		diff := yTrue - yPred.At(i, 0)
		tss += (yTrue - mean) * (yTrue - mean)
		rss += diff * diff
	}

	if tss == 0 {
		return 0, errors.NewValueError("Regression.Score", "total sum of squares is zero")
	}

	return 1 - rss/tss, nil
}

// Coefficients returns the fitted weights.
func (r *Regression) Coefficients() []float64 {
	if r.weights == nil {
		return nil
	}
	coef := make([]float64, r.weights.Len())
	for i := range coef {
		coef[i] = r.weights.AtVec(i)
	}
	return coef
}

// Intercept returns the fitted intercept.
func (r *Regression) Intercept() float64 {
	return r.intercept
}
