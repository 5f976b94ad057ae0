package model

import "gonum.org/v1/gonum/mat"

// Fitter is the interface for models that can be trained.
type Fitter interface {
	// Fit trains the model on X and y.
	Fit(X, y mat.Matrix) error
}

// Predictor is the interface for models that can predict.
type Predictor interface {
	// Predict returns predictions for the rows of X as an n×1 matrix.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Scorer is the interface for models that can compute a score.
type Scorer interface {
	// Score returns the coefficient of determination R^2 of the prediction.
	Score(X mat.Matrix, y mat.Matrix) (float64, error)
}

// Estimator is the minimal contract a visualizer wraps: anything that can
// be fitted and then asked for predictions.
type Estimator interface {
	Fitter
	Predictor
}

// Regressor is an estimator that declares regression capability.
// Visualizers restricted to regression accept only this interface.
type Regressor interface {
	Estimator
	KindTagger
}

// Namer is implemented by models that want to control their display name.
// Models without it get a reflection-derived name (see ModelName).
type Namer interface {
	ModelName() string
}
