package model

// EstimatorState tracks whether a model has been fitted.
type EstimatorState int

const (
	// NotFitted is the state of a model before training.
	NotFitted EstimatorState = iota
	// Fitted is the state of a model after successful training.
	Fitted
)

// BaseEstimator is the embeddable base for all models.
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted reports whether the model has been fitted.
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted marks the model as fitted.
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset returns the model to its initial state.
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}
