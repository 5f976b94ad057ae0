// Package log defines standard attribute keys for visualizer operations.
//
// Using these keys consistently keeps log output filterable: every draw,
// score, and render event carries the same field names regardless of which
// visualizer produced it.

package log

// Model and operation context.
const (
	// ModelNameKey identifies the wrapped estimator type.
	// Examples: "Regression", "LGBMRegressor"
	ModelNameKey = "model.name"

	// VisualizerKey identifies the visualizer producing the event.
	// Examples: "PredictionError", "ResidualsPlot"
	VisualizerKey = "viz.name"

	// OperationKey specifies the lifecycle operation being performed.
	// Standard values: "fit", "score", "draw", "poof"
	OperationKey = "viz.operation"

	// ComponentKey identifies the package performing the operation.
	// Examples: "regressor", "canvas", "linear"
	ComponentKey = "viz.component"
)

// Data shape.
const (
	// SamplesKey is the number of samples in the series being drawn.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of features in the input matrix.
	FeaturesKey = "data.features"

	// TrainKey indicates whether the drawn series came from training data.
	TrainKey = "data.train"
)

// Rendering context.
const (
	// ScattersKey is the number of scatter series on the surface.
	ScattersKey = "surface.scatters"

	// PointsKey is the total number of marks on the surface.
	PointsKey = "surface.points"

	// OutputKey names the render destination, when one is configured.
	OutputKey = "render.output"

	// DurationMsKey records how long an operation took, in milliseconds.
	DurationMsKey = "duration_ms"
)
