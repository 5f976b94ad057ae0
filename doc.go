// Package vizgo provides visual diagnostics for regression models.
//
// VizGo wraps a fitted (or fittable) estimator in a visualizer that renders
// model diagnostics onto a gonum/plot canvas. Two diagnostics are provided:
//
//   - regressor.PredictionError: actual targets against predicted values,
//     with a dashed best-fit line overlaid.
//   - regressor.ResidualsPlot: residuals against predicted values, with
//     train and test sets distinguished by color and opacity and a
//     zero-residual reference line.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "log"
//
//	    "gonum.org/v1/gonum/mat"
//
//	    "github.com/YuminosukeSato/vizgo/linear"
//	    "github.com/YuminosukeSato/vizgo/regressor"
//	)
//
//	func main() {
//	    X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
//	    y := mat.NewDense(4, 1, []float64{3, 5, 7, 9})
//
//	    viz, err := regressor.NewPredictionError(linear.NewRegression())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if err := viz.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//	    if _, err := viz.Score(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//	    sf, err := viz.Poof()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if err := sf.SavePNG("prediction_error.png"); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// Any model can be visualized as long as it implements the estimator
// contract in core/model and declares regression capability through
// EstimatorKind. Construction fails eagerly with a TypeMismatchError for
// anything else.
package vizgo
