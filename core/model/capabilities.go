// Package model provides the estimator contracts and capability adapter used
// by the visualizers. An estimator's capability is an explicit, self-declared
// tag rather than something probed from method sets: a model states whether
// it is a regressor, classifier, or clusterer, and capability-restricted
// visualizers check the tag once at construction time.
package model

import (
	"reflect"
)

// Kind classifies an estimator's capability.
type Kind int

const (
	// KindUnknown is the zero value for models that declare no capability.
	KindUnknown Kind = iota
	// KindRegressor marks models predicting continuous targets.
	KindRegressor
	// KindClassifier marks models predicting discrete labels.
	KindClassifier
	// KindClusterer marks models assigning cluster memberships.
	KindClusterer
)

// String returns the lowercase capability name.
func (k Kind) String() string {
	switch k {
	case KindRegressor:
		return "regressor"
	case KindClassifier:
		return "classifier"
	case KindClusterer:
		return "clusterer"
	default:
		return "unknown"
	}
}

// KindTagger is implemented by estimators to declare their capability.
type KindTagger interface {
	// EstimatorKind returns the declared capability of the model.
	EstimatorKind() Kind
}

// IsEstimator reports whether v satisfies the Estimator contract.
func IsEstimator(v interface{}) bool {
	_, ok := v.(Estimator)
	return ok
}

// IsRegressor reports whether v is an estimator declaring regression
// capability.
func IsRegressor(v interface{}) bool {
	return kindOf(v) == KindRegressor && IsEstimator(v)
}

// IsClassifier reports whether v is an estimator declaring classification
// capability.
func IsClassifier(v interface{}) bool {
	return kindOf(v) == KindClassifier && IsEstimator(v)
}

// IsClusterer reports whether v is an estimator declaring clustering
// capability.
func IsClusterer(v interface{}) bool {
	return kindOf(v) == KindClusterer && IsEstimator(v)
}

// KindOf returns the declared capability of v, or KindUnknown when v does
// not implement KindTagger.
func KindOf(v interface{}) Kind {
	return kindOf(v)
}

func kindOf(v interface{}) Kind {
	if tagger, ok := v.(KindTagger); ok {
		return tagger.EstimatorKind()
	}
	return KindUnknown
}

// ModelName derives a human-readable display name for v. Models implementing
// Namer choose their own; everything else gets its concrete type name with
// pointer indirection stripped.
func ModelName(v interface{}) string {
	if v == nil {
		return "<nil>"
	}
	if namer, ok := v.(Namer); ok {
		return namer.ModelName()
	}

	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}
