package errors

import (
	"strings"
	"testing"
)

func TestTypeMismatchError(t *testing.T) {
	err := NewTypeMismatchError("KMeans", "regressor", "clusterer")

	var tmErr *TypeMismatchError
	if !As(err, &tmErr) {
		t.Fatalf("expected TypeMismatchError in chain, got %T", err)
	}

	if tmErr.ModelName != "KMeans" || tmErr.Expected != "regressor" || tmErr.Got != "clusterer" {
		t.Errorf("unexpected fields: %+v", tmErr)
	}

	msg := err.Error()
	for _, want := range []string{"KMeans", "regressor", "clusterer"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q missing %q", msg, want)
		}
	}
}

func TestNotFittedError(t *testing.T) {
	err := NewNotFittedError("Regression", "Predict")

	var nfErr *NotFittedError
	if !As(err, &nfErr) {
		t.Fatalf("expected NotFittedError in chain, got %T", err)
	}

	if !strings.Contains(err.Error(), "Call Fit() before using Predict()") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestDimensionError(t *testing.T) {
	tests := []struct {
		name     string
		axis     int
		wantWord string
	}{
		{name: "samples axis", axis: 0, wantWord: "samples"},
		{name: "features axis", axis: 1, wantWord: "features"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDimensionError("Surface.AddScatter", 3, 5, tt.axis)

			var dimErr *DimensionError
			if !As(err, &dimErr) {
				t.Fatalf("expected DimensionError in chain, got %T", err)
			}
			if dimErr.Expected != 3 || dimErr.Got != 5 {
				t.Errorf("unexpected fields: %+v", dimErr)
			}
			if !strings.Contains(err.Error(), tt.wantWord) {
				t.Errorf("error message %q missing %q", err.Error(), tt.wantWord)
			}
		})
	}
}

func TestWarnHandlers(t *testing.T) {
	var captured error
	SetWarningHandler(func(w error) { captured = w })
	defer SetWarningHandler(nil)

	warning := New("degenerate best-fit input")
	Warn(warning)

	if captured == nil || captured.Error() != warning.Error() {
		t.Errorf("warning handler captured %v, want %v", captured, warning)
	}
}

func TestWarnZerologSinkTakesPrecedence(t *testing.T) {
	var plain, sink error
	SetWarningHandler(func(w error) { plain = w })
	SetZerologWarnFunc(func(w error) { sink = w })
	defer func() {
		SetWarningHandler(nil)
		SetZerologWarnFunc(nil)
	}()

	Warn(New("sink check"))

	if sink == nil {
		t.Error("zerolog sink did not receive the warning")
	}
	if plain != nil {
		t.Error("plain handler ran even though a zerolog sink was installed")
	}
}

func TestSafeExecuteRecoversPanic(t *testing.T) {
	err := SafeExecute("shape mismatch", func() error {
		panic("mat: dimension mismatch")
	})

	var panicErr *PanicError
	if !As(err, &panicErr) {
		t.Fatalf("expected PanicError, got %T: %v", err, err)
	}
	if panicErr.Operation != "shape mismatch" {
		t.Errorf("operation = %q, want %q", panicErr.Operation, "shape mismatch")
	}
	if panicErr.StackTrace == "" {
		t.Error("stack trace not captured")
	}
}

func TestSafeExecutePassesThroughError(t *testing.T) {
	want := New("plain failure")
	err := SafeExecute("no panic", func() error { return want })
	if !Is(err, want) {
		t.Errorf("got %v, want %v", err, want)
	}
}
