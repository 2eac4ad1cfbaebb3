package domain

import (
	"context"
	"errors"
)

// Messages shown when the service or the transport gave nothing better.
const (
	GenericFailureMessage         = "An error occurred"
	YieldFallbackMessage          = "Prediction failed"
	RecommendationFallbackMessage = "Recommendation failed"
)

// FailureKind classifies why a submission did not produce a result.
type FailureKind string

const (
	FailureRejected  FailureKind = "rejected"
	FailureTransport FailureKind = "transport"
	FailureDecode    FailureKind = "decode"
	FailureCanceled  FailureKind = "canceled"
)

// Failure is the display-ready error half of an Outcome.
type Failure struct {
	Kind    FailureKind
	Message string
}

// DecodeError reports a response body that could not be read as the expected JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return "invalid response body"
	}
	return "invalid response body: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Outcome is either a value or a failure, never both.
type Outcome[T any] struct {
	value   *T
	failure *Failure
}

func Succeeded[T any](v T) Outcome[T] {
	return Outcome[T]{value: &v}
}

func Failed[T any](f Failure) Outcome[T] {
	if f.Message == "" {
		f.Message = GenericFailureMessage
	}
	return Outcome[T]{failure: &f}
}

// Value returns the result when the outcome succeeded.
func (o Outcome[T]) Value() (T, bool) {
	if o.value == nil {
		var zero T
		return zero, false
	}
	return *o.value, true
}

// Failure returns the failure when the outcome did not succeed. A zero Outcome
// counts as a generic failure.
func (o Outcome[T]) Failure() (Failure, bool) {
	if o.failure != nil {
		return *o.failure, true
	}
	if o.value == nil {
		return Failure{Kind: FailureTransport, Message: GenericFailureMessage}, true
	}
	return Failure{}, false
}

func (o Outcome[T]) OK() bool { return o.value != nil }

// Resolve narrows a call's (value, error) pair into an Outcome.
// A rejected call shows the service detail or fallback; any other error shows
// its own message, or GenericFailureMessage when it has none.
func Resolve[T any](v T, err error, fallback string) Outcome[T] {
	if err == nil {
		return Succeeded(v)
	}

	var se *ServiceError
	if errors.As(err, &se) {
		msg := se.Detail
		if msg == "" {
			msg = fallback
		}
		return Failed[T](Failure{Kind: FailureRejected, Message: msg})
	}

	kind := FailureTransport
	var de *DecodeError
	switch {
	case errors.As(err, &de):
		kind = FailureDecode
	case errors.Is(err, context.Canceled):
		kind = FailureCanceled
	}

	return Failed[T](Failure{Kind: kind, Message: err.Error()})
}
