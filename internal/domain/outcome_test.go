package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

type silentError struct{}

func (silentError) Error() string { return "" }

func TestResolveSuccess(t *testing.T) {
	o := Resolve(YieldResult{Prediction: 12.5, Unit: "tonnes"}, nil, YieldFallbackMessage)
	v, ok := o.Value()
	if !ok || v.Prediction != 12.5 {
		t.Fatalf("expected value, got %+v ok=%v", v, ok)
	}
	if _, failed := o.Failure(); failed {
		t.Fatalf("expected no failure")
	}
	if !o.OK() {
		t.Fatalf("expected OK")
	}
}

func TestResolveServiceDetail(t *testing.T) {
	err := fmt.Errorf("predict: %w", &ServiceError{Status: 400, Detail: "X"})
	f, ok := Resolve(YieldResult{}, err, YieldFallbackMessage).Failure()
	if !ok {
		t.Fatalf("expected failure")
	}
	if f.Message != "X" || f.Kind != FailureRejected {
		t.Fatalf("unexpected failure %+v", f)
	}
}

func TestResolveServiceDetailVerbatim(t *testing.T) {
	for _, detail := range []string{"  padded  ", "   "} {
		f, _ := Resolve(0, &ServiceError{Status: 400, Detail: detail}, YieldFallbackMessage).Failure()
		if f.Message != detail {
			t.Fatalf("expected %q, got %q", detail, f.Message)
		}
	}
}

func TestResolveServiceWithoutDetailUsesFallback(t *testing.T) {
	cases := map[string]string{
		YieldFallbackMessage:          YieldFallbackMessage,
		RecommendationFallbackMessage: RecommendationFallbackMessage,
	}
	for fallback, want := range cases {
		f, _ := Resolve(0, &ServiceError{Status: 500}, fallback).Failure()
		if f.Message != want {
			t.Fatalf("expected %q, got %q", want, f.Message)
		}
	}
}

func TestResolveTransportMessage(t *testing.T) {
	f, _ := Resolve(0, errors.New("connection refused"), YieldFallbackMessage).Failure()
	if f.Message != "connection refused" || f.Kind != FailureTransport {
		t.Fatalf("unexpected failure %+v", f)
	}
}

func TestResolveMessagelessErrorUsesGeneric(t *testing.T) {
	f, _ := Resolve(0, silentError{}, YieldFallbackMessage).Failure()
	if f.Message != GenericFailureMessage {
		t.Fatalf("expected %q, got %q", GenericFailureMessage, f.Message)
	}
}

func TestResolveDecodeAndCanceled(t *testing.T) {
	f, _ := Resolve(0, &DecodeError{Err: errors.New("unexpected EOF")}, "").Failure()
	if f.Kind != FailureDecode || f.Message != "invalid response body: unexpected EOF" {
		t.Fatalf("unexpected decode failure %+v", f)
	}

	f, _ = Resolve(0, fmt.Errorf("post: %w", context.Canceled), "").Failure()
	if f.Kind != FailureCanceled {
		t.Fatalf("expected canceled kind, got %+v", f)
	}
}

func TestZeroOutcomeIsFailure(t *testing.T) {
	var o Outcome[int]
	if o.OK() {
		t.Fatalf("zero outcome must not be OK")
	}
	f, ok := o.Failure()
	if !ok || f.Message != GenericFailureMessage {
		t.Fatalf("expected generic failure, got %+v", f)
	}
}
