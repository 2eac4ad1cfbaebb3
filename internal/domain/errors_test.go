package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "config.load",
		Kind: KindInvalidConfig,
		Path: "cropcast.yaml",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(fmt.Errorf("outer: %w", err), &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindInvalidConfig {
		t.Fatalf("expected kind %s", KindInvalidConfig)
	}
	want := "config.load: invalid_config (path=cropcast.yaml): root"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &OpError{Op: "x", Kind: KindNotFound})

	if !IsKind(err, KindNotFound) {
		t.Fatalf("expected IsKind to match wrapped OpError")
	}
	if IsKind(err, KindExecution) {
		t.Fatalf("expected IsKind to reject other kinds")
	}
	if IsKind(errors.New("plain"), KindNotFound) {
		t.Fatalf("expected IsKind false for plain error")
	}
}

func TestNilOpErrorString(t *testing.T) {
	var e *OpError
	if e.Error() != "<nil>" {
		t.Fatalf("expected <nil>, got %q", e.Error())
	}
	if e.Unwrap() != nil {
		t.Fatalf("expected nil unwrap")
	}
}

func TestServiceErrorMessage(t *testing.T) {
	if got := (&ServiceError{Status: 400}).Error(); got != "service returned status 400" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := (&ServiceError{Status: 500, Detail: "Model not loaded"}).Error(); got != "service returned status 500: Model not loaded" {
		t.Fatalf("unexpected message %q", got)
	}
}
