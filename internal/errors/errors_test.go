package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNewRegisteredCode(t *testing.T) {
	err := New("E100")
	if err.Category != CategoryUsage {
		t.Errorf("expected usage category, got %s", err.Category)
	}
	want := "[PULSE E100] Children not rendered"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestNewUnknownCode(t *testing.T) {
	err := New("E999")
	if err.Message != "Unknown error" {
		t.Errorf("expected unknown error message, got %q", err.Message)
	}
}

func TestWrapUnwrap(t *testing.T) {
	inner := stderrors.New("boom")
	err := New("E003").Wrap(inner)

	if !stderrors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped error")
	}
	if err.Unwrap() != inner {
		t.Error("Unwrap should return the wrapped error")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E001") != nil {
		t.Error("FromError(nil) should be nil")
	}

	pe := New("E001")
	if FromError(pe, "E002") != pe {
		t.Error("FromError should pass through an existing PulseError")
	}

	wrapped := FromError(stderrors.New("io failure"), "E200")
	if wrapped.Code != "E200" {
		t.Errorf("expected code E200, got %s", wrapped.Code)
	}
}

func TestHasCode(t *testing.T) {
	err := New("E100")
	outer := fmt.Errorf("mounting list: %w", err)

	if !HasCode(outer, "E100") {
		t.Error("HasCode should find E100 through wrapping")
	}
	if HasCode(outer, "E101") {
		t.Error("HasCode should not match a different code")
	}
	if HasCode(nil, "E100") {
		t.Error("HasCode(nil) should be false")
	}
}

func TestBuilders(t *testing.T) {
	err := Newf(CategoryRuntime, "bad state %d", 7).
		WithDetail("more words").
		WithSuggestion("do the other thing")

	if err.Message != "bad state 7" {
		t.Errorf("unexpected message %q", err.Message)
	}
	if err.Detail != "more words" || err.Suggestion != "do the other thing" {
		t.Error("builders did not set fields")
	}
	if err.Error() != "bad state 7" {
		t.Errorf("codeless error should print bare message, got %q", err.Error())
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup("E200"); !ok {
		t.Error("E200 should be registered")
	}
	if _, ok := Lookup("E999"); ok {
		t.Error("E999 should not be registered")
	}
}
