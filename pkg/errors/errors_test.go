package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrConfigLoad, "could not load config")

	if err.Code != ErrConfigLoad {
		t.Errorf("Code = %v, want %v", err.Code, ErrConfigLoad)
	}
	if got := err.Error(); got != "[CONFIG_LOAD] could not load config" {
		t.Errorf("Error() = %q", got)
	}
}

func TestWrapPreservesChain(t *testing.T) {
	inner := fmt.Errorf("no such file")
	err := Wrap(inner, ErrConfigLoad, "loading statline.toml")

	if !errors.Is(err, inner) {
		t.Error("wrapped error not found in chain")
	}
	if got := err.Error(); got != "[CONFIG_LOAD] loading statline.toml: no such file" {
		t.Errorf("Error() = %q", got)
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, ErrInternal, "nope") != nil {
		t.Error("Wrap(nil, ...) should return nil")
	}
	if Wrapf(nil, ErrInternal, "nope %d", 1) != nil {
		t.Error("Wrapf(nil, ...) should return nil")
	}
}

func TestIsErrorCode(t *testing.T) {
	err := Newf(ErrConfigParse, "bad value %q", "12x")
	wrapped := fmt.Errorf("outer: %w", err)

	if !IsErrorCode(wrapped, ErrConfigParse) {
		t.Error("IsErrorCode should see through wrapping")
	}
	if IsErrorCode(wrapped, ErrConfigLoad) {
		t.Error("IsErrorCode matched the wrong code")
	}
	if IsErrorCode(errors.New("plain"), ErrConfigParse) {
		t.Error("IsErrorCode matched a plain error")
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := GetErrorCode(New(ErrInvalidInput, "x")); got != ErrInvalidInput {
		t.Errorf("GetErrorCode = %v, want %v", got, ErrInvalidInput)
	}
	if got := GetErrorCode(errors.New("plain")); got != ErrUnknown {
		t.Errorf("GetErrorCode = %v, want %v", got, ErrUnknown)
	}
}
