package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidTile, "tile %s is wider than the grid", "13x5")

	if err.Code != ErrCodeInvalidTile {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidTile)
	}
	if want := "INVALID_TILE: tile 13x5 is wider than the grid"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(ErrCodeNetwork, cause, "fetch deals")

	if want := "NETWORK_ERROR: fetch deals: connection refused"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestCodeLookup(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		wantCode Code
		wantMsg  string
	}{
		{"coded", New(ErrCodeInvalidInput, "bad input"), ErrCodeInvalidInput, ErrCodeInvalidInput, "bad input"},
		{"other code", New(ErrCodeInvalidInput, "bad input"), ErrCodeNetwork, ErrCodeInvalidInput, "bad input"},
		{"outermost wins", Wrap(ErrCodeNetwork, New(ErrCodeInvalidInput, "inner"), "outer"), ErrCodeNetwork, ErrCodeNetwork, "outer"},
		{"fmt wrapped", fmt.Errorf("section 2: %w", New(ErrCodeInvalidSnapshot, "empty id")), ErrCodeInvalidSnapshot, ErrCodeInvalidSnapshot, "empty id"},
		{"plain", errors.New("plain error"), ErrCodeInvalidInput, "", "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := Is(tt.err, tt.code), tt.code == tt.wantCode; got != want {
				t.Errorf("Is(%s) = %v, want %v", tt.code, got, want)
			}
			if got := GetCode(tt.err); got != tt.wantCode {
				t.Errorf("GetCode() = %v, want %v", got, tt.wantCode)
			}
			if got := UserMessage(tt.err); got != tt.wantMsg {
				t.Errorf("UserMessage() = %q, want %q", got, tt.wantMsg)
			}
		})
	}

	if Is(nil, ErrCodeInvalidInput) || GetCode(nil) != "" {
		t.Error("nil error should have no code")
	}
}

func TestFatal(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Fatal() did not panic")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %T is not an error", r)
		}
		if !Is(err, ErrCodeMissingComponent) {
			t.Errorf("panic code = %v, want %v", GetCode(err), ErrCodeMissingComponent)
		}
		if UserMessage(err) != "no component for product" {
			t.Errorf("UserMessage() = %q", UserMessage(err))
		}
	}()

	Fatal(ErrCodeMissingComponent, "no component for %s", "product")
}
