package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindReassignment, "reassignment"},
		{KindModuleNotFound, "module-not-found"},
		{KindPortNotFound, "port-not-found"},
		{KindStructuralIntegrity, "structural-integrity"},
		{KindInvalidDimension, "invalid-dimension"},
		{KindValidation, "validation"},
		{Kind(999), "unknown"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			result := test.kind.String()
			if result != test.expected {
				t.Errorf("expected %s, got %s", test.expected, result)
			}
		})
	}
}

func TestConstructorsMatchSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		kind     Kind
	}{
		{"reassignment", Reassignment("Module", "vision"), ErrReassignment, KindReassignment},
		{"module not found", ModuleNotFound("Module", "GetModule", "a.b"), ErrModuleNotFound, KindModuleNotFound},
		{"port not found", PortNotFound("Module", "GetModuleInput", "a.b"), ErrPortNotFound, KindPortNotFound},
		{"structural", Structural("Module", "cortex"), ErrStructuralIntegrity, KindStructuralIntegrity},
		{"invalid dimension", InvalidDimension("Map", "GetOrCreate", -3), ErrInvalidDimension, KindInvalidDimension},
		{"validation", Validation(errors.New("low"), "Module", "synapse", "must be >= 0"), ErrValidation, KindValidation},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if !errors.Is(test.err, test.sentinel) {
				t.Errorf("expected errors.Is against sentinel to hold for %v", test.err)
			}
			if got := KindOf(test.err); got != test.kind {
				t.Errorf("expected kind %v, got %v", test.kind, got)
			}
		})
	}
}

func TestErrorCarriesPath(t *testing.T) {
	err := PortNotFound("Module", "GetModuleOutput", "vision.default")

	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if e.Path != "vision.default" {
		t.Errorf("expected path to be preserved, got %q", e.Path)
	}
	if !strings.Contains(e.Error(), "vision.default") {
		t.Errorf("expected message to name the requested path, got %q", e.Error())
	}
}

func TestWrap(t *testing.T) {
	base := errors.New("boom")

	err := Wrap(base, "Module", "Register", "port resolution")
	if err == nil {
		t.Fatal("expected non-nil error")
	}
	expected := "Module.Register: port resolution failed: boom"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
	if !errors.Is(err, base) {
		t.Error("expected wrapped error to match base via errors.Is")
	}
	if Wrap(nil, "Module", "Register", "anything") != nil {
		t.Error("expected Wrap(nil) to return nil")
	}
}

func TestPolicy_Apply(t *testing.T) {
	cause := fmt.Errorf("range check: %w", errors.New("value below minimum"))

	t.Run("simplified strips validation cause chain", func(t *testing.T) {
		err := Validation(cause, "Module", "dim_per_ensemble", "must be >= 1")
		out := Policy{Simplified: true}.Apply(err)

		if !errors.Is(out, ErrValidation) {
			t.Fatal("expected validation kind to survive")
		}
		if errors.Unwrap(out) != nil {
			t.Error("expected cause chain to be stripped")
		}
		if !strings.Contains(out.Error(), "dim_per_ensemble") {
			t.Errorf("expected field name in message, got %q", out.Error())
		}
		// the original error keeps its chain
		if !errors.Is(err, cause) {
			t.Error("expected original error to keep its cause chain")
		}
	})

	t.Run("default policy passes through", func(t *testing.T) {
		err := Validation(cause, "Module", "synapse", "must be >= 0")
		out := Policy{}.Apply(err)
		if !errors.Is(out, cause) {
			t.Error("expected cause chain to be preserved")
		}
	})

	t.Run("non-validation errors untouched", func(t *testing.T) {
		err := ModuleNotFound("Module", "GetModule", "a.b")
		out := Policy{Simplified: true}.Apply(err)
		if out != err {
			t.Error("expected non-validation error to pass through unchanged")
		}
	})

	t.Run("nil passes through", func(t *testing.T) {
		if (Policy{Simplified: true}).Apply(nil) != nil {
			t.Error("expected nil to pass through")
		}
	})
}
