package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestConfigValidator_AllValid(t *testing.T) {
	err := NewConfigValidator("Options").
		Positive("MaxPasses", 25).
		NonNegative("NumThreads", 0).
		PositiveFloat("ConvergenceEpsilon", 1e-6).
		RangeFloat("MinMovedFraction", 0.01, 0, 1).
		OneOf("SyncStrategy", "fullSync", []string{"fullSync", "earlyTerminate"}).
		Error()

	if err != nil {
		t.Errorf("Expected no error for valid config, got %v", err)
	}
}

func TestConfigValidator_CollectsAllErrors(t *testing.T) {
	cv := NewConfigValidator("Options").
		Positive("MaxPasses", 0).
		PositiveFloat("ConvergenceEpsilon", -1).
		OneOf("SyncStrategy", "bogus", []string{"fullSync"})

	if !cv.HasErrors() {
		t.Fatal("Expected validation errors")
	}
	if got := len(cv.Errors()); got != 3 {
		t.Errorf("Expected 3 errors, got %d: %v", got, cv.Errors())
	}

	// Error() returns the first one, prefixed with struct and field names
	err := cv.Error()
	if err == nil {
		t.Fatal("Error() returned nil despite failures")
	}
	if !strings.Contains(err.Error(), "Options.MaxPasses") {
		t.Errorf("Expected first error to name Options.MaxPasses, got %q", err.Error())
	}
}

func TestConfigValidator_RangeInt(t *testing.T) {
	if err := NewConfigValidator("C").RangeInt("N", 5, 1, 10).Error(); err != nil {
		t.Errorf("Expected 5 in [1,10] to pass, got %v", err)
	}
	if err := NewConfigValidator("C").RangeInt("N", 11, 1, 10).Error(); err == nil {
		t.Error("Expected 11 outside [1,10] to fail")
	}
}

func TestConfigValidator_RangeFloat(t *testing.T) {
	if err := NewConfigValidator("C").RangeFloat("F", 1.5, 0, 1).Error(); err == nil {
		t.Error("Expected 1.5 outside [0,1] to fail")
	}
	if err := NewConfigValidator("C").RangeFloat("F", 0, 0, 1).Error(); err != nil {
		t.Errorf("Expected boundary value to pass, got %v", err)
	}
}

func TestConfigValidator_Custom(t *testing.T) {
	sentinel := errors.New("bad field")
	err := NewConfigValidator("C").
		Custom("X", func() error { return sentinel }).
		Error()

	if !errors.Is(err, sentinel) {
		t.Errorf("Expected wrapped sentinel, got %v", err)
	}
}

func TestConfigValidator_When(t *testing.T) {
	err := NewConfigValidator("C").
		When(false, func(cv *ConfigValidator) {
			cv.Positive("Skipped", -1)
		}).
		When(true, func(cv *ConfigValidator) {
			cv.Positive("Checked", -1)
		}).
		Error()

	if err == nil {
		t.Fatal("Expected error from active branch")
	}
	if !strings.Contains(err.Error(), "Checked") {
		t.Errorf("Expected error about Checked, got %q", err.Error())
	}
}
