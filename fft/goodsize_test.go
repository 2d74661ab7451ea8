package fft

import (
	"errors"
	"testing"
)

func TestNextFastLenValidation(t *testing.T) {
	if _, err := NextFastLen(0, false); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("got %v, want ErrInvalidLength", err)
	}
	if _, err := NextFastLen(-3, true); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("got %v, want ErrInvalidLength", err)
	}
}

func TestNextFastLen(t *testing.T) {
	requireEngine(t)

	tests := []struct {
		target int
		real   bool
	}{
		{1, false},
		{42, false},
		{42, true},
		{10007, false},
	}

	for _, tt := range tests {
		got, err := NextFastLen(tt.target, tt.real)
		if err != nil {
			t.Fatalf("NextFastLen(%d, %v): %v", tt.target, tt.real, err)
		}
		if got < tt.target {
			t.Fatalf("NextFastLen(%d, %v) = %d, want >= target", tt.target, tt.real, got)
		}
	}
}
