package fft

import (
	"errors"
	"slices"
	"testing"
)

func TestResolveAxis(t *testing.T) {
	tests := []struct {
		axis, ndim int
		want       int
		ok         bool
	}{
		{0, 3, 0, true},
		{2, 3, 2, true},
		{-1, 3, 2, true},
		{-3, 3, 0, true},
		{3, 3, 0, false},
		{-4, 3, 0, false},
	}

	for _, tt := range tests {
		got, err := resolveAxis(tt.axis, tt.ndim)
		if tt.ok != (err == nil) {
			t.Fatalf("resolveAxis(%d, %d) error = %v", tt.axis, tt.ndim, err)
		}
		if tt.ok && got != tt.want {
			t.Fatalf("resolveAxis(%d, %d) = %d, want %d", tt.axis, tt.ndim, got, tt.want)
		}
	}
}

func TestResolveAxesDuplicates(t *testing.T) {
	// Every tuple with two equal resolved entries must fail before any
	// transform runs, including collisions from negative wraparound.
	bad := [][]int{
		{0, 0},
		{0, 2, 2},
		{0, 2, 1, 0},
		{-1, 3}, // both resolve to 3 on rank 4
		{-4, 0}, // both resolve to 0 on rank 4
	}

	for _, axes := range bad {
		if _, err := resolveAxes(axes, 4); !errors.Is(err, ErrDuplicateAxes) {
			t.Fatalf("axes %v: got %v, want ErrDuplicateAxes", axes, err)
		}
	}
}

func TestResolveAxesValid(t *testing.T) {
	tests := []struct {
		axes []int
		want []int
	}{
		{[]int{3, 1}, []int{3, 1}},
		{[]int{2, 1, 0}, []int{2, 1, 0}},
		{[]int{0, 1, 2, 3}, []int{0, 1, 2, 3}},
		{[]int{-2, -1}, []int{2, 3}},
	}

	for _, tt := range tests {
		got, err := resolveAxes(tt.axes, 4)
		if err != nil {
			t.Fatalf("axes %v: %v", tt.axes, err)
		}
		if !slices.Equal(got, tt.want) {
			t.Fatalf("axes %v resolved to %v, want %v", tt.axes, got, tt.want)
		}
	}
}

func TestResolveAxesRange(t *testing.T) {
	if _, err := resolveAxes([]int{4}, 4); !errors.Is(err, ErrAxisOutOfRange) {
		t.Fatalf("got %v, want ErrAxisOutOfRange", err)
	}
	if _, err := resolveAxes(nil, 4); !errors.Is(err, ErrEmptyAxes) {
		t.Fatalf("got %v, want ErrEmptyAxes", err)
	}
}
