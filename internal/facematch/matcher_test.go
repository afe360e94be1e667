package facematch

import (
	"math"
	"testing"
)

func TestEuclideanDistance(t *testing.T) {
	tests := []struct {
		name     string
		a        []float32
		b        []float32
		expected float64
	}{
		{
			name:     "identical vectors",
			a:        []float32{10, 20, 30},
			b:        []float32{10, 20, 30},
			expected: 0,
		},
		{
			name:     "single axis",
			a:        []float32{0, 0, 0},
			b:        []float32{30, 0, 0},
			expected: 30,
		},
		{
			name:     "3-4-0 triangle",
			a:        []float32{0, 0, 0},
			b:        []float32{3, 4, 0},
			expected: 5,
		},
		{
			name:     "mismatched lengths",
			a:        []float32{1, 2},
			b:        []float32{1, 2, 3},
			expected: math.MaxFloat64,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EuclideanDistance(tt.a, tt.b)
			if math.Abs(result-tt.expected) > 0.0001 {
				t.Errorf("EuclideanDistance(%v, %v) = %v, want %v", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestBestMatch_Threshold(t *testing.T) {
	known := []KnownFace{
		{Name: "alice", Encoding: []float32{100, 100, 100}},
	}

	tests := []struct {
		name      string
		probe     []float32
		wantMatch bool
	}{
		{
			name:      "well inside threshold",
			probe:     []float32{100, 100, 105},
			wantMatch: true,
		},
		{
			name:      "just inside threshold",
			probe:     []float32{100, 100, 129.9},
			wantMatch: true,
		},
		{
			name:      "exactly at threshold is no match",
			probe:     []float32{100, 100, 130},
			wantMatch: false,
		},
		{
			name:      "beyond threshold",
			probe:     []float32{200, 200, 200},
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := BestMatch(tt.probe, known)
			if ok != tt.wantMatch {
				t.Fatalf("BestMatch(%v) match = %v, want %v", tt.probe, ok, tt.wantMatch)
			}
			if ok && m.Name != "alice" {
				t.Errorf("expected match 'alice', got '%s'", m.Name)
			}
		})
	}
}

func TestBestMatch_PicksNearest(t *testing.T) {
	known := []KnownFace{
		{Name: "alice", Encoding: []float32{100, 100, 100}},
		{Name: "bob", Encoding: []float32{110, 110, 110}},
	}

	m, ok := BestMatch([]float32{109, 109, 109}, known)
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Name != "bob" {
		t.Errorf("expected nearest 'bob', got '%s'", m.Name)
	}
}

func TestBestMatch_TieBreakInsertionOrder(t *testing.T) {
	// Two known faces at exactly the same distance from the probe:
	// the one registered first must win.
	known := []KnownFace{
		{Name: "first", Encoding: []float32{90, 100, 100}},
		{Name: "second", Encoding: []float32{110, 100, 100}},
	}

	m, ok := BestMatch([]float32{100, 100, 100}, known)
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Name != "first" {
		t.Errorf("tie-break: expected 'first', got '%s'", m.Name)
	}
	if math.Abs(m.Distance-10) > 0.0001 {
		t.Errorf("expected distance 10, got %v", m.Distance)
	}
}

func TestBestMatch_EmptyKnownSet(t *testing.T) {
	if _, ok := BestMatch([]float32{1, 2, 3}, nil); ok {
		t.Error("expected no match against an empty known set")
	}
}
