package database

import (
	"reflect"
	"testing"
)

func TestVectorRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		vec  []float32
	}{
		{
			name: "mean color encoding",
			vec:  []float32{127.5, 64.25, 200.125},
		},
		{
			name: "zeros",
			vec:  []float32{0, 0, 0},
		},
		{
			name: "empty",
			vec:  []float32{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := EncodeVector(tt.vec)
			if len(data) != 4*len(tt.vec) {
				t.Fatalf("expected %d bytes, got %d", 4*len(tt.vec), len(data))
			}

			decoded, err := DecodeVector(data)
			if err != nil {
				t.Fatalf("DecodeVector failed: %v", err)
			}
			if !reflect.DeepEqual(decoded, tt.vec) {
				t.Errorf("round trip mismatch: got %v, want %v", decoded, tt.vec)
			}
		})
	}
}

func TestDecodeVector_InvalidLength(t *testing.T) {
	if _, err := DecodeVector([]byte{1, 2, 3}); err == nil {
		t.Error("expected error for byte length not divisible by 4")
	}
}
