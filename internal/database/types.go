package database

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"
)

// StoredEmployee represents an employee record stored in the database.
type StoredEmployee struct {
	ID        int64
	Name      string
	Encoding  []float32
	Image     []byte // PNG bytes of the aligned face crop
	CreatedAt time.Time
}

// EncodeVector serializes an encoding as raw little-endian float32 bytes.
func EncodeVector(vec []float32) []byte {
	buf := make([]byte, 4*len(vec))
	for i, v := range vec {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

// DecodeVector deserializes raw little-endian float32 bytes.
func DecodeVector(data []byte) ([]float32, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("encoding length %d is not a multiple of 4", len(data))
	}

	vec := make([]float32, len(data)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return vec, nil
}
