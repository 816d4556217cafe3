package stl

import (
	"encoding/binary"
	"io"
	"math"
)

var le = binary.LittleEndian

// ReadInt32LE consumes four bytes and composes them as a little-endian int32.
func ReadInt32LE(r io.Reader) (int32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int32(le.Uint32(buf[:])), nil
}

// ReadFloat32LE consumes four bytes and reinterprets them as an IEEE-754 float32.
func ReadFloat32LE(r io.Reader) (float32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return float32LE(buf[:]), nil
}

// WriteInt32LE appends v as four little-endian bytes.
func WriteInt32LE(w io.Writer, v int32) error {
	var buf [4]byte
	le.PutUint32(buf[:], uint32(v))
	_, err := w.Write(buf[:])
	return err
}

// WriteFloat32LE appends the bit pattern of v as four little-endian bytes.
func WriteFloat32LE(w io.Writer, v float32) error {
	var buf [4]byte
	putFloat32LE(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func float32LE(b []byte) float32 {
	return math.Float32frombits(le.Uint32(b))
}

func putFloat32LE(b []byte, v float32) {
	le.PutUint32(b, math.Float32bits(v))
}
