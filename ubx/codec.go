package ubx

import (
	"encoding/binary"
	"math"
)

/* Little-endian field getters for the fixed-width integer and float types
* UBX payloads carry. */

func u1(p []uint8) uint8  { return p[0] }
func i1(p []uint8) int8   { return int8(p[0]) }
func u2l(p []uint8) uint16 { return binary.LittleEndian.Uint16(p) }
func u4l(p []uint8) uint32 { return binary.LittleEndian.Uint32(p) }
func i4l(p []uint8) int32  { return int32(binary.LittleEndian.Uint32(p)) }
func r4l(p []uint8) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(p))
}
func r8l(p []uint8) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(p))
}
func i8l(p []uint8) float64 { return float64(i4l(p[4:]))*4294967296.0 + float64(u4l(p)) }

/* Little-endian field setters, used by the CFG-* command generator. */

func setU1(p []uint8, v uint8)  { p[0] = v }
func setU2(p []uint8, v uint16) { binary.LittleEndian.PutUint16(p, v) }
func setU4(p []uint8, v uint32) { binary.LittleEndian.PutUint32(p, v) }
func setI1(p []uint8, v int8)   { p[0] = uint8(v) }
func setI2(p []uint8, v int16)  { binary.LittleEndian.PutUint16(p, uint16(v)) }
func setI4(p []uint8, v int32)  { binary.LittleEndian.PutUint32(p, uint32(v)) }
func setR4(p []uint8, v float32) {
	binary.LittleEndian.PutUint32(p, math.Float32bits(v))
}
func setR8(p []uint8, v float64) {
	binary.LittleEndian.PutUint64(p, math.Float64bits(v))
}

func roundI(x float64) int { return int(math.Floor(x + 0.5)) }
