package gnssgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_GetBitURoundTrip(t *testing.T) {
	assert := assert.New(t)
	buff := make([]uint8, 8)
	SetBitU(buff, 3, 10, 0x2A5)
	assert.Equal(uint32(0x2A5), GetBitU(buff, 3, 10))
}

func Test_GetBitsSignExtends(t *testing.T) {
	assert := assert.New(t)
	buff := make([]uint8, 4)
	SetBits(buff, 0, 8, -5)
	assert.Equal(int32(-5), GetBits(buff, 0, 8))
}

func Test_GetBitGSignMagnitude(t *testing.T) {
	assert := assert.New(t)
	buff := make([]uint8, 4)
	SetBitU(buff, 0, 1, 1) /* sign bit set: negative */
	SetBitU(buff, 1, 7, 42)
	assert.Equal(-42.0, getBitG(buff, 0, 8))
}

func Test_MergeTwoSpansWordBoundary(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint32(0x1FF), mergeTwoU(0x1, 0xFF, 8))
	assert.Equal(int32(-1), mergeTwoS(-1, 0xFF, 8))
}

func Test_GetBitU2Ranges(t *testing.T) {
	assert := assert.New(t)
	buff := make([]uint8, 8)
	SetBitU(buff, 0, 4, 0xA)
	SetBitU(buff, 10, 4, 0x5)
	assert.Equal(uint32(0xA5), getBitU2(buff, 0, 4, 10, 4))
}
