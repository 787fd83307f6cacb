package gnssgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_CRC24QKnownZero(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint32(0), CRC24Q(nil))
}

func Test_CRC24QChangesWithInput(t *testing.T) {
	assert := assert.New(t)
	a := CRC24Q([]uint8{0x01, 0x02, 0x03})
	b := CRC24Q([]uint8{0x01, 0x02, 0x04})
	assert.NotEqual(a, b)
}
