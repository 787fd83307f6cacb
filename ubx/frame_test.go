package ubx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_SyncFindsPreamble(t *testing.T) {
	assert := assert.New(t)
	window := make([]uint8, 2)
	assert.False(sync(window, 0x00))
	assert.False(sync(window[:2], sync1))
	assert.True(sync(window[:2], sync2))
}

func Test_ChecksumRoundTrip(t *testing.T) {
	assert := assert.New(t)
	buff := GenCfg("CFG-MSG 240 2 1 1 1 1 1 1")
	assert.NotNil(buff)
	assert.True(checksum(buff, len(buff)))

	buff[len(buff)-1] ^= 0xFF
	assert.False(checksum(buff, len(buff)))
}

func Test_InputFeedsForgedFrame(t *testing.T) {
	assert := assert.New(t)
	frame := GenCfg("CFG-RATE 1000 1 0")
	d := NewDecoder(Options{})

	var last Status
	for _, b := range frame {
		last = d.Input(b)
	}
	/* CFG-RATE isn't one of the inbound message types the decoder routes,
	* so a clean frame just falls through to StatusNone, not StatusError. */
	assert.Equal(StatusNone, last)
	assert.Equal(0, d.NumByte)
}

func Test_InputRejectsBadChecksum(t *testing.T) {
	assert := assert.New(t)
	frame := GenCfg("CFG-RATE 1000 1 0")
	frame[len(frame)-1] ^= 0xFF
	d := NewDecoder(Options{})

	var last Status
	for _, b := range frame {
		last = d.Input(b)
	}
	assert.Equal(StatusError, last)
}
