package ubx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_GenCfgMsgFieldLayout(t *testing.T) {
	assert := assert.New(t)
	buff := GenCfg("CFG-MSG 240 2 1 1 1 1 1 1")
	assert.NotNil(buff)
	assert.Equal(uint8(sync1), buff[0])
	assert.Equal(uint8(sync2), buff[1])
	assert.Equal(uint8(ubxCfg), buff[2])
	assert.Equal(cfgID[2], buff[3]) /* MSG */
	assert.Equal(uint8(240), buff[6])
	assert.Equal(uint8(2), buff[7])
}

func Test_GenCfgUnknownCommand(t *testing.T) {
	assert := assert.New(t)
	assert.Nil(GenCfg("CFG-NOSUCHTHING 1 2 3"))
	assert.Nil(GenCfg("NOT-A-CFG-MESSAGE"))
}

func Test_StoiHexAndDecimal(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(255, stoi("0xFF"))
	assert.Equal(42, stoi("42"))
}

func Test_GenValsetUnknownKey(t *testing.T) {
	assert := assert.New(t)
	_, err := GenValset(0, LayerRAM, "CFG-NOT-A-KEY", 1)
	assert.Error(err)
}

func Test_GenValsetKnownKeyRoundTrip(t *testing.T) {
	assert := assert.New(t)
	buff, err := GenValset(0, LayerRAM, "CFG-RATE-MEAS", 200)
	assert.NoError(err)
	assert.True(checksum(buff, len(buff)))

	key := valsetKeys["CFG-RATE-MEAS"]
	assert.Equal(key.id, u4l(buff[10:])) /* buff[6:10] is the version/layer/reserved header */
	assert.Equal(uint16(200), u2l(buff[14:]))
}

func Test_GenValsetCmdRoundTrip(t *testing.T) {
	assert := assert.New(t)
	buff := GenCfg("CFG-VALSET CFG-RATE-MEAS 200")
	assert.NotNil(buff)
	assert.True(checksum(buff, len(buff)))
	assert.Equal(uint8(valsetID), buff[3])

	key := valsetKeys["CFG-RATE-MEAS"]
	assert.Equal(key.id, u4l(buff[10:]))
	assert.Equal(uint16(200), u2l(buff[14:]))
}
