package ubx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DecodeRxmRawWeekZeroIsSuppressed(t *testing.T) {
	assert := assert.New(t)
	d := NewDecoder(Options{})
	d.Len = 14 /* header + nsat=0, no observations */
	/* tow, week, nsat all left zero */
	status := d.decodeRxmRaw()
	assert.Equal(StatusNone, status)
}

func Test_DecodeRxmRawAcceptsValidWeek(t *testing.T) {
	assert := assert.New(t)
	d := NewDecoder(Options{})
	d.Len = 14
	setU4(d.Buff[6:], 100000) /* tow = 100s */
	setU2(d.Buff[10:], 2100)  /* week */
	d.Buff[12] = 0            /* nsat */

	status := d.decodeRxmRaw()
	assert.Equal(StatusObs, status)
	assert.NotZero(d.Time.Time)
}

func Test_DecodeRxmRawxRejectsShortFrame(t *testing.T) {
	assert := assert.New(t)
	d := NewDecoder(Options{})
	d.Len = 10 /* below the 24-byte minimum */
	status := d.decodeRxmRawx()
	assert.Equal(StatusError, status)
}

func Test_SigIdxRejectsUnmappedCode(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(-1, sigIdx(0, 0xFF))
}
