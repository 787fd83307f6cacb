package gnssgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_GpsTimeRoundTrip(t *testing.T) {
	assert := assert.New(t)
	time := GpsT2Time(2100, 123456.5)
	var week int
	sec := Time2GpsT(time, &week)
	assert.Equal(2100, week)
	assert.InDelta(123456.5, sec, 1e-9)
}

func Test_TimeAddDiff(t *testing.T) {
	assert := assert.New(t)
	t0 := GpsT2Time(2000, 0.0)
	t1 := TimeAdd(t0, 90.25)
	assert.InDelta(90.25, TimeDiff(t1, t0), 1e-9)
}

func Test_GpsUtcRoundTrip(t *testing.T) {
	assert := assert.New(t)
	gps := GpsT2Time(2200, 500000.0)
	utc := GpsT2Utc(gps)
	back := Utc2GpsT(utc)
	assert.InDelta(0.0, TimeDiff(back, gps), 1e-6)
}

func Test_BDT2GpsTOffset(t *testing.T) {
	assert := assert.New(t)
	bdt := BDT2Time(800, 1000.0)
	gps := BDT2GpsT(bdt)
	assert.InDelta(14.0, TimeDiff(gps, bdt), 1e-9)
}
