package gnssgo

import "math"

/* Gtime is GPS time expressed as whole seconds since the Unix epoch plus a
* sub-second fraction, so additions stay exact regardless of magnitude. */
type Gtime struct {
	Time uint64
	Sec  float64
}

var gpst0 = [6]float64{1980, 1, 6, 0, 0, 0}
var gst0 = [6]float64{1999, 8, 22, 0, 0, 0} /* galileo system time reference */
var bdt0 = [6]float64{2006, 1, 1, 0, 0, 0}  /* beidou time reference */

/* leap seconds table (y,m,d,h,m,s,utc-gpst), newest first. */
var leaps = [][7]float64{
	{2017, 1, 1, 0, 0, 0, -18},
	{2015, 7, 1, 0, 0, 0, -17},
	{2012, 7, 1, 0, 0, 0, -16},
	{2009, 1, 1, 0, 0, 0, -15},
	{2006, 1, 1, 0, 0, 0, -14},
	{1999, 1, 1, 0, 0, 0, -13},
}

func epoch2Time(ep [6]float64) Gtime {
	doy := [12]int{1, 32, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335}
	year, mon, day := int(ep[0]), int(ep[1]), int(ep[2])
	if year < 1970 || 2099 < year || mon < 1 || 12 < mon {
		return Gtime{}
	}
	var days int
	if year%4 == 0 && mon >= 3 {
		days = (year-1970)*365 + (year-1969)/4 + doy[mon-1] + day - 1
	} else {
		days = (year-1970)*365 + (year-1969)/4 + doy[mon-1] + day - 2
	}
	sec := int(math.Floor(ep[5]))
	return Gtime{
		Time: uint64(days*86400 + int(ep[3])*3600 + int(ep[4])*60 + sec),
		Sec:  ep[5] - float64(sec),
	}
}

/* GpsT2Time converts a GPS week and time-of-week to Gtime. */
func GpsT2Time(week int, sec float64) Gtime {
	t := epoch2Time(gpst0)
	if sec < -1e9 || 1e9 < sec {
		sec = 0
	}
	t.Time += uint64(86400*7*week) + uint64(sec)
	t.Sec = sec - float64(int(sec))
	return t
}

/* GsT2Time converts a Galileo system-time week and time-of-week to Gtime. */
func GsT2Time(week int, sec float64) Gtime {
	t := epoch2Time(gst0)
	if sec < -1e9 || 1e9 < sec {
		sec = 0
	}
	t.Time += uint64(86400*7*week) + uint64(sec)
	t.Sec = sec - float64(int(sec))
	return t
}

/* BDT2Time converts a BeiDou time week and time-of-week to Gtime. */
func BDT2Time(week int, sec float64) Gtime {
	t := epoch2Time(bdt0)
	if sec < -1e9 || 1e9 < sec {
		sec = 0
	}
	t.Time += uint64(86400*7*week) + uint64(sec)
	t.Sec = sec - float64(int(sec))
	return t
}

/* BDT2GpsT converts BeiDou time to GPS time (constant 14s leap offset). */
func BDT2GpsT(t Gtime) Gtime {
	return TimeAdd(t, 14.0)
}

/* Time2GpsT converts Gtime to GPS week and time-of-week. */
func Time2GpsT(t Gtime, week *int) float64 {
	t0 := epoch2Time(gpst0)
	sec := int64(t.Time) - int64(t0.Time)
	w := int(sec / (86400 * 7))
	if week != nil {
		*week = w
	}
	return float64(sec) - float64(w*86400*7) + t.Sec
}

/* TimeAdd returns t+sec, renormalizing the sub-second fraction. */
func TimeAdd(t Gtime, sec float64) Gtime {
	t.Sec += sec
	tt := math.Floor(t.Sec)
	t.Time += uint64(int64(tt))
	t.Sec -= tt
	return t
}

/* TimeDiff returns t1-t2 in seconds. */
func TimeDiff(t1, t2 Gtime) float64 {
	return float64(t1.Time) - float64(t2.Time) + t1.Sec - t2.Sec
}

/* GpsT2Utc converts GPS time to UTC by walking the leap-second table. */
func GpsT2Utc(t Gtime) Gtime {
	for _, l := range leaps {
		tu := TimeAdd(t, l[6])
		if TimeDiff(tu, epoch2Time([6]float64{l[0], l[1], l[2], l[3], l[4], l[5]})) >= 0.0 {
			return tu
		}
	}
	return t
}

/* Utc2GpsT converts UTC to GPS time by walking the leap-second table. */
func Utc2GpsT(t Gtime) Gtime {
	for _, l := range leaps {
		if TimeDiff(t, epoch2Time([6]float64{l[0], l[1], l[2], l[3], l[4], l[5]})) >= 0.0 {
			return TimeAdd(t, -l[6])
		}
	}
	return t
}
