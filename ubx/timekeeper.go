package ubx

import "github.com/GHolk/ubxgo/gnssgo"

/* decodeNavSol accepts a UBX-NAV-SOL solution's time tag as the decoder's
* current-time reference once the fix has both week number and time-of-week
* validity flags set. */
func (d *Decoder) decodeNavSol() Status {
	const p0 = 6
	buff := d.Buff[:d.Len]

	itow := int(u4l(buff[p0:]))
	ftow := int(i4l(buff[p0+4:]))
	week := int(u2l(buff[p0+8:]))
	if u1(buff[p0+11:])&0x0C == 0x0C {
		d.Time = gnssgo.GpsT2Time(week, float64(itow)*1e-3+float64(ftow)*1e-9)
	}
	d.MsgType = "NAV-SOL"
	return StatusNone
}

/* decodeNavTime is the UBX-NAV-TIMEGPS counterpart of decodeNavSol. */
func (d *Decoder) decodeNavTime() Status {
	const p0 = 6
	buff := d.Buff[:d.Len]

	itow := int(u4l(buff[p0:]))
	ftow := int(i4l(buff[p0+4:]))
	week := int(u2l(buff[p0+8:]))
	if u1(buff[p0+11:])&0x03 == 0x03 {
		d.Time = gnssgo.GpsT2Time(week, float64(itow)*1e-3+float64(ftow)*1e-9)
	}
	d.MsgType = "NAV-TIMEGPS"
	return StatusNone
}
