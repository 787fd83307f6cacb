package ubx

import (
	"math"

	"github.com/GHolk/ubxgo/gnssgo"
)

/* decodeRxmRaw decodes UBX-RXM-RAW, the legacy single-frequency GPS/SBAS raw
* measurement message. */
func (d *Decoder) decodeRxmRaw() Status {
	const p0 = 6
	buff := d.Buff[:d.Len]

	nsat := int(u1(buff[p0+6:]))
	if d.Len < 12+24*nsat {
		gnssgo.Tracef(2, "ubx", nil, "rxmraw length error: len=%d nsat=%d", d.Len, nsat)
		return StatusError
	}

	tow := float64(u4l(buff[p0:]))
	week := int(u2l(buff[p0+4:]))
	time := gnssgo.GpsT2Time(week, tow*0.001)

	if week == 0 {
		gnssgo.Tracef(3, "ubx", nil, "rxmraw week=0 error: len=%d nsat=%d", d.Len, nsat)
		return StatusNone
	}

	var toff float64
	if d.Opt.Tadj > 0.0 {
		var w int
		tn := gnssgo.Time2GpsT(time, &w) / d.Opt.Tadj
		toff = (tn - math.Floor(tn+0.5)) * d.Opt.Tadj
		time = gnssgo.TimeAdd(time, -toff)
	}
	tt := gnssgo.TimeDiff(time, d.Time)

	d.ObsData.Data = d.ObsData.Data[:0]
	for i, p := 0, p0+8; i < nsat && i < gnssgo.MAXOBS; i, p = i+1, p+24 {
		var o gnssgo.ObsD
		o.Time = time
		o.L[0] = r8l(buff[p:]) - toff*gnssgo.FREQ1
		o.P[0] = r8l(buff[p+8:]) - toff*gnssgo.CLIGHT
		o.D[0] = r4l(buff[p+16:])
		prn := int(u1(buff[p+20:]))
		o.SNR[0] = uint16(float64(i1(buff[p+22:]))*1.0/gnssgo.SNR_UNIT + 0.5)
		o.LLI[0] = u1(buff[p+23:])
		o.Code[0] = gnssgo.CODE_L1C

		if d.Opt.InvCp {
			o.L[0] = -o.L[0]
		}
		sys := gnssgo.SYS_GPS
		if prn >= gnssgo.MINPRNSBS {
			sys = gnssgo.SYS_SBS
		}
		sat := gnssgo.SatNo(sys, prn)
		if sat == 0 {
			gnssgo.Tracef(2, "ubx", nil, "rxmraw sat number error: prn=%d", prn)
			continue
		}
		o.Sat = uint8(sat)

		if o.LLI[0]&gnssgo.LLI_SLIP > 0 {
			d.LockTime[sat-1][0] = 0.0
		} else if tt < 1.0 || 10.0 < tt {
			d.LockTime[sat-1][0] = 0.0
		} else {
			d.LockTime[sat-1][0] += tt
		}
		d.ObsData.AddObsData(o)
	}
	d.Time = time
	d.MsgType = "RXM-RAW"
	return StatusObs
}
