package ubx

import (
	"math"

	"github.com/GHolk/ubxgo/gnssgo"
)

/* decodeRxmRawx decodes UBX-RXM-RAWX, the multi-GNSS raw measurement
* message. */
func (d *Decoder) decodeRxmRawx() Status {
	const p0 = 6
	buff := d.Buff[:d.Len]

	if d.Len < 24 {
		gnssgo.Tracef(2, "ubx", nil, "rxmrawx length error: len=%d", d.Len)
		return StatusError
	}
	tow := r8l(buff[p0:])
	week := int(u2l(buff[p0+8:]))
	nmeas := int(u1(buff[p0+11:]))
	ver := int(u1(buff[p0+13:]))

	if d.Len < 24+32*nmeas {
		gnssgo.Tracef(2, "ubx", nil, "rxmrawx length error: len=%d nmeas=%d", d.Len, nmeas)
		return StatusError
	}
	if week == 0 {
		gnssgo.Tracef(3, "ubx", nil, "rxmrawx week=0 error: len=%d nmeas=%d", d.Len, nmeas)
		return StatusNone
	}
	time := gnssgo.GpsT2Time(week, tow)

	var toff float64
	if d.Opt.Tadj > 0.0 {
		var w int
		tn := gnssgo.Time2GpsT(time, &w) / d.Opt.Tadj
		toff = (tn - math.Floor(tn+0.5)) * d.Opt.Tadj
		time = gnssgo.TimeAdd(time, -toff)
	}

	maxStdCp := d.Opt.MaxStdCp
	if maxStdCp == 0 {
		maxStdCp = cpstdValid
	}

	d.ObsData.Data = d.ObsData.Data[:0]

	for i, p := 0, p0+16; i < nmeas && len(d.ObsData.Data) < gnssgo.MAXOBS; i, p = i+1, p+32 {
		prMes := r8l(buff[p:])
		cpMes := r8l(buff[p+8:])
		doMes := r4l(buff[p+16:])
		gnssID := int(u1(buff[p+20:]))
		svID := int(u1(buff[p+21:]))
		sigID := int(u1(buff[p+22:]))
		freqID := int(u1(buff[p+23:]))
		lockt := int(u2l(buff[p+24:]))
		cn0 := int(u1(buff[p+26:]))
		cpstd := int(u1(buff[p+28:])) & 15
		trkStat := int(u1(buff[p+30:]))

		if trkStat&1 == 0 {
			prMes = 0.0
		}
		if trkStat&2 == 0 || cpMes == -0.5 || cpstd > maxStdCp {
			cpMes = 0.0
		}

		sys := ubxSys(gnssID)
		if sys == 0 {
			gnssgo.Tracef(2, "ubx", nil, "rxmrawx: system error gnss=%d", gnssID)
			continue
		}
		prn := svID
		if sys == gnssgo.SYS_QZS {
			prn = svID + 192
		}
		sat := gnssgo.SatNo(sys, prn)
		if sat == 0 {
			if sys == gnssgo.SYS_GLO && prn == 255 {
				continue
			}
			gnssgo.Tracef(2, "ubx", nil, "rxmrawx sat number error: sys=%d prn=%d", sys, prn)
			continue
		}
		if sys == gnssgo.SYS_GLO && d.NavData.GloFcn[prn-1] == 0 {
			d.NavData.GloFcn[prn-1] = freqID - 7 + 8
		}

		var code uint8
		if ver >= 1 {
			code = ubxSig(sys, sigID)
		} else {
			switch sys {
			case gnssgo.SYS_CMP:
				code = gnssgo.CODE_L2I
			case gnssgo.SYS_GAL:
				code = gnssgo.CODE_L1X
			default:
				code = gnssgo.CODE_L1C
			}
		}
		idx := sigIdx(sys, code)
		if idx < 0 {
			gnssgo.Tracef(2, "ubx", nil, "rxmrawx signal error: sat=%d sigid=%d", sat, sigID)
			continue
		}
		if toff != 0.0 {
			prMes -= toff * gnssgo.CLIGHT
			cpMes -= toff * gnssgo.Code2Freq(sys, code, freqID-7)
		}
		/* half-cycle shift correction for BDS GEO */
		if sys == gnssgo.SYS_CMP && (prn <= 5 || prn >= 59) && cpMes != 0.0 {
			cpMes += 0.5
		}
		halfv := trkStat&4 != 0
		halfc := trkStat&8 != 0

		slip := lockt == 0 || float64(lockt)*1e-3 < d.LockTime[sat-1][idx] ||
			halfc != (d.Halfc[sat-1][idx] != 0) ||
			(d.Opt.StdSlip > 0 && cpstd >= d.Opt.StdSlip)

		d.LockTime[sat-1][idx] = float64(lockt) * 1e-3
		if halfc {
			d.Halfc[sat-1][idx] = 1
		} else {
			d.Halfc[sat-1][idx] = 0
		}

		var lli uint8
		if slip {
			lli = gnssgo.LLI_SLIP
		}
		if !halfv {
			lli |= gnssgo.LLI_HALFC
		}

		j := -1
		for k := range d.ObsData.Data {
			if d.ObsData.Data[k].Sat == uint8(sat) {
				j = k
				break
			}
		}
		if j < 0 {
			var o gnssgo.ObsD
			o.Time = time
			o.Sat = uint8(sat)
			d.ObsData.AddObsData(o)
			j = len(d.ObsData.Data) - 1
		}
		d.ObsData.Data[j].L[idx] = cpMes
		d.ObsData.Data[j].P[idx] = prMes
		d.ObsData.Data[j].D[idx] = doMes
		d.ObsData.Data[j].SNR[idx] = uint16(float64(cn0)*1.0/gnssgo.SNR_UNIT + 0.5)
		d.ObsData.Data[j].LLI[idx] = lli
		d.ObsData.Data[j].Code[idx] = code
	}
	d.Time = time
	d.MsgType = "RXM-RAWX"
	return StatusObs
}
