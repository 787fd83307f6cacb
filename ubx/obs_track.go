package ubx

import "github.com/GHolk/ubxgo/gnssgo"

const (
	p2_10 = 0.0009765625        /* 2^-10 */
	p2_32 = 2.328306436538696e-10 /* 2^-32 */
)

/* GLONASS code-bias correction (m) applied to TRK-MEAS pseudoranges, keyed
* by -TRKM_ADJ (2: firmware 2.0x, 3: firmware 3.0x) and indexed by the
* channel's raw frq byte (fcn+7, 0..13). */
var trkmAdjTable = map[int][14]float64{
	2: {-60.0, -60.0, -35.0, -10.0, -10.0, 0.0, 0.0, 0.0, -10.0, -55.0, 0.0, 0.0, 0.0, 0.0},
	3: {-60.0, -60.0, -60.0, -45.0, -20.0, -10.0, 10.0, 0.0, -20.0, -10.0, -20.0, -10.0, 0.0, 0.0},
}

/* decodeTrkMeas decodes the undocumented UBX-TRK-MEAS tracker dump (NEO-M8N,
* firmware 2.01) into single-frequency observations, applying the
* -TRKM_ADJ GLONASS code-bias correction when set. */
func (d *Decoder) decodeTrkMeas() Status {
	const p0 = 6
	buff := d.Buff[:d.Len]
	d.MsgType = "TRK-MEAS"

	if d.Time.Time == 0 {
		return StatusNone
	}
	nch := int(u1(buff[p0+2:]))
	if d.Len < 112+nch*56 {
		gnssgo.Tracef(2, "ubx", nil, "trkmeas length error: len=%d nch=%d", d.Len, nch)
		return StatusError
	}

	tr := -1.0
	for p := p0 + 110; ; p += 56 {
		if p >= p0+110+nch*56 {
			break
		}
		if u1(buff[p+1:]) < 4 || ubxSys(int(u1(buff[p+4:]))) != gnssgo.SYS_GPS {
			continue
		}
		if t := i8l(buff[p+24:]) * p2_32 / 1000.0; t > tr {
			tr = t
		}
	}
	if tr < 0.0 {
		return StatusNone
	}
	tr = float64(roundI((tr+0.08)/0.1)) * 0.1

	var week int
	t := gnssgo.Time2GpsT(d.Time, &week)
	if tr < t-302400.0 {
		week++
	} else if tr > t+302400.0 {
		week--
	}
	time := gnssgo.GpsT2Time(week, tr)
	utcGpst := gnssgo.TimeDiff(gnssgo.GpsT2Utc(time), time)

	d.ObsData.Data = d.ObsData.Data[:0]

	for p := p0 + 110; p < p0+110+nch*56; p += 56 {
		qi := int(u1(buff[p+1:]))
		if qi < 4 || qi > 7 {
			continue
		}
		sys := ubxSys(int(u1(buff[p+4:])))
		if sys == 0 {
			gnssgo.Tracef(2, "ubx", nil, "trkmeas: system error")
			continue
		}
		prn := int(u1(buff[p+5:]))
		if sys == gnssgo.SYS_QZS {
			prn += 192
		}
		sat := gnssgo.SatNo(sys, prn)
		if sat == 0 {
			gnssgo.Tracef(2, "ubx", nil, "trkmeas sat number error: sys=%d prn=%d", sys, prn)
			continue
		}

		ts := i8l(buff[p+24:]) * p2_32 / 1000.0
		switch sys {
		case gnssgo.SYS_CMP:
			ts += 14.0
		case gnssgo.SYS_GLO:
			ts -= 10800.0 + utcGpst
		}
		tau := tr - ts
		if tau < -302400.0 {
			tau += 604800.0
		} else if tau > 302400.0 {
			tau -= 604800.0
		}

		flag := int(u1(buff[p+8:]))
		lock2 := int(u1(buff[p+17:]))
		snr := float64(u2l(buff[p+20:])) / 256.0
		var adr float64
		if flag&0x40 > 0 {
			adr = i8l(buff[p+32:])*p2_32 + 0.5
		} else {
			adr = i8l(buff[p+32:]) * p2_32
		}
		dop := float64(i4l(buff[p+40:])) * p2_10 * 10.0

		var slip bool
		if lock2 == 0 || float64(lock2) < d.LockTime[sat-1][0] {
			slip = true
		}
		d.LockTime[sat-1][0] = float64(lock2)

		if flag&0x20 == 0 { /* phase lock not held */
			continue
		}

		var o gnssgo.ObsD
		o.Time = time
		o.Sat = uint8(sat)
		o.P[0] = tau * gnssgo.CLIGHT
		if sys == gnssgo.SYS_GLO {
			if table, ok := trkmAdjTable[d.Opt.TrkmAdj]; ok {
				if frq := int(u1(buff[p+7:])); frq < len(table) {
					o.P[0] += table[frq]
				}
			}
		}
		o.L[0] = -adr
		o.D[0] = float32(dop)
		o.SNR[0] = uint16(snr/gnssgo.SNR_UNIT + 0.5)
		if sys == gnssgo.SYS_CMP {
			o.Code[0] = gnssgo.CODE_L2I
		} else {
			o.Code[0] = gnssgo.CODE_L1C
		}
		if slip {
			o.LLI[0] = gnssgo.LLI_SLIP
		}
		if sys == gnssgo.SYS_SBS {
			if lock2 <= 142 {
				o.LLI[0] |= gnssgo.LLI_HALFC
			}
		} else if flag&0x80 == 0 {
			o.LLI[0] |= gnssgo.LLI_HALFC
		}
		d.ObsData.AddObsData(o)
	}
	if len(d.ObsData.Data) == 0 {
		return StatusNone
	}
	d.Time = time
	return StatusObs
}

/* decodeTrkD5 decodes the undocumented UBX-TRK-D5 tracker dump (NEO-7N,
* firmware 1.00). */
func (d *Decoder) decodeTrkD5() Status {
	const p0 = 6
	buff := d.Buff[:d.Len]
	d.MsgType = "TRK-D5"

	if d.Time.Time == 0 {
		return StatusNone
	}
	utcGpst := gnssgo.TimeDiff(gnssgo.GpsT2Utc(d.Time), d.Time)

	ctype := int(u1(buff[p0:]))
	var off, length int
	switch ctype {
	case 3:
		off, length = 86, 56
	case 6:
		off, length = 86, 64
	default:
		off, length = 78, 56
	}

	tr := -1.0
	for p := off; p < d.Len-2; p += length {
		qi := int(u1(buff[p+41:])) & 7
		if qi < 4 || qi > 7 {
			continue
		}
		t := i8l(buff[p:]) * p2_32 / 1000.0
		if ubxSys(int(u1(buff[p+56:]))) == gnssgo.SYS_GLO {
			t -= 10800.0 + utcGpst
		}
		if t > tr {
			tr = t
			break
		}
	}
	if tr < 0.0 {
		return StatusNone
	}
	tr = float64(roundI((tr+0.08)/0.1)) * 0.1

	var week int
	t := gnssgo.Time2GpsT(d.Time, &week)
	if tr < t-302400.0 {
		week++
	} else if tr > t+302400.0 {
		week--
	}
	time := gnssgo.GpsT2Time(week, tr)

	d.ObsData.Data = d.ObsData.Data[:0]

	for p := off; p < d.Len-2; p += length {
		qi := int(u1(buff[p+41:])) & 7
		if qi < 4 || qi > 7 {
			continue
		}
		var sys, prn int
		if ctype == 6 {
			sys = ubxSys(int(u1(buff[p+56:])))
			if sys == 0 {
				gnssgo.Tracef(2, "ubx", nil, "trkd5: system error")
				continue
			}
			prn = int(u1(buff[p+57:]))
			if sys == gnssgo.SYS_QZS {
				prn += 192
			}
		} else {
			prn = int(u1(buff[p+34:]))
			if prn < gnssgo.MINPRNSBS {
				sys = gnssgo.SYS_GPS
			} else {
				sys = gnssgo.SYS_SBS
			}
		}
		sat := gnssgo.SatNo(sys, prn)
		if sat == 0 {
			gnssgo.Tracef(2, "ubx", nil, "trkd5 sat number error: sys=%d prn=%d", sys, prn)
			continue
		}

		ts := i8l(buff[p:]) * p2_32 / 1000.0
		if sys == gnssgo.SYS_GLO {
			ts -= 10800.0 + utcGpst
		}
		tau := tr - ts
		if tau < -302400.0 {
			tau += 604800.0
		} else if tau > 302400.0 {
			tau -= 604800.0
		}

		flag := int(u1(buff[p+54:]))
		var adr float64
		if qi >= 6 {
			adr = i8l(buff[p+8:]) * p2_32
		}
		if flag&0x01 == 0 {
			adr += 0.5
		}
		dop := float64(i4l(buff[p+16:])) * p2_10 / 4.0
		snr := float64(u2l(buff[p+32:])) / 256.0

		var o gnssgo.ObsD
		o.Time = time
		o.Sat = uint8(sat)
		o.P[0] = tau * gnssgo.CLIGHT
		o.L[0] = -adr
		o.D[0] = float32(dop)
		o.SNR[0] = uint16(snr/gnssgo.SNR_UNIT + 0.5)
		if sys == gnssgo.SYS_CMP {
			o.Code[0] = gnssgo.CODE_L2I
		} else {
			o.Code[0] = gnssgo.CODE_L1C
		}
		if snr <= 10.0 {
			o.LLI[0] = gnssgo.LLI_SLIP
		}
		d.ObsData.AddObsData(o)
	}
	if len(d.ObsData.Data) == 0 {
		return StatusNone
	}
	d.Time = time
	return StatusObs
}
