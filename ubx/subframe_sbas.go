package ubx

import "github.com/GHolk/ubxgo/gnssgo"

/* decodeNavSbas copies an SBAS 250-bit long message out of a UBX-RXM-SFRBX
* payload; SBAS messages carry no subframe id, only a type field the caller
* decodes later. */
func (d *Decoder) decodeNavSbas(prn, off int) Status {
	p := 6 + off
	buff := d.Buff[:d.Len]

	if d.Len < 40+off {
		gnssgo.Tracef(2, "ubx", nil, "rxmsfrbx snav length error: len=%d", d.Len)
		return StatusError
	}
	var week int
	tow := int(gnssgo.Time2GpsT(gnssgo.TimeAdd(d.Time, -1.0), &week))
	d.Sbsmsg.Prn = uint8(prn)
	d.Sbsmsg.Tow = tow
	d.Sbsmsg.Week = week

	var raw [32]uint8
	for i := 0; i < 8; i, p = i+1, p+4 {
		gnssgo.SetBitU(raw[:], 32*i, 32, u4l(buff[p:]))
	}
	copy(d.Sbsmsg.Msg[:], raw[:29])
	d.Sbsmsg.Msg[28] &= 0xC0
	return StatusSbas
}

/* decodeRxmSfrbx decodes UBX-RXM-SFRBX, routing to the per-constellation
* subframe reassembler by GNSS id. */
func (d *Decoder) decodeRxmSfrbx() Status {
	return d.decodeSfrbx(8)
}

/* decodeTrkSfrbx is the unofficial UBX-TRK-SFRBX variant of RXM-SFRBX: its
* gnssId/svId/freqId fields sit one byte later and its data words start
* after a 13-byte header instead of 8. */
func (d *Decoder) decodeTrkSfrbx() Status {
	return d.decodeSfrbx(13)
}

func (d *Decoder) decodeSfrbx(hdr int) Status {
	p := 6
	buff := d.Buff[:d.Len]
	gidOff, prnOff := 0, 1
	if hdr == 13 {
		gidOff, prnOff = 1, 2
	}

	sys := ubxSys(int(buff[p+gidOff]))
	if sys == 0 {
		gnssgo.Tracef(2, "ubx", nil, "sfrbx sys id error: sys=%d", buff[p+gidOff])
		return StatusError
	}
	var prn int
	if sys == gnssgo.SYS_QZS {
		prn = int(buff[p+prnOff]) + 192
	} else {
		prn = int(buff[p+prnOff])
	}
	sat := gnssgo.SatNo(sys, prn)
	if sat == 0 {
		if sys == gnssgo.SYS_GLO && prn == 255 {
			return StatusNone /* unknown GLONASS slot, not an error */
		}
		gnssgo.Tracef(2, "ubx", nil, "sfrbx sat number error: sys=%d prn=%d", sys, prn)
		return StatusError
	}
	if hdr == 8 && sys == gnssgo.SYS_QZS && d.Len == 52 { /* QZSS L1S */
		sys = gnssgo.SYS_SBS
		prn -= 10
	}

	switch sys {
	case gnssgo.SYS_GPS, gnssgo.SYS_QZS:
		d.MsgType = "RXM-SFRBX"
		return d.decodeNavGps(sat, hdr)
	case gnssgo.SYS_GAL:
		d.MsgType = "RXM-SFRBX"
		return d.decodeNavGal(sat, hdr)
	case gnssgo.SYS_CMP:
		d.MsgType = "RXM-SFRBX"
		return d.decodeNavBds(sat, hdr)
	case gnssgo.SYS_GLO:
		frqOff := 3
		if hdr == 13 {
			frqOff = 4
		}
		d.MsgType = "RXM-SFRBX"
		return d.decodeNavGlo(sat, hdr, int(buff[p+frqOff]))
	case gnssgo.SYS_SBS:
		d.MsgType = "RXM-SFRBX"
		return d.decodeNavSbas(prn, hdr)
	}
	return StatusNone
}

/* decodeRxmSfrb decodes UBX-RXM-SFRB, the legacy GPS/SBAS subframe-buffer
* message. */
func (d *Decoder) decodeRxmSfrb() Status {
	const p0 = 6
	buff := d.Buff[:d.Len]
	d.MsgType = "RXM-SFRB"

	if d.Len < 42 {
		gnssgo.Tracef(2, "ubx", nil, "rxmsfrb length error: len=%d", d.Len)
		return StatusError
	}
	prn := int(u1(buff[p0+1:]))
	sys := gnssgo.SYS_GPS
	if prn >= gnssgo.MINPRNSBS {
		sys = gnssgo.SYS_SBS
	}
	sat := gnssgo.SatNo(sys, prn)
	if sat == 0 {
		gnssgo.Tracef(2, "ubx", nil, "rxmsfrb satellite error: prn=%d", prn)
		return StatusError
	}

	if sys == gnssgo.SYS_GPS {
		var sf [30]uint8
		p := p0 + 2
		for i := 0; i < 10; i, p = i+1, p+4 {
			gnssgo.SetBitU(sf[:], 24*i, 24, u4l(buff[p:]))
		}
		id := int(gnssgo.GetBitU(sf[:], 43, 3))
		if id >= 1 && id <= 5 {
			copy(d.SubFrm[sat-1][(id-1)*30:], sf[:30])
			switch id {
			case 3:
				return d.decodeEphGps(sat)
			case 4:
				return d.decodeIonUtcGps(sat)
			}
		}
		return StatusNone
	}

	var words [10]uint32
	p := p0 + 2
	for i := 0; i < 10; i, p = i+1, p+4 {
		words[i] = u4l(buff[p:])
	}
	if !gnssgo.SbsDecodeMsg(d.Time, prn, words, &d.Sbsmsg) {
		return StatusNone
	}
	return StatusSbas
}
