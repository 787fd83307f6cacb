package ubx

import "github.com/GHolk/ubxgo/gnssgo"

const preambCnav = 0x8B

/* decodeNavGps reassembles one GPS/QZSS LNAV subframe out of a UBX-RXM-SFRBX
* or UBX-TRK-SFRBX payload and, on subframe 3/4/5, hands the accumulated
* subframes to gnssgo for ephemeris/ion/utc decoding. */
func (d *Decoder) decodeNavGps(sat, off int) Status {
	p := 6 + off
	buff := d.Buff[:d.Len]

	if d.Len < 48+off {
		gnssgo.Tracef(2, "ubx", nil, "rxmsfrbx nav length error: sat=%d len=%d", sat, d.Len)
		return StatusError
	}
	if u4l(buff[p:])>>24 == preambCnav {
		gnssgo.Tracef(3, "ubx", nil, "rxmsfrbx nav unsupported sat=%d len=%d", sat, d.Len)
		return StatusNone
	}

	var sf [30]uint8
	for i := 0; i < 10; i, p = i+1, p+4 {
		gnssgo.SetBitU(sf[:], 24*i, 24, u4l(buff[p:])>>6)
	}
	id := int(gnssgo.GetBitU(sf[:], 43, 3))
	if id < 1 || id > 5 {
		gnssgo.Tracef(2, "ubx", nil, "rxmsfrbx nav subframe id error: sat=%d id=%d", sat, id)
		return StatusError
	}
	copy(d.SubFrm[sat-1][(id-1)*30:], sf[:30])

	switch id {
	case 3:
		return d.decodeEphGps(sat)
	case 4, 5:
		return d.decodeIonUtcGps(sat)
	}
	return StatusNone
}

/* decodeEphGps finalizes a GPS/QZSS ephemeris once subframes 1-3 have been
* reassembled. */
func (d *Decoder) decodeEphGps(sat int) Status {
	var eph gnssgo.Eph
	if !gnssgo.DecodeFrame(d.SubFrm[sat-1][:], &eph, nil, nil) {
		return StatusNone
	}
	if !d.Opt.EphAll {
		if prev, ok := d.NavData.EphOfSat(sat); ok &&
			eph.Iode == prev.Iode && eph.Iodc == prev.Iodc &&
			gnssgo.TimeDiff(eph.Toe, prev.Toe) == 0.0 &&
			gnssgo.TimeDiff(eph.Toc, prev.Toc) == 0.0 {
			return StatusNone
		}
	}
	eph.Sat = sat
	d.NavData.AddEph(eph)
	d.EphSat = sat
	d.EphSet = 0
	return StatusEph
}

/* decodeIonUtcGps finalizes the GPS/QZSS ionosphere and UTC parameter sets
* broadcast in subframes 4/5. */
func (d *Decoder) decodeIonUtcGps(sat int) Status {
	var ion, utc [8]float64
	sys := gnssSysOfSat(sat)

	if !gnssgo.DecodeFrame(d.SubFrm[sat-1][:], nil, &ion, &utc) {
		return StatusNone
	}
	if sys == gnssgo.SYS_QZS {
		d.NavData.IonQzs = ion
		d.NavData.UtcQzs = utc
	} else {
		d.NavData.IonGps = ion
		d.NavData.UtcGps = utc
	}
	return StatusIonUtc
}

/* gnssSysOfSat recovers the constellation a satellite number belongs to,
* the inverse of gnssgo.SatNo over the five supported systems. */
func gnssSysOfSat(sat int) int {
	sys, _ := satSysPrn(sat)
	return sys
}

/* satSysPrn is the inverse of gnssgo.SatNo: given an internal satellite
* number it returns the constellation and the original PRN/slot number. */
func satSysPrn(sat int) (sys, prn int) {
	switch {
	case sat <= gnssgo.NSATGPS:
		return gnssgo.SYS_GPS, sat - 0 + gnssgo.MINPRNGPS - 1
	case sat <= gnssgo.NSATGPS+gnssgo.NSATGLO:
		return gnssgo.SYS_GLO, sat - gnssgo.NSATGPS + gnssgo.MINPRNGLO - 1
	case sat <= gnssgo.NSATGPS+gnssgo.NSATGLO+gnssgo.NSATGAL:
		return gnssgo.SYS_GAL, sat - gnssgo.NSATGPS - gnssgo.NSATGLO + gnssgo.MINPRNGAL - 1
	case sat <= gnssgo.NSATGPS+gnssgo.NSATGLO+gnssgo.NSATGAL+gnssgo.NSATQZS:
		return gnssgo.SYS_QZS, sat - gnssgo.NSATGPS - gnssgo.NSATGLO - gnssgo.NSATGAL + gnssgo.MINPRNQZS - 1
	case sat <= gnssgo.NSATGPS+gnssgo.NSATGLO+gnssgo.NSATGAL+gnssgo.NSATQZS+gnssgo.NSATCMP:
		return gnssgo.SYS_CMP, sat - gnssgo.NSATGPS - gnssgo.NSATGLO - gnssgo.NSATGAL - gnssgo.NSATQZS + gnssgo.MINPRNCMP - 1
	}
	return gnssgo.SYS_SBS, sat - gnssgo.NSATGPS - gnssgo.NSATGLO - gnssgo.NSATGAL - gnssgo.NSATQZS - gnssgo.NSATCMP + gnssgo.MINPRNSBS - 1
}
