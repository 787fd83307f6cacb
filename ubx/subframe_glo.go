package ubx

import "github.com/GHolk/ubxgo/gnssgo"

/* decodeNavGlo reassembles a GLONASS navigation string out of a
* UBX-RXM-SFRBX or UBX-TRK-SFRBX payload, tracking the frame ID so that a
* frame-ID change clears strings 1-4 of the earlier frame instead of
* stitching their stale bytes into the new frame. */
func (d *Decoder) decodeNavGlo(sat, off, frq int) Status {
	p := 6 + off
	buff := d.Buff[:d.Len]

	if d.Len < 24+off {
		gnssgo.Tracef(2, "ubx", nil, "rxmsfrbx gnav length error: len=%d", d.Len)
		return StatusError
	}
	var str [16]uint8
	k := 0
	for i := 0; i < 4; i, p = i+1, p+4 {
		for j := 0; j < 4; j++ {
			str[k] = buff[p+3-j]
			k++
		}
	}
	if !gnssgo.TestGloStr(str[:]) {
		gnssgo.Tracef(2, "ubx", nil, "rxmsfrbx gnav hamming error: sat=%d", sat)
		return StatusError
	}
	m := int(gnssgo.GetBitU(str[:], 1, 4))
	if m < 1 || m > 15 {
		gnssgo.Tracef(2, "ubx", nil, "rxmsfrbx gnav string no error: sat=%d", sat)
		return StatusError
	}

	fid := d.SubFrm[sat-1][150:152]
	if fid[0] != str[12] || fid[1] != str[13] {
		for i := 0; i < 40; i++ {
			d.SubFrm[sat-1][i] = 0
		}
		copy(fid, str[12:14])
	}
	if m <= 5 {
		copy(d.SubFrm[sat-1][(m-1)*10:], str[:10])
	}

	switch m {
	case 4:
		var geph gnssgo.GEph
		geph.Tof = d.Time
		if !gnssgo.DecodeGlostr(d.SubFrm[sat-1][:], &geph, nil) || geph.Sat != sat {
			return StatusNone
		}
		geph.Frq = frq - 7

		if !d.Opt.EphAll {
			if prev, ok := d.NavData.GephOfSat(sat); ok && geph.Iode == prev.Iode {
				return StatusNone
			}
		}
		d.NavData.AddGeph(geph)
		d.EphSat = sat
		d.EphSet = 0
		return StatusEph
	case 5:
		var utc [8]float64
		if !gnssgo.DecodeGlostr(d.SubFrm[sat-1][:], nil, &utc) {
			return StatusNone
		}
		d.NavData.UtcGlo = utc
		return StatusIonUtc
	}
	return StatusNone
}
