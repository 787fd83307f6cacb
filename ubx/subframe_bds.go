package ubx

import "github.com/GHolk/ubxgo/gnssgo"

/* decodeNavBds reassembles a BeiDou D1 (IGSO/MEO) or D2 (GEO) subframe/page
* out of a UBX-RXM-SFRBX or UBX-TRK-SFRBX payload. */
func (d *Decoder) decodeNavBds(sat, off int) Status {
	p := 6 + off
	buff := d.Buff[:d.Len]

	if d.Len < 48+off {
		gnssgo.Tracef(2, "ubx", nil, "rxmsfrbx cnav length error: sat=%d len=%d", sat, d.Len)
		return StatusError
	}
	var sf [38]uint8
	for i := 0; i < 10; i, p = i+1, p+4 {
		gnssgo.SetBitU(sf[:], 30*i, 30, u4l(buff[p:]))
	}
	id := int(gnssgo.GetBitU(sf[:], 15, 3))
	if id < 1 || id > 5 {
		gnssgo.Tracef(2, "ubx", nil, "rxmsfrbx cnav subframe id error: sat=%d", sat)
		return StatusError
	}
	_, prn := satSysPrn(sat)

	var eph gnssgo.Eph
	var ion, utc [8]float64

	if prn >= 6 && prn <= 58 { /* IGSO/MEO: D1 */
		copy(d.SubFrm[sat-1][(id-1)*38:], sf[:38])
		switch id {
		case 3:
			if !gnssgo.DecodeBDSD1(d.SubFrm[sat-1][:], &eph, nil, nil) {
				return StatusNone
			}
		case 5:
			if !gnssgo.DecodeBDSD1(d.SubFrm[sat-1][:], nil, &ion, &utc) {
				return StatusNone
			}
			d.NavData.IonCmp = ion
			d.NavData.UtcCmp = utc
			return StatusIonUtc
		default:
			return StatusNone
		}
	} else { /* GEO: D2 */
		pgn := int(gnssgo.GetBitU(sf[:], 42, 4))
		switch {
		case id == 1 && pgn >= 1 && pgn <= 10:
			copy(d.SubFrm[sat-1][(pgn-1)*38:], sf[:38])
			if pgn != 10 {
				return StatusNone
			}
			if !gnssgo.DecodeBDSD2(d.SubFrm[sat-1][:], &eph, nil) {
				return StatusNone
			}
		case id == 5 && pgn == 102:
			copy(d.SubFrm[sat-1][10*38:], sf[:38])
			if !gnssgo.DecodeBDSD2(d.SubFrm[sat-1][:], nil, &utc) {
				return StatusNone
			}
			d.NavData.UtcCmp = utc
			return StatusIonUtc
		default:
			return StatusNone
		}
	}

	if !d.Opt.EphAll {
		if prev, ok := d.NavData.EphOfSat(sat); ok && gnssgo.TimeDiff(eph.Toe, prev.Toe) == 0.0 {
			return StatusNone
		}
	}
	eph.Sat = sat
	d.NavData.AddEph(eph)
	d.EphSat = sat
	d.EphSet = 0
	return StatusEph
}
