package ubx

import "github.com/GHolk/ubxgo/gnssgo"

/* decodeNavGal reassembles a Galileo I/NAV page pair out of a UBX-RXM-SFRBX
* or UBX-TRK-SFRBX payload. Frames shorter than an I/NAV page pair
* (d.Len < 44+off) are skipped with StatusNone; F/NAV is not decoded.
* Publication additionally
* requires word types 0-6 to have all been seen since the last word-2
* arrival (word 2 resets the bitmap), so a word-2 dropped between cycles
* can't stitch a stale page into a fresh one. */
func (d *Decoder) decodeNavGal(sat, off int) Status {
	p := 6 + off
	buff := d.Buff[:d.Len]

	if d.Len < 40+off {
		gnssgo.Tracef(2, "ubx", nil, "rxmsfrbx enav length error: sat=%d len=%d", sat, d.Len)
		return StatusError
	}
	if d.Len < 44+off {
		return StatusNone /* E5b I/NAV, unsupported */
	}

	var word [32]uint8
	for i := 0; i < 8; i, p = i+1, p+4 {
		gnssgo.SetBitU(word[:], 32*i, 32, u4l(buff[p:]))
	}
	part1 := gnssgo.GetBitU(word[:], 0, 1)
	page1 := gnssgo.GetBitU(word[:], 1, 1)
	part2 := gnssgo.GetBitU(word[:], 128, 1)
	page2 := gnssgo.GetBitU(word[:], 129, 1)

	if part1 != 0 || part2 != 1 {
		gnssgo.Tracef(3, "ubx", nil, "rxmsfrbx enav page even/odd error: sat=%d", sat)
		return StatusError
	}
	if page1 == 1 || page2 == 1 {
		return StatusNone /* alert page */
	}

	var crcBuff [26]uint8
	for i, j := 0, 4; i < 15; i, j = i+1, j+8 {
		gnssgo.SetBitU(crcBuff[:], j, 8, gnssgo.GetBitU(word[:], i*8, 8))
	}
	for i, j := 0, 118; i < 11; i, j = i+1, j+8 {
		gnssgo.SetBitU(crcBuff[:], j, 8, gnssgo.GetBitU(word[:], i*8+128, 8))
	}
	if gnssgo.CRC24Q(crcBuff[:25]) != gnssgo.GetBitU(word[:], 128+82, 24) {
		gnssgo.Tracef(2, "ubx", nil, "rxmsfrbx enav crc error: sat=%d", sat)
		return StatusError
	}
	ctype := int(gnssgo.GetBitU(word[:], 2, 6))
	if ctype > 6 {
		return StatusNone
	}
	if ctype == 2 {
		d.GalSeen[sat-1] = 0
	}
	d.GalSeen[sat-1] |= 1 << uint(ctype)

	for i, j := 0, 2; i < 14; i, j = i+1, j+8 {
		d.SubFrm[sat-1][ctype*16+i] = uint8(gnssgo.GetBitU(word[:], j, 8))
	}
	for i, j := 14, 130; i < 16; i, j = i+1, j+8 {
		d.SubFrm[sat-1][ctype*16+i] = uint8(gnssgo.GetBitU(word[:], j, 8))
	}
	if ctype != 5 || d.GalSeen[sat-1] != 0x7F {
		return StatusNone
	}

	var eph gnssgo.Eph
	var ion [4]float64
	var utc [8]float64
	if !gnssgo.DecodeGalInav(d.SubFrm[sat-1][:], &eph, &ion, &utc) {
		return StatusNone
	}
	if eph.Sat != sat {
		gnssgo.Tracef(2, "ubx", nil, "rxmsfrbx enav satellite error: sat=%d got=%d", sat, eph.Sat)
		return StatusError
	}
	if d.Opt.GalFnav {
		return StatusNone
	}
	eph.Code |= 1 << 0 /* data source: E1 */

	d.NavData.IonGal = ion
	d.NavData.UtcGal = utc

	if !d.Opt.EphAll {
		if prev, ok := d.NavData.EphOfSat(sat); ok &&
			eph.Iode == prev.Iode &&
			gnssgo.TimeDiff(eph.Toe, prev.Toe) == 0.0 &&
			gnssgo.TimeDiff(eph.Toc, prev.Toc) == 0.0 {
			return StatusNone
		}
	}
	d.NavData.AddEph(eph)
	d.EphSat = sat
	d.EphSet = 0
	return StatusEph
}
