package gnssgo

import "math"

/* GLONASS string scale factors. */
const (
	gloP2_11 = 4.882812500000000e-04
	gloP2_20 = 9.536743164062500e-07
	gloP2_30 = 9.313225746154785e-10
	gloP2_40 = 9.094947017729280e-13
)

/* xor8bit is the parity of each 8-bit value, used by TestGloStr's Hamming
* check. */
var xor8bit = [256]uint8{
	0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1,
	1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0,
	1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0,
	0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1,
	1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0,
	0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1,
	0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1,
	1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0,
}

var maskHamming = [][11]uint8{
	{0x55, 0x55, 0x5A, 0xAA, 0xAA, 0xAA, 0xB5, 0x55, 0x6A, 0xD8, 0x08},
	{0x66, 0x66, 0x6C, 0xCC, 0xCC, 0xCC, 0xD9, 0x99, 0xB3, 0x68, 0x10},
	{0x87, 0x87, 0x8F, 0x0F, 0x0F, 0x0F, 0x1E, 0x1E, 0x3C, 0x70, 0x20},
	{0x07, 0xF8, 0x0F, 0xF0, 0x0F, 0xF0, 0x1F, 0xE0, 0x3F, 0x80, 0x40},
	{0xF8, 0x00, 0x0F, 0xFF, 0xF0, 0x00, 0x1F, 0xFF, 0xC0, 0x00, 0x80},
	{0x00, 0x00, 0x0F, 0xFF, 0xFF, 0xFF, 0xE0, 0x00, 0x00, 0x01, 0x00},
	{0xFF, 0xFF, 0xF0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x00},
	{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xF8},
}

/* TestGloStr validates the Hamming code protecting an 85-bit GLONASS
* navigation string. */
func TestGloStr(buff []uint8) bool {
	var n int
	var cs uint8
	for i := 0; i < 8; i++ {
		cs = 0
		for j := 0; j < 11; j++ {
			cs ^= xor8bit[buff[j]&maskHamming[i][j]]
		}
		if cs > 0 {
			n++
		}
	}
	return n == 0 || (n == 2 && cs > 0)
}

/* DecodeGlostrEph decodes a GLONASS ephemeris out of strings 1-4,
* reassembled as four consecutive 10-byte strings starting at buff[0].
* geph.Tof must already hold an approximate frame time (within half a day)
* so the broadcast time-of-day fields can be disambiguated against it. */
func DecodeGlostrEph(buff []uint8, geph *GEph) bool {
	var g GEph
	var tkH, tkM, tkS, tb, slot int
	var frn1, frn2, frn3, frn4 int

	i := 1
	frn1 = int(GetBitU(buff, i, 4))
	i += 4 + 2 + 2
	tkH = int(GetBitU(buff, i, 5))
	i += 5
	tkM = int(GetBitU(buff, i, 6))
	i += 6
	tkS = int(GetBitU(buff, i, 1)) * 30
	i += 1
	g.Vel[0] = getBitG(buff, i, 24) * gloP2_20 * 1e3
	i += 24
	g.Acc[0] = getBitG(buff, i, 5) * gloP2_30 * 1e3
	i += 5
	g.Pos[0] = getBitG(buff, i, 27) * gloP2_11 * 1e3
	i += 27 + 4

	frn2 = int(GetBitU(buff, i, 4))
	i += 4
	g.Svh = int(GetBitU(buff, i, 1))
	i += 1 + 2 + 1
	tb = int(GetBitU(buff, i, 7))
	i += 7 + 5
	g.Vel[1] = getBitG(buff, i, 24) * gloP2_20 * 1e3
	i += 24
	g.Acc[1] = getBitG(buff, i, 5) * gloP2_30 * 1e3
	i += 5
	g.Pos[1] = getBitG(buff, i, 27) * gloP2_11 * 1e3
	i += 27 + 4

	frn3 = int(GetBitU(buff, i, 4))
	i += 4 + 1
	g.Gamn = getBitG(buff, i, 11) * gloP2_40
	i += 11 + 1 + 2 + 1
	g.Vel[2] = getBitG(buff, i, 24) * gloP2_20 * 1e3
	i += 24
	g.Acc[2] = getBitG(buff, i, 5) * gloP2_30 * 1e3
	i += 5
	g.Pos[2] = getBitG(buff, i, 27) * gloP2_11 * 1e3
	i += 27 + 4

	frn4 = int(GetBitU(buff, i, 4))
	i += 4
	g.Taun = getBitG(buff, i, 22) * gloP2_30
	i += 22
	g.DTaun = getBitG(buff, i, 5) * gloP2_30
	i += 5
	g.Age = int(GetBitU(buff, i, 5))
	i += 5 + 14 + 1
	g.Sva = int(GetBitU(buff, i, 4))
	i += 4 + 3 + 11
	slot = int(GetBitU(buff, i, 5))

	if frn1 != 1 || frn2 != 2 || frn3 != 3 || frn4 != 4 {
		Tracef(2, "nav_glo", nil, "string number mismatch: %d %d %d %d", frn1, frn2, frn3, frn4)
		return false
	}
	g.Sat = SatNo(SYS_GLO, slot)
	if g.Sat == 0 {
		Tracef(2, "nav_glo", nil, "slot out of range: %d", slot)
		return false
	}
	g.Frq = 0
	g.Iode = tb

	var week int
	tow := Time2GpsT(GpsT2Utc(geph.Tof), &week)
	tod := math.Mod(tow, 86400.0)
	tow -= tod
	tof := float64(tkH)*3600.0 + float64(tkM)*60.0 + float64(tkS) - 10800.0
	if tof < tod-43200.0 {
		tof += 86400.0
	} else if tof > tod+43200.0 {
		tof -= 86400.0
	}
	g.Tof = Utc2GpsT(GpsT2Time(week, tow+tof))

	toe := float64(tb)*900.0 - 10800.0
	if toe < tod-43200.0 {
		toe += 86400.0
	} else if toe > tod+43200.0 {
		toe -= 86400.0
	}
	g.Toe = Utc2GpsT(GpsT2Time(week, tow+toe))
	*geph = g
	return true
}

/* DecodeGlostrUtc decodes the UTC parameters broadcast in string 5. */
func DecodeGlostrUtc(buff []uint8, utc *[8]float64) bool {
	i := 1 + 80*4
	if GetBitU(buff, i, 4) != 5 {
		return false
	}
	i += 4 + 11
	utc[0] = float64(GetBits(buff, i, 32)) * gloP2_30
	i += 32 + 1 + 6
	utc[1] = float64(GetBits(buff, i, 22)) * scP2_30
	for j := 2; j < 8; j++ {
		utc[j] = 0.0
	}
	return true
}

/* DecodeGlostr decodes a GLONASS ephemeris and, when requested, the UTC
* parameter set out of a five-string reassembly (strings pre-stripped of
* the hamming code and time mark). */
func DecodeGlostr(buff []uint8, geph *GEph, utc *[8]float64) bool {
	if geph != nil && !DecodeGlostrEph(buff, geph) {
		return false
	}
	if utc != nil && !DecodeGlostrUtc(buff, utc) {
		return false
	}
	return true
}
