package gnssgo

/* BeiDou D1/D2 scale factors. */
const (
	bdsP2_6  = 0.015625
	bdsP2_66 = 1.355252715606880e-20
)

/* DecodeBDSD1Eph decodes a BeiDou D1 (MEO/IGSO) ephemeris out of subframes
* 1-3, reassembled as three consecutive 300-bit (38-byte) subframes
* starting at buff[0]. */
func DecodeBDSD1Eph(buff []uint8, eph *Eph) bool {
	var e Eph
	var tocBds, sqrtA float64
	var toe1, toe2, sow1, sow2, sow3 uint32
	var frn1, frn2, frn3 int

	i := 0
	frn1 = int(GetBitU(buff, i+15, 3))
	sow1 = getBitU2(buff, i+18, 8, i+30, 12)
	e.Svh = int(GetBitU(buff, i+42, 1))
	e.Iodc = int(GetBitU(buff, i+43, 5))
	e.Sva = int(GetBitU(buff, i+48, 4))
	e.Week = int(GetBitU(buff, i+60, 13))
	tocBds = float64(getBitU2(buff, i+73, 9, i+90, 8)) * 8.0
	e.Tgd[0] = float64(GetBits(buff, i+98, 10)) * 0.1 * 1e-9
	e.Tgd[1] = float64(getBits2(buff, i+108, 4, i+120, 6)) * 0.1 * 1e-9
	e.F2 = float64(GetBits(buff, i+214, 11)) * bdsP2_66
	e.F0 = float64(getBits2(buff, i+225, 7, i+240, 17)) * scP2_33
	e.F1 = float64(getBits2(buff, i+257, 5, i+270, 17)) * scP2_50
	e.Iode = int(GetBitU(buff, i+287, 5))

	i = 38 * 8
	frn2 = int(GetBitU(buff, i+15, 3))
	sow2 = getBitU2(buff, i+18, 8, i+30, 12)
	e.Deln = float64(getBits2(buff, i+42, 10, i+60, 6)) * scP2_43 * sc2rad
	e.Cuc = float64(getBits2(buff, i+66, 16, i+90, 2)) * scP2_31
	e.M0 = float64(getBits2(buff, i+92, 20, i+120, 12)) * scP2_31 * sc2rad
	e.E = float64(getBitU2(buff, i+132, 10, i+150, 22)) * scP2_33
	e.Cus = float64(GetBits(buff, i+180, 18)) * scP2_31
	e.Crc = float64(getBits2(buff, i+198, 4, i+210, 14)) * bdsP2_6
	e.Crs = float64(getBits2(buff, i+224, 8, i+240, 10)) * bdsP2_6
	sqrtA = float64(getBitU2(buff, i+250, 12, i+270, 20)) * scP2_19
	toe1 = GetBitU(buff, i+290, 2)
	e.A = sqrtA * sqrtA

	i = 38 * 16
	frn3 = int(GetBitU(buff, i+15, 3))
	sow3 = getBitU2(buff, i+18, 8, i+30, 12)
	toe2 = getBitU2(buff, i+42, 10, i+60, 5)
	e.I0 = float64(getBits2(buff, i+65, 17, i+90, 15)) * scP2_31 * sc2rad
	e.Cic = float64(getBits2(buff, i+105, 7, i+120, 11)) * scP2_31
	e.OMGd = float64(getBits2(buff, i+131, 11, i+150, 13)) * scP2_43 * sc2rad
	e.Cis = float64(getBits2(buff, i+163, 9, i+180, 9)) * scP2_31
	e.Idot = float64(getBits2(buff, i+189, 13, i+210, 1)) * scP2_43 * sc2rad
	e.OMG0 = float64(getBits2(buff, i+211, 21, i+240, 11)) * scP2_31 * sc2rad
	e.Omg = float64(getBits2(buff, i+251, 11, i+270, 21)) * scP2_31 * sc2rad
	e.Toes = float64(mergeTwoU(toe1, toe2, 15)) * 8.0

	if frn1 != 1 || frn2 != 2 || frn3 != 3 {
		Tracef(2, "nav_bds", nil, "d1 subframe number mismatch: %d %d %d", frn1, frn2, frn3)
		return false
	}
	if sow2 != sow1+6 || sow3 != sow2+6 {
		Tracef(2, "nav_bds", nil, "d1 sow sequence mismatch: %d %d %d", sow1, sow2, sow3)
		return false
	}
	if tocBds != e.Toes {
		Tracef(2, "nav_bds", nil, "d1 toe/toc mismatch: toe=%.0f toc=%.0f", e.Toes, tocBds)
		return false
	}
	e.Ttr = BDT2GpsT(BDT2Time(e.Week, float64(sow1)))
	if e.Toes > float64(sow1)+302400.0 {
		e.Week++
	} else if e.Toes < float64(sow1)-302400.0 {
		e.Week--
	}
	e.Toe = BDT2GpsT(BDT2Time(e.Week, e.Toes))
	e.Toc = BDT2GpsT(BDT2Time(e.Week, tocBds))
	e.Code = 0
	e.Flag = 1 /* IGSO/MEO */
	*eph = e
	return true
}

/* DecodeBDSD1Ion decodes the BeiDou ionosphere parameters from D1
* subframe 1. */
func DecodeBDSD1Ion(buff []uint8, ion *[8]float64) bool {
	i := 0
	if GetBitU(buff, i+15, 3) != 1 {
		return false
	}
	ion[0] = float64(GetBits(buff, i+126, 8)) * scP2_30
	ion[1] = float64(GetBits(buff, i+134, 8)) * scP2_27
	ion[2] = float64(GetBits(buff, i+150, 8)) * scP2_24
	ion[3] = float64(GetBits(buff, i+158, 8)) * scP2_24
	ion[4] = float64(getBits2(buff, i+166, 6, i+180, 2)) * scP2p11
	ion[5] = float64(GetBits(buff, i+182, 8)) * scP2p14
	ion[6] = float64(GetBits(buff, i+190, 8)) * scP2p16
	ion[7] = float64(getBits2(buff, i+198, 4, i+210, 4)) * scP2p16
	return true
}

/* DecodeBDSD1Utc decodes the D1 UTC parameters from subframe 5 page 10. */
func DecodeBDSD1Utc(buff []uint8, utc *[8]float64) bool {
	i := 38 * 8 * 4
	if GetBitU(buff, 15, 3) != 1 {
		return false
	}
	if GetBitU(buff, i+15, 3) != 5 || GetBitU(buff, i+43, 7) != 10 {
		return false
	}
	utc[4] = float64(getBits2(buff, i+50, 2, i+60, 6))
	utc[7] = float64(GetBits(buff, i+66, 8))
	utc[5] = float64(GetBitU(buff, i+74, 8))
	utc[0] = float64(getBits2(buff, i+90, 22, i+120, 10)) * scP2_30
	utc[1] = float64(getBits2(buff, i+130, 12, i+150, 12)) * scP2_50
	utc[6] = float64(GetBitU(buff, i+162, 8))
	utc[2] = float64(getBitU2(buff, i+18, 8, i+30, 12))
	utc[3] = float64(GetBitU(buff, 60, 13))
	return true
}

/* DecodeBDSD1 decodes a BeiDou D1 (IGSO/MEO) ephemeris and, when
* requested, the ionosphere/UTC parameter sets out of a five-subframe
* reassembly (each subframe's ten 30-bit words, parity bits included, 300
* bits packed into 38 bytes). */
func DecodeBDSD1(buff []uint8, eph *Eph, ion, utc *[8]float64) bool {
	if eph != nil && !DecodeBDSD1Eph(buff, eph) {
		return false
	}
	if ion != nil && !DecodeBDSD1Ion(buff, ion) {
		return false
	}
	if utc != nil && !DecodeBDSD1Utc(buff, utc) {
		return false
	}
	return true
}

/* DecodeBDSD2Eph decodes a BeiDou D2 (GEO) ephemeris out of subframe 1
* pages 1,3-10, reassembled as ten consecutive 300-bit pages starting at
* buff[0]. */
func DecodeBDSD2Eph(buff []uint8, eph *Eph) bool {
	var e Eph
	var tocBds, sqrtA float64
	var f1p4, cucp5, ep6, cicp7, i0p8, omgdP9, omgP10 uint32
	var sow1, sow3, sow4, sow5, sow6, sow7, sow8, sow9, sow10 uint32
	var f1p3, cucp4, ep5, cicp6, i0p7, omgdP8, omgP9 int
	var pgn1, pgn3, pgn4, pgn5, pgn6, pgn7, pgn8, pgn9, pgn10 int

	i := 0 /* page 1 */
	pgn1 = int(GetBitU(buff, i+42, 4))
	sow1 = getBitU2(buff, i+18, 8, i+30, 12)
	e.Svh = int(GetBitU(buff, i+46, 1))
	e.Iodc = int(GetBitU(buff, i+47, 5))
	e.Sva = int(GetBitU(buff, i+60, 4))
	e.Week = int(GetBitU(buff, i+64, 13))
	tocBds = float64(getBitU2(buff, i+77, 5, i+90, 12)) * 8.0
	e.Tgd[0] = float64(GetBits(buff, i+102, 10)) * 0.1 * 1e-9
	e.Tgd[1] = float64(GetBits(buff, i+120, 10)) * 0.1 * 1e-9

	i = 38 * 8 * 2 /* page 3 */
	pgn3 = int(GetBitU(buff, i+42, 4))
	sow3 = getBitU2(buff, i+18, 8, i+30, 12)
	e.F0 = float64(getBits2(buff, i+100, 12, i+120, 12)) * scP2_33
	f1p3 = int(GetBits(buff, i+132, 4))

	i = 38 * 8 * 3 /* page 4 */
	pgn4 = int(GetBitU(buff, i+42, 4))
	sow4 = getBitU2(buff, i+18, 8, i+30, 12)
	f1p4 = getBitU2(buff, i+46, 6, i+60, 12)
	e.F2 = float64(getBits2(buff, i+72, 10, i+90, 1)) * bdsP2_66
	e.Iode = int(GetBitU(buff, i+91, 5))
	e.Deln = float64(GetBits(buff, i+96, 16)) * scP2_43 * sc2rad
	cucp4 = int(GetBits(buff, i+120, 14))

	i = 38 * 8 * 4 /* page 5 */
	pgn5 = int(GetBitU(buff, i+42, 4))
	sow5 = getBitU2(buff, i+18, 8, i+30, 12)
	cucp5 = GetBitU(buff, i+46, 4)
	e.M0 = float64(getBits3(buff, i+50, 2, i+60, 22, i+90, 8)) * scP2_31 * sc2rad
	e.Cus = float64(getBits2(buff, i+98, 14, i+120, 4)) * scP2_31
	ep5 = int(GetBits(buff, i+124, 10))

	i = 38 * 8 * 5 /* page 6 */
	pgn6 = int(GetBitU(buff, i+42, 4))
	sow6 = getBitU2(buff, i+18, 8, i+30, 12)
	ep6 = getBitU2(buff, i+46, 6, i+60, 16)
	sqrtA = float64(getBitU3(buff, i+76, 6, i+90, 22, i+120, 4)) * scP2_19
	cicp6 = int(GetBits(buff, i+124, 10))
	e.A = sqrtA * sqrtA

	i = 38 * 8 * 6 /* page 7 */
	pgn7 = int(GetBitU(buff, i+42, 4))
	sow7 = getBitU2(buff, i+18, 8, i+30, 12)
	cicp7 = getBitU2(buff, i+46, 6, i+60, 2)
	e.Cis = float64(GetBits(buff, i+62, 18)) * scP2_31
	e.Toes = float64(getBitU2(buff, i+80, 2, i+90, 15)) * 8.0
	i0p7 = int(getBits2(buff, i+105, 7, i+120, 14))

	i = 38 * 8 * 7 /* page 8 */
	pgn8 = int(GetBitU(buff, i+42, 4))
	sow8 = getBitU2(buff, i+18, 8, i+30, 12)
	i0p8 = getBitU2(buff, i+46, 6, i+60, 5)
	e.Crc = float64(getBits2(buff, i+65, 17, i+90, 1)) * bdsP2_6
	e.Crs = float64(GetBits(buff, i+91, 18)) * bdsP2_6
	omgdP8 = int(getBits2(buff, i+109, 3, i+120, 16))

	i = 38 * 8 * 8 /* page 9 */
	pgn9 = int(GetBitU(buff, i+42, 4))
	sow9 = getBitU2(buff, i+18, 8, i+30, 12)
	omgdP9 = GetBitU(buff, i+46, 5)
	e.OMG0 = float64(getBits3(buff, i+51, 1, i+60, 22, i+90, 9)) * scP2_31 * sc2rad
	omgP9 = int(getBits2(buff, i+99, 13, i+120, 14))

	i = 38 * 8 * 9 /* page 10 */
	pgn10 = int(GetBitU(buff, i+42, 4))
	sow10 = getBitU2(buff, i+18, 8, i+30, 12)
	omgP10 = GetBitU(buff, i+46, 5)
	e.Idot = float64(getBits2(buff, i+51, 1, i+60, 13)) * scP2_43 * sc2rad

	if pgn1 != 1 || pgn3 != 3 || pgn4 != 4 || pgn5 != 5 || pgn6 != 6 || pgn7 != 7 || pgn8 != 8 || pgn9 != 9 || pgn10 != 10 {
		Tracef(2, "nav_bds", nil, "d2 page number mismatch: %d %d %d %d %d %d %d %d %d",
			pgn1, pgn3, pgn4, pgn5, pgn6, pgn7, pgn8, pgn9, pgn10)
		return false
	}
	if sow3 != sow1+6 || sow4 != sow3+3 || sow5 != sow4+3 || sow6 != sow5+3 ||
		sow7 != sow6+3 || sow8 != sow7+3 || sow9 != sow8+3 || sow10 != sow9+3 {
		Tracef(2, "nav_bds", nil, "d2 sow sequence mismatch")
		return false
	}
	if tocBds != e.Toes {
		Tracef(2, "nav_bds", nil, "d2 toe/toc mismatch: toe=%.0f toc=%.0f", e.Toes, tocBds)
		return false
	}
	e.F1 = float64(mergeTwoS(int32(f1p3), f1p4, 18)) * scP2_50
	e.Cuc = float64(mergeTwoS(int32(cucp4), cucp5, 4)) * scP2_31
	e.E = float64(mergeTwoS(int32(ep5), ep6, 22)) * scP2_33
	e.Cic = float64(mergeTwoS(int32(cicp6), cicp7, 8)) * scP2_31
	e.I0 = float64(mergeTwoS(int32(i0p7), i0p8, 11)) * scP2_31 * sc2rad
	e.OMGd = float64(mergeTwoS(int32(omgdP8), omgdP9, 5)) * scP2_43 * sc2rad
	e.Omg = float64(mergeTwoS(int32(omgP9), omgP10, 5)) * scP2_31 * sc2rad

	e.Ttr = BDT2GpsT(BDT2Time(e.Week, float64(sow1)))
	if e.Toes > float64(sow1)+302400.0 {
		e.Week++
	} else if e.Toes < float64(sow1)-302400.0 {
		e.Week--
	}
	e.Toe = BDT2GpsT(BDT2Time(e.Week, e.Toes))
	e.Toc = BDT2GpsT(BDT2Time(e.Week, tocBds))
	e.Code = 0
	e.Flag = 2 /* GEO */
	*eph = e
	return true
}

/* DecodeBDSD2Utc decodes the D2 UTC parameters from subframe 5 page 102. */
func DecodeBDSD2Utc(buff []uint8, utc *[8]float64) bool {
	i := 38 * 8 * 10
	if GetBitU(buff, 15, 3) != 1 || GetBitU(buff, 42, 4) != 1 {
		return false
	}
	if GetBitU(buff, i+15, 3) != 5 || GetBitU(buff, i+43, 7) != 102 {
		return false
	}
	utc[4] = float64(getBits2(buff, i+50, 2, i+60, 6))
	utc[7] = float64(GetBits(buff, i+66, 8))
	utc[5] = float64(GetBitU(buff, i+74, 8))
	utc[0] = float64(getBits2(buff, i+90, 22, i+120, 10)) * scP2_30
	utc[1] = float64(getBits2(buff, i+130, 12, i+150, 12)) * scP2_50
	utc[6] = float64(GetBitU(buff, i+162, 8))
	utc[2] = float64(getBits2(buff, i+18, 8, i+30, 12))
	utc[3] = float64(GetBitU(buff, 64, 13))
	return true
}

/* DecodeBDSD2 decodes a BeiDou D2 (GEO) ephemeris and, when requested, the
* UTC parameter set out of an eleven-page reassembly. */
func DecodeBDSD2(buff []uint8, eph *Eph, utc *[8]float64) bool {
	if eph != nil && !DecodeBDSD2Eph(buff, eph) {
		return false
	}
	if utc != nil && !DecodeBDSD2Utc(buff, utc) {
		return false
	}
	return true
}
