package gnssgo

/* Galileo I/NAV scale factors. */
const (
	galP2_8  = 0.00390625
	galP2_15 = 3.051757812500000e-05
	galP2_32 = 2.328306436538696e-10
	galP2_34 = 5.820766091346740e-11
	galP2_46 = 1.421085471520200e-14
	galP2_59 = 1.734723475976810e-18
)

/* DecodeGalInavEph decodes a Galileo I/NAV ephemeris out of word types
* 1-5, reassembled as 128-bit words with word type k at buff[16*k] (word
* type 1 starts at buff[16]). */
func DecodeGalInavEph(buff []uint8, eph *Eph) bool {
	var e Eph
	var tow, toc, tt, sqrtA float64
	var week, svid, e5bHs, e1bHs, e5bDvs, e1bDvs int
	var ctype [5]int
	var iodNav [4]int

	i := 128
	ctype[0] = int(GetBitU(buff, i, 6))
	i += 6
	iodNav[0] = int(GetBitU(buff, i, 10))
	i += 10
	e.Toes = float64(GetBitU(buff, i, 14)) * 60.0
	i += 14
	e.M0 = float64(GetBits(buff, i, 32)) * scP2_31 * sc2rad
	i += 32
	e.E = float64(GetBitU(buff, i, 32)) * scP2_33
	i += 32
	sqrtA = float64(GetBitU(buff, i, 32)) * scP2_19

	i = 128 * 2
	ctype[1] = int(GetBitU(buff, i, 6))
	i += 6
	iodNav[1] = int(GetBitU(buff, i, 10))
	i += 10
	e.OMG0 = float64(GetBits(buff, i, 32)) * scP2_31 * sc2rad
	i += 32
	e.I0 = float64(GetBits(buff, i, 32)) * scP2_31 * sc2rad
	i += 32
	e.Omg = float64(GetBits(buff, i, 32)) * scP2_31 * sc2rad
	i += 32
	e.Idot = float64(GetBits(buff, i, 14)) * scP2_43 * sc2rad

	i = 128 * 3
	ctype[2] = int(GetBitU(buff, i, 6))
	i += 6
	iodNav[2] = int(GetBitU(buff, i, 10))
	i += 10
	e.OMGd = float64(GetBits(buff, i, 24)) * scP2_43 * sc2rad
	i += 24
	e.Deln = float64(GetBits(buff, i, 16)) * scP2_43 * sc2rad
	i += 16
	e.Cuc = float64(GetBits(buff, i, 16)) * scP2_29
	i += 16
	e.Cus = float64(GetBits(buff, i, 16)) * scP2_29
	i += 16
	e.Crc = float64(GetBits(buff, i, 16)) * scP2_5
	i += 16
	e.Crs = float64(GetBits(buff, i, 16)) * scP2_5
	i += 16
	e.Sva = int(GetBitU(buff, i, 8))

	i = 128 * 4
	ctype[3] = int(GetBitU(buff, i, 6))
	i += 6
	iodNav[3] = int(GetBitU(buff, i, 10))
	i += 10
	svid = int(GetBitU(buff, i, 6))
	i += 6
	e.Cic = float64(GetBits(buff, i, 16)) * scP2_29
	i += 16
	e.Cis = float64(GetBits(buff, i, 16)) * scP2_29
	i += 16
	toc = float64(GetBitU(buff, i, 14)) * 60.0
	i += 14
	e.F0 = float64(GetBits(buff, i, 31)) * galP2_34
	i += 31
	e.F1 = float64(GetBits(buff, i, 21)) * galP2_46
	i += 21
	e.F2 = float64(GetBits(buff, i, 6)) * galP2_59

	i = 128 * 5
	ctype[4] = int(GetBitU(buff, i, 6))
	i += 6 + 11 + 11 + 14 + 5
	e.Tgd[0] = float64(GetBits(buff, i, 10)) * galP2_32
	i += 10
	e.Tgd[1] = float64(GetBits(buff, i, 10)) * galP2_32
	i += 10
	e5bHs = int(GetBitU(buff, i, 2))
	i += 2
	e1bHs = int(GetBitU(buff, i, 2))
	i += 2
	e5bDvs = int(GetBitU(buff, i, 1))
	i += 1
	e1bDvs = int(GetBitU(buff, i, 1))
	i += 1
	week = int(GetBitU(buff, i, 12))
	i += 12
	tow = float64(GetBitU(buff, i, 20))

	if ctype[0] != 1 || ctype[1] != 2 || ctype[2] != 3 || ctype[3] != 4 || ctype[4] != 5 {
		Tracef(2, "nav_gal", nil, "word type mismatch: %d %d %d %d %d", ctype[0], ctype[1], ctype[2], ctype[3], ctype[4])
		return false
	}
	if iodNav[0] != iodNav[1] || iodNav[0] != iodNav[2] || iodNav[0] != iodNav[3] {
		Tracef(2, "nav_gal", nil, "iod_nav mismatch: %d %d %d %d", iodNav[0], iodNav[1], iodNav[2], iodNav[3])
		return false
	}
	e.Sat = SatNo(SYS_GAL, svid)
	if e.Sat == 0 {
		Tracef(2, "nav_gal", nil, "svid out of range: %d", svid)
		return false
	}
	e.A = sqrtA * sqrtA
	e.Iode, e.Iodc = iodNav[0], iodNav[0]
	e.Svh = (e5bHs << 7) | (e5bDvs << 6) | (e1bHs << 1) | e1bDvs
	e.Ttr = GsT2Time(week, tow)
	tt = TimeDiff(GsT2Time(week, e.Toes), e.Ttr)
	if tt > 302400.0 {
		week--
	} else if tt < -302400.0 {
		week++
	}
	e.Toe = GsT2Time(week, e.Toes)
	e.Toc = GsT2Time(week, toc)
	e.Week = week + 1024 /* gal-week = gst-week + 1024 */
	e.Code = 1 << 9       /* I/NAV: af0-2,Toc,SISA for E5b-E1 */
	*eph = e
	return true
}

/* DecodeGalInavIon decodes the Galileo NeQuick ionosphere parameters
* broadcast in word type 5. */
func DecodeGalInavIon(buff []uint8, ion *[4]float64) bool {
	i := 128 * 5
	if GetBitU(buff, i, 6) != 5 {
		return false
	}
	i += 6
	ion[0] = float64(GetBitU(buff, i, 11)) * 0.25
	i += 11
	ion[1] = float64(GetBits(buff, i, 11)) * galP2_8
	i += 11
	ion[2] = float64(GetBits(buff, i, 14)) * galP2_15
	i += 14
	ion[3] = float64(GetBitU(buff, i, 5))
	return true
}

/* DecodeGalInavUtc decodes the UTC parameters broadcast in word type 6. */
func DecodeGalInavUtc(buff []uint8, utc *[8]float64) bool {
	i := 128 * 6
	if GetBitU(buff, i, 6) != 6 {
		return false
	}
	i += 6
	utc[0] = float64(GetBits(buff, i, 32)) * scP2_30
	i += 32
	utc[1] = float64(GetBits(buff, i, 24)) * scP2_50
	i += 24
	utc[4] = float64(GetBits(buff, i, 8))
	i += 8
	utc[2] = float64(GetBitU(buff, i, 8)) * 3600.0
	i += 8
	utc[3] = float64(GetBitU(buff, i, 8))
	i += 8
	utc[5] = float64(GetBitU(buff, i, 8))
	i += 8
	utc[6] = float64(GetBitU(buff, i, 3))
	i += 3
	utc[7] = float64(GetBits(buff, i, 8))
	return true
}

/* DecodeGalInav decodes a Galileo I/NAV ephemeris and, when requested, the
* ionosphere/UTC parameter sets out of a seven-word-type page reassembly.
* Word types are assumed CRC-24Q checked by the caller. */
func DecodeGalInav(buff []uint8, eph *Eph, ion *[4]float64, utc *[8]float64) bool {
	if eph != nil && !DecodeGalInavEph(buff, eph) {
		return false
	}
	if ion != nil && !DecodeGalInavIon(buff, ion) {
		return false
	}
	if utc != nil && !DecodeGalInavUtc(buff, utc) {
		return false
	}
	return true
}
