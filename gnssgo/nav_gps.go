package gnssgo

import "time"

/* scale factors for GPS/QZSS LNAV subframe fields, named by their power of
* two (scP2_n = 2^-n, scP2pn = 2^n); sc2rad is the semicircle-to-radian
* factor. */
const (
	scP2_5  = 0.03125
	scP2_11 = 4.882812500000000e-04
	scP2_19 = 1.907348632812500e-06
	scP2_24 = 5.960464477539063e-08
	scP2_27 = 7.450580596923828e-09
	scP2_29 = 1.862645149230957e-09
	scP2_30 = 9.313225746154785e-10
	scP2_31 = 4.656612873077393e-10
	scP2_33 = 1.164153218269348e-10
	scP2_43 = 1.136868377216160e-13
	scP2_50 = 8.881784197001252e-16
	scP2_55 = 2.775557561562891e-17
	scP2p11 = 2048.0
	scP2p12 = 4096.0
	scP2p14 = 16384.0
	scP2p16 = 65536.0
	sc2rad  = 3.1415926535898
)

/* AdjGpsWeek resolves the 10-bit week-number rollover ambiguity LNAV
* subframe 1 broadcasts, using the current system time as the epoch anchor. */
func AdjGpsWeek(week int) int {
	var w int
	now := GpsT2Time(0, 0)
	now.Time = uint64(time.Now().Unix())
	Time2GpsT(now, &w)
	if w < 1560 {
		w = 1560
	}
	return week + (w-week+1)/1024*1024
}

/* DecodeFrameEph decodes a GPS/QZSS LNAV ephemeris from three reassembled
* subframes packed at buff[0:30], buff[30:60], buff[60:90] (240 bits each,
* parity already stripped). */
func DecodeFrameEph(buff []uint8, eph *Eph) bool {
	var e Eph
	var tow1, toc, sqrtA float64
	var id1, id2, id3, week, iodc0, iodc1, iode, tgd int

	i := 24
	tow1 = float64(GetBitU(buff, i, 17)) * 6.0
	i += 17 + 2
	id1 = int(GetBitU(buff, i, 3))
	i += 3 + 2
	week = int(GetBitU(buff, i, 10))
	i += 10
	e.Code = int(GetBitU(buff, i, 2))
	i += 2
	e.Sva = int(GetBitU(buff, i, 4))
	i += 4
	e.Svh = int(GetBitU(buff, i, 6))
	i += 6
	iodc0 = int(GetBitU(buff, i, 2))
	i += 2
	e.Flag = int(GetBitU(buff, i, 1))
	i += 1 + 87
	tgd = int(GetBits(buff, i, 8))
	i += 8
	iodc1 = int(GetBitU(buff, i, 8))
	i += 8
	toc = float64(GetBitU(buff, i, 16)) * 16.0
	i += 16
	e.F2 = float64(GetBits(buff, i, 8)) * scP2_55
	i += 8
	e.F1 = float64(GetBits(buff, i, 16)) * scP2_43
	i += 16
	e.F0 = float64(GetBits(buff, i, 22)) * scP2_31

	i = 240 + 24
	i += 17 + 2
	id2 = int(GetBitU(buff, i, 3))
	i += 3 + 2
	e.Iode = int(GetBitU(buff, i, 8))
	i += 8
	e.Crs = float64(GetBits(buff, i, 16)) * scP2_5
	i += 16
	e.Deln = float64(GetBits(buff, i, 16)) * scP2_43 * sc2rad
	i += 16
	e.M0 = float64(GetBits(buff, i, 32)) * scP2_31 * sc2rad
	i += 32
	e.Cuc = float64(GetBits(buff, i, 16)) * scP2_29
	i += 16
	e.E = float64(GetBitU(buff, i, 32)) * scP2_33
	i += 32
	e.Cus = float64(GetBits(buff, i, 16)) * scP2_29
	i += 16
	sqrtA = float64(GetBitU(buff, i, 32)) * scP2_19
	i += 32
	e.Toes = float64(GetBitU(buff, i, 16)) * 16.0
	i += 16
	if GetBitU(buff, i, 1) > 0 {
		e.Fit = 0.0
	} else {
		e.Fit = 4.0
	}

	i = 240*2 + 24
	i += 17 + 2
	id3 = int(GetBitU(buff, i, 3))
	i += 3 + 2
	e.Cic = float64(GetBits(buff, i, 16)) * scP2_29
	i += 16
	e.OMG0 = float64(GetBits(buff, i, 32)) * scP2_31 * sc2rad
	i += 32
	e.Cis = float64(GetBits(buff, i, 16)) * scP2_29
	i += 16
	e.I0 = float64(GetBits(buff, i, 32)) * scP2_31 * sc2rad
	i += 32
	e.Crc = float64(GetBits(buff, i, 16)) * scP2_5
	i += 16
	e.Omg = float64(GetBits(buff, i, 32)) * scP2_31 * sc2rad
	i += 32
	e.OMGd = float64(GetBits(buff, i, 24)) * scP2_43 * sc2rad
	i += 24
	iode = int(GetBitU(buff, i, 8))
	i += 8
	e.Idot = float64(GetBits(buff, i, 14)) * scP2_43 * sc2rad

	e.A = sqrtA * sqrtA
	e.Iodc = (iodc0 << 8) + iodc1
	e.Tgd[0] = 0.0
	if tgd != -128 {
		e.Tgd[0] = float64(tgd) * scP2_31
	}

	if id1 != 1 || id2 != 2 || id3 != 3 {
		Tracef(2, "nav_gps", nil, "subframe id mismatch: %d %d %d", id1, id2, id3)
		return false
	}
	if iode != e.Iode || iode != (e.Iodc&0xFF) {
		Tracef(2, "nav_gps", nil, "iode/iodc mismatch: iode=%d %d iodc=%d", e.Iode, iode, e.Iodc)
		return false
	}
	e.Week = AdjGpsWeek(week)
	e.Ttr = GpsT2Time(e.Week, tow1)
	if e.Toes < tow1-302400.0 {
		e.Week++
	} else if e.Toes > tow1+302400.0 {
		e.Week--
	}
	e.Toe = GpsT2Time(e.Week, e.Toes)
	e.Toc = GpsT2Time(e.Week, toc)
	*eph = e
	return true
}

/* DecodeFrameIon decodes the page-18 ionosphere parameters broadcast in
* subframe 4 or 5. */
func DecodeFrameIon(buff []uint8, ion *[8]float64) bool {
	for frm, index := 4, 90; frm <= 5; frm, index = frm+1, index+30 {
		if frm == 5 && GetBitU(buff[index:], 48, 2) == 1 {
			continue
		}
		if int(GetBitU(buff[index:], 43, 3)) != frm || GetBitU(buff[index:], 50, 6) != 56 {
			continue
		}
		i := 56
		ion[0] = float64(GetBits(buff[index:], i, 8)) * scP2_30
		i += 8
		ion[1] = float64(GetBits(buff[index:], i, 8)) * scP2_27
		i += 8
		ion[2] = float64(GetBits(buff[index:], i, 8)) * scP2_24
		i += 8
		ion[3] = float64(GetBits(buff[index:], i, 8)) * scP2_24
		i += 8
		ion[4] = float64(GetBits(buff[index:], i, 8)) * scP2p11
		i += 8
		ion[5] = float64(GetBits(buff[index:], i, 8)) * scP2p14
		i += 8
		ion[6] = float64(GetBits(buff[index:], i, 8)) * scP2p16
		i += 8
		ion[7] = float64(GetBits(buff[index:], i, 8)) * scP2p16
		return true
	}
	return false
}

/* DecodeFrameUtc decodes the page-18 UTC parameters broadcast in subframe
* 4 or 5. */
func DecodeFrameUtc(buff []uint8, utc *[8]float64) bool {
	for frm, index := 4, 90; frm <= 5; frm, index = frm+1, index+30 {
		if frm == 5 && GetBitU(buff[index:], 48, 2) == 1 {
			continue
		}
		if int(GetBitU(buff[index:], 43, 3)) != frm || GetBitU(buff[index:], 50, 6) != 56 {
			continue
		}
		i := 120
		utc[1] = float64(GetBits(buff[index:], i, 24)) * scP2_50
		i += 24
		utc[0] = float64(GetBits(buff[index:], i, 32)) * scP2_30
		i += 32
		utc[2] = float64(GetBitU(buff[index:], i, 8)) * scP2p12
		i += 8
		utc[3] = float64(GetBitU(buff[index:], i, 8))
		i += 8
		utc[4] = float64(GetBits(buff[index:], i, 8))
		i += 8
		utc[5] = float64(GetBitU(buff[index:], i, 8))
		i += 8
		utc[6] = float64(GetBitU(buff[index:], i, 8))
		i += 8
		utc[7] = float64(GetBits(buff[index:], i, 8))
		return true
	}
	return false
}

/* DecodeFrame decodes the ephemeris and (when requested) the ionosphere and
* UTC parameter sets out of a 150-byte GPS/QZSS LNAV subframe 1-5
* reassembly. Passing a nil ion/utc skips that decode. */
func DecodeFrame(buff []uint8, eph *Eph, ion, utc *[8]float64) bool {
	if eph != nil && !DecodeFrameEph(buff, eph) {
		return false
	}
	if ion != nil && !DecodeFrameIon(buff, ion) {
		return false
	}
	if utc != nil && !DecodeFrameUtc(buff, utc) {
		return false
	}
	return true
}
