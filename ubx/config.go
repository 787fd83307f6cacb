package ubx

import (
	"fmt"
	"strconv"
	"strings"
)

/* cfgCmd names the CFG-* messages the generator knows how to build, in the
* same order as cfgID/cfgFields. */
var cfgCmd = []string{
	"PRT", "USB", "MSG", "NMEA", "RATE", "CFG", "TP", "NAV2", "DAT", "INF",
	"RST", "RXM", "ANT", "FXN", "SBAS", "LIC", "TM", "TM2", "TMODE", "EKF",
	"GNSS", "ITFM", "LOGFILTER", "NAV5", "NAVX5", "ODO", "PM2", "PWR", "RINV", "SMGR",
	"TMODE2", "TMODE3", "TPS", "TXSLOT",
	"VALDEL", "VALGET",
}

var cfgID = []uint8{
	0x00, 0x1B, 0x01, 0x17, 0x08, 0x09, 0x07, 0x1A, 0x06, 0x02,
	0x04, 0x11, 0x13, 0x0E, 0x16, 0x80, 0x10, 0x19, 0x1D, 0x12,
	0x3E, 0x39, 0x47, 0x24, 0x23, 0x1E, 0x3B, 0x57, 0x34, 0x62,
	0x36, 0x71, 0x31, 0x53,
	0x8C, 0x8B,
}

var cfgFields = [][]int{
	{fU1, fU1, fU2, fU4, fU4, fU2, fU2, fU2, fU2},    /* PRT */
	{fU2, fU2, fU2, fU2, fU2, fU2, fS32, fS32, fS32}, /* USB */
	{fU1, fU1, fU1, fU1, fU1, fU1, fU1, fU1},         /* MSG */
	{fU1, fU1, fU1, fU1},                             /* NMEA */
	{fU2, fU2, fU2},                                  /* RATE */
	{fU4, fU4, fU4, fU1},                             /* CFG */
	{fU4, fU4, fI1, fU1, fU2, fI2, fI2, fI4},         /* TP */
	{fU1, fU1, fU2, fU1, fU1, fU1, fU1, fI4, fU1, fU1, fU1, fU1, fU1, fU1, fU2, fU2, fU2, fU2,
		fU2, fU1, fU1, fU2, fU4, fU4}, /* NAV2 */
	{fR8, fR8, fR4, fR4, fR4, fR4, fR4, fR4, fR4},      /* DAT */
	{fU1, fU1, fU1, fU1, fU1, fU1, fU1, fU1, fU1, fU1}, /* INF */
	{fU2, fU1, fU1},                                    /* RST */
	{fU1, fU1},                                         /* RXM */
	{fU2, fU2},                                         /* ANT */
	{fU4, fU4, fU4, fU4, fU4, fU4, fU4, fU4},           /* FXN */
	{fU1, fU1, fU1, fU1, fU4},                          /* SBAS */
	{fU2, fU2, fU2, fU2, fU2, fU2},                     /* LIC */
	{fU4, fU4, fU4},                                    /* TM */
	{fU1, fU1, fU2, fU4, fU4},                          /* TM2 */
	{fU4, fI4, fI4, fI4, fU4, fU4, fU4},                /* TMODE */
	{fU1, fU1, fU1, fU1, fU4, fU2, fU2, fU1, fU1, fU2}, /* EKF */
	{fU1, fU1, fU1, fU1, fU1, fU1, fU1, fU1, fU4},      /* GNSS */
	{fU4, fU4},                                         /* ITFM */
	{fU1, fU1, fU2, fU2, fU2, fU4},                     /* LOGFILTER */
	{fU2, fU1, fU1, fI4, fU4, fI1, fU1, fU2, fU2, fU2, fU2, fU1, fU1, fU1, fU1, fU1, fU1, fU2,
		fU1, fU1, fU1, fU1, fU1, fU1}, /* NAV5 */
	{fU2, fU2, fU4, fU1, fU1, fU1, fU1, fU1, fU1, fU1, fU1, fU1, fU1, fU2, fU1, fU1, fU1, fU1,
		fU1, fU1, fU1, fU1, fU1, fU1, fU2}, /* NAVX5 */
	{fU1, fU1, fU1, fU1, fU1, fU1, fU1, fU1, fU1},                /* ODO */
	{fU1, fU1, fU1, fU1, fU4, fU4, fU4, fU4, fU2, fU2},           /* PM2 */
	{fU1, fU1, fU1, fU1, fU4},                                    /* PWR */
	{fU1, fU1},                                                   /* RINV */
	{fU1, fU1, fU2, fU2, fU1, fU1, fU2, fU2, fU2, fU2, fU4},      /* SMGR */
	{fU1, fU1, fU2, fI4, fI4, fI4, fU4, fU4, fU4},                /* TMODE2 */
	{fU1, fU1, fU2, fI4, fI4, fI4, fU4, fU4, fU4},                /* TMODE3 */
	{fU1, fU1, fU1, fU1, fI2, fI2, fU4, fU4, fU4, fU4, fI4, fU4}, /* TPS */
	{fU1, fU1, fU1, fU1, fU4, fU4, fU4, fU4, fU4},                /* TXSLOT */
	{fU1, fU1, fU1, fU1},                                         /* VALDEL */
	{fU1, fU1, fU2},                                              /* VALGET */
}

/* stoi parses a decimal or "0x"-prefixed hex integer, the two numeral
* styles gen_ubx accepts for a CFG-* argument. */
func stoi(s string) int {
	var n uint32
	if k, _ := fmt.Sscanf(s, "0x%X", &n); k == 1 {
		return int(n)
	}
	v, _ := strconv.Atoi(s)
	return v
}

/* GenCfg builds the binary frame for a classic CFG-* message from its
* space-separated textual form, e.g. "CFG-MSG 240 2 1 1 1 1 1 1". It returns
* nil if msg doesn't name a known CFG-* command. "CFG-VALSET <key> <value>"
* is routed to GenValsetCmd with LayerRAM, since VALSET's single key/value
* pair doesn't fit the fixed-field tables the rest of this function uses. */
func GenCfg(msg string) []uint8 {
	if strings.HasPrefix(strings.ToUpper(msg), "CFG-VALSET ") {
		buff, err := GenValsetCmd(msg, LayerRAM)
		if err != nil {
			return nil
		}
		return buff
	}

	args := strings.Split(msg, " ")
	if len(args) < 1 || len(args[0]) < 4 || !strings.EqualFold(args[0][:4], "CFG-") {
		return nil
	}
	idx := -1
	for i, name := range cfgCmd {
		if strings.EqualFold(args[0][4:], name) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	buff := make([]uint8, 4+2+32*len(cfgFields[idx])+2)
	q := 0
	buff[q] = sync1
	q++
	buff[q] = sync2
	q++
	buff[q] = ubxCfg
	q++
	buff[q] = cfgID[idx]
	q++
	q += 2 /* length, patched below */

	for j, field := range cfgFields[idx] {
		arg := ""
		if j+1 < len(args) {
			arg = args[j+1]
		}
		switch field {
		case fU1:
			setU1(buff[q:], uint8(stoi(arg)))
			q++
		case fU2:
			setU2(buff[q:], uint16(stoi(arg)))
			q += 2
		case fU4:
			setU4(buff[q:], uint32(stoi(arg)))
			q += 4
		case fI1:
			setI1(buff[q:], int8(stoi(arg)))
			q++
		case fI2:
			setI2(buff[q:], int16(stoi(arg)))
			q += 2
		case fI4:
			setI4(buff[q:], int32(stoi(arg)))
			q += 4
		case fR4:
			v, _ := strconv.ParseFloat(arg, 32)
			setR4(buff[q:], float32(v))
			q += 4
		case fR8:
			v, _ := strconv.ParseFloat(arg, 64)
			setR8(buff[q:], v)
			q += 8
		case fS32:
			copy(buff[q:q+32], []byte(fmt.Sprintf("%-32.32s", arg)))
			q += 32
		}
	}
	n := q + 2
	buff = buff[:n]
	setU2(buff[4:], uint16(n-8))
	setChecksum(buff, n)
	return buff
}
