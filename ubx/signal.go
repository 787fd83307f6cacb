package ubx

import "github.com/GHolk/ubxgo/gnssgo"

/* ubxSys maps a UBX gnssId to the internal system bitmask. */
func ubxSys(gnssID int) int {
	switch gnssID {
	case 0:
		return gnssgo.SYS_GPS
	case 1:
		return gnssgo.SYS_SBS
	case 2:
		return gnssgo.SYS_GAL
	case 3:
		return gnssgo.SYS_CMP
	case 5:
		return gnssgo.SYS_QZS
	case 6:
		return gnssgo.SYS_GLO
	}
	return 0
}

/* ubxSig maps a (system, UBX sigId) pair to an observation code. */
func ubxSig(sys, sigID int) uint8 {
	switch sys {
	case gnssgo.SYS_GPS:
		switch sigID {
		case 0:
			return gnssgo.CODE_L1C
		case 3:
			return gnssgo.CODE_L2L
		case 4:
			return gnssgo.CODE_L2S
		}
	case gnssgo.SYS_GLO:
		switch sigID {
		case 0:
			return gnssgo.CODE_L1C
		case 2:
			return gnssgo.CODE_L2C
		}
	case gnssgo.SYS_GAL:
		switch sigID {
		case 0:
			return gnssgo.CODE_L1C
		case 1:
			return gnssgo.CODE_L1B
		case 5:
			return gnssgo.CODE_L7I
		case 6:
			return gnssgo.CODE_L7Q
		}
	case gnssgo.SYS_QZS:
		switch sigID {
		case 0:
			return gnssgo.CODE_L1C
		case 1:
			return gnssgo.CODE_L1Z
		case 4:
			return gnssgo.CODE_L2S
		case 5:
			return gnssgo.CODE_L2L
		}
	case gnssgo.SYS_CMP:
		switch sigID {
		case 0, 1:
			return gnssgo.CODE_L2I
		case 2, 3:
			return gnssgo.CODE_L7I
		}
	case gnssgo.SYS_SBS:
		if sigID == 0 {
			return gnssgo.CODE_L1C
		}
	}
	return gnssgo.CODE_NONE
}

/* sigIdx resolves the frequency-slot index an obs code lands in, or -1 when
* no slot (extended-obs support disabled) is available. */
func sigIdx(sys int, code uint8) int {
	idx := gnssgo.Code2Idx(sys, code)
	if idx >= 0 && idx < gnssgo.NFREQ {
		return idx
	}
	return -1
}
