package ubx

import "github.com/GHolk/ubxgo/gnssgo"

/* decode verifies the frame checksum and routes it to its message-specific
* decoder. */
func (d *Decoder) decode() Status {
	ctype := int(d.Buff[2])<<8 | int(d.Buff[3])

	if !checksum(d.Buff[:d.Len], d.Len) {
		gnssgo.Tracef(2, "ubx", nil, "checksum error: type=%04x len=%d", ctype, d.Len)
		return StatusError
	}

	switch ctype {
	case idRxmRaw:
		return d.decodeRxmRaw()
	case idRxmRawx:
		return d.decodeRxmRawx()
	case idRxmSfrb:
		return d.decodeRxmSfrb()
	case idRxmSfrbx:
		return d.decodeRxmSfrbx()
	case idNavSol:
		return d.decodeNavSol()
	case idNavTime:
		return d.decodeNavTime()
	case idTrkMeas:
		return d.decodeTrkMeas()
	case idTrkD5:
		return d.decodeTrkD5()
	case idTrkSfrbx:
		return d.decodeTrkSfrbx()
	}
	d.MsgType = "unknown"
	return StatusNone
}
