package ubx

/* Status tags what Input just produced: error, nothing yet, or which kind
* of decoded record is now available, spelled out so callers don't have to
* remember a magic return code. */
type Status int

const (
	StatusError   Status = -1
	StatusNone    Status = 0
	StatusObs     Status = 1
	StatusEph     Status = 2
	StatusSbas    Status = 3
	StatusIonUtc  Status = 9
)

/* sync looks for the two-byte B5 62 preamble in a rolling window. */
func sync(buff []uint8, data uint8) bool {
	buff[0] = buff[1]
	buff[1] = data
	return buff[0] == sync1 && buff[1] == sync2
}

/* checksum verifies the Fletcher-8 running-sum checksum over class, id,
* length and payload. */
func checksum(buff []uint8, length int) bool {
	var cka, ckb uint8
	for i := 2; i < length-2; i++ {
		cka += buff[i]
		ckb += cka
	}
	return cka == buff[length-2] && ckb == buff[length-1]
}

/* setChecksum writes the Fletcher-8 checksum trailer for a frame the caller
* has already filled in (used by the CFG-* generator). */
func setChecksum(buff []uint8, length int) {
	var cka, ckb uint8
	for i := 2; i < length-2; i++ {
		cka += buff[i]
		ckb += cka
	}
	buff[length-2] = cka
	buff[length-1] = ckb
}

/* Input feeds the decoder one stream byte at a time, synchronizing on the
* B5 62 preamble, buffering the length-prefixed frame, and dispatching it
* once complete. */
func (d *Decoder) Input(data uint8) Status {
	if d.NumByte == 0 {
		if !sync(d.Buff[:2], data) {
			return StatusNone
		}
		d.NumByte = 2
		return StatusNone
	}
	d.Buff[d.NumByte] = data
	d.NumByte++

	if d.NumByte == 6 {
		d.Len = int(u2l(d.Buff[4:6])) + 8
		if d.Len > maxRawLen {
			d.NumByte = 0
			return StatusError
		}
	}
	if d.NumByte < 6 || d.NumByte < d.Len {
		return StatusNone
	}
	d.NumByte = 0

	return d.decode()
}
