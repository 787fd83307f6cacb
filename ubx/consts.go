// Package ubx decodes the u-blox UBX binary protocol: frame synchronization
// and checksum verification, legacy and modern raw-measurement messages, the
// undocumented TRK-MEAS/TRK-D5 tracker dumps, subframe reassembly into
// broadcast ephemerides via package gnssgo, and CFG-* configuration frame
// generation.
package ubx

const (
	sync1 = 0xB5 /* ubx message sync code 1 */
	sync2 = 0x62 /* ubx message sync code 2 */
	ubxCfg = 0x06

	idNavSol   = 0x0106
	idNavTime  = 0x0120
	idRxmRaw   = 0x0210
	idRxmSfrb  = 0x0211
	idRxmSfrbx = 0x0213
	idRxmRawx  = 0x0215
	idTrkD5    = 0x030A
	idTrkMeas  = 0x0310
	idTrkSfrbx = 0x030F
)

/* CFG-* payload field types, used by the command generator's field table */
const (
	fU1 = iota + 1
	fU2
	fU4
	fI1
	fI2
	fI4
	fR4
	fR8
	fS32
)

const cpstdValid = 5 /* std-dev threshold of carrier-phase valid */

const maxRawLen = 16384

/* subfrmLen is the per-satellite subframe scratch length: large enough for
* the widest reassembly buffer in use (10 BeiDou D2 subframe-1 pages plus
* the D2 page-102 UTC slot, 11 x 38 bytes). */
const subfrmLen = 418
