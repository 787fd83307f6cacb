// Package gnssgo is the GNSS domain library consumed by package ubx: satellite
// numbering, constellation/signal constants, time conversions, bit-level
// readers, CRC-24Q, and the per-constellation ephemeris reconstructors. It
// has no knowledge of the UBX wire format itself - everything here is
// generic to GPS/GLONASS/Galileo/BeiDou/SBAS decoding.
package gnssgo

const (
	PI     float64 = 3.1415926535897932
	CLIGHT float64 = 299792458.0 /* speed of light (m/s) */

	FREQ1      float64 = 1.57542e9  /* L1/E1/B1C frequency (Hz) */
	FREQ2      float64 = 1.22760e9  /* L2 frequency (Hz) */
	FREQ5      float64 = 1.17645e9  /* L5/E5a frequency (Hz) */
	FREQ7      float64 = 1.20714e9  /* E5b frequency (Hz) */
	FREQ1_GLO  float64 = 1.60200e9  /* GLONASS G1 base frequency (Hz) */
	DFRQ1_GLO  float64 = 0.56250e6  /* GLONASS G1 bias frequency (Hz/n) */
	FREQ2_GLO  float64 = 1.24600e9  /* GLONASS G2 base frequency (Hz) */
	DFRQ2_GLO  float64 = 0.43750e6  /* GLONASS G2 bias frequency (Hz/n) */
	FREQ1_CMP  float64 = 1.561098e9 /* BDS B1I frequency (Hz) */
	FREQ2_CMP  float64 = 1.20714e9  /* BDS B2I/B2b frequency (Hz) */

	/* navigation system bitmask */
	SYS_NONE = 0x00
	SYS_GPS  = 0x01
	SYS_SBS  = 0x02
	SYS_GLO  = 0x04
	SYS_GAL  = 0x08
	SYS_QZS  = 0x10
	SYS_CMP  = 0x20

	NFREQ  = 3 /* number of carrier-frequency slots */
	NEXOBS = 0 /* number of extended obs code slots */

	MINPRNGPS = 1
	MAXPRNGPS = 32
	NSATGPS   = MAXPRNGPS - MINPRNGPS + 1

	MINPRNGLO = 1
	MAXPRNGLO = 27
	NSATGLO   = MAXPRNGLO - MINPRNGLO + 1

	MINPRNGAL = 1
	MAXPRNGAL = 36
	NSATGAL   = MAXPRNGAL - MINPRNGAL + 1

	MINPRNQZS = 193
	MAXPRNQZS = 202
	NSATQZS   = MAXPRNQZS - MINPRNQZS + 1

	MINPRNCMP = 1
	MAXPRNCMP = 63
	NSATCMP   = MAXPRNCMP - MINPRNCMP + 1

	MINPRNSBS = 120
	MAXPRNSBS = 158
	NSATSBS   = MAXPRNSBS - MINPRNSBS + 1

	MAXSAT = NSATGPS + NSATGLO + NSATGAL + NSATQZS + NSATCMP + NSATSBS

	MAXOBS    = 96
	MAXRAWLEN = 16384

	CODE_NONE = 0
	CODE_L1C  = 1
	CODE_L1X  = 12 /* Galileo E1 B+C, fallback code for RXM-RAWX ver<1 */
	CODE_L1B  = 11
	CODE_L1Z  = 13
	CODE_L2C  = 14
	CODE_L2S  = 16
	CODE_L2L  = 17
	CODE_L7I  = 27
	CODE_L7Q  = 28
	CODE_L2I  = 40

	SNR_UNIT = 0.001 /* SNR unit (dBHz) */

	/* loss-of-lock indicator bits */
	LLI_SLIP  = 0x01 /* cycle slip */
	LLI_HALFC = 0x02 /* half-cycle not resolved */
	LLI_HALFS = 0x80 /* half-cycle subtracted from phase */
)

/* obs code -> leading RINEX band digit, used by Code2Idx/Code2Freq */
var obsBand = map[uint8]byte{
	CODE_L1C: '1', CODE_L1B: '1', CODE_L1Z: '1', CODE_L1X: '1',
	CODE_L2C: '2', CODE_L2S: '2', CODE_L2L: '2', CODE_L2I: '2',
	CODE_L7I: '7', CODE_L7Q: '7',
}
