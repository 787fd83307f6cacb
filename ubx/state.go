package ubx

import (
	"fmt"
	"strings"

	"github.com/GHolk/ubxgo/gnssgo"
)

/* Options holds the per-session flags an inbound options string carries,
* parsed once at construction instead of re-scanned on every frame. */
type Options struct {
	EphAll   bool    /* -EPHALL: keep re-storing unchanged ephemerides */
	InvCp    bool    /* -INVCP: invert carrier-phase polarity (RXM-RAW) */
	Tadj     float64 /* -TADJ=tint: round time tags to a multiple of tint (s) */
	StdSlip  int     /* -STD_SLIP=std: flag a slip when cpStdev reaches or exceeds this (0: off) */
	MaxStdCp int     /* -MAX_STD_CP=n: reject carrier-phase above this cpStdev (0: use the 5 default) */
	GalFnav  bool    /* -GALFNAV: suppress I/NAV ephemeris publication */
	TrkmAdj  int     /* -TRKM_ADJ=k: GLONASS code-bias table (2 or 3) applied in TRK-MEAS, 0: off */
}

/* ParseOptions parses the space-separated inbound options string into
* Options via repeated substring scans, done once up front instead of on
* every decode call. */
func ParseOptions(opt string) Options {
	var o Options
	o.EphAll = strings.Contains(opt, "-EPHALL")
	o.InvCp = strings.Contains(opt, "-INVCP")
	o.GalFnav = strings.Contains(opt, "-GALFNAV")

	if q := strings.Index(opt, "-TADJ="); q >= 0 {
		fmt.Sscanf(opt[q:], "-TADJ=%f", &o.Tadj)
	}
	if q := strings.Index(opt, "-STD_SLIP="); q >= 0 {
		fmt.Sscanf(opt[q:], "-STD_SLIP=%d", &o.StdSlip)
	}
	if q := strings.Index(opt, "-MAX_STD_CP="); q >= 0 {
		fmt.Sscanf(opt[q:], "-MAX_STD_CP=%d", &o.MaxStdCp)
	}
	if q := strings.Index(opt, "-TRKM_ADJ="); q >= 0 {
		fmt.Sscanf(opt[q:], "-TRKM_ADJ=%d", &o.TrkmAdj)
	}
	return o
}

/* Decoder is one receiver's UBX decode session: the frame-sync byte window,
* the per-satellite subframe reassembly scratch, and the accumulated
* navigation/observation state. */
type Decoder struct {
	Opt Options

	Buff    [maxRawLen]uint8
	Len     int
	NumByte int

	Time gnssgo.Gtime

	SubFrm  [gnssgo.MAXSAT][subfrmLen]uint8
	GalSeen [gnssgo.MAXSAT]uint8 /* bitmap of I/NAV word types 0-6 seen since the last word-2 reset */

	NavData gnssgo.Nav
	ObsData gnssgo.Obs
	Sbsmsg  gnssgo.SbsMsg

	EphSat int
	EphSet int

	LockTime [gnssgo.MAXSAT][gnssgo.NFREQ + gnssgo.NEXOBS]float64
	Halfc    [gnssgo.MAXSAT][gnssgo.NFREQ + gnssgo.NEXOBS]uint8

	MsgType string /* last decoded message's human-readable tag, for logging */
}

/* NewDecoder returns a Decoder ready to accept Input bytes. */
func NewDecoder(opt Options) *Decoder {
	return &Decoder{Opt: opt}
}
