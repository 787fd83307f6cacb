package gnssgo

/* ObsD is a single-epoch, single-satellite observation record. */
type ObsD struct {
	Time Gtime
	Sat  uint8
	Rcv  uint8
	SNR  [NFREQ + NEXOBS]uint16
	LLI  [NFREQ + NEXOBS]uint8
	Code [NFREQ + NEXOBS]uint8
	L    [NFREQ + NEXOBS]float64
	P    [NFREQ + NEXOBS]float64
	D    [NFREQ + NEXOBS]float32
}

/* Obs is a growable buffer of ObsD records for one decode pass. */
type Obs struct {
	Data []ObsD
}

func (o *Obs) AddObsData(d ObsD) {
	o.Data = append(o.Data, d)
}

/* Eph is a GPS/QZSS/Galileo/BeiDou broadcast ephemeris set. */
type Eph struct {
	Sat            int
	Iode, Iodc     int
	Sva, Svh       int
	Week           int
	Code, Flag     int
	Toe, Toc, Ttr  Gtime
	A, E, I0       float64
	OMG0, Omg, M0  float64
	Deln, OMGd     float64
	Idot           float64
	Crc, Crs       float64
	Cuc, Cus       float64
	Cic, Cis       float64
	Toes           float64
	Fit            float64
	F0, F1, F2     float64
	Tgd            [6]float64
	Adot, Ndot     float64
}

/* GEph is a GLONASS broadcast ephemeris set (position/velocity/acceleration
* in PZ-90, not Kepler elements). */
type GEph struct {
	Sat            int
	Iode           int
	Frq            int
	Svh, Sva, Age  int
	Toe, Tof       Gtime
	Pos            [3]float64
	Vel            [3]float64
	Acc            [3]float64
	Taun, Gamn     float64
	DTaun          float64
}

/* SbsMsg is one raw 250-bit SBAS long message, still undecoded past its
* type field. */
type SbsMsg struct {
	Week, Tow int
	Prn, Rcv  uint8
	Msg       [29]uint8
}

/* Nav collects the decoded navigation-data products a session accumulates
* across subframes: per-satellite ephemeris sets and the ionosphere/UTC
* parameters broadcast alongside them. Limited to the fields the five
* supported constellations populate - no SBAS/DGPS/SSR correction tables,
* which belong to positioning, not decoding. */
type Nav struct {
	Ephs []Eph
	Geph []GEph

	UtcGps [8]float64
	UtcGlo [8]float64
	UtcGal [8]float64
	UtcQzs [8]float64
	UtcCmp [8]float64

	IonGps [8]float64
	IonGal [4]float64
	IonQzs [8]float64
	IonCmp [8]float64

	GloFcn [32]int
}

/* AddEph upserts an ephemeris by satellite+iode: an entry with the same
* satellite and iode, found by linear scan, is replaced; otherwise e is
* appended. */
func (n *Nav) AddEph(e Eph) {
	for i := range n.Ephs {
		if n.Ephs[i].Sat == e.Sat && n.Ephs[i].Iode == e.Iode {
			n.Ephs[i] = e
			return
		}
	}
	n.Ephs = append(n.Ephs, e)
}

func (n *Nav) AddGeph(g GEph) {
	for i := range n.Geph {
		if n.Geph[i].Sat == g.Sat {
			n.Geph[i] = g
			return
		}
	}
	n.Geph = append(n.Geph, g)
}

/* EphOfSat returns the ephemeris for sat that AddEph appended most recently,
* used by the decoder to skip re-storing an unchanged broadcast set. */
func (n *Nav) EphOfSat(sat int) (Eph, bool) {
	for i := len(n.Ephs) - 1; i >= 0; i-- {
		if n.Ephs[i].Sat == sat {
			return n.Ephs[i], true
		}
	}
	return Eph{}, false
}

/* GephOfSat is the GLONASS counterpart of EphOfSat. */
func (n *Nav) GephOfSat(sat int) (GEph, bool) {
	for i := range n.Geph {
		if n.Geph[i].Sat == sat {
			return n.Geph[i], true
		}
	}
	return GEph{}, false
}

/* Sta holds the subset of receiver/antenna station parameters a CFG-*
* configuration frame can report back; position/PVT fields are out of
* scope. */
type Sta struct {
	Name    string
	Marker  string
	AntDes  string
	AntSerial string
	RecType string
	RecVer  string
	RecSN   string
}
