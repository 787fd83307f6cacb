package ubx

import "fmt"

/* Configuration-item layers a CFG-VALSET/VALDEL frame can target. */
const (
	LayerRAM     = 0x01
	LayerBBR     = 0x02
	LayerFlash   = 0x04
	LayerDefault = 0x08
)

/* valsetKey describes one configuration item: its 32-bit key ID (whose top
* nibble encodes the value's wire size) and that size in bytes. */
type valsetKey struct {
	id   uint32
	size int
}

/* valsetKeys names the subset of CFG-* key IDs this module can set. The
* full interface document lists several hundred; the ones below cover
* message-rate, port, and constellation-enable configuration, the knobs a
* decoder's own test fixtures exercise most. */
var valsetKeys = map[string]valsetKey{
	"CFG-RATE-MEAS":                    {0x30210001, 2},
	"CFG-RATE-NAV":                     {0x30210002, 2},
	"CFG-RATE-TIMEREF":                 {0x20210003, 1},
	"CFG-UART1-BAUDRATE":               {0x40520001, 4},
	"CFG-UART1INPROT-UBX":              {0x10730001, 1},
	"CFG-UART1OUTPROT-UBX":             {0x10740001, 1},
	"CFG-MSGOUT-UBX_RXM_RAWX_UART1":    {0x209102a5, 1},
	"CFG-MSGOUT-UBX_RXM_SFRBX_UART1":   {0x20910232, 1},
	"CFG-MSGOUT-UBX_NAV_TIMEGPS_UART1": {0x2091025e, 1},
	"CFG-SIGNAL-GPS_ENA":               {0x1031001f, 1},
	"CFG-SIGNAL-GAL_ENA":               {0x10310021, 1},
	"CFG-SIGNAL-BDS_ENA":               {0x10310022, 1},
	"CFG-SIGNAL-GLO_ENA":               {0x10310025, 1},
	"CFG-NAVSPG-DYNMODEL":              {0x20110021, 1},
}

/* valsetHeaderLen is the CFG-VALSET header: message class/id aren't
* included here, only the payload's fixed fields (version, layer, two
* reserved bytes). */
const valsetHeaderLen = 4

/* valsetID is CFG-VALSET's message id within the CFG class. */
const valsetID = 0x8A

/* GenValset builds a CFG-VALSET frame that sets exactly one key to value.
* version is normally 0; layers is a bitwise-OR of
* LayerRAM/LayerBBR/LayerFlash. Returns an error if key isn't in the
* catalogue. */
func GenValset(version, layers uint8, key string, value uint64) ([]uint8, error) {
	k, ok := valsetKeys[key]
	if !ok {
		return nil, fmt.Errorf("ubx: unknown CFG-VALSET key %q", key)
	}

	payload := make([]uint8, valsetHeaderLen+4+k.size)
	payload[0] = version
	payload[1] = layers
	field := payload[valsetHeaderLen:]
	setU4(field, k.id)
	switch k.size {
	case 1:
		setU1(field[4:], uint8(value))
	case 2:
		setU2(field[4:], uint16(value))
	case 4:
		setU4(field[4:], uint32(value))
	case 8:
		setU4(field[4:], uint32(value))
		setU4(field[8:], uint32(value>>32))
	}

	buff := make([]uint8, 6+len(payload)+2)
	buff[0], buff[1] = sync1, sync2
	buff[2], buff[3] = ubxCfg, valsetID
	setU2(buff[4:], uint16(len(payload)))
	copy(buff[6:], payload)
	setChecksum(buff, len(buff))
	return buff, nil
}

/* GenValsetCmd parses the textual form "CFG-VALSET <key> <value>" and
* builds the frame via GenValset with version 0 and the given layers. */
func GenValsetCmd(msg string, layers uint8) ([]uint8, error) {
	var key string
	var value uint64
	n, err := fmt.Sscanf(msg, "CFG-VALSET %s %d", &key, &value)
	if err != nil || n != 2 {
		return nil, fmt.Errorf("ubx: malformed CFG-VALSET command %q", msg)
	}
	return GenValset(0, layers, key, value)
}
