package gnssgo

import "github.com/sirupsen/logrus"

/* Log is the package-wide structured logger. The decoder never treats a
* malformed frame or unsupported message as fatal, so nothing in this module
* ever logs at Error level. */
var Log = logrus.New()

func init() {
	Log.SetLevel(logrus.InfoLevel)
}

/* TraceLevel sets the minimum level at which Log emits records. */
func TraceLevel(level int) {
	switch {
	case level >= 4:
		Log.SetLevel(logrus.TraceLevel)
	case level == 3:
		Log.SetLevel(logrus.DebugLevel)
	case level == 2:
		Log.SetLevel(logrus.WarnLevel)
	default:
		Log.SetLevel(logrus.InfoLevel)
	}
}

/* Tracef logs at the given numeric trace level (4-5 -> Trace, 3 -> Debug,
* 2 -> Warn) with component/msg_type/sat fields when provided. */
func Tracef(level int, component string, fields logrus.Fields, format string, args ...interface{}) {
	entry := Log.WithField("component", component)
	if fields != nil {
		entry = entry.WithFields(fields)
	}
	switch {
	case level >= 4:
		entry.Tracef(format, args...)
	case level == 3:
		entry.Debugf(format, args...)
	default:
		entry.Warnf(format, args...)
	}
}
