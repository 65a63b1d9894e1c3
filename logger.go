package rtspclient

import "github.com/sirupsen/logrus"

// Logging is an injected capability: a logrus.FieldLogger, defaulting to
// logrus.StandardLogger() when the caller passes nil. Grounded on
// go-gnss-ntrip's caster/handler, which take a logrus.FieldLogger directly
// rather than wrapping it in a project-specific interface.
func defaultLogger(l logrus.FieldLogger) logrus.FieldLogger {
	if l == nil {
		return logrus.StandardLogger()
	}
	return l
}
