// Package logger configures the process-wide structured logger.
package logger

import "github.com/sirupsen/logrus"

// New returns a JSON logger at the given level. An unknown level falls back
// to info rather than failing a cold start over a typo.
func New(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	return log
}
