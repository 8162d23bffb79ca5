// Package logger builds the structured logger shared by the CLI.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LevelEnv overrides the log level (debug, info, warn, error).
const LevelEnv = "LOG_LEVEL"

// New creates a logger writing text records to w.
// Default level is warn; debug forces debug level, otherwise LOG_LEVEL applies.
func New(w io.Writer, debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})

	log.SetLevel(logrus.WarnLevel)
	if level := os.Getenv(LevelEnv); level != "" {
		if lvl, err := logrus.ParseLevel(level); err == nil {
			log.SetLevel(lvl)
		}
	}
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// Discard returns a logger that drops everything. Used where no logger was
// configured, e.g. in tests.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.PanicLevel)
	return log
}
