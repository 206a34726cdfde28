// Package logging builds the diagnostic logger. Diagnostics go to stderr
// and stay out of the user-facing console output unless they are warnings.
package logging

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultLevel keeps routine per-file diagnostics quiet.
const DefaultLevel = logrus.WarnLevel

// New returns a text logger writing to w at level.
func New(w io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

// ForRun tags every entry of one organizer run with a fresh run ID.
func ForRun(l logrus.FieldLogger) (logrus.FieldLogger, string) {
	id := uuid.NewString()
	return l.WithField("run", id), id
}
