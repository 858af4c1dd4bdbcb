package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New builds the process logger: JSON at info level in release, text at
// debug otherwise.
func New(output io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(output)
	l.SetFormatter(new(logrus.JSONFormatter))
	l.SetLevel(logrus.InfoLevel)

	if os.Getenv("ENVIRONMENT") != "prod" {
		l.SetLevel(logrus.DebugLevel)
		l.SetFormatter(new(logrus.TextFormatter))
	}

	return l
}
