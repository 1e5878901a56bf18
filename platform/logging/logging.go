package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Init configures the process-wide logrus logger. LOG_LEVEL falls back to
// info when unset or unparsable.
func Init() {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
