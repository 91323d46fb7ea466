// Package logger holds the process-wide structured logger.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// L is the root logger. Handlers and services log through it (or a
// derived entry) so output stays structured end to end.
var L = logrus.New()

// Setup configures the root logger from the LOG_LEVEL / LOG_FORMAT env
// values already loaded into the process.
func Setup(level, format string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	L.SetLevel(lvl)
	L.SetOutput(os.Stdout)

	if format == "json" {
		L.SetFormatter(&logrus.JSONFormatter{})
	} else {
		L.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
