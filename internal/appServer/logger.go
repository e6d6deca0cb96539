package appServer

import (
	"io"
	"strings"

	"github.com/ds124wfegd/eventease/config"
	"github.com/sirupsen/logrus"
)

// setupLogger configures the global logrus logger; unknown levels fall back to info.
func setupLogger(cfg config.LoggerConfig, out io.Writer) {
	if strings.EqualFold(cfg.Format, "text") {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	logrus.SetOutput(out)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logrus.Warnf("unknown log level %q, using info", cfg.Level)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
