package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// Log flag names and values.
const (
	LevelFlagName  = "log-level"
	FormatFlagName = "log-format"

	FormatAuto = "auto" // text on a terminal, json otherwise
	FormatText = "text"
	FormatJSON = "json"

	DefaultLevel = "warn"
)

// RegisterLoggingFlags adds the logging flags to flagset.
func RegisterLoggingFlags(flagset *pflag.FlagSet) {
	flagset.String(LevelFlagName, DefaultLevel, "log level: debug, info, warn or error")
	flagset.String(FormatFlagName, FormatAuto, "log format: auto, text or json")
}

// newLogger builds a logger writing to w.
func newLogger(w io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", LevelFlagName, err)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)

	if format == FormatAuto {
		format = FormatJSON
		if isTerminal(w) {
			format = FormatText
		}
	}

	switch format {
	case FormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	case FormatText:
		// show full timestamps
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   isTerminal(w),
		})
	default:
		return nil, fmt.Errorf("invalid --%s %q, possible options are %s, %s and %s",
			FormatFlagName, format, FormatAuto, FormatText, FormatJSON)
	}

	return logger, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
