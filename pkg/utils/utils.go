package utils

import (
	"fmt"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Logger is the process wide logger. Debug level is on by default in debug builds.
var Logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(defaultLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// ConfigureLogger sets the level ("debug", "info", ...) and format ("text" or "json").
// An empty level keeps the build default.
func ConfigureLogger(level, format string) error {
	if level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return errors.Wrapf(err, "invalid log level %q", level)
		}
		Logger.SetLevel(lvl)
	}

	switch format {
	case "", "text":
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		Logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return errors.Errorf("invalid log format %q", format)
	}
	return nil
}

// PrintSnapshot logs the contents of a store snapshot under a title, sorted by key
func PrintSnapshot[V any](title string, snapshot map[string]V) {
	Logger.Infof("%s", title)
	if len(snapshot) == 0 {
		Logger.Info("    (empty)")
		return
	}

	keys := make([]string, 0, len(snapshot))
	for k := range snapshot {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		Logger.Infof("    %s: %s", k, fmt.Sprint(snapshot[k]))
	}
}
