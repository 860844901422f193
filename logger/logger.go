package logger

import (
	"strings"

	"github.com/Scalingo/sclng-repo-languages/config"
	"github.com/Scalingo/sclng-repo-languages/model"
	"github.com/sirupsen/logrus"
)

// Setup will configure logrus logger
// json output is meant for log collectors, the text one for a terminal
func Setup(cfg config.Config) {
	var formatter logrus.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	if cfg.Logs.OutputLogsAsJSON {
		formatter = &logrus.JSONFormatter{}
	}

	logrus.SetFormatter(formatter)
	logrus.SetLevel(StringToLogrusLogType(cfg.Logs.Level))
}

// ForRepository returns an entry carrying the repository fields used by every fetch log line
func ForRepository(r model.RepositoryIdentity) *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"owner":      r.Owner,
		"repository": r.Name,
	})
}

// StringToLogrusLogType accepts any level known by logrus (case insensitive)
// an unknown or empty level falls back to error so a typo never makes the service verbose
func StringToLogrusLogType(logLevel string) logrus.Level {
	level, err := logrus.ParseLevel(strings.TrimSpace(logLevel))
	if err != nil {
		return logrus.ErrorLevel
	}

	return level
}
