package logging

import (
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupParams configures the application logger.
type SetupParams struct {
	LogFileName string
	LogLevel    string
}

// Setup points logrus at a rotating log file. The TUI owns the terminal, so
// nothing is ever written to stdout; with no file name configured the log
// lands next to the config as fitdash.log in the given directory.
func Setup(configDir string, params SetupParams) {
	logrus.SetLevel(GetLevel(params.LogLevel))

	fileName := params.LogFileName
	if fileName == "" {
		fileName = filepath.Join(configDir, "fitdash.log")
	}
	if !strings.HasSuffix(fileName, ".log") {
		fileName += ".log"
	}

	logrus.SetOutput(&lumberjack.Logger{
		Filename:   fileName,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		LocalTime:  false, // false -> use UTC
		Compress:   true,
	})
}

// GetLevel maps a config string to a logrus level.
func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "info":
		return logrus.InfoLevel
	case "trace":
		return logrus.TraceLevel
	case "warn":
		return logrus.WarnLevel
	default:
		return logrus.InfoLevel
	}
}
