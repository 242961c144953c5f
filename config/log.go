package config

import (
	"fmt"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
)

// NamedLogger creates named package logger.
func NamedLogger(name string) logrus.Logger {
	return logrus.Logger{
		Out: os.Stderr,
		Formatter: &CustomTextFormatter{
			TextFormatter: logrus.TextFormatter{
				ForceColors: true,
			},
			name: name,
		},
		Hooks: make(logrus.LevelHooks),
		Level: loggingLevel(),
	}
}

// CustomTextFormatter ...
type CustomTextFormatter struct {
	logrus.TextFormatter
	name string
}

// Format renders a single log entry
func (f *CustomTextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	_, file, no, _ := runtime.Caller(5)
	entry.Message = fmt.Sprintf("[%s][%-15s:%03d] %s", f.name, path.Base(file), no, entry.Message)
	return f.TextFormatter.Format(entry)
}

func loggingLevel() logrus.Level {
	level, err := logrus.ParseLevel(os.Getenv("ACTIVETARGET_LOG_LEVEL"))
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
