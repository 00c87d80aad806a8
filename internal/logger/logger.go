package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New собирает логгер приложения. Формат и уровень зависят от окружения:
// в релизе пишем JSON с уровнем Info, локально - текст с уровнем Debug.
func New(output io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(output)

	if isRelease() {
		l.SetFormatter(new(logrus.JSONFormatter))
		l.SetLevel(logrus.InfoLevel)
	} else {
		l.SetFormatter(new(logrus.TextFormatter))
		l.SetLevel(logrus.DebugLevel)
	}

	return l
}

func isRelease() bool {
	return os.Getenv("GIN_MODE") == "release"
}
