package logger

import (
	"github.com/sirupsen/logrus"
)

// Logger implements internal.LogHandler on top of logrus.
type Logger struct {
	log *logrus.Logger
}

func NewLogger(debug bool) *Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}
	return &Logger{log: log}
}

func (l *Logger) FeatureEvent(feature, id, text string) {
	l.log.WithFields(logrus.Fields{"feature": feature, "id": id}).Info(text)
}

func (l *Logger) Debug(text string) {
	l.log.Debug(text)
}

func (l *Logger) Warn(text string) {
	l.log.Warn(text)
}

func (l *Logger) Error(text string, err error) {
	l.log.WithError(err).Error(text)
}
