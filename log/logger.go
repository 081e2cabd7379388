package log

import (
	"io"
	"sync"

	"github.com/Sirupsen/logrus"
)

type customLogger struct {
	*logrus.Logger
	sync.Mutex
}

// global logger
var logger = customLogger{
	Logger: logrus.New(),
	Mutex:  sync.Mutex{},
}

// Fields are the structured fields attached to a log record.
type Fields map[string]interface{}

// WithFields returns an entry of the standard logger carrying the given fields.
func WithFields(fields Fields) *logrus.Entry {
	return logger.WithFields(logrus.Fields(fields))
}

// Debugf logs a message at level Debug on the standard logger.
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Infoln logs a message at level Info on the standard logger.
func Infoln(args ...interface{}) {
	logger.Infoln(args...)
}

// Infof logs a message at level Info on the standard logger.
func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Warnf logs a message at level Warn on the standard logger.
func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// Error logs a message at level Error on the standard logger.
func Error(args ...interface{}) {
	logger.Error(args...)
}

// Errorf logs a message at level Error on the standard logger.
func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

// Level are the logging levels
type Level logrus.Level

// log levels
const (
	DebugLevel = Level(logrus.DebugLevel)
	InfoLevel  = Level(logrus.InfoLevel)
	WarnLevel  = Level(logrus.WarnLevel)
	ErrorLevel = Level(logrus.ErrorLevel)
	FatalLevel = Level(logrus.FatalLevel)
	PanicLevel = Level(logrus.PanicLevel)
)

// SetLevel sets log level
func SetLevel(level Level) {
	logger.Lock()
	defer logger.Unlock()
	logger.Level = logrus.Level(level)
}

// SetOutput sets the destination of the standard logger.
func SetOutput(out io.Writer) {
	logger.Lock()
	defer logger.Unlock()
	logger.Out = out
}

// SetJSONFormat switches the standard logger between JSON and text records.
func SetJSONFormat(json bool) {
	logger.Lock()
	defer logger.Unlock()
	if json {
		logger.Formatter = &logrus.JSONFormatter{}
		return
	}
	logger.Formatter = &logrus.TextFormatter{}
}
