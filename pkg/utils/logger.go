package utils

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

func (l LogLevel) String() string {
	return [...]string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}[l]
}

var isDebugMode bool
var debugOnce sync.Once

// IsDebug reports whether the application runs in debug mode.
func IsDebug() bool {
	debugOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		isDebugMode = env == "dev" || env == "local"
	})
	return isDebugMode
}

// LogMessage writes a log line at the given level. DEBUG lines are dropped
// outside of debug mode; ERROR and above go to stderr and are counted in the
// error metric.
func LogMessage(level LogLevel, service string, format string, args ...interface{}) {
	if level == DEBUG && !IsDebug() {
		return
	}

	_, file, line, _ := runtime.Caller(2)
	for i := len(file) - 1; i > 0; i-- {
		if file[i] == '/' {
			file = file[i+1:]
			break
		}
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")

	message := fmt.Sprintf(format, args...)
	logLine := fmt.Sprintf("[%s] %s [%s] %s:%d - %s",
		timestamp, level.String(), service, file, line, message)

	if level >= ERROR {
		fmt.Fprintln(os.Stderr, logLine)
		RecordError(service, level.String())
	} else {
		fmt.Fprintln(os.Stdout, logLine)
	}
}

func Debug(service, format string, args ...interface{}) {
	LogMessage(DEBUG, service, format, args...)
}

func Info(service, format string, args ...interface{}) {
	LogMessage(INFO, service, format, args...)
}

func Warn(service, format string, args ...interface{}) {
	LogMessage(WARN, service, format, args...)
}

func Error(service, format string, args ...interface{}) {
	LogMessage(ERROR, service, format, args...)
}

func Fatal(service, format string, args ...interface{}) {
	LogMessage(FATAL, service, format, args...)
	os.Exit(1)
}
