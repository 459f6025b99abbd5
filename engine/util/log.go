package util

import (
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/pkg/errors"
)

var GLOBAL_LOG_LEVEL = LogLevelInfo
var GLOBAL_LOG_CATEGORIES = LogPhysics | LogPlatform | LogRaycast | LogWorld | LogIO

type LogLevel int

const (
	LogLevelError LogLevel = 1 << iota
	LogLevelWarning
	LogLevelInfo
	LogLevelDebug
)

type LogCategory int

const (
	LogPhysics LogCategory = 1 << iota
	LogPlatform
	LogRaycast
	LogWorld
	LogIO
)

func (c LogCategory) String() string {
	switch c {
	case LogPhysics:
		return "physics"
	case LogPlatform:
		return "platform"
	case LogRaycast:
		return "raycast"
	case LogWorld:
		return "world"
	case LogIO:
		return "io"
	}
	return "unknown"
}

// ParseLogLevel maps the CLI level names onto the category logger.
func ParseLogLevel(level string) LogLevel {
	switch level {
	case "debug":
		return LogLevelDebug
	case "warning", "warn":
		return LogLevelWarning
	case "error":
		return LogLevelError
	}
	return LogLevelInfo
}

func log(cat LogCategory, lvl LogLevel, txt string) {
	if lvl > GLOBAL_LOG_LEVEL {
		return
	}
	if GLOBAL_LOG_CATEGORIES&cat == 0 {
		return
	}
	entry := logs.WithTag("category", cat.String())
	switch lvl {
	case LogLevelError:
		entry.Error(errors.New(txt))
	case LogLevelWarning:
		entry.Warn(txt)
	case LogLevelDebug:
		entry.Debug(txt)
	default:
		entry.Info(txt)
	}
}

func LogPhysicsDebug(txt string) {
	log(LogPhysics, LogLevelDebug, txt)
}

func LogPlatformDebug(txt string) {
	log(LogPlatform, LogLevelDebug, txt)
}

func LogRaycastDebug(txt string) {
	log(LogRaycast, LogLevelDebug, txt)
}

func LogRaycastWarning(txt string) {
	log(LogRaycast, LogLevelWarning, txt)
}

func LogWorldInfo(txt string) {
	log(LogWorld, LogLevelInfo, txt)
}

func LogWorldDebug(txt string) {
	log(LogWorld, LogLevelDebug, txt)
}

func LogWorldWarning(txt string) {
	log(LogWorld, LogLevelWarning, txt)
}

func LogIOInfo(txt string) {
	log(LogIO, LogLevelInfo, txt)
}

func LogIOError(txt string) {
	log(LogIO, LogLevelError, txt)
}
