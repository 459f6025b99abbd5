package util

import (
	"fmt"
	"testing"

	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *[]logs.Entry {
	entries := make([]logs.Entry, 0)
	logs.SetLogger(func(e logs.Entry) {
		entries = append(entries, e)
	})
	t.Cleanup(func() {
		logs.SetLogger(func(e logs.Entry) { fmt.Println(e) })
	})
	return &entries
}

func TestLogErrorLevelCarriesError(t *testing.T) {
	entries := captureLogs(t)

	LogIOError("[FetchLevel] level.nbt failed")

	require.Len(t, *entries, 1)
	entry := (*entries)[0]
	require.Equal(t, logs.ErrorLevel, entry.Level())
	require.EqualError(t, entry.GetError(), "[FetchLevel] level.nbt failed")
	require.Equal(t, "io", entry.Tags()["category"])
}

func TestLogFiltersByLevelAndCategory(t *testing.T) {
	entries := captureLogs(t)
	level, categories := GLOBAL_LOG_LEVEL, GLOBAL_LOG_CATEGORIES
	defer func() {
		GLOBAL_LOG_LEVEL, GLOBAL_LOG_CATEGORIES = level, categories
	}()

	GLOBAL_LOG_LEVEL = LogLevelInfo
	LogPhysicsDebug("dropped by level")
	LogWorldWarning("kept")
	require.Len(t, *entries, 1)
	require.Equal(t, logs.WarningLevel, (*entries)[0].Level())

	GLOBAL_LOG_CATEGORIES = LogPhysics
	LogWorldWarning("dropped by category")
	require.Len(t, *entries, 1)

	GLOBAL_LOG_LEVEL = ParseLogLevel("debug")
	LogPhysicsDebug("kept")
	require.Len(t, *entries, 2)
	require.Equal(t, "physics", (*entries)[1].Tags()["category"])
}
