// Package logging is a thin helper around "github.com/op/go-logging" to
// keep the per-file boilerplate down to a single call.
package logging

import (
	"log"
	"os"

	golog "github.com/op/go-logging"

	"github.com/frankkopp/chesscore/internal/config"
)

var (
	standardLog *golog.Logger
	testLog     *golog.Logger

	standardFormat = golog.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`,
	)
)

func init() {
	standardLog = golog.MustGetLogger("chesscore")
	testLog = golog.MustGetLogger("chesscore-test")
}

// GetLog returns the standard package logger, configured with a stdout
// backend and the module's log level from config.
func GetLog() *golog.Logger {
	backend := golog.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := golog.NewBackendFormatter(backend, standardFormat)
	leveled := golog.AddModuleLevel(formatted)
	leveled.SetLevel(golog.Level(config.Settings.Log.Level), "")
	standardLog.SetBackend(leveled)
	return standardLog
}

// GetTestLog returns a logger intended for use from _test.go files, always
// at DEBUG level regardless of the configured production log level.
func GetTestLog() *golog.Logger {
	backend := golog.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := golog.NewBackendFormatter(backend, standardFormat)
	leveled := golog.AddModuleLevel(formatted)
	leveled.SetLevel(golog.DEBUG, "")
	testLog.SetBackend(leveled)
	return testLog
}
