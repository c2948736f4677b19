//go:build !windows && !linux

package cmd

import (
	"errors"
	"log/slog"
	"runtime"
)

func install(*slog.Logger) error {
	return errors.New("install is not supported on " + runtime.GOOS)
}

func uninstall(*slog.Logger) error {
	return errors.New("uninstall is not supported on " + runtime.GOOS)
}
