//go:build !colordebug

package cie

import "log/slog"

func violated(err error) error {
	slog.Error("colour invariant violated", "err", err)
	return err
}
