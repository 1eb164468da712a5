// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers that keep key names consistent.
//
// Logs go to stderr by default so that command output on stdout stays
// machine-readable.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment("production", "mailcheck"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//	log.Debug("address checked", logger.Email(addr), logger.Reason("invalid_domain"))
//
// Email masks the local part of an address, so raw addresses never end up
// in log storage.
package logger
