// Package obslog builds the structured, file-backed logger goedit attaches
// to the fatal/recoverable error taxonomy (spec.md §7). It never writes to
// stdout or stderr while the editor owns the screen; spec.md §5 reserves
// those for the TTY frame buffer alone.
package obslog

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a *zap.Logger writing JSON lines to path, tagged with a
// fresh session_id for this process run. If path is empty, logging is a
// safe no-op: no file is created and every call is dropped. The returned
// func flushes buffered log entries and should run via defer.
func New(path string) (*zap.Logger, func(), error) {
	if path == "" {
		return zap.NewNop(), func() {}, nil
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, func() {}, err
	}

	sessionID := uuid.New().String()
	tagged := logger.With(zap.String("session_id", sessionID))
	return tagged, func() { _ = logger.Sync() }, nil
}
