// Package logger provides the package-level zap logger used across Raybeam
// by the rendering core and its hosts.
package logger

import "go.uber.org/zap"

// Log is the process-wide logger. Init must be called once before use;
// packages that log before Init runs fall back to a no-op logger so a
// forgotten Init never panics a render.
var Log *zap.SugaredLogger

func init() {
	Log = zap.NewNop().Sugar()
}

// Init installs a development logger (human-readable console output).
// Call once from a host's main function.
func Init() {
	l, err := zap.NewDevelopment()
	if err != nil {
		Log = zap.NewNop().Sugar()
		return
	}
	Log = l.Sugar()
}

// InitProduction installs a JSON production logger.
func InitProduction() {
	l, err := zap.NewProduction()
	if err != nil {
		Log = zap.NewNop().Sugar()
		return
	}
	Log = l.Sugar()
}
