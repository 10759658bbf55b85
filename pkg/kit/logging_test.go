package kit

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLogger_BadLevel(t *testing.T) {
	if _, err := NewLogger("inventory", LogOptions{Level: "loud"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNewLogger_Defaults(t *testing.T) {
	log, err := NewLogger("inventory", LogOptions{Level: "debug", Output: "stderr", SessionID: "s1"})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	defer func() { _ = log.Sync() }()

	if !log.Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("debug level not enabled")
	}
}
