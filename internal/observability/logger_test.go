package observability

import (
	"testing"

	"go.uber.org/zap"
)

func TestInitLoggerRejectsUnknownLevel(t *testing.T) {
	old := Logger
	t.Cleanup(func() { Logger = old })

	if err := InitLogger("loud", false); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if err := InitLogger("warn", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Logger.Core().Enabled(zap.DebugLevel) {
		t.Fatal("expected debug to be disabled at warn level")
	}
}
