package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"", "dev", "prod", "PRODUCTION"} {
		l, err := New(mode)
		if err != nil {
			t.Fatalf("New(%q): %v", mode, err)
		}
		l.Sync()
	}
	if _, err := New("verbose"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestWithCarriesFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}
	l.With("run", "abc").Warn("dataset failed", "dataset", "materials")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["run"] != "abc" || fields["dataset"] != "materials" {
		t.Errorf("unexpected fields %v", fields)
	}
}

func TestNopDiscards(t *testing.T) {
	l := Nop()
	l.Info("ignored", "k", 1)
	l.Sync()
}
