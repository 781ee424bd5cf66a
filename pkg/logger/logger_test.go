package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewHonorsLevel(t *testing.T) {
	log, err := New("debug")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer func() { _ = log.Sync() }()
	if !log.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug enabled")
	}
}

func TestNewUnknownLevelFallsBackToInfo(t *testing.T) {
	log, err := New("chatty")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer func() { _ = log.Sync() }()
	if log.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug disabled at info level")
	}
	if !log.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("expected info enabled")
	}
}

func TestNamedNilBaseReturnsNop(t *testing.T) {
	log := Named(nil, "store")
	if log == nil {
		t.Fatalf("expected nop logger")
	}
	log.Info("ignored")
}

func TestMustPanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	Must(nil, errTest)
}

var errTest = errBuild("build failed")

type errBuild string

func (e errBuild) Error() string { return string(e) }
