package conn

import (
	"errors"
	"testing"
)

func TestNoopProbe_AliveSession(t *testing.T) {
	probe := NewNoopProbe(nil)
	session := &fakeSession{}

	if !probe.IsAlive(session) {
		t.Error("Expected alive session")
	}
	if session.noopCalls != 1 {
		t.Errorf("Expected 1 NOOP round trip, got %d", session.noopCalls)
	}
}

func TestNoopProbe_DeadSession(t *testing.T) {
	probe := NewNoopProbe(nil)
	session := &fakeSession{noopErr: errors.New("write: broken pipe")}

	if probe.IsAlive(session) {
		t.Error("Expected dead session when the probe errors")
	}
}

func TestNoopProbe_NilSession(t *testing.T) {
	probe := NewNoopProbe(nil)

	if probe.IsAlive(nil) {
		t.Error("Expected nil session to be reported dead")
	}
}
