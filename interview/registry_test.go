package interview

import (
	"testing"
	"time"
)

func TestRegistryLifecycle(t *testing.T) {
	r := NewRegistry(2 * time.Hour)

	s := r.CreateSession("p1", "Two Sum", "Find two numbers that add up to target.")
	if s.ID == "" {
		t.Fatal("expected a generated session ID")
	}
	if r.Count() != 1 {
		t.Errorf("Count = %d, want 1", r.Count())
	}

	got, ok := r.GetSession(s.ID)
	if !ok || got != s {
		t.Error("GetSession should return the created session")
	}

	r.DeleteSession(s.ID)
	if r.Count() != 0 {
		t.Errorf("Count = %d after delete, want 0", r.Count())
	}
	if _, ok := r.GetSession(s.ID); ok {
		t.Error("deleted session should not be retrievable")
	}
}

func TestRegistryUnknownSession(t *testing.T) {
	r := NewRegistry(2 * time.Hour)
	if _, ok := r.GetSession("no-such-session"); ok {
		t.Error("unknown ID should not resolve")
	}
	// Deleting an unknown ID is a no-op.
	r.DeleteSession("no-such-session")
}

func TestIdleSweepRemovesOnlyStaleSessions(t *testing.T) {
	r := NewRegistry(2 * time.Hour)
	active := r.CreateSession("p1", "Two Sum", "desc")
	idle := r.CreateSession("p2", "Valid Parentheses", "desc")

	now := time.Now()
	idle.LastActivity = now.Add(-3 * time.Hour)

	r.sweepIdle(now)

	if _, ok := r.GetSession(active.ID); !ok {
		t.Error("active session swept")
	}
	if _, ok := r.GetSession(idle.ID); ok {
		t.Error("idle session survived the sweep")
	}
	if r.Count() != 1 {
		t.Errorf("Count = %d after sweep, want 1", r.Count())
	}
}

func TestRegistrySessionsAreIndependent(t *testing.T) {
	r := NewRegistry(2 * time.Hour)
	a := r.CreateSession("p1", "Two Sum", "desc")
	b := r.CreateSession("p2", "Valid Parentheses", "desc")

	if a.ID == b.ID {
		t.Fatal("session IDs must be unique")
	}
	a.HintsGiven = 3
	if b.HintsGiven != 0 {
		t.Error("mutating one session leaked into another")
	}
}
