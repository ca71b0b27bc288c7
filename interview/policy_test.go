package interview

import (
	"strings"
	"testing"
	"time"

	"github.com/adamspd/InterviewCoach/models"
)

func TestCooldownShortCircuitsEverything(t *testing.T) {
	s := newTestSession()
	now := time.Now()

	// Stuck user, real silence, but the last response was 10s ago.
	last := now.Add(-10 * time.Second)
	s.LastAIResponse = &last
	s.UserFocus = models.FocusStuck

	policy := NewSilencePolicy(25 * time.Second)
	decision := policy(s, 10, now)

	if decision.Speak {
		t.Error("cooldown must suppress intervention regardless of other reasons")
	}
	if len(decision.Reasons) != 1 || !strings.Contains(decision.Reasons[0], "too soon") {
		t.Errorf("Reasons = %v, want a single cooldown reason", decision.Reasons)
	}
}

func TestSilenceTriggersIntervention(t *testing.T) {
	s := newTestSession()
	now := time.Now()

	policy := NewSilencePolicy(25 * time.Second)
	decision := policy(s, 6, now)
	if !decision.Speak {
		t.Error("6 seconds of silence should trigger intervention")
	}
}

func TestAllHoldingReasonsAreCollected(t *testing.T) {
	s := newTestSession()
	now := time.Now()

	last := now.Add(-3 * time.Minute)
	s.LastAIResponse = &last
	s.UserFocus = models.FocusStuck
	s.StartTime = now.Add(-6 * time.Minute)

	policy := NewSilencePolicy(25 * time.Second)
	decision := policy(s, 7, now)
	if !decision.Speak {
		t.Fatal("expected intervention")
	}
	if len(decision.Reasons) != 4 {
		t.Errorf("Reasons = %v, want all 4 reasons listed", decision.Reasons)
	}
}

func TestListenWhenProgressingWell(t *testing.T) {
	s := newTestSession()
	now := time.Now()

	policy := NewSilencePolicy(25 * time.Second)
	decision := policy(s, 2, now)
	if decision.Speak {
		t.Errorf("expected listening decision, got reasons %v", decision.Reasons)
	}
}

func TestApproachDeadlineTriggersIntervention(t *testing.T) {
	s := newTestSession()
	now := time.Now()
	s.StartTime = now.Add(-6 * time.Minute)

	policy := NewSilencePolicy(25 * time.Second)
	decision := policy(s, 0, now)
	if !decision.Speak {
		t.Error("6 minutes without an explained approach should trigger intervention")
	}

	s.Progress.ApproachExplained = true
	decision = policy(s, 0, now)
	if decision.Speak {
		t.Errorf("approach explained should clear the deadline reason, got %v", decision.Reasons)
	}
}

func TestAlwaysRespondPolicy(t *testing.T) {
	s := newTestSession()
	decision := AlwaysRespondPolicy(s, 0, time.Now())
	if !decision.Speak {
		t.Error("always-respond policy must speak on every complete message")
	}
}
