package interview

import (
	"fmt"
	"time"

	"github.com/adamspd/InterviewCoach/models"
)

// Decision is the outcome of an intervention check. Reasons lists every
// condition that held, not just the first one.
type Decision struct {
	Speak   bool
	Reasons []string
}

// Policy decides whether the interviewer should speak after an inbound
// event. Policies are plain functions over the session so both modes share
// the same state with no structural difference.
type Policy func(s *models.Session, silenceSeconds float64, now time.Time) Decision

// AlwaysRespondPolicy implements push-to-talk semantics: the end of a
// complete utterance is the trigger, silence alone never is.
func AlwaysRespondPolicy(s *models.Session, silenceSeconds float64, now time.Time) Decision {
	return Decision{Speak: true, Reasons: []string{"complete message received"}}
}

// NewSilencePolicy returns the listening-mode policy. The cooldown check
// short-circuits everything: within cooldown of the last response the answer
// is always "keep listening", whatever else holds.
func NewSilencePolicy(cooldown time.Duration) Policy {
	return func(s *models.Session, silenceSeconds float64, now time.Time) Decision {
		if s.LastAIResponse != nil {
			since := now.Sub(*s.LastAIResponse)
			if since < cooldown {
				return Decision{
					Speak:   false,
					Reasons: []string{fmt.Sprintf("too soon since last response (%.1fs ago)", since.Seconds())},
				}
			}
		}

		var reasons []string
		if silenceSeconds >= 5 {
			reasons = append(reasons, "user has been silent for 5+ seconds")
		}
		if s.UserFocus == models.FocusStuck {
			reasons = append(reasons, "user appears to be stuck")
		}
		if s.LastAIResponse != nil && now.Sub(*s.LastAIResponse) > 2*time.Minute {
			reasons = append(reasons, "haven't spoken in 2 minutes")
		}
		if now.Sub(s.StartTime) > 5*time.Minute && !s.Progress.ApproachExplained {
			reasons = append(reasons, "5 minutes passed but approach not explained")
		}

		if len(reasons) > 0 {
			return Decision{Speak: true, Reasons: reasons}
		}
		return Decision{Speak: false, Reasons: []string{"user is progressing well, keep listening"}}
	}
}
