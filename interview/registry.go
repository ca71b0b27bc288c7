package interview

import (
	"sync"
	"time"

	"github.com/adamspd/InterviewCoach/models"
	"github.com/adamspd/InterviewCoach/utils"
)

// Registry maps opaque session IDs to live sessions. It is owned by the
// transport layer; the core components only ever see the session they are
// handed.
type Registry struct {
	sessions  map[string]*models.Session
	mutex     sync.RWMutex
	idleLimit time.Duration
}

func NewRegistry(idleLimit time.Duration) *Registry {
	registry := &Registry{
		sessions:  make(map[string]*models.Session),
		idleLimit: idleLimit,
	}

	// Start a cleanup goroutine
	go registry.cleanupIdleSessions()

	return registry
}

func (r *Registry) CreateSession(problemID, title, description string) *models.Session {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	sessionID := utils.GenerateSessionID()
	session := models.NewSession(sessionID, problemID, title, description)
	r.sessions[sessionID] = session

	utils.LogSession("Created session %s for problem %q", sessionID[:8], title)
	return session
}

func (r *Registry) GetSession(sessionID string) (*models.Session, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	session, exists := r.sessions[sessionID]
	return session, exists
}

func (r *Registry) DeleteSession(sessionID string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	delete(r.sessions, sessionID)
}

func (r *Registry) Count() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.sessions)
}

// cleanupIdleSessions drops sessions that stopped receiving events. A client
// that disconnects without ending the interview would otherwise leak its
// session forever.
func (r *Registry) cleanupIdleSessions() {
	ticker := time.NewTicker(15 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		r.sweepIdle(time.Now())
	}
}

// sweepIdle removes sessions idle past the limit. Sessions are snapshotted
// first so no per-session lock is taken while the registry lock is held; a
// session stuck in a long responder call can only stall its own check.
func (r *Registry) sweepIdle(now time.Time) {
	r.mutex.RLock()
	live := make(map[string]*models.Session, len(r.sessions))
	for id, session := range r.sessions {
		live[id] = session
	}
	r.mutex.RUnlock()

	var stale []string
	for id, session := range live {
		session.Lock()
		idle := now.Sub(session.LastActivity)
		session.Unlock()
		if idle > r.idleLimit {
			stale = append(stale, id)
		}
	}

	if len(stale) == 0 {
		return
	}

	r.mutex.Lock()
	for _, id := range stale {
		delete(r.sessions, id)
	}
	r.mutex.Unlock()
	utils.LogSession("Cleaned up %d idle sessions", len(stale))
}
