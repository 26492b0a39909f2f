package auth

import (
	"log"
	"sync"
	"time"

	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/db"
)

// Notifier fans session lifecycle events out to watchers keyed by session id.
// A subscriber gets at most one message (the session's end) and is then
// closed.
type Notifier struct {
	mu   sync.Mutex
	subs map[string][]chan string
}

// Sessions is the process-wide session notifier.
var Sessions = &Notifier{subs: make(map[string][]chan string)}

func (n *Notifier) Subscribe(sessionID string) (<-chan string, func()) {
	ch := make(chan string, 1)
	n.mu.Lock()
	n.subs[sessionID] = append(n.subs[sessionID], ch)
	n.mu.Unlock()

	cancel := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		chans := n.subs[sessionID]
		for i, c := range chans {
			if c == ch {
				n.subs[sessionID] = append(chans[:i], chans[i+1:]...)
				close(c)
				break
			}
		}
		if len(n.subs[sessionID]) == 0 {
			delete(n.subs, sessionID)
		}
	}
	return ch, cancel
}

// Notify tells every watcher of sessionID why the session ended.
func (n *Notifier) Notify(sessionID, reason string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.subs[sessionID] {
		select {
		case ch <- reason:
		default:
		}
	}
}

// StartSweeper deletes expired sessions on an interval and notifies their
// watchers, so an idle admin tab learns it was signed out without polling.
func StartSweeper(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			var expired []Session
			if err := db.DB.Where("expires_at < ?", time.Now()).Find(&expired).Error; err != nil {
				log.Printf("[auth] sweeper query: %v", err)
				continue
			}
			for _, s := range expired {
				if err := db.DB.Delete(&s).Error; err != nil {
					log.Printf("[auth] sweeper delete: %v", err)
					continue
				}
				Sessions.Notify(s.SessionID, "expired")
			}
		}
	}()
}
