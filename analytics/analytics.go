package analytics

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	maxEvents = 5000

	// Hourly sweep thresholds over the trailing window.
	errorEventAlertThreshold = 25
	voteEventNoticeThreshold = 200
)

// Event is one fire-and-forget analytics entry.
type Event struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Data      map[string]interface{} `json:"data,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

// Log is a bounded in-memory event log. Tracking never blocks a caller's
// flow and never returns an error.
type Log struct {
	mu     sync.Mutex
	events []Event
}

func NewLog() *Log {
	return &Log{}
}

// Track records an event, dropping the oldest entries past the cap.
func (l *Log) Track(name string, data map[string]interface{}) Event {
	ev := Event{
		ID:        uuid.NewString(),
		Name:      name,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}

	l.mu.Lock()
	l.events = append(l.events, ev)
	if len(l.events) > maxEvents {
		l.events = l.events[len(l.events)-maxEvents:]
	}
	l.mu.Unlock()

	return ev
}

// Snapshot returns a copy of the current log.
func (l *Log) Snapshot() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// SweepAlerts scans the trailing hour of events and logs when thresholds
// are crossed. Read-only; safe to run concurrently with request handling.
func (l *Log) SweepAlerts() {
	cutoff := time.Now().UTC().Add(-time.Hour)

	counts := make(map[string]int)
	for _, ev := range l.Snapshot() {
		if ev.Timestamp.After(cutoff) {
			counts[ev.Name]++
		}
	}

	if n := counts["upstream_error"]; n >= errorEventAlertThreshold {
		log.Printf("ALERT: %d upstream errors in the last hour", n)
	}
	if n := counts["vote"]; n >= voteEventNoticeThreshold {
		log.Printf("Notice: unusually high vote volume in the last hour: %d", n)
	}
	log.Printf("Analytics sweep complete: %d event names in window", len(counts))
}
