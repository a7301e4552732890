package community

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
)

// Counters holds the two vote buckets for one location. Seeded values are
// synthesized once at first sight and never change; only the real bucket is
// incremented by votes.
type Counters struct {
	SeededSafe   int `json:"seededSafe" firestore:"seededSafe"`
	SeededUnsafe int `json:"seededUnsafe" firestore:"seededUnsafe"`
	RealSafe     int `json:"realSafe" firestore:"realSafe"`
	RealUnsafe   int `json:"realUnsafe" firestore:"realUnsafe"`
}

func (c Counters) Safe() int   { return c.SeededSafe + c.RealSafe }
func (c Counters) Unsafe() int { return c.SeededUnsafe + c.RealUnsafe }
func (c Counters) Total() int  { return c.Safe() + c.Unsafe() }

// SafePercent is the displayed percentage, 50 when there are no votes.
func (c Counters) SafePercent() int {
	total := c.Total()
	if total == 0 {
		return 50
	}
	return int(float64(c.Safe())/float64(total)*100 + 0.5)
}

// Table is the full persisted vote table, keyed by canonical location key.
type Table map[string]Counters

// Store persists the table. Load returns an empty table when nothing has
// been persisted yet.
type Store interface {
	Load() (Table, error)
	Save(Table) error
}

// Service owns the in-memory table and writes through the Store after every
// mutation. The RNG is injected so tests get reproducible seed pairs.
type Service struct {
	mu    sync.Mutex
	table Table
	store Store
	rng   *rand.Rand
}

// New loads the persisted table. A load failure is logged and degraded to
// an empty table rather than failing startup.
func New(store Store, rng *rand.Rand) *Service {
	table, err := store.Load()
	if err != nil {
		log.Printf("community store load failed, starting empty: %v", err)
		table = Table{}
	}
	if table == nil {
		table = Table{}
	}
	return &Service{table: table, store: store, rng: rng}
}

// Get returns the counters for a location, seeding it on first sight.
func (s *Service) Get(key string) Counters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureLocked(key)
}

// Vote applies one safe/unsafe vote and persists the table. Returns the
// updated counters.
func (s *Service) Vote(key, choice string) (Counters, error) {
	if choice != "safe" && choice != "unsafe" {
		return Counters{}, fmt.Errorf("invalid vote %q", choice)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.ensureLocked(key)
	if choice == "safe" {
		c.RealSafe++
	} else {
		c.RealUnsafe++
	}
	s.table[key] = c
	s.persistLocked()
	return c, nil
}

// ensureLocked seeds a never-seen location with a synthetic baseline: a
// safe count of 60-200 with a 55-90% safe ratio. Persisted immediately so
// the baseline survives restarts unchanged.
func (s *Service) ensureLocked(key string) Counters {
	if c, ok := s.table[key]; ok {
		return c
	}

	safe := 60 + s.rng.Intn(141)
	ratio := 0.55 + s.rng.Float64()*0.35
	total := float64(safe) / ratio
	unsafe := int(total+0.5) - safe
	if unsafe < 0 {
		unsafe = 0
	}

	c := Counters{SeededSafe: safe, SeededUnsafe: unsafe}
	s.table[key] = c
	s.persistLocked()
	return c
}

// persistLocked writes the whole table; a failure is logged and absorbed so
// the in-memory view keeps serving.
func (s *Service) persistLocked() {
	if err := s.store.Save(s.table); err != nil {
		log.Printf("community store save failed: %v", err)
	}
}
