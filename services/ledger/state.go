package ledger

import (
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"

	"tripdesk/models"
)

// ProfileStore holds the in-process guide profile document. The profile is
// seeded lazily on first read and mutated by merge-patches, so it survives
// only for the lifetime of the process.
type ProfileStore struct {
	mu      sync.Mutex
	profile map[string]interface{}
}

// Ensure returns the stored profile, seeding it from seed on first access.
// A seed failure leaves the store empty so a later request can retry.
func (s *ProfileStore) Ensure(seed func() (map[string]interface{}, error)) (map[string]interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		profile, err := seed()
		if err != nil {
			return nil, err
		}
		s.profile = profile
	}
	return cloneMap(s.profile), nil
}

// Merge applies a shallow key merge onto the profile and stamps updated_at.
// The profile must have been seeded first.
func (s *ProfileStore) Merge(patch map[string]interface{}) map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		s.profile = map[string]interface{}{}
	}
	for k, v := range patch {
		s.profile[k] = v
	}
	s.profile["updated_at"] = time.Now().UTC().Format(time.RFC3339)
	return cloneMap(s.profile)
}

// MergeSchedule merges patch into the profile's schedule sub-document.
func (s *ProfileStore) MergeSchedule(patch map[string]interface{}) map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		s.profile = map[string]interface{}{}
	}
	schedule, _ := s.profile["schedule"].(map[string]interface{})
	if schedule == nil {
		schedule = map[string]interface{}{}
	}
	for k, v := range patch {
		schedule[k] = v
	}
	s.profile["schedule"] = schedule
	s.profile["updated_at"] = time.Now().UTC().Format(time.RFC3339)
	return cloneMap(s.profile)
}

func cloneMap(src map[string]interface{}) map[string]interface{} {
	// A JSON round-trip gives callers a copy they can hand to the encoder
	// without racing later merges.
	raw, err := jsoniter.Marshal(src)
	if err != nil {
		out := make(map[string]interface{}, len(src))
		for k, v := range src {
			out[k] = v
		}
		return out
	}
	var out map[string]interface{}
	if err := jsoniter.Unmarshal(raw, &out); err != nil {
		return src
	}
	return out
}

// TransitBoard keeps the seeded live statuses and route updates served by the
// transport real-time endpoints.
type TransitBoard struct {
	mu      sync.Mutex
	status  map[string]models.LiveStatus
	updates []models.RouteUpdate
}

// EnsureStatus returns the live status for transportID, seeding it on first
// access.
func (b *TransitBoard) EnsureStatus(transportID string, seed func() models.LiveStatus) models.LiveStatus {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.status == nil {
		b.status = map[string]models.LiveStatus{}
	}
	st, ok := b.status[transportID]
	if !ok {
		st = seed()
		b.status[transportID] = st
	}
	st.LastUpdated = time.Now().UTC().Format(time.RFC3339)
	b.status[transportID] = st
	return st
}

// EnsureUpdates returns the route update feed, seeding it on first access.
func (b *TransitBoard) EnsureUpdates(seed func() []models.RouteUpdate) []models.RouteUpdate {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.updates == nil {
		b.updates = seed()
	}
	out := make([]models.RouteUpdate, len(b.updates))
	copy(out, b.updates)
	return out
}
