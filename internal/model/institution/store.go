package institution

import "strings"

// Store exposes directory lookups for the search fallback.
type Store interface {
	List() []Institution
	FindByRegion(region string) []Institution
}

// MemoryStore implements Store with an in-memory slice, suitable for the
// small seeded directory.
type MemoryStore struct {
	items []Institution
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied entries.
func NewMemoryStore(items []Institution) *MemoryStore {
	return &MemoryStore{items: append([]Institution(nil), items...)}
}

// List returns every directory entry.
func (s *MemoryStore) List() []Institution {
	return append([]Institution(nil), s.items...)
}

// FindByRegion returns entries serving the given region, nationwide
// services included. An empty region matches everything.
func (s *MemoryStore) FindByRegion(region string) []Institution {
	region = strings.TrimSpace(region)
	if region == "" {
		return s.List()
	}

	matched := make([]Institution, 0, len(s.items))
	for _, item := range s.items {
		if item.Region == "전국" || strings.Contains(item.Region, region) || strings.Contains(region, item.Region) {
			matched = append(matched, item)
		}
	}
	return matched
}
