package search

import (
	"context"

	"github.com/maumcare/counseling-backend/internal/model/institution"
)

// DirectorySearcher answers queries from the seeded institution directory.
// It serves deployments where network search is disabled, so crisis turns
// still surface reachable institutions.
type DirectorySearcher struct {
	store  institution.Store
	region string
}

// NewDirectorySearcher builds a searcher over the given directory,
// preferring institutions for the configured region.
func NewDirectorySearcher(store institution.Store, region string) *DirectorySearcher {
	return &DirectorySearcher{store: store, region: region}
}

// Search returns matching directory entries as a loose record payload.
// The query is ignored beyond the configured region; the directory is
// small and already curated for crisis support.
func (s *DirectorySearcher) Search(_ context.Context, _ string) (any, error) {
	items := s.store.FindByRegion(s.region)

	payload := make([]map[string]any, 0, len(items))
	for _, item := range items {
		payload = append(payload, map[string]any{
			"name":        item.Name,
			"address":     item.Address,
			"contact":     item.Contact,
			"sourceUrl":   item.Website,
			"sourceTitle": item.Name,
		})
	}
	return payload, nil
}
