package services

import (
	"context"
	"strings"

	"github.com/jonboulle/clockwork"

	"renti/internal/common"
	"renti/internal/models"
	"renti/internal/repositories"
)

// SearchService backs the top bar search box.
type SearchService interface {
	Search(ctx context.Context, query string) (*models.SearchResults, error)
}

type searchService struct {
	tenantRepo repositories.TenantRepository
	roomRepo   repositories.RoomRepository
	clock      clockwork.Clock
}

func NewSearchService(tenantRepo repositories.TenantRepository, roomRepo repositories.RoomRepository, clock clockwork.Clock) SearchService {
	return &searchService{tenantRepo: tenantRepo, roomRepo: roomRepo, clock: clock}
}

// Search returns tenants and rooms matching query. An empty query matches nothing.
func (s *searchService) Search(ctx context.Context, query string) (*models.SearchResults, error) {
	query = strings.TrimSpace(query)
	results := &models.SearchResults{
		Query:   query,
		Tenants: []models.TenantView{},
		Rooms:   []models.Room{},
	}
	if query == "" {
		return results, nil
	}
	if err := common.ValidateMaxLength(query, "q", 100); err != nil {
		return nil, err
	}

	tenants, err := s.tenantRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	for _, tenant := range tenants {
		if MatchesTenantSearch(tenant, query) {
			results.Tenants = append(results.Tenants, models.TenantView{Tenant: *tenant, LeaseStatus: LeaseLabel(tenant.LeaseExpiry, now)})
		}
	}
	for _, room := range rooms {
		if MatchesRoom(room, models.RoomFilter{Search: query}) {
			results.Rooms = append(results.Rooms, *room)
		}
	}
	return results, nil
}
