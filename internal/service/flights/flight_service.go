// Package flights serves the read-only route catalogue: origin/destination
// search (cached), duration-ordered listings and the popularity and
// rating leaderboards.
package flights

import (
	"context"

	"github.com/ostrikov/airbooking/internal/domain"
	"github.com/ostrikov/airbooking/internal/repository"
)

const defaultTopK = 10

type FlightUseCase interface {
	Search(ctx context.Context, origin, destination string) ([]domain.Flight, error)
	ByDestination(ctx context.Context, destination string) ([]domain.Flight, error)
	PopularDestinations(ctx context.Context, k int) ([]domain.DestinationCount, error)
	TopRated(ctx context.Context, k int) ([]domain.RatedRoute, error)
}

type SearchCache interface {
	GetSearch(ctx context.Context, origin, destination string) ([]domain.Flight, error)
	SetSearch(ctx context.Context, origin, destination string, flights []domain.Flight) error
}

type FlightService struct {
	repo  repository.FlightRepository
	cache SearchCache
}

func NewFlightService(repo repository.FlightRepository, cache SearchCache) *FlightService {
	return &FlightService{repo: repo, cache: cache}
}

func (s *FlightService) Search(ctx context.Context, origin, destination string) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetSearch(ctx, origin, destination); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.Search(ctx, origin, destination)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetSearch(ctx, origin, destination, flights)
	}
	return flights, nil
}

func (s *FlightService) ByDestination(ctx context.Context, destination string) ([]domain.Flight, error) {
	return s.repo.ByDestination(ctx, destination)
}

func (s *FlightService) PopularDestinations(ctx context.Context, k int) ([]domain.DestinationCount, error) {
	return s.repo.PopularDestinations(ctx, clampK(k))
}

func (s *FlightService) TopRated(ctx context.Context, k int) ([]domain.RatedRoute, error) {
	return s.repo.TopRated(ctx, clampK(k))
}

func clampK(k int) int {
	if k <= 0 {
		return defaultTopK
	}
	return k
}

var _ FlightUseCase = (*FlightService)(nil)
