package flights

import (
	"context"
	"testing"

	"github.com/ostrikov/airbooking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) GetByNumber(ctx context.Context, number string) (*domain.Flight, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) Exists(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

func (m *MockFlightRepository) Insert(ctx context.Context, f *domain.Flight) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFlightRepository) Update(ctx context.Context, f *domain.Flight) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFlightRepository) Search(ctx context.Context, origin, destination string) ([]domain.Flight, error) {
	args := m.Called(ctx, origin, destination)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) ByDestination(ctx context.Context, destination string) ([]domain.Flight, error) {
	args := m.Called(ctx, destination)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) PopularDestinations(ctx context.Context, k int) ([]domain.DestinationCount, error) {
	args := m.Called(ctx, k)
	return args.Get(0).([]domain.DestinationCount), args.Error(1)
}

func (m *MockFlightRepository) TopRated(ctx context.Context, k int) ([]domain.RatedRoute, error) {
	args := m.Called(ctx, k)
	return args.Get(0).([]domain.RatedRoute), args.Error(1)
}

type MockSearchCache struct {
	mock.Mock
}

func (m *MockSearchCache) GetSearch(ctx context.Context, origin, destination string) ([]domain.Flight, error) {
	args := m.Called(ctx, origin, destination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockSearchCache) SetSearch(ctx context.Context, origin, destination string, flights []domain.Flight) error {
	args := m.Called(ctx, origin, destination, flights)
	return args.Error(0)
}

var laxJFK = []domain.Flight{
	{Number: "AB123", Origin: "LAX", Destination: "JFK", Seats: 180, Duration: 5},
	{Number: "CD456", Origin: "LAX", Destination: "JFK", Seats: 120, Duration: 6},
}

func TestFlightService_Search_CacheMiss(t *testing.T) {
	repo := &MockFlightRepository{}
	cache := &MockSearchCache{}
	service := NewFlightService(repo, cache)

	ctx := context.Background()
	cache.On("GetSearch", ctx, "LAX", "JFK").Return(nil, nil).Once()
	repo.On("Search", ctx, "LAX", "JFK").Return(laxJFK, nil).Once()
	cache.On("SetSearch", ctx, "LAX", "JFK", laxJFK).Return(nil).Once()

	flights, err := service.Search(ctx, "LAX", "JFK")

	require.NoError(t, err)
	assert.Equal(t, laxJFK, flights)
	cache.AssertExpectations(t)
}

func TestFlightService_Search_CacheHit(t *testing.T) {
	repo := &MockFlightRepository{}
	cache := &MockSearchCache{}
	service := NewFlightService(repo, cache)

	ctx := context.Background()
	cache.On("GetSearch", ctx, "LAX", "JFK").Return(laxJFK, nil).Once()

	flights, err := service.Search(ctx, "LAX", "JFK")

	require.NoError(t, err)
	assert.Equal(t, laxJFK, flights)
	repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
}

func TestFlightService_Search_NilCache(t *testing.T) {
	repo := &MockFlightRepository{}
	service := NewFlightService(repo, nil)

	ctx := context.Background()
	repo.On("Search", ctx, "LAX", "JFK").Return(laxJFK, nil).Once()

	flights, err := service.Search(ctx, "LAX", "JFK")

	require.NoError(t, err)
	assert.Len(t, flights, 2)
}

func TestFlightService_TopK_Clamped(t *testing.T) {
	repo := &MockFlightRepository{}
	service := NewFlightService(repo, nil)

	ctx := context.Background()
	repo.On("PopularDestinations", ctx, defaultTopK).Return([]domain.DestinationCount{}, nil).Twice()
	repo.On("TopRated", ctx, 3).Return([]domain.RatedRoute{}, nil).Once()

	_, err := service.PopularDestinations(ctx, 0)
	require.NoError(t, err)
	_, err = service.PopularDestinations(ctx, -5)
	require.NoError(t, err)
	_, err = service.TopRated(ctx, 3)
	require.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestFlightService_ByDestination(t *testing.T) {
	repo := &MockFlightRepository{}
	service := NewFlightService(repo, nil)

	ctx := context.Background()
	repo.On("ByDestination", ctx, "JFK").Return(laxJFK, nil).Once()

	flights, err := service.ByDestination(ctx, "JFK")

	require.NoError(t, err)
	assert.Equal(t, laxJFK, flights)
}
