package passenger

import (
	"context"
	"time"

	"github.com/ostrikov/airbooking/internal/domain"
	"github.com/ostrikov/airbooking/internal/repository"
)

const maxPassportLen = 10

type PassengerUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Passenger, error)
}

type PassengerService struct {
	passengers repository.PassengerRepository
}

type RegisterInput struct {
	Passport  string    `json:"passport"`
	FullName  string    `json:"full_name"`
	BirthDate time.Time `json:"birth_date"`
	Country   string    `json:"country"`
}

func NewPassengerService(passengers repository.PassengerRepository) *PassengerService {
	return &PassengerService{passengers: passengers}
}

// Register creates a passenger. A duplicate passport racing past the
// unique constraint comes back as ErrPassportTaken from the insert.
func (s *PassengerService) Register(ctx context.Context, input RegisterInput) (*domain.Passenger, error) {
	if !validPassport(input.Passport) {
		return nil, domain.ErrInvalidPassport
	}

	p := &domain.Passenger{
		Passport:  input.Passport,
		FullName:  input.FullName,
		BirthDate: input.BirthDate,
		Country:   input.Country,
	}
	if err := s.passengers.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func validPassport(passport string) bool {
	if len(passport) == 0 || len(passport) > maxPassportLen {
		return false
	}
	for _, r := range passport {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

var _ PassengerUseCase = (*PassengerService)(nil)
