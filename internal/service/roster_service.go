package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/nps-campus/gatepass-api/internal/dto"
	"github.com/nps-campus/gatepass-api/internal/models"
	"github.com/nps-campus/gatepass-api/internal/repository"
)

// ErrUsernameTaken indicates a faculty registration against an existing
// username.
var ErrUsernameTaken = errors.New("username already registered")

// RosterService covers the admin office's account housekeeping: onboarding
// faculty approvers and clearing graduated students off the roster.
type RosterService interface {
	RegisterFaculty(ctx context.Context, payload dto.FacultyRegisterRequest) (dto.StaffProfile, error)
	RemoveGraduates(ctx context.Context, year string) (int64, error)
}

type rosterService struct {
	students  repository.StudentRepository
	staff     repository.StaffRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewRosterService constructs a RosterService instance.
func NewRosterService(students repository.StudentRepository, staff repository.StaffRepository, validate *validator.Validate, logger zerolog.Logger) RosterService {
	return &rosterService{
		students:  students,
		staff:     staff,
		validator: validate,
		logger:    logger.With().Str("component", "roster_service").Logger(),
	}
}

func (s *rosterService) RegisterFaculty(ctx context.Context, payload dto.FacultyRegisterRequest) (dto.StaffProfile, error) {
	payload.Username = strings.TrimSpace(payload.Username)
	payload.Name = strings.TrimSpace(payload.Name)

	if err := s.validator.Struct(payload); err != nil {
		return dto.StaffProfile{}, err
	}

	if _, err := s.staff.GetByUsername(ctx, payload.Username); err == nil {
		return dto.StaffProfile{}, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.StaffProfile{}, err
	}

	account := models.StaffAccount{
		Username:     payload.Username,
		Name:         payload.Name,
		Role:         models.RoleFaculty,
		PasswordHash: string(hash),
	}

	if err := s.staff.Create(ctx, &account); err != nil {
		return dto.StaffProfile{}, err
	}

	s.logger.Info().Str("username", account.Username).Msg("faculty account registered")

	return dto.NewStaffProfile(account), nil
}

// RemoveGraduates deletes every student in the given graduating year and
// returns the number of rows removed.
func (s *rosterService) RemoveGraduates(ctx context.Context, year string) (int64, error) {
	year = strings.TrimSpace(year)
	if year == "" {
		return 0, errors.New("graduating year is required")
	}

	count, err := s.students.DeleteByYear(ctx, year)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Str("year", year).Int64("count", count).Msg("graduated students removed")

	return count, nil
}
