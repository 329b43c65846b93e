package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nps-campus/gatepass-api/internal/dto"
	"github.com/nps-campus/gatepass-api/internal/models"
	"github.com/nps-campus/gatepass-api/internal/repository"
)

// ErrInvalidCredentials indicates a failed login. Unknown accounts and wrong
// passwords are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService authenticates the four login kinds and issues bearer tokens.
type AuthService interface {
	LoginStudent(ctx context.Context, payload dto.StudentLoginRequest) (dto.LoginResponse, error)
	LoginStaff(ctx context.Context, payload dto.StaffLoginRequest, role string) (dto.LoginResponse, error)
}

type authService struct {
	students  repository.StudentRepository
	staff     repository.StaffRepository
	validator *validator.Validate
	secret    []byte
	tokenTTL  time.Duration
	logger    zerolog.Logger
	now       func() time.Time
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(students repository.StudentRepository, staff repository.StaffRepository, validate *validator.Validate, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) AuthService {
	return &authService{
		students:  students,
		staff:     staff,
		validator: validate,
		secret:    []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		logger:    logger.With().Str("component", "auth_service").Logger(),
		now:       time.Now,
	}
}

func (s *authService) LoginStudent(ctx context.Context, payload dto.StudentLoginRequest) (dto.LoginResponse, error) {
	payload.RollNo = strings.TrimSpace(payload.RollNo)

	if err := s.validator.Struct(payload); err != nil {
		return dto.LoginResponse{}, err
	}

	student, err := s.students.GetByRollNo(ctx, payload.RollNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.LoginResponse{}, ErrInvalidCredentials
		}
		return dto.LoginResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(payload.Password)) != nil {
		return dto.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := s.signToken(student.RollNo, models.RoleStudent, student.Name)
	if err != nil {
		return dto.LoginResponse{}, err
	}

	s.logger.Info().Str("roll_no", student.RollNo).Msg("student login")

	profile := dto.NewStudentProfile(student)
	return dto.LoginResponse{Token: token, Student: &profile}, nil
}

func (s *authService) LoginStaff(ctx context.Context, payload dto.StaffLoginRequest, role string) (dto.LoginResponse, error) {
	payload.Username = strings.TrimSpace(payload.Username)

	if err := s.validator.Struct(payload); err != nil {
		return dto.LoginResponse{}, err
	}
	if !models.ValidStaffRole(role) {
		return dto.LoginResponse{}, ErrInvalidCredentials
	}

	account, err := s.staff.GetByUsernameAndRole(ctx, payload.Username, role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.LoginResponse{}, ErrInvalidCredentials
		}
		return dto.LoginResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(payload.Password)) != nil {
		return dto.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := s.signToken(account.Username, account.Role, account.Name)
	if err != nil {
		return dto.LoginResponse{}, err
	}

	s.logger.Info().Str("username", account.Username).Str("role", account.Role).Msg("staff login")

	profile := dto.NewStaffProfile(account)
	return dto.LoginResponse{Token: token, Staff: &profile}, nil
}

func (s *authService) signToken(subject, role, name string) (string, error) {
	issued := s.now()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"name": name,
		"iat":  issued.Unix(),
		"exp":  issued.Add(s.tokenTTL).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
