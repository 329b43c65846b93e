package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nps-campus/gatepass-api/internal/dto"
	"github.com/nps-campus/gatepass-api/internal/models"
)

const testJWTSecret = "test-secret"

type staffStoreStub struct {
	accounts map[string]models.StaffAccount
}

func (s *staffStoreStub) GetByUsername(_ context.Context, username string) (models.StaffAccount, error) {
	account, ok := s.accounts[username]
	if !ok {
		return models.StaffAccount{}, gorm.ErrRecordNotFound
	}
	return account, nil
}

func (s *staffStoreStub) GetByUsernameAndRole(_ context.Context, username, role string) (models.StaffAccount, error) {
	account, ok := s.accounts[username]
	if !ok || account.Role != role {
		return models.StaffAccount{}, gorm.ErrRecordNotFound
	}
	return account, nil
}

func (s *staffStoreStub) Create(_ context.Context, account *models.StaffAccount) error {
	account.ID = uint(len(s.accounts) + 1)
	s.accounts[account.Username] = *account
	return nil
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newAuthFixture(t *testing.T) AuthService {
	t.Helper()
	students := &studentStoreStub{students: map[string]models.Student{
		"21BD1A0501": {
			RollNo: "21BD1A0501", Name: "S. Kumar", Mentor: "dr.rao", HOD: "dr.iyer",
			PasswordHash: hashPassword(t, "pass1234"),
		},
	}}
	staff := &staffStoreStub{accounts: map[string]models.StaffAccount{
		"dr.rao":  {ID: 1, Username: "dr.rao", Name: "Dr. Rao", Role: models.RoleFaculty, PasswordHash: hashPassword(t, "faculty1")},
		"office1": {ID: 2, Username: "office1", Name: "Admin Office", Role: models.RoleAdmin, PasswordHash: hashPassword(t, "admin123")},
	}}

	return NewAuthService(students, staff, validator.New(), testJWTSecret, time.Hour, testLogger())
}

func parseClaims(t *testing.T, token string) jwt.MapClaims {
	t.Helper()
	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	return claims
}

func TestLoginStudent(t *testing.T) {
	svc := newAuthFixture(t)

	response, err := svc.LoginStudent(context.Background(), dto.StudentLoginRequest{
		RollNo: "21BD1A0501", Password: "pass1234",
	})
	require.NoError(t, err)
	require.NotNil(t, response.Student)
	require.Equal(t, "dr.rao", response.Student.Mentor)
	require.Equal(t, "dr.iyer", response.Student.HOD)

	claims := parseClaims(t, response.Token)
	require.Equal(t, "21BD1A0501", claims["sub"])
	require.Equal(t, models.RoleStudent, claims["role"])

	_, err = svc.LoginStudent(context.Background(), dto.StudentLoginRequest{
		RollNo: "21BD1A0501", Password: "wrong-pw",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.LoginStudent(context.Background(), dto.StudentLoginRequest{
		RollNo: "99XX00000", Password: "pass1234",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginStaffChecksRole(t *testing.T) {
	svc := newAuthFixture(t)

	response, err := svc.LoginStaff(context.Background(), dto.StaffLoginRequest{
		Username: "office1", Password: "admin123",
	}, models.RoleAdmin)
	require.NoError(t, err)
	require.NotNil(t, response.Staff)
	require.Equal(t, models.RoleAdmin, response.Staff.Role)

	claims := parseClaims(t, response.Token)
	require.Equal(t, "office1", claims["sub"])
	require.Equal(t, models.RoleAdmin, claims["role"])

	// A faculty account cannot use the admin login, and vice versa.
	_, err = svc.LoginStaff(context.Background(), dto.StaffLoginRequest{
		Username: "dr.rao", Password: "faculty1",
	}, models.RoleAdmin)
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.LoginStaff(context.Background(), dto.StaffLoginRequest{
		Username: "office1", Password: "admin123",
	}, "janitor")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
