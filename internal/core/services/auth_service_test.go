package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/sunrisehms/folio_ledger_app/internal/apperrors"
	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
	portssvc "github.com/sunrisehms/folio_ledger_app/internal/core/ports/services"
	"github.com/sunrisehms/folio_ledger_app/internal/core/services"
	"github.com/sunrisehms/folio_ledger_app/internal/dto"
	"github.com/sunrisehms/folio_ledger_app/internal/middleware"
)

const testJWTSecret = "test-secret-key"

type AuthServiceTestSuite struct {
	suite.Suite
	mockStaffRepo *MockStaffRepository
	service       portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockStaffRepo = new(MockStaffRepository)
	suite.service = services.NewAuthService(suite.mockStaffRepo, testJWTSecret, 12*time.Hour, "folio-ledger-app")
}

func staffFixture(suite *AuthServiceTestSuite, password string) *domain.Staff {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	suite.Require().NoError(err)
	return &domain.Staff{
		StaffID:      "STAFF-1",
		DisplayName:  "Ama Mensah",
		Role:         domain.RoleStaff,
		PasswordHash: string(hash),
		IsActive:     true,
	}
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	staff := staffFixture(suite, "correct horse")
	suite.mockStaffRepo.On("FindStaffByID", ctx, "STAFF-1").Return(staff, nil).Once()

	resp, err := suite.service.Login(ctx, dto.LoginRequest{StaffID: "STAFF-1", Password: "correct horse"})

	suite.Require().NoError(err)
	suite.Equal("STAFF-1", resp.StaffID)
	suite.Equal("Ama Mensah", resp.DisplayName)
	suite.Equal(string(domain.RoleStaff), resp.Role)
	suite.NotEmpty(resp.Token)

	// The token carries the identity the middleware builds the actor from.
	claims := &middleware.SessionClaims{}
	parsed, err := jwt.ParseWithClaims(resp.Token, claims, func(t *jwt.Token) (any, error) {
		return []byte(testJWTSecret), nil
	})
	suite.Require().NoError(err)
	suite.True(parsed.Valid)
	suite.Equal("STAFF-1", claims.Subject)
	suite.Equal("Ama Mensah", claims.DisplayName)
	suite.Equal(string(domain.RoleStaff), claims.Role)
	suite.Equal("folio-ledger-app", claims.Issuer)
	suite.WithinDuration(time.Now().Add(12*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	staff := staffFixture(suite, "correct horse")
	suite.mockStaffRepo.On("FindStaffByID", ctx, "STAFF-1").Return(staff, nil).Once()

	resp, err := suite.service.Login(ctx, dto.LoginRequest{StaffID: "STAFF-1", Password: "battery staple"})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownStaff() {
	ctx := context.Background()
	suite.mockStaffRepo.On("FindStaffByID", ctx, "STAFF-ghost").Return(nil, apperrors.NewNotFoundError("staff not found")).Once()

	resp, err := suite.service.Login(ctx, dto.LoginRequest{StaffID: "STAFF-ghost", Password: "whatever"})

	suite.Require().Error(err)
	suite.Nil(resp)
	// An unknown staff ID is indistinguishable from a wrong password.
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AuthServiceTestSuite) TestLogin_InactiveStaff() {
	ctx := context.Background()
	staff := staffFixture(suite, "correct horse")
	staff.IsActive = false
	suite.mockStaffRepo.On("FindStaffByID", ctx, "STAFF-1").Return(staff, nil).Once()

	_, err := suite.service.Login(ctx, dto.LoginRequest{StaffID: "STAFF-1", Password: "correct horse"})

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
