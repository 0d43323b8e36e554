package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/sunrisehms/folio_ledger_app/internal/apperrors"
	portsrepo "github.com/sunrisehms/folio_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/sunrisehms/folio_ledger_app/internal/core/ports/services"
	"github.com/sunrisehms/folio_ledger_app/internal/dto"
	"github.com/sunrisehms/folio_ledger_app/internal/middleware"
)

var ErrInvalidCredentials = errors.New("invalid staff id or password")

// authService verifies staff credentials and mints session tokens.
type authService struct {
	staffRepo     portsrepo.StaffRepositoryFacade
	jwtSecret     string
	tokenValidity time.Duration
	issuer        string
	now           func() time.Time
}

// NewAuthService creates a new AuthService.
func NewAuthService(staffRepo portsrepo.StaffRepositoryFacade, jwtSecret string, tokenValidity time.Duration, issuer string) portssvc.AuthSvcFacade {
	return &authService{
		staffRepo:     staffRepo,
		jwtSecret:     jwtSecret,
		tokenValidity: tokenValidity,
		issuer:        issuer,
		now:           time.Now,
	}
}

// Ensure authService implements the portssvc.AuthSvcFacade interface
var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies the credentials and returns a signed session token. A
// missing staff record and a wrong password produce the same error.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	staff, err := s.staffRepo.FindStaffByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewAppError(401, ErrInvalidCredentials.Error(), apperrors.ErrForbidden)
		}
		return nil, err
	}
	if !staff.IsActive {
		logger.Warn("Login attempt for inactive staff", slog.String("staff_id", req.StaffID))
		return nil, apperrors.NewAppError(401, ErrInvalidCredentials.Error(), apperrors.ErrForbidden)
	}

	if bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(req.Password)) != nil {
		logger.Warn("Login attempt with wrong password", slog.String("staff_id", req.StaffID))
		return nil, apperrors.NewAppError(401, ErrInvalidCredentials.Error(), apperrors.ErrForbidden)
	}

	now := s.now()
	claims := middleware.SessionClaims{
		DisplayName: staff.DisplayName,
		Role:        string(staff.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   staff.StaffID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenValidity)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to sign session token", err)
	}

	return &dto.LoginResponse{
		Token:       signed,
		StaffID:     staff.StaffID,
		DisplayName: staff.DisplayName,
		Role:        string(staff.Role),
	}, nil
}
