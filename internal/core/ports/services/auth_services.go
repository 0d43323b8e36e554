package services

import (
	"context"

	"github.com/sunrisehms/folio_ledger_app/internal/dto"
)

// AuthSvcFacade verifies staff credentials and mints session tokens. Staff
// account management is owned by the surrounding application.
type AuthSvcFacade interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
