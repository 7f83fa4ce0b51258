package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopsbuzz/shopsbuzz-backend/internal/cart"
	pkgerrors "github.com/shopsbuzz/shopsbuzz-backend/pkg/errors"
)

// sessionWriter is the slice of the cart service auth needs: flipping the
// session login flag.
type sessionWriter interface {
	SetLoggedIn(ctx context.Context, sessionID string, flag bool) (*cart.Snapshot, error)
}

// Service is the login/registration stub. Any well-shaped form submission
// authenticates the session; there is no credential store and no
// verification. That is the contract, not a gap.
type Service interface {
	Login(ctx context.Context, sessionID string, input LoginInput) error
	Register(ctx context.Context, sessionID string, input RegisterInput) error
	Logout(ctx context.Context, sessionID string) error
}

// LoginInput is the login form payload.
type LoginInput struct {
	Email    string
	Password string
}

// RegisterInput is the registration form payload.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

type service struct {
	sessions sessionWriter
}

// ServiceParams wires the auth service dependencies.
type ServiceParams struct {
	Sessions sessionWriter
}

// NewService builds the auth stub.
func NewService(params ServiceParams) (Service, error) {
	if params.Sessions == nil {
		return nil, fmt.Errorf("session writer required")
	}
	return &service{sessions: params.Sessions}, nil
}

func (s *service) Login(ctx context.Context, sessionID string, input LoginInput) error {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "email and password are required")
	}
	_, err := s.sessions.SetLoggedIn(ctx, sessionID, true)
	return err
}

func (s *service) Register(ctx context.Context, sessionID string, input RegisterInput) error {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "name, email and password are required")
	}
	if input.Password != input.ConfirmPassword {
		return pkgerrors.New(pkgerrors.CodeValidation, "passwords do not match")
	}
	_, err := s.sessions.SetLoggedIn(ctx, sessionID, true)
	return err
}

func (s *service) Logout(ctx context.Context, sessionID string) error {
	_, err := s.sessions.SetLoggedIn(ctx, sessionID, false)
	return err
}
