package auth

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/fekuna/omnipos-terminal-service/internal/model"
	"github.com/fekuna/omnipos-terminal-service/internal/staff"
	"github.com/fekuna/omnipos-terminal-service/pkg/apperrors"
)

type Service struct {
	staff  staff.Repository
	secret string
	ttl    time.Duration
}

func NewService(staffRepo staff.Repository, secret string, ttl time.Duration) *Service {
	return &Service{staff: staffRepo, secret: secret, ttl: ttl}
}

// Login verifies credentials and issues a session token. The same
// "invalid email or password" error is returned for unknown accounts and
// wrong passwords.
func (s *Service) Login(ctx context.Context, email, password string) (string, *model.Profile, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	p, err := s.staff.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, apperrors.Transport(err, "failed to look up account")
	}
	if p == nil || !p.IsActive {
		return "", nil, apperrors.Validation("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.Validation("invalid email or password")
	}

	token, err := IssueToken(s.secret, s.ttl, p)
	if err != nil {
		return "", nil, err
	}
	return token, p, nil
}
