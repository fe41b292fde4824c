package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bigvalue-web/internal/lib/jwt"
	"bigvalue-web/internal/lib/logger/sl"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLoginDisabled      = errors.New("admin login is disabled")
)

type Service struct {
	log      *slog.Logger
	userName string
	passHash []byte
	secret   string
	tokenTTL time.Duration
}

// New configures the single admin account. An empty passHash disables login.
func New(log *slog.Logger, userName, passHash, secret string, ttl time.Duration) *Service {
	return &Service{
		log:      log,
		userName: userName,
		passHash: []byte(passHash),
		secret:   secret,
		tokenTTL: ttl,
	}
}

func (s *Service) Login(userName, password string) (token string, err error) {
	const op = "service.auth.Login"

	log := s.log.With(slog.String("op", op))

	if len(s.passHash) == 0 {
		log.Warn("login attempt while admin login is disabled")
		return "", fmt.Errorf("%s: %w", op, ErrLoginDisabled)
	}

	if userName != s.userName {
		log.Info("unknown user name", slog.String("user_name", userName))
		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	// Checking if password correct
	if err := bcrypt.CompareHashAndPassword(s.passHash, []byte(password)); err != nil {
		log.Info("incorrect password", sl.Error(err))
		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	token, err = jwt.NewToken(userName, jwt.RoleAdmin, s.tokenTTL, s.secret)
	if err != nil {
		log.Error("failed to create new token", sl.Error(err))
		return "", fmt.Errorf("%s: failed to create new token: %w", op, err)
	}

	return token, nil
}
