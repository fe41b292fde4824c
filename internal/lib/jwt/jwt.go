package jwt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ClaimSubject = "sub"
	ClaimRole    = "role"

	RoleAdmin = "admin"
)

var ErrClaimNotSatisfied = errors.New("the claims are not satisfied")

func NewToken(subject, role string, duration time.Duration, secret string) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims[ClaimSubject] = subject
	claims[ClaimRole] = role
	claims["iat"] = time.Now().Unix()
	claims["exp"] = time.Now().Add(duration).Unix()

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// CheckClaim reports whether the verified token in ctx carries claim with
// the expected string value.
func CheckClaim(ctx context.Context, claim, expectedClaim string) (bool, error) {
	const op = "jwt.CheckClaim"

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	c, ok := claims[claim].(string)
	if !ok || c != expectedClaim {
		return false, fmt.Errorf("%s: %s: %w", op, claim, ErrClaimNotSatisfied)
	}

	return true, nil
}
