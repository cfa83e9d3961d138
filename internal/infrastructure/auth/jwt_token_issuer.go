package auth

import (
	"errors"
	"fmt"
	"time"

	"atelie/internal/domain/entities"
	"atelie/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrMissingJWTSecret = errors.New("missing JWT_SECRET")
	ErrInvalidToken     = errors.New("invalid session token")
)

const tokenIssuer = "atelie-api"

type sessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// JWTTokenIssuer signs HS256 session tokens carrying user id, email and role.
type JWTTokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ interfaces.ITokenIssuer = (*JWTTokenIssuer)(nil)

func NewJWTTokenIssuer(secret string, ttl time.Duration) (*JWTTokenIssuer, error) {
	if secret == "" {
		return nil, ErrMissingJWTSecret
	}
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &JWTTokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (i *JWTTokenIssuer) Issue(u entities.User) (string, time.Time, error) {
	now := i.now().UTC()
	expiresAt := now.Add(i.ttl)
	claims := sessionClaims{
		Email: u.Email,
		Role:  string(u.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

func (i *JWTTokenIssuer) Parse(token string) (entities.Actor, error) {
	var claims sessionClaims
	parser := jwt.Parser{
		ValidMethods: []string{jwt.SigningMethodHS256.Alg()},
	}
	_, err := parser.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return i.secret, nil
	})
	if err != nil {
		return entities.Actor{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" || claims.Issuer != tokenIssuer {
		return entities.Actor{}, ErrInvalidToken
	}
	role, ok := entities.ParseRole(claims.Role)
	if !ok {
		return entities.Actor{}, ErrInvalidToken
	}
	return entities.Actor{UserID: claims.Subject, Email: claims.Email, Role: role}, nil
}
