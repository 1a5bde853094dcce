package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	// Third-party library for JWT handling. `jwt/v5` indicates version 5.
	"github.com/golang-jwt/jwt/v5"

	"github.com/user/payroll-go/apperror"
	"github.com/user/payroll-go/config"
)

// Claims is the payload of our JWTs.
// Embedding `jwt.RegisteredClaims` includes standard claims like `iss` (issuer), `exp` (expiration time), etc.
type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 tokens. Verification is stateless.
type TokenService struct {
	secret   []byte
	duration time.Duration
	issuer   string
	now      func() time.Time
}

// NewTokenService creates a TokenService from the auth configuration.
func NewTokenService(cfg *config.AuthConfig) *TokenService {
	return &TokenService{
		secret:   []byte(cfg.JWTSecret),
		duration: cfg.TokenDuration,
		issuer:   cfg.Issuer,
		now:      time.Now,
	}
}

// Issue signs a token for the user and returns it with its expiry.
func (s *TokenService) Issue(userID int64, email string) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.duration)
	claims := &Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Subject:   strconv.FormatInt(userID, 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify parses the token and checks signature, algorithm, issuer and expiry.
// Expired tokens yield ExpiredToken; anything else wrong yields InvalidToken.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	_, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperror.NewExpiredTokenError(err)
		}
		return nil, apperror.NewInvalidTokenError("token is invalid", err)
	}

	if claims.UserID <= 0 {
		return nil, apperror.NewInvalidTokenError("token is invalid: user_id claim is missing", nil)
	}
	return claims, nil
}
