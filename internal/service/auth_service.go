package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// AdminTokenExpiration bounds how long an admin session token stays
	// valid before the password must be entered again.
	AdminTokenExpiration = 12 * time.Hour
)

var (
	ErrInvalidPassword = errors.New("invalid admin password")
	ErrInvalidToken    = errors.New("invalid token")
)

// Claims represents the admin session token claims
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService gates the admin console. The password is a single static
// shared secret compared verbatim; a match yields a session token that
// carries the authenticated flag across requests. There is no lockout and
// no backoff on wrong attempts.
type AuthService interface {
	Login(password string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	password  string
	jwtSecret string
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(password, jwtSecret string) AuthService {
	return &authService{
		password:  password,
		jwtSecret: jwtSecret,
	}
}

// Login checks the shared secret and issues an admin session token.
func (s *authService) Login(password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		return "", ErrInvalidPassword
	}

	expirationTime := time.Now().Add(AdminTokenExpiration)
	claims := &Claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken validates a session token and returns the claims
func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
