package usecase

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidSession       = errors.New("invalid admin session")
	ErrSessionNotConfigured = errors.New("admin session secret not configured")
)

const sessionIssuer = "hauling-pros-admin"

// AdminCredentials is the single shared admin login.
// PasswordHash (bcrypt) takes precedence over the plain Password.
type AdminCredentials struct {
	Username     string
	Password     string
	PasswordHash string
}

// AdminClaims is the payload of the admin session token.
type AdminClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// IAuthUseCase issues and validates admin sessions.
type IAuthUseCase interface {
	Login(username, password string) (token string, expiresAt time.Time, err error)
	ValidateSession(token string) (*AdminClaims, error)
	SessionTTL() time.Duration
}

type AuthUseCase struct {
	creds  AdminCredentials
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(creds AdminCredentials, secret string, ttl time.Duration) *AuthUseCase {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthUseCase{creds: creds, secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (u *AuthUseCase) SessionTTL() time.Duration {
	return u.ttl
}

func (u *AuthUseCase) Login(username, password string) (string, time.Time, error) {
	if len(u.secret) == 0 {
		return "", time.Time{}, ErrSessionNotConfigured
	}
	if !u.checkCredentials(strings.TrimSpace(username), password) {
		return "", time.Time{}, ErrInvalidCredentials
	}

	now := u.now()
	expiresAt := now.Add(u.ttl)
	claims := &AdminClaims{
		Username: u.creds.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    sessionIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(u.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign admin session: %w", err)
	}
	return signed, expiresAt, nil
}

func (u *AuthUseCase) ValidateSession(tokenString string) (*AdminClaims, error) {
	if len(u.secret) == 0 {
		return nil, ErrSessionNotConfigured
	}
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, ErrInvalidSession
	}

	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return u.secret, nil
	}, jwt.WithIssuer(sessionIssuer), jwt.WithTimeFunc(u.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidSession
	}
	return claims, nil
}

func (u *AuthUseCase) checkCredentials(username, password string) bool {
	if u.creds.Username == "" || password == "" {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(username), []byte(u.creds.Username)) != 1 {
		return false
	}
	if u.creds.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(u.creds.PasswordHash), []byte(password)) == nil
	}
	if u.creds.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(u.creds.Password)) == 1
}
