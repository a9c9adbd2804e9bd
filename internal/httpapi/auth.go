package httpapi

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"teknikservis/backend/internal/domain"
)

var (
	// ErrInvalidCredentials is returned on any authentication failure.
	// Callers must not leak which part of the credentials was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthManager issues and validates access tokens for staff sessions,
// and guards destructive operations behind a separate manager PIN.
type AuthManager struct {
	secret         []byte
	tokenTTL       time.Duration
	managerPINHash []byte
}

type staffClaims struct {
	jwt.RegisteredClaims
	Name string `json:"name"`
	Role string `json:"role"`
}

// NewAuthManager hashes managerPIN at construction so the plaintext
// never has to live on the struct. An empty managerPIN disables the
// manager-gated endpoints.
func NewAuthManager(secret string, tokenTTL time.Duration, managerPIN string) (*AuthManager, error) {
	if secret == "" {
		return nil, errors.New("auth secret must not be empty")
	}
	if tokenTTL <= 0 {
		tokenTTL = 8 * time.Hour
	}
	m := &AuthManager{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
	if managerPIN != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(managerPIN), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash manager pin: %w", err)
		}
		m.managerPINHash = hash
	}
	return m, nil
}

// Sign issues an access token for an already-authenticated staff member.
func (m *AuthManager) Sign(staff domain.StaffMember, now time.Time) (token string, expiresAt time.Time, err error) {
	expiresAt = now.Add(m.tokenTTL)
	claims := staffClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   staff.ID,
			Issuer:    "teknikservis",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Name: staff.Name,
		Role: staff.Role,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ParseToken validates an access token and returns the actor it was
// issued to.
func (m *AuthManager) ParseToken(token string) (domain.Actor, error) {
	claims := &staffClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		return domain.Actor{}, ErrInvalidToken
	}
	if claims.Subject == "" {
		return domain.Actor{}, ErrInvalidToken
	}
	return domain.Actor{
		StaffID: claims.Subject,
		Name:    claims.Name,
		Role:    claims.Role,
	}, nil
}

// ValidateManagerPIN checks the PIN guarding restores, purges and
// backup imports. Fails closed when no manager PIN is configured.
func (m *AuthManager) ValidateManagerPIN(pin string) error {
	if len(m.managerPINHash) == 0 {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(m.managerPINHash, []byte(pin)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
