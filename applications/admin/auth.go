package admin

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/verifiedboiy/fanmeetzone/logger"
)

// ErrBadCredentials is returned for any failed login attempt.
var ErrBadCredentials = errors.New("invalid admin credentials")

// Claims carried inside the admin JWT.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Auth issues and validates admin tokens. The single admin identity is a
// bcrypt password hash from configuration.
type Auth struct {
	JWTSecret    []byte
	PasswordHash string
}

// Login checks the password against the configured hash and returns a
// 24-hour admin token.
func (a *Auth) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warn("[admin-auth] Failed admin login attempt.")
		return "", ErrBadCredentials
	}

	claims := Claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.JWTSecret)
	if err != nil {
		logger.Log.Error(fmt.Sprintf("[admin-auth] Failed to sign JWT: %v", err))
		return "", err
	}

	logger.Log.Info("[admin-auth] Admin token issued.")
	return signed, nil
}

// Verify parses a token and confirms the admin role.
func (a *Auth) Verify(tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return fmt.Errorf("invalid or expired token: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Role != "admin" {
		return errors.New("token does not carry the admin role")
	}
	return nil
}
