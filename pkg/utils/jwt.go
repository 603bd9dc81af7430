package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	jwtSecret   string
	tokenExpiry time.Duration
)

// ErrMalformedToken is returned when a token cannot be parsed or its
// signature does not check out.
var ErrMalformedToken = errors.New("malformed token")

// InitJWT initializes the signing secret and token lifetime. Called
// once at startup; the key is never rotated at runtime.
func InitJWT(secret string, expiry time.Duration) {
	jwtSecret = secret
	tokenExpiry = expiry
}

// GenerateToken mints a signed bearer token for the given subject
// (the user's email). The jti claim keeps token strings unique even
// when two tokens are issued for the same subject within a second.
func GenerateToken(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ID:        uuid.New().String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenExpiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// parseClaims verifies the signature and returns the embedded claims.
// Claim validation is deliberately skipped so that an expired token
// still yields its subject and expiry; expiry is checked separately.
func parseClaims(tokenString string) (*jwt.RegisteredClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	}, jwt.WithoutClaimsValidation())

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, ErrMalformedToken
	}

	return claims, nil
}

// SubjectFromToken extracts the subject (email) from a token
func SubjectFromToken(tokenString string) (string, error) {
	claims, err := parseClaims(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// IsTokenExpired reports whether the token's embedded expiry has
// elapsed. Revocation flags held in the database are not consulted.
func IsTokenExpired(tokenString string) (bool, error) {
	claims, err := parseClaims(tokenString)
	if err != nil {
		return false, err
	}
	if claims.ExpiresAt == nil {
		return true, nil
	}
	return claims.ExpiresAt.Before(time.Now()), nil
}

// IsTokenValid reports whether the token belongs to the expected
// subject and has not passed its embedded expiry. Purely claim-based.
func IsTokenValid(tokenString, expectedSubject string) (bool, error) {
	claims, err := parseClaims(tokenString)
	if err != nil {
		return false, err
	}
	if claims.Subject != expectedSubject {
		return false, nil
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
		return false, nil
	}
	return true, nil
}

// ValidateToken fully validates a token (signature and expiry) and
// returns its claims. Used by the route middleware.
func ValidateToken(tokenString string) (*jwt.RegisteredClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*jwt.RegisteredClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
