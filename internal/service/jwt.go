package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// minSecretLength is the minimum accepted HS256 secret size in bytes.
const minSecretLength = 32

// Token validation failures. The HTTP layer surfaces all of them as the
// same 401 response; the distinction exists for logging and tests only.
var (
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenSignature = errors.New("token signature is invalid")
)

// JWTService issues and validates signed bearer tokens.
type JWTService interface {
	GenerateAccessToken(userID int64) (string, error)
	ValidateToken(tokenString string) (int64, error)
	GetAccessExpiry() time.Duration
}

type jwtService struct {
	secret       []byte
	accessExpiry time.Duration
}

// NewJWTService creates a new JWTService instance. Returns nil if the
// secret is shorter than 32 bytes.
func NewJWTService(secret string, accessExpiry time.Duration) JWTService {
	if len(secret) < minSecretLength {
		return nil
	}
	return &jwtService{
		secret:       []byte(secret),
		accessExpiry: accessExpiry,
	}
}

func (s *jwtService) GenerateAccessToken(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.accessExpiry)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken verifies signature and expiry and returns the subject
// user id.
func (s *jwtService) ValidateToken(tokenString string) (int64, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenSignature
		}
		return s.secret, nil
	})

	switch {
	case err == nil && token.Valid:
	case errors.Is(err, jwt.ErrTokenExpired):
		return 0, ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return 0, ErrTokenSignature
	default:
		return 0, ErrTokenMalformed
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrTokenMalformed
	}

	return userID, nil
}

func (s *jwtService) GetAccessExpiry() time.Duration {
	return s.accessExpiry
}
