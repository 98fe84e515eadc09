package token

import (
	"errors"
	"time"

	"github.com/beka-birhanu/pickle-maze/service/i"
	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
)

const gameIDClaim = "game_id"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrWrongIssuer  = errors.New("token issued by someone else")
)

var _ i.Tokenizer = &JwtService{}

// JwtService signs and checks HS256 game tokens.
type JwtService struct {
	secretKey string
	issuer    string
}

// NewJwtService creates a new JWT Service with the provided configuration.
func NewJwtService(secretKey, issuer string) *JwtService {
	return &JwtService{
		secretKey: secretKey,
		issuer:    issuer,
	}
}

// Generate creates a JWT granting access to gameID.
func (s *JwtService) Generate(gameID uuid.UUID, expTime time.Duration) (string, error) {
	claims := jwt.MapClaims{
		gameIDClaim: gameID.String(),
		"iss":       s.issuer,
		"exp":       time.Now().UTC().Add(expTime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// Decode parses and validates a JWT, returning the game it was issued for.
func (s *JwtService) Decode(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, s.getSigningKey)
	if err != nil {
		return uuid.Nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	if !claims.VerifyIssuer(s.issuer, true) {
		return uuid.Nil, ErrWrongIssuer
	}

	raw, ok := claims[gameIDClaim].(string)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}

	return uuid.Parse(raw)
}

// getSigningKey returns the signing key for token validation.
func (s *JwtService) getSigningKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("unexpected signing method")
	}
	return []byte(s.secretKey), nil
}
