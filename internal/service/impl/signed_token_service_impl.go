package impl

import (
	"errors"
	"time"

	"github.com/annorax/sleek-travel-backend/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const signedTokenIssuer = "sleek-travel"

// SignedTokenServiceHS256 signs subject-bearing tokens with a server-held
// symmetric secret. Two instances run in the process, one per token class
// (session bootstrap vs. ownership-proof links), each with its own secret
// and audience so that leaking one secret does not forge the other class.
type SignedTokenServiceHS256 struct {
	secret   []byte
	audience string
}

func NewSignedTokenServiceHS256(secret []byte, audience string) (*SignedTokenServiceHS256, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	return &SignedTokenServiceHS256{secret: secret, audience: audience}, nil
}

func (s *SignedTokenServiceHS256) Issue(subject domain.UserID, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Issuer:   signedTokenIssuer,
		Subject:  subject.String(),
		Audience: jwt.ClaimStrings{s.audience},
		IssuedAt: jwt.NewNumericDate(now),
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *SignedTokenServiceHS256) Verify(tokenStr string) (domain.UserID, error) {
	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(signedTokenIssuer),
		jwt.WithAudience(s.audience),
	)
	_, err := parser.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return uuid.Nil, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid),
			errors.Is(err, jwt.ErrTokenInvalidIssuer),
			errors.Is(err, jwt.ErrTokenInvalidAudience),
			errors.Is(err, jwt.ErrTokenUnverifiable):
			return uuid.Nil, domain.ErrTokenSignature
		default:
			return uuid.Nil, domain.ErrTokenMalformed
		}
	}
	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, domain.ErrTokenMalformed
	}
	return subject, nil
}
