package impl

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"time"

	"github.com/annorax/sleek-travel-backend/internal/domain"
	"github.com/annorax/sleek-travel-backend/internal/observability/metrics"
	"github.com/annorax/sleek-travel-backend/internal/store"
)

const (
	// 64 random bytes per token, URL-safe encoded.
	sessionTokenBytes = 64

	// Collisions are astronomically rare; the bound exists so a broken RNG
	// or store cannot spin the loop forever.
	maxTokenAttempts = 10
)

type SessionServiceImpl struct {
	Users  userStore
	Tokens tokenStore
	Logins loginStore
}

func NewSessionServiceImpl(st *store.Store) *SessionServiceImpl {
	return &SessionServiceImpl{
		Users:  st.Users(),
		Tokens: st.Tokens(),
		Logins: st.Logins(),
	}
}

func (s *SessionServiceImpl) Create(ctx context.Context, userID domain.UserID, ipAddress string, explicit bool) (string, error) {
	flow := "login"
	if !explicit {
		flow = "rotate"
	}

	for attempt := 0; attempt < maxTokenAttempts; attempt++ {
		value, err := generateTokenValue()
		if err != nil {
			metrics.TokensIssuedTotal.WithLabelValues(flow, "failure").Inc()
			return "", err
		}
		err = s.Tokens.Create(ctx, &domain.AccessToken{
			Value:     value,
			UserID:    userID,
			CreatedAt: time.Now().UTC(),
		})
		if errors.Is(err, domain.ErrDuplicateKey) {
			slog.Warn("session token collision, retrying", "attempt", attempt+1, "user_id", userID)
			continue
		}
		if err != nil {
			metrics.TokensIssuedTotal.WithLabelValues(flow, "failure").Inc()
			return "", err
		}

		if err := s.Logins.Create(ctx, &domain.Login{
			UserID:     userID,
			TokenValue: value,
			IPAddress:  ipAddress,
			Explicit:   explicit,
			CreatedAt:  time.Now().UTC(),
		}); err != nil {
			metrics.TokensIssuedTotal.WithLabelValues(flow, "failure").Inc()
			return "", err
		}

		metrics.TokensIssuedTotal.WithLabelValues(flow, "success").Inc()
		return value, nil
	}

	slog.Error("session token generation exhausted", "user_id", userID, "attempts", maxTokenAttempts)
	metrics.TokensIssuedTotal.WithLabelValues(flow, "exhausted").Inc()
	return "", domain.ErrTokenGenerationExhausted
}

func (s *SessionServiceImpl) Resolve(ctx context.Context, tokenValue string) (*domain.User, error) {
	if tokenValue == "" {
		return nil, nil
	}
	tok, err := s.Tokens.GetByValue(ctx, tokenValue)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if tok.Expired {
		return nil, nil
	}
	user, err := s.Users.GetByID(ctx, tok.UserID)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *SessionServiceImpl) Revoke(ctx context.Context, tokenValue string) error {
	return s.Tokens.Expire(ctx, tokenValue)
}

func (s *SessionServiceImpl) Rotate(ctx context.Context, oldTokenValue string) (string, error) {
	tok, err := s.Tokens.GetByValue(ctx, oldTokenValue)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return "", domain.ErrTokenNotFound
	}
	if err != nil {
		return "", err
	}
	if tok.Expired {
		return "", domain.ErrTokenNotFound
	}

	// Create the replacement before retiring the old token: a crash in
	// between leaves two valid tokens, never zero.
	newValue, err := s.Create(ctx, tok.UserID, "", false)
	if err != nil {
		return "", err
	}
	if err := s.Tokens.Expire(ctx, oldTokenValue); err != nil {
		return "", err
	}
	return newValue, nil
}

func generateTokenValue() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
